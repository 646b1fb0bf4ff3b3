package catalog

// Locator identifies one video by the author that owns it.
type Locator struct {
	VideoID  int `json:"videoId"`
	AuthorID int `json:"authorId"`
}

// LocatorIndex maps a video ID to every author holding a video with that ID.
// Stored data may repeat IDs across authors, so a bucket can hold several
// locators.
type LocatorIndex map[int][]Locator

// BuildVideoLocatorIndex indexes every video of every author. Buckets list
// owners in author order.
func BuildVideoLocatorIndex(authors []Author) LocatorIndex {
	index := make(LocatorIndex)
	for _, author := range authors {
		for _, video := range author.Videos {
			index[video.ID] = append(index[video.ID], Locator{VideoID: video.ID, AuthorID: author.ID})
		}
	}
	return index
}

// Has reports whether any author holds a video with the ID.
func (idx LocatorIndex) Has(videoID int) bool {
	return len(idx[videoID]) > 0
}

// Owns reports whether authorID holds a video with the ID.
func (idx LocatorIndex) Owns(authorID, videoID int) bool {
	for _, loc := range idx[videoID] {
		if loc.AuthorID == authorID {
			return true
		}
	}
	return false
}

// GlobalMaxVideoID returns the largest video ID across all authors, or 0 when
// there are no videos.
func GlobalMaxVideoID(authors []Author) int {
	maxID := 0
	for _, author := range authors {
		for _, video := range author.Videos {
			maxID = max(maxID, video.ID)
		}
	}
	return maxID
}
