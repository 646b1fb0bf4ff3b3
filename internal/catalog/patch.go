package catalog

import "fmt"

// The patch builders return a new Author to be saved whole. The input author
// and its Videos slice are never modified.

// BuildAuthorPatchForCreate returns author with video appended.
func BuildAuthorPatchForCreate(author Author, video Video) Author {
	videos := make([]Video, 0, len(author.Videos)+1)
	videos = append(videos, author.Videos...)
	videos = append(videos, video)

	author.Videos = videos
	return author
}

// BuildAuthorPatchForUpdate returns author with the video identified by
// videoID replaced by updated, keeping its position. Only the first video with
// that ID is replaced.
func BuildAuthorPatchForUpdate(author Author, videoID int, updated Video) (Author, error) {
	idx := indexOfVideo(author.Videos, videoID)
	if idx < 0 {
		return Author{}, fmt.Errorf("author %d, video %d: %w", author.ID, videoID, ErrNotFound)
	}

	videos := make([]Video, len(author.Videos))
	copy(videos, author.Videos)
	videos[idx] = updated

	author.Videos = videos
	return author, nil
}

// BuildAuthorPatchForDelete returns author without any video whose ID is
// videoID.
func BuildAuthorPatchForDelete(author Author, videoID int) (Author, error) {
	if indexOfVideo(author.Videos, videoID) < 0 {
		return Author{}, fmt.Errorf("author %d, video %d: %w", author.ID, videoID, ErrNotFound)
	}

	videos := make([]Video, 0, len(author.Videos))
	for _, v := range author.Videos {
		if v.ID != videoID {
			videos = append(videos, v)
		}
	}

	author.Videos = videos
	return author, nil
}

// FindVideo returns the first video in author with the given ID.
func FindVideo(author Author, videoID int) (Video, bool) {
	idx := indexOfVideo(author.Videos, videoID)
	if idx < 0 {
		return Video{}, false
	}
	return author.Videos[idx], true
}

func indexOfVideo(videos []Video, id int) int {
	for i, v := range videos {
		if v.ID == id {
			return i
		}
	}
	return -1
}
