package videos

import (
	"context"
	"fmt"

	"github.com/vmunix/vmanager/internal/catalog"
)

// New videos start with a single 1080p format.
func defaultFormats() catalog.Formats {
	return catalog.NewFormats(catalog.FormatEntry{
		Label:  "one",
		Format: catalog.Format{Res: catalog.ResolutionOf("1080p"), Size: catalog.SizeOf(1000)},
	})
}

// CreateVideo validates draft, allocates the next global video ID and adds
// the new video to the draft's author. The release date is today (UTC).
func (s *Service) CreateVideo(ctx context.Context, draft catalog.Draft) (catalog.Video, error) {
	if err := draft.Validate(); err != nil {
		return catalog.Video{}, fmt.Errorf("%w: %w", ErrInvalidDraft, err)
	}

	maxID, err := s.GetMaxVideoIDForAuthor(ctx, draft.AuthorID)
	if err != nil {
		return catalog.Video{}, err
	}

	video := catalog.Video{
		ID:          maxID + 1,
		Name:        draft.Name,
		CatIDs:      draft.Categories.Values(),
		Formats:     defaultFormats(),
		ReleaseDate: s.now().UTC().Format("2006-01-02"),
	}
	if _, err := s.AddVideoToAuthor(ctx, draft.AuthorID, video); err != nil {
		return catalog.Video{}, err
	}
	return video, nil
}

// EditVideo applies draft's name and categories to the video held by
// currentAuthorID, moving it when the draft names another author. Formats
// and release date are kept.
func (s *Service) EditVideo(ctx context.Context, currentAuthorID, videoID int, draft catalog.Draft) (catalog.Video, error) {
	if err := draft.Validate(); err != nil {
		return catalog.Video{}, fmt.Errorf("%w: %w", ErrInvalidDraft, err)
	}

	found, ok, err := s.GetVideoWithAuthor(ctx, currentAuthorID, videoID)
	if err != nil {
		return catalog.Video{}, err
	}
	if !ok {
		return catalog.Video{}, fmt.Errorf("author %d, video %d: %w", currentAuthorID, videoID, catalog.ErrNotFound)
	}

	updated := found.Video
	updated.Name = draft.Name
	updated.CatIDs = draft.Categories.Values()

	if err := s.UpdateVideo(ctx, videoID, updated, draft.AuthorID, found.Author.ID); err != nil {
		return catalog.Video{}, err
	}
	return updated, nil
}
