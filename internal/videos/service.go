// Package videos implements the video operations on top of the author and
// category store: listing, create, update (including moves between authors)
// and delete.
package videos

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/vmanager/internal/catalog"
	"github.com/vmunix/vmanager/internal/remote"
)

// VideoWithAuthor is a stored video together with the author holding it.
type VideoWithAuthor struct {
	Video  catalog.Video  `json:"video"`
	Author catalog.Author `json:"author"`
}

// Service runs video operations against a Store. Every call works on fresh
// copies of the records it reads, so a Service is safe for concurrent use.
type Service struct {
	store Store
	log   *slog.Logger
	now   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the clock used for new videos' release dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a video service.
func NewService(store Store, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		store: store,
		log:   logger,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetVideos fetches categories and authors in parallel and returns one row per
// stored video.
func (s *Service) GetVideos(ctx context.Context) ([]catalog.ProcessedVideo, error) {
	var (
		categories []catalog.Category
		authors    []catalog.Author
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = s.store.FetchCategories(gctx)
		if err != nil {
			return fmt.Errorf("categories: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		authors, err = s.store.FetchAuthors(gctx)
		if err != nil {
			return fmt.Errorf("authors: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	videos := catalog.ToProcessedVideos(authors, categories)
	s.log.Debug("videos loaded", "authors", len(authors), "categories", len(categories), "videos", len(videos))
	return videos, nil
}

// GetAuthors returns every author.
func (s *Service) GetAuthors(ctx context.Context) ([]catalog.Author, error) {
	return s.store.FetchAuthors(ctx)
}

// GetCategories returns every category.
func (s *Service) GetCategories(ctx context.Context) ([]catalog.Category, error) {
	return s.store.FetchCategories(ctx)
}

// GetMaxVideoIDForAuthor returns the largest video ID held by any author.
// The author ID is not used: IDs are allocated globally so that a new video
// never collides with one stored under another author.
func (s *Service) GetMaxVideoIDForAuthor(ctx context.Context, _ int) (int, error) {
	authors, err := s.store.FetchAuthors(ctx)
	if err != nil {
		return 0, err
	}
	return catalog.GlobalMaxVideoID(authors), nil
}

// AddVideoToAuthor appends video to the author's list and saves the author.
// It returns the saved record.
func (s *Service) AddVideoToAuthor(ctx context.Context, authorID int, video catalog.Video) (catalog.Author, error) {
	author, err := s.store.FetchAuthor(ctx, authorID)
	if err != nil {
		return catalog.Author{}, err
	}

	patched := catalog.BuildAuthorPatchForCreate(author, video)
	if err := s.store.SaveAuthor(ctx, patched); err != nil {
		return catalog.Author{}, err
	}

	s.log.Info("video added", "video_id", video.ID, "author_id", authorID)
	return patched, nil
}

// GetVideoWithAuthor looks up a video under one author. It reports false with
// a nil error when the author exists but does not hold the video.
func (s *Service) GetVideoWithAuthor(ctx context.Context, authorID, videoID int) (VideoWithAuthor, bool, error) {
	author, err := s.store.FetchAuthor(ctx, authorID)
	if err != nil {
		return VideoWithAuthor{}, false, err
	}

	video, ok := catalog.FindVideo(author, videoID)
	if !ok {
		return VideoWithAuthor{}, false, nil
	}
	return VideoWithAuthor{Video: video, Author: author}, true, nil
}

// UpdateVideo replaces the video videoID held by currentAuthorID with updated.
// When newAuthorID differs, the video moves: it is removed from the current
// author and saved, then appended to the new author and saved. The store has
// no transactions, so if the second half fails the current author's original
// record is written back once. A destination save that got no response is
// not compensated, since the video may already be stored there.
func (s *Service) UpdateVideo(ctx context.Context, videoID int, updated catalog.Video, newAuthorID, currentAuthorID int) error {
	current, err := s.store.FetchAuthor(ctx, currentAuthorID)
	if err != nil {
		return err
	}

	// Scope the check to this author; another author may hold the same ID.
	if !catalog.BuildVideoLocatorIndex([]catalog.Author{current}).Owns(currentAuthorID, videoID) {
		return fmt.Errorf("author %d, video %d: %w", currentAuthorID, videoID, catalog.ErrNotFound)
	}

	if current.ID == newAuthorID {
		patched, err := catalog.BuildAuthorPatchForUpdate(current, videoID, updated)
		if err != nil {
			return err
		}
		if err := s.store.SaveAuthor(ctx, patched); err != nil {
			return err
		}
		s.log.Info("video updated", "video_id", videoID, "author_id", current.ID)
		return nil
	}

	return s.moveVideo(ctx, current, videoID, updated, newAuthorID)
}

func (s *Service) moveVideo(ctx context.Context, source catalog.Author, videoID int, updated catalog.Video, destID int) error {
	withoutVideo, err := catalog.BuildAuthorPatchForDelete(source, videoID)
	if err != nil {
		return err
	}
	if err := s.store.SaveAuthor(ctx, withoutVideo); err != nil {
		return err
	}

	if _, err := s.AddVideoToAuthor(ctx, destID, updated); err != nil {
		if errors.Is(err, remote.ErrSaveUnconfirmed) {
			s.log.Error("video move unconfirmed, source author not restored",
				"video_id", videoID, "from_author_id", source.ID, "to_author_id", destID, "error", err)
			return fmt.Errorf("move video %d to author %d: %w: %w", videoID, destID, ErrMoveIncomplete, err)
		}

		s.log.Warn("video move failed, restoring source author",
			"video_id", videoID, "from_author_id", source.ID, "to_author_id", destID, "error", err)

		// Restore even if ctx is already canceled.
		if rerr := s.store.SaveAuthor(context.WithoutCancel(ctx), source); rerr != nil {
			s.log.Error("restoring source author failed",
				"video_id", videoID, "author_id", source.ID, "error", rerr)
			return fmt.Errorf("move video %d to author %d: %w; restore author %d: %w: %w",
				videoID, destID, err, source.ID, ErrMoveIncomplete, rerr)
		}
		return fmt.Errorf("move video %d to author %d: %w", videoID, destID, err)
	}

	s.log.Info("video moved", "video_id", videoID, "from_author_id", source.ID, "to_author_id", destID)
	return nil
}

// DeleteVideo removes the video from the author's list and saves the author.
func (s *Service) DeleteVideo(ctx context.Context, videoID, authorID int) error {
	author, err := s.store.FetchAuthor(ctx, authorID)
	if err != nil {
		return err
	}

	patched, err := catalog.BuildAuthorPatchForDelete(author, videoID)
	if err != nil {
		return err
	}
	if err := s.store.SaveAuthor(ctx, patched); err != nil {
		return err
	}

	s.log.Info("video deleted", "video_id", videoID, "author_id", authorID)
	return nil
}
