package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/vmanager/internal/catalog"
	"github.com/vmunix/vmanager/internal/videos"
)

// parseVideoRef reads the <authorId> <videoId> arguments.
func parseVideoRef(args []string) (authorID, videoID int, err error) {
	authorID, err = catalog.ParseID(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("author id: %w", err)
	}
	videoID, err = catalog.ParseID(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("video id: %w", err)
	}
	return authorID, videoID, nil
}

func videoNotFound(authorID, videoID int) error {
	return fmt.Errorf("author %d, video %d: %w", authorID, videoID, catalog.ErrNotFound)
}

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <authorId> <videoId>",
		Short: "Show one video",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			authorID, videoID, err := parseVideoRef(args)
			if err != nil {
				return err
			}
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}

			found, ok, err := a.svc.GetVideoWithAuthor(cmd.Context(), authorID, videoID)
			if err != nil {
				return err
			}
			if !ok {
				return videoNotFound(authorID, videoID)
			}

			if opts.jsonOutput {
				return printJSON(cmd.OutOrStdout(), found)
			}
			categories, err := a.svc.GetCategories(cmd.Context())
			if err != nil {
				return err
			}
			printVideoDetail(cmd.OutOrStdout(), found.Video, found.Author, categories)
			return nil
		},
	}
}

func newAddCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a video",
		Long: `Adds a video to an author. The video gets the next free ID across all
authors, today's date and a single 1080p format.

Categories may be repeated or comma separated: --category 1,3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("name")
			authorID, _ := cmd.Flags().GetInt("author")
			rawCategories, _ := cmd.Flags().GetStringArray("category")

			categories, err := catalog.ParseSelection(rawCategories, true)
			if err != nil {
				return fmt.Errorf("category: %w", err)
			}

			a, err := opts.load(cmd)
			if err != nil {
				return err
			}

			video, err := a.svc.CreateVideo(cmd.Context(), catalog.Draft{
				Name:       name,
				AuthorID:   authorID,
				Categories: categories,
			})
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return printJSON(cmd.OutOrStdout(), video)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added video %d %q to author %d.\n", video.ID, video.Name, authorID)
			return nil
		},
	}

	cmd.Flags().String("name", "", "Video name (required)")
	cmd.Flags().Int("author", 0, "Author ID (required)")
	cmd.Flags().StringArray("category", nil, "Category ID, repeatable (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("author")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newEditCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <authorId> <videoId>",
		Short: "Edit a video",
		Long: `Changes a video's name, categories or author. Flags left out keep their
current value. Changing --author moves the video to that author.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			authorID, videoID, err := parseVideoRef(args)
			if err != nil {
				return err
			}
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}

			found, ok, err := a.svc.GetVideoWithAuthor(cmd.Context(), authorID, videoID)
			if err != nil {
				return err
			}
			if !ok {
				return videoNotFound(authorID, videoID)
			}

			draft := catalog.Draft{
				Name:       found.Video.Name,
				AuthorID:   found.Author.ID,
				Categories: catalog.Multiple(found.Video.CatIDs...),
			}
			if cmd.Flags().Changed("name") {
				draft.Name, _ = cmd.Flags().GetString("name")
			}
			if cmd.Flags().Changed("author") {
				draft.AuthorID, _ = cmd.Flags().GetInt("author")
			}
			if cmd.Flags().Changed("category") {
				raw, _ := cmd.Flags().GetStringArray("category")
				if draft.Categories, err = catalog.ParseSelection(raw, true); err != nil {
					return fmt.Errorf("category: %w", err)
				}
			}

			video, err := a.svc.EditVideo(cmd.Context(), authorID, videoID, draft)
			if errors.Is(err, videos.ErrMoveIncomplete) {
				a.logger.Error("video move incomplete, check both authors",
					"video_id", videoID, "from_author_id", authorID, "to_author_id", draft.AuthorID)
			}
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return printJSON(cmd.OutOrStdout(), video)
			}
			if draft.AuthorID != authorID {
				fmt.Fprintf(cmd.OutOrStdout(), "Moved video %d to author %d.\n", videoID, draft.AuthorID)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Updated video %d.\n", videoID)
			}
			return nil
		},
	}

	cmd.Flags().String("name", "", "New name")
	cmd.Flags().Int("author", 0, "Move to this author ID")
	cmd.Flags().StringArray("category", nil, "Replace categories, repeatable")
	return cmd
}

func newDeleteCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <authorId> <videoId>",
		Short: "Delete a video",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			authorID, videoID, err := parseVideoRef(args)
			if err != nil {
				return err
			}
			yes, _ := cmd.Flags().GetBool("yes")

			a, err := opts.load(cmd)
			if err != nil {
				return err
			}

			found, ok, err := a.svc.GetVideoWithAuthor(cmd.Context(), authorID, videoID)
			if err != nil {
				return err
			}
			if !ok {
				return videoNotFound(authorID, videoID)
			}

			out := cmd.OutOrStdout()
			if !yes && !confirm(cmd.InOrStdin(), out, fmt.Sprintf("Delete video %d %q?", videoID, found.Video.Name)) {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}

			if err := a.svc.DeleteVideo(cmd.Context(), videoID, authorID); err != nil {
				return err
			}
			fmt.Fprintf(out, "Deleted video %d.\n", videoID)
			return nil
		},
	}

	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
