package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/vmanager/internal/catalog"
)

func newListCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List videos",
		Long: `Lists every video with its author, categories, best format and release date.

--search keeps videos whose name, author or a category contains the term,
ignoring case and accents. With --fuzzy (or search.fuzzy in the config)
words match by similarity instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().StringP("search", "s", "", "Filter by name, author or category")
	cmd.Flags().String("sort", "name", "Sort by name, author, categories, quality or releaseDate")
	cmd.Flags().Bool("desc", false, "Sort descending")
	cmd.Flags().Bool("fuzzy", false, "Match search terms by similarity")
	return cmd
}

func runList(cmd *cobra.Command, opts *options) error {
	term, _ := cmd.Flags().GetString("search")
	sortFlag, _ := cmd.Flags().GetString("sort")
	desc, _ := cmd.Flags().GetBool("desc")
	fuzzy, _ := cmd.Flags().GetBool("fuzzy")

	field, err := catalog.ParseSortField(sortFlag)
	if err != nil {
		return err
	}
	dir := catalog.Ascending
	if desc {
		dir = catalog.Descending
	}

	a, err := opts.load(cmd)
	if err != nil {
		return err
	}

	all, err := a.svc.GetVideos(cmd.Context())
	if err != nil {
		return fmt.Errorf("load videos: %w", err)
	}

	rows := catalog.Apply(all, catalog.Query{
		Term:           term,
		Sort:           field,
		Direction:      dir,
		Fuzzy:          fuzzy || a.cfg.Search.Fuzzy,
		FuzzyThreshold: a.cfg.Search.FuzzyThreshold,
	})

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		if rows == nil {
			rows = []catalog.ProcessedVideo{}
		}
		return printJSON(out, rows)
	}

	if len(rows) == 0 {
		if term != "" {
			fmt.Fprintf(out, "No videos match %q.\n", term)
		} else {
			fmt.Fprintln(out, "No videos.")
		}
		return nil
	}

	fmt.Fprintf(out, "Videos (%d of %d):\n\n", len(rows), len(all))
	printVideoTable(out, rows)
	return nil
}
