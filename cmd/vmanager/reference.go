package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAuthorsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "authors",
		Short: "List authors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}
			authors, err := a.svc.GetAuthors(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return printJSON(out, authors)
			}
			if len(authors) == 0 {
				fmt.Fprintln(out, "No authors.")
				return nil
			}
			fmt.Fprintf(out, "  %-5s %-30s %s\n", "ID", "NAME", "VIDEOS")
			fmt.Fprintln(out, "  "+strings.Repeat("-", 45))
			for _, au := range authors {
				fmt.Fprintf(out, "  %-5d %-30s %d\n", au.ID, truncate(au.Name, 30), len(au.Videos))
			}
			return nil
		},
	}
}

func newCategoriesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}
			categories, err := a.svc.GetCategories(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return printJSON(out, categories)
			}
			if len(categories) == 0 {
				fmt.Fprintln(out, "No categories.")
				return nil
			}
			fmt.Fprintf(out, "  %-5s %s\n", "ID", "NAME")
			fmt.Fprintln(out, "  "+strings.Repeat("-", 30))
			for _, c := range categories {
				fmt.Fprintf(out, "  %-5d %s\n", c.ID, c.Name)
			}
			return nil
		},
	}
}
