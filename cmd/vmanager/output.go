package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmunix/vmanager/internal/catalog"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// truncate shortens s to max runes, marking the cut with "...".
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

func printVideoTable(w io.Writer, rows []catalog.ProcessedVideo) {
	fmt.Fprintf(w, "  %-5s %-30s %-20s %-24s %-14s %s\n", "ID", "NAME", "AUTHOR", "CATEGORIES", "QUALITY", "RELEASED")
	fmt.Fprintln(w, "  "+strings.Repeat("-", 108))

	for i := range rows {
		v := &rows[i]
		fmt.Fprintf(w, "  %-5d %-30s %-20s %-24s %-14s %s\n",
			v.ID,
			truncate(v.Name, 30),
			truncate(v.Author, 20),
			truncate(strings.Join(v.Categories, ", "), 24),
			v.HighestQualityFormat,
			catalog.FormatReleaseDate(v.ReleaseDate))
	}
}

func printVideoDetail(w io.Writer, v catalog.Video, author catalog.Author, categories []catalog.Category) {
	names := make(map[int]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	var cats []string
	for _, id := range v.CatIDs {
		if name, ok := names[id]; ok {
			cats = append(cats, name)
		} else {
			cats = append(cats, fmt.Sprintf("#%d", id))
		}
	}

	fmt.Fprintf(w, "Video %d: %s\n\n", v.ID, v.Name)
	fmt.Fprintf(w, "  Author:     %s (%d)\n", author.Name, author.ID)
	fmt.Fprintf(w, "  Categories: %s\n", strings.Join(cats, ", "))
	fmt.Fprintf(w, "  Released:   %s\n", catalog.FormatReleaseDate(v.ReleaseDate))
	fmt.Fprintf(w, "  Best:       %s\n", catalog.PickHighestQualityLabel(v.Formats))
	fmt.Fprintln(w, "  Formats:")
	for _, e := range v.Formats.Entries() {
		fmt.Fprintf(w, "    %-8s %-8s %s\n", e.Label, e.Format.Res, e.Format.Size)
	}
}

// confirm asks a yes/no question on out and reads the answer from in.
// Anything but y or yes is a no.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	}
	return false
}
