// Package catalog holds the video catalog data model and the pure functions that
// reconcile the store's nested author records with the flat rows the CLI shows.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Category is a named tag a video references by ID.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Author owns a list of videos. The store replaces author records whole.
type Author struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Videos []Video `json:"videos"`
}

// Video is a catalog entry as the store keeps it, nested inside its author.
type Video struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	CatIDs      []int   `json:"catIds"`
	Formats     Formats `json:"formats"`
	ReleaseDate string  `json:"releaseDate"` // "2024-03-01"
}

// Format describes one encoding of a video.
type Format struct {
	Res  Resolution `json:"res"` // e.g., "1080p"
	Size Size       `json:"size"`
}

// ProcessedVideo is the flat, display-ready projection of a video joined with
// its owning author and category names. It is never persisted.
type ProcessedVideo struct {
	ID                   int      `json:"id"`
	AuthorID             int      `json:"authorId"`
	Name                 string   `json:"name"`
	Author               string   `json:"author"`
	HighestQualityFormat string   `json:"highestQualityFormat"`
	ReleaseDate          string   `json:"releaseDate"`
	Categories           []string `json:"categories"`
}

// Size is a format's size. The store holds it either as a JSON number or as a
// numeric string, so the raw token is kept and written back unchanged.
type Size struct {
	raw string
}

// SizeOf returns a Size holding the number n.
func SizeOf(n float64) Size {
	return Size{raw: strconv.FormatFloat(n, 'f', -1, 64)}
}

// Float coerces the size to a number. Blank strings and null are 0; anything
// non-numeric is NaN.
func (s Size) Float() float64 {
	raw := strings.TrimSpace(s.raw)
	switch raw {
	case "", "null", "false":
		return 0
	case "true":
		return 1
	}
	if strings.HasPrefix(raw, `"`) {
		var text string
		if err := json.Unmarshal([]byte(raw), &text); err != nil {
			return math.NaN()
		}
		raw = strings.TrimSpace(text)
		if raw == "" {
			return 0
		}
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

func (s Size) String() string {
	return strconv.FormatFloat(s.Float(), 'f', -1, 64)
}

// MarshalJSON implements json.Marshaler.
func (s Size) MarshalJSON() ([]byte, error) {
	if s.raw == "" {
		return []byte("0"), nil
	}
	return []byte(s.raw), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Size) UnmarshalJSON(data []byte) error {
	s.raw = string(bytes.TrimSpace(data))
	return nil
}

// Resolution is a format's resolution. The store usually holds a string such
// as "1080p" but may hold a bare number, so the raw token is kept and written
// back unchanged.
type Resolution struct {
	raw string
}

// ResolutionOf returns a Resolution holding the string s.
func ResolutionOf(s string) Resolution {
	raw, _ := json.Marshal(s)
	return Resolution{raw: string(raw)}
}

// String returns the text form: the string value, or the number as written.
func (r Resolution) String() string {
	raw := strings.TrimSpace(r.raw)
	if raw == "null" {
		return ""
	}
	if strings.HasPrefix(raw, `"`) {
		var text string
		if err := json.Unmarshal([]byte(raw), &text); err != nil {
			return raw
		}
		return text
	}
	return raw
}

// value ranks the resolution. Strings use their leading integer; other
// tokens are coerced as numbers, with null and false as 0.
func (r Resolution) value() float64 {
	raw := strings.TrimSpace(r.raw)
	switch raw {
	case "":
		return math.NaN()
	case "null", "false":
		return 0
	case "true":
		return 1
	}
	if strings.HasPrefix(raw, `"`) {
		return parseLeadingInt(r.String())
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

// MarshalJSON implements json.Marshaler.
func (r Resolution) MarshalJSON() ([]byte, error) {
	if r.raw == "" {
		return []byte(`""`), nil
	}
	return []byte(r.raw), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Resolution) UnmarshalJSON(data []byte) error {
	r.raw = string(bytes.TrimSpace(data))
	return nil
}

// FormatEntry is one labelled format.
type FormatEntry struct {
	Label  string
	Format Format
}

// Formats maps a label to a Format and remembers the order labels were added,
// which is the order the store wrote them in.
type Formats struct {
	entries []FormatEntry
}

// NewFormats builds Formats from entries. A repeated label keeps its first
// position and takes the later value.
func NewFormats(entries ...FormatEntry) Formats {
	var f Formats
	for _, e := range entries {
		f.Set(e.Label, e.Format)
	}
	return f
}

// Len returns the number of labels.
func (f Formats) Len() int {
	return len(f.entries)
}

// Entries returns the labelled formats in insertion order.
func (f Formats) Entries() []FormatEntry {
	out := make([]FormatEntry, len(f.entries))
	copy(out, f.entries)
	return out
}

// Set stores format under label, replacing any existing value in place.
func (f *Formats) Set(label string, format Format) {
	for i := range f.entries {
		if f.entries[i].Label == label {
			f.entries[i].Format = format
			return
		}
	}
	f.entries = append(f.entries, FormatEntry{Label: label, Format: format})
}

// MarshalJSON writes the formats as a JSON object in insertion order.
func (f Formats) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range f.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Label)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Format)
		if err != nil {
			return nil, fmt.Errorf("format %q: %w", e.Label, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, keeping key order.
func (f *Formats) UnmarshalJSON(data []byte) error {
	f.entries = nil
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("formats: %w", err)
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("formats: expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("formats: %w", err)
		}
		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("formats: expected key, got %v", tok)
		}
		var format Format
		if err := dec.Decode(&format); err != nil {
			return fmt.Errorf("formats: %q: %w", label, err)
		}
		f.Set(label, format)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("formats: %w", err)
	}
	return nil
}
