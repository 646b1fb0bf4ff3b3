package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hbollon/go-edlib"
)

// SortField names a column of the video list.
type SortField string

const (
	SortName        SortField = "name"
	SortAuthor      SortField = "author"
	SortCategories  SortField = "categories"
	SortQuality     SortField = "highestQualityFormat"
	SortReleaseDate SortField = "releaseDate"
)

// SortDirection is ascending or descending.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// DefaultFuzzyThreshold is the Jaro-Winkler similarity a word needs to count
// as a fuzzy match.
const DefaultFuzzyThreshold = 0.85

// ParseSortField accepts a column name. "quality" and "date" are accepted as
// short forms.
func ParseSortField(s string) (SortField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "name":
		return SortName, nil
	case "author":
		return SortAuthor, nil
	case "categories", "category":
		return SortCategories, nil
	case "highestqualityformat", "quality":
		return SortQuality, nil
	case "releasedate", "date":
		return SortReleaseDate, nil
	}
	return "", fmt.Errorf("unknown sort field %q", s)
}

// ParseSortDirection accepts "asc" or "desc".
func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return Ascending, nil
	case "desc":
		return Descending, nil
	}
	return "", fmt.Errorf("unknown sort direction %q", s)
}

// Query describes how to filter and order the video list.
type Query struct {
	Term           string
	Sort           SortField
	Direction      SortDirection
	Fuzzy          bool
	FuzzyThreshold float64 // 0 means DefaultFuzzyThreshold
}

// Apply filters videos by the query term and sorts the result. The input
// slice is left as is.
func Apply(videos []ProcessedVideo, q Query) []ProcessedVideo {
	var out []ProcessedVideo
	if q.Fuzzy {
		threshold := q.FuzzyThreshold
		if threshold <= 0 {
			threshold = DefaultFuzzyThreshold
		}
		out = FuzzyFilter(videos, q.Term, threshold)
	} else {
		out = Filter(videos, q.Term)
	}
	Sort(out, q.Sort, q.Direction)
	return out
}

// Filter keeps videos whose name, author, or any category contains term,
// ignoring case and accents. A blank term keeps everything.
func Filter(videos []ProcessedVideo, term string) []ProcessedVideo {
	term = foldText(strings.TrimSpace(term))
	if term == "" {
		return slices.Clone(videos)
	}

	out := make([]ProcessedVideo, 0, len(videos))
	for _, v := range videos {
		if anyField(v, func(field string) bool { return strings.Contains(foldText(field), term) }) {
			out = append(out, v)
		}
	}
	return out
}

// FuzzyFilter is Filter that also keeps videos where some word of a field is
// within threshold Jaro-Winkler similarity of the term, so small typos still
// match.
func FuzzyFilter(videos []ProcessedVideo, term string, threshold float64) []ProcessedVideo {
	term = foldText(strings.TrimSpace(term))
	if term == "" {
		return slices.Clone(videos)
	}

	out := make([]ProcessedVideo, 0, len(videos))
	for _, v := range videos {
		if anyField(v, func(field string) bool { return fuzzyContains(foldText(field), term, threshold) }) {
			out = append(out, v)
		}
	}
	return out
}

func fuzzyContains(field, term string, threshold float64) bool {
	if strings.Contains(field, term) {
		return true
	}
	if float64(edlib.JaroWinklerSimilarity(field, term)) >= threshold {
		return true
	}
	for _, w := range words(field) {
		if float64(edlib.JaroWinklerSimilarity(w, term)) >= threshold {
			return true
		}
	}
	return false
}

func anyField(v ProcessedVideo, match func(string) bool) bool {
	if match(v.Name) || match(v.Author) {
		return true
	}
	return slices.ContainsFunc(v.Categories, match)
}

// Sort orders videos in place by the lowercase text of field. Equal rows keep
// their relative order.
func Sort(videos []ProcessedVideo, field SortField, dir SortDirection) {
	sign := 1
	if dir == Descending {
		sign = -1
	}
	slices.SortStableFunc(videos, func(a, b ProcessedVideo) int {
		return sign * strings.Compare(sortValue(a, field), sortValue(b, field))
	})
}

func sortValue(v ProcessedVideo, field SortField) string {
	var s string
	switch field {
	case SortAuthor:
		s = v.Author
	case SortCategories:
		s = strings.Join(v.Categories, ", ")
	case SortQuality:
		s = v.HighestQualityFormat
	case SortReleaseDate:
		s = v.ReleaseDate
	default:
		s = v.Name
	}
	return strings.ToLower(s)
}
