package catalog

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ToProcessedVideos flattens authors and their nested videos into one row per
// video, joined with category names. Rows keep author order, then video order.
// Category IDs with no matching category are dropped.
func ToProcessedVideos(authors []Author, categories []Category) []ProcessedVideo {
	categoryNames := make(map[int]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	out := make([]ProcessedVideo, 0)
	for _, author := range authors {
		for _, video := range author.Videos {
			out = append(out, ProcessedVideo{
				ID:                   video.ID,
				AuthorID:             author.ID,
				Name:                 video.Name,
				Author:               author.Name,
				HighestQualityFormat: PickHighestQualityLabel(video.Formats),
				ReleaseDate:          video.ReleaseDate,
				Categories:           categoryNamesFor(video.CatIDs, categoryNames),
			})
		}
	}
	return out
}

func categoryNamesFor(ids []int, names map[int]string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		// Empty names are dropped along with unknown IDs.
		if name := names[id]; name != "" {
			out = append(out, name)
		}
	}
	return out
}

// PickHighestQualityLabel returns "<label> <res>p" for the format with the
// largest size, breaking ties by the larger resolution number. A later entry
// replaces the current best only when it compares strictly greater, so a size
// that is not a number never wins and a tie involving a resolution that is
// not a number stays with whichever entry came first. A best resolution with
// no leading number is shown as written. Empty formats give "".
func PickHighestQualityLabel(formats Formats) string {
	var (
		best     FormatEntry
		bestSize = math.Inf(-1)
		bestRes  = math.Inf(-1)
	)

	for _, e := range formats.entries {
		size := e.Format.Size.Float()
		res := e.Format.Res.value()

		// NaN compares false both ways, which gives the tie rules above.
		if size > bestSize || (size == bestSize && res > bestRes) {
			best = e
			bestSize = size
			bestRes = res
		}
	}

	if best.Label == "" {
		return ""
	}
	if math.IsNaN(bestRes) {
		return best.Label + " " + best.Format.Res.String()
	}
	return best.Label + " " + strconv.FormatFloat(bestRes, 'f', -1, 64) + "p"
}

// parseLeadingInt reads an optionally signed run of leading decimal digits,
// skipping leading whitespace. It returns NaN when there are no digits.
func parseLeadingInt(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	sign := 1.0
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return math.NaN()
	}

	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return math.NaN()
	}
	return sign * n
}
