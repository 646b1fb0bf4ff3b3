package catalog

import "time"

var releaseDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// FormatReleaseDate renders an ISO date as dd.mm.yyyy. An empty date renders
// as an em dash and anything unparseable is returned unchanged.
func FormatReleaseDate(s string) string {
	if s == "" {
		return "—"
	}
	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02.01.2006")
		}
	}
	return s
}
