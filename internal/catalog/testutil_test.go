package catalog

func makeVideo(id int, name string) Video {
	return Video{
		ID:          id,
		Name:        name,
		CatIDs:      []int{1},
		Formats:     NewFormats(FormatEntry{Label: "one", Format: Format{Res: ResolutionOf("1080p"), Size: SizeOf(1000)}}),
		ReleaseDate: "2024-01-01",
	}
}

func formats(entries ...FormatEntry) Formats {
	return NewFormats(entries...)
}

func entry(label, res string, size float64) FormatEntry {
	return FormatEntry{Label: label, Format: Format{Res: ResolutionOf(res), Size: SizeOf(size)}}
}
