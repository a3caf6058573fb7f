package orcid

const (
	defaultTitle = "No title"
	defaultType  = "Unknown"
)

// normalizeGroups flattens the registry's group list. Each group may
// carry several work-summary variants for the same logical work
// (duplicate submissions); only the first summary of each group is
// kept.
func normalizeGroups(groups []workGroup) []WorkSummary {
	works := make([]WorkSummary, 0, len(groups))
	for _, group := range groups {
		if len(group.WorkSummary) == 0 {
			continue
		}
		works = append(works, normalizeSummary(group.WorkSummary[0]))
	}
	return works
}

func normalizeSummary(s workSummary) WorkSummary {
	out := WorkSummary{
		PutCode: s.PutCode,
		Title:   defaultTitle,
		Type:    defaultType,
	}

	if s.Title != nil && s.Title.Title != nil && s.Title.Title.Value != "" {
		out.Title = s.Title.Title.Value
	}
	if s.Type != nil && *s.Type != "" {
		out.Type = *s.Type
	}
	if s.PublicationDate != nil && s.PublicationDate.Year != nil {
		year := s.PublicationDate.Year.Value
		out.Year = &year
	}
	if s.JournalTitle != nil {
		journal := s.JournalTitle.Value
		out.Journal = &journal
	}
	if s.ExternalIDs != nil {
		for _, ext := range s.ExternalIDs.ExternalID {
			if ext.Type == "doi" {
				doi := ext.Value
				out.DOI = &doi
				break
			}
		}
	}
	if s.URL != nil {
		url := s.URL.Value
		out.URL = &url
	}

	return out
}
