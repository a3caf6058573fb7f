package orcid

import "encoding/json"

// WorkSummary is the flat, stable shape the portal exposes for one
// registry work. Pointer fields are null when the upstream payload is
// missing the corresponding nesting.
type WorkSummary struct {
	PutCode *int64  `json:"put_code"`
	Title   string  `json:"title"`
	Type    string  `json:"type"`
	Year    *string `json:"year"`
	Journal *string `json:"journal"`
	DOI     *string `json:"doi"`
	URL     *string `json:"url"`
}

// WorksResult is the works-list contract. On upstream failure Success
// is false and Error/Status carry the rejection; no error crosses the
// component boundary for a non-2xx response.
type WorksResult struct {
	Success    bool          `json:"success"`
	Researches []WorkSummary `json:"researches"`
	Error      string        `json:"error,omitempty"`
	Status     int           `json:"status,omitempty"`
}

// WorkResult is the single-work contract: the upstream record verbatim,
// or the upstream failure.
type WorkResult struct {
	Success bool
	Record  json.RawMessage
	Error   string
	Status  int
}

// Upstream payload shapes. Every intermediate level is a pointer so a
// missing link anywhere in a dotted path yields null for that field
// instead of failing the record.

type worksPayload struct {
	Group []workGroup `json:"group"`
}

type workGroup struct {
	WorkSummary []workSummary `json:"work-summary"`
}

type workSummary struct {
	PutCode         *int64           `json:"put-code"`
	Type            *string          `json:"type"`
	Title           *titleContainer  `json:"title"`
	PublicationDate *publicationDate `json:"publication-date"`
	JournalTitle    *valueContainer  `json:"journal-title"`
	ExternalIDs     *externalIDList  `json:"external-ids"`
	URL             *valueContainer  `json:"url"`
}

type titleContainer struct {
	Title *valueContainer `json:"title"`
}

type publicationDate struct {
	Year *valueContainer `json:"year"`
}

type valueContainer struct {
	Value string `json:"value"`
}

type externalIDList struct {
	ExternalID []externalID `json:"external-id"`
}

type externalID struct {
	Type  string `json:"external-id-type"`
	Value string `json:"external-id-value"`
}
