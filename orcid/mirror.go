package orcid

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ResearchWork is the persisted mirror of one normalized registry
// record. The registry stays the source of truth; the mirror exists so
// the portal can serve publication lists while the registry is down.
type ResearchWork struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PutCode         int64     `gorm:"uniqueIndex" json:"put_code"`
	Title           string    `json:"title"`
	WorkType        string    `json:"work_type"`
	PublicationYear *int      `json:"publication_year,omitempty"`
	Journal         *string   `json:"journal,omitempty"`
	DOI             *string   `json:"doi,omitempty"`
	URL             *string   `json:"url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (ResearchWork) TableName() string { return "research_works" }

// WorkStore persists mirrored registry records keyed on put_code.
type WorkStore interface {
	UpsertWorks(ctx context.Context, works []ResearchWork) error
}

// SyncWorks fetches the researcher's works and upserts them into the
// mirror. Summaries without a put_code cannot be keyed and are
// skipped. Returns the number of mirrored records.
func SyncWorks(ctx context.Context, client *Client, store WorkStore) (int, error) {
	res, err := client.FetchWorks(ctx)
	if err != nil {
		return 0, err
	}
	if !res.Success {
		return 0, fmt.Errorf("orcid: sync: %s (status %d)", res.Error, res.Status)
	}

	works := make([]ResearchWork, 0, len(res.Researches))
	for _, w := range res.Researches {
		if w.PutCode == nil {
			continue
		}
		row := ResearchWork{
			ID:       uuid.New(),
			PutCode:  *w.PutCode,
			Title:    w.Title,
			WorkType: w.Type,
			Journal:  w.Journal,
			DOI:      w.DOI,
			URL:      w.URL,
		}
		if w.Year != nil {
			if year, err := strconv.Atoi(*w.Year); err == nil {
				row.PublicationYear = &year
			}
		}
		works = append(works, row)
	}

	if err := store.UpsertWorks(ctx, works); err != nil {
		return 0, err
	}
	return len(works), nil
}
