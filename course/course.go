// Package course holds the course catalog. Listing is open to any
// authenticated account; creation is faculty-gated at the transport
// layer.
package course

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCodeRequired  = errors.New("course code required")
	ErrTitleRequired = errors.New("course title required")
)

type Course struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Code      string     `gorm:"uniqueIndex" json:"code"`
	Title     string     `json:"title"`
	Credits   int        `json:"credits"`
	FacultyID *uuid.UUID `gorm:"type:uuid;index" json:"faculty_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Course) TableName() string { return "courses" }

// Store persists the catalog.
type Store interface {
	CreateCourse(ctx context.Context, c *Course) error
	ListCourses(ctx context.Context) ([]Course, error)
	GetCourseByCode(ctx context.Context, code string) (*Course, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context) ([]Course, error) {
	return s.store.ListCourses(ctx)
}

func (s *Service) GetByCode(ctx context.Context, code string) (*Course, error) {
	return s.store.GetCourseByCode(ctx, code)
}

// Create validates and persists a new course, recording the creating
// faculty identity as owner.
func (s *Service) Create(ctx context.Context, code, title string, credits int, facultyID *uuid.UUID) (*Course, error) {
	if code == "" {
		return nil, ErrCodeRequired
	}
	if title == "" {
		return nil, ErrTitleRequired
	}

	c := &Course{
		ID:        uuid.New(),
		Code:      code,
		Title:     title,
		Credits:   credits,
		FacultyID: facultyID,
	}
	if err := s.store.CreateCourse(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
