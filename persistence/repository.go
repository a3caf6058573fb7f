// Package persistence implements the portal's storage interfaces on
// GORM. Uniqueness is enforced here, not in application code: duplicate
// emails, kau_ids and one-to-one profile links all surface as the
// store's integrity error, unchanged.
package persistence

import (
	"context"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kauportal/portal/course"
	"github.com/kauportal/portal/identity"
	"github.com/kauportal/portal/orcid"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func init() {
	Register("sqlite", sqlite.Open)
	Register("postgres", postgres.Open)
	Register("mysql", mysql.Open)
}

// DB exposes the underlying handle for wiring code.
func (r *Repository) DB() *gorm.DB { return r.db }

func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&identity.Identity{},
		&identity.StudentProfile{},
		&identity.FacultyProfile{},
		&identity.Session{},
		&course.Course{},
		&orcid.ResearchWork{},
	)
}

func (r *Repository) CreateIdentity(ctx context.Context, ident *identity.Identity) error {
	return r.db.WithContext(ctx).Create(ident).Error
}

func (r *Repository) GetIdentity(ctx context.Context, id uuid.UUID) (*identity.Identity, error) {
	var ident identity.Identity
	if err := r.db.WithContext(ctx).First(&ident, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ident, nil
}

func (r *Repository) GetIdentityByEmail(ctx context.Context, email string) (*identity.Identity, error) {
	var ident identity.Identity
	if err := r.db.WithContext(ctx).First(&ident, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &ident, nil
}

func (r *Repository) EnsureStudentProfile(ctx context.Context, identityID uuid.UUID) error {
	var profile identity.StudentProfile
	return r.db.WithContext(ctx).
		Where(identity.StudentProfile{IdentityID: identityID}).
		Attrs(identity.StudentProfile{ID: uuid.New()}).
		FirstOrCreate(&profile).Error
}

func (r *Repository) EnsureFacultyProfile(ctx context.Context, identityID uuid.UUID) error {
	var profile identity.FacultyProfile
	return r.db.WithContext(ctx).
		Where(identity.FacultyProfile{IdentityID: identityID}).
		Attrs(identity.FacultyProfile{ID: uuid.New()}).
		FirstOrCreate(&profile).Error
}

func (r *Repository) CreateSession(ctx context.Context, s *identity.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *Repository) GetSession(ctx context.Context, id uuid.UUID) (*identity.Session, error) {
	var s identity.Session
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) RevokeSession(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&identity.Session{}).
		Where("id = ?", id).
		Update("active", false).Error
}

func (r *Repository) CreateCourse(ctx context.Context, c *course.Course) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *Repository) ListCourses(ctx context.Context) ([]course.Course, error) {
	var courses []course.Course
	if err := r.db.WithContext(ctx).Order("code").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *Repository) GetCourseByCode(ctx context.Context, code string) (*course.Course, error) {
	var c course.Course
	if err := r.db.WithContext(ctx).First(&c, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// UpsertWorks mirrors normalized registry records, keyed on put_code.
func (r *Repository) UpsertWorks(ctx context.Context, works []orcid.ResearchWork) error {
	if len(works) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "put_code"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "work_type", "publication_year", "journal", "doi", "url", "updated_at",
		}),
	}).Create(&works).Error
}

func (r *Repository) ListWorks(ctx context.Context) ([]orcid.ResearchWork, error) {
	var works []orcid.ResearchWork
	if err := r.db.WithContext(ctx).Order("put_code").Find(&works).Error; err != nil {
		return nil, err
	}
	return works, nil
}
