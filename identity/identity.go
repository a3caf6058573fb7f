// Package identity defines the account records of the portal: the
// authenticatable Identity, its role-specific profile extensions, and
// the session record backing issued tokens.
package identity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the closed set of account roles. Profile provisioning and
// endpoint authorization both dispatch on it.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleFaculty Role = "FACULTY"
	RoleAdmin   Role = "ADMIN"
)

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// Identity is the authenticatable account record. Email is the login
// key. KauID is the institutional id, required for non-staff accounts.
type Identity struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string         `gorm:"uniqueIndex" json:"email"`
	KauID        *int64         `gorm:"uniqueIndex" json:"kau_id,omitempty"`
	Username     string         `json:"username"`
	PasswordHash string         `json:"-"`
	Role         Role           `gorm:"type:varchar(10);index" json:"role"`
	IsStaff      bool           `json:"is_staff"`
	IsSuperuser  bool           `json:"is_superuser"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Identity) TableName() string { return "identities" }

// StudentProfile is the 1:1 extension record for STUDENT identities.
// The unique index on IdentityID is what makes provisioning idempotent
// and rejects a racing duplicate at the store level.
type StudentProfile struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	IdentityID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"identity_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (StudentProfile) TableName() string { return "student_profiles" }

// FacultyProfile is the 1:1 extension record for FACULTY identities.
type FacultyProfile struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	IdentityID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"identity_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (FacultyProfile) TableName() string { return "faculty_profiles" }

// Session is the durable record behind an issued token.
type Session struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	IdentityID uuid.UUID `gorm:"type:uuid;index" json:"identity_id"`
	IssuedAt   time.Time `json:"issued_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	Active     bool      `json:"active"`
}

func (Session) TableName() string { return "sessions" }
