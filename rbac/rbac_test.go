package rbac

import (
	"testing"

	"github.com/kauportal/portal/identity"
)

func TestAllows(t *testing.T) {
	facultyIdent := &identity.Identity{Role: identity.RoleFaculty}
	studentIdent := &identity.Identity{Role: identity.RoleStudent}

	cases := []struct {
		name     string
		ident    *identity.Identity
		required identity.Role
		want     bool
	}{
		{"faculty passes faculty gate", facultyIdent, identity.RoleFaculty, true},
		{"student fails faculty gate", studentIdent, identity.RoleFaculty, false},
		{"unauthenticated fails faculty gate", nil, identity.RoleFaculty, false},
		{"student passes student gate", studentIdent, identity.RoleStudent, true},
		{"faculty fails student gate", facultyIdent, identity.RoleStudent, false},
		{"admin fails faculty gate", &identity.Identity{Role: identity.RoleAdmin}, identity.RoleFaculty, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Allows(tc.ident, tc.required); got != tc.want {
				t.Errorf("Allows() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestStandingPredicates(t *testing.T) {
	if !IsFaculty(&identity.Identity{Role: identity.RoleFaculty}) {
		t.Error("IsFaculty rejected a faculty identity")
	}
	if IsFaculty(&identity.Identity{Role: identity.RoleStudent}) {
		t.Error("IsFaculty accepted a student identity")
	}
	if !IsStudent(&identity.Identity{Role: identity.RoleStudent}) {
		t.Error("IsStudent rejected a student identity")
	}
	if IsStudent(nil) {
		t.Error("IsStudent accepted an unauthenticated request")
	}
}
