package views

import (
	"testing"

	"github.com/lyra-school/lyra-web/internal/app/models"
)

func TestMenuForFallsBackToStudent(t *testing.T) {
	t.Parallel()

	unknown := MenuFor(models.Role("intruder"))
	student := MenuFor(models.RoleStudent)
	if len(unknown) != len(student) {
		t.Fatalf("unknown role menu length: got %d, want %d", len(unknown), len(student))
	}
	for i := range unknown {
		if unknown[i] != student[i] {
			t.Errorf("item %d: got %+v, want %+v", i, unknown[i], student[i])
		}
	}
}

func TestEveryMenuStartsAtDashboard(t *testing.T) {
	t.Parallel()

	for _, role := range []models.Role{models.RoleAdmin, models.RoleProfessor, models.RoleTutor, models.RoleStudent} {
		menu := MenuFor(role)
		if len(menu) == 0 || menu[0].Href != "/home" {
			t.Errorf("%s: first menu entry should be the dashboard, got %+v", role, menu)
		}
	}
}

func TestHasAccess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role     models.Role
		resource string
		want     bool
	}{
		{models.RoleAdmin, "users", true},
		{models.RoleProfessor, "users", false},
		{models.RoleTutor, "reports", true},
		{models.RoleStudent, "reports", false},
		{models.RoleStudent, "attendances", true},
		{models.Role("intruder"), "users", false},
	}

	for _, tt := range tests {
		if got := HasAccess(tt.role, tt.resource); got != tt.want {
			t.Errorf("HasAccess(%s, %s): got %v, want %v", tt.role, tt.resource, got, tt.want)
		}
	}
}

func TestMenuEntriesStayWithinPermissions(t *testing.T) {
	t.Parallel()

	// Home and profile are open to every signed-in user; everything else
	// in a role's menu must be a resource the role may open.
	open := map[string]bool{"/home": true, "/profile": true}

	for role := range menus {
		for _, item := range MenuFor(role) {
			if open[item.Href] {
				continue
			}
			resource := item.Href[1:]
			if !HasAccess(role, resource) {
				t.Errorf("%s: menu links to %s without page access", role, item.Href)
			}
		}
	}
}
