// Package views owns role-scoped view composition: the sidebar menu, the
// resource permission table, and the dashboard shortcuts. Pages resolve
// their role exactly once and dispatch through these tables instead of
// branching on role strings inline.
package views

import (
	"github.com/lyra-school/lyra-web/internal/app/models"
	"github.com/lyra-school/lyra-web/internal/app/models/dto"
)

// menus maps each role to its sidebar entries.
var menus = map[models.Role][]dto.MenuItemView{
	models.RoleAdmin: {
		{Name: "Dashboard", Icon: "home", Href: "/home"},
		{Name: "Users", Icon: "users", Href: "/users"},
		{Name: "Students", Icon: "user-graduate", Href: "/students"},
		{Name: "Professors", Icon: "user-tie", Href: "/professors"},
		{Name: "Courses", Icon: "chalkboard-teacher", Href: "/courses"},
		{Name: "Subjects", Icon: "book", Href: "/subjects"},
		{Name: "Lessons", Icon: "calendar-alt", Href: "/lessons"},
		{Name: "Exams", Icon: "graduation-cap", Href: "/exams"},
	},
	models.RoleProfessor: {
		{Name: "Dashboard", Icon: "home", Href: "/home"},
		{Name: "My Lessons", Icon: "calendar-alt", Href: "/lessons"},
		{Name: "Attendance", Icon: "clipboard-check", Href: "/attendances"},
		{Name: "Exams", Icon: "graduation-cap", Href: "/exams"},
		{Name: "Students", Icon: "user-graduate", Href: "/students"},
		{Name: "Profile", Icon: "user", Href: "/profile"},
	},
	models.RoleTutor: {
		{Name: "Dashboard", Icon: "home", Href: "/home"},
		{Name: "Students", Icon: "user-graduate", Href: "/students"},
		{Name: "Attendance", Icon: "clipboard-check", Href: "/attendances"},
		{Name: "Courses", Icon: "chalkboard-teacher", Href: "/courses"},
		{Name: "Lessons", Icon: "calendar-alt", Href: "/lessons"},
	},
	models.RoleStudent: {
		{Name: "Dashboard", Icon: "home", Href: "/home"},
		{Name: "My Profile", Icon: "user", Href: "/profile"},
		{Name: "Attendance", Icon: "clipboard-check", Href: "/attendances"},
		{Name: "Grades", Icon: "graduation-cap", Href: "/exams"},
		{Name: "Lessons", Icon: "calendar-alt", Href: "/lessons"},
	},
}

// permissions maps each role to the resources it may open.
var permissions = map[models.Role][]string{
	models.RoleAdmin:     {"users", "students", "professors", "courses", "subjects", "lessons", "attendances", "exams", "reports"},
	models.RoleProfessor: {"students", "lessons", "attendances", "exams", "reports", "profile"},
	models.RoleTutor:     {"students", "courses", "lessons", "attendances", "reports"},
	models.RoleStudent:   {"profile", "attendances", "exams", "lessons"},
}

// quickActions maps each role to its dashboard shortcuts.
var quickActions = map[models.Role][]dto.QuickActionView{
	models.RoleAdmin: {
		{Label: "Add user", Icon: "user-plus", Href: "/users"},
		{Label: "Enroll student", Icon: "user-graduate", Href: "/students"},
		{Label: "Schedule lesson", Icon: "calendar-plus", Href: "/lessons"},
		{Label: "Grade reports", Icon: "chart-bar", Href: "/reports"},
	},
	models.RoleProfessor: {
		{Label: "Register attendance", Icon: "clipboard-check", Href: "/attendances"},
		{Label: "Enter grades", Icon: "graduation-cap", Href: "/exams"},
		{Label: "My lessons", Icon: "calendar-alt", Href: "/lessons"},
	},
	models.RoleTutor: {
		{Label: "Students", Icon: "user-graduate", Href: "/students"},
		{Label: "Attendance", Icon: "clipboard-check", Href: "/attendances"},
		{Label: "Grade reports", Icon: "chart-bar", Href: "/reports"},
	},
	models.RoleStudent: {
		{Label: "Mark presence", Icon: "clipboard-check", Href: "/attendances"},
		{Label: "My grades", Icon: "graduation-cap", Href: "/exams"},
		{Label: "My lessons", Icon: "calendar-alt", Href: "/lessons"},
	},
}

// MenuFor returns the sidebar entries for a role. Unknown roles get the
// student menu, the most restricted one.
func MenuFor(role models.Role) []dto.MenuItemView {
	if items, ok := menus[role]; ok {
		return items
	}
	return menus[models.RoleStudent]
}

// QuickActionsFor returns the dashboard shortcuts for a role.
func QuickActionsFor(role models.Role) []dto.QuickActionView {
	if actions, ok := quickActions[role]; ok {
		return actions
	}
	return quickActions[models.RoleStudent]
}

// HasAccess reports whether a role may open a resource page.
func HasAccess(role models.Role, resource string) bool {
	for _, allowed := range permissions[role] {
		if allowed == resource {
			return true
		}
	}
	return false
}
