package dto

import "github.com/lyra-school/lyra-web/internal/app/models"

// MenuItemView is one sidebar entry for the current role.
type MenuItemView struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
	Href string `json:"href"`
}

// StatCardView is one dashboard stat card.
type StatCardView struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Icon  string `json:"icon"`
	Href  string `json:"href,omitempty"`
}

// QuickActionView is one role-scoped shortcut.
type QuickActionView struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Href  string `json:"href"`
}

// DashboardView is the role-dispatched home page payload. Sections that
// fail to load degrade to empty values rather than failing the page.
type DashboardView struct {
	Role         models.Role                `json:"role"`
	Menu         []MenuItemView             `json:"menu"`
	StatCards    []StatCardView             `json:"stat_cards"`
	QuickActions []QuickActionView          `json:"quick_actions"`
	Upcoming     []models.Lesson            `json:"upcoming_lessons"`
	Alerts       []models.DashboardAlert    `json:"alerts"`
	Activities   []models.DashboardActivity `json:"activities"`
}
