// Package navigation defines the site navigation menus.
package navigation

import "portfolio/internal/domain/entity"

// Menu item ids.
const (
	MenuHome     = "home"
	MenuProducts = "products"
	MenuContact  = "contact"
)

// MainMenuConfig returns the main menu in display order. Each call returns a fresh slice.
func MainMenuConfig() []entity.MenuItem {
	return []entity.MenuItem{
		{ID: MenuHome, Href: "/"},
		{ID: MenuProducts, Href: "/products"},
		{ID: MenuContact, Href: "/contact"},
	}
}
