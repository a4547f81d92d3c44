package entity

// Theme represents the color scheme preference of a user.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// IsValid checks if the Theme is a valid value.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	default:
		return false
	}
}

// UserSettings holds the persisted preferences of a user. A nil field means no preference was recorded.
type UserSettings struct {
	Locale *string `json:"locale,omitempty"`
	Theme  *Theme  `json:"theme,omitempty"`
}
