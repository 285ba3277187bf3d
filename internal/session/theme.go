package session

// Theme is the site color scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme accepts "dark" and "light"; anything else is dark.
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Icon is the toggle button glyph for t.
func (t Theme) Icon() string {
	if t == ThemeLight {
		return "☀️"
	}
	return "🌙"
}
