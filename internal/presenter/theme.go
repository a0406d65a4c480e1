package presenter

const (
	ThemeCookie = "tema_portal"

	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Theme returns the stored theme, dark when unset or unknown.
func Theme(stored string) string {
	if stored == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

func ToggleTheme(current string) string {
	if Theme(current) == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
