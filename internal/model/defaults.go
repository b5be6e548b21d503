package model

// Default themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// DefaultTheme is the cold-start theme.
const DefaultTheme = ThemeLight

// DefaultSettings returns the hardcoded settings seed, also used as the
// merge base when a stored or imported settings record is partial.
func DefaultSettings() Settings {
	return Settings{
		AutoSave:      true,
		Notifications: true,
		SoundEffects:  false,
		CompactMode:   false,
		ShowCompleted: true,
	}
}

// DefaultUserProfile returns the empty profile seed.
func DefaultUserProfile() UserProfile {
	return UserProfile{}
}

// DefaultFocusMode returns the zeroed focus statistics seed.
func DefaultFocusMode() FocusMode {
	return FocusMode{Sessions: []FocusSession{}}
}

// DefaultProductivity returns the productivity seed with stock goals.
func DefaultProductivity() Productivity {
	return Productivity{
		DailyGoal:  5,
		WeeklyGoal: 30,
		History:    []ProductivityDay{},
	}
}
