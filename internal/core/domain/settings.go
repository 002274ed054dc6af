package domain

const unknownDescription = "Unknown"

// Theme selects the colour palette of the terminal UI.
type Theme string

// Available themes.
const (
	// ThemeLight is the default palette on a light background.
	ThemeLight Theme = "light"

	// ThemeDark renders white text on a black background.
	ThemeDark Theme = "dark"
)

// IsValid returns true if the theme is recognised.
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// IsDark returns true for the dark palette.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// String returns the string representation.
func (t Theme) String() string {
	return string(t)
}

// Description returns a human-readable description of the theme.
func (t Theme) Description() string {
	switch t {
	case ThemeLight:
		return "Light"
	case ThemeDark:
		return "Dark"
	default:
		return unknownDescription
	}
}

// ThemeFromDark maps the dark-mode flag to a theme.
func ThemeFromDark(dark bool) Theme {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}

// StorageBackend identifies where stores persist their collections.
type StorageBackend string

// Available storage backends.
const (
	// StorageSQLite persists to ~/.syllabus/data/syllabus.db.
	StorageSQLite StorageBackend = "sqlite"

	// StorageMemory keeps everything in process; nothing survives exit.
	StorageMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	return b == StorageSQLite || b == StorageMemory
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageSQLite:
		return "SQLite (persistent)"
	case StorageMemory:
		return "In-memory (discarded on exit)"
	default:
		return unknownDescription
	}
}

// UISettings holds the preferences the view coordinator starts from.
type UISettings struct {
	Theme    Theme
	Semester int
}

// StorageSettings configures persistence.
type StorageSettings struct {
	Backend StorageBackend
	DataDir string
}

// LogSettings configures the verbose logger.
type LogSettings struct {
	// Format is "console" or "json".
	Format string
}

// AppSettings is the full application configuration.
type AppSettings struct {
	UI      UISettings
	Storage StorageSettings
	Log     LogSettings
}

// DefaultAppSettings returns settings used when no config file exists.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		UI: UISettings{
			Theme:    ThemeLight,
			Semester: 1,
		},
		Storage: StorageSettings{
			Backend: StorageSQLite,
		},
		Log: LogSettings{
			Format: "console",
		},
	}
}
