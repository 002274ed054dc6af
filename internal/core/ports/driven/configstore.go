package driven

// ConfigStore holds flat dot-notation settings such as "ui.theme".
// Values written with Set are visible to the next Get; whether they survive
// the process depends on the adapter.
type ConfigStore interface {
	// Get returns the raw value and whether the key is present.
	Get(key string) (any, bool)

	// GetString returns "" for missing or non-string values.
	GetString(key string) string

	// GetInt returns 0 for missing or non-integer values.
	GetInt(key string) int

	// Set stores a value. File-backed stores write through.
	Set(key string, value any) error
}
