package logger

var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

// Message returns the message of a collected entry.
func (e errorEntry) Message() string { return e.message }

// Metadata returns the metadata of a collected entry.
func (e errorEntry) Metadata() map[string]any { return e.metadata }
