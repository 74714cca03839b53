package logger

// ErrorEntry exposes one collected chain link for testing.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// CollectErrorEntries is exported for testing purposes only.
func CollectErrorEntries(err error) []ErrorEntry {
	entries := collectErrorEntries(err)
	if entries == nil {
		return nil
	}
	out := make([]ErrorEntry, len(entries))
	for i, e := range entries {
		out[i] = ErrorEntry{Message: e.message, Metadata: e.metadata}
	}
	return out
}
