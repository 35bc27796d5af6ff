package types

// ComponentMetadata identifies the component that produced a log line.
type ComponentMetadata struct {
	ID   string // Unique identifier for the component.
	Type string // Type of the component, e.g. "FILE_SAVER" or "OBJECT_STORE".
	Name string // Human-readable name for the component.
}
