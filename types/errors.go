package types

import "fmt"

// SchemaError reports an expected column missing from a dataset.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error: expected column %q not found", e.Column)
}

// MappingError reports a malformed sentiment lookup table, e.g. a raw
// label appearing twice with conflicting groups. Unmapped labels in the
// data are NOT a MappingError; they are handled by the tag policy.
type MappingError struct {
	Label  string
	Reason string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping table error on label %q: %s", e.Label, e.Reason)
}
