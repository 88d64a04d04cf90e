package domain

import (
	"fmt"
	"strings"
)

// Attribute keys with defaulting rules. Every other key in the bag is
// opaque: whatever the client writes is what the store keeps.
const (
	AttrTitle       = "title"
	AttrDescription = "description"
	AttrStatus      = "status"

	// DefaultStatus is applied when a task is created without a status.
	DefaultStatus = "pending"
)

// Task represents a tracked task. The ID is assigned by the durable store;
// Data is the task's attribute bag, stored as a single semi-structured
// column and never decomposed into typed fields.
type Task struct {
	ID   int64          `json:"id"`
	Data map[string]any `json:"data"`
}

// ValidateTitle checks that the attribute bag carries a usable title:
// present, a string, and non-empty after trimming.
// Returns ErrTitleRequired wrapped with the failure detail otherwise.
func ValidateTitle(attrs map[string]any) error {
	raw, ok := attrs[AttrTitle]
	if !ok {
		return fmt.Errorf("%w: missing", ErrTitleRequired)
	}
	title, ok := raw.(string)
	if !ok {
		return fmt.Errorf("%w: not a string", ErrTitleRequired)
	}
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: blank", ErrTitleRequired)
	}
	return nil
}

// NewTaskAttributes builds the attribute bag for a freshly created task.
// All request keys are preserved as-is; description defaults to null and
// status defaults to DefaultStatus when absent. The input map is not
// modified.
func NewTaskAttributes(attrs map[string]any) map[string]any {
	data := make(map[string]any, len(attrs)+2)
	for k, v := range attrs {
		data[k] = v
	}
	if _, ok := data[AttrDescription]; !ok {
		data[AttrDescription] = nil
	}
	if _, ok := data[AttrStatus]; !ok {
		data[AttrStatus] = DefaultStatus
	}
	return data
}

// MergeAttributes computes the attribute bag for a partial update: the
// existing bag overlaid with every key present in patch. Patch keys win,
// keys not mentioned are preserved, and the merge is shallow, so nested
// objects are replaced wholesale. Neither input map is modified.
func MergeAttributes(existing, patch map[string]any) map[string]any {
	merged := make(map[string]any, len(existing)+len(patch))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}
