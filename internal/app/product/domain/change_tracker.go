package domain

// ChangeTracker records which fields of an aggregate were modified, in the
// order they were first touched, so repositories write only those columns.
type ChangeTracker struct {
	order []string
	dirty map[string]bool
}

// NewChangeTracker creates a new ChangeTracker.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{dirty: make(map[string]bool)}
}

// MarkDirty marks a field as modified.
func (ct *ChangeTracker) MarkDirty(field string) {
	if ct.dirty[field] {
		return
	}
	ct.dirty[field] = true
	ct.order = append(ct.order, field)
}

// Dirty reports whether a field has been modified.
func (ct *ChangeTracker) Dirty(field string) bool {
	return ct.dirty[field]
}

// Clear forgets all modifications.
func (ct *ChangeTracker) Clear() {
	ct.order = nil
	ct.dirty = make(map[string]bool)
}

// HasChanges reports whether any field has been modified.
func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.order) > 0
}

// DirtyFields returns the modified fields in the order they were first marked.
func (ct *ChangeTracker) DirtyFields() []string {
	out := make([]string, len(ct.order))
	copy(out, ct.order)
	return out
}
