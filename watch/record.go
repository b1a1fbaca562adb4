package watch

// Record is one observed change of a chain's leaf member. Value access is
// deferred so a record for a broken chain can exist without evaluating it.
type Record struct {
	// Sender is the object owning the leaf member at emission time; nil
	// while the chain is broken.
	Sender any
	// Member is the leaf member's name.
	Member string

	value func() (any, bool)
}

// Value realizes the leaf member's value. ok is false while the chain is
// broken; access never panics.
func (r Record) Value() (any, bool) {
	if r.value == nil {
		return nil, false
	}
	return r.value()
}

// HasValue reports whether the chain could be evaluated down to the leaf.
func (r Record) HasValue() bool {
	_, ok := r.Value()
	return ok
}
