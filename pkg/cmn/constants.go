package cmn

// ConstantsRegistry is an ordered, read-only collection of [ConstantEntry].
//
// Iteration follows catalog declaration order; lookup is by exact,
// case-sensitive name. The registry has no mutating methods, so it can be
// shared between goroutines once constructed.
type ConstantsRegistry struct {
	entries []ConstantEntry
	index   map[string]int
}

// NewConstantsRegistry populates a registry from the built-in catalog, binding
// every entry to cfg.
func NewConstantsRegistry(cfg HashConfig) *ConstantsRegistry {
	entries := make([]ConstantEntry, len(constantCatalog))
	for i, row := range constantCatalog {
		entries[i] = NewConstantEntry(row.name, row.value, cfg)
	}

	return newConstantsRegistry(entries)
}

// newConstantsRegistry takes ownership of entries. Callers guarantee unique
// names; the catalog is unique by construction and decode rejects duplicates.
func newConstantsRegistry(entries []ConstantEntry) *ConstantsRegistry {
	index := make(map[string]int, len(entries))
	for i, e := range entries {
		index[e.name] = i
	}

	return &ConstantsRegistry{entries: entries, index: index}
}

// Lookup returns the value of the named constant. A missing name, including
// the empty string, reports false.
func (r *ConstantsRegistry) Lookup(name string) (Value, bool) {
	e, ok := r.Entry(name)
	if !ok {
		return Value{}, false
	}

	return e.value, true
}

// Entry returns the named entry.
func (r *ConstantsRegistry) Entry(name string) (ConstantEntry, bool) {
	i, ok := r.index[name]
	if !ok {
		return ConstantEntry{}, false
	}

	return r.entries[i], true
}

// All returns a snapshot of every entry in declaration order.
func (r *ConstantsRegistry) All() []ConstantEntry {
	out := make([]ConstantEntry, len(r.entries))
	copy(out, r.entries)

	return out
}

// Names returns constant names in declaration order.
func (r *ConstantsRegistry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}

	return names
}

// Len returns the number of constants.
func (r *ConstantsRegistry) Len() int { return len(r.entries) }

// IsValid reports whether the named constant exists and is self-consistent.
// For the special-character set this also checks the set size and that no
// character repeats.
func (r *ConstantsRegistry) IsValid(name string) bool {
	e, ok := r.Entry(name)
	if !ok {
		return false
	}

	return e.IsValid()
}

// AllValid reports whether every entry is valid.
func (r *ConstantsRegistry) AllValid() bool {
	for _, e := range r.entries {
		if !e.IsValid() {
			return false
		}
	}

	return true
}
