package cmn

// ConstantEntry is a named constant bound to the hash config used to check it.
// Entries never change after creation.
type ConstantEntry struct {
	name  string
	value Value
	cfg   HashConfig
}

// NewConstantEntry returns an entry without validating it; see
// [ConstantEntry.IsValid].
func NewConstantEntry(name string, value Value, cfg HashConfig) ConstantEntry {
	return ConstantEntry{name: name, value: value, cfg: cfg}
}

// Name returns the constant's name.
func (e ConstantEntry) Name() string { return e.name }

// Value returns the constant's payload.
func (e ConstantEntry) Value() Value { return e.value }

// HashConfig returns the config the entry is checked against.
func (e ConstantEntry) HashConfig() HashConfig { return e.cfg }

// Digest hashes the canonical (name, value) encoding under the entry's config.
func (e ConstantEntry) Digest() []byte {
	return e.cfg.Compute(e.canonical())
}

// IsValid reports whether the entry is self-consistent: it has a name, its
// value is well-formed, its config is valid and the digest has the declared
// length. The special_characters entry must also be a chars value with exactly
// len(SpecialCharacters) characters.
func (e ConstantEntry) IsValid() bool {
	if e.name == "" || !e.value.WellFormed() || !e.cfg.Valid() {
		return false
	}

	if e.name == NameSpecialCharacters && !isSpecialCharacterSet(e.value) {
		return false
	}

	return len(e.Digest()) == e.cfg.HashLen
}

// canonical is name, a zero separator, then the value encoding. Names are
// identifiers so they never contain the separator in practice, and the kind
// byte after it keeps the encoding unambiguous for the catalog.
func (e ConstantEntry) canonical() []byte {
	buf := make([]byte, 0, len(e.name)+16)
	buf = append(buf, e.name...)
	buf = append(buf, 0)

	return e.value.appendCanonical(buf)
}

func isSpecialCharacterSet(v Value) bool {
	return v.kind == KindChars && len(v.chars) == len(SpecialCharacters)
}
