package cmn

import "slices"

// WordsRegistry is a mutable set of words.
//
// Not safe for concurrent mutation; guard Add, Remove and Clear externally
// when sharing an instance.
type WordsRegistry struct {
	set map[string]struct{}
}

// NewWordsRegistry returns a registry holding the built-in word catalog.
func NewWordsRegistry() *WordsRegistry {
	return NewWordsRegistryFrom(wordCatalog)
}

// NewWordsRegistryFrom returns a registry holding words, deduplicated.
func NewWordsRegistryFrom(words []string) *WordsRegistry {
	r := &WordsRegistry{set: make(map[string]struct{}, len(words))}
	for _, w := range words {
		r.set[w] = struct{}{}
	}

	return r
}

// Add inserts word and reports whether it was not already present.
func (r *WordsRegistry) Add(word string) bool {
	if _, ok := r.set[word]; ok {
		return false
	}

	r.set[word] = struct{}{}

	return true
}

// Remove deletes word and reports whether it was present.
func (r *WordsRegistry) Remove(word string) bool {
	if _, ok := r.set[word]; !ok {
		return false
	}

	delete(r.set, word)

	return true
}

// Contains reports whether word is in the set. Matching is exact.
func (r *WordsRegistry) Contains(word string) bool {
	_, ok := r.set[word]
	return ok
}

// Clear removes every word.
func (r *WordsRegistry) Clear() {
	clear(r.set)
}

// Len returns the number of words.
func (r *WordsRegistry) Len() int { return len(r.set) }

// All returns a snapshot of the words in lexical order.
func (r *WordsRegistry) All() []string {
	out := make([]string, 0, len(r.set))
	for w := range r.set {
		out = append(out, w)
	}

	slices.Sort(out)

	return out
}

// CatalogWords returns a copy of the built-in word list.
func CatalogWords() []string {
	return slices.Clone(wordCatalog)
}
