// Package cmn is a registry of named mathematical and physical constants plus
// a companion set of deduplicated words, both owned by a single [Common] handle.
//
// Constants are immutable [ConstantEntry] values holding a tagged [Value].
// Every entry carries a [HashConfig] that derives an integrity digest from the
// entry's name and value. [ConstantEntry.IsValid] is a self-consistency check:
// the configuration must be sane, the digest must have the declared length, and
// the value must be well-formed. There is no stored reference digest.
//
// # Construction
//
//	c := cmn.New()                     // built-in catalogs, default hashing
//	c, err := cmn.FromJSON(data)       // serialized document, see [Document]
//
// # Concurrency
//
// [ConstantsRegistry] is read-only after construction and may be shared between
// goroutines without locking. [WordsRegistry] is mutable and not synchronized;
// callers must serialize Add, Remove and Clear on the same instance.
package cmn
