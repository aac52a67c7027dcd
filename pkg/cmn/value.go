package cmn

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"
)

// Kind identifies which payload a [Value] holds.
type Kind uint8

// Value kinds. The zero Kind is invalid so an uninitialized [Value] is never
// mistaken for a float.
const (
	kindInvalid Kind = iota
	KindFloat
	KindString
	KindChars
	KindU32
	KindUSize
)

// String returns the type tag used in serialized documents.
func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindChars:
		return "chars"
	case KindU32:
		return "u32"
	case KindUSize:
		return "usize"
	case kindInvalid:
		return "invalid"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseKind maps a serialized type tag to its Kind.
func ParseKind(tag string) (Kind, bool) {
	switch tag {
	case "float":
		return KindFloat, true
	case "string":
		return KindString, true
	case "chars":
		return KindChars, true
	case "u32":
		return KindU32, true
	case "usize":
		return KindUSize, true
	default:
		return kindInvalid, false
	}
}

// Value is the payload of one constant. Exactly one variant is active,
// selected by [Value.Kind]. Values are immutable; [Value.AsChars] returns a copy.
type Value struct {
	kind  Kind
	f     float64
	s     string
	chars []rune
	n     uint64
}

// Float returns a float value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Chars returns a character-array value. The slice is copied.
func Chars(chars []rune) Value {
	return Value{kind: KindChars, chars: append([]rune(nil), chars...)}
}

// U32 returns a 32-bit unsigned value.
func U32(n uint32) Value { return Value{kind: KindU32, n: uint64(n)} }

// USize returns a machine-word unsigned value.
func USize(n uint) Value { return Value{kind: KindUSize, n: uint64(n)} }

// Kind reports the active variant.
func (v Value) Kind() Kind { return v.kind }

// AsFloat returns the payload of a float value.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsString returns the payload of a string value.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsU32 returns the payload of a u32 value.
func (v Value) AsU32() (uint32, bool) { return uint32(v.n), v.kind == KindU32 }

// AsUSize returns the payload of a usize value.
func (v Value) AsUSize() (uint, bool) { return uint(v.n), v.kind == KindUSize }

// AsChars returns a copy of the characters of a chars value.
func (v Value) AsChars() ([]rune, bool) {
	if v.kind != KindChars {
		return nil, false
	}

	return append([]rune(nil), v.chars...), true
}

// Equal reports whether both values hold the same variant and payload.
// Floats compare by bit pattern, so NaN equals NaN and 0 differs from -0.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindFloat:
		return math.Float64bits(v.f) == math.Float64bits(other.f)
	case KindString:
		return v.s == other.s
	case KindChars:
		if len(v.chars) != len(other.chars) {
			return false
		}

		for i := range v.chars {
			if v.chars[i] != other.chars[i] {
				return false
			}
		}

		return true
	case KindU32, KindUSize:
		return v.n == other.n
	case kindInvalid:
		return true
	default:
		return false
	}
}

// String renders the payload for display.
func (v Value) String() string {
	switch v.kind {
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindChars:
		return string(v.chars)
	case KindU32, KindUSize:
		return strconv.FormatUint(v.n, 10)
	case kindInvalid:
		return "<invalid>"
	default:
		return fmt.Sprintf("<%s>", v.kind)
	}
}

// WellFormed reports whether the payload satisfies its variant's invariants.
// Strings must be non-empty UTF-8; chars must be non-empty and must not repeat
// a character.
func (v Value) WellFormed() bool {
	switch v.kind {
	case KindFloat, KindU32:
		return true
	case KindUSize:
		return uint64(uint(v.n)) == v.n
	case KindString:
		return v.s != "" && utf8.ValidString(v.s)
	case KindChars:
		return len(v.chars) > 0 && !hasDuplicateRune(v.chars)
	case kindInvalid:
		return false
	default:
		return false
	}
}

func hasDuplicateRune(chars []rune) bool {
	seen := make(map[rune]struct{}, len(chars))

	for _, r := range chars {
		if _, ok := seen[r]; ok {
			return true
		}

		seen[r] = struct{}{}
	}

	return false
}

// appendCanonical appends the hash input encoding of v: the kind byte
// followed by a fixed-width big-endian payload, or raw UTF-8 for text.
func (v Value) appendCanonical(dst []byte) []byte {
	dst = append(dst, byte(v.kind))

	switch v.kind {
	case KindFloat:
		dst = binary.BigEndian.AppendUint64(dst, math.Float64bits(v.f))
	case KindString:
		dst = append(dst, v.s...)
	case KindChars:
		for _, r := range v.chars {
			dst = utf8.AppendRune(dst, r)
		}
	case KindU32:
		dst = binary.BigEndian.AppendUint32(dst, uint32(v.n))
	case KindUSize:
		dst = binary.BigEndian.AppendUint64(dst, v.n)
	case kindInvalid:
	}

	return dst
}
