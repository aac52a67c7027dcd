package cmn

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/tailscale/hujson"
)

// Document is the serialized form of a [Common].
//
//	{
//	  "hash": {"algorithm": "Blake3", "cost": 8, "hash_len": 32},
//	  "constants": [{"name": "pi", "type": "float", "value": 3.141592653589793}],
//	  "words": ["aback", "abbey"]
//	}
//
// Value encodings per type tag:
//   - float: number, or "NaN", "Infinity", "-Infinity"
//   - string: string
//   - chars: array of one-character strings, or a string split into characters
//   - u32, usize: non-negative integer within range
type Document struct {
	Hash      *HashDocument      `json:"hash,omitempty" yaml:"hash,omitempty"`
	Constants []ConstantDocument `json:"constants" yaml:"constants"`
	Words     []string           `json:"words" yaml:"words"`
}

// HashDocument is the optional hash block of a [Document]. Missing fields take
// the defaults of the decoder. An algorithm outside the known set has no name
// and is left out, so it reloads as the decoder's default algorithm.
type HashDocument struct {
	Algorithm string `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	Cost      uint32 `json:"cost" yaml:"cost"`
	HashLen   int    `json:"hash_len" yaml:"hash_len"` //nolint:tagliatelle // snake_case wire format
}

// ConstantDocument is one name/type/value triple.
type ConstantDocument struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type" yaml:"type"`
	Value any    `json:"value" yaml:"value"`
}

const (
	tokNaN    = "NaN"
	tokPosInf = "Infinity"
	tokNegInf = "-Infinity"
)

func newDocument(cfg HashConfig, constants *ConstantsRegistry, words *WordsRegistry) Document {
	hash := &HashDocument{Cost: cfg.Cost, HashLen: cfg.HashLen}
	if cfg.Algorithm.MaxLen() > 0 {
		hash.Algorithm = cfg.Algorithm.String()
	}

	doc := Document{
		Hash:      hash,
		Constants: make([]ConstantDocument, 0, constants.Len()),
		Words:     words.All(),
	}

	for _, e := range constants.entries {
		doc.Constants = append(doc.Constants, ConstantDocument{
			Name:  e.name,
			Type:  e.value.kind.String(),
			Value: encodeValue(e.value),
		})
	}

	return doc
}

func encodeValue(v Value) any {
	switch v.kind {
	case KindFloat:
		switch {
		case math.IsNaN(v.f):
			return tokNaN
		case math.IsInf(v.f, 1):
			return tokPosInf
		case math.IsInf(v.f, -1):
			return tokNegInf
		default:
			return v.f
		}
	case KindString:
		return v.s
	case KindChars:
		out := make([]string, len(v.chars))
		for i, r := range v.chars {
			out[i] = string(r)
		}

		return out
	case KindU32:
		return uint32(v.n)
	case KindUSize:
		return v.n
	case kindInvalid:
		return nil
	default:
		return nil
	}
}

type rawDocument struct {
	Hash      *rawHash      `json:"hash"`
	Constants []rawConstant `json:"constants"`
	Words     []*string     `json:"words"`
}

type rawHash struct {
	Algorithm string  `json:"algorithm"`
	Cost      *uint32 `json:"cost"`
	HashLen   *int    `json:"hash_len"` //nolint:tagliatelle // snake_case wire format
}

type rawConstant struct {
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// decoded is the fully validated content of a document, ready to become a
// [Common] without further failure.
type decoded struct {
	cfg     HashConfig
	entries []ConstantEntry
	words   []string
}

// decodeDocument parses JSON or JSONC (comments, trailing commas) and checks
// every constant. Nothing is returned unless the whole input is accepted.
func decodeDocument(data []byte, fallback HashConfig) (decoded, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return decoded{}, docError(fmt.Errorf("%w: empty input", ErrMalformed))
	}

	std, err := hujson.Standardize(bytes.Clone(data))
	if err != nil {
		return decoded{}, docError(fmt.Errorf("%w: %w", ErrMalformed, err))
	}

	if trimmed := bytes.TrimSpace(std); len(trimmed) == 0 || trimmed[0] != '{' {
		return decoded{}, docError(ErrNotObject)
	}

	var raw rawDocument

	err = json.Unmarshal(std, &raw)
	if err != nil {
		return decoded{}, docError(fmt.Errorf("%w: %w", ErrMalformed, err))
	}

	cfg, err := decodeHash(raw.Hash, fallback)
	if err != nil {
		return decoded{}, docError(err)
	}

	words := make([]string, 0, len(raw.Words))

	for i, w := range raw.Words {
		if w == nil {
			return decoded{}, docError(fmt.Errorf("%w: words[%d] is null", ErrMalformed, i))
		}

		words = append(words, *w)
	}

	entries := make([]ConstantEntry, 0, len(raw.Constants))
	seen := make(map[string]int, len(raw.Constants))

	for i, rc := range raw.Constants {
		if rc.Name == "" {
			return decoded{}, constantError(i, "", ErrEmptyName)
		}

		if first, dup := seen[rc.Name]; dup {
			return decoded{}, constantError(i, rc.Name,
				fmt.Errorf("%w: first declared at index %d", ErrDuplicateName, first))
		}

		seen[rc.Name] = i

		kind, ok := ParseKind(rc.Type)
		if !ok {
			return decoded{}, constantError(i, rc.Name, fmt.Errorf("%w: %q", ErrUnknownType, rc.Type))
		}

		v, err := decodeValue(kind, rc.Value)
		if err != nil {
			return decoded{}, constantError(i, rc.Name, err)
		}

		entries = append(entries, NewConstantEntry(rc.Name, v, cfg))
	}

	return decoded{cfg: cfg, entries: entries, words: words}, nil
}

func decodeHash(raw *rawHash, fallback HashConfig) (HashConfig, error) {
	if raw == nil {
		return fallback, nil
	}

	cfg := fallback

	if raw.Algorithm != "" {
		alg, ok := ParseAlgorithm(raw.Algorithm)
		if !ok {
			return HashConfig{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, raw.Algorithm)
		}

		cfg.Algorithm = alg
	}

	if raw.Cost != nil {
		cfg.Cost = *raw.Cost
	}

	if raw.HashLen != nil {
		cfg.HashLen = *raw.HashLen
	}

	return cfg, nil
}

func decodeValue(kind Kind, raw json.RawMessage) (Value, error) {
	text := bytes.TrimSpace(raw)
	if len(text) == 0 || bytes.Equal(text, []byte("null")) {
		return Value{}, fmt.Errorf("%w: want %s, value is missing", ErrTypeMismatch, kind)
	}

	mismatch := func() error {
		return fmt.Errorf("%w: want %s, got %s", ErrTypeMismatch, kind, truncate(text))
	}

	switch kind {
	case KindFloat:
		if text[0] == '"' {
			var s string
			if json.Unmarshal(text, &s) != nil {
				return Value{}, mismatch()
			}

			switch s {
			case tokNaN:
				return Float(math.NaN()), nil
			case tokPosInf:
				return Float(math.Inf(1)), nil
			case tokNegInf:
				return Float(math.Inf(-1)), nil
			default:
				return Value{}, mismatch()
			}
		}

		var f float64
		if json.Unmarshal(text, &f) != nil {
			return Value{}, mismatch()
		}

		return Float(f), nil

	case KindString:
		var s string
		if text[0] != '"' || json.Unmarshal(text, &s) != nil {
			return Value{}, mismatch()
		}

		return String(s), nil

	case KindChars:
		return decodeChars(text, mismatch)

	case KindU32:
		n, err := strconv.ParseUint(string(text), 10, 32)
		if err != nil {
			return Value{}, mismatch()
		}

		return U32(uint32(n)), nil

	case KindUSize:
		n, err := strconv.ParseUint(string(text), 10, strconv.IntSize)
		if err != nil {
			return Value{}, mismatch()
		}

		return USize(uint(n)), nil

	case kindInvalid:
		return Value{}, mismatch()

	default:
		return Value{}, mismatch()
	}
}

func decodeChars(text []byte, mismatch func() error) (Value, error) {
	switch text[0] {
	case '"':
		var s string
		if json.Unmarshal(text, &s) != nil {
			return Value{}, mismatch()
		}

		return Chars([]rune(s)), nil

	case '[':
		var parts []string
		if json.Unmarshal(text, &parts) != nil {
			return Value{}, mismatch()
		}

		chars := make([]rune, 0, len(parts))

		for _, p := range parts {
			if utf8.RuneCountInString(p) != 1 {
				return Value{}, mismatch()
			}

			r, _ := utf8.DecodeRuneInString(p)
			chars = append(chars, r)
		}

		return Chars(chars), nil

	default:
		return Value{}, mismatch()
	}
}

func truncate(b []byte) string {
	const limit = 40
	if len(b) <= limit {
		return string(b)
	}

	return string(b[:limit]) + "..."
}
