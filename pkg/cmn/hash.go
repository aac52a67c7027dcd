package cmn

import (
	"encoding/binary"
	"io"
	"strconv"
	"strings"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/blake2b"
)

// Algorithm selects the digest function of a [HashConfig].
type Algorithm uint8

// Supported algorithms. Blake3 is the default.
const (
	Blake3 Algorithm = iota
	Blake2b
	Argon2id
)

// Defaults used by [DefaultHashConfig]. They mirror the hash_algorithm,
// hash_cost and hash_length catalog constants.
const (
	DefaultAlgorithm = Blake3
	DefaultCost      = 8
	DefaultHashLen   = 32
)

const maxDigestLen = 64

const (
	argon2MemoryKiB = 64
	argon2Threads   = 1
)

// argon2Salt is fixed so that digests stay deterministic.
var argon2Salt = []byte("cmn/integrity/v1")

// validityProbe is hashed by [HashConfig.Valid] to check the output length.
var validityProbe = []byte("cmn")

// String returns the algorithm name accepted by [ParseAlgorithm].
func (a Algorithm) String() string {
	switch a {
	case Blake3:
		return "Blake3"
	case Blake2b:
		return "Blake2b"
	case Argon2id:
		return "Argon2id"
	default:
		return "Unknown"
	}
}

// MaxLen is the longest digest the algorithm produces, or 0 if the algorithm
// is unknown.
func (a Algorithm) MaxLen() int {
	switch a {
	case Blake3, Blake2b, Argon2id:
		return maxDigestLen
	default:
		return 0
	}
}

// ParseAlgorithm resolves an algorithm name case-insensitively.
func ParseAlgorithm(name string) (Algorithm, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "blake3":
		return Blake3, true
	case "blake2b":
		return Blake2b, true
	case "argon2id":
		return Argon2id, true
	default:
		return 0, false
	}
}

// HashConfig describes how integrity digests are derived.
//
// Construction never validates; an out-of-range config is representable and
// is caught by [HashConfig.Valid].
type HashConfig struct {
	Algorithm Algorithm
	// Cost is the work factor: hash rounds for Blake3/Blake2b, passes for
	// Argon2id.
	Cost uint32
	// HashLen is the digest length in bytes.
	HashLen int
}

// NewHashConfig returns a config with the given parameters, unvalidated.
func NewHashConfig(alg Algorithm, cost uint32, hashLen int) HashConfig {
	return HashConfig{Algorithm: alg, Cost: cost, HashLen: hashLen}
}

// DefaultHashConfig returns Blake3 with cost 8 and a 32-byte digest.
func DefaultHashConfig() HashConfig {
	return NewHashConfig(DefaultAlgorithm, DefaultCost, DefaultHashLen)
}

// Compute derives a digest of input. It never fails:
//   - the output is truncated to min(HashLen, Algorithm.MaxLen())
//   - a non-positive HashLen or unknown algorithm yields an empty digest
//   - a Cost of 0 runs as 1
//
// The result depends only on (Algorithm, Cost, HashLen, input).
func (c HashConfig) Compute(input []byte) []byte {
	n := min(c.HashLen, c.Algorithm.MaxLen())
	if n <= 0 {
		return []byte{}
	}

	cost := max(c.Cost, 1)

	switch c.Algorithm {
	case Blake3:
		return roundHash(cost, n, input, blake3Sum)
	case Blake2b:
		return roundHash(cost, n, input, blake2bSum)
	case Argon2id:
		return argon2.IDKey(input, argon2Salt, cost, argon2MemoryKiB, argon2Threads, uint32(n))
	default:
		return []byte{}
	}
}

// Valid reports whether the config can produce digests of exactly HashLen
// bytes with a positive work factor.
func (c HashConfig) Valid() bool {
	if c.Algorithm.MaxLen() == 0 || c.Cost < 1 || c.HashLen <= 0 {
		return false
	}

	return len(c.Compute(validityProbe)) == c.HashLen
}

// String formats the config as "Algorithm/cost=N/len=N".
func (c HashConfig) String() string {
	return c.Algorithm.String() + "/cost=" + strconv.FormatUint(uint64(c.Cost), 10) + "/len=" + strconv.Itoa(c.HashLen)
}

// roundHash runs cost rounds: the first hashes the big-endian cost followed
// by input, every later round hashes the previous output followed by input.
func roundHash(cost uint32, n int, input []byte, sum func(out, msg []byte)) []byte {
	out := make([]byte, n)

	msg := binary.BigEndian.AppendUint32(make([]byte, 0, 4+len(input)), cost)
	msg = append(msg, input...)
	sum(out, msg)

	for range cost - 1 {
		msg = append(msg[:0], out...)
		msg = append(msg, input...)
		sum(out, msg)
	}

	return out
}

func blake3Sum(out, msg []byte) {
	h := blake3.New()
	_, _ = h.Write(msg)
	_, _ = io.ReadFull(h.Digest(), out)
}

func blake2bSum(out, msg []byte) {
	h, err := blake2b.New(len(out), nil)
	if err != nil {
		// Unreachable: len(out) is within 1..maxDigestLen.
		panic(err)
	}

	_, _ = h.Write(msg)
	copy(out, h.Sum(nil))
}
