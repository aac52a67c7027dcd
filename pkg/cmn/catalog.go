package cmn

import "math"

// Catalog names referenced by code.
const (
	NameHashAlgorithm     = "hash_algorithm"
	NameHashCost          = "hash_cost"
	NameHashLength        = "hash_length"
	NameSpecialCharacters = "special_characters"
)

// SpecialCharacters is the built-in special-character set. No character
// repeats.
var SpecialCharacters = []rune{
	'!', '@', '#', '$', '%', '^', '&', '*', '(', ')', '_', '+', '=', '[', ']',
	'{', '}', '|', ';', ':', '"', '<', '>', ',', '.', '?', '/', '~', '`',
}

type catalogRow struct {
	name  string
	value Value
}

// constantCatalog is the default constants table, in declaration order.
var constantCatalog = []catalogRow{
	{"e", Float(math.E)},
	{"gamma", Float(0.5772156649015329)},
	{"golden_ratio", Float(math.Phi)},
	{"pi", Float(math.Pi)},
	{"tau", Float(2 * math.Pi)},
	{"silver_ratio", Float(1 + math.Sqrt2)},
	{"sqrt2", Float(math.Sqrt2)},
	{"sqrt3", Float(1.7320508075688772)},
	{"sqrt5", Float(2.23606797749979)},
	{"ln2", Float(math.Ln2)},
	{"ln10", Float(math.Ln10)},
	{"planck", Float(6.62607015e-34)},              // J·s
	{"speed_of_light", Float(299792458)},           // m/s
	{"avogadro", Float(6.02214076e23)},             // 1/mol
	{"boltzmann", Float(1.380649e-23)},             // J/K
	{"elementary_charge", Float(1.602176634e-19)},  // C
	{"gravitational_constant", Float(6.67430e-11)}, // m³/(kg·s²)
	{NameHashAlgorithm, String(DefaultAlgorithm.String())},
	{NameHashCost, U32(DefaultCost)},
	{NameHashLength, USize(DefaultHashLen)},
	{NameSpecialCharacters, Chars(SpecialCharacters)},
}

// CatalogNames returns the built-in constant names in declaration order.
func CatalogNames() []string {
	names := make([]string, len(constantCatalog))
	for i, row := range constantCatalog {
		names[i] = row.name
	}

	return names
}
