package cmn

import "encoding/json"

// Common owns one [ConstantsRegistry] and one [WordsRegistry].
type Common struct {
	cfg       HashConfig
	constants *ConstantsRegistry
	words     *WordsRegistry
}

// New returns a Common with both built-in catalogs and [DefaultHashConfig].
func New() *Common {
	return NewWithHashConfig(DefaultHashConfig())
}

// NewWithHashConfig returns a Common with both built-in catalogs, binding
// every constant to cfg.
func NewWithHashConfig(cfg HashConfig) *Common {
	return &Common{
		cfg:       cfg,
		constants: NewConstantsRegistry(cfg),
		words:     NewWordsRegistry(),
	}
}

// FromJSON builds a Common from a [Document]. Documents without a hash block
// use [DefaultHashConfig].
//
// Returns a *[ParseError] if the input is not a well-formed object, a type tag
// is unknown or does not match its value, a name is empty or repeated, or the
// hash block names an unknown algorithm. No Common is returned on error.
func FromJSON(data []byte) (*Common, error) {
	return FromJSONWithDefault(data, DefaultHashConfig())
}

// FromJSONWithDefault is [FromJSON] with cfg used when the document carries no
// hash block, and as the base for fields the block omits.
func FromJSONWithDefault(data []byte, cfg HashConfig) (*Common, error) {
	d, err := decodeDocument(data, cfg)
	if err != nil {
		return nil, err
	}

	return &Common{
		cfg:       d.cfg,
		constants: newConstantsRegistry(d.entries),
		words:     NewWordsRegistryFrom(d.words),
	}, nil
}

// Constants returns the constants registry.
func (c *Common) Constants() *ConstantsRegistry { return c.constants }

// Words returns the word set. Edits through it are visible to later calls.
func (c *Common) Words() *WordsRegistry { return c.words }

// HashConfig returns the config the constants were bound to.
func (c *Common) HashConfig() HashConfig { return c.cfg }

// Document snapshots c in serialized form: constants in declaration order,
// words sorted.
func (c *Common) Document() Document {
	return newDocument(c.cfg, c.constants, c.words)
}

// MarshalJSON implements [json.Marshaler]; the output is accepted by [FromJSON].
func (c *Common) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Document())
}

// MarshalYAML implements yaml.Marshaler from gopkg.in/yaml.v3.
func (c *Common) MarshalYAML() (any, error) {
	return c.Document(), nil
}
