package cmn_test

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/calvinalkan/cmn/pkg/cmn"
)

type namedValue struct {
	Name  string
	Kind  string
	Value string
}

func constantsOf(c *cmn.Common) []namedValue {
	all := c.Constants().All()
	out := make([]namedValue, len(all))

	for i, e := range all {
		out[i] = namedValue{Name: e.Name(), Kind: e.Value().Kind().String(), Value: e.Value().String()}
	}

	return out
}

func Test_FromJSON_Roundtrips_Default_Common_When_Marshaled(t *testing.T) {
	t.Parallel()

	orig := cmn.New()
	orig.Words().Add("hello")

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	got, err := cmn.FromJSON(data)
	require.NoError(t, err)

	if diff := cmp.Diff(constantsOf(orig), constantsOf(got)); diff != "" {
		t.Errorf("constants mismatch (-orig +got):\n%s", diff)
	}

	sortStrings := cmpopts.SortSlices(func(a, b string) bool { return a < b })
	if diff := cmp.Diff(orig.Words().All(), got.Words().All(), sortStrings); diff != "" {
		t.Errorf("words mismatch (-orig +got):\n%s", diff)
	}

	for _, e := range orig.Constants().All() {
		v, ok := got.Constants().Lookup(e.Name())
		require.True(t, ok, e.Name())
		assert.True(t, v.Equal(e.Value()), "%s: bit-exact value lost", e.Name())
	}

	assert.Equal(t, orig.HashConfig(), got.HashConfig())
	assert.True(t, got.Constants().AllValid())
}

func Test_FromJSON_Roundtrips_NonFinite_Floats_When_Marshaled(t *testing.T) {
	t.Parallel()

	in := `{"constants": [
		{"name": "nan", "type": "float", "value": "NaN"},
		{"name": "inf", "type": "float", "value": "Infinity"},
		{"name": "ninf", "type": "float", "value": "-Infinity"}
	]}`

	c, err := cmn.FromJSON([]byte(in))
	require.NoError(t, err)

	data, err := json.Marshal(c)
	require.NoError(t, err)

	again, err := cmn.FromJSON(data)
	require.NoError(t, err)

	v, _ := again.Constants().Lookup("inf")
	f, ok := v.AsFloat()
	require.True(t, ok)
	assert.True(t, math.IsInf(f, 1))

	v, _ = again.Constants().Lookup("nan")
	f, _ = v.AsFloat()
	assert.True(t, math.IsNaN(f))
}

func Test_FromJSON_Accepts_All_Type_Encodings_When_Well_Formed(t *testing.T) {
	t.Parallel()

	in := `{
		// JSONC comments and trailing commas are accepted
		"hash": {"algorithm": "blake2b", "cost": 2, "hash_len": 16},
		"constants": [
			{"name": "pi", "type": "float", "value": 3.141592653589793},
			{"name": "greeting", "type": "string", "value": "hi"},
			{"name": "sym", "type": "chars", "value": ["!", "@", "é"]},
			{"name": "sym2", "type": "chars", "value": "#$"},
			{"name": "cost", "type": "u32", "value": 4294967295},
			{"name": "len", "type": "usize", "value": 32},
		],
		"words": ["b", "a", "b"],
		"ignored": {"extra": true},
	}`

	c, err := cmn.FromJSON([]byte(in))
	require.NoError(t, err)

	want := []namedValue{
		{Name: "pi", Kind: "float", Value: "3.141592653589793"},
		{Name: "greeting", Kind: "string", Value: "hi"},
		{Name: "sym", Kind: "chars", Value: "!@é"},
		{Name: "sym2", Kind: "chars", Value: "#$"},
		{Name: "cost", Kind: "u32", Value: "4294967295"},
		{Name: "len", Kind: "usize", Value: "32"},
	}

	if diff := cmp.Diff(want, constantsOf(c)); diff != "" {
		t.Errorf("constants mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []string{"a", "b"}, c.Words().All())
	assert.Equal(t, cmn.NewHashConfig(cmn.Blake2b, 2, 16), c.HashConfig())
	assert.True(t, c.Constants().AllValid())
}

func Test_FromJSON_Treats_Missing_Fields_As_Empty_When_Absent(t *testing.T) {
	t.Parallel()

	c, err := cmn.FromJSON([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, 0, c.Constants().Len())
	assert.Equal(t, 0, c.Words().Len())
	assert.Equal(t, cmn.DefaultHashConfig(), c.HashConfig())
}

func Test_FromJSON_Rejects_Input_When_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
		wantIdx int
	}{
		{
			name:    "type value mismatch",
			input:   `{"constants": [{"name": "pi", "type": "u32", "value": "not-a-number"}]}`,
			wantErr: cmn.ErrTypeMismatch,
			wantIdx: 0,
		},
		{
			name: "duplicate name",
			input: `{"constants": [
				{"name": "pi", "type": "float", "value": 3.14},
				{"name": "pi", "type": "float", "value": 3.14}
			]}`,
			wantErr: cmn.ErrDuplicateName,
			wantIdx: 1,
		},
		{
			name:    "not json",
			input:   `{"constants": [`,
			wantErr: cmn.ErrMalformed,
			wantIdx: -1,
		},
		{
			name:    "top level array",
			input:   `[]`,
			wantErr: cmn.ErrNotObject,
			wantIdx: -1,
		},
		{
			name:    "empty input",
			input:   ``,
			wantErr: cmn.ErrMalformed,
			wantIdx: -1,
		},
		{
			name:    "words not strings",
			input:   `{"words": [1, 2]}`,
			wantErr: cmn.ErrMalformed,
			wantIdx: -1,
		},
		{
			name:    "words contain null",
			input:   `{"words": ["a", null]}`,
			wantErr: cmn.ErrMalformed,
			wantIdx: -1,
		},
		{
			name:    "unknown type",
			input:   `{"constants": [{"name": "x", "type": "complex", "value": 1}]}`,
			wantErr: cmn.ErrUnknownType,
			wantIdx: 0,
		},
		{
			name:    "empty name",
			input:   `{"constants": [{"name": "", "type": "u32", "value": 1}]}`,
			wantErr: cmn.ErrEmptyName,
			wantIdx: 0,
		},
		{
			name:    "missing value",
			input:   `{"constants": [{"name": "x", "type": "float"}]}`,
			wantErr: cmn.ErrTypeMismatch,
			wantIdx: 0,
		},
		{
			name:    "u32 overflow",
			input:   `{"constants": [{"name": "x", "type": "u32", "value": 4294967296}]}`,
			wantErr: cmn.ErrTypeMismatch,
			wantIdx: 0,
		},
		{
			name:    "negative usize",
			input:   `{"constants": [{"name": "x", "type": "usize", "value": -1}]}`,
			wantErr: cmn.ErrTypeMismatch,
			wantIdx: 0,
		},
		{
			name:    "string given number",
			input:   `{"constants": [{"name": "x", "type": "string", "value": 5}]}`,
			wantErr: cmn.ErrTypeMismatch,
			wantIdx: 0,
		},
		{
			name:    "chars element too long",
			input:   `{"constants": [{"name": "x", "type": "chars", "value": ["ab"]}]}`,
			wantErr: cmn.ErrTypeMismatch,
			wantIdx: 0,
		},
		{
			name:    "float given bool",
			input:   `{"constants": [{"name": "x", "type": "float", "value": true}]}`,
			wantErr: cmn.ErrTypeMismatch,
			wantIdx: 0,
		},
		{
			name:    "unknown algorithm",
			input:   `{"hash": {"algorithm": "md5"}}`,
			wantErr: cmn.ErrUnknownAlgorithm,
			wantIdx: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := cmn.FromJSON([]byte(tt.input))
			require.Error(t, err)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tt.wantErr)

			var pErr *cmn.ParseError
			require.True(t, errors.As(err, &pErr), "want *ParseError, got %T", err)
			assert.Equal(t, tt.wantIdx, pErr.Index)
		})
	}
}

func Test_FromJSON_Loads_Marshaled_Common_When_Algorithm_Unknown(t *testing.T) {
	t.Parallel()

	c := cmn.NewWithHashConfig(cmn.NewHashConfig(cmn.Algorithm(99), 3, 16))
	require.False(t, c.HashConfig().Valid())

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"algorithm"`)

	loaded, err := cmn.FromJSON(data)
	require.NoError(t, err)

	want := cmn.NewHashConfig(cmn.DefaultAlgorithm, 3, 16)
	if diff := cmp.Diff(want, loaded.HashConfig()); diff != "" {
		t.Errorf("hash config mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(constantsOf(c), constantsOf(loaded)); diff != "" {
		t.Errorf("constants mismatch (-want +got):\n%s", diff)
	}
}

func Test_ParseError_Formats_Context_When_Constant_Known(t *testing.T) {
	t.Parallel()

	_, err := cmn.FromJSON([]byte(`{"constants": [{"name": "pi", "type": "u32", "value": "not-a-number"}]}`))
	require.Error(t, err)

	assert.Equal(t,
		`value does not match declared type: want u32, got "not-a-number" (constant_index=0 constant_name=pi)`,
		err.Error())
}

func Test_FromJSONWithDefault_Uses_Fallback_When_Hash_Block_Missing(t *testing.T) {
	t.Parallel()

	fallback := cmn.NewHashConfig(cmn.Argon2id, 1, 16)

	c, err := cmn.FromJSONWithDefault([]byte(`{"constants": [{"name": "one", "type": "u32", "value": 1}]}`), fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, c.HashConfig())

	c, err = cmn.FromJSONWithDefault([]byte(`{"hash": {"cost": 3}}`), fallback)
	require.NoError(t, err)
	assert.Equal(t, cmn.NewHashConfig(cmn.Argon2id, 3, 16), c.HashConfig())
}

func Test_MarshalYAML_Encodes_Document_When_Marshaled(t *testing.T) {
	t.Parallel()

	c, err := cmn.FromJSON([]byte(`{"constants": [{"name": "cost", "type": "u32", "value": 8}], "words": ["x"]}`))
	require.NoError(t, err)

	out, err := yaml.Marshal(c)
	require.NoError(t, err)

	var doc struct {
		Constants []struct {
			Name  string `yaml:"name"`
			Type  string `yaml:"type"`
			Value int    `yaml:"value"`
		} `yaml:"constants"`
		Words []string `yaml:"words"`
	}

	require.NoError(t, yaml.Unmarshal(out, &doc))
	require.Len(t, doc.Constants, 1)
	assert.Equal(t, "cost", doc.Constants[0].Name)
	assert.Equal(t, "u32", doc.Constants[0].Type)
	assert.Equal(t, 8, doc.Constants[0].Value)
	assert.Equal(t, []string{"x"}, doc.Words)
}

func Test_New_Owns_Independent_Registries_When_Constructed_Twice(t *testing.T) {
	t.Parallel()

	a := cmn.New()
	b := cmn.New()

	a.Words().Clear()

	assert.Equal(t, 0, a.Words().Len())
	assert.Equal(t, 4096, b.Words().Len())
}
