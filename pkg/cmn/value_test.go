package cmn

import (
	"math"
	"testing"
)

func Test_Value_Equal_Compares_Per_Variant_When_Called(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{name: "same float", a: Float(1.5), b: Float(1.5), want: true},
		{name: "nan equals nan", a: Float(math.NaN()), b: Float(math.NaN()), want: true},
		{name: "signed zero", a: Float(0), b: Float(math.Copysign(0, -1)), want: false},
		{name: "float vs u32", a: Float(8), b: U32(8), want: false},
		{name: "u32 vs usize", a: U32(8), b: USize(8), want: false},
		{name: "strings", a: String("x"), b: String("x"), want: true},
		{name: "chars order", a: Chars([]rune("ab")), b: Chars([]rune("ba")), want: false},
		{name: "chars", a: Chars([]rune("ab")), b: Chars([]rune("ab")), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal()=%v, want=%v", got, tt.want)
			}
		})
	}
}

func Test_Value_WellFormed_Rejects_Payload_When_Invariant_Broken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{name: "zero value", v: Value{}, want: false},
		{name: "float", v: Float(math.Pi), want: true},
		{name: "empty string", v: String(""), want: false},
		{name: "invalid utf8", v: String("\xff"), want: false},
		{name: "empty chars", v: Chars(nil), want: false},
		{name: "duplicate chars", v: Chars([]rune("!@!")), want: false},
		{name: "special characters", v: Chars(SpecialCharacters), want: true},
		{name: "u32", v: U32(0), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.v.WellFormed(); got != tt.want {
				t.Errorf("WellFormed()=%v, want=%v", got, tt.want)
			}
		})
	}
}

func Test_Value_AsChars_Returns_Copy_When_Mutated(t *testing.T) {
	t.Parallel()

	src := []rune("abc")
	v := Chars(src)
	src[0] = 'z'

	got, ok := v.AsChars()
	if !ok {
		t.Fatal("AsChars() ok=false on chars value")
	}

	got[1] = 'z'

	if s := v.String(); s != "abc" {
		t.Errorf("String()=%q, want=%q", s, "abc")
	}
}

func Test_Value_Accessors_Report_False_When_Kind_Differs(t *testing.T) {
	t.Parallel()

	v := U32(7)

	if _, ok := v.AsFloat(); ok {
		t.Error("AsFloat() ok=true on u32")
	}

	if _, ok := v.AsString(); ok {
		t.Error("AsString() ok=true on u32")
	}

	if _, ok := v.AsUSize(); ok {
		t.Error("AsUSize() ok=true on u32")
	}

	if n, ok := v.AsU32(); !ok || n != 7 {
		t.Errorf("AsU32()=(%d, %v), want=(7, true)", n, ok)
	}
}

func Test_Canonical_Differs_When_Kind_Differs_With_Same_Bits(t *testing.T) {
	t.Parallel()

	a := NewConstantEntry("n", U32(8), DefaultHashConfig())
	b := NewConstantEntry("n", USize(8), DefaultHashConfig())

	if string(a.canonical()) == string(b.canonical()) {
		t.Error("u32 and usize encodings must differ")
	}
}

func Test_Kind_Roundtrips_Through_Tag_When_Parsed(t *testing.T) {
	t.Parallel()

	for _, k := range []Kind{KindFloat, KindString, KindChars, KindU32, KindUSize} {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q)=(%v, %v), want=(%v, true)", k.String(), got, ok, k)
		}
	}

	if _, ok := ParseKind("invalid"); ok {
		t.Error("ParseKind(invalid) ok=true")
	}
}
