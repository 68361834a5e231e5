package cfmt_test

import (
	"testing"

	"github.com/bjaus/cfmt"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		tok  cfmt.Tokens
		want cfmt.Spec
	}{
		"empty": {
			tok:  cfmt.Tokens{Verb: 'd'},
			want: cfmt.Spec{Precision: cfmt.NoPrecision, Verb: 'd'},
		},
		"flags": {
			tok:  cfmt.Tokens{Flags: "#0- +", Verb: 'x'},
			want: cfmt.Spec{Flags: cfmt.FlagHash | cfmt.FlagZero | cfmt.FlagMinus | cfmt.FlagSpace | cfmt.FlagPlus, Precision: cfmt.NoPrecision, Verb: 'x'},
		},
		"repeated flags": {
			tok:  cfmt.Tokens{Flags: "--00", Verb: 'd'},
			want: cfmt.Spec{Flags: cfmt.FlagMinus | cfmt.FlagZero, Precision: cfmt.NoPrecision, Verb: 'd'},
		},
		"unknown flag ignored": {
			tok:  cfmt.Tokens{Flags: "'-", Verb: 'd'},
			want: cfmt.Spec{Flags: cfmt.FlagMinus, Precision: cfmt.NoPrecision, Verb: 'd'},
		},
		"width and precision": {
			tok:  cfmt.Tokens{Width: "12", Dot: true, Precision: "4", Verb: 's'},
			want: cfmt.Spec{Width: 12, Precision: 4, Verb: 's'},
		},
		"bare dot": {
			tok:  cfmt.Tokens{Dot: true, Verb: 'd'},
			want: cfmt.Spec{Precision: 0, Verb: 'd'},
		},
		"star width": {
			tok:  cfmt.Tokens{Width: "*", WidthArg: 7, Verb: 'd'},
			want: cfmt.Spec{Width: 7, Precision: cfmt.NoPrecision, Verb: 'd'},
		},
		"negative star width": {
			tok:  cfmt.Tokens{Width: "*", WidthArg: -7, Verb: 'd'},
			want: cfmt.Spec{Flags: cfmt.FlagMinus, Width: 7, Precision: cfmt.NoPrecision, Verb: 'd'},
		},
		"star precision": {
			tok:  cfmt.Tokens{Dot: true, Precision: "*", PrecisionArg: 3, Verb: 'd'},
			want: cfmt.Spec{Precision: 3, Verb: 'd'},
		},
		"negative star precision": {
			tok:  cfmt.Tokens{Dot: true, Precision: "*", PrecisionArg: -3, Verb: 'd'},
			want: cfmt.Spec{Precision: cfmt.NoPrecision, Verb: 'd'},
		},
		"length": {
			tok:  cfmt.Tokens{Length: "hh", Verb: 'u'},
			want: cfmt.Spec{Length: cfmt.LengthHH, Precision: cfmt.NoPrecision, Verb: 'u'},
		},
		"quad length is long long": {
			tok:  cfmt.Tokens{Length: "q", Verb: 'd'},
			want: cfmt.Spec{Length: cfmt.LengthLL, Precision: cfmt.NoPrecision, Verb: 'd'},
		},
		"unknown length ignored": {
			tok:  cfmt.Tokens{Length: "lh", Verb: 'u'},
			want: cfmt.Spec{Precision: cfmt.NoPrecision, Verb: 'u'},
		},
		"width saturates": {
			tok:  cfmt.Tokens{Width: "99999999999999999999", Verb: 'd'},
			want: cfmt.Spec{Width: cfmt.MaxWidth, Precision: cfmt.NoPrecision, Verb: 'd'},
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cfmt.Resolve(tt.tok))
		})
	}
}

func TestFlagsHas(t *testing.T) {
	t.Parallel()
	f := cfmt.FlagMinus | cfmt.FlagZero
	assert.True(t, f.Has(cfmt.FlagMinus))
	assert.True(t, f.Has(cfmt.FlagMinus|cfmt.FlagZero))
	assert.False(t, f.Has(cfmt.FlagPlus))
	assert.False(t, f.Has(cfmt.FlagMinus|cfmt.FlagPlus))
	assert.Equal(t, "-0", f.String())
}

func TestLengthString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", cfmt.LengthNone.String())
	assert.Equal(t, "hh", cfmt.LengthHH.String())
	assert.Equal(t, "ll", cfmt.LengthLL.String())
	assert.Equal(t, "z", cfmt.LengthZ.String())
}
