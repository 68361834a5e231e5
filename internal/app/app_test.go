package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		argv     []string
		wantOut  string
		wantCode int
	}{
		"plain":             {argv: []string{`hello\n`}, wantOut: "hello\n"},
		"width":             {argv: []string{"[%5d]", "42"}, wantOut: "[   42]"},
		"left precision":    {argv: []string{"[%-5.3d]", "7"}, wantOut: "[007  ]"},
		"wide int":          {argv: []string{"%d", "10000000000"}, wantOut: "10000000000"},
		"hex":               {argv: []string{"%#x", "255"}, wantOut: "0xff"},
		"hex operand":       {argv: []string{"%d", "0x10"}, wantOut: "16"},
		"negative unsigned": {argv: []string{"%u", "-1"}, wantOut: "18446744073709551615"},
		"char constant":     {argv: []string{"%d", "'A"}, wantOut: "65"},
		"char":              {argv: []string{"%c", "xyz"}, wantOut: "x"},
		"float":             {argv: []string{"%.2f", "3.14159"}, wantOut: "3.14"},
		"string":            {argv: []string{"%-4s|", "ab"}, wantOut: "ab  |"},
		"reuse":             {argv: []string{`%s=%d\n`, "a", "1", "b", "2"}, wantOut: "a=1\nb=2\n"},
		"reuse partial":     {argv: []string{"%s-%s;", "a", "b", "c"}, wantOut: "a-b;c-;"},
		"missing":           {argv: []string{"[%d|%s]"}, wantOut: "[0|]"},
		"percent":           {argv: []string{"100%%"}, wantOut: "100%"},
		"unknown verb":      {argv: []string{"%y"}, wantOut: "%y"},
		"bad number":        {argv: []string{"%d|", "abc"}, wantOut: "0|", wantCode: 1},
		"columns":           {argv: []string{"-columns", "%-6s|", "你好"}, wantOut: "你好  |"},
		"no operand":        {argv: nil, wantCode: 2},
		"bad flag":          {argv: []string{"-nope", "%d"}, wantCode: 2},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var stdout, stderr bytes.Buffer
			code := Run(tt.argv, &stdout, &stderr)
			assert.Equal(t, tt.wantCode, code, stderr.String())
			assert.Equal(t, tt.wantOut, stdout.String())
			if tt.wantCode != 0 {
				assert.Contains(t, stderr.String(), "cfmt:")
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	code := Run([]string{"-h"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "usage: cfmt")
	assert.Empty(t, stderr.String())
}

func TestUnescape(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   string
		want string
	}{
		"none":            {in: "abc", want: "abc"},
		"newline tab":     {in: `a\tb\n`, want: "a\tb\n"},
		"backslash":       {in: `a\\b`, want: `a\b`},
		"octal":           {in: `\101\0`, want: "A\x00"},
		"octal max three": {in: `\1010`, want: "A0"},
		"hex":             {in: `\x41\x4a!`, want: "AJ!"},
		"hex no digits":   {in: `\xg`, want: `\xg`},
		"unknown":         {in: `\q`, want: `\q`},
		"trailing":        {in: `abc\`, want: `abc\`},
		"quote":           {in: `\"`, want: `"`},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, unescape(tt.in))
		})
	}
}

func TestArgumentConvert(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		arg     argument
		verb    byte
		want    any
		wantErr bool
	}{
		"decimal":       {arg: "42", verb: 'd', want: int64(42)},
		"octal operand": {arg: "010", verb: 'd', want: int64(8)},
		"leading space": {arg: "  7", verb: 'i', want: int64(7)},
		"bad int":       {arg: "4x", verb: 'd', wantErr: true},
		"unsigned":      {arg: "255", verb: 'x', want: uint64(255)},
		"plus unsigned": {arg: "+3", verb: 'u', want: uint64(3)},
		"char":          {arg: "A", verb: 'c', want: byte('A')},
		"empty char":    {arg: "", verb: 'c', want: byte(0)},
		"float":         {arg: "1.5", verb: 'f', want: 1.5},
		"string":        {arg: "x", verb: 's', want: "x"},
		"empty int":     {arg: "", verb: 'd', want: int64(0)},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.arg.Convert(tt.verb)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
