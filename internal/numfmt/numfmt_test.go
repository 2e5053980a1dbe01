package numfmt_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/textab/internal/numfmt"
)

func TestParseSpec(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    numfmt.Spec
		wantErr require.ErrorAssertionFunc
	}{
		"empty":      {input: "", want: numfmt.Spec{Precision: -1}, wantErr: require.NoError},
		"fixed":      {input: ".2f", want: numfmt.Spec{Precision: 2, Verb: 'f'}, wantErr: require.NoError},
		"signed":     {input: "+.3e", want: numfmt.Spec{Sign: '+', Precision: 3, Verb: 'e'}, wantErr: require.NoError},
		"uncert":     {input: ".1uS", want: numfmt.Spec{Precision: 1, Uncert: true, Shorthand: true}, wantErr: require.NoError},
		"latex":      {input: ".2fL", want: numfmt.Spec{Precision: 2, Verb: 'f', Latex: true}, wantErr: require.NoError},
		"percent":    {input: ".1%", want: numfmt.Spec{Precision: 1, Verb: '%'}, wantErr: require.NoError},
		"no digits":  {input: ".f", wantErr: require.Error},
		"bad option": {input: ".2fx", wantErr: require.Error},
		"bad verb":   {input: "d", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := numfmt.ParseSpec(tt.input)
			tt.wantErr(t, err)
			if err == nil {
				assert.Equal(t, tt.want, got)
			} else {
				assert.ErrorIs(t, err, numfmt.ErrBadSpec)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v    float64
		spec string
		want string
	}{
		"fixed":         {v: 3.14159, spec: ".2f", want: "3.14"},
		"fixed default": {v: 1.5, spec: "f", want: "1.500000"},
		"exponent":      {v: 1234.5, spec: ".2e", want: "1.23e+03"},
		"upper":         {v: 1234.5, spec: ".1E", want: "1.2E+03"},
		"general":       {v: 0.000123456, spec: ".3g", want: "0.000123"},
		"percent":       {v: 0.256, spec: ".1%", want: "25.6%"},
		"plus":          {v: 2, spec: "+.1f", want: "+2.0"},
		"plus negative": {v: -2, spec: "+.1f", want: "-2.0"},
		"raw":           {v: 2.5, spec: "", want: "2.5"},
		"precision":     {v: 2.345, spec: ".2", want: "2.3"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := numfmt.Format(tt.v, tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatRejectsPairOptions(t *testing.T) {
	t.Parallel()
	for _, spec := range []string{".2fL", ".2fS", ".1uf"} {
		_, err := numfmt.Format(1, spec)
		assert.ErrorIs(t, err, numfmt.ErrBadSpec, spec)
	}
}

func TestPairFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		pair numfmt.Pair
		spec string
		want string
	}{
		"latex fixed":       {pair: numfmt.Pair{Value: 1.234, Err: 0.056}, spec: ".2fL", want: `1.23 \pm 0.06`},
		"latex default":     {pair: numfmt.Pair{Value: 1.234, Err: 0.056}, spec: "L", want: `1.234 \pm 0.056`},
		"latex shorthand":   {pair: numfmt.Pair{Value: 1.234, Err: 0.056}, spec: ".2fSL", want: `1.23(6)`},
		"uncert digits":     {pair: numfmt.Pair{Value: 1.234, Err: 0.056}, spec: ".1uSL", want: `1.23(6)`},
		"plain":             {pair: numfmt.Pair{Value: 1.234, Err: 0.056}, spec: ".2f", want: "1.23±0.06"},
		"latex exponent":    {pair: numfmt.Pair{Value: 12345, Err: 67}, spec: ".2eL", want: `\left(1.23 \pm 0.01\right) \times 10^{4}`},
		"plain exponent":    {pair: numfmt.Pair{Value: 12345, Err: 67}, spec: ".2e", want: "(1.23±0.01)e+04"},
		"latex percent":     {pair: numfmt.Pair{Value: 0.5, Err: 0.01}, spec: ".1%L", want: `\left(50.0 \pm 1.0\right) \%`},
		"negative err":      {pair: numfmt.Pair{Value: 2, Err: -0.5}, spec: ".1fL", want: `2.0 \pm 0.5`},
		"zero err":          {pair: numfmt.Pair{Value: 2.5, Err: 0}, spec: "L", want: `2.5 \pm 0`},
		"large uncertainty": {pair: numfmt.Pair{Value: 1234, Err: 123}, spec: "L", want: `1230 \pm 120`},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.pair.Format(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPairFormatErrors(t *testing.T) {
	t.Parallel()
	_, err := numfmt.Pair{Value: 1, Err: 0.1}.Format(".2q")
	assert.ErrorIs(t, err, numfmt.ErrBadSpec)

	_, err = numfmt.Pair{Value: math.NaN(), Err: 0.1}.Format("L")
	assert.ErrorIs(t, err, numfmt.ErrBadSpec)
}

func TestPairStrings(t *testing.T) {
	t.Parallel()
	p := numfmt.Pair{Value: 1.5, Err: 0.25}
	assert.Equal(t, "1.5±0.25", p.String())
	assert.Equal(t, `1.5 \pm 0.25`, p.Latex())
}

func TestScientific(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v    float64
		prec int
		want string
	}{
		"positive exponent": {v: 12345, prec: 2, want: `1.23 \times 10^{4}`},
		"negative exponent": {v: 0.000123, prec: 1, want: `1.2 \times 10^{-4}`},
		"zero exponent":     {v: 3.14159, prec: 3, want: "3.142"},
		"negative value":    {v: -4500, prec: 1, want: `-4.5 \times 10^{3}`},
		"nan":               {v: math.NaN(), prec: 1, want: `\mathrm{NaN}`},
		"inf":               {v: math.Inf(1), prec: 1, want: `\infty`},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, numfmt.Scientific(tt.v, tt.prec))
		})
	}
}

func TestAllZeros(t *testing.T) {
	t.Parallel()
	assert.True(t, numfmt.AllZeros("0.000"))
	assert.True(t, numfmt.AllZeros("-0.0"))
	assert.False(t, numfmt.AllZeros("0.001"))
	assert.False(t, numfmt.AllZeros(""))
	assert.False(t, numfmt.AllZeros("."))
}

func TestRawAndFixed(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "1.5", numfmt.Raw(1.5))
	assert.Equal(t, "1e-20", numfmt.Raw(1e-20))
	assert.Equal(t, "1.500", numfmt.Fixed(1.5, 3))
	assert.Equal(t, "1.23e+04", numfmt.ScientificPlain(12345, 2))
}
