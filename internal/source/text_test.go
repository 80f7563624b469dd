package source

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seed-almanac/category"
	"seed-almanac/internal/almanac"
)

func TestParseTextSample(t *testing.T) {
	a, err := LoadFile("testdata/sample.txt")
	require.NoError(t, err)

	assert.Equal(t, []int64{79, 14, 55, 13}, a.Seeds)
	assert.Len(t, a.Tables, 7)

	rules := a.Tables[almanac.Pair{From: category.Seed, To: category.Soil}]
	assert.Equal(t, almanac.Rules{
		{Dest: 50, Source: 98, Length: 2},
		{Dest: 52, Source: 50, Length: 48},
	}, rules)

	_, ok := a.Tables[almanac.Pair{From: category.Light, To: category.Temperature}]
	assert.True(t, ok, "light-to-temperature is keyed by its own header")

	res := almanac.Validate(category.DefaultChain, a.Tables)
	assert.True(t, res.IsValid(), res.Error())
	assert.Empty(t, res.Warnings)
}

func TestParseTextErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{"rule before header", "seeds: 1\n50 98 2\n", "line 2"},
		{"short triple", "seed-to-soil map:\n50 98\n", "expected 3 numbers"},
		{"bad number", "seed-to-soil map:\n50 x 2\n", `invalid number "x"`},
		{"bad seed", "seeds: 1 two\n", `invalid number "two"`},
		{"unknown category", "seed-to-compost map:\n", "unknown category"},
		{"malformed header", "seedsoil map:\n", "is not <from>-to-<to>"},
		{"seeds twice", "seeds: 1\nseeds: 2\n", "seeds listed twice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseText(strings.NewReader(tt.input))
			require.ErrorIs(t, err, ErrSyntax)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestParseTextRepeatedHeaderAppends(t *testing.T) {
	input := "seed-to-soil map:\n1 2 3\n\nseed-to-soil map:\n4 5 6\n"

	a, err := ParseText(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, a.Tables[almanac.Pair{From: category.Seed, To: category.Soil}], 2)
	assert.Empty(t, a.Seeds)
}

func TestParseTextEmptySection(t *testing.T) {
	a, err := ParseText(strings.NewReader("seeds: 3\n\nseed-to-soil map:\n\n"))
	require.NoError(t, err)

	rules, ok := a.Tables[almanac.Pair{From: category.Seed, To: category.Soil}]
	assert.True(t, ok)
	assert.Empty(t, rules)
}

func TestFormatTextRoundTrip(t *testing.T) {
	a, err := LoadFile("testdata/sample.txt")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, FormatText(a, &buf))

	assert.True(t, strings.HasPrefix(buf.String(), "seeds: 79 14 55 13\n\nseed-to-soil map:\n50 98 2\n"))

	again, err := ParseText(&buf)
	require.NoError(t, err)
	assert.Equal(t, a, again)
}
