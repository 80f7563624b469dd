package source

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seed-almanac/category"
	"seed-almanac/internal/almanac"
)

func TestParseYAMLMatchesText(t *testing.T) {
	fromText, err := LoadFile("testdata/sample.txt")
	require.NoError(t, err)

	fromYAML, err := LoadFile("testdata/sample.yaml")
	require.NoError(t, err)

	assert.Equal(t, fromText, fromYAML)
}

func TestParseYAMLRuleForms(t *testing.T) {
	yaml := `
maps:
  - from: Humidity
    to: location
    rules:
      - [60, 56, 37]
      - dest: 56
        source: 93
        length: 4
`

	a, err := ParseYAML([]byte(yaml))
	require.NoError(t, err)

	assert.Empty(t, a.Seeds)
	assert.Equal(t, almanac.Rules{
		{Dest: 60, Source: 56, Length: 37},
		{Dest: 56, Source: 93, Length: 4},
	}, a.Tables[almanac.Pair{From: category.Humidity, To: category.Location}])
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		msg  string
	}{
		{"short rule", "maps:\n  - {from: seed, to: soil, rules: [[1, 2]]}\n", "needs 3 numbers"},
		{"incomplete mapping", "maps:\n  - {from: seed, to: soil, rules: [{dest: 1}]}\n", "needs dest, source and length"},
		{"scalar rule", "maps:\n  - {from: seed, to: soil, rules: [7]}\n", "expected sequence or mapping"},
		{"unknown from", "maps:\n  - {from: dirt, to: soil}\n", "maps[0].from"},
		{"unknown to", "maps:\n  - {from: seed, to: dirt}\n", "maps[0].to"},
		{"not yaml", "maps: [\n", "failed to parse almanac YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	a, err := LoadFile("testdata/sample.txt")
	require.NoError(t, err)

	dir := t.TempDir()

	for _, name := range []string{"out.yaml", "out.txt"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, WriteFile(a, path))

			again, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, a, again)
		})
	}
}

func TestMarshalYAMLUsesFlowTriples(t *testing.T) {
	a := &almanac.Almanac{
		Seeds:  []int64{1},
		Tables: almanac.Tables{{From: category.Seed, To: category.Soil}: {{Dest: 50, Source: 98, Length: 2}}},
	}

	data, err := MarshalYAML(a)
	require.NoError(t, err)
	assert.Contains(t, string(data), "- [50, 98, 2]")
	assert.Contains(t, string(data), "from: seed")
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("a.YML"))
	assert.Equal(t, FormatYAML, DetectFormat("dir/a.yaml"))
	assert.Equal(t, FormatPlain, DetectFormat("day5.txt"))
	assert.Equal(t, FormatPlain, DetectFormat("input"))
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "text", FormatPlain.String())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read almanac file")
}
