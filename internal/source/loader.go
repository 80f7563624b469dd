package source

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"seed-almanac/internal/almanac"
)

// Format identifies a catalogue encoding.
type Format int

const (
	FormatPlain Format = iota
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatPlain:
		return "text"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DetectFormat picks the format from a file extension. Anything that is
// not .yaml or .yml is read as text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatPlain
	}
}

// LoadFile loads and parses an almanac from the given path.
func LoadFile(path string) (*almanac.Almanac, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read almanac file %s: %w", path, err)
	}

	return Parse(data, DetectFormat(path))
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (*almanac.Almanac, error) {
	if format == FormatYAML {
		return ParseYAML(data)
	}

	return ParseText(bytes.NewReader(data))
}

// ParseYAML parses YAML data into an Almanac.
func ParseYAML(data []byte) (*almanac.Almanac, error) {
	var doc Document

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse almanac YAML: %w", err)
	}

	return doc.toAlmanac()
}

// MarshalYAML serializes an Almanac to YAML.
func MarshalYAML(a *almanac.Almanac) ([]byte, error) {
	return yaml.Marshal(fromAlmanac(a))
}

// WriteFile writes an Almanac to path, as YAML or text depending on its extension.
func WriteFile(a *almanac.Almanac, path string) error {
	var (
		data []byte
		err  error
	)

	if DetectFormat(path) == FormatYAML {
		data, err = MarshalYAML(a)
	} else {
		var buf bytes.Buffer
		err = FormatText(a, &buf)
		data = buf.Bytes()
	}

	if err != nil {
		return fmt.Errorf("failed to encode almanac: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write almanac file %s: %w", path, err)
	}

	return nil
}
