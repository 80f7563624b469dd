package category

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Category -output=category_string.go

// Category names one stage of the almanac chain.
type Category int

const (
	_ Category = iota // skip zero value, use it as a default (invalid) value for Category

	Seed
	Soil
	Fertilizer
	Water
	Light
	Temperature
	Humidity
	Location

	// Total is the number of categories defined
	Total = int(iota)
)

// IsValid reports whether c is one of the declared categories.
func (c Category) IsValid() bool {
	return c > 0 && int(c) < Total
}

// Name returns the lowercase token used by almanac headers ("seed", "soil", ...).
func (c Category) Name() string {
	if !c.IsValid() {
		return c.String()
	}

	return strings.ToLower(c.String())
}

// Parse converts a header token into a Category. Matching is case-insensitive.
func Parse(name string) (Category, error) {
	for c := Category(1); int(c) < Total; c++ {
		if strings.EqualFold(c.String(), strings.TrimSpace(name)) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}

	return []byte(c.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}
