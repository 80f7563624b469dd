package source

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"seed-almanac/category"
	"seed-almanac/internal/almanac"
)

// Document is the YAML form of an almanac.
type Document struct {
	Seeds []int64    `yaml:"seeds"`
	Maps  []TableDoc `yaml:"maps"`
}

// TableDoc is one category-to-category table.
type TableDoc struct {
	From  string    `yaml:"from"`
	To    string    `yaml:"to"`
	Rules []RuleDoc `yaml:"rules"`
}

// RuleDoc is a rule written either as [dest, source, length] or as a mapping.
type RuleDoc almanac.Rule

type ruleFields struct {
	Dest   *int64 `yaml:"dest"`
	Source *int64 `yaml:"source"`
	Length *int64 `yaml:"length"`
}

// UnmarshalYAML implements custom YAML unmarshaling for RuleDoc.
// Accepts either a three-element sequence or a dest/source/length mapping.
func (r *RuleDoc) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var triple []int64

		if err := node.Decode(&triple); err != nil {
			return err
		}

		if len(triple) != 3 {
			return fmt.Errorf("line %d: rule needs 3 numbers, got %d", node.Line, len(triple))
		}

		*r = RuleDoc{Dest: triple[0], Source: triple[1], Length: triple[2]}

		return nil

	case yaml.MappingNode:
		var f ruleFields

		if err := node.Decode(&f); err != nil {
			return err
		}

		if f.Dest == nil || f.Source == nil || f.Length == nil {
			return fmt.Errorf("line %d: rule needs dest, source and length", node.Line)
		}

		*r = RuleDoc{Dest: *f.Dest, Source: *f.Source, Length: *f.Length}

		return nil

	default:
		return fmt.Errorf("line %d: expected sequence or mapping for rule, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML writes the rule as a flow sequence: [dest, source, length].
func (r RuleDoc) MarshalYAML() (any, error) {
	scalar := func(v int64) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v, 10)}
	}

	return &yaml.Node{
		Kind:    yaml.SequenceNode,
		Style:   yaml.FlowStyle,
		Content: []*yaml.Node{scalar(r.Dest), scalar(r.Source), scalar(r.Length)},
	}, nil
}

// toAlmanac resolves category names and collects tables.
func (d *Document) toAlmanac() (*almanac.Almanac, error) {
	a := &almanac.Almanac{Seeds: d.Seeds, Tables: almanac.Tables{}}

	for i, m := range d.Maps {
		from, err := category.Parse(m.From)
		if err != nil {
			return nil, fmt.Errorf("maps[%d].from: %w", i, err)
		}

		to, err := category.Parse(m.To)
		if err != nil {
			return nil, fmt.Errorf("maps[%d].to: %w", i, err)
		}

		p := almanac.Pair{From: from, To: to}
		if _, ok := a.Tables[p]; !ok {
			a.Tables[p] = almanac.Rules{}
		}

		for _, r := range m.Rules {
			a.Tables.Add(p, almanac.Rule(r))
		}
	}

	return a, nil
}

func fromAlmanac(a *almanac.Almanac) *Document {
	d := &Document{Seeds: a.Seeds}

	for _, p := range sortedBySource(a.Tables) {
		td := TableDoc{From: p.From.Name(), To: p.To.Name()}
		for _, r := range a.Tables[p] {
			td.Rules = append(td.Rules, RuleDoc(r))
		}

		d.Maps = append(d.Maps, td)
	}

	return d
}

// sortedBySource orders pairs the way they appear along a chain.
func sortedBySource(t almanac.Tables) []almanac.Pair {
	pairs := t.Pairs()
	slices.SortStableFunc(pairs, func(a, b almanac.Pair) int {
		return cmp.Compare(a.From, b.From)
	})

	return pairs
}
