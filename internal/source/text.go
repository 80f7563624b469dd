package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"seed-almanac/category"
	"seed-almanac/internal/almanac"
)

// ErrSyntax is wrapped by every parse error.
var ErrSyntax = errors.New("almanac syntax error")

const (
	seedsPrefix  = "seeds:"
	headerSuffix = " map:"
	headerInfix  = "-to-"
)

// ParseText reads the line-oriented almanac format.
func ParseText(r io.Reader) (*almanac.Almanac, error) {
	a := &almanac.Almanac{Tables: almanac.Tables{}}

	var (
		current *almanac.Pair
		sawSeed bool
		lineNo  int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())

		switch {
		case line == "":
			continue

		case strings.HasPrefix(line, seedsPrefix):
			if sawSeed {
				return nil, fmt.Errorf("line %d: %w: seeds listed twice", lineNo, ErrSyntax)
			}

			seeds, err := parseInts(strings.TrimPrefix(line, seedsPrefix))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %w", lineNo, ErrSyntax, err)
			}

			a.Seeds = seeds
			sawSeed = true

		case strings.HasSuffix(line, headerSuffix):
			p, err := parseHeader(strings.TrimSuffix(line, headerSuffix))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %w", lineNo, ErrSyntax, err)
			}

			if _, ok := a.Tables[p]; !ok {
				a.Tables[p] = almanac.Rules{}
			}

			current = &p

		default:
			if current == nil {
				return nil, fmt.Errorf("line %d: %w: rule %q outside of a map section", lineNo, ErrSyntax, line)
			}

			nums, err := parseInts(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %w", lineNo, ErrSyntax, err)
			}

			if len(nums) != 3 {
				return nil, fmt.Errorf("line %d: %w: expected 3 numbers, got %d", lineNo, ErrSyntax, len(nums))
			}

			a.Tables.Add(*current, almanac.Rule{Dest: nums[0], Source: nums[1], Length: nums[2]})
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read almanac: %w", err)
	}

	return a, nil
}

// FormatText renders a as the line-oriented format, tables in chain order.
func FormatText(a *almanac.Almanac, w io.Writer) error {
	bw := bufio.NewWriter(w)

	seeds := make([]string, len(a.Seeds))
	for i, s := range a.Seeds {
		seeds[i] = strconv.FormatInt(s, 10)
	}

	fmt.Fprintf(bw, "%s %s\n", seedsPrefix, strings.Join(seeds, " "))

	for _, p := range sortedBySource(a.Tables) {
		fmt.Fprintf(bw, "\n%s%s\n", p, headerSuffix)

		for _, r := range a.Tables[p] {
			fmt.Fprintln(bw, r.String())
		}
	}

	return bw.Flush()
}

func parseHeader(name string) (almanac.Pair, error) {
	from, to, ok := strings.Cut(strings.TrimSpace(name), headerInfix)
	if !ok {
		return almanac.Pair{}, fmt.Errorf("header %q is not <from>-to-<to>", name)
	}

	src, err := category.Parse(from)
	if err != nil {
		return almanac.Pair{}, err
	}

	dst, err := category.Parse(to)
	if err != nil {
		return almanac.Pair{}, err
	}

	return almanac.Pair{From: src, To: dst}, nil
}

func parseInts(s string) ([]int64, error) {
	fields := strings.Fields(s)
	out := make([]int64, 0, len(fields))

	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}

		out = append(out, n)
	}

	return out, nil
}
