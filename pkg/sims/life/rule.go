package life

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Neighborhood selects which adjacent cells count as neighbors.
type Neighborhood uint8

const (
	// Orthogonal counts the four N/S/E/W cells.
	Orthogonal Neighborhood = iota + 1
	// Moore counts the eight orthogonal and diagonal cells.
	Moore
)

var (
	orthogonalOffsets = [][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}
	mooreOffsets      = [][2]int{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
)

// Size returns the number of cells in the neighborhood.
func (n Neighborhood) Size() int { return len(n.Offsets()) }

// Offsets returns the (row, col) deltas of the neighborhood.
func (n Neighborhood) Offsets() [][2]int {
	switch n {
	case Orthogonal:
		return orthogonalOffsets
	case Moore:
		return mooreOffsets
	default:
		return nil
	}
}

func (n Neighborhood) String() string {
	switch n {
	case Orthogonal:
		return "orthogonal"
	case Moore:
		return "moore"
	default:
		return "neighborhood(" + strconv.Itoa(int(n)) + ")"
	}
}

// ParseNeighborhood accepts "orthogonal"/"4" and "moore"/"8".
func ParseNeighborhood(s string) (Neighborhood, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "orthogonal", "orthogonal4", "vonneumann", "4":
		return Orthogonal, nil
	case "moore", "moore8", "8":
		return Moore, nil
	}
	return 0, &RuleError{Input: s, Reason: "unknown neighborhood"}
}

// NeighborRule configures how live neighbor counts map to the next state.
type NeighborRule struct {
	Name         string
	Neighborhood Neighborhood
	Survive      []int
	Birth        []int
}

// RuleError reports an invalid rule or rule notation.
type RuleError struct {
	Input  string
	Reason string
}

func (e *RuleError) Error() string {
	if e.Input == "" {
		return "life rule: " + e.Reason
	}
	return fmt.Sprintf("life rule %q: %s", e.Input, e.Reason)
}

// Classic8 is Conway's rule on the Moore neighborhood: B3/S23.
func Classic8() NeighborRule {
	return NeighborRule{Name: "classic8", Neighborhood: Moore, Survive: []int{2, 3}, Birth: []int{3}}
}

// Orthogonal4 is the four-neighbor variant. A sum of 0, 1 or 4 kills, a sum
// of 3 yields a live cell whatever its state, and a sum of 2 keeps a live
// cell alive but does not birth a dead one.
func Orthogonal4() NeighborRule {
	return NeighborRule{Name: "orthogonal4", Neighborhood: Orthogonal, Survive: []int{2, 3}, Birth: []int{3}}
}

// Presets returns the built-in rules keyed by name.
func Presets() map[string]NeighborRule {
	return map[string]NeighborRule{
		"classic8":    Classic8(),
		"orthogonal4": Orthogonal4(),
	}
}

// PresetByName returns a built-in rule.
func PresetByName(name string) (NeighborRule, error) {
	rule, ok := Presets()[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return NeighborRule{}, &RuleError{Input: name, Reason: "unknown preset"}
	}
	return rule, nil
}

// LookupRule resolves a preset name, a "neighborhood:B../S.." pair, or bare
// "B../S.." notation on the Moore neighborhood.
func LookupRule(s string) (NeighborRule, error) {
	if rule, err := PresetByName(s); err == nil {
		return rule, nil
	}
	nb := Moore
	notation := s
	if prefix, rest, ok := strings.Cut(s, ":"); ok {
		parsed, err := ParseNeighborhood(prefix)
		if err != nil {
			return NeighborRule{}, err
		}
		nb, notation = parsed, rest
	}
	return ParseRule(nb, notation)
}

// ParseRule parses birth/survive notation such as "B3/S23" or "S23/B3".
// Either part may be empty ("B3/S").
func ParseRule(nb Neighborhood, notation string) (NeighborRule, error) {
	parts := strings.Split(strings.TrimSpace(notation), "/")
	if len(parts) != 2 {
		return NeighborRule{}, &RuleError{Input: notation, Reason: "want B<digits>/S<digits>"}
	}
	rule := NeighborRule{Neighborhood: nb}
	var seenB, seenS bool
	for _, part := range parts {
		if part == "" {
			return NeighborRule{}, &RuleError{Input: notation, Reason: "empty section"}
		}
		counts, err := parseCounts(part[1:])
		if err != nil {
			return NeighborRule{}, &RuleError{Input: notation, Reason: err.Error()}
		}
		switch part[0] {
		case 'B', 'b':
			if seenB {
				return NeighborRule{}, &RuleError{Input: notation, Reason: "duplicate B section"}
			}
			seenB, rule.Birth = true, counts
		case 'S', 's':
			if seenS {
				return NeighborRule{}, &RuleError{Input: notation, Reason: "duplicate S section"}
			}
			seenS, rule.Survive = true, counts
		default:
			return NeighborRule{}, &RuleError{Input: notation, Reason: "section must start with B or S"}
		}
	}
	if err := rule.Validate(); err != nil {
		return NeighborRule{}, err
	}
	return rule, nil
}

func parseCounts(digits string) ([]int, error) {
	counts := make([]int, 0, len(digits))
	for _, r := range digits {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("invalid count %q", r)
		}
		counts = append(counts, int(r-'0'))
	}
	slices.Sort(counts)
	return slices.Compact(counts), nil
}

// Validate checks that the neighborhood is known and every count is within
// [0, neighborhood size].
func (r NeighborRule) Validate() error {
	size := r.Neighborhood.Size()
	if size == 0 {
		return &RuleError{Input: r.Name, Reason: "unknown neighborhood " + r.Neighborhood.String()}
	}
	for _, set := range [][]int{r.Survive, r.Birth} {
		for _, n := range set {
			if n < 0 || n > size {
				return &RuleError{Input: r.Name, Reason: fmt.Sprintf("count %d outside [0,%d] for %s", n, size, r.Neighborhood)}
			}
		}
	}
	return nil
}

// Notation returns the rule in B/S form with counts in ascending order.
func (r NeighborRule) Notation() string {
	var b strings.Builder
	b.WriteByte('B')
	writeCounts(&b, r.Birth)
	b.WriteString("/S")
	writeCounts(&b, r.Survive)
	return b.String()
}

func writeCounts(b *strings.Builder, counts []int) {
	sorted := slices.Clone(counts)
	slices.Sort(sorted)
	for _, n := range slices.Compact(sorted) {
		b.WriteString(strconv.Itoa(n))
	}
}

// String returns the form accepted by LookupRule.
func (r NeighborRule) String() string {
	return r.Neighborhood.String() + ":" + r.Notation()
}

// outcomes maps [alive][count] to the next state. The rule must be valid.
func (r NeighborRule) outcomes() [2][]bool {
	size := r.Neighborhood.Size()
	table := [2][]bool{make([]bool, size+1), make([]bool, size+1)}
	for _, n := range r.Birth {
		table[0][n] = true
	}
	for _, n := range r.Survive {
		table[1][n] = true
	}
	return table
}
