package mutate

import (
	"sort"
	"strconv"
	"strings"
)

// FilterPositions turns raw 1-based position tokens into a de-duplicated list
// sorted highest first, so that removing them in order never shifts a position
// still pending removal. Tokens that are not integers in [1, n] are dropped.
func FilterPositions(raw []string, n int) ([]int, error) {
	out := make([]int, 0, len(raw))
	for _, r := range raw {
		p, ok := parsePosition(r, n)
		if !ok {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, ErrNoViablePositions
	}

	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	uniq := out[:1]
	for _, p := range out[1:] {
		if p != uniq[len(uniq)-1] {
			uniq = append(uniq, p)
		}
	}
	return uniq, nil
}

// FilterPosition validates a single position (used by edit).
func FilterPosition(raw string, n int) (int, error) {
	p, ok := parsePosition(raw, n)
	if !ok {
		return 0, ErrNoViablePositions
	}
	return p, nil
}

func parsePosition(raw string, n int) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	// Only plain digits: no sign, no spaces, no hex.
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > n {
		return 0, false
	}
	return p, true
}
