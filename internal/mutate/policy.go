package mutate

import "chartodo/internal/model"

// CapacityMode decides what happens when a capped sequence would overflow.
type CapacityMode int

const (
	Unbounded CapacityMode = iota
	// DropOnOverflow silently discards items that do not fit.
	DropOnOverflow
	// ClearOnOverflow empties the whole sequence before the append that would
	// overflow it. It does not evict oldest-first.
	ClearOnOverflow
)

func (m CapacityMode) String() string {
	switch m {
	case DropOnOverflow:
		return "drop"
	case ClearOnOverflow:
		return "clear"
	default:
		return "unbounded"
	}
}

type Capacity struct {
	Limit int
	Mode  CapacityMode
}

// room is how many more entries fit into a sequence of length n.
func (c Capacity) room(n int) int {
	if c.Mode == Unbounded || c.Limit <= 0 {
		return int(^uint(0) >> 1)
	}
	if n >= c.Limit {
		return 0
	}
	return c.Limit - n
}

// admit prepares ts for one more append under ClearOnOverflow.
func (c Capacity) admit(ts []model.Task) []model.Task {
	if c.Mode == ClearOnOverflow && c.Limit > 0 && len(ts)+1 > c.Limit {
		return []model.Task{}
	}
	return ts
}

// Policy is the per-kind strategy plugged into the Engine.
type Policy struct {
	MaxTaskLen int
	Todo       Capacity
	Done       Capacity
	Thresholds Thresholds
}

func DefaultPolicy(kind model.Kind) Policy {
	p := Policy{
		MaxTaskLen: 40,
		Todo:       Capacity{Mode: Unbounded},
		Done:       Capacity{Limit: 10, Mode: ClearOnOverflow},
		Thresholds: DefaultThresholds(),
	}
	if kind == model.KindPlain {
		p.MaxTaskLen = 150
		p.Todo = Capacity{Limit: 15, Mode: DropOnOverflow}
	}
	return p
}
