package mutate

// Op names an enumerated-position operation for guarding purposes.
type Op string

const (
	OpComplete   Op = "done"
	OpRemoveTodo Op = "rmtodo"
	OpRemoveDone Op = "rmdone"
	OpReverse    Op = "notdone"
	OpReset      Op = "reset"
)

// Thresholds maps an Op to the list length at or below which the guard stays
// quiet.
type Thresholds map[Op]int

func DefaultThresholds() Thresholds {
	return Thresholds{
		OpComplete:   5,
		OpRemoveTodo: 5,
		OpRemoveDone: 5,
		OpReverse:    1,
		OpReset:      1,
	}
}

func (t Thresholds) For(op Op) int {
	if v, ok := t[op]; ok {
		return v
	}
	return DefaultThresholds()[op]
}

// bulkCommand is the whole-list command each Op points users at.
var bulkCommand = map[Op]string{
	OpComplete:   "doneall",
	OpRemoveTodo: "cleartodo",
	OpRemoveDone: "cleardone",
	OpReverse:    "notdoneall",
	OpReset:      "resetall",
}

// Guard refuses an operation whose k positions cover a list of the given
// length, once that length exceeds the Op's threshold.
func Guard(op Op, k, length int, th Thresholds) error {
	if k >= length && length > th.For(op) {
		return &BulkIntentError{Suggest: bulkCommand[op]}
	}
	return nil
}
