package mutate

import (
	"errors"
	"reflect"
	"testing"
)

func TestFilterPositions(t *testing.T) {
	cases := []struct {
		name string
		raw  []string
		n    int
		want []int
	}{
		{name: "single", raw: []string{"2"}, n: 3, want: []int{2}},
		{name: "descending", raw: []string{"1", "3", "2"}, n: 3, want: []int{3, 2, 1}},
		{name: "dedupe", raw: []string{"2", "2", "1", "2"}, n: 3, want: []int{2, 1}},
		{name: "last is valid", raw: []string{"5"}, n: 5, want: []int{5}},
		{name: "drops junk", raw: []string{"0", "-1", "abc", "", " ", "4", "+1", "1.5", "3"}, n: 3, want: []int{3}},
		{name: "leading zero", raw: []string{"02"}, n: 3, want: []int{2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FilterPositions(tc.raw, tc.n)
			if err != nil {
				t.Fatalf("FilterPositions: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilterPositions_NoneViable(t *testing.T) {
	for _, raw := range [][]string{nil, {"0"}, {"6"}, {"x", "-2"}} {
		if _, err := FilterPositions(raw, 5); !errors.Is(err, ErrNoViablePositions) {
			t.Fatalf("raw=%v: expected ErrNoViablePositions, got %v", raw, err)
		}
	}
}

func TestFilterPosition(t *testing.T) {
	if p, err := FilterPosition("3", 3); err != nil || p != 3 {
		t.Fatalf("expected 3, got %d (%v)", p, err)
	}
	if _, err := FilterPosition("4", 3); err == nil {
		t.Fatalf("expected out-of-range error")
	}
}

func TestGuard(t *testing.T) {
	th := DefaultThresholds()
	cases := []struct {
		op      Op
		k, n    int
		refused bool
	}{
		{OpRemoveTodo, 6, 6, true},
		{OpRemoveTodo, 5, 6, false},
		{OpRemoveTodo, 5, 5, false},
		{OpRemoveTodo, 1, 1, false},
		{OpRemoveDone, 6, 6, true},
		{OpComplete, 7, 7, true},
		{OpReverse, 2, 2, true},
		{OpReverse, 1, 1, false},
	}
	for _, tc := range cases {
		err := Guard(tc.op, tc.k, tc.n, th)
		if (err != nil) != tc.refused {
			t.Fatalf("Guard(%s, %d, %d) = %v, refused want %v", tc.op, tc.k, tc.n, err, tc.refused)
		}
		var be *BulkIntentError
		if tc.refused && (!errors.As(err, &be) || be.Suggest != bulkCommand[tc.op]) {
			t.Fatalf("expected BulkIntentError suggesting %q, got %v", bulkCommand[tc.op], err)
		}
	}
}

func TestGuard_ThresholdOverride(t *testing.T) {
	th := Thresholds{OpRemoveTodo: 10}
	if err := Guard(OpRemoveTodo, 8, 8, th); err != nil {
		t.Fatalf("expected no refusal below overridden threshold, got %v", err)
	}
	// Ops missing from the map fall back to defaults.
	if err := Guard(OpRemoveDone, 6, 6, th); err == nil {
		t.Fatalf("expected default threshold to apply")
	}
}
