package tui

import (
	"reflect"
	"testing"
)

func TestSplitShellWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"milk", []string{"milk"}},
		{"pay rent 2024-04-01 09:00", []string{"pay", "rent", "2024-04-01", "09:00"}},
		{"'pay rent' 2024-04-01 09:00", []string{"pay rent", "2024-04-01", "09:00"}},
		{"\"water plants\" 3 days", []string{"water plants", "3", "days"}},
		{"a\\ b c", []string{"a b", "c"}},
		{"'' x", []string{"", "x"}},
	}

	for _, tt := range tests {
		if got := splitShellWords(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("splitShellWords(%q)=%v, want %v", tt.in, got, tt.want)
		}
	}
}
