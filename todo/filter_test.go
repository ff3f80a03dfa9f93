package todo

import (
	"testing"

	"github.com/hypertodo/hypertodo/db"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in   string
		want Filter
	}{
		{"all", FilterAll},
		{"active", FilterActive},
		{"completed", FilterCompleted},
		{"Active", FilterActive},
		{" COMPLETED ", FilterCompleted},
		{"", FilterAll},
		{"bogus", FilterAll},
	}

	for _, tt := range tests {
		if got := ParseFilter(tt.in); got != tt.want {
			t.Errorf("ParseFilter(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFilterApply(t *testing.T) {
	items := []db.Todo{
		{ID: "a", Title: "active one"},
		{ID: "b", Title: "done", Completed: true},
		{ID: "c", Title: "active two"},
	}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"all", FilterAll, []string{"a", "b", "c"}},
		{"active", FilterActive, []string{"a", "c"}},
		{"completed", FilterCompleted, []string{"b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(items)
			if len(got) != len(tt.want) {
				t.Fatalf("Apply() returned %d items, want %d", len(got), len(tt.want))
			}
			for i, item := range got {
				if item.ID != tt.want[i] {
					t.Errorf("Apply()[%d].ID = %q, want %q", i, item.ID, tt.want[i])
				}
			}
		})
	}
}

func TestFilterApplyEmpty(t *testing.T) {
	for _, f := range []Filter{FilterAll, FilterActive, FilterCompleted} {
		if got := f.Apply([]db.Todo{}); len(got) != 0 {
			t.Errorf("Apply(empty) with %q returned %d items", f, len(got))
		}
	}
}
