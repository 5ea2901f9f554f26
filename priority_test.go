package priorityqueue_test

import (
	"encoding/json"
	"slices"
	"testing"

	priorityqueue "github.com/ReconArt/priority-queue"
)

type stringer struct {
	value string
}

func (s stringer) String() string {
	return s.value
}

func TestParsePriority(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input any
		want  priorityqueue.Priority
	}{
		"parse from string critical": {
			input: "critical",
			want:  priorityqueue.Critical,
		},
		"parse from string deferred": {
			input: "deferred",
			want:  priorityqueue.Deferred,
		},
		"parse from invalid string": {
			input: "invalid",
			want:  priorityqueue.Priority(-1),
		},
		"parse from stringer": {
			input: stringer{value: "normal"},
			want:  priorityqueue.Normal,
		},
		"parse from int": {
			input: 2,
			want:  priorityqueue.Elevated,
		},
		"parse from int64": {
			input: int64(4),
			want:  priorityqueue.Low,
		},
		"parse from int32": {
			input: int32(1),
			want:  priorityqueue.High,
		},
		"parse from existing priority": {
			input: priorityqueue.Normal,
			want:  priorityqueue.Normal,
		},
		"parse from unsupported type": {
			input: false,
			want:  priorityqueue.Priority(-1),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := priorityqueue.ParsePriority(tt.input)
			if got != tt.want {
				t.Errorf("mismatch:\n  got:  %v\n  want: %v", got, tt.want)
			}
		})
	}
}

func TestPriority_Valid(t *testing.T) {
	t.Parallel()

	for _, p := range priorityqueue.AllPriorities() {
		if !p.Valid() {
			t.Errorf("expected %q to be valid", p)
		}
	}
	for _, p := range []priorityqueue.Priority{-1, priorityqueue.Levels, 42} {
		if p.Valid() {
			t.Errorf("expected %v to be invalid", p)
		}
	}
}

func TestPriorityJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, p := range priorityqueue.AllPriorities() {
		b, err := json.Marshal(p)
		if err != nil {
			t.Fatalf("marshal %q: %v", p, err)
		}

		var got priorityqueue.Priority
		if err := json.Unmarshal(b, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", b, err)
		}
		if got != p {
			t.Errorf("mismatch:\n  got:  %q\n  want: %q", got, p)
		}
	}

	if _, err := json.Marshal(priorityqueue.Priority(-1)); err == nil {
		t.Error("expected marshalling an invalid priority to fail")
	}
}

func TestAllPriorities(t *testing.T) {
	t.Parallel()

	priorities := priorityqueue.AllPriorities()
	if len(priorities) != priorityqueue.Levels {
		t.Fatalf("expected %d priorities, got: %d", priorityqueue.Levels, len(priorities))
	}

	got := make([]string, 0, len(priorities))
	for _, p := range priorities {
		got = append(got, p.String())
	}

	want := []string{"critical", "high", "elevated", "normal", "low", "deferred"}
	if !slices.Equal(got, want) {
		t.Errorf("mismatch:\n  got:  %#v\n  want: %#v", got, want)
	}

	// Dequeue order: most urgent first.
	if !slices.IsSorted(priorities) {
		t.Errorf("expected priorities in ascending order, got: %v", priorities)
	}
}
