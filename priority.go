package priorityqueue

import "fmt"

// Levels is the number of priority levels the queue supports. Priorities are
// the integers in [0, Levels); supplying anything outside that range to a
// queue operation is a contract violation reported as [ErrInvalidPriority],
// never silently clamped.
const Levels = 6

// Priority identifies the urgency of an element. Lower values are served
// first: [Critical] (0) beats [Deferred] (5).
type Priority int

const (
	Critical Priority = iota
	High
	Elevated
	Normal
	Low
	Deferred
)

// ParsePriority creates a [Priority] from the given value. Unrecognised
// inputs yield an invalid priority, which every queue operation rejects.
func ParsePriority(p any) Priority {
	switch v := p.(type) {
	case Priority:
		return v
	case string:
		return stringToPriority(v)
	case fmt.Stringer:
		return stringToPriority(v.String())
	case int:
		return Priority(v)
	case int64:
		return Priority(v)
	case int32:
		return Priority(v)
	default:
		return invalidPriority
	}
}

// AllPriorities returns the supported priorities in dequeue order, most
// urgent first.
func AllPriorities() []Priority {
	return []Priority{Critical, High, Elevated, Normal, Low, Deferred}
}

// Valid reports whether p lies in the supported range [0, Levels).
func (p Priority) Valid() bool {
	return p >= 0 && p < Levels
}

func (p Priority) String() string {
	if s, ok := strPriorityMap[p]; ok {
		return s
	}
	return fmt.Sprintf("invalid(%d)", int(p))
}

func (p Priority) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPriority, int(p))
	}
	return []byte(`"` + p.String() + `"`), nil
}

func (p *Priority) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	*p = stringToPriority(s)
	return nil
}

// invalidPriority is outside [0, Levels) so it fails Valid and can never
// index a bucket.
const invalidPriority Priority = -1

var (
	strPriorityMap = map[Priority]string{
		Critical: "critical",
		High:     "high",
		Elevated: "elevated",
		Normal:   "normal",
		Low:      "low",
		Deferred: "deferred",
	}

	typePriorityMap = map[string]Priority{
		"critical": Critical,
		"high":     High,
		"elevated": Elevated,
		"normal":   Normal,
		"low":      Low,
		"deferred": Deferred,
	}
)

func stringToPriority(s string) Priority {
	if v, ok := typePriorityMap[s]; ok {
		return v
	}
	return invalidPriority
}
