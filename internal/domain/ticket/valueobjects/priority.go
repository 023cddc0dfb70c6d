package valueobjects

import "fmt"

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityNormal Priority = "Normal"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

// DefaultPriority applies when a ticket is created without one.
const DefaultPriority = PriorityNormal

var validPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityNormal: true,
	PriorityHigh:   true,
	PriorityUrgent: true,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

// NewPriority parses s case-insensitively. Empty input is rejected; callers
// that allow an omitted priority use ParsePriorityOrDefault.
func NewPriority(s string) (Priority, error) {
	p := Priority(canonical(s))
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}

func ParsePriorityOrDefault(s string) (Priority, error) {
	if s == "" {
		return DefaultPriority, nil
	}
	return NewPriority(s)
}
