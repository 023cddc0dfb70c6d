package asset

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusInUse       Status = "In Use"
	StatusInStorage   Status = "In Storage"
	StatusUnderRepair Status = "Under Repair"
	StatusBroken      Status = "Broken"
	StatusEndOfLife   Status = "End of Life"
	StatusDisposed    Status = "Disposed"
)

const DefaultStatus = StatusInUse

var statusByKey = map[string]Status{
	"in use":       StatusInUse,
	"in storage":   StatusInStorage,
	"under repair": StatusUnderRepair,
	"broken":       StatusBroken,
	"end of life":  StatusEndOfLife,
	"disposed":     StatusDisposed,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	st, ok := statusByKey[strings.ToLower(string(s))]
	return ok && st == s
}

// ParseStatus accepts any casing and "_" for spaces. Empty input yields
// DefaultStatus.
func ParseStatus(s string) (Status, error) {
	key := strings.ToLower(strings.Join(strings.Fields(strings.ReplaceAll(s, "_", " ")), " "))
	if key == "" {
		return DefaultStatus, nil
	}
	st, ok := statusByKey[key]
	if !ok {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return st, nil
}
