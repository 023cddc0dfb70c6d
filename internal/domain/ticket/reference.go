package ticket

import (
	"fmt"
	"regexp"
	"strconv"
)

var referencePattern = regexp.MustCompile(`\[Ticket #(\d+)\]`)

// Reference returns the subject tag that ties an email thread to a ticket.
func Reference(id uint) string {
	return fmt.Sprintf("[Ticket #%d]", id)
}

// ParseReference finds the first ticket tag in subject. ok reports that a
// tag is present; id is 0 when the tagged number cannot name a ticket
// (zero or out of range).
func ParseReference(subject string) (id uint, ok bool) {
	m := referencePattern.FindStringSubmatch(subject)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseUint(m[1], 10, strconv.IntSize)
	if err != nil {
		return 0, true
	}
	return uint(n), true
}
