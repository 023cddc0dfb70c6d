// Package valueobjects holds the closed vocabularies of the ticket domain.
package valueobjects

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// canonical turns user input such as "in_progress" or "URGENT" into the
// stored title-cased form ("In Progress", "Urgent").
func canonical(s string) string {
	s = strings.Join(strings.Fields(strings.ReplaceAll(s, "_", " ")), " ")
	return cases.Title(language.English).String(s)
}
