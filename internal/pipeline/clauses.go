package pipeline

import (
	"regexp"
	"strings"
)

// DefaultClauseMinChars drops headings and fragments too short to analyze
const DefaultClauseMinChars = 100

// clauseHeading matches numbered headings like "3. " at the start of a clause
var clauseHeading = regexp.MustCompile(`(?:^|\s)(\d+\.\s+)`)

// SplitClauses collapses whitespace and splits text before each numbered
// heading. The heading stays with its clause. Clauses of minChars or fewer
// characters are dropped.
func SplitClauses(text string, minChars int) []string {
	flat := strings.Join(strings.Fields(text), " ")
	if flat == "" {
		return nil
	}

	starts := []int{0}
	for _, m := range clauseHeading.FindAllStringSubmatchIndex(flat, -1) {
		if m[2] > 0 {
			starts = append(starts, m[2])
		}
	}
	starts = append(starts, len(flat))

	var clauses []string
	for i := 0; i < len(starts)-1; i++ {
		clause := strings.TrimSpace(flat[starts[i]:starts[i+1]])
		if len(clause) > minChars {
			clauses = append(clauses, clause)
		}
	}
	return clauses
}
