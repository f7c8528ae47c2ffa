package model

import "strings"

// mutualSuffixes are the trailing characters that select the mutual problem.
const mutualSuffixes = "13579"

// SelectProblem returns the problem type assigned to a registration number.
// An odd last digit selects the mutual problem; anything else, including an
// empty or non-numeric suffix, selects the level problem.
func SelectProblem(regNo string) ProblemType {
	if regNo == "" {
		return ProblemLevel
	}
	if strings.ContainsRune(mutualSuffixes, rune(regNo[len(regNo)-1])) {
		return ProblemMutual
	}
	return ProblemLevel
}
