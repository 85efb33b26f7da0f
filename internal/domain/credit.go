package domain

// Credit score thresholds.
const (
	creditAgePivot    = 30
	creditSalaryPivot = 10000
)

// CreditScore maps age and salary to a score through a fixed decision table.
// Exact equality with either pivot matches no branch and leaves the score at
// zero; that boundary behavior is intentional and callers rely on it.
func CreditScore(age int, salary float64) int {
	score := 0
	switch {
	case age > creditAgePivot && salary > creditSalaryPivot:
		score = 20
	case age < creditAgePivot && salary > creditSalaryPivot:
		score = 30
	case age > creditAgePivot && salary < creditSalaryPivot:
		score = 10
	case age < creditAgePivot && salary < creditSalaryPivot:
		score = 20
	}
	return score
}
