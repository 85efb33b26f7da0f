package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreditScore(t *testing.T) {
	tests := []struct {
		name   string
		age    int
		salary float64
		want   int
	}{
		{"older high earner", 45, 25000, 20},
		{"younger high earner", 22, 25000, 30},
		{"older low earner", 45, 5000, 10},
		{"younger low earner", 22, 5000, 20},
		{"age exactly at pivot", 30, 25000, 0},
		{"age at pivot low salary", 30, 5000, 0},
		{"salary exactly at pivot", 45, 10000, 0},
		{"salary at pivot young", 22, 10000, 0},
		{"both at pivot", 30, 10000, 0},
		{"just above both pivots", 31, 10000.01, 20},
		{"just below both pivots", 29, 9999.99, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CreditScore(tt.age, tt.salary))
		})
	}
}

func TestCreditScoreRange(t *testing.T) {
	for _, age := range []int{0, 18, 29, 30, 31, 65, 120} {
		for _, salary := range []float64{0, 9999, 10000, 10001, 1e6} {
			score := CreditScore(age, salary)
			assert.Contains(t, []int{0, 10, 20, 30}, score,
				"age=%d salary=%v produced unexpected score %d", age, salary, score)
		}
	}
}
