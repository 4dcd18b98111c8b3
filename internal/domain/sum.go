package domain

// SumToN returns the sum of the integers 1..n by iteration. Negative
// input yields 0.
func SumToN(n int) int {
	sum := 0
	for i := 1; i <= n; i++ {
		sum += i
	}
	return sum
}

// SumToNFormula returns the sum of the integers 1..n using the closed
// form n*(n+1)/2. Negative input yields 0.
func SumToNFormula(n int) int {
	if n < 0 {
		return 0
	}
	return n * (n + 1) / 2
}

// SumToNRecursive returns the sum of the integers 1..n recursively.
// Negative input yields 0.
func SumToNRecursive(n int) int {
	if n <= 0 {
		return 0
	}
	return n + SumToNRecursive(n-1)
}
