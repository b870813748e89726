package util

// Ceil computes the ceiling of x/y for x, y being integers
func Ceil(x int, y int) int {
	if x == 0 {
		return 0
	}
	return 1 + ((Abs(x) - 1) / Abs(y))
}

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Mask returns a value with the lowest width bits set
func Mask(width int) uint64 {
	if width <= 0 {
		return 0
	}
	if width >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(width) - 1
}

// Fits reports whether v can be represented in width bits
func Fits(v uint64, width int) bool {
	return v&^Mask(width) == 0
}

// Bias computes the exponent bias 2^(k-1) - 1 for an exponent field of k bits
func Bias(exponentBits int) int {
	return 1<<(exponentBits-1) - 1
}
