// SPDX-License-Identifier: MIT

package matrix

import "math"

// IsZero reports |x| <= eps. With eps == 0 it is an exact zero test.
func IsZero(x, eps float64) bool {
	return math.Abs(x) <= eps
}

// GreaterOrEqual reports a >= b within eps, i.e. a > b-eps or |a-b| <= eps.
// Used where a left-hand sum must not lose to floating noise in the right.
func GreaterOrEqual(a, b, eps float64) bool {
	return a > b || math.Abs(a-b) <= eps
}
