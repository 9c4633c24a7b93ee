package common

import "math"

// FloorDiv returns floor(v / size) as an int. Negative values round toward
// negative infinity so cells left of or above the origin get negative indices.
func FloorDiv(v, size float64) int {
	return int(math.Floor(v / size))
}
