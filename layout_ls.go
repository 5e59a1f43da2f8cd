//go:build !mlu_msfirst

package num

// MSFirst reports whether an MLU stores its most significant limb at array
// index 0. This build stores the least significant limb first; build with
// '-tags mlu_msfirst' for the opposite layout.
const MSFirst = false

// phys maps significance index k (0 == least significant) of an n-limb array
// to its physical array index.
func phys(n, k int) int { return k }
