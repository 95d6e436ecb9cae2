package bplus

// lowerBound returns the first index whose key is >= target.
func lowerBound[K any](keys []K, target K, cmp func(a, b K) int) int {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cmp(keys[mid], target) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// upperBound returns the first index whose key is > target, i.e. the number
// of keys <= target. Routing and separator insertion both use it so that a
// key equal to a separator goes right.
func upperBound[K any](keys []K, target K, cmp func(a, b K) int) int {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cmp(keys[mid], target) <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// insertAt inserts elem at index i in slice.
func insertAt[T any](slice []T, i int, elem T) []T {
	slice = append(slice, elem) // grow by 1
	copy(slice[i+1:], slice[i:])
	slice[i] = elem
	return slice
}

// removeAt removes element at index i from slice.
func removeAt[T any](slice []T, i int) []T {
	var zero T
	copy(slice[i:], slice[i+1:])
	slice[len(slice)-1] = zero
	return slice[:len(slice)-1]
}
