package collection

// FirstDuplicate returns the first value which appears earlier in the list.
func FirstDuplicate[T comparable](list []T) (T, bool) {
	seen := make(map[T]struct{}, len(list))
	for _, val := range list {
		if _, exist := seen[val]; exist {
			return val, true
		}
		seen[val] = struct{}{}
	}
	var empty T
	return empty, false
}
