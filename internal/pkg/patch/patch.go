package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalescePtr keeps the current optional value unless the patch sets one.
func CoalescePtr[T any](patch *T, current *T) *T {
	if patch != nil {
		return patch
	}
	return current
}

// AnySet reports whether at least one field of a partial update is present.
func AnySet(fields ...bool) bool {
	for _, f := range fields {
		if f {
			return true
		}
	}
	return false
}
