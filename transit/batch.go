package transit

// Validatable is implemented by every record with a validity predicate.
type Validatable interface {
	IsValid() bool
}

// FirstInvalid returns the index of the first item whose IsValid is false, or -1.
func FirstInvalid[T Validatable](items []T) int {
	for i, item := range items {
		if !item.IsValid() {
			return i
		}
	}
	return -1
}

// AllValid reports whether every item is valid. An empty slice is valid.
func AllValid[T Validatable](items []T) bool {
	return FirstInvalid(items) < 0
}
