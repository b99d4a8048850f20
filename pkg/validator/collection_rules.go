package validator

// NonEmptySlice validates that a slice contains at least one element.
func NonEmptySlice[T any](field string, value []T) Rule {
	return Rule{
		Check: func() bool {
			return len(value) > 0
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain at least one element",
		},
	}
}
