package service

// Ptr returns a pointer to a copy of v. Optional request parameters travel as *T so
// that an absent parameter (nil) differs from an empty one.
func Ptr[T any](v T) *T {
	return &v
}
