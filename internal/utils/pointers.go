// Package utils holds small generic helpers shared across packages.
package utils

// Ptr returns a pointer to v. Useful for filling optional API fields.
func Ptr[T any](v T) *T {
	return &v
}
