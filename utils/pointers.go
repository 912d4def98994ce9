package utils

func RefPointer[T any](val T) *T {
	return &val
}
