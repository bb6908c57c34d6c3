package utils

import "fmt"

// AppendfNoEscape fmt.Appendf for log buffers taken from the pool.
func AppendfNoEscape(buf []byte, format string, v ...any) []byte {
	return fmt.Appendf(buf, format, v...)
}
