package utils

import (
	"github.com/dustin/go-humanize"
)

// HumanBytes converts bytes to human-readable format
func HumanBytes(n int64) string {
	if n < 0 {
		return "unknown"
	}
	return humanize.IBytes(uint64(n))
}

// HumanLength formats a Content-Length the way status lines show it.
func HumanLength(n uint64) string {
	return humanize.IBytes(n)
}
