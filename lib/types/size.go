package types

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

type Size int64

func (s Size) String() string {
	return humanize.IBytes(uint64(s))
}

// Megabytes returns size in MiB
func (s Size) Megabytes() float64 {
	return float64(s) / (1024 * 1024)
}

// MB formats size as megabytes with two decimals, i.e. "12.34 MB"
func (s Size) MB() string {
	return fmt.Sprintf("%.2f MB", s.Megabytes())
}

// Count is a number printed with thousands separators
type Count int64

func (c Count) String() string {
	return humanize.Comma(int64(c))
}
