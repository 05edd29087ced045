package fsutils

import (
	"strconv"

	"github.com/dustin/go-humanize"
)

const sizeUnit = 1024

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// GetSizeShortText returns a human readable size rounded to the nearest unit.
// TB is the largest unit.
func GetSizeShortText(size int64) string {
	if size < sizeUnit {
		return strconv.FormatInt(size, 10) + sizeUnits[0]
	}
	last := len(sizeUnits) - 1
	div, exp := int64(sizeUnit), 1
	for size/div >= sizeUnit && exp < last {
		div *= sizeUnit
		exp++
	}
	val := (size + div/2) / div
	// rounding may reach the next unit
	if val >= sizeUnit && exp < last {
		val /= sizeUnit
		exp++
	}
	return strconv.FormatInt(val, 10) + sizeUnits[exp]
}

// GetSizeLongText returns the exact byte count with the short text, e.g. "1,536 bytes (2KB)".
func GetSizeLongText(size int64) string {
	return humanize.Comma(size) + " bytes (" + GetSizeShortText(size) + ")"
}
