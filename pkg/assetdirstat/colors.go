package assetdirstat

import (
	"github.com/cespare/xxhash/v2"
	"github.com/gdamore/tcell/v2"
)

// ExtColor derives a bright colour from the extension, so a type keeps
// its colour across rescans and runs.
func ExtColor(ext string) tcell.Color {
	h := xxhash.Sum64String(ext)
	r := int32(128 + h&0x7f)
	g := int32(128 + (h>>8)&0x7f)
	b := int32(128 + (h>>16)&0x7f)
	return tcell.NewRGBColor(r, g, b)
}
