package assetstat

import (
	"path"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeExt returns the lowercased extension of name including the dot,
// or an empty string when name has none.
func NormalizeExt(name string) string {
	ext := path.Ext(name)
	if ext == "" {
		return ""
	}
	return cases.Lower(language.Und).String(ext)
}
