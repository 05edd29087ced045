package assetdirstat

import "github.com/datatug/assetdirstat/pkg/assetstat"

// View is the set of UI primitives the Presenter draws with.
// It knows nothing about scanning or selection rules.
type View interface {
	SetDisabled(disabled bool, message string)
	ShowHelp(visible bool, text string)
	ShowTypes(entries []TypeEntry, selected string, hasSelection bool, offset int)
	ShowTotals(totals TotalsEntry)
	ShowFiles(ext string, entries []FileEntry, offset int)
	ShowEmptyFiles(prompt string)
	ShowStatus(text string, isError bool)
	ScrollOffsets() (types, files int)
}

// Revealer highlights a file outside of the inspector lists.
type Revealer interface {
	Reveal(record assetstat.FileRecord) error
}

type RevealerFunc func(record assetstat.FileRecord) error

func (f RevealerFunc) Reveal(record assetstat.FileRecord) error {
	return f(record)
}
