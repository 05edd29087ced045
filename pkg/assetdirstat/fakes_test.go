package assetdirstat

import (
	"path"

	"github.com/datatug/assetdirstat/pkg/assetstat"
	"github.com/spf13/afero"
)

type fakeView struct {
	disabled        bool
	disabledMessage string
	helpVisible     bool
	helpText        string
	types           []TypeEntry
	selected        string
	hasSelection    bool
	typesOffset     int
	totals          TotalsEntry
	filesExt        string
	files           []FileEntry
	filesOffset     int
	emptyPrompt     string
	status          string
	statusIsError   bool

	scrollTypes, scrollFiles int
	renders                  int
}

var _ View = (*fakeView)(nil)

func (v *fakeView) SetDisabled(disabled bool, message string) {
	v.renders++
	v.disabled = disabled
	v.disabledMessage = message
}

func (v *fakeView) ShowHelp(visible bool, text string) {
	v.helpVisible = visible
	v.helpText = text
}

func (v *fakeView) ShowTypes(entries []TypeEntry, selected string, hasSelection bool, offset int) {
	v.types = entries
	v.selected = selected
	v.hasSelection = hasSelection
	v.typesOffset = offset
}

func (v *fakeView) ShowTotals(totals TotalsEntry) {
	v.totals = totals
}

func (v *fakeView) ShowFiles(ext string, entries []FileEntry, offset int) {
	v.filesExt = ext
	v.files = entries
	v.filesOffset = offset
	v.emptyPrompt = ""
}

func (v *fakeView) ShowEmptyFiles(prompt string) {
	v.filesExt = ""
	v.files = nil
	v.emptyPrompt = prompt
}

func (v *fakeView) ShowStatus(text string, isError bool) {
	v.status = text
	v.statusIsError = isError
}

func (v *fakeView) ScrollOffsets() (types, files int) {
	return v.scrollTypes, v.scrollFiles
}

func newTestFs(files map[string]int) afero.Fs {
	fs := afero.NewMemMapFs()
	_ = fs.MkdirAll("Assets", 0o755)
	for name, size := range files {
		_ = fs.MkdirAll(path.Dir(name), 0o755)
		_ = afero.WriteFile(fs, name, make([]byte, size), 0o644)
	}
	return fs
}

func scanFuncFor(fs afero.Fs, options ...assetstat.ScanOption) ScanFunc {
	return func(root string) (*assetstat.ScanResult, error) {
		return assetstat.Scan(fs, root, options...)
	}
}

var sampleFiles = map[string]int{
	"Assets/a.png":      100,
	"Assets/b.PNG":      50,
	"Assets/c.txt":      10,
	"Assets/a.png.meta": 5,
}
