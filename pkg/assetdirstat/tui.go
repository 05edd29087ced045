package assetdirstat

import (
	"fmt"
	"strings"

	"github.com/datatug/assetdirstat/pkg/assetdirstat/adsui"
	"github.com/datatug/assetdirstat/pkg/sneatv"
	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	mainPage     = "main"
	disabledPage = "disabled"

	helpHeight   = 7
	totalsHeight = 6
)

var _ View = (*Inspector)(nil)

// Inspector is the terminal rendition of the asset inspector window.
type Inspector struct {
	*tview.Pages

	rows    *tview.Flex
	columns *tview.Flex

	helpButton  *tview.Button
	scanButton  *tview.Button
	clearButton *tview.Button
	help        *tview.TextView

	types    *tview.Table
	typesBox *sneatv.Boxed
	totals   *tview.TextView
	files    *tview.Table
	filesBox *sneatv.Boxed
	preview  *Preview

	status   *tview.TextView
	menu     *adsui.MenuBar
	disabled *tview.TextView

	presenter *Presenter
	setFocus  func(p tview.Primitive)
	exit      func()

	// set while the presenter pushes state so that programmatic
	// selection does not loop back into the presenter
	updating bool
}

type InspectorOption func(i *Inspector)

// WithFocusFunc is how the inspector moves focus between its tables.
func WithFocusFunc(f func(p tview.Primitive)) InspectorOption {
	return func(i *Inspector) {
		i.setFocus = f
	}
}

func WithExitFunc(f func()) InspectorOption {
	return func(i *Inspector) {
		i.exit = f
	}
}

func NewInspector(preview *Preview, options ...InspectorOption) *Inspector {
	i := &Inspector{
		Pages:   tview.NewPages(),
		preview: preview,
	}
	for _, option := range options {
		option(i)
	}

	i.helpButton = newButton("Help", Style.HelpButtonColor)
	i.scanButton = newButton("Scan", Style.ScanButtonColor)
	i.clearButton = newButton("Clear", Style.ClearButtonColor)
	buttons := tview.NewFlex().
		AddItem(i.helpButton, 8, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(i.scanButton, 8, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(i.clearButton, 9, 0, false).
		AddItem(nil, 0, 1, false)

	i.help = tview.NewTextView().SetWrap(true).SetWordWrap(true)
	i.help.SetTextColor(Style.CellTextColor)

	i.types = newTable()
	i.types.SetTitle("Asset Types")
	i.types.SetSelectionChangedFunc(func(row, _ int) {
		i.typeSelected(row)
	})
	i.types.SetSelectedFunc(func(row, _ int) {
		i.typeSelected(row)
	})
	i.typesBox = sneatv.NewBoxed(i.types, sneatv.WithRightBorder(0, 0))

	i.totals = tview.NewTextView().SetDynamicColors(true)
	i.totals.SetTitle("Total Size")
	totalsBox := sneatv.NewBoxed(i.totals, sneatv.WithRightBorder(0, 0))

	i.files = newTable()
	i.files.SetTitle("Assets")
	i.files.SetSelectionChangedFunc(func(row, _ int) {
		i.fileSelected(row)
	})
	i.files.SetSelectedFunc(func(row, _ int) {
		i.fileSelected(row)
	})
	i.filesBox = sneatv.NewBoxed(i.files)

	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(i.typesBox, 0, 1, true).
		AddItem(totalsBox, totalsHeight, 0, false)
	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(i.filesBox, 0, 3, false)
	if preview != nil {
		right.AddItem(sneatv.NewBoxed(preview), 0, 2, false)
	}
	i.columns = tview.NewFlex().
		AddItem(left, 0, 1, true).
		AddItem(right, 0, 1, false)

	i.status = tview.NewTextView().SetTextColor(Style.StatusColor)
	i.menu = adsui.NewMenuBar(i.menuItems()...)

	i.rows = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(buttons, 1, 0, false).
		AddItem(i.help, 0, 0, false).
		AddItem(i.columns, 0, 1, true).
		AddItem(i.status, 1, 0, false).
		AddItem(i.menu, 1, 0, false)

	i.disabled = tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetTextColor(Style.DisabledColor)

	i.AddPage(mainPage, i.rows, true, true)
	i.AddPage(disabledPage, i.disabled, true, false)
	i.SetInputCapture(i.inputCapture)

	i.ShowEmptyFiles(EmptyFilesPrompt)
	return i
}

func newButton(label string, color tcell.Color) *tview.Button {
	b := tview.NewButton(label)
	style := tcell.StyleDefault.Background(color).Foreground(tcell.ColorWhite)
	b.SetStyle(style)
	b.SetActivatedStyle(style.Bold(true))
	return b
}

func newTable() *tview.Table {
	t := tview.NewTable()
	t.SetSelectable(true, false)
	t.SetFixed(1, 0)
	t.SetSelectedStyle(Style.SelectedStyle)
	t.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if isNavigationKey(event) && activateFirstRow(t) {
			return nil
		}
		return event
	})
	t.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action == tview.MouseLeftClick {
			if rows, _ := t.GetSelectable(); !rows {
				if row, _ := t.CellAt(event.Position()); row >= 1 && row < t.GetRowCount() {
					t.SetSelectable(true, false)
				}
			}
		}
		return action, event
	})
	return t
}

// setSelection highlights row, or nothing when row is the header. A
// selectable table moves its cursor off the header on draw without
// calling its SelectionChangedFunc.
func setSelection(t *tview.Table, row int) {
	t.SetSelectable(row > 0, false)
	t.Select(row, 0)
}

// activateFirstRow turns the highlight on at the first data row of a table
// that has nothing selected yet.
func activateFirstRow(t *tview.Table) bool {
	if rows, _ := t.GetSelectable(); rows || t.GetRowCount() < 2 {
		return false
	}
	if ref := t.GetCell(1, 1).GetReference(); ref == nil {
		return false
	}
	t.SetSelectable(true, false)
	t.Select(1, 0)
	return true
}

func isNavigationKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyDown, tcell.KeyUp, tcell.KeyHome, tcell.KeyEnd,
		tcell.KeyPgDn, tcell.KeyPgUp, tcell.KeyEnter:
		return true
	case tcell.KeyRune:
		switch event.Rune() {
		case 'j', 'k', 'g', 'G':
			return true
		}
	}
	return false
}

func headerCell(text string) *tview.TableCell {
	return tview.NewTableCell(text).
		SetTextColor(Style.TableHeaderColor).
		SetAttributes(tcell.AttrBold).
		SetSelectable(false)
}

func (i *Inspector) menuItems() []adsui.MenuItem {
	call := func(f func(p *Presenter)) func() {
		return func() {
			if i.presenter != nil {
				f(i.presenter)
			}
		}
	}
	return []adsui.MenuItem{
		{Title: "F1 Help", HotKeys: []string{"F1"}, Action: call((*Presenter).ToggleHelp)},
		{Title: "F5 Scan", HotKeys: []string{"F5"}, Action: call(func(p *Presenter) { _ = p.Scan() })},
		{Title: "Clear", HotKeys: []string{"C"}, Action: call((*Presenter).Clear)},
		{Title: "Tab Switch", HotKeys: []string{"Tab"}, Action: i.switchFocus},
		{Title: "q Exit", HotKeys: []string{"q"}, Action: i.doExit},
	}
}

// Bind connects buttons and keys to the presenter.
func (i *Inspector) Bind(p *Presenter) {
	i.presenter = p
	i.helpButton.SetSelectedFunc(p.ToggleHelp)
	i.scanButton.SetSelectedFunc(func() {
		_ = p.Scan()
	})
	i.clearButton.SetSelectedFunc(p.Clear)
}

func (i *Inspector) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	if i.presenter == nil {
		return event
	}
	switch event.Key() {
	case tcell.KeyF1:
		i.presenter.ToggleHelp()
		return nil
	case tcell.KeyF5:
		_ = i.presenter.Scan()
		return nil
	case tcell.KeyTab, tcell.KeyBacktab:
		i.switchFocus()
		return nil
	case tcell.KeyEscape:
		i.doExit()
		return nil
	case tcell.KeyRune:
		if event.Modifiers()&tcell.ModAlt != 0 {
			if event.Rune() == 'x' {
				i.doExit()
				return nil
			}
			return event
		}
		switch event.Rune() {
		case '?':
			i.presenter.ToggleHelp()
			return nil
		case 's', 'S':
			_ = i.presenter.Scan()
			return nil
		case 'c', 'C':
			i.presenter.Clear()
			return nil
		case 'q':
			i.doExit()
			return nil
		}
	}
	return event
}

func (i *Inspector) doExit() {
	if i.exit != nil {
		i.exit()
	}
}

func (i *Inspector) switchFocus() {
	if i.setFocus == nil {
		return
	}
	if i.files.HasFocus() {
		i.setFocus(i.types)
	} else {
		i.setFocus(i.files)
	}
}

func (i *Inspector) typeSelected(row int) {
	if i.updating || i.presenter == nil || row < 1 {
		return
	}
	ext, ok := i.types.GetCell(row, 1).GetReference().(string)
	if !ok {
		return
	}
	i.presenter.SelectType(ext)
}

func (i *Inspector) fileSelected(row int) {
	if i.updating || i.presenter == nil || row < 1 {
		return
	}
	path, ok := i.files.GetCell(row, 1).GetReference().(string)
	if !ok {
		return
	}
	_ = i.presenter.RevealFile(path)
}

func (i *Inspector) SetDisabled(disabled bool, message string) {
	if disabled {
		i.disabled.SetText("\n" + message)
		i.SwitchToPage(disabledPage)
		return
	}
	i.SwitchToPage(mainPage)
}

func (i *Inspector) ShowHelp(visible bool, text string) {
	height := 0
	if visible {
		height = helpHeight
		i.help.SetText(text)
	}
	i.rows.ResizeItem(i.help, height, 0)
}

func (i *Inspector) ShowTypes(entries []TypeEntry, selected string, hasSelection bool, offset int) {
	i.updating = true
	defer func() {
		i.updating = false
	}()

	t := i.types
	t.Clear()
	t.SetCell(0, 0, headerCell(""))
	t.SetCell(0, 1, headerCell("Type").SetExpansion(1))
	t.SetCell(0, 2, headerCell("Files").SetAlign(tview.AlignRight))
	t.SetCell(0, 3, headerCell("Size").SetAlign(tview.AlignRight))

	selectedRow := 0
	for n, e := range entries {
		row := n + 1
		bar := tview.NewTableCell(strings.Repeat("█", e.Weight)).
			SetTextColor(e.Color).
			SetMaxWidth(MaxBlockWeight)
		t.SetCell(row, 0, bar)
		t.SetCell(row, 1, tview.NewTableCell(tview.Escape(e.Label)).
			SetTextColor(e.Color).
			SetReference(e.Extension).
			SetExpansion(1))
		t.SetCell(row, 2, tview.NewTableCell(countText(e.Count)).
			SetTextColor(Style.CellTextColor).
			SetAlign(tview.AlignRight))
		t.SetCell(row, 3, getSizeCell(e.Size, e.SizeText, Style.CellTextColor))
		if hasSelection && e.Extension == selected {
			selectedRow = row
		}
	}
	setSelection(t, selectedRow)
	t.SetOffset(offset, 0)
}

func countText(count int) string {
	if count == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", count)
}

func getSizeCell(size int64, text string, defaultColor tcell.Color) *tview.TableCell {
	color := defaultColor
	switch {
	case size >= 1024*1024*1024:
		color = tcell.ColorOrangeRed
	case size >= 100*1024*1024:
		color = tcell.ColorOrange
	case size >= 1024*1024:
		color = tcell.ColorYellow
	}
	return tview.NewTableCell(text).SetTextColor(color).SetAlign(tview.AlignRight)
}

func (i *Inspector) ShowTotals(totals TotalsEntry) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[::b]%s[::-] (%s bytes)\n", totals.SizeText, humanize.Comma(totals.Size))
	fmt.Fprintf(&sb, "%s in %d types\n", countText(totals.Files), totals.Types)
	if totals.Skipped > 0 {
		fmt.Fprintf(&sb, "[red]%d skipped[-]\n", totals.Skipped)
	}
	if totals.Volume != "" {
		fmt.Fprintf(&sb, "Volume: %s\n", totals.Volume)
	}
	i.totals.SetText(strings.TrimSuffix(sb.String(), "\n"))
}

func (i *Inspector) ShowFiles(ext string, entries []FileEntry, offset int) {
	i.updating = true
	defer func() {
		i.updating = false
	}()

	i.files.SetTitle("Assets: " + tview.Escape(ExtLabel(ext)))
	t := i.files
	t.Clear()
	t.SetCell(0, 0, headerCell("Size").SetAlign(tview.AlignRight))
	t.SetCell(0, 1, headerCell("Path").SetExpansion(1))
	selectedRow := 0
	revealed := ""
	if i.preview != nil {
		revealed = i.preview.Revealed()
	}
	for n, e := range entries {
		row := n + 1
		t.SetCell(row, 0, getSizeCell(e.Size, e.SizeText, Style.CellTextColor))
		t.SetCell(row, 1, tview.NewTableCell(tview.Escape(e.Path)).
			SetTextColor(Style.CellTextColor).
			SetReference(e.Path).
			SetExpansion(1))
		if e.Path == revealed {
			selectedRow = row
		}
	}
	if selectedRow == 0 && i.preview != nil {
		i.preview.Reset()
	}
	setSelection(t, selectedRow)
	t.SetOffset(offset, 0)
}

func (i *Inspector) ShowEmptyFiles(prompt string) {
	i.updating = true
	defer func() {
		i.updating = false
	}()
	i.files.SetTitle("Assets")
	i.files.Clear()
	i.files.SetSelectable(false, false)
	i.files.SetCell(0, 0, tview.NewTableCell(prompt).
		SetTextColor(tcell.ColorGray).
		SetSelectable(false))
	if i.preview != nil {
		i.preview.Reset()
	}
}

func (i *Inspector) ShowStatus(text string, isError bool) {
	color := Style.StatusColor
	if isError {
		color = Style.StatusErrorColor
	}
	i.status.SetTextColor(color)
	i.status.SetText(text)
}

func (i *Inspector) ScrollOffsets() (types, files int) {
	types, _ = i.types.GetOffset()
	files, _ = i.files.GetOffset()
	return types, files
}
