package assetdirstat

import (
	"errors"
	"fmt"

	"github.com/datatug/assetdirstat/pkg/assetstat"
	"github.com/datatug/assetdirstat/pkg/volume"
	"go.uber.org/zap"
)

const (
	EmptyFilesPrompt = "Select a type to see assets."
	disabledFormat   = "AssetDirStat is disabled while %s."
)

const HelpText = `AssetDirStat scans the whole asset folder, groups files by type (e.g. .png, .mat) and shows a visual breakdown.

Select a coloured block to list the matching assets.
Select an asset to reveal it.
Use Scan to refresh the analysis, Clear to reset it.`

// ScanFunc produces a fresh result for root.
type ScanFunc func(root string) (*assetstat.ScanResult, error)

// BusyFunc reports whether the inspector must stay disabled and why.
type BusyFunc func() (reason string, busy bool)

var ErrNoSuchFile = errors.New("file is not in the selected type")

type Presenter struct {
	root  string
	state *State
	scan  ScanFunc
	view  View

	revealer     Revealer
	busy         BusyFunc
	wasBusy      bool
	volumeUsage  func(path string) (*volume.Usage, error)
	saveSelected func(ext *string)
	logger       *zap.Logger
}

type PresenterOption func(p *Presenter)

func WithRevealer(r Revealer) PresenterOption {
	return func(p *Presenter) {
		p.revealer = r
	}
}

func WithBusyFunc(f BusyFunc) PresenterOption {
	return func(p *Presenter) {
		p.busy = f
	}
}

func WithVolumeUsage(f func(path string) (*volume.Usage, error)) PresenterOption {
	return func(p *Presenter) {
		p.volumeUsage = f
	}
}

// WithSelectionSaver is called with the new selection, nil when unselected.
func WithSelectionSaver(f func(ext *string)) PresenterOption {
	return func(p *Presenter) {
		p.saveSelected = f
	}
}

func WithPresenterLogger(logger *zap.Logger) PresenterOption {
	return func(p *Presenter) {
		p.logger = logger
	}
}

func NewPresenter(root string, scan ScanFunc, view View, options ...PresenterOption) *Presenter {
	p := &Presenter{
		root:   root,
		state:  NewState(),
		scan:   scan,
		view:   view,
		logger: zap.NewNop(),
	}
	p.state.Result.Root = root
	for _, option := range options {
		option(p)
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	return p
}

func (p *Presenter) Root() string {
	return p.root
}

func (p *Presenter) State() *State {
	return p.state
}

// IsBusy asks the host whether the inspector is disabled.
func (p *Presenter) IsBusy() (reason string, busy bool) {
	if p.busy == nil {
		return "", false
	}
	return p.busy()
}

// Scan runs a full scan and replaces the current result.
// On failure the previous result stays in place.
func (p *Presenter) Scan() error {
	if _, busy := p.IsBusy(); busy {
		return nil
	}
	p.captureOffsets()
	result, err := p.scan(p.root)
	if err != nil {
		p.logger.Error("scan failed", zap.String("root", p.root), zap.Error(err))
		p.state.LastErr = err
		p.Render()
		return err
	}
	p.state.SetResult(result)
	p.state.Volume = nil
	if p.volumeUsage != nil {
		if usage, err := p.volumeUsage(p.root); err != nil {
			p.logger.Warn("volume usage unavailable", zap.String("root", p.root), zap.Error(err))
		} else {
			p.state.Volume = usage
		}
	}
	p.notifySelection()
	p.Render()
	return nil
}

func (p *Presenter) Clear() {
	if _, busy := p.IsBusy(); busy {
		return
	}
	p.state.Clear()
	p.notifySelection()
	p.Render()
}

// SelectType sets ext as the active filter. Unknown types are ignored.
func (p *Presenter) SelectType(ext string) bool {
	if _, busy := p.IsBusy(); busy {
		return false
	}
	if p.state.HasSelection && p.state.Selected == ext {
		return true
	}
	p.captureOffsets()
	if !p.state.Select(ext) {
		return false
	}
	p.notifySelection()
	p.Render()
	return true
}

// RevealFile hands a file of the selected type to the revealer.
func (p *Presenter) RevealFile(path string) error {
	if _, busy := p.IsBusy(); busy {
		return nil
	}
	bucket := p.state.SelectedBucket()
	if bucket == nil {
		return ErrNoSuchFile
	}
	for _, record := range bucket.Files {
		if record.Path != path {
			continue
		}
		if p.revealer == nil {
			return nil
		}
		if err := p.revealer.Reveal(record); err != nil {
			p.logger.Warn("reveal failed", zap.String("path", path), zap.Error(err))
			p.view.ShowStatus(err.Error(), true)
			return err
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrNoSuchFile, path)
}

func (p *Presenter) ToggleHelp() {
	if _, busy := p.IsBusy(); busy {
		return
	}
	p.captureOffsets()
	p.state.ToggleHelp()
	p.Render()
}

// CheckBusy re-renders when the busy state changed since the last render
// and reports whether it did.
func (p *Presenter) CheckBusy() bool {
	_, busy := p.IsBusy()
	if busy == p.wasBusy {
		return false
	}
	if !busy {
		p.captureOffsets()
	}
	p.Render()
	return true
}

// Render pushes the whole state to the view.
func (p *Presenter) Render() {
	reason, busy := p.IsBusy()
	p.wasBusy = busy
	if busy {
		p.view.SetDisabled(true, fmt.Sprintf(disabledFormat, reason))
		return
	}
	p.view.SetDisabled(false, "")

	s := p.state
	p.view.ShowHelp(s.ShowHelp, HelpText)
	p.view.ShowTypes(TypeEntries(s.Result), s.Selected, s.HasSelection, s.TypesOffset)
	p.view.ShowTotals(Totals(s.Result, s.Volume))

	if s.SelectedBucket() != nil {
		p.view.ShowFiles(s.Selected, FileEntries(s.Result, s.Selected), s.FilesOffset)
	} else {
		p.view.ShowEmptyFiles(EmptyFilesPrompt)
	}

	p.view.ShowStatus(p.statusText())
}

func (p *Presenter) statusText() (string, bool) {
	s := p.state
	if s.LastErr != nil {
		return s.LastErr.Error(), true
	}
	if s.Result.IsEmpty() {
		if len(s.Result.Skipped) > 0 {
			return fmt.Sprintf("No assets found in %s, %d entries skipped", p.root, len(s.Result.Skipped)), true
		}
		return fmt.Sprintf("No assets found in %s", p.root), false
	}
	text := fmt.Sprintf("%d files of %d types in %s", s.Result.TotalCount(), len(s.Result.Buckets), p.root)
	if skipped := len(s.Result.Skipped); skipped > 0 {
		return fmt.Sprintf("%s, %d entries skipped", text, skipped), true
	}
	return text, false
}

func (p *Presenter) captureOffsets() {
	p.state.TypesOffset, p.state.FilesOffset = p.view.ScrollOffsets()
}

func (p *Presenter) notifySelection() {
	if p.saveSelected == nil {
		return
	}
	if !p.state.HasSelection {
		p.saveSelected(nil)
		return
	}
	ext := p.state.Selected
	p.saveSelected(&ext)
}
