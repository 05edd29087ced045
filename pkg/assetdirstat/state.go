package assetdirstat

import (
	"github.com/datatug/assetdirstat/pkg/assetstat"
	"github.com/datatug/assetdirstat/pkg/volume"
)

// State is everything the inspector shows. It is owned by a Presenter.
type State struct {
	Result *assetstat.ScanResult
	Volume *volume.Usage

	Selected     string
	HasSelection bool

	ShowHelp bool

	TypesOffset int
	FilesOffset int

	LastErr error
}

func NewState() *State {
	return &State{
		Result: assetstat.NewScanResult(""),
	}
}

// Clear drops the scan result together with selection and scroll positions.
func (s *State) Clear() {
	root := ""
	if s.Result != nil {
		root = s.Result.Root
	}
	s.Result = assetstat.NewScanResult(root)
	s.Volume = nil
	s.Unselect()
	s.TypesOffset = 0
	s.LastErr = nil
}

// SetResult replaces the scan result. Like Clear it resets the selection.
func (s *State) SetResult(result *assetstat.ScanResult) {
	if result == nil {
		result = assetstat.NewScanResult("")
	}
	s.Result = result
	s.Unselect()
	s.LastErr = nil
}

// Select makes ext the active filter. It fails when there is no such bucket.
func (s *State) Select(ext string) bool {
	if s.Result.Bucket(ext) == nil {
		return false
	}
	if !s.HasSelection || s.Selected != ext {
		s.FilesOffset = 0
	}
	s.Selected = ext
	s.HasSelection = true
	return true
}

func (s *State) Unselect() {
	s.Selected = ""
	s.HasSelection = false
	s.FilesOffset = 0
}

func (s *State) ToggleHelp() bool {
	s.ShowHelp = !s.ShowHelp
	return s.ShowHelp
}

// SelectedBucket returns nil when nothing is selected.
func (s *State) SelectedBucket() *assetstat.TypeBucket {
	if !s.HasSelection {
		return nil
	}
	return s.Result.Bucket(s.Selected)
}
