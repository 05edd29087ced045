package assetdirstat

import (
	"time"

	"github.com/datatug/assetdirstat/pkg/assetdirstat/adsconfig"
	"github.com/datatug/assetdirstat/pkg/assetdirstat/adsstate"
	"github.com/datatug/assetdirstat/pkg/assetstat"
	"github.com/datatug/assetdirstat/pkg/volume"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var (
	osFs            = afero.NewOsFs()
	getVolumeUsage  = volume.GetUsage
	getSelectedExt  = adsstate.GetSelectedExt
	saveRoot        = adsstate.SaveRoot
	saveSelectedExt = adsstate.SaveSelectedExt
)

var busyPollInterval = 500 * time.Millisecond

// NewScanFunc scans roots on fs, logging skipped entries to logger.
func NewScanFunc(fs afero.Fs, logger *zap.Logger, options ...assetstat.ScanOption) ScanFunc {
	options = append(options[:len(options):len(options)], assetstat.WithLogger(logger))
	return func(root string) (*assetstat.ScanResult, error) {
		return assetstat.Scan(fs, root, options...)
	}
}

// BusyFileFunc reports busy while the file at path exists.
// An empty path is never busy.
func BusyFileFunc(fs afero.Fs, path string) BusyFunc {
	return func() (string, bool) {
		if path == "" {
			return "", false
		}
		exists, err := afero.Exists(fs, path)
		if err != nil || !exists {
			return "", false
		}
		return path + " exists", true
	}
}

// SetupApp builds the inspector, puts it on the app and runs the first scan.
func SetupApp(app App, cfg *adsconfig.Config, logger *zap.Logger) *Presenter {
	if logger == nil {
		logger = zap.NewNop()
	}
	preview := NewPreview(osFs)
	inspector := NewInspector(preview,
		WithFocusFunc(app.SetFocus),
		WithExitFunc(app.Stop),
	)

	remembered, hasRemembered := getSelectedExt(cfg.Root)
	saveRoot(cfg.Root)

	busy := BusyFileFunc(osFs, cfg.BusyFile)
	p := NewPresenter(cfg.Root,
		NewScanFunc(osFs, logger, cfg.ScanOptions()...),
		inspector,
		WithRevealer(preview),
		WithBusyFunc(busy),
		WithVolumeUsage(getVolumeUsage),
		WithSelectionSaver(saveSelectedExt),
		WithPresenterLogger(logger),
	)
	inspector.Bind(p)

	app.EnableMouse(true)
	app.SetRoot(inspector, true)

	if _, isBusy := p.IsBusy(); isBusy {
		p.Render()
	} else if err := p.Scan(); err == nil && hasRemembered {
		p.SelectType(remembered)
	}

	if cfg.BusyFile != "" {
		go watchBusy(app, p, busyPollInterval, app.Done())
	}
	return p
}

// watchBusy re-renders p whenever its busy state flips, until done is closed.
func watchBusy(app App, p *Presenter, interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			app.QueueUpdateDraw(func() {
				p.CheckBusy()
			})
		}
	}
}
