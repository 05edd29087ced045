package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	"github.com/datatug/assetdirstat/pkg/assetdirstat"
	"github.com/datatug/assetdirstat/pkg/assetdirstat/adsconfig"
	"github.com/datatug/assetdirstat/pkg/assetdirstat/adslog"
	"github.com/datatug/assetdirstat/pkg/assetdirstat/adsstate"
	"github.com/datatug/assetdirstat/pkg/profiling"
	"github.com/datatug/assetdirstat/pkg/reportapi"
	"github.com/datatug/assetdirstat/pkg/volume"
	"github.com/rivo/tview"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var httpListenAndServe = http.ListenAndServe
var osExit = os.Exit
var pprofStopCPUProfile = pprof.StopCPUProfile
var loadConfig = adsconfig.Load
var newLogger = adslog.New

func main() {
	cfg, err := loadConfig(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			osExit(0)
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		osExit(2)
		return
	}
	app, cleanup := newAssetDirStatApp(cfg)
	defer cleanup()
	run(app)
}

// newAssetDirStatApp starts profiling as configured and builds either the
// terminal UI or the report server. cleanup stops the profiling.
func newAssetDirStatApp(cfg *adsconfig.Config) (app application, cleanup func()) {
	var stops []func()
	cleanup = func() {
		for i := len(stops) - 1; i >= 0; i-- {
			stops[i]()
		}
	}

	if cfg.PprofAddr != "" {
		go func() {
			err := httpListenAndServe(cfg.PprofAddr, nil)
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "pprof server error: %v\n", err)
			}
		}()
	}

	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n", r)
			pprofStopCPUProfile()
			osExit(1)
		}
	}()

	logger, err := newLogger(adslog.Options{
		File:     cfg.LogFile,
		Level:    cfg.LogLevel,
		ToStderr: cfg.ServeAddr != "",
	})
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		logger = zap.NewNop()
	}
	stops = append(stops, func() {
		_ = logger.Sync()
	})
	adsstate.SetLogErr(func(v ...any) {
		logger.Sugar().Warn(v...)
	})
	profiling.SetLogf(logger.Sugar().Warnf)

	if cfg.CPUProfile != "" {
		stops = append(stops, profiling.DoCPUProfiling(cfg.CPUProfile))
	}

	if cfg.MemProfile != "" {
		stops = append(stops, profiling.DoMemProfiling(cfg.MemProfile))
	}

	if cfg.ServeAddr != "" {
		app = newServeApp(cfg, logger)
	} else {
		app = newApp(cfg, logger)
	}
	return app, cleanup
}

var setupApp = assetdirstat.SetupApp

var newApp = func(cfg *adsconfig.Config, logger *zap.Logger) application {
	app := assetdirstat.NewApp(tview.NewApplication())
	setupApp(app, cfg, logger)
	return app
}

var newServeApp = func(cfg *adsconfig.Config, logger *zap.Logger) application {
	fs := afero.NewOsFs()
	server := reportapi.New(cfg.ServeAddr, cfg.Root,
		assetdirstat.NewScanFunc(fs, logger, cfg.ScanOptions()...),
		[]reportapi.Option{
			reportapi.WithLogger(logger),
			reportapi.WithDebug(cfg.LogLevel == "debug"),
		},
		assetdirstat.WithBusyFunc(assetdirstat.BusyFileFunc(fs, cfg.BusyFile)),
		assetdirstat.WithVolumeUsage(volume.GetUsage),
	)
	if err := server.Scan(); err != nil {
		logger.Warn("initial scan failed", zap.Error(err))
	}
	return serveApp{server: server}
}

type serveApp struct {
	server *reportapi.Server
}

func (a serveApp) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.server.Run(ctx)
}

type application interface{ Run() error }

var run = func(app application) {
	if err := app.Run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
	}
}
