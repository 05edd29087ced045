package assetstat

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Excluder reports whether a walked file must be left out of the scan.
type Excluder func(path string, info os.FileInfo) bool

// DefaultExcludedSuffixes lists sidecar files that never count as assets.
var DefaultExcludedSuffixes = []string{".meta"}

// SuffixExcluder excludes files whose name ends with any of suffixes, ignoring case.
func SuffixExcluder(suffixes ...string) Excluder {
	lowered := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		if s = strings.TrimSpace(s); s != "" {
			lowered = append(lowered, strings.ToLower(s))
		}
	}
	return func(path string, _ os.FileInfo) bool {
		name := strings.ToLower(path)
		for _, suffix := range lowered {
			if strings.HasSuffix(name, suffix) {
				return true
			}
		}
		return false
	}
}

type scanOptions struct {
	ctx     context.Context
	exclude Excluder
	strict  bool
	logger  *zap.Logger
}

type ScanOption func(o *scanOptions)

func WithExcluder(exclude Excluder) ScanOption {
	return func(o *scanOptions) {
		o.exclude = exclude
	}
}

func WithExcludedSuffixes(suffixes ...string) ScanOption {
	return func(o *scanOptions) {
		o.exclude = SuffixExcluder(suffixes...)
	}
}

// WithStrict makes the first unreadable entry abort the scan.
func WithStrict(strict bool) ScanOption {
	return func(o *scanOptions) {
		o.strict = strict
	}
}

func WithLogger(logger *zap.Logger) ScanOption {
	return func(o *scanOptions) {
		o.logger = logger
	}
}

func WithContext(ctx context.Context) ScanOption {
	return func(o *scanOptions) {
		o.ctx = ctx
	}
}

func newScanOptions(options []ScanOption) scanOptions {
	o := scanOptions{
		ctx:     context.Background(),
		exclude: SuffixExcluder(DefaultExcludedSuffixes...),
		logger:  zap.NewNop(),
	}
	for _, option := range options {
		option(&o)
	}
	if o.ctx == nil {
		o.ctx = context.Background()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}
