package profiling

import (
	"io"
	"runtime"
	"runtime/pprof"
	"time"
)

var memProfilingInterval = 10 * time.Second

var pprofWriteHeapProfile = func(w io.Writer) error {
	return pprof.WriteHeapProfile(w)
}

// DoMemProfiling periodically overwrites filePath with a heap profile.
// The returned function writes one more snapshot on demand.
func DoMemProfiling(filePath string) (write func()) {
	create := osCreate
	writeHeap := pprofWriteHeapProfile
	interval := memProfilingInterval
	warnf := logf

	write = func() {
		f, err := create(filePath)
		if err != nil {
			warnf("could not create memory profile %s: %v", filePath, err)
			return
		}
		defer func() {
			_ = f.Close()
		}()
		runtime.GC()
		if err = writeHeap(f); err != nil {
			warnf("could not write memory profile: %v", err)
		}
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			write()
		}
	}()
	return write
}
