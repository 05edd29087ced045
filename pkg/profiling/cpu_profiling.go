package profiling

import (
	"os"
	"runtime/pprof"
)

var osCreate = os.Create
var pprofStartCPUProfile = pprof.StartCPUProfile
var pprofStopCPUProfile = pprof.StopCPUProfile

// DoCPUProfiling starts CPU profiling into filePath and returns the stop function.
func DoCPUProfiling(filePath string) (stop func()) {
	warnf := logf
	f, err := osCreate(filePath)
	if err != nil {
		warnf("could not create CPU profile %s: %v", filePath, err)
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		warnf("could not start CPU profile: %v", err)
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		if err := f.Close(); err != nil {
			warnf("failed to close CPU profile %s: %v", filePath, err)
		}
	}
}
