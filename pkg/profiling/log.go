package profiling

var logf = func(format string, args ...any) {
}

// SetLogf routes profiling errors to f.
func SetLogf(f func(format string, args ...any)) {
	if f == nil {
		f = func(format string, args ...any) {}
	}
	logf = f
}
