package assetstat

import "fmt"

// InvalidRootError is returned when the scan root is missing or is not a directory.
type InvalidRootError struct {
	Root string
	Err  error
}

func (e *InvalidRootError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid scan root %q: %v", e.Root, e.Err)
	}
	return fmt.Sprintf("invalid scan root %q: not a directory", e.Root)
}

func (e *InvalidRootError) Unwrap() error {
	return e.Err
}

// FileAccessError describes an entry that could not be read during a scan.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("failed to access %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}
