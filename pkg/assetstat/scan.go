package assetstat

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Scan walks root recursively and buckets every regular file by extension.
// It always builds a fresh result and never writes to fs.
func Scan(fs afero.Fs, root string, options ...ScanOption) (*ScanResult, error) {
	o := newScanOptions(options)

	rootInfo, err := fs.Stat(root)
	if err != nil {
		return nil, &InvalidRootError{Root: root, Err: err}
	}
	if !rootInfo.IsDir() {
		return nil, &InvalidRootError{Root: root}
	}

	result := NewScanResult(filepath.ToSlash(root))

	walkErr := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if ctxErr := o.ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			accessErr := &FileAccessError{Path: filepath.ToSlash(path), Err: err}
			if o.strict {
				return accessErr
			}
			o.logger.Warn("skipping unreadable entry",
				zap.String("path", accessErr.Path),
				zap.Error(err),
			)
			result.Skipped = append(result.Skipped, accessErr)
			return nil
		}
		if info == nil || !info.Mode().IsRegular() {
			return nil
		}
		if o.exclude != nil && o.exclude(path, info) {
			return nil
		}
		result.add(FileRecord{
			Path:      filepath.ToSlash(path),
			Extension: NormalizeExt(info.Name()),
			Size:      info.Size(),
		})
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	o.logger.Debug("scan completed",
		zap.String("root", result.Root),
		zap.Int("types", len(result.Buckets)),
		zap.Int("files", result.TotalCount()),
		zap.Int64("size", result.TotalSize),
		zap.Int("skipped", len(result.Skipped)),
	)
	return result, nil
}
