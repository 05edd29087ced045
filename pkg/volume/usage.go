// Package volume reports usage of the disk volume holding a directory.
package volume

import (
	"fmt"

	"github.com/datatug/assetdirstat/pkg/fsutils"
	"github.com/shirou/gopsutil/v4/disk"
)

type Usage struct {
	Path        string
	Total       uint64
	Used        uint64
	Free        uint64
	UsedPercent float64
}

var diskUsage = disk.Usage

// GetUsage returns usage of the volume that contains path.
func GetUsage(path string) (*Usage, error) {
	stat, err := diskUsage(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get volume usage for %s: %w", path, err)
	}
	return &Usage{
		Path:        stat.Path,
		Total:       stat.Total,
		Used:        stat.Used,
		Free:        stat.Free,
		UsedPercent: stat.UsedPercent,
	}, nil
}

// Share returns which part of the volume size bytes take, in percent.
func (u *Usage) Share(size int64) float64 {
	if u == nil || u.Total == 0 || size <= 0 {
		return 0
	}
	return float64(size) * 100 / float64(u.Total)
}

func (u *Usage) String() string {
	if u == nil {
		return ""
	}
	return fmt.Sprintf("%s free of %s (%.0f%% used)",
		fsutils.GetSizeShortText(int64(u.Free)),
		fsutils.GetSizeShortText(int64(u.Total)),
		u.UsedPercent,
	)
}
