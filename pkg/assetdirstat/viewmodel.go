package assetdirstat

import (
	"math"

	"github.com/datatug/assetdirstat/pkg/assetstat"
	"github.com/datatug/assetdirstat/pkg/fsutils"
	"github.com/datatug/assetdirstat/pkg/volume"
	"github.com/gdamore/tcell/v2"
)

// Bar widths of a type block, in cells.
const (
	MinBlockWeight = 2
	MaxBlockWeight = 20
)

const NoExtensionLabel = "<no extension>"

type TypeEntry struct {
	Extension string
	Label     string
	Count     int
	Size      int64
	SizeText  string
	Ratio     float64
	Weight    int
	Color     tcell.Color
}

type FileEntry struct {
	Path     string
	Size     int64
	SizeText string
}

type TotalsEntry struct {
	Types    int
	Files    int
	Size     int64
	SizeText string
	Skipped  int
	Volume   string
}

// ExtLabel is how an extension is titled in lists.
func ExtLabel(ext string) string {
	if ext == "" {
		return NoExtensionLabel
	}
	return ext
}

// BlockWeight maps a share of files to a bar width clamped into
// [MinBlockWeight, MaxBlockWeight].
func BlockWeight(ratio float64) int {
	w := MinBlockWeight + int(math.Round(float64(MaxBlockWeight-MinBlockWeight)*ratio))
	return max(MinBlockWeight, min(MaxBlockWeight, w))
}

// TypeEntries lists buckets by descending file count.
func TypeEntries(result *assetstat.ScanResult) []TypeEntry {
	buckets := result.SortedBuckets()
	totalCount := float64(max(result.TotalCount(), 1))
	entries := make([]TypeEntry, 0, len(buckets))
	for _, b := range buckets {
		ratio := float64(b.Count()) / totalCount
		entries = append(entries, TypeEntry{
			Extension: b.Extension,
			Label:     ExtLabel(b.Extension),
			Count:     b.Count(),
			Size:      b.TotalSize,
			SizeText:  fsutils.GetSizeShortText(b.TotalSize),
			Ratio:     ratio,
			Weight:    BlockWeight(ratio),
			Color:     ExtColor(b.Extension),
		})
	}
	return entries
}

// FileEntries lists files of the ext bucket, biggest first.
// It returns nil when there is no such bucket.
func FileEntries(result *assetstat.ScanResult, ext string) []FileEntry {
	bucket := result.Bucket(ext)
	if bucket == nil {
		return nil
	}
	files := bucket.FilesBySize()
	entries := make([]FileEntry, len(files))
	for i, f := range files {
		entries[i] = FileEntry{
			Path:     f.Path,
			Size:     f.Size,
			SizeText: fsutils.GetSizeShortText(f.Size),
		}
	}
	return entries
}

func Totals(result *assetstat.ScanResult, usage *volume.Usage) TotalsEntry {
	totals := TotalsEntry{
		Volume: usage.String(),
	}
	if result != nil {
		totals.Types = len(result.Buckets)
		totals.Files = result.TotalCount()
		totals.Size = result.TotalSize
		totals.Skipped = len(result.Skipped)
	}
	totals.SizeText = fsutils.GetSizeShortText(totals.Size)
	return totals
}
