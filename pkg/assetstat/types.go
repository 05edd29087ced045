package assetstat

import (
	"fmt"
	"slices"
	"strings"
)

// FileRecord is a single regular file found during a scan.
type FileRecord struct {
	Path      string `json:"path"`
	Extension string `json:"extension"`
	Size      int64  `json:"size"`
}

// TypeBucket holds all files sharing a normalized extension.
type TypeBucket struct {
	Extension string
	Files     []FileRecord
	TotalSize int64
}

func (b *TypeBucket) Count() int {
	return len(b.Files)
}

func (b *TypeBucket) add(record FileRecord) {
	b.Files = append(b.Files, record)
	b.TotalSize += record.Size
}

// FilesBySize returns a copy of the bucket files, biggest first.
// Files of equal size are ordered by path.
func (b *TypeBucket) FilesBySize() []FileRecord {
	files := slices.Clone(b.Files)
	slices.SortFunc(files, func(x, y FileRecord) int {
		if x.Size != y.Size {
			if x.Size > y.Size {
				return -1
			}
			return 1
		}
		return strings.Compare(x.Path, y.Path)
	})
	return files
}

// ScanResult is the outcome of one full scan of an asset root.
// A zero value is a valid empty result.
type ScanResult struct {
	Root      string
	Buckets   map[string]*TypeBucket
	TotalSize int64
	Skipped   []*FileAccessError
}

// NewScanResult returns an empty result for root.
func NewScanResult(root string) *ScanResult {
	return &ScanResult{
		Root:    root,
		Buckets: make(map[string]*TypeBucket),
	}
}

func (r *ScanResult) add(record FileRecord) {
	if r.Buckets == nil {
		r.Buckets = make(map[string]*TypeBucket)
	}
	bucket, ok := r.Buckets[record.Extension]
	if !ok {
		bucket = &TypeBucket{Extension: record.Extension}
		r.Buckets[record.Extension] = bucket
	}
	bucket.add(record)
	r.TotalSize += record.Size
}

// IsEmpty reports whether the result holds no files.
func (r *ScanResult) IsEmpty() bool {
	return r == nil || len(r.Buckets) == 0
}

// Bucket returns the bucket for ext or nil.
func (r *ScanResult) Bucket(ext string) *TypeBucket {
	if r == nil {
		return nil
	}
	return r.Buckets[ext]
}

// TotalCount returns the number of files over all buckets.
func (r *ScanResult) TotalCount() (count int) {
	if r == nil {
		return 0
	}
	for _, b := range r.Buckets {
		count += b.Count()
	}
	return count
}

// SortedBuckets returns buckets by descending file count.
// Buckets with the same count are ordered by extension.
func (r *ScanResult) SortedBuckets() []*TypeBucket {
	if r == nil {
		return nil
	}
	buckets := make([]*TypeBucket, 0, len(r.Buckets))
	for _, b := range r.Buckets {
		buckets = append(buckets, b)
	}
	slices.SortFunc(buckets, func(a, b *TypeBucket) int {
		if a.Count() != b.Count() {
			return b.Count() - a.Count()
		}
		return strings.Compare(a.Extension, b.Extension)
	})
	return buckets
}

// Verify checks the size and key invariants of the result.
func (r *ScanResult) Verify() error {
	if r == nil {
		return nil
	}
	var grandTotal int64
	for key, b := range r.Buckets {
		if key != b.Extension {
			return fmt.Errorf("bucket key %q holds extension %q", key, b.Extension)
		}
		if normalized := NormalizeExt(key); normalized != key {
			return fmt.Errorf("bucket key %q is not normalized (%q)", key, normalized)
		}
		var total int64
		for _, f := range b.Files {
			if f.Extension != key {
				return fmt.Errorf("file %s with extension %q is in bucket %q", f.Path, f.Extension, key)
			}
			total += f.Size
		}
		if total != b.TotalSize {
			return fmt.Errorf("bucket %q total is %d, files sum to %d", key, b.TotalSize, total)
		}
		grandTotal += b.TotalSize
	}
	if grandTotal != r.TotalSize {
		return fmt.Errorf("total size is %d, buckets sum to %d", r.TotalSize, grandTotal)
	}
	return nil
}
