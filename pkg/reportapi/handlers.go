package reportapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/datatug/assetdirstat/pkg/assetdirstat"
	"github.com/datatug/assetdirstat/pkg/assetstat"
	"github.com/gin-gonic/gin"
)

// NoExtensionParam addresses the bucket of files without extension.
const NoExtensionParam = "_none"

type Handlers struct {
	server *Server
}

type TypeSummary struct {
	Extension string  `json:"extension"`
	Count     int     `json:"count"`
	Size      int64   `json:"size"`
	SizeText  string  `json:"size_text"`
	Ratio     float64 `json:"ratio"`
}

type ScanSummary struct {
	Root          string        `json:"root"`
	TotalSize     int64         `json:"total_size"`
	TotalSizeText string        `json:"total_size_text"`
	TotalCount    int           `json:"total_count"`
	Types         []TypeSummary `json:"types"`
	Skipped       []string      `json:"skipped"`
	Volume        string        `json:"volume,omitempty"`
	Error         string        `json:"error,omitempty"`
}

type FileSummary struct {
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	SizeText string `json:"size_text"`
}

type TypeFiles struct {
	Extension string        `json:"extension"`
	Files     []FileSummary `json:"files"`
}

func summarize(p *assetdirstat.Presenter) ScanSummary {
	s := p.State()
	totals := assetdirstat.Totals(s.Result, s.Volume)
	summary := ScanSummary{
		Root:          p.Root(),
		TotalSize:     totals.Size,
		TotalSizeText: totals.SizeText,
		TotalCount:    totals.Files,
		Types:         []TypeSummary{},
		Skipped:       []string{},
		Volume:        totals.Volume,
	}
	for _, e := range assetdirstat.TypeEntries(s.Result) {
		summary.Types = append(summary.Types, TypeSummary{
			Extension: e.Extension,
			Count:     e.Count,
			Size:      e.Size,
			SizeText:  e.SizeText,
			Ratio:     e.Ratio,
		})
	}
	for _, skipped := range s.Result.Skipped {
		summary.Skipped = append(summary.Skipped, skipped.Path)
	}
	if s.LastErr != nil {
		summary.Error = s.LastErr.Error()
	}
	return summary
}

// ParseExtParam accepts "png", ".png" and NoExtensionParam.
func ParseExtParam(param string) string {
	if param == NoExtensionParam || param == "" {
		return ""
	}
	if !strings.HasPrefix(param, ".") {
		param = "." + param
	}
	return assetstat.NormalizeExt(param)
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// GetScan handles GET /api/scan
func (h *Handlers) GetScan(c *gin.Context) {
	var summary ScanSummary
	h.server.withPresenter(func(p *assetdirstat.Presenter) {
		summary = summarize(p)
	})
	c.JSON(http.StatusOK, summary)
}

// Rescan handles POST /api/scan
func (h *Handlers) Rescan(c *gin.Context) {
	var (
		summary ScanSummary
		err     error
		reason  string
		busy    bool
	)
	h.server.withPresenter(func(p *assetdirstat.Presenter) {
		if reason, busy = p.IsBusy(); busy {
			return
		}
		err = p.Scan()
		summary = summarize(p)
	})
	if busy {
		c.JSON(http.StatusConflict, gin.H{"error": "scan is disabled while " + reason})
		return
	}
	if err != nil {
		status := http.StatusInternalServerError
		var rootErr *assetstat.InvalidRootError
		var accessErr *assetstat.FileAccessError
		if errors.As(err, &rootErr) || errors.As(err, &accessErr) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, summary)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Clear handles DELETE /api/scan
func (h *Handlers) Clear(c *gin.Context) {
	var summary ScanSummary
	h.server.withPresenter(func(p *assetdirstat.Presenter) {
		p.Clear()
		summary = summarize(p)
	})
	c.JSON(http.StatusOK, summary)
}

// GetTypeFiles handles GET /api/types/:ext/files
func (h *Handlers) GetTypeFiles(c *gin.Context) {
	ext := ParseExtParam(c.Param("ext"))
	var entries []assetdirstat.FileEntry
	h.server.withPresenter(func(p *assetdirstat.Presenter) {
		entries = assetdirstat.FileEntries(p.State().Result, ext)
	})
	if entries == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no files of type " + assetdirstat.ExtLabel(ext)})
		return
	}
	files := make([]FileSummary, len(entries))
	for i, e := range entries {
		files[i] = FileSummary(e)
	}
	c.JSON(http.StatusOK, TypeFiles{Extension: ext, Files: files})
}
