package assetdirstat

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/datatug/assetdirstat/pkg/assetstat"
	"github.com/datatug/assetdirstat/pkg/chroma2tcell"
	"github.com/datatug/assetdirstat/pkg/fsutils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/afero"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/riff"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

// PreviewLimit is how many leading bytes of a text file are shown.
const PreviewLimit = 10 * 1024

const previewTimeLayout = "2006-01-02 15:04:05"

var _ Revealer = (*Preview)(nil)

// Preview is the reveal panel. It shows details of the last revealed file.
type Preview struct {
	*tview.TextView
	fs       afero.Fs
	revealed string
}

func NewPreview(fs afero.Fs) *Preview {
	p := &Preview{
		fs: fs,
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetWrap(false).
			SetScrollable(true),
	}
	p.SetTitle("Preview")
	p.SetTextColor(Style.CellTextColor)
	return p
}

// Revealed is the path of the file currently shown.
func (p *Preview) Revealed() string {
	return p.revealed
}

func (p *Preview) Reveal(record assetstat.FileRecord) error {
	text, err := p.render(record)
	if err != nil {
		p.revealed = ""
		p.showError(err.Error())
		return err
	}
	p.revealed = record.Path
	p.SetTextColor(Style.CellTextColor)
	p.SetText(text)
	p.ScrollToBeginning()
	return nil
}

func (p *Preview) Reset() {
	p.revealed = ""
	p.SetText("")
}

func (p *Preview) render(record assetstat.FileRecord) (string, error) {
	info, err := p.fs.Stat(record.Path)
	if err != nil {
		return "", fmt.Errorf("failed to reveal %s: %w", record.Path, err)
	}

	var sb strings.Builder
	sb.WriteString("[::b]" + tview.Escape(record.Path) + "[::-]\n")
	fmt.Fprintf(&sb, "Size: %s\n", fsutils.GetSizeLongText(info.Size()))
	fmt.Fprintf(&sb, "Modified: %s\n", info.ModTime().Format(previewTimeLayout))

	if format, width, height, ok := p.imageConfig(record.Path); ok {
		fmt.Fprintf(&sb, "Format: %s\nDimensions: %d×%d\n", strings.ToUpper(format), width, height)
		return sb.String(), nil
	}

	data, err := p.head(record.Path, PreviewLimit)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", record.Path, err)
	}
	if len(data) == 0 {
		return sb.String(), nil
	}
	if isBinary(data) {
		sb.WriteString("Binary file\n")
		return sb.String(), nil
	}
	text, _, err := chroma2tcell.ColorizeFile(path.Base(record.Path), string(data), chroma2tcell.MatchLexer)
	if err != nil {
		text = tview.Escape(string(data))
	}
	sb.WriteString("\n")
	sb.WriteString(text)
	return sb.String(), nil
}

func (p *Preview) imageConfig(name string) (format string, width, height int, ok bool) {
	f, err := p.fs.Open(name)
	if err != nil {
		return
	}
	defer func() {
		_ = f.Close()
	}()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return "", 0, 0, false
	}
	return format, cfg.Width, cfg.Height, true
}

func (p *Preview) head(name string, limit int) ([]byte, error) {
	f, err := p.fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	data, err := io.ReadAll(io.LimitReader(f, int64(limit)))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return data, nil
}

func (p *Preview) showError(text string) {
	p.SetText(tview.Escape(text))
	p.SetTextColor(tcell.ColorRed)
}

func isBinary(data []byte) bool {
	if bytes.IndexByte(data, 0) >= 0 {
		return true
	}
	// a multi-byte rune may be cut at the limit
	for i := 0; i < utf8.UTFMax && len(data) > 0; i++ {
		if utf8.Valid(data) {
			return false
		}
		data = data[:len(data)-1]
	}
	return !utf8.Valid(data)
}
