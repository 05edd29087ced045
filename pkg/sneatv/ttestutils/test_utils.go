package ttestutils

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// NewSimulationScreen is replaced in tests to simulate init failures
var NewSimulationScreen = tcell.NewSimulationScreen

// TestingT is the subset of testing.TB used by NewSimScreen
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
}

// ReadLine reads a full line from the screen
func ReadLine(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		str, _, _ := screen.Get(x, y)
		if str == "" || str == "\x00" {
			// nothing drawn at this cell
			b.WriteRune(' ')
			continue
		}
		b.WriteString(str)
	}
	return b.String()
}

// ReadScreen returns all lines of the screen joined with newlines
func ReadScreen(screen tcell.Screen) string {
	width, height := screen.Size()
	lines := make([]string, 0, height)
	for y := 0; y < height; y++ {
		lines = append(lines, ReadLine(screen, y, width))
	}
	return strings.Join(lines, "\n")
}

// NewSimScreen creates a new simulation screen for testing
func NewSimScreen(t TestingT, charset string, width, height int) tcell.Screen {
	t.Helper()
	s := NewSimulationScreen(charset)
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	s.SetSize(width, height)
	return s
}
