package assetdirstat

import (
	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	TableHeaderColor tcell.Color
	CellTextColor    tcell.Color
	SelectedStyle    tcell.Style

	StatusColor      tcell.Color
	StatusErrorColor tcell.Color
	DisabledColor    tcell.Color

	HelpButtonColor  tcell.Color
	ScanButtonColor  tcell.Color
	ClearButtonColor tcell.Color
}

var Style = Styles{
	TableHeaderColor: tcell.ColorWhiteSmoke,
	CellTextColor:    tcell.ColorLightGray,
	SelectedStyle:    tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhiteSmoke),

	StatusColor:      tcell.ColorSlateGray,
	StatusErrorColor: tcell.ColorRed,
	DisabledColor:    tcell.ColorOrange,

	HelpButtonColor:  tcell.ColorDarkCyan,
	ScanButtonColor:  tcell.ColorGreen,
	ClearButtonColor: tcell.ColorDarkOrange,
}
