package adsui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const menuSeparator = "┊"

var HotkeyColor = "yellow"

// MenuBar is a one line menu. Clicking an item runs its action.
type MenuBar struct {
	*tview.TextView
	items []MenuItem
}

func NewMenuBar(items ...MenuItem) *MenuBar {
	b := &MenuBar{
		items: items,
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetRegions(true).
			SetTextColor(tcell.ColorSlateGray),
	}
	b.SetHighlightedFunc(b.highlighted)
	b.render()
	return b
}

func (b *MenuBar) Items() []MenuItem {
	return b.items
}

func (b *MenuBar) SetItems(items ...MenuItem) {
	b.items = items
	b.render()
}

func (b *MenuBar) render() {
	b.SetText(RenderMenuItems(b.items))
}

// RenderMenuItems returns items as tview regions with hot keys coloured.
func RenderMenuItems(items []MenuItem) string {
	if len(items) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, mi := range items {
		title := tview.Escape(mi.Title)
		for _, key := range mi.HotKeys {
			hotkeyText := fmt.Sprintf("[%s]%s[-]", HotkeyColor, key)
			title = strings.Replace(title, key, hotkeyText, 1)
		}
		area := regionID(mi)
		sb.WriteString(fmt.Sprintf(`["%s"]%s[""]`, area, title))
		sb.WriteString(menuSeparator)
	}
	fullText := sb.String()
	return fullText[:sb.Len()-len(menuSeparator)]
}

func regionID(mi MenuItem) string {
	if len(mi.HotKeys) == 0 {
		return mi.Title
	}
	switch area := mi.HotKeys[0]; area {
	case "?":
		return "help"
	default:
		return area
	}
}

func (b *MenuBar) highlighted(added, _, _ []string) {
	if len(added) == 0 {
		return
	}
	region := added[0]
	for _, mi := range b.items {
		if regionID(mi) == region && mi.Action != nil {
			b.Highlight()
			mi.Action()
			return
		}
	}
}
