package adsui

// MenuItem is an entry of the bottom menu bar.
// The first hot key is also the region ID of the item.
type MenuItem struct {
	Title   string
	HotKeys []string
	Action  func()
}
