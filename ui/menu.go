package ui

// ToggleMenu opens or closes the mobile navigation.
func (s State) ToggleMenu() Update {
	s.MenuOpen = !s.MenuOpen
	return s.unchanged()
}

// CloseMenu closes the mobile navigation after a link click.
func (s State) CloseMenu() Update {
	s.MenuOpen = false
	return s.unchanged()
}

// ClickOutside closes the menu unless the click landed on the toggle or inside the menu.
func (s State) ClickOutside(onToggle, inMenu bool) Update {
	if onToggle || inMenu {
		return s.unchanged()
	}
	return s.CloseMenu()
}

// KeyDown handles global keys; Escape closes an open menu.
func (s State) KeyDown(key string) Update {
	if key == "Escape" && s.MenuOpen {
		return s.CloseMenu()
	}
	return s.unchanged()
}

// FocusTrap keeps Tab navigation inside the open menu. Given the number of
// focusable links and the index of the focused one (-1 if outside), it
// returns the index to focus instead, or -1 to let the browser proceed.
func FocusTrap(menuOpen bool, count, current int, shift bool) int {
	if !menuOpen || count == 0 {
		return -1
	}
	last := count - 1
	if shift && current == 0 {
		return last
	}
	if !shift && current == last {
		return 0
	}
	return -1
}

// AnchorScrollTop is the scroll position that puts a section just below the fixed header.
func AnchorScrollTop(targetOffsetTop, headerHeight int) int {
	top := targetOffsetTop - headerHeight
	if top < 0 {
		return 0
	}
	return top
}
