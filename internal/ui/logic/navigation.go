package logic

// Navigator keeps a cursor and a scroll window over a list of fixed-height
// items, such as the project list in the dialog.
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	count          int
}

// NewNavigator creates a navigator showing height items at a time
func NewNavigator(height int) *Navigator {
	if height < 1 {
		height = 1
	}
	return &Navigator{viewportHeight: height}
}

// Reset sets the item count and moves the cursor to index. The scroll
// offset is kept, clamped so the cursor stays visible.
func (n *Navigator) Reset(count, index int) {
	n.count = count
	n.SetSelectedIndex(index)
}

// SetViewportHeight changes how many items are visible
func (n *Navigator) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	n.viewportHeight = height
	n.ensureSelectedVisible()
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the current viewport offset
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// Window returns the half-open range of visible item indices
func (n *Navigator) Window() (int, int) {
	end := n.viewportOffset + n.viewportHeight
	if end > n.count {
		end = n.count
	}
	return n.viewportOffset, end
}

// SetSelectedIndex sets the selected index and ensures it's visible
func (n *Navigator) SetSelectedIndex(index int) {
	if n.count == 0 {
		n.selectedIndex = 0
		n.viewportOffset = 0
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= n.count {
		index = n.count - 1
	}
	n.selectedIndex = index
	n.ensureSelectedVisible()
}

// MoveUp moves the cursor one item up
func (n *Navigator) MoveUp() {
	n.SetSelectedIndex(n.selectedIndex - 1)
}

// MoveDown moves the cursor one item down
func (n *Navigator) MoveDown() {
	n.SetSelectedIndex(n.selectedIndex + 1)
}

// PageUp moves the cursor one viewport up
func (n *Navigator) PageUp() {
	n.SetSelectedIndex(n.selectedIndex - n.viewportHeight)
}

// PageDown moves the cursor one viewport down
func (n *Navigator) PageDown() {
	n.SetSelectedIndex(n.selectedIndex + n.viewportHeight)
}

// GoToTop moves the cursor to the first item
func (n *Navigator) GoToTop() {
	n.SetSelectedIndex(0)
}

// GoToBottom moves the cursor to the last item
func (n *Navigator) GoToBottom() {
	n.SetSelectedIndex(n.count - 1)
}

func (n *Navigator) ensureSelectedVisible() {
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}
	if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}
	maxOffset := n.count - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
