package state

// ListState is the selection and scroll position of a selectable list. The
// zero value has nothing selected and no scroll.
type ListState struct {
	selected int
	valid    bool
	offset   int
}

// Selected returns the selected index and whether anything is selected.
func (l ListState) Selected() (int, bool) {
	return l.selected, l.valid
}

// Offset returns the index of the first visible row.
func (l ListState) Offset() int {
	return l.offset
}

// Select selects index i. A negative index clears the selection.
func (l *ListState) Select(i int) {
	if i < 0 {
		l.Clear()
		return
	}
	l.selected = i
	l.valid = true
}

// Clear removes the selection.
func (l *ListState) Clear() {
	l.selected = 0
	l.valid = false
}

// Clamp keeps the selection inside a list of n rows. An empty list clears
// the selection and the scroll offset.
func (l *ListState) Clamp(n int) {
	if n <= 0 {
		l.Clear()
		l.offset = 0
		return
	}
	if l.valid && l.selected >= n {
		l.selected = n - 1
	}
	if l.offset >= n {
		l.offset = n - 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// Next moves the selection down one row without wrapping. With nothing
// selected it selects the first row.
func (l *ListState) Next(n int) bool {
	if n <= 0 {
		return false
	}
	if !l.valid {
		l.Select(0)
		return true
	}
	if l.selected >= n-1 {
		return false
	}
	l.selected++
	return true
}

// Prev moves the selection up one row without wrapping. With nothing
// selected it selects the last row.
func (l *ListState) Prev(n int) bool {
	if n <= 0 {
		return false
	}
	if !l.valid {
		l.Select(n - 1)
		return true
	}
	if l.selected <= 0 {
		return false
	}
	l.selected--
	return true
}

// First selects the first row.
func (l *ListState) First(n int) bool {
	return l.jump(n, 0)
}

// Last selects the last row.
func (l *ListState) Last(n int) bool {
	return l.jump(n, n-1)
}

func (l *ListState) jump(n, to int) bool {
	if n <= 0 {
		return false
	}
	old, had := l.selected, l.valid
	l.Select(to)
	return !had || old != to
}

// Viewport returns a copy of l clamped to n rows, with the offset adjusted
// so the selected row falls inside a window of the given height.
func (l ListState) Viewport(n, rows int) ListState {
	l.Clamp(n)
	if n <= 0 || rows <= 0 {
		l.offset = 0
		return l
	}
	maxOffset := max(n-rows, 0)
	l.offset = min(max(l.offset, 0), maxOffset)
	if !l.valid {
		return l
	}
	if l.selected < l.offset {
		l.offset = l.selected
	}
	if l.selected > l.offset+rows-1 {
		l.offset = min(l.selected-rows+1, maxOffset)
	}
	return l
}
