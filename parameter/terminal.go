package parameter

// Terminal geometry; layout runs in pixels, one cell spans CellWidth x CellHeight
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// Terminal chrome: no title band, one status row at the bottom
const (
	TerminalTopInset    = 0.0
	TerminalBottomInset = CellHeight
)
