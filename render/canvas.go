package render

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	runewidth "github.com/mattn/go-runewidth"
)

const (
	// glowReach extends the halo beyond the body radius
	glowReach = 1.4
	// glowStrength scales halo opacity
	glowStrength = 0.25
	// labelMinAlpha hides labels of nearly invisible nodes
	labelMinAlpha = 0.05
	// tooltipMaxWidth caps the tooltip panel in cells
	tooltipMaxWidth = 48
)

// CellRenderer rasterizes frame snapshots onto a tcell screen
// Pixel coordinates map to cells by the configured cell size
type CellRenderer struct {
	screen tcell.Screen
	buf    *Buffer
	cellW  float64
	cellH  float64
}

// NewCellRenderer creates a renderer; cellW and cellH are pixels per cell
func NewCellRenderer(screen tcell.Screen, cellW, cellH float64) *CellRenderer {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	w, h := screen.Size()
	return &CellRenderer{
		screen: screen,
		buf:    NewBuffer(w, h),
		cellW:  cellW,
		cellH:  cellH,
	}
}

// Buffer exposes the composed cells of the last frame
func (r *CellRenderer) Buffer() *Buffer {
	return r.buf
}

// Render implements Renderer
func (r *CellRenderer) Render(f *Frame) error {
	w, h := r.screen.Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	if bw, bh := r.buf.Bounds(); bw != w || bh != h {
		r.buf.Resize(w, h)
	} else {
		r.buf.Clear()
	}

	r.drawEdges(f)
	for i := range f.Nodes {
		r.drawNode(&f.Nodes[i])
	}
	r.drawTooltip(f.Tooltip)
	r.drawStatus(f.Status)

	r.buf.Flush(r.screen)
	r.screen.Show()
	return nil
}

func (r *CellRenderer) cell(px, py float64) (int, int) {
	return int(math.Floor(px / r.cellW)), int(math.Floor(py / r.cellH))
}

func (r *CellRenderer) drawEdges(f *Frame) {
	for _, e := range f.Edges {
		if e.Alpha <= 0 {
			continue
		}
		glyph, col := '·', EdgeColor
		if e.Highlight {
			glyph, col = '•', EdgeHighlight
		}

		x0, y0 := e.X1/r.cellW, e.Y1/r.cellH
		dx, dy := e.X2/r.cellW-x0, e.Y2/r.cellH-y0
		steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
		if steps == 0 {
			continue
		}
		// Sparse dots keep edges visually lighter than node bodies
		for i := 0; i <= steps; i += 2 {
			t := float64(i) / float64(steps)
			x, y := int(math.Floor(x0+dx*t)), int(math.Floor(y0+dy*t))
			r.buf.SetRune(x, y, glyph, col, e.Alpha, false)
		}
	}
}

func (r *CellRenderer) drawNode(n *NodeView) {
	if n.Alpha <= 0 {
		return
	}
	col := ParseColor(n.Color, DefaultNodeColor)
	halo := n.Radius * glowReach

	ccx, ccy := r.cell(n.X, n.Y)
	minX, minY := r.cell(n.X-halo, n.Y-halo)
	maxX, maxY := r.cell(n.X+halo, n.Y+halo)
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			if cx == ccx && cy == ccy {
				continue
			}
			px := (float64(cx) + 0.5) * r.cellW
			py := (float64(cy) + 0.5) * r.cellH
			d := math.Hypot(px-n.X, py-n.Y)
			switch {
			case d <= n.Radius:
				r.buf.BlendBg(cx, cy, col, n.Alpha)
			case d <= halo:
				r.buf.BlendBg(cx, cy, col, n.Alpha*glowStrength*n.Glow)
			}
		}
	}

	// Bodies smaller than a cell still occupy their center cell
	r.buf.BlendBg(ccx, ccy, col, n.Alpha)
	if icon, _ := utf8.DecodeRuneInString(n.Icon); icon != utf8.RuneError && runewidth.RuneWidth(icon) == 1 {
		r.buf.SetRune(ccx, ccy, icon, IconColor, n.Alpha, false)
	}

	if n.Alpha < labelMinAlpha {
		return
	}
	label := n.Label
	if n.Focused || n.Selected {
		label = "[" + label + "]"
	}
	_, below := r.cell(n.X, n.Y+n.Radius)
	w, _ := r.buf.Bounds()
	label = runewidth.Truncate(label, max(w/4, 8), "…")
	x := ccx - runewidth.StringWidth(label)/2
	r.drawText(x, below+1, label, LabelColor, n.Alpha, n.Hovered || n.Focused)
}

// drawText writes s left to right honoring wide runes and returns the cells consumed
func (r *CellRenderer) drawText(x, y int, s string, fg colorful.Color, alpha float64, bold bool) int {
	start := x
	for _, ch := range s {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		r.buf.SetRune(x, y, ch, fg, alpha, bold)
		if cw == 2 {
			r.buf.SetRune(x+1, y, 0, fg, alpha, bold)
		}
		x += cw
	}
	return x - start
}

func (r *CellRenderer) drawTooltip(t *Tooltip) {
	if t == nil || t.Title == "" {
		return
	}
	w, h := r.buf.Bounds()
	inner := min(max(runewidth.StringWidth(t.Title), runewidth.StringWidth(t.Body)), tooltipMaxWidth, w-4)
	if inner <= 0 {
		return
	}
	lines := []string{t.Title}
	if t.Body != "" {
		lines = append(lines, t.Body)
	}

	px, py := r.cell(t.X, t.Y)
	x, y := px+2, py+1
	boxW, boxH := inner+2, len(lines)
	if x+boxW > w {
		x = max(px-boxW-1, 0)
	}
	if y+boxH > h-1 {
		y = max(py-boxH-1, 0)
	}

	for row := 0; row < boxH; row++ {
		for col := 0; col < boxW; col++ {
			r.buf.BlendBg(x+col, y+row, PanelColor, 1)
			r.buf.SetRune(x+col, y+row, ' ', LabelColor, 1, false)
		}
		text := runewidth.Truncate(lines[row], inner, "…")
		r.drawText(x+1, y+row, text, LabelColor, 1, row == 0)
	}
}

func (r *CellRenderer) drawStatus(status string) {
	w, h := r.buf.Bounds()
	if status == "" || h < 2 {
		return
	}
	status = strings.TrimSpace(runewidth.Truncate(status, w-1, "…"))
	r.drawText(1, h-1, status, StatusColor, 1, false)
}
