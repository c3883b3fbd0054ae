package brailler

import (
	"image/color"
	"strings"
)

// Cell is one braille glyph of a Grid. Colored cells carry the average color
// of the source pixels they cover.
type Cell struct {
	Pattern Braille
	Color   color.RGBA
	Colored bool
}

// Rune returns the glyph of the cell.
func (c Cell) Rune() rune {
	return c.Pattern.Rune()
}

// Grid is a mosaic of braille cells covering a Dx by Dy pixel image. Each
// cell covers a 2x4 pixel block, so the grid is ceil(Dx/2) cells wide and
// ceil(Dy/4) cells high. Cells are stored row-major.
type Grid struct {
	Width, Height int
	Dx, Dy        int
	Cells         []Cell
}

// NewGrid returns a blank grid covering a width by height pixel image.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		return &Grid{}
	}
	g := &Grid{
		Width:  (width + 1) / 2,
		Height: (height + 3) / 4,
		Dx:     width,
		Dy:     height,
	}
	g.Cells = make([]Cell, g.Width*g.Height)
	return g
}

// At returns the cell at column x, row y.
func (g *Grid) At(x, y int) Cell {
	return g.Cells[y*g.Width+x]
}

// Colored reports whether the grid carries per-cell colors.
func (g *Grid) Colored() bool {
	return len(g.Cells) > 0 && g.Cells[0].Colored
}

// Rows returns each row of glyphs as a string.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	var b strings.Builder
	for y := range rows {
		b.Reset()
		for _, c := range g.Cells[y*g.Width : (y+1)*g.Width] {
			b.WriteRune(c.Rune())
		}
		rows[y] = b.String()
	}
	return rows
}

// String returns the glyphs of the grid with every row terminated by a line
// feed. Colors are dropped.
func (g *Grid) String() string {
	var b strings.Builder
	for _, row := range g.Rows() {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return b.String()
}

// Pack bins dots into the braille cells of a width by height pixel image.
// Dots outside the image are ignored.
func Pack(dots []Dot, width, height int) *Grid {
	g := NewGrid(width, height)
	for _, d := range dots {
		cx, cy, sx, sy := d.Cell()
		if cx < 0 || cx >= g.Width || cy < 0 || cy >= g.Height {
			continue
		}
		i := cy*g.Width + cx
		g.Cells[i].Pattern = g.Cells[i].Pattern.Set(sx, sy)
	}
	return g
}

// PackColor packs dots like Pack and colors every cell with the mean RGB of
// the source pixels it covers. Cells on the right and bottom edges average
// only the pixels inside the image. Means are rounded down.
//
// pix is the row-major RGBA buffer of the width by height image.
func PackColor(dots []Dot, pix []byte, width, height int) *Grid {
	g := Pack(dots, width, height)
	for cy := 0; cy < g.Height; cy++ {
		for cx := 0; cx < g.Width; cx++ {
			var r, gr, b, count int
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					px, py := cx*2+dx, cy*4+dy
					if px >= width || py >= height {
						continue
					}
					idx := (py*width + px) * 4
					r += int(pix[idx])
					gr += int(pix[idx+1])
					b += int(pix[idx+2])
					count++
				}
			}
			cell := &g.Cells[cy*g.Width+cx]
			cell.Colored = true
			if count > 0 {
				cell.Color = color.RGBA{R: uint8(r / count), G: uint8(gr / count), B: uint8(b / count), A: 0xff}
			}
		}
	}
	return g
}

// invert flips every dot of the grid that lies inside the source image.
func (g *Grid) invert() {
	for cy := 0; cy < g.Height; cy++ {
		for cx := 0; cx < g.Width; cx++ {
			var inside Braille
			for dy := 0; dy < 4 && cy*4+dy < g.Dy; dy++ {
				for dx := 0; dx < 2 && cx*2+dx < g.Dx; dx++ {
					inside = inside.Set(dx, dy)
				}
			}
			cell := &g.Cells[cy*g.Width+cx]
			cell.Pattern ^= inside
		}
	}
}
