package brailler

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
)

// Format selects how an Encoder writes colors.
type Format int

const (
	// Plain writes glyphs only.
	Plain Format = iota
	// ANSI sets the foreground of colored cells with 24-bit escape codes.
	ANSI
	// HTML wraps every colored glyph in a span with an inline color style.
	HTML
)

func (f Format) String() string {
	switch f {
	case Plain:
		return "plain"
	case ANSI:
		return "ansi"
	case HTML:
		return "html"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat parses "plain", "ansi" or "html".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain", "text", "":
		return Plain, nil
	case "ansi":
		return ANSI, nil
	case "html":
		return HTML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

const ansiReset = "\033[0m"

type EncoderOpt func(enc *Encoder)

// WithFormat sets the output format. Grids without colors are always
// written as Plain.
func WithFormat(f Format) EncoderOpt {
	return func(enc *Encoder) {
		enc.format = f
	}
}

// Encoder writes grids to a writer, one line per row of cells.
type Encoder struct {
	writer io.Writer // Output
	format Format
}

func NewEncoder(w io.Writer, opts ...EncoderOpt) *Encoder {
	enc := Encoder{
		writer: w,
		format: Plain,
	}
	for _, opt := range opts {
		opt(&enc)
	}
	return &enc
}

// Encode writes the grid and returns the first write error.
func (enc *Encoder) Encode(g *Grid) error {
	bw := bufio.NewWriter(enc.writer)
	format := enc.format
	if !g.Colored() {
		format = Plain
	}
	for y := 0; y < g.Height; y++ {
		row := g.Cells[y*g.Width : (y+1)*g.Width]
		switch format {
		case ANSI:
			writeANSIRow(bw, row)
		case HTML:
			writeHTMLRow(bw, row)
		default:
			for _, c := range row {
				bw.WriteRune(c.Rune())
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// writeANSIRow emits a foreground escape only where the color changes and
// resets the terminal at the end of the row.
func writeANSIRow(bw *bufio.Writer, row []Cell) {
	var (
		cur     color.RGBA
		started bool
	)
	for _, c := range row {
		if !started || c.Color != cur {
			bw.WriteString("\033[38;2;")
			bw.WriteString(strconv.Itoa(int(c.Color.R)))
			bw.WriteByte(';')
			bw.WriteString(strconv.Itoa(int(c.Color.G)))
			bw.WriteByte(';')
			bw.WriteString(strconv.Itoa(int(c.Color.B)))
			bw.WriteByte('m')
			cur, started = c.Color, true
		}
		bw.WriteRune(c.Rune())
	}
	if started {
		bw.WriteString(ansiReset)
	}
}

func writeHTMLRow(bw *bufio.Writer, row []Cell) {
	for _, c := range row {
		fmt.Fprintf(bw, `<span style="color: rgb(%d, %d, %d)">%c</span>`, c.Color.R, c.Color.G, c.Color.B, c.Rune())
	}
}
