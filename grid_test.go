package brailler_test

import (
	"image/color"

	"github.com/kevin-cantwell/brailler"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Grid", func() {
	It("rounds partial blocks up", func() {
		g := brailler.NewGrid(7, 9)
		Expect(g.Width).To(Equal(4))
		Expect(g.Height).To(Equal(3))
		Expect(g.Cells).To(HaveLen(12))
	})

	It("is empty without pixels", func() {
		Expect(brailler.NewGrid(0, 5).Cells).To(BeEmpty())
		Expect(brailler.NewGrid(3, 0).String()).To(BeEmpty())
	})

	It("terminates every row", func() {
		g := brailler.NewGrid(4, 8)
		Expect(g.String()).To(Equal("⠀⠀\n⠀⠀\n"))
		Expect(g.Rows()).To(Equal([]string{"⠀⠀", "⠀⠀"}))
	})
})

var _ = Describe("Pack", func() {
	It("raises the dot of every sub-position", func() {
		g := brailler.Pack([]brailler.Dot{{X: 0, Y: 0}}, 2, 4)
		Expect(g.At(0, 0).Rune()).To(Equal('⠁'))

		g = brailler.Pack([]brailler.Dot{{X: 1, Y: 3}}, 2, 4)
		Expect(g.At(0, 0).Pattern).To(Equal(brailler.Braille(0x80)))

		g = brailler.Pack([]brailler.Dot{{X: 0, Y: 0}, {X: 1, Y: 3}}, 2, 4)
		Expect(g.At(0, 0).Rune()).To(Equal(rune(0x2881)))
	})

	It("floors fractional positions", func() {
		g := brailler.Pack([]brailler.Dot{{X: 1.7, Y: 3.2}, {X: 2.1, Y: 4.9}}, 4, 8)
		Expect(g.At(0, 0).Pattern).To(Equal(brailler.Bit(1, 3)))
		Expect(g.At(1, 1).Pattern).To(Equal(brailler.Bit(0, 0)))
	})

	It("ignores dots outside the image", func() {
		g := brailler.Pack([]brailler.Dot{{X: -0.5, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 8}}, 4, 8)
		for _, c := range g.Cells {
			Expect(c.Pattern).To(Equal(brailler.Blank))
		}
	})

	It("places cells row-major", func() {
		g := brailler.Pack([]brailler.Dot{{X: 2, Y: 4}}, 4, 8)
		Expect(g.String()).To(Equal("⠀⠀\n⠀⠁\n"))
	})

	It("leaves colors off in mono", func() {
		Expect(brailler.Pack(nil, 2, 4).Colored()).To(BeFalse())
	})
})

var _ = Describe("PackColor", func() {
	It("averages the covered pixels rounding down", func() {
		pix := []byte{
			10, 20, 30, 255, 21, 31, 41, 255,
		}
		g := brailler.PackColor(nil, pix, 2, 1)
		Expect(g.Colored()).To(BeTrue())
		Expect(g.At(0, 0).Color).To(Equal(color.RGBA{R: 15, G: 25, B: 35, A: 0xff}))
	})

	It("averages a full block of distinct pixels rounding down", func() {
		pix := make([]byte, 0, 2*4*4)
		var r, g, b int
		for i := 0; i < 8; i++ {
			pr, pg, pb := 10+i*20, 3+i*7, 250-i*31
			r, g, b = r+pr, g+pg, b+pb
			pix = append(pix, byte(pr), byte(pg), byte(pb), 0xff)
		}
		grid := brailler.PackColor(nil, pix, 2, 4)
		Expect(grid.Cells).To(HaveLen(1))
		Expect(grid.At(0, 0).Color).To(Equal(color.RGBA{
			R: uint8(r / 8), G: uint8(g / 8), B: uint8(b / 8), A: 0xff,
		}))
		// Sums are 640, 220 and 1132.
		Expect(grid.At(0, 0).Color).To(Equal(color.RGBA{R: 80, G: 27, B: 141, A: 0xff}))
	})

	It("averages only pixels inside the image on the edges", func() {
		pix := solid(3, 5, 0, 0, 0)
		// The only pixel of the last column in the second cell row.
		i := (4*3 + 2) * 4
		pix[i], pix[i+1], pix[i+2] = 200, 100, 50
		g := brailler.PackColor(nil, pix, 3, 5)
		Expect(g.Width).To(Equal(2))
		Expect(g.Height).To(Equal(2))
		Expect(g.At(1, 1).Color).To(Equal(color.RGBA{R: 200, G: 100, B: 50, A: 0xff}))
		Expect(g.At(0, 1).Color).To(Equal(color.RGBA{A: 0xff}))
	})

	It("keeps the dots", func() {
		g := brailler.PackColor([]brailler.Dot{{X: 1, Y: 1}}, solid(2, 4, 1, 2, 3), 2, 4)
		Expect(g.At(0, 0).Pattern).To(Equal(brailler.Bit(1, 1)))
		Expect(g.At(0, 0).Color).To(Equal(color.RGBA{R: 1, G: 2, B: 3, A: 0xff}))
	})
})
