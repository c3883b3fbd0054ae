package brailler_test

import (
	"bytes"
	"image"
	"image/color"
	"math/rand"

	"github.com/kevin-cantwell/brailler"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Convert", func() {
	var cfg brailler.Config

	BeforeEach(func() {
		cfg = brailler.DefaultConfig()
	})

	It("rejects buffers that do not match the dimensions", func() {
		_, err := brailler.Convert(make([]byte, 10), 2, 2, cfg)
		Expect(err).To(MatchError(brailler.ErrBufferSize))

		_, err = brailler.Convert([]byte{1}, 0, 0, cfg)
		Expect(err).To(MatchError(brailler.ErrBufferSize))
	})

	It("rejects negative dimensions", func() {
		_, err := brailler.Convert(nil, -2, 4, cfg)
		Expect(err).To(MatchError(brailler.ErrDimensions))
	})

	It("gives an empty grid without pixels", func() {
		g, err := brailler.Convert(nil, 0, 4, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Cells).To(BeEmpty())
		Expect(g.String()).To(BeEmpty())
	})

	It("rejects unknown methods and color modes", func() {
		cfg.Method = brailler.Method(42)
		_, err := brailler.Convert(solid(2, 4, 0, 0, 0), 2, 4, cfg)
		Expect(err).To(MatchError(brailler.ErrUnknownMethod))

		cfg = brailler.DefaultConfig()
		cfg.ColorMode = brailler.ColorMode(42)
		_, err = brailler.Convert(solid(2, 4, 0, 0, 0), 2, 4, cfg)
		Expect(err).To(MatchError(brailler.ErrUnknownColorMode))
	})

	Context("with auto-calibration", func() {
		It("renders a flat black image blank since its threshold calibrates to 0", func() {
			g, err := brailler.Convert(solid(4, 4, 0, 0, 0), 4, 4, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(g.Width).To(Equal(2))
			Expect(g.Height).To(Equal(1))
			Expect(g.String()).To(Equal("⠀⠀\n"))
		})

		It("renders a black image full when inverted", func() {
			cfg.Invert = true
			g, err := brailler.Convert(solid(4, 4, 0, 0, 0), 4, 4, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(g.String()).To(Equal("⣿⣿\n"))
		})
	})

	Context("with a fixed threshold", func() {
		BeforeEach(func() {
			cfg.AutoCalibrate = false
			cfg.Threshold = 128
		})

		DescribeTable("dots the light half",
			func(method brailler.Method) {
				cfg.Method = method
				g, err := brailler.Convert(halves(4, 8), 4, 8, cfg)
				Expect(err).NotTo(HaveOccurred())
				Expect(g.String()).To(Equal("⠀⣿\n⠀⣿\n"))
			},
			Entry("dither", brailler.MethodDither),
			Entry("threshold", brailler.MethodThreshold),
		)

		It("treats a zero threshold as the default", func() {
			cfg.Threshold = 0
			cfg.Method = brailler.MethodThreshold
			g, err := brailler.Convert(halves(4, 4), 4, 4, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(g.String()).To(Equal("⠀⣿\n"))
		})

		It("inverts only the dots inside the image", func() {
			cfg.Method = brailler.MethodThreshold
			cfg.Invert = true
			g, err := brailler.Convert(halves(3, 3), 3, 3, cfg)
			Expect(err).NotTo(HaveOccurred())
			// Column 0 is black, columns 1 and 2 are white.
			Expect(g.At(0, 0).Pattern).To(Equal(brailler.Blank.Set(0, 0).Set(0, 1).Set(0, 2)))
			Expect(g.At(1, 0).Pattern).To(Equal(brailler.Blank))
		})

		It("scatters dots over the light half", func() {
			cfg.Method = brailler.MethodPoisson
			cfg.Poisson.Rand = rand.New(rand.NewSource(1))
			g, err := brailler.Convert(halves(4, 4), 4, 4, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(g.At(0, 0).Pattern).To(Equal(brailler.Blank))
			Expect(g.At(1, 0).Pattern).NotTo(Equal(brailler.Blank))
		})

		It("averages colors in color mode", func() {
			cfg.Method = brailler.MethodThreshold
			cfg.ColorMode = brailler.Color
			g, err := brailler.Convert(halves(4, 4), 4, 4, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(g.Colored()).To(BeTrue())
			Expect(g.At(0, 0).Color).To(Equal(color.RGBA{A: 0xff}))
			Expect(g.At(1, 0).Color).To(Equal(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}))
		})

		It("darkens with brightness below 1", func() {
			cfg.Method = brailler.MethodThreshold
			cfg.Brightness = 0.25
			g, err := brailler.Convert(solid(2, 4, 255, 255, 255), 2, 4, cfg)
			Expect(err).NotTo(HaveOccurred())
			// 255 * 0.25 inverts to 192, which is not ink.
			Expect(g.At(0, 0).Pattern).To(Equal(brailler.Blank))
		})
	})
})

var _ = Describe("ConvertImage", func() {
	It("accepts sub-images sharing their parent's buffer", func() {
		parent := image.NewNRGBA(image.Rect(0, 0, 4, 8))
		for i := 0; i < len(parent.Pix); i += 4 {
			parent.Pix[i], parent.Pix[i+1], parent.Pix[i+2], parent.Pix[i+3] = 0xff, 0xff, 0xff, 0xff
		}
		cfg := brailler.DefaultConfig()
		cfg.AutoCalibrate = false
		cfg.Method = brailler.MethodThreshold

		top := parent.SubImage(image.Rect(0, 0, 4, 4))
		g, err := brailler.ConvertImage(top, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Dy).To(Equal(4))
		Expect(g.String()).To(Equal("⣿⣿\n"))

		bottom := parent.SubImage(image.Rect(0, 4, 4, 8))
		g, err = brailler.ConvertImage(bottom, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(g.String()).To(Equal("⣿⣿\n"))
	})

	It("accepts images with any origin", func() {
		img := image.NewGray(image.Rect(10, 20, 14, 24))
		for i := range img.Pix {
			img.Pix[i] = 0xff
		}
		cfg := brailler.DefaultConfig()
		cfg.AutoCalibrate = false
		cfg.Method = brailler.MethodThreshold
		g, err := brailler.ConvertImage(img, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Dx).To(Equal(4))
		Expect(g.String()).To(Equal("⣿⣿\n"))
	})
})

var _ = Describe("Encode", func() {
	It("writes the default rendering", func() {
		var buf bytes.Buffer
		img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
		Expect(brailler.Encode(&buf, img)).To(Succeed())
		Expect(buf.String()).To(Equal("⠀⠀\n"))
	})
})
