package brailler

import (
	"context"
	"image"
	"image/draw"
	"image/gif"
	"io"
	"time"
)

// Filter can alter an image before it is converted, eg. to resize it.
type Filter interface {
	Filter(image.Image) image.Image
}

// FilterFunc adapts a function to a Filter.
type FilterFunc func(image.Image) image.Image

func (f FilterFunc) Filter(img image.Image) image.Image {
	return f(img)
}

// GIFPlayer draws the frames of an animated gif as braille, redrawing each
// frame over the last one.
type GIFPlayer struct {
	// Filter, if set, is applied to every composed screen before conversion.
	Filter Filter

	t   Terminal
	enc *Encoder
	cfg Config
}

// NewGIFPlayer provides a GIFPlayer writing to w. If t is nil, an Xterm on w
// is used.
func NewGIFPlayer(w io.Writer, t Terminal, cfg Config, opts ...EncoderOpt) *GIFPlayer {
	if t == nil {
		t = &Xterm{
			Writer: w,
		}
	}
	return &GIFPlayer{
		t:   t,
		enc: NewEncoder(w, opts...),
		cfg: cfg,
	}
}

// PlayGIF plays giff on w with an Xterm until it ends or ctx is done.
func PlayGIF(ctx context.Context, w io.Writer, giff *gif.GIF, cfg Config, opts ...EncoderOpt) error {
	return NewGIFPlayer(w, nil, cfg, opts...).Play(ctx, giff)
}

/*
Play composes every frame onto the logical screen of the gif, converts the
screen and draws it, then waits for the frame's delay. Disposal methods are
respected: DisposalBackground clears the frame's rectangle after its delay and
DisposalPrevious restores the screen as it was before the frame.

A LoopCount of 0 loops until ctx is done, -1 plays once, and n plays n+1
times. The cursor is moved back up only before the next frame is drawn, so
the last frame stays on screen with the cursor below it.
*/
func (p *GIFPlayer) Play(ctx context.Context, giff *gif.GIF) (err error) {
	if len(giff.Image) == 0 {
		return nil
	}
	bounds := image.Rect(0, 0, giff.Config.Width, giff.Config.Height)
	if bounds.Empty() {
		bounds = giff.Image[0].Bounds()
		for _, frame := range giff.Image[1:] {
			bounds = bounds.Union(frame.Bounds())
		}
	}

	if err := p.t.ShowCursor(false); err != nil {
		return err
	}
	defer func() {
		if serr := p.t.ShowCursor(true); err == nil {
			err = serr
		}
	}()

	rows := 0
	for plays := 0; plays == 0 || giff.LoopCount == 0 || plays <= giff.LoopCount; plays++ {
		screen := image.NewNRGBA(bounds)
		for i, frame := range giff.Image {
			if err := ctx.Err(); err != nil {
				return err
			}

			disposal := byte(0)
			if i < len(giff.Disposal) {
				disposal = giff.Disposal[i]
			}
			var previous *image.NRGBA
			if disposal == gif.DisposalPrevious {
				previous = image.NewNRGBA(bounds)
				copy(previous.Pix, screen.Pix)
			}

			draw.Draw(screen, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
			if rows > 0 {
				if err := p.t.ResetCursor(rows); err != nil {
					return err
				}
			}
			var img image.Image = screen
			if p.Filter != nil {
				img = p.Filter.Filter(img)
			}
			g, err := ConvertImage(img, p.cfg)
			if err != nil {
				return err
			}
			if err := p.enc.Encode(g); err != nil {
				return err
			}
			rows = g.Height

			var delay time.Duration
			if i < len(giff.Delay) {
				delay = time.Duration(giff.Delay[i]) * time.Second / 100
			}
			if err := sleep(ctx, delay); err != nil {
				return err
			}

			switch disposal {
			case gif.DisposalBackground:
				draw.Draw(screen, frame.Bounds(), image.Transparent, image.ZP, draw.Src)
			case gif.DisposalPrevious:
				screen = previous
			}
		}
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
