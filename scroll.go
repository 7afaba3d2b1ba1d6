package alphanum4

import (
	"context"
	"time"

	"periph.io/x/devices/v3/alphanum4/seg14"
)

// Scroll shows s as a marquee moving right to left, one cell per interval.
//
// The text enters from a blank display and scrolls until the display is
// blank again; every frame is committed. Dots are folded as in WriteString.
// Scroll blocks until the last frame is shown, ctx is done or Commit fails.
func (d *Display) Scroll(ctx context.Context, s string, interval time.Duration) error {
	frames := scrollFrames(textMasks(s))
	for n, f := range frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		for i, m := range f {
			d.SetMask(Index(i), m)
		}
		if err := d.Commit(); err != nil {
			return err
		}
		if n == len(frames)-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.clock.After(interval):
		}
	}
	return nil
}

// scrollFrames pads masks with a blank display on each side and returns
// every window of Len cells.
func scrollFrames(masks []seg14.Mask) [][Len]seg14.Mask {
	padded := make([]seg14.Mask, 0, len(masks)+2*Len)
	padded = append(padded, make([]seg14.Mask, Len)...)
	padded = append(padded, masks...)
	padded = append(padded, make([]seg14.Mask, Len)...)

	frames := make([][Len]seg14.Mask, 0, len(padded)-Len+1)
	for k := 0; k+Len <= len(padded); k++ {
		var f [Len]seg14.Mask
		copy(f[:], padded[k:k+Len])
		frames = append(frames, f)
	}
	return frames
}
