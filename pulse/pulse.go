// Package pulse provides a color filter that makes wires pulse, so that they
// stand out against a scene using the same colors.
package pulse

import (
	"image/color"
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPeriod is the period of one pulse.
const DefaultPeriod = 500 * time.Millisecond

// Boost is how much saturation and value are raised at the peak of a pulse.
const Boost = 0.25

// Amplitude returns the strength of the pulse at t: 1 at the start of every
// period, falling linearly to 0 half way through and rising back to 1.
func Amplitude(t time.Time, period time.Duration) float64 {
	if period <= 0 {
		return 0
	}
	ms := period.Milliseconds()
	if ms == 0 {
		return 0
	}
	phase := t.UnixMilli() % ms
	if phase < 0 {
		phase += ms
	}
	return math.Abs(float64(2*phase-ms) / float64(ms))
}

// Filter returns a color filter for [lines.WithColorFilter]. Colors passing
// through it get their saturation and value raised by up to [Boost], varying
// over period. now is the clock, usually time.Now. Alpha is kept.
func Filter(period time.Duration, now func() time.Time) func(color.Color) color.Color {
	if now == nil {
		now = time.Now
	}
	return func(c color.Color) color.Color {
		return Brighten(c, Boost*Amplitude(now(), period))
	}
}

// Brighten raises the saturation and value of c by amount, clamping to the
// valid range.
func Brighten(c color.Color, amount float64) color.Color {
	if c == nil {
		return nil
	}
	a := color.NRGBAModel.Convert(c).(color.NRGBA).A
	if a == 0 {
		return c
	}
	// MakeColor undoes the alpha premultiplication.
	col, _ := colorful.MakeColor(c)
	h, s, v := col.Hsv()
	r, g, b := colorful.Hsv(h, min(s+amount, 1), min(v+amount, 1)).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
