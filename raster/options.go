// SPDX-License-Identifier: MIT

package raster

import (
	"image"

	"golang.org/x/image/draw"
)

const panicNilInterpolator = "raster: WithInterpolator: nil interpolator"

// Option configures Warp.
type Option func(*Options)

// Options holds the effective Warp configuration.
type Options struct {
	interp draw.Interpolator
	op     draw.Op
	srcSet bool
	src    image.Rectangle
}

func defaultOptions() Options {
	return Options{interp: draw.BiLinear, op: draw.Over}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithInterpolator selects the resampling kernel (default draw.BiLinear).
// Panics on nil.
func WithInterpolator(i draw.Interpolator) Option {
	if i == nil {
		panic(panicNilInterpolator)
	}

	return func(o *Options) { o.interp = i }
}

// WithOp selects the compositing operator (default draw.Over).
func WithOp(op draw.Op) Option {
	return func(o *Options) { o.op = op }
}

// WithSourceRect restricts sampling to r instead of src.Bounds().
func WithSourceRect(r image.Rectangle) Option {
	return func(o *Options) { o.src, o.srcSet = r, true }
}
