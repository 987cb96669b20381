// Package starfield simulates the drifting particle field drawn behind the
// dashboard.
package starfield

import (
	"math/rand"
)

const (
	maxRadius = 2.0
	minDrift  = 0.01
	driftSpan = 0.05
)

// Star is a single particle. Coordinates are in canvas cells.
type Star struct {
	X, Y    float64
	Radius  float64
	Drift   float64
	Opacity float64
}

// Field owns the canvas size and the star set. It is not safe for
// concurrent use; the UI update loop is its only caller.
type Field struct {
	width, height float64
	count         int
	rng           *rand.Rand
	stars         []Star
}

// New creates a field of count stars on a width×height canvas. The random
// source is injected so a fixed seed reproduces the same field.
func New(rng *rand.Rand, count int, width, height float64) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	f := &Field{rng: rng, count: count}
	f.setSize(width, height)
	f.Initialize(count)
	return f
}

// Initialize replaces the star set with count freshly randomized stars.
func (f *Field) Initialize(count int) {
	if count < 0 {
		count = 0
	}
	f.count = count
	stars := make([]Star, count)
	for i := range stars {
		stars[i] = Star{
			X:       f.rng.Float64() * f.width,
			Y:       f.rng.Float64() * f.height,
			Radius:  f.rng.Float64() * maxRadius,
			Drift:   f.rng.Float64()*driftSpan + minDrift,
			Opacity: f.rng.Float64(),
		}
	}
	f.stars = stars
}

// Tick advances every star by its drift. Stars leaving the top edge wrap to
// the bottom edge at the same x.
func (f *Field) Tick() {
	for i := range f.stars {
		s := &f.stars[i]
		s.Y -= s.Drift
		if s.Y < 0 {
			s.Y = f.height
		}
	}
}

// Resize adopts a new canvas size and regenerates the whole star set.
func (f *Field) Resize(width, height float64) {
	f.setSize(width, height)
	f.Initialize(f.count)
}

// Size returns the canvas dimensions.
func (f *Field) Size() (width, height float64) {
	return f.width, f.height
}

// Stars returns a copy of the current star set.
func (f *Field) Stars() []Star {
	out := make([]Star, len(f.stars))
	copy(out, f.stars)
	return out
}

// Len reports how many stars the field holds.
func (f *Field) Len() int {
	return len(f.stars)
}

func (f *Field) setSize(width, height float64) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f.width, f.height = width, height
}
