package bough

import (
	"math"
	"sync/atomic"
)

// Scaler supplies the factors that map world units to screen pixels.
// Implementations must be safe for concurrent reads.
type Scaler interface {
	WidthScaleFactor() float64
	HeightScaleFactor() float64
}

// ScaleFactors is a Scaler whose factors can be changed at runtime, typically
// from Scene.Layout when the window is resized. Reads are lock-free and always
// observe a consistent width/height pair. The zero value scales by 1.0.
type ScaleFactors struct {
	factors atomic.Pointer[scalePair]
}

type scalePair struct {
	w, h float64
}

// DefaultScale is the process-wide scale used by every node that has no
// Scaler of its own.
var DefaultScale = &ScaleFactors{}

// NewScaleFactors returns factors initialised to w and h. Invalid values fall
// back to 1.0.
func NewScaleFactors(w, h float64) *ScaleFactors {
	s := &ScaleFactors{}
	s.Set(w, h)
	return s
}

// WidthScaleFactor returns the horizontal factor.
func (s *ScaleFactors) WidthScaleFactor() float64 {
	if p := s.factors.Load(); p != nil {
		return p.w
	}
	return 1
}

// HeightScaleFactor returns the vertical factor.
func (s *ScaleFactors) HeightScaleFactor() float64 {
	if p := s.factors.Load(); p != nil {
		return p.h
	}
	return 1
}

// Set replaces both factors. Factors must be positive and finite; otherwise
// Set leaves the current values in place and returns false.
func (s *ScaleFactors) Set(w, h float64) bool {
	if !validFactor(w) || !validFactor(h) {
		return false
	}
	s.factors.Store(&scalePair{w: w, h: h})
	return true
}

// Fit derives the factors from a design resolution and the actual outside
// size, so content authored at designW x designH fills the window.
func (s *ScaleFactors) Fit(designW, designH, outsideW, outsideH int) bool {
	if designW <= 0 || designH <= 0 {
		return false
	}
	return s.Set(float64(outsideW)/float64(designW), float64(outsideH)/float64(designH))
}

// Reset restores both factors to 1.0.
func (s *ScaleFactors) Reset() {
	s.factors.Store(nil)
}

func validFactor(f float64) bool {
	return f > 0 && !math.IsInf(f, 0)
}
