// Package marker styles the on-screen markers attached to hostiles.
package marker

import (
	"time"

	"github.com/udisondev/hitsquads/internal/model"
	"github.com/udisondev/hitsquads/internal/world"
)

// Fade-in defaults.
const (
	DefaultFadeSteps    = 10
	DefaultFadeDuration = 750 * time.Millisecond
)

// Style is the presentation of one marker.
type Style struct {
	Color world.MarkerColor
	Scale float32
	Name  string
}

// StyleFor returns the marker style for a hostile of kind and tier.
func StyleFor(kind model.SpawnKind, tier model.Tier) Style {
	if kind == model.SpawnVehicle {
		if tier.IsElite() {
			return Style{Color: world.MarkerYellow, Scale: 1.0, Name: "Elite Hitman Vehicle"}
		}
		return Style{Color: world.MarkerRed, Scale: 1.0, Name: "Hitman Vehicle"}
	}

	if tier.IsElite() {
		return Style{Color: world.MarkerYellow, Scale: 0.65, Name: "Elite Hitman"}
	}
	return Style{Color: world.MarkerRed, Scale: 0.65, Name: "Hitman"}
}

// Apply writes style to marker m.
func Apply(markers world.Markers, m model.MarkerHandle, style Style) {
	markers.SetMarkerColor(m, style.Color)
	markers.SetMarkerScale(m, style.Scale)
	markers.SetMarkerName(m, style.Name)
}

// FadeIn raises a marker's alpha from 0 to 255 in discrete steps.
// It is a tick.Task: every step first checks that the marker still exists and
// finishes early when it does not.
type FadeIn struct {
	markers  world.Markers
	marker   model.MarkerHandle
	steps    int
	interval time.Duration

	step int
	next time.Time
}

// NewFadeIn creates a fade-in of m over d in steps increments.
// Non-positive values fall back to the defaults.
func NewFadeIn(markers world.Markers, m model.MarkerHandle, steps int, d time.Duration) *FadeIn {
	if steps <= 0 {
		steps = DefaultFadeSteps
	}
	if d <= 0 {
		d = DefaultFadeDuration
	}
	return &FadeIn{
		markers:  markers,
		marker:   m,
		steps:    steps,
		interval: d / time.Duration(steps),
	}
}

// Step applies the next alpha level once it is due.
func (f *FadeIn) Step(now time.Time) bool {
	if !f.markers.MarkerExists(f.marker) {
		return true
	}
	if f.next.IsZero() {
		f.next = now
	}
	if now.Before(f.next) {
		return false
	}

	f.markers.SetMarkerAlpha(f.marker, f.step*255/f.steps)
	f.step++
	f.next = f.next.Add(f.interval)

	return f.step > f.steps
}
