// Package wgccre computes the rotational orientation of solar-system bodies
// from the IAU WGCCRE reports and converts it for use alongside VSOP87
// positions.
//
// Time arguments are Julian centuries since J2000.0. All functions are pure
// and safe for concurrent use.
package wgccre

import (
	"errors"
	"fmt"
)

// Body identifies a supported solar-system body.
type Body int

const (
	Sol Body = iota
	Mercury
	Venus
	Earth
	Moon
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
)

var bodyNames = [...]string{
	Sol:     "Sol",
	Mercury: "Mercury",
	Venus:   "Venus",
	Earth:   "Earth",
	Moon:    "Moon",
	Mars:    "Mars",
	Jupiter: "Jupiter",
	Saturn:  "Saturn",
	Uranus:  "Uranus",
	Neptune: "Neptune",
}

// String returns the canonical English name of the body.
func (b Body) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Body(%d)", int(b))
	}
	return bodyNames[b]
}

// Valid reports whether b is one of the supported bodies.
func (b Body) Valid() bool {
	return b >= Sol && int(b) < len(bodyNames)
}

// Report returns the report edition whose model is used for b, or
// ReportUnknown for an unsupported body.
func (b Body) Report() Report {
	m, ok := models[b]
	if !ok {
		return ReportUnknown
	}
	return m.report
}

// Bodies returns every supported body, Sun outward.
func Bodies() []Body {
	out := make([]Body, len(bodyNames))
	for i := range out {
		out[i] = Body(i)
	}
	return out
}

// ParseBody resolves a canonical body name. Matching is exact and
// case-sensitive.
func ParseBody(name string) (Body, error) {
	for i, n := range bodyNames {
		if n == name {
			return Body(i), nil
		}
	}
	return 0, &UnknownBodyError{Name: name}
}

// Report is a WGCCRE report edition.
type Report int

const (
	Report2015 Report = iota
	Report2009

	ReportUnknown Report = -1
)

func (r Report) String() string {
	switch r {
	case Report2015:
		return "WGCCRE 2015"
	case Report2009:
		return "WGCCRE 2009"
	default:
		return "unknown"
	}
}

// ErrUnknownBody is matched by every error returned for an unsupported body.
var ErrUnknownBody = errors.New("wgccre: unknown body")

// UnknownBodyError reports a body identifier outside the supported set.
type UnknownBodyError struct {
	Name string
}

func (e *UnknownBodyError) Error() string {
	return fmt.Sprintf("wgccre: unknown body %q", e.Name)
}

func (e *UnknownBodyError) Unwrap() error {
	return ErrUnknownBody
}
