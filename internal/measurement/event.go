package measurement

import "github.com/philipparndt/photodist/pkg/geometry"

// Event is one input delivered by the render loop. The set is closed:
// CursorMoved, Clicked, FrameTick and Closed.
type Event interface {
	isEvent()
}

// CursorMoved carries the absolute cursor position in pixels
type CursorMoved struct {
	Pos geometry.Point
}

// Clicked is a left mouse button press at the last known cursor position
type Clicked struct{}

// FrameTick asks for a frame to be drawn
type FrameTick struct{}

// Closed ends the loop
type Closed struct{}

func (CursorMoved) isEvent() {}
func (Clicked) isEvent()     {}
func (FrameTick) isEvent()   {}
func (Closed) isEvent()      {}
