package controller

import (
	m "github.com/mouse-blink/libwizard/internal/model"
)

// outcomeMsg delivers a reported outcome to the Bubble Tea model.
type outcomeMsg struct {
	outcome m.Outcome
}

// doneMsg tells the model that the run is over.
type doneMsg struct{}
