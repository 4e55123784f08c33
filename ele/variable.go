// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements thermal-hydraulic network components
package ele

// Variable is a scalar model variable.
//
// A fixed variable is excluded from the solver unknown vector and is never
// modified by the solver. When bounds are set, the value is clipped into
// [Lo, Up] after every assignment.
type Variable struct {
	Name    string  // unique name for debugging and reporting
	Value   float64 // current value
	Fixed   bool    // excluded from the unknown vector
	Lo      float64 // lower bound (when Bounded)
	Up      float64 // upper bound (when Bounded)
	Bounded bool    // bounds are active
}

// NewVariable returns a new free, unbounded variable
func NewVariable(name string, value float64) *Variable {
	return &Variable{Name: name, Value: value}
}

// SetBounds activates bounds and clips the current value
func (o *Variable) SetBounds(lo, up float64) {
	o.Lo, o.Up = lo, up
	o.Bounded = true
	o.Clip()
}

// Set assigns a new value and clips it into bounds
func (o *Variable) Set(value float64) {
	o.Value = value
	o.Clip()
}

// Fix marks this variable as fixed, keeping the current value
func (o *Variable) Fix() {
	o.Fixed = true
}

// FixAt assigns a new value and marks this variable as fixed
func (o *Variable) FixAt(value float64) {
	o.Set(value)
	o.Fixed = true
}

// Unfix clears the fixed flag
func (o *Variable) Unfix() {
	o.Fixed = false
}

// Clip enforces bounds on the current value
func (o *Variable) Clip() {
	if !o.Bounded {
		return
	}
	if o.Value < o.Lo {
		o.Value = o.Lo
	}
	if o.Value > o.Up {
		o.Value = o.Up
	}
}
