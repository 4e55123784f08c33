// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/io"

// default bounds for connection variables
var (
	defMbounds = [2]float64{1e-6, 1e9} // mass flow [kg/s]
	defPbounds = [2]float64{1e3, 1e9}  // pressure [Pa]
	defHbounds = [2]float64{1e3, 1e8}  // specific enthalpy [J/kg]
)

// Conn is a directed connection between an outlet port of one component and
// an inlet port of another, carrying the state of one flow stream:
//
//	M -- mass flow rate [kg/s]
//	P -- pressure [Pa]
//	H -- specific enthalpy [J/kg]
//
// Any of the three variables may be fixed independently to impose boundary
// conditions; e.g. c.P.FixAt(7e6) anchors pressure and leaves M and H free.
type Conn struct {
	Name string
	M    *Variable
	P    *Variable
	H    *Variable
}

// NewConn returns a new connection with initial guesses and default bounds
func NewConn(name string, mGuess, pGuess, hGuess float64) (o *Conn) {
	o = &Conn{
		Name: name,
		M:    NewVariable(name+".m", mGuess),
		P:    NewVariable(name+".p", pGuess),
		H:    NewVariable(name+".h", hGuess),
	}
	o.M.SetBounds(defMbounds[0], defMbounds[1])
	o.P.SetBounds(defPbounds[0], defPbounds[1])
	o.H.SetBounds(defHbounds[0], defHbounds[1])
	return
}

// Guess re-seeds all three values without touching the fixed flags
func (o *Conn) Guess(m, p, h float64) {
	o.M.Set(m)
	o.P.Set(p)
	o.H.Set(h)
}

// Fix fixes all three variables at their current values
func (o *Conn) Fix() {
	o.M.Fix()
	o.P.Fix()
	o.H.Fix()
}

// Vars returns the three state variables, in m, p, h order
func (o *Conn) Vars() []*Variable {
	return []*Variable{o.M, o.P, o.H}
}

// String returns a one-line report of the connection state
func (o *Conn) String() string {
	fx := func(v *Variable) string {
		if v.Fixed {
			return " (fixed)"
		}
		return ""
	}
	return io.Sf("%s: m=%.4g%s, p=%.4g%s, h=%.4g%s", o.Name,
		o.M.Value, fx(o.M), o.P.Value, fx(o.P), o.H.Value, fx(o.H))
}
