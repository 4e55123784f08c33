// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"gotherm/mdl/flow"
	"gotherm/mdl/steam"
)

// Pipe is a 1-in/1-out adiabatic-or-heated pipe: steady-state integral
// momentum over a lumped 0-D element, two-phase aware through mixture
// properties from (p,h).
//
// Ports: inlet "in", outlet "out".
//
// Equations:
//   mass    m_out = m_in
//   energy  h_out = h_in + Q/m (Q=0: adiabatic)
//   dp      p_in - p_out = friction + form + gravity [+ acceleration]
type Pipe struct {
	Ports
	Geo flow.Geometry // duct geometry and loss parameters
	Q   float64       // heat added to the fluid [W]
}

// NewPipe returns a new pipe with the default geometry
func NewPipe(name string) *Pipe {
	return &Pipe{
		Ports: NewPorts(name),
		Geo:   flow.Geometry{L: 1.0, D: 0.1, Eps: 1e-5},
	}
}

// CheckConfig verifies ports and parameters
func (o *Pipe) CheckConfig() error {
	if o.Geo.L <= 0 || o.Geo.D <= 0 {
		return &PrmError{Component: o.Cname, Prm: "L,D", Reason: "must be positive"}
	}
	return o.checkPorts([]string{"in"}, []string{"out"})
}

// Eqs returns the residual equations
func (o *Pipe) Eqs(stm steam.Props) (eqs []Equation, err error) {
	in, err := o.In("in")
	if err != nil {
		return
	}
	out, err := o.Out("out")
	if err != nil {
		return
	}

	m := in.M.Value
	pin := in.P.Value
	hin := in.H.Value

	// mass
	eqs = append(eqs, Equation{o.Cname + ".mass", out.M.Value - m, scaleM(m)})

	// energy
	var dh float64
	if math.Abs(m) > 1e-9 {
		dh = o.Q / m
	}
	hTarget := hin + dh
	eqs = append(eqs, Equation{o.Cname + ".energy", out.H.Value - hTarget, scaleH(hTarget)})

	// momentum
	dp := flow.Dp(stm, o.Geo, m, pin, hin, out.P.Value, out.H.Value)
	eqs = append(eqs, Equation{o.Cname + ".dp", (pin - out.P.Value) - dp.Total(), scaleP(pin)})
	return
}
