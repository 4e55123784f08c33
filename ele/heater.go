// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "gotherm/mdl/steam"

// Heater enforces an outlet temperature or an outlet enthalpy with a fixed
// pressure drop. A boundary-like closure; the added heat is a result.
//
// Ports: inlet "in", outlet "out". Specify exactly one of Tout or Hout.
type Heater struct {
	Ports
	Dp   float64 // inlet-to-outlet pressure drop [Pa]
	Tout float64 // outlet temperature [K]; zero = unset
	Hout float64 // outlet enthalpy [J/kg]; zero = unset
}

// NewHeater returns a new, still unparameterized heater
func NewHeater(name string) *Heater {
	return &Heater{Ports: NewPorts(name)}
}

// CheckConfig verifies ports and the outlet specification
func (o *Heater) CheckConfig() error {
	hasT := o.Tout > 0
	hasH := o.Hout > 0
	switch {
	case hasT && hasH:
		return &PrmError{Component: o.Cname, Prm: "Tout,Hout", Reason: "both given; specify exactly one"}
	case !hasT && !hasH:
		return &PrmError{Component: o.Cname, Prm: "Tout,Hout", Reason: "specify one"}
	}
	return o.checkPorts([]string{"in"}, []string{"out"})
}

// Eqs returns the residual equations
func (o *Heater) Eqs(stm steam.Props) (eqs []Equation, err error) {
	if err = o.CheckConfig(); err != nil {
		return
	}
	in, _ := o.In("in")
	out, _ := o.Out("out")

	m := in.M.Value
	pout := in.P.Value - o.Dp
	hTarget := o.Hout
	if hTarget == 0 {
		hTarget = stm.HfromPT(pout, o.Tout)
	}

	eqs = append(eqs, Equation{o.Cname + ".mass", out.M.Value - m, scaleM(m)})
	eqs = append(eqs, Equation{o.Cname + ".p_out", out.P.Value - pout, scaleP(pout)})
	eqs = append(eqs, Equation{o.Cname + ".h_out", out.H.Value - hTarget, scaleH(hTarget)})
	return
}

// HeatAdded returns m·(h_out - h_in) [W]
func (o *Heater) HeatAdded() float64 {
	in, err := o.In("in")
	if err != nil {
		return 0
	}
	out, err := o.Out("out")
	if err != nil {
		return 0
	}
	return in.M.Value * (out.H.Value - in.H.Value)
}
