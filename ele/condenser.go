// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "gotherm/mdl/steam"

// Condenser pins its outlet to a specified quality (default saturated
// liquid). A thermodynamic boundary-like closure; the rejected heat is a
// result, not an input.
//
// Ports: inlet "in", outlet "out". Outlet pressure is Pout when set,
// otherwise p_in - Dp.
type Condenser struct {
	Ports
	Dp   float64 // pressure drop when Pout unset [Pa]
	Xout float64 // outlet quality target
	Pout float64 // outlet pressure [Pa]; zero = use p_in - Dp
}

// NewCondenser returns a new condenser targeting saturated liquid
func NewCondenser(name string) *Condenser {
	return &Condenser{Ports: NewPorts(name)}
}

// CheckConfig verifies ports
func (o *Condenser) CheckConfig() error {
	return o.checkPorts([]string{"in"}, []string{"out"})
}

// Eqs returns the residual equations
func (o *Condenser) Eqs(stm steam.Props) (eqs []Equation, err error) {
	in, err := o.In("in")
	if err != nil {
		return
	}
	out, err := o.Out("out")
	if err != nil {
		return
	}

	m := in.M.Value
	pout := o.Pout
	if pout == 0 {
		pout = in.P.Value - o.Dp
	}
	hout := stm.HfromPX(pout, o.Xout)

	eqs = append(eqs, Equation{o.Cname + ".mass", out.M.Value - m, scaleM(m)})
	eqs = append(eqs, Equation{o.Cname + ".p_out", out.P.Value - pout, scaleP(pout)})
	eqs = append(eqs, Equation{o.Cname + ".h_out", out.H.Value - hout, scaleH(hout)})
	return
}

// HeatRejected returns m·(h_in - h_out) [W]
func (o *Condenser) HeatRejected() float64 {
	in, err := o.In("in")
	if err != nil {
		return 0
	}
	out, err := o.Out("out")
	if err != nil {
		return 0
	}
	return in.M.Value * (in.H.Value - out.H.Value)
}
