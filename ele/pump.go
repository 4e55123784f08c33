// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"gotherm/mdl/steam"
)

// Pump raises the stream pressure with an efficiency:
//
//	h_out = h_in + (p_out - p_in)/(ρ_in·Eta)
//
// Ports: inlet "in", outlet "out". Specify exactly one of Pout (absolute
// outlet pressure) or Dp (pressure rise).
type Pump struct {
	Ports
	Eta  float64 // pump efficiency
	Pout float64 // outlet pressure [Pa]; zero = unset
	Dp   float64 // pressure rise [Pa]; zero = unset
}

// NewPump returns a new pump with a typical efficiency
func NewPump(name string) *Pump {
	return &Pump{Ports: NewPorts(name), Eta: 0.8}
}

// CheckConfig verifies ports and the outlet-pressure specification
func (o *Pump) CheckConfig() error {
	hasP := o.Pout > 0
	hasD := o.Dp > 0
	switch {
	case hasP && hasD:
		return &PrmError{Component: o.Cname, Prm: "Pout,Dp", Reason: "both given; specify exactly one"}
	case !hasP && !hasD:
		return &PrmError{Component: o.Cname, Prm: "Pout,Dp", Reason: "specify one"}
	}
	return o.checkPorts([]string{"in"}, []string{"out"})
}

// Eqs returns the residual equations
func (o *Pump) Eqs(stm steam.Props) (eqs []Equation, err error) {
	if err = o.CheckConfig(); err != nil {
		return
	}
	in, _ := o.In("in")
	out, _ := o.Out("out")

	m := in.M.Value
	pin := in.P.Value
	hin := in.H.Value

	pout := o.Pout
	if pout == 0 {
		pout = pin + o.Dp
	}

	rhoIn := stm.Rho(pin, hin)
	dh := (pout - pin) / math.Max(1e-9, rhoIn*o.Eta)
	hout := hin + dh

	eqs = append(eqs, Equation{o.Cname + ".mass", out.M.Value - m, scaleM(m)})
	eqs = append(eqs, Equation{o.Cname + ".p_out", out.P.Value - pout, scaleP(pout)})
	eqs = append(eqs, Equation{o.Cname + ".energy", out.H.Value - hout, scaleH(hout)})
	return
}

// ShaftPower returns the mechanical power absorbed [W]
func (o *Pump) ShaftPower() float64 {
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
