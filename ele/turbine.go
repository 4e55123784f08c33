// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "gotherm/mdl/steam"

// Turbine expands the stream with an isentropic efficiency:
//
//	h_out = h_in - EtaIs·(h_in - h_isentropic(p_out, s_in))
//
// Ports: inlet "in", outlet "out". Specify exactly one of Pout (absolute
// outlet pressure) or Pratio (p_out = Pratio·p_in).
type Turbine struct {
	Ports
	EtaIs  float64 // isentropic efficiency
	Pout   float64 // outlet pressure [Pa]; zero = unset
	Pratio float64 // outlet/inlet pressure ratio; zero = unset
}

// NewTurbine returns a new turbine with a typical efficiency
func NewTurbine(name string) *Turbine {
	return &Turbine{Ports: NewPorts(name), EtaIs: 0.85}
}

// CheckConfig verifies ports and the outlet-pressure specification
func (o *Turbine) CheckConfig() error {
	hasP := o.Pout > 0
	hasR := o.Pratio > 0
	switch {
	case hasP && hasR:
		return &PrmError{Component: o.Cname, Prm: "Pout,Pratio", Reason: "both given; specify exactly one"}
	case !hasP && !hasR:
		return &PrmError{Component: o.Cname, Prm: "Pout,Pratio", Reason: "specify one"}
	}
	return o.checkPorts([]string{"in"}, []string{"out"})
}

// Eqs returns the residual equations
func (o *Turbine) Eqs(stm steam.Props) (eqs []Equation, err error) {
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
		pout = o.Pratio * pin
	}

	sin := stm.SfromPH(pin, hin)
	hIs := stm.HfromPS(pout, sin)
	hout := hin - o.EtaIs*(hin-hIs)

	eqs = append(eqs, Equation{o.Cname + ".mass", out.M.Value - m, scaleM(m)})
	eqs = append(eqs, Equation{o.Cname + ".p_out", out.P.Value - pout, scaleP(pout)})
	eqs = append(eqs, Equation{o.Cname + ".energy", out.H.Value - hout, scaleH(hout)})
	return
}

// ShaftPower returns the mechanical power extracted [W]
func (o *Turbine) ShaftPower() float64 {
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
