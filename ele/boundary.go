// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "gotherm/mdl/steam"

// Source terminates an open branch at its upstream end, optionally pinning
// any of the outlet state values that were supplied.
//
// Ports: outlet "out".
type Source struct {
	Ports
	Mdot float64 // pinned mass flow [kg/s]
	P    float64 // pinned pressure [Pa]
	H    float64 // pinned enthalpy [J/kg]
	HasM bool    // pin Mdot
	HasP bool    // pin P
	HasH bool    // pin H
}

// NewSource returns a new source with nothing pinned
func NewSource(name string) *Source {
	return &Source{Ports: NewPorts(name)}
}

// SetMdot pins the outlet mass flow
func (o *Source) SetMdot(m float64) { o.Mdot, o.HasM = m, true }

// SetP pins the outlet pressure
func (o *Source) SetP(p float64) { o.P, o.HasP = p, true }

// SetH pins the outlet enthalpy
func (o *Source) SetH(h float64) { o.H, o.HasH = h, true }

// CheckConfig verifies ports
func (o *Source) CheckConfig() error {
	return o.checkPorts(nil, []string{"out"})
}

// Eqs returns the residual equations
func (o *Source) Eqs(stm steam.Props) (eqs []Equation, err error) {
	out, err := o.Out("out")
	if err != nil {
		return
	}
	if o.HasM {
		eqs = append(eqs, Equation{o.Cname + ".m_out", out.M.Value - o.Mdot, scaleM(o.Mdot)})
	}
	if o.HasP {
		eqs = append(eqs, Equation{o.Cname + ".p_out", out.P.Value - o.P, scaleP(o.P)})
	}
	if o.HasH {
		eqs = append(eqs, Equation{o.Cname + ".h_out", out.H.Value - o.H, scaleH(o.H)})
	}
	return
}

// Sink terminates an open branch at its downstream end, optionally pinning
// inlet pressure and/or enthalpy.
//
// Ports: inlet "in".
type Sink struct {
	Ports
	P    float64 // pinned pressure [Pa]
	H    float64 // pinned enthalpy [J/kg]
	HasP bool    // pin P
	HasH bool    // pin H
}

// NewSink returns a new sink with nothing pinned
func NewSink(name string) *Sink {
	return &Sink{Ports: NewPorts(name)}
}

// SetP pins the inlet pressure
func (o *Sink) SetP(p float64) { o.P, o.HasP = p, true }

// SetH pins the inlet enthalpy
func (o *Sink) SetH(h float64) { o.H, o.HasH = h, true }

// CheckConfig verifies ports
func (o *Sink) CheckConfig() error {
	return o.checkPorts([]string{"in"}, nil)
}

// Eqs returns the residual equations
func (o *Sink) Eqs(stm steam.Props) (eqs []Equation, err error) {
	in, err := o.In("in")
	if err != nil {
		return
	}
	if o.HasP {
		eqs = append(eqs, Equation{o.Cname + ".p_in", in.P.Value - o.P, scaleP(o.P)})
	}
	if o.HasH {
		eqs = append(eqs, Equation{o.Cname + ".h_in", in.H.Value - o.H, scaleH(o.H)})
	}
	return
}
