// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"gotherm/mdl/flow"
	"gotherm/mdl/steam"
)

// OrificePlate is an isenthalpic flow restriction.
//
// Ports: inlet "in", outlet "out".
//
// Exactly one of two momentum models must be parameterized:
//
//	K-loss     -- K > 0 (requires A): dp = K·G²/(2ρ)
//	discharge  -- Cd > 0 (requires A): dp = v²ρ/(2Cd²) with v = m/(ρA)
//
// An optional elevation term ρ·g·Δz is added on top. The isenthalpic drop
// flashes the stream if the saturation line is crossed downstream.
type OrificePlate struct {
	Ports
	K  float64 // loss coefficient; zero = K model unset
	Cd float64 // discharge coefficient; zero = discharge model unset
	A  float64 // flow area [m²]
	Dz float64 // elevation change [m]
}

// NewOrificePlate returns a new, still unparameterized orifice
func NewOrificePlate(name string) *OrificePlate {
	return &OrificePlate{Ports: NewPorts(name)}
}

// CheckConfig verifies that exactly one momentum model is parameterized
func (o *OrificePlate) CheckConfig() error {
	hasK := o.K > 0
	hasCd := o.Cd > 0
	switch {
	case hasK && hasCd:
		return &PrmError{Component: o.Cname, Prm: "K,Cd", Reason: "both momentum models given; specify exactly one"}
	case !hasK && !hasCd:
		return &PrmError{Component: o.Cname, Prm: "K,Cd", Reason: "no momentum model given; specify exactly one"}
	case o.A <= 0:
		return &PrmError{Component: o.Cname, Prm: "A", Reason: "must be positive"}
	}
	return o.checkPorts([]string{"in"}, []string{"out"})
}

// Eqs returns the residual equations
func (o *OrificePlate) Eqs(stm steam.Props) (eqs []Equation, err error) {
	if err = o.CheckConfig(); err != nil {
		return
	}
	in, _ := o.In("in")
	out, _ := o.Out("out")

	m := in.M.Value
	pin := in.P.Value
	hin := in.H.Value
	rho := stm.Rho(pin, hin)

	var dp float64
	if o.K > 0 {
		G := m / o.A
		dp = o.K * G * G / (2.0 * rho)
	} else {
		v := m / (rho * o.A)
		dp = v * v * rho / (2.0 * o.Cd * o.Cd)
	}
	dp += flow.DpGravity(rho, o.Dz)

	eqs = append(eqs, Equation{o.Cname + ".mass", out.M.Value - m, scaleM(m)})
	eqs = append(eqs, Equation{o.Cname + ".h_isenthalpic", out.H.Value - hin, scaleH(hin)})
	eqs = append(eqs, Equation{o.Cname + ".dp", (pin - out.P.Value) - dp, scaleP(pin)})
	return
}
