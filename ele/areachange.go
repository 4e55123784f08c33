// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"gotherm/mdl/flow"
	"gotherm/mdl/steam"
)

// AreaChange is a sudden expansion or contraction, isenthalpic.
//
// Ports: inlet "in", outlet "out".
//
// Momentum: p_in - p_out = dp_form + dp_acc + dp_grav, with the
// acceleration term over different inlet/outlet areas, the form loss on
// the inlet velocity head and the gravity term on the inlet density.
type AreaChange struct {
	Ports
	Ain  float64 // inlet area [m²]
	Aout float64 // outlet area [m²]
	K    float64 // form loss coefficient on inlet velocity head
	Dz   float64 // elevation change [m]
}

// NewAreaChange returns a new area change with unit areas
func NewAreaChange(name string) *AreaChange {
	return &AreaChange{Ports: NewPorts(name), Ain: 1.0, Aout: 1.0}
}

// CheckConfig verifies ports and areas
func (o *AreaChange) CheckConfig() error {
	if o.Ain <= 0 || o.Aout <= 0 {
		return &PrmError{Component: o.Cname, Prm: "Ain,Aout", Reason: "must be positive"}
	}
	return o.checkPorts([]string{"in"}, []string{"out"})
}

// Eqs returns the residual equations
func (o *AreaChange) Eqs(stm steam.Props) (eqs []Equation, err error) {
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

	rhoIn := stm.Rho(pin, hin)
	rhoOut := stm.Rho(out.P.Value, out.H.Value)

	dpForm := flow.DpForm(m, rhoIn, o.K, o.Ain)
	dpAcc := flow.DpAccAreaChange(m, o.Ain, o.Aout, rhoIn, rhoOut)
	dpGrav := flow.DpGravity(rhoIn, o.Dz) // inlet density, not mid-state
	dpTotal := dpForm + dpAcc + dpGrav

	eqs = append(eqs, Equation{o.Cname + ".mass", out.M.Value - m, scaleM(m)})
	eqs = append(eqs, Equation{o.Cname + ".h_isenthalpic", out.H.Value - hin, scaleH(hin)})
	eqs = append(eqs, Equation{o.Cname + ".dp", (pin - out.P.Value) - dpTotal, scaleP(pin)})
	return
}
