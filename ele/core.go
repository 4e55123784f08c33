// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"gotherm/mdl/flow"
	"gotherm/mdl/steam"
)

// CoreChannel is a boiling heated channel: heat input plus two-phase-aware
// pressure drop with bundle and spacer-grid lumped losses.
//
// Ports: inlet "in", outlet "out".
//
// The channel operates in one of two modes:
//
//	fixed power   -- SetPower(Q) fixes the internal heat-duty variable and
//	                 drops the void-fraction equation
//	target void   -- SetExitVoidFraction(alpha, Qguess) frees the duty and
//	                 adds an equation driving the outlet void fraction to
//	                 the target
//
// Switching is caller-driven and takes effect on the next Eqs call.
type CoreChannel struct {
	Ports
	Geo     flow.Geometry // base duct geometry (Geo.K = base form losses)
	Kbundle float64       // pin-bundle friction as lumped K
	Kgrid   float64       // per-spacer-grid form loss
	Ngrids  int           // number of spacer grids

	alphaTarget float64   // exit void-fraction target (target-void mode)
	targetVoid  bool      // mode flag
	qvar        *Variable // heat input [W]
}

// NewCoreChannel returns a new heated channel in fixed-power mode. The
// heat-duty variable is allocated fresh per instance.
func NewCoreChannel(name string) (o *CoreChannel) {
	o = &CoreChannel{
		Ports: NewPorts(name),
		Geo:   flow.Geometry{L: 4.0, D: 0.08, A: 0.30, Eps: 1e-5, Dz: 4.0},
		qvar:  NewVariable(name+".Q", 1e8),
	}
	o.qvar.SetBounds(-1e12, 1e12)
	o.qvar.Fix()
	return
}

// SetPower fixes the heat duty [W] and switches to fixed-power mode
func (o *CoreChannel) SetPower(Q float64) {
	o.qvar.FixAt(Q)
	o.targetVoid = false
}

// SetExitVoidFraction switches to target-void mode: the duty becomes a
// free unknown re-seeded at Qguess and the outlet void fraction is driven
// to alpha
func (o *CoreChannel) SetExitVoidFraction(alpha, Qguess float64) {
	o.alphaTarget = alpha
	o.qvar.Set(Qguess)
	o.qvar.Unfix()
	o.targetVoid = true
}

// Power returns the current heat duty [W]
func (o *CoreChannel) Power() float64 { return o.qvar.Value }

// Vars returns the internal heat-duty variable
func (o *CoreChannel) Vars() []*Variable { return []*Variable{o.qvar} }

// CheckConfig verifies ports and parameters
func (o *CoreChannel) CheckConfig() error {
	if o.Geo.L <= 0 || o.Geo.D <= 0 {
		return &PrmError{Component: o.Cname, Prm: "L,D", Reason: "must be positive"}
	}
	if o.targetVoid && (o.alphaTarget < 0 || o.alphaTarget > 1) {
		return &PrmError{Component: o.Cname, Prm: "alpha", Reason: "must be within [0,1]"}
	}
	return o.checkPorts([]string{"in"}, []string{"out"})
}

// Eqs returns the residual equations
func (o *CoreChannel) Eqs(stm steam.Props) (eqs []Equation, err error) {
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

	// energy: the duty adds enthalpy
	var dh float64
	if math.Abs(m) > 1e-9 {
		dh = o.qvar.Value / m
	}
	hTarget := hin + dh
	eqs = append(eqs, Equation{o.Cname + ".energy", out.H.Value - hTarget, scaleH(hTarget)})

	// momentum with bundle and grid losses lumped into K
	geo := o.Geo
	geo.K += o.Kbundle + float64(o.Ngrids)*o.Kgrid
	dp := flow.Dp(stm, geo, m, pin, hin, out.P.Value, out.H.Value)
	eqs = append(eqs, Equation{o.Cname + ".dp", (pin - out.P.Value) - dp.Total(), scaleP(pin)})

	// exit void-fraction target
	if o.targetVoid {
		alpha := stm.VoidFrac(out.P.Value, out.H.Value)
		scl := o.alphaTarget
		if scl < 1e-2 {
			scl = 1e-2
		}
		eqs = append(eqs, Equation{o.Cname + ".alpha", alpha - o.alphaTarget, scl})
	}
	return
}
