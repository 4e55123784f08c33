// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"sort"

	"gotherm/mdl/steam"
)

// Mixer merges two or more inlet streams into one outlet with pressure
// equalization between the outlet and every inlet, and flow-weighted
// mixing enthalpy.
//
// Ports: outlet "out"; inlets carry caller-chosen names.
type Mixer struct {
	Ports
}

// NewMixer returns a new mixer
func NewMixer(name string) *Mixer {
	return &Mixer{Ports: NewPorts(name)}
}

// CheckConfig verifies that at least two inlets and the outlet are connected
func (o *Mixer) CheckConfig() error {
	if len(o.Inlets) < 2 {
		return &PrmError{Component: o.Cname, Prm: "inlets", Reason: "needs at least two inlets"}
	}
	return o.checkPorts(nil, []string{"out"})
}

// Eqs returns the residual equations
func (o *Mixer) Eqs(stm steam.Props) (eqs []Equation, err error) {
	if err = o.CheckConfig(); err != nil {
		return
	}
	out, _ := o.Out("out")

	// sorted inlet port names keep the equation order deterministic
	ports := make([]string, 0, len(o.Inlets))
	for port := range o.Inlets {
		ports = append(ports, port)
	}
	sort.Strings(ports)

	var mSum, eSum float64
	for _, port := range ports {
		in := o.Inlets[port]
		eqs = append(eqs, Equation{o.Cname + ".p_eq_" + port, out.P.Value - in.P.Value, scaleP(out.P.Value)})
		mSum += in.M.Value
		eSum += in.M.Value * in.H.Value
	}

	eqs = append(eqs, Equation{o.Cname + ".mass", out.M.Value - mSum, scaleM(mSum)})
	eqs = append(eqs, Equation{o.Cname + ".energy", out.M.Value*out.H.Value - eSum, scaleE(eSum)})
	return
}
