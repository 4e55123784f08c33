// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "gotherm/mdl/steam"

// Separator is a steam separator / phase splitter.
//
// Ports: inlet "in", outlets "vap" and "liq".
//
// Both outlets share the pressure p_in - Dp. The outlet enthalpies are
// pinned to target qualities representing separation efficiency (vapor
// close to 1, liquid close to 0). Mass and energy balances determine the
// unknown split of the inlet flow.
type Separator struct {
	Ports
	Dp   float64 // inlet-to-outlet pressure drop [Pa]
	Xvap float64 // vapor-outlet quality target
	Xliq float64 // liquid-outlet quality target
}

// NewSeparator returns a new separator with near-ideal split targets
func NewSeparator(name string) *Separator {
	return &Separator{Ports: NewPorts(name), Xvap: 0.999, Xliq: 0.001}
}

// CheckConfig verifies ports and split targets
func (o *Separator) CheckConfig() error {
	if o.Xvap <= o.Xliq {
		return &PrmError{Component: o.Cname, Prm: "Xvap,Xliq", Reason: "vapor target must exceed liquid target"}
	}
	return o.checkPorts([]string{"in"}, []string{"vap", "liq"})
}

// Eqs returns the residual equations
func (o *Separator) Eqs(stm steam.Props) (eqs []Equation, err error) {
	in, err := o.In("in")
	if err != nil {
		return
	}
	vap, err := o.Out("vap")
	if err != nil {
		return
	}
	liq, err := o.Out("liq")
	if err != nil {
		return
	}

	mIn := in.M.Value
	pOut := in.P.Value - o.Dp

	hv := stm.HfromPX(pOut, o.Xvap)
	hl := stm.HfromPX(pOut, o.Xliq)

	eqs = append(eqs, Equation{o.Cname + ".p_vap", vap.P.Value - pOut, scaleP(pOut)})
	eqs = append(eqs, Equation{o.Cname + ".p_liq", liq.P.Value - pOut, scaleP(pOut)})
	eqs = append(eqs, Equation{o.Cname + ".h_vap", vap.H.Value - hv, scaleH(hv)})
	eqs = append(eqs, Equation{o.Cname + ".h_liq", liq.H.Value - hl, scaleH(hl)})

	eqs = append(eqs, Equation{o.Cname + ".mass", mIn - (vap.M.Value + liq.M.Value), scaleM(mIn)})
	eIn := mIn * in.H.Value
	eOut := vap.M.Value*vap.H.Value + liq.M.Value*liq.H.Value
	eqs = append(eqs, Equation{o.Cname + ".energy", eIn - eOut, scaleE(eIn)})
	return
}
