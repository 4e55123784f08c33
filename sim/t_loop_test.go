// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"gotherm/ele"
	"gotherm/mdl/steam"
)

// loopRig bundles the closed boiling loop used by the end-to-end tests
type loopRig struct {
	nwk   *Network
	core  *ele.CoreChannel
	trb   *ele.Turbine
	pmp   *ele.Pump
	htr   *ele.Heater
	cnd   *ele.Condenser
	sep   *ele.Separator
	cCore *ele.Conn // core outlet
	cSep  *ele.Conn // separator inlet
	cVap  *ele.Conn // vapor to turbine
	cLiq  *ele.Conn // liquid return to mixer
	cDc   *ele.Conn // downcomer outlet (core inlet)
}

// buildLoop wires the natural-circulation boiling loop: mixer, downcomer,
// heated core, orifice, chimney, separator, then the steam cycle back
// through turbine, condenser, pump and feedwater heater
func buildLoop() (rig loopRig) {

	pReactor := 7.0e6
	pCond := 1.0e5

	rig.nwk = NewNetwork(steam.NewCached(steam.Analytic{}))

	mixer := ele.NewMixer("mixer")

	// the downcomer drop matches the core plus chimney rise, so the loop
	// elevation closes and the buoyancy head drives the circulation
	downcomer := ele.NewPipe("downcomer")
	downcomer.Geo.L, downcomer.Geo.D, downcomer.Geo.K, downcomer.Geo.Dz = 7.0, 1.0, 1.0, -7.0

	rig.core = ele.NewCoreChannel("core")
	rig.core.Geo.L, rig.core.Geo.D, rig.core.Geo.A, rig.core.Geo.Dz = 2.0, 0.05, 0.1, 2.0
	rig.core.Geo.K = 2.0
	rig.core.Kbundle = 10.0

	orifice := ele.NewOrificePlate("orifice")
	orifice.K, orifice.A = 10.0, 0.1

	chimney := ele.NewPipe("chimney")
	chimney.Geo.L, chimney.Geo.D, chimney.Geo.K, chimney.Geo.Dz = 5.0, 1.0, 1.0, 5.0

	// the recovery loss must stay below the available buoyancy head
	// (a few kPa here), otherwise the pressure closure has no solution
	rig.sep = ele.NewSeparator("separator")
	rig.sep.Dp = 2e3
	rig.sep.Xvap, rig.sep.Xliq = 0.99, 0.01

	rig.trb = ele.NewTurbine("turbine")
	rig.trb.EtaIs, rig.trb.Pout = 0.85, pCond

	rig.cnd = ele.NewCondenser("condenser")
	rig.cnd.Pout, rig.cnd.Xout = pCond, 0.0

	rig.pmp = ele.NewPump("pump")
	rig.pmp.Eta, rig.pmp.Pout = 0.8, pReactor

	rig.htr = ele.NewHeater("heater")
	rig.htr.Tout = 520.0

	for _, e := range []ele.Element{mixer, downcomer, rig.core, orifice, chimney, rig.sep, rig.trb, rig.cnd, rig.pmp, rig.htr} {
		rig.nwk.AddElement(e)
	}

	rig.nwk.Connect(mixer, "out", downcomer, "in", "c_mix_dc", 1000, pReactor, 1.2e6)
	rig.cDc, _ = rig.nwk.Connect(downcomer, "out", rig.core, "in", "c_dc_core", 1000, pReactor, 1.2e6)
	rig.cCore, _ = rig.nwk.Connect(rig.core, "out", orifice, "in", "c_core_orif", 1000, pReactor-1e5, 1.3e6)
	rig.nwk.Connect(orifice, "out", chimney, "in", "c_orif_chim", 1000, pReactor-2e5, 1.3e6)
	rig.cSep, _ = rig.nwk.Connect(chimney, "out", rig.sep, "in", "c_chim_sep", 1000, pReactor-3e5, 1.3e6)
	rig.cLiq, _ = rig.nwk.Connect(rig.sep, "liq", mixer, "a", "c_liq_mix", 900, pReactor-4e5, 1.2e6)
	rig.cVap, _ = rig.nwk.Connect(rig.sep, "vap", rig.trb, "in", "c_vap_turb", 100, pReactor-4e5, 3.2e6)
	rig.nwk.Connect(rig.trb, "out", rig.cnd, "in", "c_turb_cond", 100, pCond, 2.4e6)
	cCond, _ := rig.nwk.Connect(rig.cnd, "out", rig.pmp, "in", "c_cond_pump", 100, pCond, 4.4e5)
	cPump, _ := rig.nwk.Connect(rig.pmp, "out", rig.htr, "in", "c_pump_heater", 100, pReactor, 4.5e5)
	rig.nwk.Connect(rig.htr, "out", mixer, "b", "c_heater_mix", 100, pReactor, 1.1e6)

	// pressure anchors
	cCond.P.FixAt(1.0e5)
	cPump.P.FixAt(7.0e6)
	return
}

func Test_loop01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loop01. boiling loop with exit void target")

	rig := buildLoop()
	rig.core.SetExitVoidFraction(0.4, 5e7)

	opts := DefaultOptions()
	opts.Tol = 1e-6
	opts.Verbose = chk.Verbose
	res, err := rig.nwk.Solve(opts)
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	if chk.Verbose {
		io.Pf("status=%v it=%d |F|=%.3e\n", res.Status, res.Iterations, res.ResidualNorm)
	}
	if !res.Converged {
		tst.Errorf("loop must converge: %v (%s)\n", res.Status, res.Message)
		return
	}

	stm := rig.nwk.Stm

	// the solved duty is positive and hits the void target
	if rig.core.Power() <= 0 {
		tst.Errorf("core power must be positive; got %v\n", rig.core.Power())
	}
	chk.Float64(tst, "exit void", 1e-4, stm.VoidFrac(rig.cCore.P.Value, rig.cCore.H.Value), 0.4)

	// boiling, not dryout: core exit quality inside the dome
	x := stm.Quality(rig.cCore.P.Value, rig.cCore.H.Value)
	if x <= 0 || x >= 1 {
		tst.Errorf("core exit quality must be two-phase; got %v\n", x)
	}

	// separator split conserves mass, and only part of the circulation
	// leaves as steam
	chk.Float64(tst, "split mass", 1e-2, rig.cVap.M.Value+rig.cLiq.M.Value, rig.cSep.M.Value)
	if rig.cVap.M.Value <= 0 || rig.cVap.M.Value >= rig.cLiq.M.Value {
		tst.Errorf("steam flow must be a small positive fraction: mv=%v ml=%v\n",
			rig.cVap.M.Value, rig.cLiq.M.Value)
	}
	if rig.cLiq.M.Value >= rig.cDc.M.Value {
		tst.Errorf("liquid return must be below the circulation flow\n")
	}

	// the cycle moves energy in the right directions
	if rig.trb.ShaftPower() <= 0 {
		tst.Errorf("turbine must extract work; got %v\n", rig.trb.ShaftPower())
	}
	if rig.pmp.ShaftPower() <= 0 {
		tst.Errorf("pump must absorb work; got %v\n", rig.pmp.ShaftPower())
	}
	if rig.htr.HeatAdded() <= 0 {
		tst.Errorf("heater must add heat; got %v\n", rig.htr.HeatAdded())
	}
	if rig.cnd.HeatRejected() <= 0 {
		tst.Errorf("condenser must reject heat; got %v\n", rig.cnd.HeatRejected())
	}
}

func Test_loop02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loop02. boiling loop with prescribed power")

	rig := buildLoop()
	rig.core.SetPower(8e6)

	opts := DefaultOptions()
	opts.Tol = 1e-6
	opts.Verbose = chk.Verbose
	res, err := rig.nwk.Solve(opts)
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	if !res.Converged {
		tst.Errorf("loop must converge: %v (%s)\n", res.Status, res.Message)
		return
	}

	stm := rig.nwk.Stm

	// with the duty prescribed the void fraction is a result
	alpha := stm.VoidFrac(rig.cCore.P.Value, rig.cCore.H.Value)
	if alpha <= 0 || alpha >= 1 {
		tst.Errorf("exit void fraction must be two-phase; got %v\n", alpha)
	}
	chk.Float64(tst, "power unchanged", 1e-17, rig.core.Power(), 8e6)

	// steam production scales with the duty through the energy balance
	if rig.cVap.M.Value <= 0 {
		tst.Errorf("steam flow must be positive; got %v\n", rig.cVap.M.Value)
	}
	chk.Float64(tst, "split mass", 1e-2, rig.cVap.M.Value+rig.cLiq.M.Value, rig.cSep.M.Value)
}

func Test_loop03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loop03. separator recovery beyond the buoyancy head")

	// ask the separator for more pressure recovery than gravity can
	// supply around the loop. there is no operating point and the
	// solver must report failure instead of a spurious answer
	rig := buildLoop()
	rig.sep.Dp = 1e5
	rig.core.SetExitVoidFraction(0.4, 5e7)

	opts := DefaultOptions()
	opts.Tol = 1e-6
	res, err := rig.nwk.Solve(opts)
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	if res.Converged {
		tst.Errorf("infeasible loop must not converge: %v\n", res.Status)
	}
	if res.Status == Converged {
		tst.Errorf("status must flag the failure; got %v\n", res.Status)
	}
}
