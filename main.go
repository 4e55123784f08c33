// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gotherm solves the steady-state operating point of closed
// thermal-hydraulic networks. This command builds the reference boiling
// loop (mixer, downcomer, heated core channel, orifice, chimney,
// separator, turbine, condenser, pump, feedwater heater), solves for the
// core power that hits a target exit void fraction, and prints the result.
package main

import (
	"github.com/cpmech/gosl/io"

	"gotherm/ele"
	"gotherm/mdl/steam"
	"gotherm/sim"
)

func main() {

	// input arguments
	verbose := io.ArgToBool(0, true)
	maxit := io.ArgToInt(1, 60)
	alpha := io.ArgToFloat(2, 0.40)

	if verbose {
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"show iteration trace", "verbose", verbose,
			"iteration budget", "maxit", maxit,
			"target exit void fraction", "alpha", alpha,
		))
	}

	// representative pressures
	pReactor := 7.0e6 // [Pa]
	pCond := 1.0e5    // [Pa]

	// network with cached analytic steam properties
	nwk := sim.NewNetwork(steam.NewCached(steam.Analytic{}))

	// components
	mixer := ele.NewMixer("mixer")

	// downcomer drop equals the core plus chimney rise so the loop
	// elevation closes
	downcomer := ele.NewPipe("downcomer")
	downcomer.Geo.L, downcomer.Geo.D, downcomer.Geo.K, downcomer.Geo.Dz = 14.0, 1.2, 2.0, -14.0

	core := ele.NewCoreChannel("core")
	core.Geo.L, core.Geo.D, core.Geo.A, core.Geo.Dz = 4.0, 0.08, 0.30, 4.0
	core.Geo.K = 5.0
	core.Kbundle = 25.0
	core.Kgrid, core.Ngrids = 2.0, 6

	orifice := ele.NewOrificePlate("orifice")
	orifice.K, orifice.A = 50.0, 0.30

	chimney := ele.NewPipe("chimney")
	chimney.Geo.L, chimney.Geo.D, chimney.Geo.K, chimney.Geo.Dz = 10.0, 1.2, 2.0, 10.0

	// recovery loss kept below the buoyancy head of the loop
	separator := ele.NewSeparator("separator")
	separator.Dp = 5.0e3
	separator.Xvap, separator.Xliq = 0.995, 0.005

	turbine := ele.NewTurbine("turbine")
	turbine.EtaIs, turbine.Pout = 0.85, pCond

	condenser := ele.NewCondenser("condenser")
	condenser.Pout, condenser.Xout = pCond, 0.0

	pump := ele.NewPump("pump")
	pump.Eta, pump.Pout = 0.80, pReactor

	heater := ele.NewHeater("heater")
	heater.Tout = 540.0 // [K]

	for _, e := range []ele.Element{mixer, downcomer, core, orifice, chimney, separator, turbine, condenser, pump, heater} {
		nwk.AddElement(e)
	}

	// reactor loop
	nwk.Connect(mixer, "out", downcomer, "in", "c_mix_dc", 3000, pReactor, 1.2e6)
	nwk.Connect(downcomer, "out", core, "in", "c_dc_core", 3000, pReactor, 1.2e6)
	cCore, _ := nwk.Connect(core, "out", orifice, "in", "c_core_orif", 3000, pReactor-2e5, 1.35e6)
	nwk.Connect(orifice, "out", chimney, "in", "c_orif_chim", 3000, pReactor-4e5, 1.35e6)
	nwk.Connect(chimney, "out", separator, "in", "c_chim_sep", 3000, pReactor-6e5, 1.4e6)
	cLiq, _ := nwk.Connect(separator, "liq", mixer, "a", "c_sep_liq_mix", 2700, pReactor-8e5, 1.1e6)

	// steam cycle
	cVap, _ := nwk.Connect(separator, "vap", turbine, "in", "c_sep_vap_turb", 300, pReactor-8e5, 2.8e6)
	nwk.Connect(turbine, "out", condenser, "in", "c_turb_cond", 300, pCond, 2.2e6)
	cCond, _ := nwk.Connect(condenser, "out", pump, "in", "c_cond_pump", 300, pCond, 4.0e5)
	cPump, _ := nwk.Connect(pump, "out", heater, "in", "c_pump_heater", 300, pReactor, 4.5e5)
	nwk.Connect(heater, "out", mixer, "b", "c_heater_mix", 300, pReactor, 1.1e6)

	// boundary conditions: pressure anchors at condenser and pump outlets
	cCond.P.FixAt(pCond)
	cPump.P.FixAt(pReactor)

	// solve for the core power hitting the target exit void fraction
	core.SetExitVoidFraction(alpha, 1.0e8)

	io.Pf("%s\n", nwk.Summary())

	opts := sim.DefaultOptions()
	opts.MaxIt = maxit
	opts.Verbose = verbose
	res, err := nwk.Solve(opts)
	if err != nil {
		io.Pfred("configuration error: %v\n", err)
		return
	}

	io.Pf("\nstatus       = %v\n", res.Status)
	io.Pf("iterations   = %d\n", res.Iterations)
	io.Pf("residual     = %.3e\n", res.ResidualNorm)
	io.Pf("message      = %s\n", res.Message)
	if !res.Converged {
		io.Pfred("not converged\n")
		return
	}
	io.Pfgreen("converged\n\n")

	stm := nwk.Stm
	xOut := stm.Quality(cCore.P.Value, cCore.H.Value)
	aOut := stm.VoidFrac(cCore.P.Value, cCore.H.Value)
	io.Pf("core power          = %11.4e W\n", core.Power())
	io.Pf("core outlet quality = %8.4f\n", xOut)
	io.Pf("core outlet void    = %8.4f\n", aOut)
	io.Pf("steam to turbine    = %8.3f kg/s\n", cVap.M.Value)
	io.Pf("liquid return       = %8.3f kg/s\n", cLiq.M.Value)
	io.Pf("turbine shaft power = %11.4e W\n", turbine.ShaftPower())
	io.Pf("pump shaft power    = %11.4e W\n", pump.ShaftPower())
	io.Pf("heater heat added   = %11.4e W\n", heater.HeatAdded())
	io.Pf("condenser heat out  = %11.4e W\n", condenser.HeatRejected())
}
