// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steam

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func Test_steam01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("steam01. saturation line")

	stm := Analytic{}

	// anchor point: 1 bar boils at 373.15 K
	chk.Float64(tst, "Tsat(1bar)", 1e-10, stm.Tsat(1e5), 373.15)

	// monotone in pressure
	if stm.Tsat(7e6) <= stm.Tsat(1e5) {
		tst.Errorf("Tsat must grow with pressure\n")
	}

	// latent heat shrinks towards the critical point
	hl1, hv1 := stm.SatHlv(1e5)
	hl2, hv2 := stm.SatHlv(7e6)
	if hv2-hl2 >= hv1-hl1 {
		tst.Errorf("latent heat must shrink with pressure\n")
	}

	// saturated densities bracket the mixture
	rl, rv := stm.SatRholv(7e6)
	if rv >= rl {
		tst.Errorf("vapor must be lighter than liquid: rl=%v rv=%v\n", rl, rv)
	}
	rmix := stm.RhoPX(7e6, 0.3)
	if rmix <= rv || rmix >= rl {
		tst.Errorf("mixture density must be bracketed: rv=%v rmix=%v rl=%v\n", rv, rmix, rl)
	}

	// surface tension positive and decaying with pressure
	if stm.Sigma(1e5) <= 0 || stm.Sigma(7e6) >= stm.Sigma(1e5) {
		tst.Errorf("sigma must be positive and decay with pressure\n")
	}

	// liquid is more viscous and more conductive than vapor
	ml, mv := stm.SatMulv(7e6)
	kl, kv := stm.SatKlv(7e6)
	if ml <= mv || kl <= kv {
		tst.Errorf("liquid transport properties must exceed vapor ones\n")
	}
	cl, cv := stm.SatCplv(7e6)
	if cl <= 0 || cv <= 0 {
		tst.Errorf("heat capacities must be positive\n")
	}
}

func Test_steam02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("steam02. h-T-x roundtrips")

	stm := Analytic{}
	p := 7e6
	Ts := stm.Tsat(p)
	hl, hv := stm.SatHlv(p)

	// liquid: T -> h -> T
	chk.Float64(tst, "liquid T roundtrip", 1e-9, stm.TfromPH(p, stm.HfromPT(p, 500.0)), 500.0)

	// superheated vapor: T -> h -> T
	chk.Float64(tst, "vapor T roundtrip", 1e-9, stm.TfromPH(p, stm.HfromPT(p, Ts+100.0)), Ts+100.0)

	// inside the dome the temperature sits on the saturation line
	chk.Float64(tst, "dome T", 1e-12, stm.TfromPH(p, 0.5*(hl+hv)), Ts)

	// quality roundtrip
	for _, x := range utl.LinSpace(0.1, 0.9, 5) {
		chk.Float64(tst, "x roundtrip", 1e-12, stm.Quality(p, stm.HfromPX(p, x)), x)
	}

	// quality clips outside the dome
	chk.Float64(tst, "x subcooled", 1e-17, stm.Quality(p, hl-1e5), 0.0)
	chk.Float64(tst, "x superheated", 1e-17, stm.Quality(p, hv+1e5), 1.0)
	chk.Float64(tst, "HfromPX clip", 1e-9, stm.HfromPX(p, 1.7), hv)
}

func Test_steam03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("steam03. entropy inversion in all three regions")

	stm := Analytic{}
	p := 6.6e6
	hl, hv := stm.SatHlv(p)

	// HfromPS must invert SfromPH: subcooled, two-phase, superheated
	for _, h := range []float64{hl - 4e5, hl + 0.3*(hv-hl), hv + 4e5} {
		s := stm.SfromPH(p, h)
		chk.Float64(tst, "h(s(h))", 1e-4, stm.HfromPS(p, s), h)
	}

	// entropy grows with enthalpy
	s1 := stm.SfromPH(p, hl)
	s2 := stm.SfromPH(p, 0.5*(hl+hv))
	s3 := stm.SfromPH(p, hv)
	if s2 <= s1 || s3 <= s2 {
		tst.Errorf("entropy must grow with enthalpy: %v %v %v\n", s1, s2, s3)
	}

	// isentropic expansion to a lower pressure drops enthalpy
	sIn := stm.SfromPH(p, hv)
	hExp := stm.HfromPS(1e5, sIn)
	if hExp >= hv {
		tst.Errorf("isentropic expansion must drop enthalpy: %v >= %v\n", hExp, hv)
	}
}

func Test_steam04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("steam04. mixture properties")

	stm := Analytic{}
	p := 7e6
	hl, hv := stm.SatHlv(p)

	// void fraction: clipped outside the dome, monotone inside
	chk.Float64(tst, "alpha subcooled", 1e-17, stm.VoidFrac(p, hl-1e5), 0.0)
	chk.Float64(tst, "alpha superheated", 1e-17, stm.VoidFrac(p, hv+1e5), 1.0)
	prev := 0.0
	for _, x := range utl.LinSpace(0.05, 0.95, 10) {
		a := stm.VoidFrac(p, stm.HfromPX(p, x))
		if a <= prev || a >= 1.0 {
			tst.Errorf("void fraction must grow strictly within (0,1): x=%v alpha=%v\n", x, a)
			return
		}
		prev = a
	}

	// low-pressure steam: small quality already dominates the volume
	if stm.VoidFrac(1e5, stm.HfromPX(1e5, 0.1)) < 0.9 {
		tst.Errorf("at 1 bar a 10%% quality must give >90%% void\n")
	}

	// density follows the phase
	if stm.Rho(p, hl-2e5) < 500 {
		tst.Errorf("subcooled density too low: %v\n", stm.Rho(p, hl-2e5))
	}
	rho2p := stm.Rho(p, stm.HfromPX(p, 0.3))
	chk.Float64(tst, "rho two-phase", 1e-10, rho2p, stm.RhoPX(p, 0.3))

	// viscosity and conductivity interpolate between the phases
	ml, mv := stm.SatMulv(p)
	mu2p := stm.Mu(p, stm.HfromPX(p, 0.3))
	if mu2p <= mv || mu2p >= ml {
		tst.Errorf("two-phase viscosity must be bracketed: %v\n", mu2p)
	}
	kl, kv := stm.SatKlv(p)
	k2p := stm.Kcond(p, stm.HfromPX(p, 0.3))
	if k2p <= kv || k2p >= kl {
		tst.Errorf("two-phase conductivity must be bracketed: %v\n", k2p)
	}

	// cp: saturated-liquid value inside the dome
	cl, _ := stm.SatCplv(p)
	chk.Float64(tst, "cp two-phase", 1e-10, stm.Cp(p, stm.HfromPX(p, 0.3)), cl)
}

func Test_steamcache01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("steamcache01. cached backend equivalence")

	base := Analytic{}
	cached := NewCached(base)

	states := [][]float64{
		{7e6, 1.0e6},
		{7e6, 1.9e6},
		{6.6e6, 3.2e6},
		{1e5, 4.2e5},
		{1e5, 2.4e6},
	}

	// two passes: cold misses then warm hits must agree with the backend
	for pass := 0; pass < 2; pass++ {
		for _, st := range states {
			p, h := st[0], st[1]
			chk.Float64(tst, "Tsat", 1e-15, cached.Tsat(p), base.Tsat(p))
			chk.Float64(tst, "Sigma", 1e-15, cached.Sigma(p), base.Sigma(p))
			chk.Float64(tst, "TfromPH", 1e-15, cached.TfromPH(p, h), base.TfromPH(p, h))
			chk.Float64(tst, "SfromPH", 1e-15, cached.SfromPH(p, h), base.SfromPH(p, h))
			chk.Float64(tst, "Quality", 1e-15, cached.Quality(p, h), base.Quality(p, h))
			chk.Float64(tst, "Rho", 1e-15, cached.Rho(p, h), base.Rho(p, h))
			chk.Float64(tst, "Mu", 1e-15, cached.Mu(p, h), base.Mu(p, h))
			chk.Float64(tst, "Kcond", 1e-15, cached.Kcond(p, h), base.Kcond(p, h))
			chk.Float64(tst, "Cp", 1e-15, cached.Cp(p, h), base.Cp(p, h))
			chk.Float64(tst, "VoidFrac", 1e-15, cached.VoidFrac(p, h), base.VoidFrac(p, h))
			chk.Float64(tst, "HfromPT", 1e-15, cached.HfromPT(p, 500), base.HfromPT(p, 500))
			chk.Float64(tst, "HfromPS", 1e-15, cached.HfromPS(p, 5000), base.HfromPS(p, 5000))
			chk.Float64(tst, "HfromPX", 1e-15, cached.HfromPX(p, 0.5), base.HfromPX(p, 0.5))
			chk.Float64(tst, "RhoPX", 1e-15, cached.RhoPX(p, 0.5), base.RhoPX(p, 0.5))
			hl1, hv1 := cached.SatHlv(p)
			hl2, hv2 := base.SatHlv(p)
			chk.Float64(tst, "SatHlv hl", 1e-15, hl1, hl2)
			chk.Float64(tst, "SatHlv hv", 1e-15, hv1, hv2)
		}
	}

	// flush and re-query
	cached.Flush()
	chk.Float64(tst, "after flush", 1e-15, cached.Rho(7e6, 1.0e6), base.Rho(7e6, 1.0e6))
}

func Test_steamcache02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("steamcache02. cache budget flush")

	cached := NewCached(Analytic{})
	cached.MaxEntries = 8

	// push well past the budget; results must stay correct throughout
	base := Analytic{}
	for i := 0; i < 50; i++ {
		p := 1e5 + float64(i)*1e5
		h := 4e5 + float64(i)*5e4
		chk.Float64(tst, "Rho under churn", 1e-15, cached.Rho(p, h), base.Rho(p, h))
	}
}
