// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steam

import "math"

// reference constants
const (
	Pcrit   = 22.064e6   // critical pressure of water [Pa]
	Tcrit   = 647.096    // critical temperature [K]
	Mmolar  = 0.01801528 // molar mass [kg/mol]
	Rgas    = 8.314462   // universal gas constant [J/(mol·K)]
	Tzero   = 273.15     // reference temperature [K]
	zFactor = 0.90       // constant compressibility factor for vapor
	cplRef  = 4400.0     // liquid heat capacity used in h/T/s relations [J/(kg·K)]
	cpvRef  = 2500.0     // superheated vapor heat capacity [J/(kg·K)]
)

// Analytic is a self-contained water/steam backend built from smooth
// power-law fits anchored on the saturation line between roughly 0.05 and
// 15 MPa. It is deliberately crude: the point is a fast, consistent and
// differentiable Props implementation for tests and examples. Replace it
// with an IAPWS-IF97 backend for engineering numbers.
//
// Internal consistency rules:
//   - h, T and s of the liquid share one heat capacity cplRef, so
//     TfromPH(p, HfromPT(p,T)) == T and HfromPS inverts SfromPH.
//   - sfg = hfg/Tsat (Clausius-Clapeyron along the saturation line).
type Analytic struct{}

// saturation line ////////////////////////////////////////////////////////////

// Tsat returns the saturation temperature
func (o Analytic) Tsat(p float64) float64 {
	p = clampP(p)
	T := 373.15 * math.Pow(p/1e5, 0.0952)
	if T < 274.0 {
		T = 274.0
	}
	if T > Tcrit {
		T = Tcrit
	}
	return T
}

// Sigma returns the surface tension at saturation (IAPWS-style form)
func (o Analytic) Sigma(p float64) float64 {
	tr := 1.0 - o.Tsat(p)/Tcrit
	if tr < 0 {
		tr = 0
	}
	return 235.8e-3 * math.Pow(tr, 1.256) * (1.0 - 0.625*tr)
}

// hfg returns the latent heat of vaporization (Watson-type fit)
func (o Analytic) hfg(p float64) float64 {
	p = clampP(p)
	w := 1.0 - p/Pcrit
	if w < 1e-4 {
		w = 1e-4
	}
	return 2.45e6 * math.Pow(w, 0.55)
}

// SatHlv returns saturated liquid/vapor enthalpies
func (o Analytic) SatHlv(p float64) (hl, hv float64) {
	hl = cplRef * (o.Tsat(p) - Tzero)
	hv = hl + o.hfg(p)
	return
}

// SatRholv returns saturated liquid/vapor densities
func (o Analytic) SatRholv(p float64) (rl, rv float64) {
	T := o.Tsat(p)
	rl = rhoLiqT(T)
	rv = clampP(p) * Mmolar / (zFactor * Rgas * T)
	return
}

// SatMulv returns saturated liquid/vapor viscosities
func (o Analytic) SatMulv(p float64) (ml, mv float64) {
	T := o.Tsat(p)
	return muLiqT(T), muVapT(T)
}

// SatKlv returns saturated liquid/vapor thermal conductivities
func (o Analytic) SatKlv(p float64) (kl, kv float64) {
	T := o.Tsat(p)
	return kLiqT(T), kVapT(T)
}

// SatCplv returns saturated liquid/vapor heat capacities
func (o Analytic) SatCplv(p float64) (cl, cv float64) {
	T := o.Tsat(p)
	return cpLiqT(T), cpVapT(T)
}

// thermodynamic state ////////////////////////////////////////////////////////

// HfromPT returns enthalpy from pressure and temperature
func (o Analytic) HfromPT(p, T float64) float64 {
	Ts := o.Tsat(p)
	if T <= Ts {
		return cplRef * (T - Tzero)
	}
	_, hv := o.SatHlv(p)
	return hv + cpvRef*(T-Ts)
}

// TfromPH returns temperature from pressure and enthalpy
func (o Analytic) TfromPH(p, h float64) float64 {
	hl, hv := o.SatHlv(p)
	switch {
	case h <= hl:
		return Tzero + h/cplRef
	case h >= hv:
		return o.Tsat(p) + (h-hv)/cpvRef
	}
	return o.Tsat(p)
}

// SfromPH returns entropy from pressure and enthalpy
func (o Analytic) SfromPH(p, h float64) float64 {
	hl, hv := o.SatHlv(p)
	Ts := o.Tsat(p)
	sl := cplRef * math.Log(Ts/Tzero)
	sfg := o.hfg(p) / Ts
	switch {
	case h <= hl:
		T := Tzero + h/cplRef
		if T < 1.0 {
			T = 1.0
		}
		return cplRef * math.Log(T/Tzero)
	case h >= hv:
		T := Ts + (h-hv)/cpvRef
		return sl + sfg + cpvRef*math.Log(T/Ts)
	}
	x := (h - hl) / (hv - hl)
	return sl + x*sfg
}

// HfromPS returns enthalpy from pressure and entropy (inverse of SfromPH)
func (o Analytic) HfromPS(p, s float64) float64 {
	Ts := o.Tsat(p)
	sl := cplRef * math.Log(Ts/Tzero)
	sfg := o.hfg(p) / Ts
	sv := sl + sfg
	hl, hv := o.SatHlv(p)
	switch {
	case s <= sl:
		T := Tzero * math.Exp(s/cplRef)
		return cplRef * (T - Tzero)
	case s >= sv:
		T := Ts * math.Exp((s-sv)/cpvRef)
		return hv + cpvRef*(T-Ts)
	}
	x := (s - sl) / sfg
	return hl + x*(hv-hl)
}

// Quality returns the vapor mass fraction, clipped to [0,1]
func (o Analytic) Quality(p, h float64) float64 {
	hl, hv := o.SatHlv(p)
	if h <= hl {
		return 0.0
	}
	if h >= hv {
		return 1.0
	}
	return (h - hl) / (hv - hl)
}

// HfromPX returns enthalpy from pressure and quality
func (o Analytic) HfromPX(p, x float64) float64 {
	x = clip01(x)
	hl, hv := o.SatHlv(p)
	return (1.0-x)*hl + x*hv
}

// transport and mixture (HEM) ////////////////////////////////////////////////

// RhoPX returns the homogeneous mixture density from quality
func (o Analytic) RhoPX(p, x float64) float64 {
	x = clip01(x)
	rl, rv := o.SatRholv(p)
	return 1.0 / (x/rv + (1.0-x)/rl)
}

// Rho returns the (mixture) density
func (o Analytic) Rho(p, h float64) float64 {
	x := o.Quality(p, h)
	if x > 0 && x < 1 {
		return o.RhoPX(p, x)
	}
	T := o.TfromPH(p, h)
	if x <= 0 {
		return rhoLiqT(T)
	}
	return clampP(p) * Mmolar / (zFactor * Rgas * T)
}

// VoidFrac returns the vapor volume fraction (HEM)
func (o Analytic) VoidFrac(p, h float64) float64 {
	x := o.Quality(p, h)
	if x <= 0 {
		return 0.0
	}
	if x >= 1 {
		return 1.0
	}
	rl, rv := o.SatRholv(p)
	vg := x / rv
	vl := (1.0 - x) / rl
	return vg / (vg + vl)
}

// Mu returns the (mixture) dynamic viscosity, void-fraction weighted in
// the two-phase region
func (o Analytic) Mu(p, h float64) float64 {
	x := o.Quality(p, h)
	if x > 0 && x < 1 {
		ml, mv := o.SatMulv(p)
		a := o.VoidFrac(p, h)
		return (1.0-a)*ml + a*mv
	}
	T := o.TfromPH(p, h)
	if x <= 0 {
		return muLiqT(T)
	}
	return muVapT(T)
}

// Kcond returns the (mixture) thermal conductivity
func (o Analytic) Kcond(p, h float64) float64 {
	x := o.Quality(p, h)
	if x > 0 && x < 1 {
		kl, kv := o.SatKlv(p)
		a := o.VoidFrac(p, h)
		return (1.0-a)*kl + a*kv
	}
	T := o.TfromPH(p, h)
	if x <= 0 {
		return kLiqT(T)
	}
	return kVapT(T)
}

// Cp returns the heat capacity; saturated-liquid cp in the two-phase
// region where cp is not well defined
func (o Analytic) Cp(p, h float64) float64 {
	x := o.Quality(p, h)
	if x > 0 && x < 1 {
		cl, _ := o.SatCplv(p)
		return cl
	}
	T := o.TfromPH(p, h)
	if x <= 0 {
		return cpLiqT(T)
	}
	return cpVapT(T)
}

// single-phase fits //////////////////////////////////////////////////////////

// rhoLiqT returns compressed-liquid density (pressure dependence neglected)
func rhoLiqT(T float64) float64 {
	r := 1000.0 - 0.0025*(T-277.0)*(T-277.0)
	if r < 100.0 {
		r = 100.0
	}
	return r
}

// muLiqT returns liquid viscosity (Vogel-type correlation)
func muLiqT(T float64) float64 {
	if T < 150.0 {
		T = 150.0
	}
	return 2.414e-5 * math.Pow(10.0, 247.8/(T-140.0))
}

func muVapT(T float64) float64 {
	return 8.85e-6 + 3.53e-8*(T-Tzero)
}

func kLiqT(T float64) float64 {
	k := 0.68 - 3e-6*(T-373.15)*(T-373.15)
	if k < 0.1 {
		k = 0.1
	}
	return k
}

func kVapT(T float64) float64 {
	k := 0.025 + 5e-5*(T-373.15)
	if k < 0.01 {
		k = 0.01
	}
	return k
}

func cpLiqT(T float64) float64 {
	return 4180.0 + 2.5*(T-373.15)
}

func cpVapT(T float64) float64 {
	return 2000.0 + 2.0*(T-373.15)
}

// helpers ////////////////////////////////////////////////////////////////////

func clampP(p float64) float64 {
	if p < 1e3 {
		return 1e3
	}
	return p
}

func clip01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
