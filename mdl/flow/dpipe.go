// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"math"

	"gotherm/mdl/steam"
)

// two-phase friction model names
const (
	Homogeneous = "homogeneous" // single pseudo-fluid with mixture properties
	Chisholm    = "chisholm"    // separated flow, liquid-only dp times phi_l²
)

// reChisholmLam is the laminar threshold used only for the Chisholm
// constant classification; the friction factor itself switches at
// ReLaminar=2300. Both thresholds are inherited from the source
// correlations and kept distinct on purpose.
const reChisholmLam = 2000.0

// Geometry holds the duct parameters of a pipe-like element
type Geometry struct {
	L     float64 // length [m]
	D     float64 // hydraulic diameter [m]
	A     float64 // flow area [m²]; pi D²/4 when zero
	Eps   float64 // absolute roughness [m]
	K     float64 // lumped form loss coefficient [-]
	Dz    float64 // elevation change [m]; positive = outlet higher
	Model string  // two-phase friction model; Homogeneous when empty
	NoAcc bool    // skip the acceleration term
}

// Area returns the flow area, defaulting to a circular section
func (o Geometry) Area() float64 {
	if o.A > 0 {
		return o.A
	}
	return math.Pi * o.D * o.D / 4.0
}

// DpBreakdown decomposes a duct pressure drop into its four contributions
type DpBreakdown struct {
	Fric float64 // wall friction
	Form float64 // lumped form losses
	Grav float64 // hydrostatic head
	Acc  float64 // flow acceleration from density change
}

// Total returns the sum of all contributions
func (o DpBreakdown) Total() float64 {
	return o.Fric + o.Form + o.Grav + o.Acc
}

// Dp returns the pressure-drop breakdown of a pipe-like element between
// inlet state (pin,hin) and outlet state (pout,hout) at mass flow m.
//
// Friction, form and gravity terms use the mid-state (average of inlet and
// outlet p and h) mixture density; the acceleration term uses the end-state
// densities. These are choices inherited from the source correlations and
// must not be "corrected" silently.
func Dp(stm steam.Props, geo Geometry, m, pin, hin, pout, hout float64) (dp DpBreakdown) {
	A := geo.Area()

	pavg := 0.5 * (pin + pout)
	havg := 0.5 * (hin + hout)
	rhoAvg := stm.Rho(pavg, havg)
	muAvg := stm.Mu(pavg, havg)

	if geo.Model == Chisholm {
		dp.Fric = dpFricChisholm(stm, m, pavg, havg, geo.L, geo.D, geo.Eps, A)
	} else {
		dp.Fric = dpFricHomogeneous(m, rhoAvg, muAvg, geo.L, geo.D, geo.Eps, A)
	}

	dp.Form = DpForm(m, rhoAvg, geo.K, A)
	dp.Grav = DpGravity(rhoAvg, geo.Dz)

	if !geo.NoAcc {
		rhoIn := stm.Rho(pin, hin)
		rhoOut := stm.Rho(pout, hout)
		dp.Acc = dpAccSameArea(m, A, rhoIn, rhoOut)
	}
	return
}

// DpForm returns the form loss K·G²/(2ρ)
func DpForm(m, rho, K, A float64) float64 {
	if A <= 0 || rho <= 0 {
		return 0.0
	}
	G := m / A
	return K * G * G / (2.0 * rho)
}

// DpGravity returns the hydrostatic term ρ·g·Δz
func DpGravity(rho, dz float64) float64 {
	return rho * Grav * dz
}

// DpAccAreaChange returns the acceleration term across an area change:
// m²(1/(ρ_out·A_out²) − 1/(ρ_in·A_in²))
func DpAccAreaChange(m, Ain, Aout, rhoIn, rhoOut float64) float64 {
	if Ain <= 0 || Aout <= 0 || rhoIn <= 0 || rhoOut <= 0 {
		return 0.0
	}
	return m * m * (1.0/(rhoOut*Aout*Aout) - 1.0/(rhoIn*Ain*Ain))
}

// dpAccSameArea returns G²(1/ρ_out − 1/ρ_in)
func dpAccSameArea(m, A, rhoIn, rhoOut float64) float64 {
	if A <= 0 || rhoIn <= 0 || rhoOut <= 0 {
		return 0.0
	}
	G := m / A
	return G * G * (1.0/rhoOut - 1.0/rhoIn)
}

// dpFricHomogeneous returns the HEM friction drop f·(L/D)·G²/(2ρ) at the
// mixture state
func dpFricHomogeneous(m, rhoMix, muMix, L, D, eps, A float64) float64 {
	if A <= 0 || D <= 0 || L <= 0 || rhoMix <= 0 || muMix <= 0 {
		return 0.0
	}
	G := m / A
	Re := math.Abs(G * D / muMix)
	f := FrictionFactor(Re, eps/D)
	return f * (L / D) * G * G / (2.0 * rhoMix)
}

// chisholmC selects the Chisholm constant from the laminar/turbulent
// classification of the liquid-only and vapor-only Reynolds numbers
func chisholmC(reL0, reV0 float64) float64 {
	lLam := reL0 < reChisholmLam
	vLam := reV0 < reChisholmLam
	switch {
	case !lLam && !vLam:
		return 20.0
	case lLam && vLam:
		return 5.0
	}
	return 12.0
}

// phiL2Chisholm returns the two-phase multiplier phi_l² = 1 + C/X + 1/X²
// with the turbulent-turbulent Lockhart-Martinelli parameter X_tt
func phiL2Chisholm(x, rhoL, rhoV, muL, muV, reL0, reV0 float64) float64 {
	if x < 1e-8 {
		x = 1e-8
	}
	if x > 1.0-1e-8 {
		x = 1.0 - 1e-8
	}
	if rhoL <= 0 || rhoV <= 0 || muL <= 0 || muV <= 0 {
		return 1.0
	}
	Xtt := math.Pow((1.0-x)/x, 0.9) * math.Sqrt(rhoV/rhoL) * math.Pow(muL/muV, 0.1)
	C := chisholmC(reL0, reV0)
	return 1.0 + C/Xtt + 1.0/(Xtt*Xtt)
}

// dpFricChisholm returns the separated-flow friction drop: liquid-only dp
// scaled by phi_l². At quality <=0 or >=1 it degenerates to the pure
// liquid-only or vapor-only drop.
func dpFricChisholm(stm steam.Props, m, p, h, L, D, eps, A float64) float64 {
	if A <= 0 || D <= 0 || L <= 0 {
		return 0.0
	}

	x := stm.Quality(p, h)
	rhoL, rhoV := stm.SatRholv(p)
	muL, muV := stm.SatMulv(p)

	G := m / A
	reL0 := math.Abs(G * D / math.Max(muL, 1e-12))
	reV0 := math.Abs(G * D / math.Max(muV, 1e-12))

	fL0 := FrictionFactor(reL0, eps/D)
	dpLo := fL0 * (L / D) * G * G / (2.0 * math.Max(rhoL, 1e-12))

	if x <= 0 {
		return dpLo
	}
	if x >= 1 {
		fV0 := FrictionFactor(reV0, eps/D)
		return fV0 * (L / D) * G * G / (2.0 * math.Max(rhoV, 1e-12))
	}

	return phiL2Chisholm(x, rhoL, rhoV, muL, muV, reL0, reV0) * dpLo
}
