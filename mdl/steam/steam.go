// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package steam defines the water/steam property-evaluator contract and a
// self-contained analytic backend for tests and examples
package steam

// Props defines the property evaluator consumed by components and
// correlations. All quantities are SI: p [Pa], h [J/kg], T [K],
// s [J/(kg·K)], rho [kg/m³], mu [Pa·s], k [W/(m·K)], cp [J/(kg·K)],
// sigma [N/m]. Quality x and void fraction alpha are dimensionless.
//
// Two-phase mixture properties (Rho, Mu, Kcond, VoidFrac) follow the
// homogeneous-equilibrium model: saturation-line values combined by
// quality or void-fraction weighting whenever 0 < x < 1.
//
// Implementations must be deterministic and free of side effects so that
// the solver may re-evaluate states during finite differencing.
type Props interface {

	// saturation line
	Tsat(p float64) float64               // saturation temperature
	Sigma(p float64) float64              // surface tension at saturation
	SatHlv(p float64) (hl, hv float64)    // sat. liquid/vapor enthalpy
	SatRholv(p float64) (rl, rv float64)  // sat. liquid/vapor density
	SatMulv(p float64) (ml, mv float64)   // sat. liquid/vapor viscosity
	SatKlv(p float64) (kl, kv float64)    // sat. liquid/vapor conductivity
	SatCplv(p float64) (cl, cv float64)   // sat. liquid/vapor heat capacity

	// thermodynamic state
	HfromPT(p, T float64) float64 // enthalpy from pressure and temperature
	TfromPH(p, h float64) float64 // temperature from pressure and enthalpy
	SfromPH(p, h float64) float64 // entropy from pressure and enthalpy
	HfromPS(p, s float64) float64 // enthalpy from pressure and entropy
	Quality(p, h float64) float64 // vapor mass fraction, clipped to [0,1]
	HfromPX(p, x float64) float64 // enthalpy from pressure and quality

	// transport and mixture (HEM)
	Rho(p, h float64) float64      // mixture density
	RhoPX(p, x float64) float64    // mixture density from quality
	Mu(p, h float64) float64       // mixture viscosity
	Kcond(p, h float64) float64    // mixture conductivity
	Cp(p, h float64) float64       // heat capacity (sat. liquid cp in 2-phase)
	VoidFrac(p, h float64) float64 // vapor volume fraction
}
