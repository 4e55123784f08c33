// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import "math"

// HtcDittusBoelter returns the single-phase internal-convection heat
// transfer coefficient [W/(m²·K)] from the Dittus-Boelter correlation,
// with the constant-wall-temperature laminar value Nu=3.66 below
// Re=2300. A post-processing utility; not used in residual equations.
//  Input:
//   G  -- mass flux [kg/(m²·s)]
//   D  -- hydraulic diameter [m]
//   mu -- dynamic viscosity [Pa·s]
//   cp -- heat capacity [J/(kg·K)]
//   k  -- thermal conductivity [W/(m·K)]
//   n  -- Prandtl exponent: ~0.4 heating, ~0.3 cooling
func HtcDittusBoelter(G, D, mu, cp, k, n float64) float64 {
	if D <= 0 || mu <= 0 || k <= 0 || cp <= 0 {
		return 0.0
	}
	Re := math.Abs(G * D / mu)
	Pr := cp * mu / k
	Nu := 3.66
	if Re >= ReLaminar {
		Nu = 0.023 * math.Pow(Re, 0.8) * math.Pow(Pr, n)
	}
	return Nu * k / D
}
