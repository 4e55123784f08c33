// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flow implements pressure-drop and heat-transfer correlations for
// 0-D duct components
package flow

import "math"

// Grav is the standard gravity acceleration [m/s²]
const Grav = 9.80665

// ReLaminar is the Reynolds number below which the Darcy friction factor
// switches to the laminar 64/Re law
const ReLaminar = 2300.0

// FrictionFactor returns the Darcy friction factor from the laminar law
// (Re < 2300) or the Haaland explicit turbulent correlation.
//  Input:
//   Re     -- Reynolds number (sign ignored)
//   epsRel -- relative roughness eps/D
func FrictionFactor(Re, epsRel float64) float64 {
	Re = math.Abs(Re)
	if Re <= 0 {
		return 0.0
	}
	if Re < ReLaminar {
		return 64.0 / Re
	}
	a := -1.8 * math.Log10(math.Pow(epsRel/3.7, 1.11)+6.9/Re)
	return 1.0 / (a * a)
}
