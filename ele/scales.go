// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// residual scales normalize physically dissimilar magnitudes so the solver
// tolerance is dimensionless: mass by flow magnitude, pressure by ~1e5 Pa,
// enthalpy by ~1e5 J/kg, energy rate by ~1e6 J/s

func scaleM(m float64) float64 { return utl.Max(1.0, math.Abs(m)) }
func scaleP(p float64) float64 { return utl.Max(1e5, math.Abs(p)) }
func scaleH(h float64) float64 { return utl.Max(1e5, math.Abs(h)) }
func scaleE(e float64) float64 { return utl.Max(1e6, math.Abs(e)) }
