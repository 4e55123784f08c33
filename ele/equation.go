// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// tolScale guards against zero equation scales
const tolScale = 1e-12

// Equation is a named residual equation.
//
// The residual carries physical units; Scale is a characteristic magnitude
// chosen by the producing component so that Scaled() is dimensionless and
// comparable across equations. An equation is satisfied when |Scaled()| is
// below the solver tolerance.
type Equation struct {
	Name     string  // e.g. "core.energy"
	Residual float64 // raw residual in physical units
	Scale    float64 // characteristic magnitude
}

// Scaled returns the dimensionless residual
func (o Equation) Scaled() float64 {
	s := o.Scale
	if s < tolScale && s > -tolScale {
		s = 1.0
	}
	return o.Residual / s
}
