// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"

	"gotherm/ele"
)

// maxBacktrack is the backtracking budget of the damped line search
const maxBacktrack = 14

// Status enumerates the terminal outcomes of a solve
type Status int

const (
	Converged               Status = iota // residual or step tolerance met
	LinearizationFailure                  // least-squares step could not be formed
	StagnationFailure                     // line search exhausted without improving
	IterationBudgetExceeded               // iteration cap hit before tolerance
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case LinearizationFailure:
		return "linearization failure"
	case StagnationFailure:
		return "stagnation failure"
	case IterationBudgetExceeded:
		return "iteration budget exceeded"
	}
	return "unknown"
}

// Options holds the solver settings
type Options struct {
	MaxIt      int     // iteration budget
	Tol        float64 // scaled residual norm tolerance
	Xtol       float64 // variable step norm tolerance
	FdEps      float64 // relative finite-difference step
	Damping    bool    // enable backtracking line search
	Verbose    bool    // print iteration trace
	PrintWorst int     // number of worst residuals shown when verbose
}

// DefaultOptions returns the default solver settings
func DefaultOptions() *Options {
	return &Options{
		MaxIt:      60,
		Tol:        1e-7,
		Xtol:       1e-9,
		FdEps:      1e-6,
		Damping:    true,
		PrintWorst: 5,
	}
}

// Results holds the terminal solve outcome. Failures are values here, not
// faults: the solver loop itself never panics.
type Results struct {
	Status       Status    // terminal status
	Converged    bool      // convergence flag
	Iterations   int       // Newton iterations performed
	ResidualNorm float64   // scaled residual 2-norm at exit
	Message      string    // human-readable diagnostic
	History      []float64 // residual norm at each accepted iterate
}

// Solve runs the damped Newton-Raphson iteration on the network.
//
// Each iteration evaluates the scaled residual vector, builds the Jacobian
// by sequential directional perturbation of each free variable (one
// network re-evaluation per column, baseline restored afterwards), solves
// the linearized system in the least-squares sense, and applies the step
// through a backtracking line search that never accepts an increase of the
// residual norm.
//
// Configuration errors (unconnected ports, bad parameters, duplicate
// connections) are returned as err and abort immediately; numerical
// failures terminate the loop and are reported through Results.Status.
func Solve(nwk *Network, opts *Options) (res Results, err error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	// fail fast on configuration problems
	if err = nwk.CheckConfig(); err != nil {
		return
	}

	free := nwk.FreeVars()
	if opts.Verbose {
		io.Pf("unknowns: %d (free variables)\n", len(free))
	}

	// residual norm of the current state, without iterating
	if len(free) == 0 {
		eqs, e := nwk.Residuals()
		if e != nil {
			err = e
			return
		}
		nrm := norm(eqs)
		res = Results{
			Status:       IterationBudgetExceeded,
			Converged:    nrm < opts.Tol,
			ResidualNorm: nrm,
			Message:      "no free variables",
		}
		if res.Converged {
			res.Status = Converged
		}
		return
	}

	for it := 1; it <= opts.MaxIt; it++ {

		// current residuals
		eqs, e := nwk.Residuals()
		if e != nil {
			err = e
			return
		}
		if len(eqs) == 0 {
			res.Status = Converged
			res.Converged = true
			res.Iterations = it - 1
			res.Message = "no equations"
			return
		}
		f0 := scaledVec(eqs)
		nrm0 := mat.Norm(f0, 2)
		res.History = append(res.History, nrm0)

		if opts.Verbose {
			io.Pf("it %2d: |F| = %.3e  neqs = %d\n", it, nrm0, len(eqs))
			if it == 1 || it%10 == 0 {
				for _, w := range worstResiduals(eqs, opts.PrintWorst) {
					io.Pforan("    worst: %s\n", w)
				}
			}
		}

		if nrm0 < opts.Tol {
			res.Status = Converged
			res.Converged = true
			res.Iterations = it - 1
			res.ResidualNorm = nrm0
			res.Message = "converged on residual norm"
			return
		}

		// Jacobian by finite differences
		J, e := fdJacobian(nwk, free, f0, opts.FdEps)
		if e != nil {
			err = e
			return
		}

		// least-squares Newton step
		rhs := mat.NewVecDense(f0.Len(), nil)
		rhs.ScaleVec(-1.0, f0)
		dx := mat.NewVecDense(len(free), nil)
		if e := dx.SolveVec(J, rhs); e != nil {
			if _, approx := e.(mat.Condition); !approx {
				res.Status = LinearizationFailure
				res.Iterations = it
				res.ResidualNorm = nrm0
				res.Message = io.Sf("linear solve failed: %v", e)
				return
			}
			// ill-conditioned but usable approximate solution: keep going
		}

		stepNorm := mat.Norm(dx, 2)
		if stepNorm < opts.Xtol {
			res.Status = Converged
			res.Converged = true
			res.Iterations = it
			res.ResidualNorm = nrm0
			res.Message = "converged on step norm"
			return
		}

		x0 := pack(free)

		if opts.Damping {
			alpha := 1.0
			improved := false
			for k := 0; k < maxBacktrack; k++ {
				applyStep(free, x0, dx, alpha)
				eqs, e = nwk.Residuals()
				if e != nil {
					err = e
					return
				}
				if norm(eqs) <= nrm0 {
					improved = true
					break
				}
				alpha *= 0.5
			}
			if !improved {
				unpack(free, x0)
				res.Status = StagnationFailure
				res.Iterations = it
				res.ResidualNorm = nrm0
				res.Message = "line search failed to reduce residual"
				return
			}
		} else {
			applyStep(free, x0, dx, 1.0)
		}
	}

	// budget exhausted
	eqs, e := nwk.Residuals()
	if e != nil {
		err = e
		return
	}
	res.Status = IterationBudgetExceeded
	res.Iterations = opts.MaxIt
	res.ResidualNorm = norm(eqs)
	res.Message = "max iterations reached"
	return
}

// fdJacobian builds the m-by-n Jacobian of the scaled residuals with
// respect to the free variables by one-sided differencing: one column per
// variable, restoring the baseline after every perturbation
func fdJacobian(nwk *Network, free []*ele.Variable, f0 *mat.VecDense, fdEps float64) (J *mat.Dense, err error) {
	n := len(free)
	m := f0.Len()
	J = mat.NewDense(m, n, nil)
	x0 := pack(free)

	for j := 0; j < n; j++ {
		step := fdEps * math.Max(1.0, math.Abs(x0[j]))
		unpack(free, x0)
		free[j].Set(x0[j] + step)

		eqs, e := nwk.Residuals()
		if e != nil {
			return nil, e
		}
		f1 := scaledVec(eqs)
		for i := 0; i < m; i++ {
			J.Set(i, j, (f1.AtVec(i)-f0.AtVec(i))/step)
		}
	}

	unpack(free, x0)
	return
}

// pack collects the free variable values
func pack(free []*ele.Variable) (x []float64) {
	x = make([]float64, len(free))
	for i, v := range free {
		x[i] = v.Value
	}
	return
}

// unpack assigns values back to the free variables, clipping into bounds
func unpack(free []*ele.Variable, x []float64) {
	for i, v := range free {
		v.Set(x[i])
	}
}

// applyStep sets free variables to x0 + alpha*dx
func applyStep(free []*ele.Variable, x0 []float64, dx *mat.VecDense, alpha float64) {
	for i, v := range free {
		v.Set(x0[i] + alpha*dx.AtVec(i))
	}
}

// scaledVec returns the dimensionless residual vector
func scaledVec(eqs []ele.Equation) *mat.VecDense {
	f := mat.NewVecDense(len(eqs), nil)
	for i, eq := range eqs {
		f.SetVec(i, eq.Scaled())
	}
	return f
}

// norm returns the scaled residual 2-norm
func norm(eqs []ele.Equation) float64 {
	if len(eqs) == 0 {
		return 0.0
	}
	return mat.Norm(scaledVec(eqs), 2)
}

// worstResiduals returns the k largest scaled residuals as report lines
func worstResiduals(eqs []ele.Equation, k int) (lines []string) {
	type nv struct {
		name string
		val  float64
	}
	vals := make([]nv, len(eqs))
	for i, eq := range eqs {
		vals[i] = nv{eq.Name, math.Abs(eq.Scaled())}
	}
	sort.Slice(vals, func(i, j int) bool { return vals[i].val > vals[j].val })
	if k > len(vals) {
		k = len(vals)
	}
	for _, v := range vals[:k] {
		lines = append(lines, io.Sf("%s -> %.3e", v.name, v.val))
	}
	return
}
