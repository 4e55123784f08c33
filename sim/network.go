// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim implements the network aggregation and the steady-state
// nonlinear solver
package sim

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"gotherm/ele"
	"gotherm/mdl/steam"
)

// Network owns components connected by directed connections. It performs
// no numerical work itself: it aggregates the free variables and the
// residual equations that the solver operates on.
//
// Components and connections are added before solving; the Network must
// not be mutated while Solve runs. Insertion order of both is preserved so
// the unknown vector ordering is stable across evaluations.
type Network struct {
	Stm   steam.Props   // property evaluator
	Elems []ele.Element // components, in insertion order

	conns map[string]*ele.Conn // name -> connection
	order []string             // connection insertion order
}

// NewNetwork returns a new empty network using the given property evaluator
func NewNetwork(stm steam.Props) *Network {
	return &Network{Stm: stm, conns: make(map[string]*ele.Conn)}
}

// AddElement appends a component
func (o *Network) AddElement(e ele.Element) {
	o.Elems = append(o.Elems, e)
}

// AddConn registers a connection; duplicate names are a configuration error
func (o *Network) AddConn(c *ele.Conn) error {
	if _, ok := o.conns[c.Name]; ok {
		return chk.Err("connection %q already exists", c.Name)
	}
	o.conns[c.Name] = c
	o.order = append(o.order, c.Name)
	return nil
}

// Conn returns a registered connection by name (nil if absent)
func (o *Network) Conn(name string) *ele.Conn {
	return o.conns[name]
}

// Connect creates a new connection with initial guesses and wires it from
// src's outlet port to dst's inlet port
func (o *Network) Connect(src ele.Element, srcPort string, dst ele.Element, dstPort, name string, mGuess, pGuess, hGuess float64) (c *ele.Conn, err error) {
	c = ele.NewConn(name, mGuess, pGuess, hGuess)
	if err = o.AddConn(c); err != nil {
		return nil, err
	}
	src.ConnectOutlet(srcPort, c)
	dst.ConnectInlet(dstPort, c)
	return
}

// AllVars returns every variable: connection states in insertion order,
// then component-internal variables in component insertion order
func (o *Network) AllVars() (vars []*ele.Variable) {
	for _, name := range o.order {
		vars = append(vars, o.conns[name].Vars()...)
	}
	for _, e := range o.Elems {
		vars = append(vars, e.Vars()...)
	}
	return
}

// FreeVars returns the solver unknown vector: all variables not fixed
func (o *Network) FreeVars() (vars []*ele.Variable) {
	for _, v := range o.AllVars() {
		if !v.Fixed {
			vars = append(vars, v)
		}
	}
	return
}

// CheckConfig validates every component's ports and parameters, failing
// fast with the first structured configuration error
func (o *Network) CheckConfig() (err error) {
	for _, e := range o.Elems {
		if err = e.CheckConfig(); err != nil {
			return
		}
	}
	return
}

// Residuals returns the concatenation of every component's equations, in
// component insertion order
func (o *Network) Residuals() (eqs []ele.Equation, err error) {
	var sub []ele.Equation
	for _, e := range o.Elems {
		sub, err = e.Eqs(o.Stm)
		if err != nil {
			return nil, err
		}
		eqs = append(eqs, sub...)
	}
	return
}

// Solve runs the damped Newton solver on this network. Configuration
// errors are returned as err; numerical failures are reported through the
// result status.
func (o *Network) Solve(opts *Options) (Results, error) {
	return Solve(o, opts)
}

// Summary returns a multi-line report of the network state
func (o *Network) Summary() string {
	l := io.Sf("Network with %d components and %d connections\n", len(o.Elems), len(o.order))
	l += "Connections:\n"
	for _, name := range o.order {
		l += io.Sf("  - %s\n", o.conns[name].String())
	}
	return l
}
