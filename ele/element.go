// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/io"

	"gotherm/mdl/steam"
)

// Element defines what all components must implement
type Element interface {

	// information
	Name() string // returns the component name

	// wiring
	ConnectInlet(port string, conn *Conn)  // attaches conn to an inlet port
	ConnectOutlet(port string, conn *Conn) // attaches conn to an outlet port

	// configuration check; returns a structured error for missing ports or
	// inconsistent parameters. must be called before Eqs
	CheckConfig() error

	// internal variables; e.g. a heat-duty unknown
	Vars() []*Variable

	// residual equations given current variable values
	Eqs(stm steam.Props) ([]Equation, error)
}

// PortError reports an unconnected or misused component port
type PortError struct {
	Component string // component name
	Port      string // port name
	Inlet     bool   // inlet port (otherwise outlet)
	Reason    string // e.g. "not connected"
}

// Error returns the error message
func (e *PortError) Error() string {
	kind := "outlet"
	if e.Inlet {
		kind = "inlet"
	}
	return io.Sf("%s: %s port %q %s", e.Component, kind, e.Port, e.Reason)
}

// PrmError reports under- or over-specified component parameters
type PrmError struct {
	Component string // component name
	Prm       string // parameter name(s)
	Reason    string // what is wrong
}

// Error returns the error message
func (e *PrmError) Error() string {
	return io.Sf("%s: parameter %q %s", e.Component, e.Prm, e.Reason)
}

// Ports holds the port-to-connection maps shared by all components
type Ports struct {
	Cname   string           // owner component name, for error messages
	Inlets  map[string]*Conn // inlet port name -> connection
	Outlets map[string]*Conn // outlet port name -> connection
}

// NewPorts returns an initialised Ports structure
func NewPorts(cname string) Ports {
	return Ports{Cname: cname, Inlets: make(map[string]*Conn), Outlets: make(map[string]*Conn)}
}

// Name returns the owner component name
func (o *Ports) Name() string { return o.Cname }

// ConnectInlet attaches conn to the named inlet port
func (o *Ports) ConnectInlet(port string, conn *Conn) {
	o.Inlets[port] = conn
}

// ConnectOutlet attaches conn to the named outlet port
func (o *Ports) ConnectOutlet(port string, conn *Conn) {
	o.Outlets[port] = conn
}

// In returns the connection on the named inlet port
func (o *Ports) In(port string) (*Conn, error) {
	if c, ok := o.Inlets[port]; ok {
		return c, nil
	}
	return nil, &PortError{Component: o.Cname, Port: port, Inlet: true, Reason: "not connected"}
}

// Out returns the connection on the named outlet port
func (o *Ports) Out(port string) (*Conn, error) {
	if c, ok := o.Outlets[port]; ok {
		return c, nil
	}
	return nil, &PortError{Component: o.Cname, Port: port, Reason: "not connected"}
}

// checkPorts verifies that all named inlet and outlet ports are connected
func (o *Ports) checkPorts(inlets, outlets []string) error {
	for _, p := range inlets {
		if _, err := o.In(p); err != nil {
			return err
		}
	}
	for _, p := range outlets {
		if _, err := o.Out(p); err != nil {
			return err
		}
	}
	return nil
}

// Vars returns no internal variables; components with internal unknowns override this
func (o *Ports) Vars() []*Variable { return nil }
