// Copyright 2026 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/chk"

// AllocatorType defines a function that allocates a component
type AllocatorType func(name string) Element

// allocators holds all available component kinds
var allocators = map[string]AllocatorType{
	"pipe":       func(name string) Element { return NewPipe(name) },
	"core":       func(name string) Element { return NewCoreChannel(name) },
	"orifice":    func(name string) Element { return NewOrificePlate(name) },
	"areachange": func(name string) Element { return NewAreaChange(name) },
	"separator":  func(name string) Element { return NewSeparator(name) },
	"mixer":      func(name string) Element { return NewMixer(name) },
	"turbine":    func(name string) Element { return NewTurbine(name) },
	"pump":       func(name string) Element { return NewPump(name) },
	"condenser":  func(name string) Element { return NewCondenser(name) },
	"heater":     func(name string) Element { return NewHeater(name) },
	"source":     func(name string) Element { return NewSource(name) },
	"sink":       func(name string) Element { return NewSink(name) },
}

// New returns a new component from the factory
func New(kind, name string) Element {
	fcn, ok := allocators[kind]
	if !ok {
		chk.Panic("cannot find component kind %q in factory", kind)
	}
	return fcn(name)
}

// Kinds returns the registered component kinds
func Kinds() (kinds []string) {
	for k := range allocators {
		kinds = append(kinds, k)
	}
	return
}
