// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && !tamago

// This file backs the cold-path bring-up build: running the drive
// sequencer on a Linux host wired to a real drive through a GPIO chip
// (Raspberry Pi header, USB-GPIO adapter, whatever periph.io's gpioreg
// already knows how to name) instead of the bare-metal tamago target. It
// is deliberately never used for the flux timer or pulse emitter — the
// periph.io abstraction (an interface method call plus a syscall-backed
// line read) cannot meet the flux layer's cycle budget, and PeriphPin
// below does not implement pin.HotLine for exactly that reason.
package pin

import (
	"fmt"

	"periph.io/x/conn/v3/driver/driverreg"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// Init loads the registered periph.io host drivers (sysfs, gpiomem, or
// whichever the running kernel supports). It must be called once before
// resolving any pin by name.
func Init() error {
	_, err := driverreg.Init()
	return err
}

// PeriphPin adapts a named periph.io GPIO line to the pin.Pin interface
// used by the drive sequencer's cold path.
type PeriphPin struct {
	line gpio.PinIO
}

// ByName resolves a periph.io pin by its board-specific name (e.g. "GPIO17"
// on a Raspberry Pi, or the line name reported by gpioioctl's GPIOChip).
func ByName(name string) (*PeriphPin, error) {
	line := gpioreg.ByName(name)
	if line == nil {
		return nil, fmt.Errorf("pin: no such GPIO line %q", name)
	}
	return &PeriphPin{line: line}, nil
}

func (p *PeriphPin) Out() {
	// Direction is implied by periph.io's Out/In calls; nothing to
	// configure ahead of time beyond what In()/High()/Low() already do.
}

func (p *PeriphPin) In() {
	_ = p.line.In(gpio.PullUp, gpio.NoEdge)
}

func (p *PeriphPin) High() {
	_ = p.line.Out(gpio.High)
}

func (p *PeriphPin) Low() {
	_ = p.line.Out(gpio.Low)
}

func (p *PeriphPin) Value() bool {
	return p.line.Read() == gpio.High
}
