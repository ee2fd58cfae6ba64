// USB armory Mk II floppy controller board wiring
// https://github.com/gofloppy/fdcfw
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build tamago && arm

// Package usbarmory wires the firmware's pin.Set and cycle.Clock to the
// USB armory Mk II's i.MX6UL GPIO controllers. It is the one package in
// the repository allowed to know a concrete register base address; every
// other package takes a pin.Set or a cycle.Clock and stays board-agnostic.
//
// Pin assignment follows the same style as the reference board's LED
// wiring (board/usbarmory/mk2/led.go in the tamago tree this firmware is
// built on): a GPIO bank base address plus a bit number, resolved once at
// Init time.
package usbarmory

import (
	"github.com/gofloppy/fdcfw/config"
	"github.com/gofloppy/fdcfw/cycle"
	"github.com/gofloppy/fdcfw/flux"
	"github.com/gofloppy/fdcfw/pin"
)

// i.MX6UL GPIO controller base addresses (soc/nxp/imx6ul.GPIO1_BASE..5).
const (
	gpio1Base = 0x0209c000
	gpio2Base = 0x020a0000
	gpio4Base = 0x020a8000
	gpio5Base = 0x020ac000
)

// Board is the fully wired firmware front-end for one USB armory Mk II
// plus an attached 3.5" drive breakout: a pin.Set, a cycle.Clock, and the
// flux.HotSource/HotSink pair derived from the same pins.
type Board struct {
	Pins   pin.Set
	Clock  cycle.Clock
	Source flux.Source
	Sink   flux.Sink

	Profile config.Profile
}

// New loads the embedded default configuration profile (clock calibration
// and core frequency), wires every logical pin to the fixed GPIO bank and
// bit listed below, and returns a fully wired Board, ready to hand to
// drive.New.
//
// The GPIO bit numbers below are a breakout-board assignment, not a
// pin-strapping standard; a production board revision would thread these
// through config.Profile alongside the pull-up table rather than hard-
// coding them here, but the profile does not yet carry a pin-map section
// (see DESIGN.md).
func New() (*Board, error) {
	profile, err := config.Default()
	if err != nil {
		return nil, err
	}

	clk := &cycle.TamagoClock{CyclesPerIter: profile.Board.CyclesPerIteration}

	readData := pin.NewGPIOPin(gpio1Base, 17)
	writeData := pin.NewGPIOPin(gpio1Base, 18)
	index := pin.NewGPIOPin(gpio1Base, 19)

	pins := pin.Set{
		Index:        index,
		DriveSelect:  pin.NewGPIOPin(gpio1Base, 20),
		Motor:        pin.NewGPIOPin(gpio1Base, 21),
		Dir:          pin.NewGPIOPin(gpio2Base, 0),
		Step:         pin.NewGPIOPin(gpio2Base, 1),
		ReadData:     readData,
		WriteData:    writeData,
		WriteGate:    pin.NewGPIOPin(gpio2Base, 2),
		Track00:      pin.NewGPIOPin(gpio4Base, 0),
		WriteProtect: pin.NewGPIOPin(gpio4Base, 1),
		HeadSel:      pin.NewGPIOPin(gpio5Base, 0),
	}

	pins.Index.In()
	pins.DriveSelect.Out()
	pins.DriveSelect.High()
	pins.Motor.Out()
	pins.Motor.High()
	pins.Dir.Out()
	pins.Step.Out()
	pins.Step.High()
	pins.ReadData.In()
	pins.WriteData.Out()
	pins.WriteData.High()
	pins.WriteGate.Out()
	pins.WriteGate.High()
	pins.Track00.In()
	pins.WriteProtect.In()
	pins.HeadSel.Out()

	cyclesPerUs := profile.Board.CoreMHz

	readAddr, readPos := readData.Raw()
	indexAddr, indexPos := index.Raw()
	writeAddr, writePos := writeData.Raw()

	return &Board{
		Pins:  pins,
		Clock: clk,
		Source: &flux.HotSource{
			Clock:       clk,
			ReadAddr:    readAddr,
			ReadPos:     readPos,
			IndexAddr:   indexAddr,
			IndexPos:    indexPos,
			CyclesPerUs: cyclesPerUs,
		},
		Sink: &flux.HotSink{
			Clock:       clk,
			WriteAddr:   writeAddr,
			WritePos:    writePos,
			CyclesPerUs: cyclesPerUs,
			LowUs:       1,
		},
		Profile: profile,
	}, nil
}
