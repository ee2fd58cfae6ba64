// fdcfw firmware entrypoint
// https://github.com/gofloppy/fdcfw
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build tamago && arm

// Command fdcfw is the bare-metal firmware entrypoint: it wires a Board,
// brings the drive up, and reads cylinder 0 head 0 sector 1 as a smoke
// test. The host-side application loop that would normally drive
// read_sector/write_sector on demand is an external collaborator
// (spec.md §1) and is out of scope for this binary.
package main

import (
	"log"

	"github.com/gofloppy/fdcfw/board/usbarmory"
	"github.com/gofloppy/fdcfw/drive"
)

func main() {
	log.SetFlags(0)

	b, err := usbarmory.New()
	if err != nil {
		log.Fatalf("fdcfw: board init: %v", err)
	}

	d := drive.New(b.Pins, b.Clock, b.Profile.Board.CoreMHz, b.Profile.Geometry.Cylinders, b.Profile.Geometry.SectorsPerTrack)
	d.Source = b.Source
	d.Sink = b.Sink

	if err := d.SpinUp(); err != nil {
		log.Fatalf("fdcfw: spin up: %v", err)
	}
	defer d.MotorOff()

	if err := d.Calibrate(); err != nil {
		log.Fatalf("fdcfw: calibrate: %v", err)
	}

	payload, err := d.ReadSector(0, 0, 1)
	if err != nil {
		log.Fatalf("fdcfw: read cyl0/head0/sec1: %v", err)
	}

	log.Printf("fdcfw: read %d bytes from cyl0/head0/sec1, first byte %#02x", len(payload), payload[0])
}
