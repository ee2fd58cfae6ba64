// Package config holds the embedded board/drive configuration profile.
// Bare-metal firmware has no filesystem to read an override from, so
// unlike a hosted application's config loader, Profile is always decoded
// from the single compiled-in default (spec.md §1's scope excludes a
// filesystem entirely). The shape and TOML-decoding approach follow the
// same convention as the host-side tooling this firmware's disk images
// are prepared with.
package config

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

//go:embed floppy.toml
var defaultProfileData []byte

// Profile is the full set of board- and drive-specific constants needed
// to bring the codec and sequencer up on a given target: the cycle clock
// calibration, the IBM System 34 geometry, and the pad pull-up resistance
// recommended for each input line (spec.md §6, §9).
type Profile struct {
	Board    Board              `toml:"board"`
	Geometry Geometry           `toml:"geometry"`
	Pins     map[string]PinSpec `toml:"pins"`
}

// Board holds the cycle.TamagoClock calibration constants.
type Board struct {
	CyclesPerIteration uint32 `toml:"cycles_per_iteration"`
	CoreMHz            uint32 `toml:"core_mhz"`
}

// Geometry is the on-disk format assumed for every image (spec.md §6).
type Geometry struct {
	Cylinders       int `toml:"cylinders"`
	Heads           int `toml:"heads"`
	SectorsPerTrack int `toml:"sectors_per_track"`
	BitRateKbps     int `toml:"bit_rate_kbps"`
}

// PinSpec documents the recommended pull-up for one input line; it is
// informational (there is no runtime pad-configuration registry in this
// package — that lives in board-specific IOMUX setup) but keeps the
// electrical profile next to the rest of the board's constants rather
// than scattered across board files.
type PinSpec struct {
	PullupOhms int `toml:"pullup_ohms"`
}

// Default decodes the embedded default profile.
func Default() (Profile, error) {
	var p Profile
	if _, err := toml.Decode(string(defaultProfileData), &p); err != nil {
		return Profile{}, fmt.Errorf("config: decoding embedded profile: %w", err)
	}
	if p.Board.CyclesPerIteration == 0 {
		return Profile{}, fmt.Errorf("config: profile missing board.cycles_per_iteration")
	}
	if p.Geometry.Cylinders == 0 {
		return Profile{}, fmt.Errorf("config: profile missing geometry.cylinders")
	}
	return p, nil
}
