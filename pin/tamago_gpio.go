// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build tamago && arm

package pin

import "github.com/gofloppy/fdcfw/internal/mmio"

// GPIO register offsets from a controller's base address, matching the
// NXP i.MX6 GPIO block layout (data register then direction register).
const (
	gpioDR   = 0x00
	gpioGDIR = 0x04
)

// GPIOPin is a single bit of an NXP-style GPIO controller, read and
// written with direct volatile MMIO access. Bit num must be < 32.
type GPIOPin struct {
	num  int
	data uint32
	dir  uint32
}

// NewGPIOPin returns the pin at bit num of the GPIO controller whose data
// register sits at base. The caller is responsible for enabling the
// controller's clock gate and IOMUX pad beforehand (see board wiring).
func NewGPIOPin(base uint32, num int) *GPIOPin {
	return &GPIOPin{
		num:  num,
		data: base + gpioDR,
		dir:  base + gpioGDIR,
	}
}

func (p *GPIOPin) Out() {
	mmio.Set(p.dir, p.num)
}

func (p *GPIOPin) In() {
	mmio.Clear(p.dir, p.num)
}

func (p *GPIOPin) High() {
	mmio.Set(p.data, p.num)
}

func (p *GPIOPin) Low() {
	mmio.Clear(p.data, p.num)
}

func (p *GPIOPin) Value() bool {
	return mmio.Get(p.data, p.num, 1) == 1
}

// Raw implements HotLine: READ_DATA, WRITE_DATA and INDEX are handed to
// the flux layer as (addr, pos) pairs rather than through the Pin
// interface, so the hot loop can dereference them directly in assembly
// without paying for an interface method call per symbol.
func (p *GPIOPin) Raw() (addr uint32, pos int) {
	return p.data, p.num
}
