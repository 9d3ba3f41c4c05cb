// Package bus implements the address-space multiplexer that sits between
// the CPU and its memory-mapped devices. Rather than backing every address
// with a single fixed-size array, a Bus holds an ordered table of named,
// ranged devices and forwards reads and writes to whichever one first
// claims a given address.
package bus

import "fmt"

// Addressable is the capability every memory-mapped device on a Bus must
// provide: bounded, total byte-addressed read/write plus a point-in-time
// snapshot of its contents.
type Addressable interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
	InBounds(addr uint16) bool
	Snapshot() []byte
}

// OutOfBoundsError reports an access to an address no connected device
// claims. The cpu package wraps this with %w into its own exported
// cpu.OutOfBounds so callers outside bus never need to import it directly.
type OutOfBoundsError struct {
	Addr uint16
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("bus: out of bounds address %#04x", e.Addr)
}

type route struct {
	name   string
	start  uint16
	end    uint16
	device Addressable
}

func (r route) contains(addr uint16) bool {
	return addr >= r.start && addr <= r.end
}

// Bus is a routing table mapping inclusive address ranges to devices.
// Routes are matched in registration order; overlapping ranges are a
// configuration error the Bus does not defend against (the first
// registered route wins for any address it covers).
type Bus struct {
	routes []route
}

// New returns an empty Bus with no connected devices.
func New() *Bus {
	return &Bus{}
}

// Connect appends a route serving [start, end] (inclusive) to device.
// Connect never removes or reorders earlier routes: a later, overlapping
// route is simply unreachable at the addresses an earlier route already
// claims.
func (b *Bus) Connect(name string, start, end uint16, device Addressable) {
	b.routes = append(b.routes, route{name: name, start: start, end: end, device: device})
}

func (b *Bus) find(addr uint16) (route, bool) {
	for _, r := range b.routes {
		if r.contains(addr) {
			return r, true
		}
	}
	return route{}, false
}

// Read returns the byte at addr, delegating to the first matching route.
// It returns *OutOfBoundsError if no route claims addr.
func (b *Bus) Read(addr uint16) (byte, error) {
	r, ok := b.find(addr)
	if !ok {
		return 0, &OutOfBoundsError{Addr: addr}
	}
	return r.device.Read(addr), nil
}

// Write stores value at addr, delegating to the first matching route.
// It returns *OutOfBoundsError if no route claims addr.
func (b *Bus) Write(addr uint16, value byte) error {
	r, ok := b.find(addr)
	if !ok {
		return &OutOfBoundsError{Addr: addr}
	}
	r.device.Write(addr, value)
	return nil
}

// InBounds reports whether any connected route claims addr.
func (b *Bus) InBounds(addr uint16) bool {
	_, ok := b.find(addr)
	return ok
}

// Snapshot returns a byte image sized to the largest end address observed
// across all routes, with each route's covered region filled in from that
// device's own Snapshot and all uncovered addresses left zero.
func (b *Bus) Snapshot() []byte {
	var end uint16
	for _, r := range b.routes {
		if r.end > end {
			end = r.end
		}
	}
	dump := make([]byte, int(end)+1)
	for _, r := range b.routes {
		devDump := r.device.Snapshot()
		for i := int(r.start); i <= int(r.end) && i < len(devDump); i++ {
			dump[i] = devDump[i]
		}
	}
	return dump
}
