package disnes

import "fmt"

// Address is a 16-bit address into the NES CPU's logical address space.
type Address uint16

// ZpAddress is a zero-page address (the low byte of an Address).
type ZpAddress uint8

// IsZeroPage reports whether addr lies in the zero page (0x0000-0x00FF).
func (addr Address) IsZeroPage() bool {
	return addr <= 0xFF
}

// CheckedAddUnsigned adds delta to addr, returning ok=false on 16-bit overflow.
func (addr Address) CheckedAddUnsigned(delta int) (Address, bool) {
	v := int(addr) + delta
	if v < 0 || v > 0xFFFF {
		return 0, false
	}
	return Address(v), true
}

// CheckedAddSigned adds a signed delta to addr, returning ok=false on 16-bit overflow.
func (addr Address) CheckedAddSigned(delta int) (Address, bool) {
	return addr.CheckedAddUnsigned(delta)
}

// WrappingAddUnsigned adds delta to addr, wrapping modulo 0x10000.
func (addr Address) WrappingAddUnsigned(delta int) Address {
	return Address(uint16(int(addr) + delta))
}

// WrappingAddSigned adds a signed delta to addr, wrapping modulo 0x10000.
func (addr Address) WrappingAddSigned(delta int) Address {
	return addr.WrappingAddUnsigned(delta)
}

// AddressFromLEBytes decodes a little-endian 16-bit address.
func AddressFromLEBytes(lo, hi byte) Address {
	return Address(uint16(lo) | uint16(hi)<<8)
}

// ToLEBytes encodes addr as little-endian bytes (lo, hi).
func (addr Address) ToLEBytes() (byte, byte) {
	return byte(addr), byte(addr >> 8)
}

// Address widens a zero-page address to a full 16-bit address.
func (zp ZpAddress) Address() Address {
	return Address(zp)
}

func (addr Address) String() string {
	return fmt.Sprintf("$%04X", uint16(addr))
}

// ForEachAddress calls fn once for every address in the 16-bit space, in
// ascending order.
func ForEachAddress(fn func(Address)) {
	for v := 0; v <= 0xFFFF; v++ {
		fn(Address(v))
	}
}

// AddressRange is a nonempty closed interval [Min, Max] of addresses.
type AddressRange struct {
	min Address
	max Address
}

// NewAddressRangeMinMax builds a range from explicit endpoints. Panics if
// min > max: that is a programming error, not a data error.
func NewAddressRangeMinMax(min, max Address) AddressRange {
	if min > max {
		panic(fmt.Sprintf("disnes: AddressRange: min %s > max %s", min, max))
	}
	return AddressRange{min: min, max: max}
}

// NewAddressRangeStartLen builds a range from a start address and a byte
// count. Panics if the range would overflow the 16-bit address space.
func NewAddressRangeStartLen(start Address, length int) AddressRange {
	if length <= 0 {
		panic("disnes: AddressRange: length must be positive")
	}
	max, ok := start.CheckedAddUnsigned(length - 1)
	if !ok {
		panic(fmt.Sprintf("disnes: AddressRange: start=%s len=%#x overflows 16 bits", start, length))
	}
	return AddressRange{min: start, max: max}
}

// Min returns the lowest address in the range.
func (r AddressRange) Min() Address { return r.min }

// Max returns the highest address in the range.
func (r AddressRange) Max() Address { return r.max }

// Len returns the number of addresses in the range.
func (r AddressRange) Len() int {
	return int(r.max) - int(r.min) + 1
}

// ContainsAddr reports whether addr lies within the range.
func (r AddressRange) ContainsAddr(addr Address) bool {
	return addr >= r.min && addr <= r.max
}

// ContainsRange reports whether other is entirely contained within r.
func (r AddressRange) ContainsRange(other AddressRange) bool {
	return other.min >= r.min && other.max <= r.max
}

// Intersects reports whether r and other share at least one address.
func (r AddressRange) Intersects(other AddressRange) bool {
	return r.min <= other.max && other.min <= r.max
}

// Addresses returns every address in the range, in ascending order.
func (r AddressRange) Addresses() []Address {
	out := make([]Address, 0, r.Len())
	for v := int(r.min); v <= int(r.max); v++ {
		out = append(out, Address(v))
	}
	return out
}

func (r AddressRange) String() string {
	return fmt.Sprintf("[%s, %s]", r.min, r.max)
}
