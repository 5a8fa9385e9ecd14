package disnes

import "testing"

func TestAddressCheckedAddUnsigned(t *testing.T) {
	cases := []struct {
		addr   Address
		delta  int
		want   Address
		wantOK bool
	}{
		{0x1000, 0x10, 0x1010, true},
		{0xFFFF, 1, 0, false},
		{0xFFFE, 1, 0xFFFF, true},
		{0, 0, 0, true},
	}

	for _, tc := range cases {
		got, ok := tc.addr.CheckedAddUnsigned(tc.delta)
		if ok != tc.wantOK || (ok && got != tc.want) {
			t.Errorf("%s.CheckedAddUnsigned(%d) = (%s, %v), want (%s, %v)",
				tc.addr, tc.delta, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestAddressCheckedAddSignedUnderflow(t *testing.T) {
	if _, ok := Address(10).CheckedAddSigned(-11); ok {
		t.Errorf("CheckedAddSigned(-11) on address 10 should underflow")
	}
	got, ok := Address(10).CheckedAddSigned(-10)
	if !ok || got != 0 {
		t.Errorf("CheckedAddSigned(-10) on address 10 = (%s, %v), want (0, true)", got, ok)
	}
}

func TestAddressWrapping(t *testing.T) {
	if got := Address(0xFFFF).WrappingAddUnsigned(1); got != 0 {
		t.Errorf("0xFFFF.WrappingAddUnsigned(1) = %s, want $0000", got)
	}
	if got := Address(0).WrappingAddSigned(-1); got != 0xFFFF {
		t.Errorf("0.WrappingAddSigned(-1) = %s, want $FFFF", got)
	}
}

func TestAddressLEBytesRoundTrip(t *testing.T) {
	for _, v := range []uint16{0x0000, 0x00FF, 0x1234, 0xFFFF} {
		addr := Address(v)
		lo, hi := addr.ToLEBytes()
		got := AddressFromLEBytes(lo, hi)
		if got != addr {
			t.Errorf("LE byte round-trip of %s = %s", addr, got)
		}
	}
}

func TestAddressIsZeroPage(t *testing.T) {
	if !Address(0x00FF).IsZeroPage() {
		t.Errorf("$00FF should be zero page")
	}
	if Address(0x0100).IsZeroPage() {
		t.Errorf("$0100 should not be zero page")
	}
}

func TestNewAddressRangeMinMaxPanicsOnInverted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for min > max")
		}
	}()
	NewAddressRangeMinMax(10, 5)
}

func TestNewAddressRangeStartLenPanicsOnOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for range overflowing 16 bits")
		}
	}()
	NewAddressRangeStartLen(0xFFF0, 0x20)
}

func TestAddressRangeContainsAndIntersects(t *testing.T) {
	r := NewAddressRangeStartLen(0x8000, 0x4000) // [0x8000, 0xBFFF]

	if !r.ContainsAddr(0x8000) || !r.ContainsAddr(0xBFFF) {
		t.Errorf("range should contain its endpoints")
	}
	if r.ContainsAddr(0xC000) {
		t.Errorf("range should not contain 0xC000")
	}

	inner := NewAddressRangeMinMax(0x8100, 0x8200)
	if !r.ContainsRange(inner) {
		t.Errorf("range should contain a sub-range")
	}

	other := NewAddressRangeStartLen(0xC000, 0x4000)
	if r.Intersects(other) {
		t.Errorf("adjacent non-overlapping ranges should not intersect")
	}

	overlapping := NewAddressRangeStartLen(0xBF00, 0x200)
	if !r.Intersects(overlapping) {
		t.Errorf("overlapping ranges should intersect")
	}
}

func TestAddressRangeLenAndAddresses(t *testing.T) {
	r := NewAddressRangeStartLen(0x10, 4)
	if r.Len() != 4 {
		t.Errorf("Len() = %d, want 4", r.Len())
	}
	want := []Address{0x10, 0x11, 0x12, 0x13}
	got := r.Addresses()
	if len(got) != len(want) {
		t.Fatalf("Addresses() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Addresses()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
