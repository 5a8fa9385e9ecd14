package disnes

// Permission is a per-address R/W/X flag triple.
type Permission struct {
	Readable   bool
	Writable   bool
	Executable bool
}

// NewPermission builds a Permission from its three flags.
func NewPermission(readable, writable, executable bool) Permission {
	return Permission{Readable: readable, Writable: writable, Executable: executable}
}

// Permissions is a 65536-element map from address to its Permission. The
// zero value has every address unreadable, unwritable, and unexecutable.
type Permissions [0x10000]Permission

// Get returns the permission at addr.
func (p *Permissions) Get(addr Address) Permission {
	return p[addr]
}

// Fill sets every address in r to perm.
func (p *Permissions) Fill(r AddressRange, perm Permission) {
	for v := int(r.Min()); v <= int(r.Max()); v++ {
		p[v] = perm
	}
}
