package permkit

// Spec declares the flags and roles a [Kit] is built from.
//
// Flag names must be distinct and non-empty. Duplicates are a caller
// configuration error: the last declaration wins and nothing reports it.
type Spec struct {
	// Flags is the ordered flag list. The flag at index i is assigned
	// bit i, so reordering entries changes the meaning of every
	// externally stored permission value.
	Flags []string

	// Roles maps role names to the flag names they bundle. Names that do
	// not appear in Flags contribute nothing to the role's mask.
	Roles map[string][]string
}

// Kit maps flag names to bit values and role names to precomputed masks, and
// carries the permission operations. A Kit is frozen once [New] returns:
// nothing mutates it afterwards, so it needs no synchronization.
type Kit struct {
	flags     []string
	nameToBit map[string]int
	roles     map[string]Permission
}

// New builds a Kit from spec. Bit i goes to the i-th declared flag; each
// role's mask is the OR-fold of its listed flags' bits, with unknown names
// skipped.
func New(spec Spec) *Kit {
	k := &Kit{
		flags:     append([]string(nil), spec.Flags...),
		nameToBit: make(map[string]int, len(spec.Flags)),
		roles:     make(map[string]Permission, len(spec.Roles)),
	}
	for i, name := range spec.Flags {
		k.nameToBit[name] = i
	}
	for role, names := range spec.Roles {
		k.roles[role] = k.FromNames(names...)
	}
	return k
}

// Set returns p with every bit in mask enabled.
func (k *Kit) Set(p, mask Permission) Permission {
	return p.Or(mask)
}

// Clear returns p with every bit in mask disabled.
func (k *Kit) Clear(p, mask Permission) Permission {
	return p.AndNot(mask)
}

// Toggle returns p with every bit in mask flipped.
func (k *Kit) Toggle(p, mask Permission) Permission {
	return p.Xor(mask)
}

// HasAll reports whether every bit in mask is set in p. A zero mask is
// trivially satisfied.
func (k *Kit) HasAll(p, mask Permission) bool {
	return p.And(mask).Equal(mask)
}

// HasAny reports whether at least one bit in mask is set in p. Always false
// for a zero mask.
func (k *Kit) HasAny(p, mask Permission) bool {
	return !p.And(mask).IsZero()
}

// Names returns the declared flag names whose bit is set in p, in
// declaration order. Bits beyond the declared flags are ignored.
func (k *Kit) Names(p Permission) []string {
	var names []string
	for i, name := range k.flags {
		if p.Test(i) {
			names = append(names, name)
		}
	}
	return names
}

// FromNames OR-folds the bits of the given flag names, starting from zero.
// Unknown names contribute nothing; repeated names are idempotent.
func (k *Kit) FromNames(names ...string) Permission {
	var p Permission
	for _, name := range names {
		if bit, ok := k.nameToBit[name]; ok {
			p = p.Or(bitValue(bit))
		}
	}
	return p
}

// Bit returns the single-bit Permission for the named flag, or false if the
// flag was not declared. Strict callers validate membership through this
// before trusting externally supplied names.
func (k *Kit) Bit(name string) (Permission, bool) {
	bit, ok := k.nameToBit[name]
	if !ok {
		return Permission{}, false
	}
	return bitValue(bit), true
}

// Role returns the precomputed mask for the named role, or false if the role
// was not declared.
func (k *Kit) Role(name string) (Permission, bool) {
	mask, ok := k.roles[name]
	return mask, ok
}

// Bits returns a copy of the flag-name to bit-value mapping.
func (k *Kit) Bits() map[string]Permission {
	out := make(map[string]Permission, len(k.nameToBit))
	for name, bit := range k.nameToBit {
		out[name] = bitValue(bit)
	}
	return out
}

// Roles returns a copy of the role-name to mask mapping.
func (k *Kit) Roles() map[string]Permission {
	out := make(map[string]Permission, len(k.roles))
	for name, mask := range k.roles {
		out[name] = mask
	}
	return out
}

// Flags returns the flag names in declaration order.
func (k *Kit) Flags() []string {
	return append([]string(nil), k.flags...)
}

// Count returns the number of distinct declared flags.
func (k *Kit) Count() int {
	return len(k.nameToBit)
}
