package entity

// SelectRepresentative picks the address that stands for an owner in a role.
// addresses must be ordered by creation time, oldest first.
//
// One address wins regardless of flags. Otherwise the oldest address with the
// flag wins, then the most recently created one. Nil for an empty slice.
func SelectRepresentative(addresses []*Address, flag Flag) *Address {
	switch len(addresses) {
	case 0:
		return nil
	case 1:
		return addresses[0]
	}

	for _, addr := range addresses {
		if addr.HasFlag(flag) {
			return addr
		}
	}

	return addresses[len(addresses)-1]
}
