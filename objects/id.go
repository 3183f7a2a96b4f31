package objects

import "fmt"

// ID identifies a registered object.
// The low 32 bits are the slot index, the high 32 bits the slot generation.
// Generations start at 1, so the zero ID is never issued.
type ID uint64

func makeID(slot uint32, generation uint32) ID {
	return ID(uint64(generation)<<32 | uint64(slot))
}

func (i ID) IsValid() bool {
	return i != 0
}

func (i ID) slot() uint32 {
	return uint32(i)
}

func (i ID) generation() uint32 {
	return uint32(i >> 32)
}

func (i ID) String() string {
	if i == 0 {
		return "<invalid>"
	}
	return fmt.Sprintf("%d", uint64(i))
}
