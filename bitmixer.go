package automaton

// mix32 is the 32 bit finalization step of MurmurHash3.
func mix32(v int) uint64 {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return uint64(k ^ (k >> 16))
}

// mix64 is the 64 bit finalization step of MurmurHash3.
func mix64(k uint64) uint64 {
	k = (k ^ (k >> 33)) * 0xff51afd7ed558ccd
	k = (k ^ (k >> 33)) * 0xc4ceb93fe53e5b63
	return k ^ (k >> 33)
}
