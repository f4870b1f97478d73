package xci

const (
	GiB = 1024 * 1024 * 1024
	MiB = 1024 * 1024

	// Every GiB of nominal capacity loses this many MiB to the system area
	ReservedMiBPerGiB = 0x48
)

// Known capacity codes and the nominal cart size (GiB) they represent
var CapacityCodes = map[uint8]int{
	0xF8: 2,
	0xF0: 4,
	0xE0: 8,
	0xE1: 16,
	0xE2: 32,
}

// Map a capacity code to the nominal size in GiB and the usable cart capacity
// in bytes. Unknown codes are never guessed.
func ResolveCapacity(code uint8) (int, int64, error) {
	nominal, ok := CapacityCodes[code]
	if !ok {
		return 0, 0, &UnknownCapacityError{Code: code}
	}
	return nominal, CartCapacityBytes(nominal), nil
}

// The real usable capacity of a cart with the given nominal size
func CartCapacityBytes(nominalGiB int) int64 {
	n := int64(nominalGiB)
	return n*GiB - n*ReservedMiBPerGiB*MiB
}

// Convert the header's padding start sector into a byte offset. The header
// sector itself is not counted in the stored value, hence the extra sector.
func PaddingOffset(sector uint32) int64 {
	return int64(sector)*XciSectorSize + XciSectorSize
}

// Size in GiB, for display only. Never use this for a size decision!
func SizeGiB(size int64) float64 {
	return float64(size) / float64(GiB)
}
