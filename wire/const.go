package wire

// Major types, RFC 8949 section 3.1. A head's first three bits select one.
const (
	MajorUnsigned byte = 0 // unsigned integer
	MajorNegative byte = 1 // negative integer, value is -1 - argument
	MajorBytes    byte = 2 // byte string
	MajorText     byte = 3 // UTF-8 text string
	MajorArray    byte = 4 // array, argument is element count
	MajorMap      byte = 5 // map, argument is pair count
	MajorTag      byte = 6 // semantic tag
	MajorSimple   byte = 7 // simple values and floats
)

// Additional-information values that select how the head argument is
// carried. Values 0-23 hold the argument directly.
const (
	// AIImmediateMax is the largest argument encoded inside the head byte.
	AIImmediateMax byte = 23

	AIUint8  byte = 24 // 1-byte argument
	AIUint16 byte = 25 // 2-byte argument; float16 under major type 7
	AIUint32 byte = 26 // 4-byte argument; float32 under major type 7
	AIUint64 byte = 27 // 8-byte argument; float64 under major type 7

	// AIReservedMin through AIReservedMax are unassigned by RFC 8949 and
	// always malformed.
	AIReservedMin byte = 28
	AIReservedMax byte = 30

	// AIIndefinite starts an indefinite-length item, which the canonical
	// subset forbids.
	AIIndefinite byte = 31
)

// Simple values under major type 7 with immediate argument.
const (
	SimpleFalse     byte = 20
	SimpleTrue      byte = 21
	SimpleNull      byte = 22
	SimpleUndefined byte = 23
)

// CanonicalNaN16 is the only NaN the Writer emits: the half-width quiet NaN
// with a zero payload.
const CanonicalNaN16 uint16 = 0x7e00
