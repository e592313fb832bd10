package chrono

/*
binary.go implements the fixed 13-byte binary codec:

	0:    version (currently 1)
	1-8:  seconds, big-endian signed 64-bit
	9-12: nanoseconds, big-endian signed 32-bit

The format is closed; no other version is defined.
*/

import "encoding/binary"

/*
BinarySize is the exact length in bytes of the binary encoding of a
[Time].
*/
const BinarySize = 13

// binaryVersion tags every encoded value; decoders reject all others.
const binaryVersion = 1

/*
EncodeBinary writes the binary representation of t into buf and
returns [BinarySize]. The buffer is written only when len(buf) is at
least [BinarySize], so callers detect a short buffer by comparing
the return value against len(buf).
*/
func (t Time) EncodeBinary(buf []byte) int {
	if len(buf) < BinarySize {
		return BinarySize
	}
	buf[0] = binaryVersion
	binary.BigEndian.PutUint64(buf[1:9], uint64(t.sec))
	binary.BigEndian.PutUint32(buf[9:13], uint32(t.nsec))
	return BinarySize
}

/*
DecodeBinary returns the time instant represented by the binary
data. Input shorter than [BinarySize] bytes, or carrying any version
tag other than 1, yields the zero [Time].
*/
func DecodeBinary(buf []byte) Time {
	if len(buf) < BinarySize || buf[0] != binaryVersion {
		return Time{}
	}
	sec := int64(binary.BigEndian.Uint64(buf[1:9]))
	nsec := int32(binary.BigEndian.Uint32(buf[9:13]))
	return Time{sec, nsec}
}
