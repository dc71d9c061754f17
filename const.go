package tinytar

const (
	recordSize = 512

	readBuffer  = 64 * 1024
	writeBuffer = readBuffer
)

// USTAR header field layout. Offsets and widths are fixed by the format;
// anything not listed here is left zero.
const (
	nameOffset = 0
	nameLen    = 100

	modeOffset  = 100
	uidOffset   = 108
	gidOffset   = 116
	octFieldLen = 8

	sizeOffset = 124
	sizeLen    = 12

	mtimeOffset = 136
	mtimeLen    = 12

	chksumOffset = 148
	chksumLen    = 8

	typeOffset = 156

	magicOffset = 257
	magicLen    = 8

	unameOffset = 265
	unameLen    = 32

	gnameOffset = 297
	gnameLen    = 32
)

const (
	typeRegular = '0'

	// headerMagic is what validation checks; magicField is what we write
	// (GNU-style magic+version, NUL terminated by the zeroed block).
	headerMagic = "ustar"
	magicField  = "ustar  "

	entryMode  = 0o644
	entryUID   = 1000
	entryGID   = 1000
	entryUname = "user"
	entryGname = "group"

	// mtimeFloor is 1980-01-01T00:00:00Z. Source timestamps at or below
	// this are considered missing and replaced with the current time.
	mtimeFloor = 315532800
)

// Checksum Types
const (
	sumCRC16 uint8 = iota
	sumCRC32
	sumXXHash
	sumSHA256
	sumBlake2b
	sumBlake3
)
