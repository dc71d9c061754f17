package tinytar

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

// ErrCorrupt is returned when a block that must be a header does not
// carry the ustar magic. Append, list, extract and verify all stop on it.
var ErrCorrupt = errors.New("invalid or corrupt tar archive")

// Block is one 512-byte archive record. Scratch blocks are owned by the
// operation driving the scan and passed down explicitly.
type Block [recordSize]byte

// putOctal writes v as zero-padded octal ASCII into dst with a
// terminating NUL, the fixed-width convention used for all numeric
// header fields.
func putOctal(dst []byte, v int64) {
	s := strconv.FormatInt(v, 8)
	width := len(dst) - 1
	if len(s) > width {
		s = s[len(s)-width:]
	}
	i := 0
	for ; i < width-len(s); i++ {
		dst[i] = '0'
	}
	copy(dst[i:], s)
	dst[len(dst)-1] = 0
}

// parseOctal is deliberately permissive: bytes outside '0'..'7'
// contribute nothing and never raise an error.
func parseOctal(b []byte) int64 {
	var v int64
	for _, c := range b {
		if c >= '0' && c <= '7' {
			v = v<<3 + int64(c-'0')
		}
	}
	return v
}

// headerChecksum is the unsigned byte sum of the block with the eight
// checksum bytes counted as ASCII spaces.
func headerChecksum(b *Block) int64 {
	var sum int64
	for i, c := range b {
		if i >= chksumOffset && i < chksumOffset+chksumLen {
			sum += ' '
		} else {
			sum += int64(c)
		}
	}
	return sum
}

// encodeHeader fills buf with the USTAR header for e. Names longer than
// the 100-byte field are truncated to exactly 100 bytes.
func encodeHeader(buf *Block, e *Entry) {
	clear(buf[:])

	name := e.Name
	if len(name) > nameLen {
		doLog(true, "name truncated to %v bytes: %v", nameLen, name)
		name = name[:nameLen]
	}
	copy(buf[nameOffset:nameOffset+nameLen], name)

	putOctal(buf[modeOffset:modeOffset+octFieldLen], entryMode)
	putOctal(buf[uidOffset:uidOffset+octFieldLen], entryUID)
	putOctal(buf[gidOffset:gidOffset+octFieldLen], entryGID)
	putOctal(buf[sizeOffset:sizeOffset+sizeLen], e.Size)
	putOctal(buf[mtimeOffset:mtimeOffset+mtimeLen], e.ModTime.Unix())

	buf[typeOffset] = typeRegular
	copy(buf[magicOffset:magicOffset+magicLen], magicField)
	copy(buf[unameOffset:unameOffset+unameLen], entryUname)
	copy(buf[gnameOffset:gnameOffset+gnameLen], entryGname)

	sum := headerChecksum(buf)
	copy(buf[chksumOffset:], fmt.Sprintf("%06o", sum))
	buf[chksumOffset+6] = 0
	buf[chksumOffset+7] = ' '
}

// decodeHeader pulls the entry metadata out of a header block.
// Non-printable name bytes are replaced with '?' for both display and
// output paths.
func decodeHeader(buf *Block) *Entry {
	raw := buf[nameOffset : nameOffset+nameLen]
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	name := make([]byte, len(raw))
	for i, c := range raw {
		if c < 0x20 || c > 0x7e {
			c = '?'
		}
		name[i] = c
	}

	return &Entry{
		Name:     string(name),
		Mode:     parseOctal(buf[modeOffset : modeOffset+octFieldLen]),
		UID:      parseOctal(buf[uidOffset : uidOffset+octFieldLen]),
		GID:      parseOctal(buf[gidOffset : gidOffset+octFieldLen]),
		Size:     parseOctal(buf[sizeOffset : sizeOffset+sizeLen]),
		ModTime:  unixTime(parseOctal(buf[mtimeOffset : mtimeOffset+mtimeLen])),
		Checksum: parseOctal(buf[chksumOffset : chksumOffset+chksumLen]),
	}
}

// isValidHeader checks the ustar magic only. Checksums are not verified
// on normal reads; the verify mode is the opt-in strengthening.
func isValidHeader(buf *Block) bool {
	return string(buf[magicOffset:magicOffset+len(headerMagic)]) == headerMagic
}

func isZeroBlock(buf *Block) bool {
	for _, c := range buf {
		if c != 0 {
			return false
		}
	}
	return true
}

// contentBlocks returns how many 512-byte blocks hold size bytes.
func contentBlocks(size int64) int64 {
	return (size + recordSize - 1) / recordSize
}
