package tinytar

import "fmt"

// findAppendOffset walks the archive from the start and returns the
// byte offset at which new entries may be written. Headers carry no
// next-entry pointer, so the only way to find the true end is to visit
// every entry and skip its content.
//
// The first zero block whose successor is also zero is the trailer; its
// own offset is the insertion point, so the new write overwrites the old
// trailer and any stale bytes beyond it. End of input with no trailer
// means the archive ends exactly there. A zero block followed by a
// non-zero block is rewound and judged as a header candidate, which a
// zero block can never pass.
func findAppendOffset(bs *blockStream, buf *Block) (int64, error) {
	if err := bs.Seek(0); err != nil {
		return 0, err
	}

	for {
		checkInterrupt()
		offset := bs.Offset()
		ok, err := bs.ReadBlock(buf)
		if err != nil {
			return 0, err
		}
		if !ok {
			return offset, nil
		}

		if isZeroBlock(buf) {
			var peek Block
			ok, err := bs.ReadBlock(&peek)
			if err != nil {
				return 0, err
			}
			if ok && isZeroBlock(&peek) {
				return offset, nil
			}
			if ok {
				if err := bs.Seek(offset + recordSize); err != nil {
					return 0, err
				}
			}
		}

		if !isValidHeader(buf) {
			return 0, fmt.Errorf("no ustar magic at offset %v: %w", offset, ErrCorrupt)
		}

		size := parseOctal(buf[sizeOffset : sizeOffset+sizeLen])
		if err := bs.Skip(size); err != nil {
			return 0, err
		}
	}
}
