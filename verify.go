package tinytar

import (
	"fmt"
	"io"
)

// Verify is the opt-in strengthening of the permissive read policy: it
// recomputes every header checksum, checks the two-block trailer and
// the multiple-of-512 length invariant, and with a sum name also
// digests each entry's content with the selected hasher.
func Verify(w io.Writer, archivePath string, sumName string) error {
	sumType := checksumType
	digest := sumName != ""
	if digest {
		t, err := checksumTypeByName(sumName)
		if err != nil {
			return err
		}
		sumType = t
	}

	f, err := fsys.Open(archivePath)
	if err != nil {
		return fmt.Errorf("cannot open archive: %w", err)
	}
	defer f.Close()
	bs := newBlockStream(f, &progressData{})

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size()%recordSize != 0 {
		return fmt.Errorf("archive length %v is not a multiple of %v: %w", info.Size(), recordSize, ErrCorrupt)
	}

	var buf Block
	entries := 0
	for {
		checkInterrupt()
		ok, err := bs.ReadBlock(&buf)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("missing end-of-archive trailer: %w", ErrCorrupt)
		}
		if isZeroBlock(&buf) {
			break
		}
		if !isValidHeader(&buf) {
			return fmt.Errorf("no ustar magic at offset %v: %w", bs.Offset()-recordSize, ErrCorrupt)
		}

		entry := decodeHeader(&buf)
		want := headerChecksum(&buf)
		if entry.Checksum != want {
			return fmt.Errorf("header checksum mismatch for %v: stored %06o, computed %06o: %w",
				entry.Name, entry.Checksum, want, ErrCorrupt)
		}

		if digest {
			h := newHasher(sumType)
			if err := readContent(bs, h, entry.Size, &buf); err != nil {
				return fmt.Errorf("verifying %v: %w", entry.Name, err)
			}
			fmt.Fprintf(w, "%v  %x (%v bytes)\n", entry.Name, h.Sum(nil), entry.Size)
		} else {
			if err := bs.Skip(entry.Size); err != nil {
				return err
			}
			fmt.Fprintf(w, "%v (%v bytes)\n", entry.Name, entry.Size)
		}
		entries++
	}

	// First zero block seen; its partner completes the trailer.
	ok, err := bs.ReadBlock(&buf)
	if err != nil {
		return err
	}
	if !ok || !isZeroBlock(&buf) {
		return fmt.Errorf("incomplete end-of-archive trailer: %w", ErrCorrupt)
	}

	sumLabel := ""
	if digest {
		sumLabel = fmt.Sprintf(" (%v digests)", checksumName(sumType))
	}
	fmt.Fprintf(w, "OK: %v entries%v\n", entries, sumLabel)
	return nil
}
