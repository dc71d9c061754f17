package tinytar

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// nextHeader reads the next header block during a sequential walk.
// Returns (nil, nil) at the logical end of the archive: a zero block or
// a short read. A non-zero block without the ustar magic is corruption.
func nextHeader(bs *blockStream, buf *Block) (*Entry, error) {
	ok, err := bs.ReadBlock(buf)
	if err != nil {
		return nil, err
	}
	if !ok || isZeroBlock(buf) {
		return nil, nil
	}
	if !isValidHeader(buf) {
		return nil, fmt.Errorf("no ustar magic at offset %v: %w", bs.Offset()-recordSize, ErrCorrupt)
	}
	return decodeHeader(buf), nil
}

type ListEntryOut struct {
	Name    string `json:"name"`
	Size    int64  `json:"size"`
	Mode    int64  `json:"mode"`
	UID     int64  `json:"uid"`
	GID     int64  `json:"gid"`
	ModTime int64  `json:"mod_time"`
}

type ArchiveListingOut struct {
	Archive    string         `json:"archive"`
	Files      []ListEntryOut `json:"files"`
	TotalBytes int64          `json:"total_bytes"`
}

// List walks the archive and reports each entry's name and size.
// An invalid-magic block mid-archive terminates the listing as
// corruption rather than being silently ignored.
func List(w io.Writer, archivePath string, asJSON bool) error {
	f, err := fsys.Open(archivePath)
	if err != nil {
		return fmt.Errorf("cannot open archive: %w", err)
	}
	defer f.Close()
	bs := newBlockStream(f, &progressData{})

	out := ArchiveListingOut{Archive: archivePath}
	fileCount := 0
	var buf Block
	for {
		checkInterrupt()
		entry, err := nextHeader(bs, &buf)
		if err != nil {
			return err
		}
		if entry == nil {
			break
		}

		if asJSON {
			out.Files = append(out.Files, ListEntryOut{
				Name:    entry.Name,
				Size:    entry.Size,
				Mode:    entry.Mode,
				UID:     entry.UID,
				GID:     entry.GID,
				ModTime: entry.ModTime.Unix(),
			})
		} else {
			fmt.Fprintf(w, "%v (%v bytes)\n", entry.Name, entry.Size)
		}
		fileCount++
		out.TotalBytes += entry.Size

		if err := bs.Skip(entry.Size); err != nil {
			return err
		}
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	fmt.Fprintf(w, "%v files, %v\n", fileCount, humanize.Bytes(uint64(out.TotalBytes)))
	return nil
}
