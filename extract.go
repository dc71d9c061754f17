package tinytar

import (
	"fmt"
	"os"
	"time"
)

// Extract writes every entry of the archive into destination (the
// current directory when empty). An entry whose output cannot be opened
// is skipped, but its content blocks are still consumed so the
// traversal stays synchronized with the block stream.
func Extract(archivePath, destination string) error {
	f, err := fsys.Open(archivePath)
	if err != nil {
		return fmt.Errorf("cannot open archive: %w", err)
	}
	defer f.Close()
	bs := newBlockStream(f, &progressData{})

	if destination == "" {
		destination = "."
	}

	var totalBytes int64
	if info, err := f.Stat(); err == nil {
		totalBytes = info.Size()
	}
	p, done, finished := progressTicker(&progressData{total: totalBytes, speedWindowSize: time.Second * 5})
	bs.progress = p
	bs.doCount = true
	defer func() {
		close(done)
		<-finished
	}()

	var buf Block
	for {
		checkInterrupt()
		entry, err := nextHeader(bs, &buf)
		if err != nil {
			return err
		}
		if entry == nil {
			return nil
		}
		p.file.Store(entry.Name)

		target, err := safeJoin(destination, entry.Name)
		if err != nil {
			doLog(false, "Skipping: %v (%v)", entry.Name, err)
			if err := bs.Skip(entry.Size); err != nil {
				return err
			}
			continue
		}

		out, err := os.Create(target)
		if err != nil {
			doLog(false, "Skipping: %v (%v)", entry.Name, err)
			if err := bs.Skip(entry.Size); err != nil {
				return err
			}
			continue
		}

		if err := readContent(bs, out, entry.Size, &buf); err != nil {
			out.Close()
			return fmt.Errorf("extracting %v: %w", entry.Name, err)
		}
		if err := out.Close(); err != nil {
			return err
		}
		os.Chtimes(target, entry.ModTime, entry.ModTime)

		doLog(false, "%v (%v bytes)", entry.Name, entry.Size)
	}
}
