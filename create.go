package tinytar

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
)

// Create writes a fresh archive containing the given input files in
// order, followed by the two-block zero trailer. Non-regular and
// unopenable inputs are skipped with a diagnostic.
func Create(archivePath string, inputPaths []string) error {
	if err := preflightSpace(archivePath, inputPaths); err != nil {
		return err
	}

	if found, _ := fileExists(archivePath); found {
		doLog(true, "overwriting existing archive: %v", archivePath)
	}
	f, err := fsys.Create(archivePath)
	if err != nil {
		return fmt.Errorf("cannot create archive: %w", err)
	}
	bs := newBlockStream(f, &progressData{})
	doLog(true, "creating archive: %v, inputs: %v", archivePath, inputPaths)

	count, err := writeEntries(bs, inputPaths)
	if err != nil {
		bs.Close()
		return err
	}
	if err := writeTrailer(bs); err != nil {
		bs.Close()
		return err
	}
	if err := bs.Close(); err != nil {
		return err
	}

	doLog(false, "Wrote %v, %v containing %v files.", archivePath, humanize.Bytes(uint64(bs.Offset())), count)
	return nil
}

// Append locates the end of an existing archive and writes new entries
// over its trailer, then a fresh trailer. On a locate failure the
// archive is left untouched. Stale bytes past the new trailer are
// truncated away.
func Append(archivePath string, inputPaths []string) error {
	if err := preflightSpace(archivePath, inputPaths); err != nil {
		return err
	}

	f, err := fsys.OpenRW(archivePath)
	if err != nil {
		return fmt.Errorf("cannot open archive: %w", err)
	}
	bs := newBlockStream(f, &progressData{})

	var buf Block
	offset, err := findAppendOffset(bs, &buf)
	if err != nil {
		f.Close()
		return err
	}
	doLog(true, "appending to %v at offset %v", archivePath, offset)
	if err := bs.Seek(offset); err != nil {
		f.Close()
		return err
	}

	count, err := writeEntries(bs, inputPaths)
	if err != nil {
		bs.Close()
		return err
	}
	if err := writeTrailer(bs); err != nil {
		bs.Close()
		return err
	}
	if err := bs.Flush(); err != nil {
		bs.Close()
		return err
	}
	if err := f.Truncate(bs.Offset()); err != nil {
		bs.Close()
		return err
	}
	if err := bs.Close(); err != nil {
		return err
	}

	doLog(false, "Appended %v files to %v, now %v.", count, archivePath, humanize.Bytes(uint64(bs.Offset())))
	return nil
}

// writeEntries archives each input in order: header block, then the
// block-aligned content. Returns how many files made it in.
func writeEntries(bs *blockStream, inputPaths []string) (int, error) {
	var totalBytes int64
	for _, path := range inputPaths {
		if info, err := fsys.Stat(path); err == nil && info.Mode().IsRegular() {
			totalBytes += info.Size()
		}
	}

	p, done, finished := progressTicker(&progressData{total: totalBytes, speedWindowSize: time.Second * 5})
	bs.progress = p
	bs.doCount = true
	defer func() {
		close(done)
		<-finished
	}()

	var buf Block
	count := 0
	for _, path := range inputPaths {
		checkInterrupt()
		p.file.Store(path)

		info, err := fsys.Stat(path)
		if err != nil {
			doLog(false, "Skipping: %v (%v)", path, err)
			continue
		}
		if !info.Mode().IsRegular() {
			doLog(false, "Skipping: %v (not a regular file)", path)
			continue
		}

		src, err := fsys.Open(path)
		if err != nil {
			doLog(false, "Skipping: %v (%v)", path, err)
			continue
		}

		entry := &Entry{
			Name:    path,
			Size:    info.Size(),
			ModTime: entryModTime(info.ModTime()),
		}
		encodeHeader(&buf, entry)
		if err := bs.WriteBlock(&buf); err != nil {
			src.Close()
			return count, err
		}
		if err := writeContent(bs, src, entry.Size, &buf); err != nil {
			src.Close()
			return count, fmt.Errorf("archiving %v: %w", path, err)
		}
		src.Close()

		doLog(false, "%v (%v bytes)", entry.Name, entry.Size)
		count++
	}
	return count, nil
}

// writeTrailer emits the two all-zero blocks that mark end-of-archive.
// No padding beyond that; total length stays a multiple of 512.
func writeTrailer(bs *blockStream) error {
	var zero Block
	if err := bs.WriteBlock(&zero); err != nil {
		return err
	}
	return bs.WriteBlock(&zero)
}

func preflightSpace(archivePath string, inputPaths []string) error {
	if !SpaceCheck {
		return nil
	}
	var need uint64
	for _, path := range inputPaths {
		if info, err := fsys.Stat(path); err == nil && info.Mode().IsRegular() {
			need += uint64(contentBlocks(info.Size())*recordSize) + recordSize
		}
	}
	free, _, err := getDiskSpace(filepath.Dir(archivePath))
	if err != nil {
		doLog(false, "warning: free space check failed: %v", err)
		return nil
	}
	if need > free {
		return fmt.Errorf("insufficient disk space: need %v, available %v", humanize.Bytes(need), humanize.Bytes(free))
	}
	return nil
}
