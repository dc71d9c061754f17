package tinytar

import (
	"fmt"
	"io"
)

// writeContent copies exactly size bytes from src into the archive one
// block at a time, zero-padding the final partial block so content on
// disk is always block aligned. A source that runs dry before size
// bytes is an error.
func writeContent(bs *blockStream, src io.Reader, size int64, buf *Block) error {
	remaining := size
	for remaining > 0 {
		checkInterrupt()
		want := int64(recordSize)
		if remaining < want {
			want = remaining
		}
		n, err := io.ReadFull(src, buf[:want])
		if err != nil {
			return fmt.Errorf("short read with %v bytes left: %w", remaining, err)
		}
		bs.progress.current.Add(int64(n))
		if want < recordSize {
			clear(buf[want:])
		}
		if err := bs.WriteBlock(buf); err != nil {
			return err
		}
		remaining -= int64(n)
	}
	return nil
}

// readContent reads ceil(size/512) blocks from the archive and writes
// only the first size bytes to dst; the pad bytes of the final block
// never reach the output.
func readContent(bs *blockStream, dst io.Writer, size int64, buf *Block) error {
	remaining := size
	for remaining > 0 {
		checkInterrupt()
		ok, err := bs.ReadBlock(buf)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("truncated archive: %v content bytes missing", remaining)
		}
		n := int64(recordSize)
		if remaining < n {
			n = remaining
		}
		if _, err := dst.Write(buf[:n]); err != nil {
			return err
		}
		remaining -= n
	}
	return nil
}
