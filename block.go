package tinytar

import (
	"bufio"
	"io"
)

// blockStream is buffered whole-block I/O over an open archive handle.
// It owns the stream-position cursor for whichever mode is driving the
// scan; Seek flushes the writer and discards the read buffer so both
// sides stay coherent.
type blockStream struct {
	doCount  bool
	file     fileLike
	writer   *bufio.Writer
	reader   *bufio.Reader
	offset   int64
	progress *progressData
}

func newBlockStream(file fileLike, p *progressData) *blockStream {
	return &blockStream{
		file:     file,
		writer:   bufio.NewWriterSize(file, writeBuffer),
		reader:   bufio.NewReaderSize(file, readBuffer),
		progress: p,
	}
}

// ReadBlock reads the next whole block into buf. A clean EOF or a short
// final read is end of archive, reported as (false, nil), never an error.
func (bs *blockStream) ReadBlock(buf *Block) (bool, error) {
	n, err := io.ReadFull(bs.reader, buf[:])
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	bs.offset += int64(n)
	bs.progress.current.Add(int64(n))
	return true, nil
}

func (bs *blockStream) WriteBlock(buf *Block) error {
	n, err := bs.writer.Write(buf[:])
	bs.offset += int64(n)
	if bs.doCount {
		bs.progress.written.Add(int64(n))
	}
	return err
}

// Skip advances past the content of an entry of the given byte size,
// rounded up to whole blocks.
func (bs *blockStream) Skip(size int64) error {
	return bs.Seek(bs.offset + contentBlocks(size)*recordSize)
}

func (bs *blockStream) Offset() int64 {
	return bs.offset
}

func (bs *blockStream) Seek(offset int64) error {
	if err := bs.writer.Flush(); err != nil {
		return err
	}
	if _, err := bs.file.Seek(offset, io.SeekStart); err != nil {
		return err
	}
	bs.reader.Reset(bs.file)
	bs.writer.Reset(bs.file)
	bs.offset = offset
	return nil
}

func (bs *blockStream) Flush() error {
	return bs.writer.Flush()
}

func (bs *blockStream) Sync() error {
	if err := bs.writer.Flush(); err != nil {
		return err
	}
	return bs.file.Sync()
}

func (bs *blockStream) Close() error {
	if err := bs.writer.Flush(); err != nil {
		bs.file.Close()
		return err
	}
	if err := bs.file.Sync(); err != nil {
		bs.file.Close()
		return err
	}
	return bs.file.Close()
}
