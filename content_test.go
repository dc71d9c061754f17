package tinytar

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteContentPadsFinalBlock(t *testing.T) {
	bs := openTestStream(t, nil)

	src := strings.NewReader("ten bytes!")
	var buf Block
	// Dirty scratch buffer: padding must still come out zero.
	for i := range buf {
		buf[i] = 0xEE
	}
	if err := writeContent(bs, src, 10, &buf); err != nil {
		t.Fatalf("writeContent: %v", err)
	}
	if err := bs.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if bs.Offset() != recordSize {
		t.Fatalf("offset = %v, want one block", bs.Offset())
	}

	if err := bs.Seek(0); err != nil {
		t.Fatalf("seek: %v", err)
	}
	var got Block
	ok, err := bs.ReadBlock(&got)
	if err != nil || !ok {
		t.Fatalf("read back: ok=%v err=%v", ok, err)
	}
	if string(got[:10]) != "ten bytes!" {
		t.Fatalf("content = %q", got[:10])
	}
	for i := 10; i < recordSize; i++ {
		if got[i] != 0 {
			t.Fatalf("pad byte %v is %#x, want zero", i, got[i])
		}
	}
}

func TestWriteContentShortSource(t *testing.T) {
	bs := openTestStream(t, nil)

	var buf Block
	err := writeContent(bs, strings.NewReader("short"), 100, &buf)
	if err == nil {
		t.Fatal("expected error for source shorter than the declared size")
	}
}

func TestReadContentDiscardsPad(t *testing.T) {
	data := make([]byte, recordSize*2)
	copy(data, bytes.Repeat([]byte("ab"), 300)) // 600 content bytes
	bs := openTestStream(t, data)

	var out bytes.Buffer
	var buf Block
	if err := readContent(bs, &out, 600, &buf); err != nil {
		t.Fatalf("readContent: %v", err)
	}
	if out.Len() != 600 {
		t.Fatalf("wrote %v bytes, want 600", out.Len())
	}
	if !bytes.Equal(out.Bytes(), data[:600]) {
		t.Fatal("content mismatch")
	}
	if bs.Offset() != recordSize*2 {
		t.Fatalf("offset = %v, want both blocks consumed", bs.Offset())
	}
}

func TestReadContentTruncatedArchive(t *testing.T) {
	bs := openTestStream(t, make([]byte, recordSize))

	var out bytes.Buffer
	var buf Block
	err := readContent(bs, &out, recordSize*2, &buf)
	if err == nil {
		t.Fatal("expected error for truncated archive")
	}
	if !strings.Contains(err.Error(), "truncated") {
		t.Fatalf("err = %v", err)
	}
}
