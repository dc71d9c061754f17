package tinytar

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

// buildArchive assembles raw archive bytes from (name, content) pairs,
// optionally with the two-block trailer.
func buildArchive(t *testing.T, withTrailer bool, entries ...[2]string) []byte {
	t.Helper()
	var out bytes.Buffer
	var buf Block
	for _, e := range entries {
		name, content := e[0], e[1]
		encodeHeader(&buf, &Entry{
			Name:    name,
			Size:    int64(len(content)),
			ModTime: time.Unix(1700000000, 0),
		})
		out.Write(buf[:])
		out.WriteString(content)
		if pad := len(content) % recordSize; pad != 0 {
			out.Write(make([]byte, recordSize-pad))
		}
	}
	if withTrailer {
		out.Write(make([]byte, recordSize*2))
	}
	return out.Bytes()
}

func TestFindAppendOffsetAtTrailer(t *testing.T) {
	ResetDefaults()
	data := buildArchive(t, true, [2]string{"a.txt", "hello"}, [2]string{"b.txt", "world!"})
	bs := openTestStream(t, data)

	var buf Block
	off, err := findAppendOffset(bs, &buf)
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	// Two entries of one content block each; the trailer starts after
	// four blocks and is the insertion point.
	if want := int64(recordSize * 4); off != want {
		t.Fatalf("offset = %v, want %v", off, want)
	}
}

func TestFindAppendOffsetNoTrailer(t *testing.T) {
	ResetDefaults()
	data := buildArchive(t, false, [2]string{"a.txt", "hello"})
	bs := openTestStream(t, data)

	var buf Block
	off, err := findAppendOffset(bs, &buf)
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if want := int64(len(data)); off != want {
		t.Fatalf("offset = %v, want end of input %v", off, want)
	}
}

func TestFindAppendOffsetEmptyArchive(t *testing.T) {
	ResetDefaults()
	bs := openTestStream(t, nil)

	var buf Block
	off, err := findAppendOffset(bs, &buf)
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if off != 0 {
		t.Fatalf("offset = %v, want 0", off)
	}
}

func TestFindAppendOffsetZeroContentBlock(t *testing.T) {
	ResetDefaults()
	// An entry whose content is itself all zero must not be mistaken
	// for the trailer: the scan skips content by size, never by value.
	zeros := string(make([]byte, recordSize))
	data := buildArchive(t, true, [2]string{"zeros.bin", zeros}, [2]string{"b.txt", "tail"})
	bs := openTestStream(t, data)

	var buf Block
	off, err := findAppendOffset(bs, &buf)
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if want := int64(recordSize * 4); off != want {
		t.Fatalf("offset = %v, want %v", off, want)
	}
}

func TestFindAppendOffsetFirstZeroWins(t *testing.T) {
	ResetDefaults()
	// Stale data past the trailer is ignored; the first zero pair is
	// authoritative.
	data := buildArchive(t, true, [2]string{"a.txt", "hello"})
	stale := buildArchive(t, false, [2]string{"stale.txt", "old data"})
	bs := openTestStream(t, append(data, stale...))

	var buf Block
	off, err := findAppendOffset(bs, &buf)
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if want := int64(recordSize * 2); off != want {
		t.Fatalf("offset = %v, want first trailer block at %v", off, want)
	}
}

func TestFindAppendOffsetCorruptMagic(t *testing.T) {
	ResetDefaults()
	data := buildArchive(t, true, [2]string{"a.txt", "hello"}, [2]string{"b.txt", "world"})
	data[recordSize*2+magicOffset] = 'X'
	bs := openTestStream(t, data)

	var buf Block
	if _, err := findAppendOffset(bs, &buf); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("err = %v, want ErrCorrupt", err)
	}
}

func TestFindAppendOffsetLoneZeroBlock(t *testing.T) {
	ResetDefaults()
	// A zero block that is not followed by a second zero block cannot
	// be a header and cannot be a trailer: corrupt.
	data := buildArchive(t, false, [2]string{"a.txt", "hello"})
	data = append(data, make([]byte, recordSize)...)
	bs := openTestStream(t, data)

	var buf Block
	if _, err := findAppendOffset(bs, &buf); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("err = %v, want ErrCorrupt", err)
	}
}
