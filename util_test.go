package tinytar

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type fakeClock struct{ now time.Time }

func (c fakeClock) Now() time.Time { return c.now }

func TestEntryModTimePolicy(t *testing.T) {
	ResetDefaults()
	t.Cleanup(ResetDefaults)

	now := time.Unix(1700000000, 0).UTC()
	clock = fakeClock{now: now}

	cases := []struct {
		name  string
		mtime time.Time
		want  time.Time
	}{
		{"normal mtime kept", time.Unix(1600000000, 0), time.Unix(1600000000, 0)},
		{"pre-1980 falls back to clock", time.Unix(1000, 0), now},
		{"floor exactly falls back to clock", time.Unix(mtimeFloor, 0), now},
		{"just past floor kept", time.Unix(mtimeFloor+1, 0), time.Unix(mtimeFloor+1, 0)},
	}
	for _, tc := range cases {
		if got := entryModTime(tc.mtime); !got.Equal(tc.want) {
			t.Errorf("%v: got %v, want %v", tc.name, got, tc.want)
		}
	}

	// A clock that itself predates the floor clamps to the floor.
	clock = fakeClock{now: time.Unix(100, 0)}
	if got := entryModTime(time.Unix(1000, 0)); got.Unix() != mtimeFloor {
		t.Errorf("clamped fallback = %v, want floor %v", got.Unix(), mtimeFloor)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.txt")

	found, err := fileExists(path)
	if err != nil || found {
		t.Fatalf("missing file: found=%v err=%v", found, err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	found, err = fileExists(path)
	if err != nil || !found {
		t.Fatalf("existing file: found=%v err=%v", found, err)
	}
}
