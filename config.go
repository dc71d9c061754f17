package tinytar

import (
	"io"
	"os"
	"time"
)

var (
	Verbose    bool
	Quiet      bool
	Progress   bool
	SpaceCheck bool

	checksumType uint8
)

// Entry is the decoded metadata of one archive member.
type Entry struct {
	Name     string
	Size     int64
	Mode     int64
	UID      int64
	GID      int64
	ModTime  time.Time
	Checksum int64
}

type fileLike interface {
	io.ReadWriteSeeker
	Sync() error
	Close() error
	Truncate(size int64) error
	Name() string
	Stat() (os.FileInfo, error)
}

// clockSource supplies the fallback timestamp for sources without a
// usable mtime. Swapped out in tests.
type clockSource interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

var clock clockSource = systemClock{}

// fileSystem is the provider the archive engine opens files through.
// Platforms without read-write reopen support return an error from
// OpenRW and append fails cleanly.
type fileSystem interface {
	Open(name string) (fileLike, error)
	Create(name string) (fileLike, error)
	OpenRW(name string) (fileLike, error)
	Stat(name string) (os.FileInfo, error)
}

type osFS struct{}

func (osFS) Open(name string) (fileLike, error)   { return os.Open(name) }
func (osFS) Create(name string) (fileLike, error) { return os.Create(name) }
func (osFS) OpenRW(name string) (fileLike, error) {
	return os.OpenFile(name, os.O_RDWR, 0o644)
}
func (osFS) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }

var fsys fileSystem = osFS{}
