package tinytar

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

func fileExists(filePath string) (bool, error) {
	_, err := os.Stat(filePath)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func doLog(verbose bool, format string, args ...interface{}) {
	if Quiet || (!Verbose && verbose) {
		return
	}

	var text string
	if args == nil {
		text = format
	} else {
		text = fmt.Sprintf(format, args...)
	}

	if verbose {
		ctime := time.Now()
		_, filename, line, _ := runtime.Caller(1)
		date := fmt.Sprintf("%2v:%2v.%2v", ctime.Hour(), ctime.Minute(), ctime.Second())
		fmt.Printf("%v: %15v:%5v: %v\n", date, filepath.Base(filename), line, text)
	} else {
		fmt.Println(text)
	}
}

// safeJoin joins base and target, ensuring the result stays within base.
func safeJoin(base, target string) (string, error) {
	cleanBase := filepath.Clean(base)
	cleanTarget := filepath.Clean(target)

	if filepath.IsAbs(cleanTarget) {
		cleanTarget = strings.TrimPrefix(cleanTarget, string(os.PathSeparator))
	}

	joined := filepath.Join(cleanBase, cleanTarget)
	joined = filepath.Clean(joined)

	if cleanBase == "." {
		if joined == ".." || strings.HasPrefix(joined, ".."+string(os.PathSeparator)) {
			return "", fmt.Errorf("illegal path: %s", target)
		}
		return joined, nil
	}

	prefix := cleanBase + string(os.PathSeparator)
	if joined != cleanBase && !strings.HasPrefix(joined, prefix) {
		return "", fmt.Errorf("illegal path: %s", target)
	}

	return joined, nil
}

func unixTime(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

// entryModTime applies the timestamp policy: the source mtime is used
// unless it predates 1980-01-01 (a missing-timestamp sentinel on the
// systems these archives come from), in which case the clock's current
// time stands in, itself clamped to the floor.
func entryModTime(mtime time.Time) time.Time {
	if mtime.Unix() > mtimeFloor {
		return mtime
	}
	now := clock.Now()
	if now.Unix() <= mtimeFloor {
		return unixTime(mtimeFloor)
	}
	return now
}
