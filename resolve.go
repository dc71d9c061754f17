package tinytar

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ResolveInputs expands glob patterns into regular-file paths and drops
// the target archive from its own inputs. Literal paths pass through
// untouched so the engine can report their open failures per file; only
// glob matches are filtered to regular files.
func ResolveInputs(specs []string, archivePath string) ([]string, error) {
	cleanArchive := filepath.Clean(archivePath)
	var paths []string
	for _, spec := range specs {
		checkInterrupt()
		if !strings.ContainsAny(spec, "*?[") {
			if filepath.Clean(spec) == cleanArchive {
				continue
			}
			paths = append(paths, spec)
			continue
		}

		matches, err := filepath.Glob(spec)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %v: %w", spec, err)
		}
		for _, m := range matches {
			if filepath.Clean(m) == cleanArchive {
				continue
			}
			info, err := fsys.Stat(m)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			paths = append(paths, m)
		}
	}
	return paths, nil
}
