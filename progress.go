package tinytar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"
)

const (
	// maxBarWidth limits the progress bar size so that extremely wide
	// terminals don't allocate a huge bar.
	maxBarWidth  = 60
	updatePeriod = time.Second / 4
)

func getLineWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

type sample struct {
	timestamp time.Time
	bytes     int64
}

type progressData struct {
	current, written atomic.Int64
	total            int64
	speedWindow      []sample
	speedWindowSize  time.Duration
	startTime        time.Time
	lastPrintStr     string
	file             atomic.Value
}

func progressTicker(p *progressData) (*progressData, chan struct{}, chan struct{}) {
	done := make(chan struct{})
	finished := make(chan struct{})
	if !Progress {
		close(finished)
		return p, done, finished
	}

	p.startTime = time.Now()

	go func() {
		ticker := time.NewTicker(updatePeriod)
		defer ticker.Stop()
		defer close(finished)

		for {
			select {
			case <-ticker.C:
				printProgress(p)
			case <-done:
				printProgress(p)
				fmt.Print("\n")
				return
			}
		}
	}()

	return p, done, finished
}

func printProgress(p *progressData) {
	now := time.Now()

	frac := 1.0
	if p.total > 0 {
		frac = float64(p.current.Load()) / float64(p.total)
		if frac > 1 {
			frac = 1
		}
	}

	// Moving-window speed
	var speed float64
	p.speedWindow = append(p.speedWindow, sample{timestamp: now, bytes: p.written.Load()})
	cutoff := now.Add(-p.speedWindowSize)
	i := 0
	for ; i < len(p.speedWindow); i++ {
		if p.speedWindow[i].timestamp.After(cutoff) {
			break
		}
	}
	p.speedWindow = p.speedWindow[i:]
	if len(p.speedWindow) > 1 {
		bytesDelta := p.speedWindow[len(p.speedWindow)-1].bytes - p.speedWindow[0].bytes
		seconds := p.speedWindow[len(p.speedWindow)-1].timestamp.Sub(p.speedWindow[0].timestamp).Seconds()
		speed = float64(bytesDelta) / seconds
	}

	// Overall average since start
	if frac >= 1 && !p.startTime.IsZero() {
		elapsed := now.Sub(p.startTime).Seconds()
		if elapsed > 0 {
			speed = float64(p.written.Load()) / elapsed
		}
	}

	fileName, _ := p.file.Load().(string)
	fileName = filepath.Base(fileName)

	info := fmt.Sprintf(" %3.2f%% %v/s %s", frac*100, humanize.Bytes(uint64(speed)), fileName)
	width := getLineWidth()
	barWidth := width - len(info) - 2
	if barWidth > maxBarWidth {
		barWidth = maxBarWidth
	}
	if barWidth < 0 {
		barWidth = 0
	}

	filled := int(frac * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	bar := "[" + strings.Repeat("=", filled) + strings.Repeat(" ", barWidth-filled) + "]"

	out := bar + info

	// Print only if changed (reduce flicker)
	if out != p.lastPrintStr {
		fmt.Printf("\r\033[K%s", out)
		p.lastPrintStr = out
	}
}
