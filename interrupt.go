package tinytar

import (
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
)

var interrupted atomic.Bool

// InstallInterruptHandler arms cooperative cancellation: SIGINT sets a
// flag the engine polls once per block copied and once per file or
// entry iteration. Termination is immediate; an interrupted create or
// append leaves a possibly-truncated archive.
func InstallInterruptHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		<-c
		interrupted.Store(true)
	}()
}

func checkInterrupt() {
	if interrupted.Load() {
		fmt.Fprintln(os.Stderr, "\ninterrupted")
		os.Exit(130)
	}
}
