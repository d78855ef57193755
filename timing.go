// FILE: lixenwraith/classkit/timing.go
package classkit

import "time"

// Timing of the theme file watcher.
const (
	SpinWaitInterval     = 5 * time.Millisecond   // Sleep quantum while waiting for the watch loop to exit
	MinPollInterval      = 100 * time.Millisecond // Lower bound for WatchOptions.PollInterval
	ShutdownTimeout      = 100 * time.Millisecond // Upper bound StopWatch waits for the watch loop
	DefaultDebounce      = 500 * time.Millisecond // Quiet period before a changed theme file is reloaded
	DefaultPollInterval  = time.Second            // Theme file stat frequency
	DefaultReloadTimeout = 5 * time.Second        // Deadline for one ExtendFile reload
)
