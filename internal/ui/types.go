// Package ui provides terminal presentation for pyforge: color theming,
// headless mode detection, and progress reporting during scaffolding.
package ui

// Progress creates progress indicators appropriate for the current
// terminal: animated bars and spinners on a TTY, plain log lines in
// headless mode.
type Progress interface {
	// Start creates a determinate progress bar with the given total.
	Start(title string, total int) ProgressBar
	// Spinner creates an indeterminate spinner.
	Spinner(title string) Spinner
}

// ProgressBar tracks a determinate operation.
type ProgressBar interface {
	// Increment advances the progress by n.
	Increment(n int)
	// SetTitle updates the label next to the bar.
	SetTitle(title string)
	// Done completes the bar at 100% and releases the terminal.
	Done()
}

// Spinner tracks an indeterminate operation.
type Spinner interface {
	// SetTitle updates the spinner label.
	SetTitle(title string)
	// Stop halts the spinner and releases the terminal.
	Stop()
}
