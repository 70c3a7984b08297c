package ux

import (
	"fmt"
	"time"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

func timestamp() string {
	return time.Now().Format("15:04:05")
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}

// StageHeader prints a timestamped stage line.
func StageHeader(index, total int, name string) {
	fmt.Printf("%s[%s]%s  %s▸ Stage %d/%d: %s%s\n",
		Dim, timestamp(), Reset, Bold, index+1, total, name, Reset)
}

// StageDone prints a stage completion line.
func StageDone(index int, name string, d time.Duration) {
	fmt.Printf("%s[%s]%s    %s✓ %s done (%s)%s\n",
		Dim, timestamp(), Reset, Green, name, formatDuration(d), Reset)
}

// StageFail prints a stage failure line.
func StageFail(index int, name, errMsg string) {
	fmt.Printf("%s[%s]%s    %s✗ %s failed: %s%s\n",
		Dim, timestamp(), Reset, Red, name, errMsg, Reset)
}

// BuildComplete prints the final success line.
func BuildComplete(stages int, d time.Duration) {
	fmt.Printf("\n%s[%s]%s  %s%s══ Build complete (%d stages, %s) ══%s\n",
		Dim, timestamp(), Reset, Bold, Green, stages, formatDuration(d), Reset)
}

// Checked prints one passed check in a check listing.
func Checked(what string) {
	fmt.Printf("  %s✓%s %s\n", Green, Reset, what)
}

// Warn prints a warning line.
func Warn(msg string) {
	fmt.Printf("  %s⚠ %s%s\n", Yellow, msg, Reset)
}
