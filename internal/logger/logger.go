// Package logger provides the tagged console output used across the service.
package logger

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

var (
	tagColor     = color.New(color.FgCyan, color.Bold)
	infoColor    = color.New(color.FgWhite)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
	bannerColor  = color.New(color.FgMagenta, color.Bold)
)

func timestamp() string {
	return time.Now().Format("15:04:05")
}

func line(c *color.Color, tag, msg string) {
	dimColor.Printf("%s ", timestamp())
	tagColor.Printf("[%s] ", tag)
	c.Println(msg)
}

// Info logs a neutral message under a tag.
func Info(tag, msg string) {
	line(infoColor, tag, msg)
}

// Success logs a completed step.
func Success(tag, msg string) {
	line(successColor, tag, msg)
}

// Warn logs a recoverable problem.
func Warn(tag, msg string) {
	line(warnColor, tag, msg)
}

// Error logs a failure.
func Error(tag, msg string) {
	line(errorColor, tag, msg)
}

// Banner prints the startup header.
func Banner(version string) {
	bannerColor.Println(`  _____          __       _ _
 |_   _|_ _ _ __/ _| ___ | (_) ___
   | |/ _' | '_ \ |_ / _ \| | |/ _ \
   | | (_| | |_) |  _| (_) | | | (_) |
   |_|\__,_| .__/_|  \___/|_|_|\___/
           |_|`)
	if version != "" {
		dimColor.Printf("           support engine %s\n\n", version)
	} else {
		fmt.Println()
	}
}

// Server logs the listen address once the HTTP server is up.
func Server(addr string) {
	Success("Server", fmt.Sprintf("Listening on http://%s", addr))
}

// Section prints a visual divider for a named startup phase.
func Section(name string) {
	dimColor.Printf("\n── %s ──\n", name)
}

// Stats prints a key/value pair indented under the current section.
func Stats(label string, value any) {
	dimColor.Printf("   %-18s ", label)
	infoColor.Println(fmt.Sprint(value))
}
