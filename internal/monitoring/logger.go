// Package monitoring holds the diagnostic logger hook used by the field
// codec and the transform config loader.
package monitoring

import (
	"fmt"
	"log"
)

// Logf receives diagnostics such as lossy field decodes. It defaults to
// log.Printf. Tests mute or capture it with SetLogger.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces Logf. Passing nil installs a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Capture redirects Logf into the returned slice until restore is called.
// It is meant for tests that assert on emitted diagnostics.
func Capture() (lines *[]string, restore func()) {
	previous := Logf
	captured := []string{}
	Logf = func(format string, v ...interface{}) {
		captured = append(captured, fmt.Sprintf(format, v...))
	}
	return &captured, func() { Logf = previous }
}
