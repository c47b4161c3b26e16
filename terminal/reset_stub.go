//go:build !linux

package terminal

// resetTerminalMode is a no-op where TCGETS termios access is
// unavailable; the escape sequences are the best we can do.
func resetTerminalMode() {}
