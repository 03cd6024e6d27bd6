//go:build !windows

package console

// EnableUTF8 is a no-op outside Windows: every other supported terminal
// already assumes a UTF-8 locale.
func EnableUTF8() {}
