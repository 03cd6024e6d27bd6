//go:build windows

package console

import "golang.org/x/sys/windows"

const codePageUTF8 = 65001

// EnableUTF8 switches the console output code page to UTF-8 so that
// emitted C++ source containing non-ASCII string/char literals (§4.1)
// displays correctly instead of being mangled by the legacy OEM code
// page. Errors are ignored: a console that refuses the switch (e.g.
// output redirected to a file) still produces correct bytes.
func EnableUTF8() {
	_ = windows.SetConsoleOutputCP(codePageUTF8)
}
