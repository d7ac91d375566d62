//go:build windows

package terminal

import "golang.org/x/sys/windows"

// EnableVirtualTerminal switches the Windows console to virtual terminal
// processing so ANSI escape sequences are rendered instead of printed.
// Best effort and one-shot: on failure it returns false and the caller must
// decide how to degrade. Never retried.
func EnableVirtualTerminal() bool {
	handle, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil || handle == windows.InvalidHandle {
		return false
	}

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return false
	}

	err = windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
	return err == nil
}
