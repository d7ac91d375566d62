//go:build !windows

package terminal

// EnableVirtualTerminal is a no-op outside Windows; ANSI rendering needs no
// console mode change there.
func EnableVirtualTerminal() bool {
	return true
}
