//go:build windows

package bootstrap

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// soExclusiveAddrUse is ~SO_REUSEADDR as defined by winsock.
const soExclusiveAddrUse = ^windows.SO_REUSEADDR

// reuseAddr sets SO_EXCLUSIVEADDRUSE on Windows, where SO_REUSEADDR would let
// the probe succeed on a port another process is listening on.
func reuseAddr(_, _ string, c syscall.RawConn) error {
	var sockErr error
	err := c.Control(func(fd uintptr) {
		sockErr = windows.SetsockoptInt(windows.Handle(fd), windows.SOL_SOCKET, soExclusiveAddrUse, 1)
	})
	if err != nil {
		return err
	}
	return sockErr
}
