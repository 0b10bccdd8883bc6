//go:build !unix && !windows

package bootstrap

import "syscall"

func reuseAddr(_, _ string, _ syscall.RawConn) error { return nil }
