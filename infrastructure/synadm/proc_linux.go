//go:build linux

package synadm

import (
	"os/exec"
	"syscall"
)

// setPlatformSpecificAttrs makes the kernel kill the admin command
// if this process dies while waiting for it.
func setPlatformSpecificAttrs(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Pdeathsig: syscall.SIGKILL,
	}
}
