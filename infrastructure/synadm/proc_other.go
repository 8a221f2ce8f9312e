//go:build !linux

package synadm

import "os/exec"

// setPlatformSpecificAttrs is a no-op outside Linux: Pdeathsig does not exist there,
// and the child is only stopped through the context given to exec.CommandContext.
func setPlatformSpecificAttrs(_ *exec.Cmd) {}
