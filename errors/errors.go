package errors

import "fmt"

var (
	ErrUsage           = fmt.Errorf("invalid usage")
	ErrHelp            = fmt.Errorf("help requested")
	ErrInvalidConfig   = fmt.Errorf("invalid configuration")
	ErrCommandLaunch   = fmt.Errorf("admin command could not be started")
	ErrCommandFailed   = fmt.Errorf("admin command exited with an error")
	ErrInvalidResponse = fmt.Errorf("admin command returned an unexpected response")
)
