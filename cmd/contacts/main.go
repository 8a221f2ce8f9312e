package main

import (
	"context"
	goerrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"matrix-contacts/errors"
	"matrix-contacts/infrastructure/synadm"
	"matrix-contacts/internal"
	"matrix-contacts/report"
	"matrix-contacts/services"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	err := run(os.Args, os.Stdout, os.Stderr)
	os.Exit(exitCode(err, filepath.Base(os.Args[0]), os.Stdout, os.Stderr))
}

// run wires configuration, the synadm client and the renderer, then performs one discovery.
// Errors are returned rather than exiting so deferred cleanup always runs.
func run(argv []string, stdout, stderr io.Writer) error {
	// 1. Command line first: usage errors must not depend on the environment
	args, err := internal.ParseArgs(argv[1:])
	if err != nil {
		return err
	}

	// 2. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	if config, err = config.WithArgs(args); err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel).With("run_id", uuid.NewString())

	renderer, err := report.NewRenderer(config.Format, config.Colours)
	if err != nil {
		return err
	}

	// 3. Admin interface
	var diagnostics io.Writer
	if args.Debug {
		diagnostics = stderr
	}
	runner := synadm.NewExecRunner(log, config.SynadmBin, config.SynadmConfig, config.SynadmOutput, diagnostics, config.Colours)
	var echo func(string)
	if args.Debug {
		echo = runner.Echo
	}
	client := synadm.NewClient(runner, log, echo)
	contactService := services.NewContactService(client, log, stderr)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Discover and print
	log.Info("Discovering contacts", "user", args.User, "format", config.Format)
	contacts, err := contactService.Discover(ctx, args.User)
	if err != nil {
		return err
	}
	return renderer.Render(stdout, contacts)
}

// exitCode reports err the way the command line expects and maps it to a process status.
func exitCode(err error, program string, stdout, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case goerrors.Is(err, errors.ErrHelp):
		_, _ = fmt.Fprintln(stdout, internal.Usage(program))
		return 0
	case goerrors.Is(err, errors.ErrUsage):
		if err != errors.ErrUsage {
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		_, _ = fmt.Fprintln(stderr, internal.Usage(program))
		return 1
	default:
		_, _ = fmt.Fprintf(stderr, "Fatal error: %v\n", err)
		return 1
	}
}
