package internal

import (
	goerrors "errors"
	"flag"
	"fmt"
	"io"

	"matrix-contacts/domain"
	"matrix-contacts/errors"
)

// Args is what the command line carries: the user to inspect and a few switches.
type Args struct {
	User   domain.Identity
	Debug  bool
	Format string
}

func Usage(program string) string {
	return fmt.Sprintf("Usage: %s [--debug] [--format plain|table|json] <matrix_user_id>", program)
}

// ParseArgs reads the arguments that follow the program name.
// Flags may appear before or after the user id; the first positional
// argument is the user id and any further ones are ignored.
func ParseArgs(args []string) (Args, error) {
	fs := flag.NewFlagSet("contacts", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	debug := fs.Bool("debug", false, "echo every admin command before running it")
	format := fs.String("format", "", "output format: plain, table or json")

	var positionals []string
	for {
		if err := fs.Parse(args); err != nil {
			if goerrors.Is(err, flag.ErrHelp) {
				return Args{}, errors.ErrHelp
			}
			return Args{}, fmt.Errorf("%w: %v", errors.ErrUsage, err)
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		positionals = append(positionals, args[0])
		args = args[1:]
	}

	if len(positionals) == 0 || positionals[0] == "" {
		return Args{}, fmt.Errorf("%w: missing matrix user id", errors.ErrUsage)
	}

	return Args{
		User:   domain.Identity(positionals[0]),
		Debug:  *debug,
		Format: *format,
	}, nil
}
