package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/codeblock/internal/logging"
)

// ErrNoInput is returned when a command has no file argument and stdin is a
// terminal.
var ErrNoInput = errors.New("no input: pass a file or pipe data on stdin")

// stdinName is the file argument that selects stdin explicitly.
const stdinName = "-"

// readInput returns the contents of the file named by args, or of stdin when
// no file is given. An interactive stdin is refused rather than read.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	logger := logging.FromContext(cmd.Context())

	if len(args) > 0 && args[0] != stdinName {
		logger.Debug("reading input", logging.FieldInput, args[0])

		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		return data, nil
	}

	stdin := cmd.InOrStdin()
	if f, ok := stdin.(*os.File); ok && len(args) == 0 && term.IsTerminal(int(f.Fd())) {
		return nil, ErrNoInput
	}

	logger.Debug("reading input", logging.FieldInput, "stdin")

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}
