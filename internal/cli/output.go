package cli

import (
	"fmt"
	"io"

	"github.com/yaklabco/codeblock/internal/ui/pretty"
	"github.com/yaklabco/codeblock/pkg/model"
)

// Output formats for commands printing a model tree.
const (
	formatTree  = "tree"
	formatModel = "model"
)

// validateFormat checks a --format value.
func validateFormat(format string) error {
	if format != formatTree && format != formatModel {
		return fmt.Errorf("invalid format %q: must be %s or %s", format, formatTree, formatModel)
	}
	return nil
}

// writeModel prints node as an indented tree or in the single-line model
// notation.
func writeModel(w io.Writer, styles *pretty.Styles, node *model.Node, format string) error {
	var out string
	if format == formatModel {
		out = model.Stringify(node) + "\n"
	} else {
		out = styles.FormatTree(node)
	}

	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
