//
//  Copyright © Opsrig Inc. All rights reserved.
//

package validate

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/opsrig/scriptout/pkg/scriptoutput"
)

// Execute runs the validate command: each input file (or stdin) is
// parsed under the selected mode and reported. The command fails when
// any file carries Error-severity issues, so it can gate save/publish
// pipelines on its exit status.
func Execute(ctx context.Context, cmd *cli.Command) error {
	mode, ok := scriptoutput.ParseMode(cmd.String("mode"))
	if !ok {
		return fmt.Errorf("unsupported mode: %q", cmd.String("mode"))
	}
	if mode == scriptoutput.ModeFreeform {
		return fmt.Errorf("freeform scripts have no structural output to validate")
	}

	files := cmd.StringSlice("file")
	if len(files) == 0 {
		files = []string{"-"}
	}

	format := cmd.String("format")
	strict := cmd.Bool("strict")

	w := cmd.Writer
	if w == nil {
		w = os.Stdout
	}

	failed := 0
	for _, file := range files {
		output, err := readInput(file)
		if err != nil {
			return err
		}

		result := scriptoutput.Parse(output, mode)
		if err := render(w, file, result, format); err != nil {
			return err
		}

		if scriptoutput.HasErrors(result) || (strict && countRealUnparsed(result) > 0) {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("validation failed: %d file(s) with errors", failed)
	}

	if format == formatText {
		fmt.Fprintf(w, "All checks passed: %d file(s) validated successfully\n", len(files))
	}
	return nil
}

// readInput loads one input source; "-" or "" selects stdin.
func readInput(path string) (string, error) {
	var f *os.File
	if path == "-" || path == "" {
		f = os.Stdin
	} else {
		var err error
		f, err = os.Open(path) // #nosec G304 -- CLI tool intentionally reads user-provided paths
		if err != nil {
			return "", errors.Wrapf(err, "failed to open %s", path)
		}
		defer func() { _ = f.Close() }()
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", path)
	}
	return string(data), nil
}

// countRealUnparsed counts unparsed lines that are not comments.
// Comments are expected in scripts; anything else unparsed means the
// output does not fully match the declared format.
func countRealUnparsed(result scriptoutput.ParseResult) int {
	n := 0
	for _, line := range result.UnparsedLines() {
		if line.Reason != scriptoutput.ReasonComment {
			n++
		}
	}
	return n
}
