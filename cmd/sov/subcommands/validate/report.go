//
//  Copyright © Opsrig Inc. All rights reserved.
//

package validate

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/opsrig/scriptout/pkg/scriptoutput"
)

// Supported report formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// fileReport is the serializable envelope for one validated file. The
// explicit Type discriminator tells consumers which record list the
// embedded result carries.
type fileReport struct {
	File   string                   `json:"file" yaml:"file"`
	Type   scriptoutput.Mode        `json:"type" yaml:"type"`
	Result scriptoutput.ParseResult `json:"result" yaml:"result"`
}

func render(w io.Writer, file string, result scriptoutput.ParseResult, format string) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(fileReport{File: file, Type: result.OutputMode(), Result: result}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	case formatYAML:
		data, err := yaml.Marshal(fileReport{File: file, Type: result.OutputMode(), Result: result})
		if err != nil {
			return err
		}
		fmt.Fprint(w, string(data))
		return nil
	default:
		renderText(w, file, result)
		return nil
	}
}

// renderText prints the human-readable per-line report followed by a
// totals footer.
func renderText(w io.Writer, file string, result scriptoutput.ParseResult) {
	for _, issue := range scriptoutput.AllIssues(result) {
		marker := "⚠"
		if issue.Severity == scriptoutput.SeverityError {
			marker = "✗"
		}
		if issue.Field != "" {
			fmt.Fprintf(w, "%s %s:%d [%s] %s\n", marker, file, issue.LineNumber, issue.Field, issue.Message)
		} else {
			fmt.Fprintf(w, "%s %s:%d %s\n", marker, file, issue.LineNumber, issue.Message)
		}
	}

	for _, line := range result.UnparsedLines() {
		if line.Reason == scriptoutput.ReasonComment {
			continue
		}
		fmt.Fprintf(w, "• %s:%d unparsed: %s\n", file, line.LineNumber, line.Reason)
	}

	s := result.Totals()
	noun := "datapoint"
	if result.OutputMode() == scriptoutput.ModeActiveDiscovery {
		noun = "instance"
	}
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "%s: %d %s(s), %d valid, %d error(s), %d warning(s)\n",
		file, s.Total, noun, s.Valid, s.Errors, s.Warnings)
}
