//
//  Copyright © Opsrig Inc. All rights reserved.
//

package scriptoutput

// HasErrors reports whether the result carries any Error-severity issue.
// A nil result (freeform) never has errors.
func HasErrors(result ParseResult) bool {
	return result != nil && result.Totals().Errors > 0
}

// HasWarnings reports whether the result carries any Warning-severity
// issue.
func HasWarnings(result ParseResult) bool {
	return result != nil && result.Totals().Warnings > 0
}

// AllIssues flattens every record's issues into one ordered sequence:
// record order first, then issue order within each record.
func AllIssues(result ParseResult) []ValidationIssue {
	if result == nil {
		return nil
	}

	var issues []ValidationIssue
	switch r := result.(type) {
	case *ADResult:
		for i := range r.Instances {
			issues = append(issues, r.Instances[i].Issues...)
		}
	case *CollectionResult:
		for i := range r.Datapoints {
			issues = append(issues, r.Datapoints[i].Issues...)
		}
	}
	return issues
}

// IssuesBySeverity filters [AllIssues] down to one severity.
func IssuesBySeverity(result ParseResult, severity Severity) []ValidationIssue {
	var filtered []ValidationIssue
	for _, issue := range AllIssues(result) {
		if issue.Severity == severity {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}
