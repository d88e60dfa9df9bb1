//
//  Copyright © Opsrig Inc. All rights reserved.
//

package scriptoutput

// summarizeInstances reduces an instance list to its Summary.
func summarizeInstances(instances []ADInstance) Summary {
	s := Summary{Total: len(instances)}
	for i := range instances {
		countIssues(instances[i].Issues, &s)
	}
	return s
}

// summarizeDatapoints reduces a datapoint list to its Summary.
func summarizeDatapoints(points []CollectionDatapoint) Summary {
	s := Summary{Total: len(points)}
	for i := range points {
		countIssues(points[i].Issues, &s)
	}
	return s
}

// countIssues folds one record's issues into the summary. A record is
// valid iff it carries no Error-severity issue; warnings never affect
// validity.
func countIssues(issues []ValidationIssue, s *Summary) {
	hadError := false
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			s.Errors++
			hadError = true
		case SeverityWarning:
			s.Warnings++
		}
	}
	if !hadError {
		s.Valid++
	}
}
