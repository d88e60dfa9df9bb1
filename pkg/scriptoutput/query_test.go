//
//  Copyright © Opsrig Inc. All rights reserved.
//

package scriptoutput

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasErrors(t *testing.T) {
	assert.False(t, HasErrors(nil))
	assert.False(t, HasErrors(Parse("server1##one", ModeActiveDiscovery)))
	assert.True(t, HasErrors(Parse("##noid", ModeActiveDiscovery)))
	assert.True(t, HasErrors(Parse("status=UP", ModeCollection)))
}

func TestHasWarnings(t *testing.T) {
	assert.False(t, HasWarnings(nil))
	assert.False(t, HasWarnings(Parse("cpu=1", ModeCollection)))
	assert.True(t, HasWarnings(Parse("cpu load=1", ModeCollection)))
}

func TestAllIssues_Order(t *testing.T) {
	// Instance order first, then issue order within each instance.
	output := "a b##x\n##y\nok##z"
	issues := AllIssues(Parse(output, ModeActiveDiscovery))

	require.Len(t, issues, 2)
	assert.Equal(t, 1, issues[0].LineNumber)
	assert.Contains(t, issues[0].Message, "invalid characters")
	assert.Equal(t, 2, issues[1].LineNumber)
	assert.Equal(t, "Instance ID is required", issues[1].Message)
}

func TestAllIssues_NilResult(t *testing.T) {
	assert.Nil(t, AllIssues(nil))
	assert.Nil(t, AllIssues(Parse("anything", ModeFreeform)))
}

func TestIssuesBySeverity(t *testing.T) {
	output := "##noid\ncpu load##name"
	result := Parse(output, ModeActiveDiscovery)

	errors := IssuesBySeverity(result, SeverityError)
	warnings := IssuesBySeverity(result, SeverityWarning)

	require.Len(t, errors, 2)
	assert.Empty(t, warnings)
	for _, issue := range errors {
		assert.Equal(t, SeverityError, issue.Severity)
	}
}

func TestIssuesBySeverity_Warnings(t *testing.T) {
	result := Parse("eth0.rx bytes=1", ModeBatchCollection)

	warnings := IssuesBySeverity(result, SeverityWarning)
	require.Len(t, warnings, 1)
	assert.Equal(t, "name", warnings[0].Field)
}
