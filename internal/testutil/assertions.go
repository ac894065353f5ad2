package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertTextTotals checks the totals section of a text report.
func AssertTextTotals(t *testing.T, result *HarnessResult, sumOfValidIDs, totalPower uint64) {
	t.Helper()

	require.NoError(t, result.Err, "run failed; logs:\n%s", result.LogOutput)
	require.Contains(t, result.Output, fmt.Sprintf("sumOfValidIds: %d\n", sumOfValidIDs))
	require.Contains(t, result.Output, fmt.Sprintf("totalPower: %d\n", totalPower))
}
