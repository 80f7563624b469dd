package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsCollect(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddWarning("overlapping_dest", "rules #0 and #1 overlap", "seed-to-soil", "#1")
	d.AddInfo("rule_count", "2 rules", "seed-to-soil", "")
	assert.True(t, d.IsValid())

	d.AddError("duplicate_dest_table", "two tables lead to soil", "", "")
	d.AddError("non_positive_length", "length 0", "soil-to-fertilizer", "#3")

	assert.False(t, d.IsValid())
	assert.True(t, d.HasCode("rule_count"))
	assert.False(t, d.HasCode("missing_hop"))
	assert.Len(t, d.All(), 4)
	assert.Equal(t, SeverityError, d.All()[0].Severity)

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"[duplicate_dest_table] two tables lead to soil; [soil-to-fertilizer] #3: [non_positive_length] length 0",
		err.Error())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
