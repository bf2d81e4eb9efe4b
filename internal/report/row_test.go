package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tracker-golang/internal/constants"
)

func TestProject_KeepsOnlyCanonicalFields(t *testing.T) {
	raw := []map[string]string{
		{
			"Number":                 "1",
			"Daily Work Description": "Inventory count",
			"Hr":                     "2",
			"Min":                    "30",
			"Shift":                  "night", // not a report field
		},
	}

	rows := Project(raw)
	assert.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0].Value(constants.FieldNumber))
	assert.Equal(t, "2", rows[0].Value(constants.FieldHours))
	assert.Equal(t, "30", rows[0].Value(constants.FieldMinutes))

	_, hasShift := rows[0]["Shift"]
	assert.False(t, hasShift, "non-canonical field must be dropped")
}

func TestProject_MissingFieldsStayAbsent(t *testing.T) {
	raw := []map[string]string{
		{"Number": "7"},
	}

	rows := Project(raw)
	assert.Len(t, rows, 1)
	_, ok := rows[0][constants.FieldHours]
	assert.False(t, ok, "absent source field must not be null-filled")
	assert.Equal(t, "", rows[0].Value(constants.FieldHours))
}

func TestProject_EmptyRowsAreKept(t *testing.T) {
	raw := []map[string]string{
		{"Shift": "night", "Site": "warehouse"},
		{},
	}

	rows := Project(raw)
	assert.Len(t, rows, 2, "rows without canonical fields are kept, not filtered")
	assert.Empty(t, rows[0])
	assert.Empty(t, rows[1])
}

func TestProjectColumns_CanonicalOrderWins(t *testing.T) {
	// Source header order must not leak through.
	columns := []string{"Supervisor Comments", "Hr", "Number", "Site"}

	got := ProjectColumns(columns)
	assert.Equal(t, []string{"Number", "Hr", "Supervisor Comments"}, got)
}

func TestProjectColumns_NoCanonicalColumns(t *testing.T) {
	assert.Empty(t, ProjectColumns([]string{"Site", "Shift"}))
}
