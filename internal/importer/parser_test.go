package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, header []any, dataRows ...[]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i, row := range dataRows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

var standardHeader = []any{
	"First Name", "Last Name", "phone", "Date of visit",
	"Whether to create task", "Task Type", "Agent Name",
}

func TestParseWorkbookBasic(t *testing.T) {
	data := buildWorkbook(t, standardHeader,
		[]any{"Ann", "Lee", "555-111-2222", 45000, "", "recall", "Recall Bot"},
		[]any{"Bo", "Kim", "not-a-phone"},
	)

	rows, err := ParseWorkbook(data)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Num)
	assert.Equal(t, "Ann", rows[0].FirstName)
	assert.Equal(t, "Lee", rows[0].LastName)
	assert.Equal(t, "555-111-2222", rows[0].Phone)
	assert.Equal(t, "2023-03-15", rows[0].VisitDate)
	assert.NoError(t, rows[0].VisitDateErr)
	assert.Equal(t, "recall", rows[0].TaskTypeCell)
	assert.Equal(t, "Recall Bot", rows[0].AgentName)

	assert.Equal(t, 3, rows[1].Num)
	assert.Equal(t, "not-a-phone", rows[1].Phone)
	assert.Empty(t, rows[1].VisitDate)
}

func TestParseWorkbookDisplayDates(t *testing.T) {
	data := buildWorkbook(t, standardHeader,
		[]any{"Ann", "Lee", "555-111-2222", "2026-03-15"},
		[]any{"Bo", "Kim", "555-222-3333", "03/15/2026"},
	)

	rows, err := ParseWorkbook(data)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-03-15", rows[0].VisitDate)
	assert.Equal(t, "2026-03-15", rows[1].VisitDate)
}

func TestParseWorkbookMalformedDate(t *testing.T) {
	data := buildWorkbook(t, standardHeader,
		[]any{"Ann", "Lee", "555-111-2222", "next tuesday"},
	)

	rows, err := ParseWorkbook(data)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].VisitDate)
	require.Error(t, rows[0].VisitDateErr)
	assert.Equal(t, "Invalid visit date: next tuesday", rows[0].VisitDateErr.Error())
}

func TestParseWorkbookMissingColumns(t *testing.T) {
	data := buildWorkbook(t, []any{"First Name", "phone"},
		[]any{"Ann", "555-111-2222"},
	)

	rows, err := ParseWorkbook(data)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ann", rows[0].FirstName)
	assert.Empty(t, rows[0].LastName)
	assert.Equal(t, "Last Name", rows[0].MissingRequired())
}

func TestParseWorkbookSkipsBlankRows(t *testing.T) {
	data := buildWorkbook(t, standardHeader,
		[]any{"Ann", "Lee", "555-111-2222"},
		[]any{"", "", ""},
		[]any{"Bo", "Kim", "555-222-3333"},
	)

	rows, err := ParseWorkbook(data)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Row numbers still reflect the file position, not the filtered index.
	assert.Equal(t, 2, rows[0].Num)
	assert.Equal(t, 4, rows[1].Num)
}

func TestParseWorkbookGarbage(t *testing.T) {
	_, err := ParseWorkbook([]byte("this is not a spreadsheet"))
	assert.Error(t, err)
}

func TestNormalizeVisitDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"45000", "2023-03-15", false},
		{"2026-01-31", "2026-01-31", false},
		{"1/2/2026", "2026-01-02", false},
		{"Jan 2, 2026", "2026-01-02", false},
		{"", "", false},
		{"soon", "", true},
		{"-45000", "", true},
	}
	for _, tt := range tests {
		got, err := NormalizeVisitDate(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}
