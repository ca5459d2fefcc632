package importer

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Column headers as documented to users. Matching is exact after trimming;
// absent columns simply leave the corresponding fields blank.
const (
	ColFirstName  = "First Name"
	ColLastName   = "Last Name"
	ColPhone      = "phone"
	ColVisitDate  = "Date of visit"
	ColCreateTask = "Whether to create task"
	ColTaskType   = "Task Type"
	ColAgentName  = "Agent Name"
	ColDOB        = "Date of Birth"
)

// Row is one decoded spreadsheet line. Num is the 1-based row number in the
// file, header included, so the first data row is 2.
type Row struct {
	Num       int
	FirstName string
	LastName  string
	Phone     string
	DOB       string

	// VisitDateRaw is the cell as read; VisitDate is its ISO form. A present
	// but malformed cell leaves VisitDate empty and sets VisitDateErr.
	VisitDateRaw string
	VisitDate    string
	VisitDateErr error

	CreateTaskCell string
	TaskTypeCell   string
	AgentName      string
}

// MissingRequired returns the name of the first absent required column value,
// or "" when the row has all of first name, last name and phone.
func (r Row) MissingRequired() string {
	switch {
	case r.FirstName == "":
		return ColFirstName
	case r.LastName == "":
		return ColLastName
	case r.Phone == "":
		return ColPhone
	}
	return ""
}

func (r Row) empty() bool {
	return r.FirstName == "" && r.LastName == "" && r.Phone == "" &&
		r.DOB == "" && r.VisitDateRaw == "" && r.CreateTaskCell == "" &&
		r.TaskTypeCell == "" && r.AgentName == ""
}

// ParseWorkbook decodes the first sheet of an uploaded workbook into rows.
// The whole file is materialized; imports are bounded by memory, not I/O.
func ParseWorkbook(data []byte) ([]Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	// Raw values keep visit dates as Excel serial numbers instead of
	// locale-formatted display strings.
	cells, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(cells) == 0 {
		return nil, nil
	}

	index := map[string]int{}
	for i, h := range cells[0] {
		index[strings.TrimSpace(h)] = i
	}

	var rows []Row
	for i, line := range cells[1:] {
		get := func(col string) string {
			j, ok := index[col]
			if !ok || j >= len(line) {
				return ""
			}
			return strings.TrimSpace(line[j])
		}

		row := Row{
			Num:            i + 2,
			FirstName:      get(ColFirstName),
			LastName:       get(ColLastName),
			Phone:          get(ColPhone),
			DOB:            get(ColDOB),
			VisitDateRaw:   get(ColVisitDate),
			CreateTaskCell: get(ColCreateTask),
			TaskTypeCell:   get(ColTaskType),
			AgentName:      get(ColAgentName),
		}
		if row.empty() {
			continue
		}
		if row.VisitDateRaw != "" {
			row.VisitDate, row.VisitDateErr = NormalizeVisitDate(row.VisitDateRaw)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// dateLayouts are the display formats accepted for visit-date cells.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// NormalizeVisitDate converts an Excel serial number or a display string into
// an ISO calendar date.
func NormalizeVisitDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil || t.IsZero() {
			return "", fmt.Errorf("Invalid visit date: %s", raw)
		}
		return t.Format("2006-01-02"), nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("Invalid visit date: %s", raw)
}
