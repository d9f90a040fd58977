// Package workbook is the durable table under the intake service: a single
// file holding named sheets of string rows. Every mutation loads the whole
// file, changes it in memory, and rewrites it through an atomic rename, so a
// crash leaves either the old file or the new one, never a torn write.
package workbook

import (
	"strconv"
	"time"
)

// Sheet names.
const (
	SubmissionsSheet = "Submissions"
	VotesSheet       = "VoteAggregates"
)

// Column indices in the vote-aggregates sheet.
const (
	VoteColID = iota
	VoteColSummary
	VoteColNo
	VoteColNice
	VoteColMust
	VoteColUpdated
)

const lastUpdatedHeader = "Last Updated"

// SubmissionHeader returns the fixed submissions header row. The column
// order is the schema; it is set at file creation and never migrated.
func SubmissionHeader() []string {
	header := []string{"Timestamp", "Requestor Name", "Dealer Name", "Email", "Phone"}
	for i := 1; i <= 3; i++ {
		n := strconv.Itoa(i)
		header = append(header,
			"Feature "+n+" Priority",
			"Feature "+n+" Description",
			"Feature "+n+" Severity",
			"Feature "+n+" Attachment",
		)
	}
	return header
}

// VoteHeader returns the fixed vote-aggregates header row.
func VoteHeader() []string {
	return []string{"Feature ID", "Summary", "Votes_No", "Votes_Nice", "Votes_Must", lastUpdatedHeader}
}

type Sheet struct {
	Name string     `json:"name"`
	Rows [][]string `json:"rows"`
}

// Workbook is a full in-memory copy of the table file. It is only ever
// handled inside a Store critical section; see Store.Update.
type Workbook struct {
	Sheets []Sheet `json:"sheets"`
}

func (wb *Workbook) sheet(name string) *Sheet {
	for i := range wb.Sheets {
		if wb.Sheets[i].Name == name {
			return &wb.Sheets[i]
		}
	}
	return nil
}

// HasSheet reports whether a sheet with the given name exists.
func (wb *Workbook) HasSheet(name string) bool {
	return wb.sheet(name) != nil
}

// AddSheet appends an empty sheet with the given header row.
func (wb *Workbook) AddSheet(name string, header []string) {
	wb.Sheets = append(wb.Sheets, Sheet{Name: name, Rows: [][]string{header}})
}

// Rows returns the rows of a sheet, header included. Nil if the sheet
// does not exist.
func (wb *Workbook) Rows(name string) [][]string {
	s := wb.sheet(name)
	if s == nil {
		return nil
	}
	return s.Rows
}

// Append adds one row at the end of the named sheet.
func (wb *Workbook) Append(name string, row []string) error {
	s := wb.sheet(name)
	if s == nil {
		return ErrNoSheet
	}
	s.Rows = append(s.Rows, row)
	return nil
}

// FindRow scans the named sheet from the first data row (the header is row 0)
// and returns the index of the first row whose keyCol cell equals key exactly.
func (wb *Workbook) FindRow(name string, keyCol int, key string) (int, error) {
	s := wb.sheet(name)
	if s == nil {
		return 0, ErrNoSheet
	}
	for i := 1; i < len(s.Rows); i++ {
		row := s.Rows[i]
		if keyCol < len(row) && row[keyCol] == key {
			return i, nil
		}
	}
	return 0, ErrNotFound
}

// ReadCounts reads the three vote counters from a row of the vote sheet.
// Absent or unparsable cells count as zero; ReadCounts never fails.
func (wb *Workbook) ReadCounts(name string, row int) (no, nice, must int) {
	s := wb.sheet(name)
	if s == nil || row < 0 || row >= len(s.Rows) {
		return 0, 0, 0
	}
	return cellInt(s.Rows[row], VoteColNo), cellInt(s.Rows[row], VoteColNice), cellInt(s.Rows[row], VoteColMust)
}

func cellInt(row []string, col int) int {
	if col >= len(row) {
		return 0
	}
	n, err := strconv.Atoi(row[col])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// WriteRow overwrites the leading cells of an existing row with values and
// stamps the sheet's "Last Updated" column, when the header declares one,
// with the current time.
func (wb *Workbook) WriteRow(name string, row int, values []string) error {
	s := wb.sheet(name)
	if s == nil {
		return ErrNoSheet
	}
	if row < 1 || row >= len(s.Rows) {
		return ErrNotFound
	}
	width := len(s.Rows[0])
	if len(values) > width {
		width = len(values)
	}
	if len(s.Rows[row]) < width {
		padded := make([]string, width)
		copy(padded, s.Rows[row])
		s.Rows[row] = padded
	}
	copy(s.Rows[row], values)

	for col, h := range s.Rows[0] {
		if h == lastUpdatedHeader && col < len(s.Rows[row]) {
			s.Rows[row][col] = time.Now().UTC().Format(time.RFC3339)
		}
	}
	return nil
}
