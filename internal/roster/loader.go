package roster

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"payslip-sync/internal/domain"
)

// Required header columns, as they appear in the roster workbook.
// Extra columns are ignored.
var requiredColumns = []string{
	"Employee ID",
	"Name",
	"Email",
	"Basic Salary",
	"Allowances",
	"Deductions",
}

// LoadError aborts the whole run: a roster loads completely or not at all.
type LoadError struct {
	Reason string
	Row    int // 1-based sheet row; 0 when the failure is not row-specific
	Err    error
}

func (e *LoadError) Error() string {
	msg := "roster: " + e.Reason
	if e.Row > 0 {
		msg = fmt.Sprintf("%s (row %d)", msg, e.Row)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads the roster workbook and returns every employee with the net
// salary already computed. Validation is whole-batch: one bad row fails the
// entire load and no partial roster is returned. The source file is never
// modified.
func Load(path string) ([]domain.Employee, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Reason: "open workbook", Err: err}
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, &LoadError{Reason: "read rows", Err: err}
	}
	if len(rows) == 0 {
		return nil, &LoadError{Reason: "missing required columns (empty sheet)"}
	}

	idx, missing := headerIndex(rows[0])
	if len(missing) > 0 {
		return nil, &LoadError{Reason: "missing required columns: " + strings.Join(missing, ", ")}
	}

	employees := make([]domain.Employee, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header
		if blank(row) {
			continue
		}
		emp, err := parseRow(row, idx, rowNum)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, nil
}

func headerIndex(header []string) (map[string]int, []string) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	return idx, missing
}

func parseRow(row []string, idx map[string]int, rowNum int) (domain.Employee, error) {
	id := domain.CanonicalID(cell(row, idx["Employee ID"]))
	email := cell(row, idx["Email"])
	if id == "" || email == "" {
		return domain.Employee{}, &LoadError{Reason: "missing employee id or email", Row: rowNum}
	}

	emp := domain.Employee{
		ID:    id,
		Name:  cell(row, idx["Name"]),
		Email: email,
	}

	amounts := []struct {
		column string
		dst    *domain.Money
	}{
		{"Basic Salary", &emp.BasicSalary},
		{"Allowances", &emp.Allowances},
		{"Deductions", &emp.Deductions},
	}
	for _, a := range amounts {
		m, err := domain.ParseMoney(cell(row, idx[a.column]))
		if err != nil {
			return domain.Employee{}, &LoadError{Reason: "bad " + a.column, Row: rowNum, Err: err}
		}
		*a.dst = m
	}

	emp.NetSalary = emp.BasicSalary + emp.Allowances - emp.Deductions
	return emp, nil
}

// cell tolerates short rows: excelize trims trailing empty cells.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
