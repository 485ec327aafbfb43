package domain

import (
	"strconv"
	"strings"
)

// Employee is one roster row. NetSalary is derived once at load time and is
// never set independently.
type Employee struct {
	ID          string
	Name        string
	Email       string
	BasicSalary Money
	Allowances  Money
	Deductions  Money
	NetSalary   Money
}

// DeliveryResult is the outcome of one payslip notification.
type DeliveryResult struct {
	EmployeeID string
	Recipient  string
	Err        error
}

// CanonicalID normalizes an employee identifier to the one string form used
// for file naming and record matching. Spreadsheets render numeric ids
// inconsistently ("101", "101.0", " 101 "); all of those map to "101".
// Non-numeric ids are kept as-is, trimmed.
func CanonicalID(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return s
}
