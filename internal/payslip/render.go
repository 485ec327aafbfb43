package payslip

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"payslip-sync/internal/domain"
)

// RenderError marks a failed payslip for one employee. The batch logs it and
// keeps going; only the one item is lost.
type RenderError struct {
	EmployeeID string
	Err        error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("payslip: render %s: %v", e.EmployeeID, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Renderer writes fixed-layout payslip PDFs under OutDir. The layout is a
// single A4 page: header band with the organization name, document title,
// generation date, employee identity block, salary breakdown and a
// highlighted net-salary line.
type Renderer struct {
	OutDir string
	Org    string
}

// Path is the deterministic output location for one employee's payslip.
// Rerunning the pipeline overwrites the previous file for the same id.
func (r Renderer) Path(emp domain.Employee) string {
	return filepath.Join(r.OutDir, emp.ID+".pdf")
}

// Render produces the payslip for one employee and returns its path. The PDF
// is written to a temp file and renamed into place, so a failed render leaves
// no half-written payslip behind.
func (r Renderer) Render(emp domain.Employee) (string, error) {
	if err := os.MkdirAll(r.OutDir, 0o755); err != nil {
		return "", &RenderError{EmployeeID: emp.ID, Err: err}
	}

	final := r.Path(emp)
	tmp := final + ".tmp"

	if err := r.writePDF(tmp, emp); err != nil {
		os.Remove(tmp)
		return "", &RenderError{EmployeeID: emp.ID, Err: err}
	}
	if err := os.Rename(tmp, final); err != nil {
		os.Remove(tmp)
		return "", &RenderError{EmployeeID: emp.ID, Err: err}
	}
	return final, nil
}

func (r Renderer) writePDF(path string, emp domain.Employee) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Header band with the organization name.
	pdf.SetFillColor(128, 0, 128)
	pdf.Rect(20, 12, 170, 20, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(25, 25, r.Org)

	pdf.SetTextColor(128, 0, 128)
	pdf.SetFont("Helvetica", "", 15)
	pdf.Text(20, 42, "MONTHLY PAYSLIP")

	// Generation date, not a pay-period date.
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(20, 50, "Date: "+time.Now().Format("January 2, 2006"))

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(20, 64, "Employee Details")
	pdf.Line(20, 67, 190, 67)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(20, 75, "Employee ID: "+emp.ID)
	pdf.Text(20, 83, "Name: "+emp.Name)
	pdf.Text(20, 91, "Email: "+emp.Email)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(20, 105, "Salary Breakdown")
	pdf.Line(20, 108, 190, 108)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(20, 116, "Basic Salary: "+emp.BasicSalary.String())
	pdf.Text(20, 124, "Allowances: +"+emp.Allowances.String())
	pdf.Text(20, 132, "Deductions: -"+emp.Deductions.String())

	// Net salary highlight. A negative net is rendered as-is, no floor.
	pdf.SetTextColor(128, 0, 128)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(20, 146, "Net Salary: "+emp.NetSalary.String())

	return pdf.OutputFileAndClose(path)
}
