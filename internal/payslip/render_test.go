package payslip

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"payslip-sync/internal/domain"
)

func testEmployee() domain.Employee {
	return domain.Employee{
		ID:          "101",
		Name:        "Priya Kumar",
		Email:       "priya@example.com",
		BasicSalary: 100000,
		Allowances:  20000,
		Deductions:  5000,
		NetSalary:   115000,
	}
}

func TestRender(t *testing.T) {
	r := Renderer{OutDir: t.TempDir(), Org: "Test Org"}
	emp := testEmployee()

	path, err := r.Render(emp)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if want := filepath.Join(r.OutDir, "101.pdf"); path != want {
		t.Errorf("Expected path %q, got %q", want, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read payslip: %v", err)
	}
	if len(data) == 0 || !strings.HasPrefix(string(data), "%PDF") {
		t.Errorf("Expected a PDF file, got %d bytes starting %q", len(data), snippet(data))
	}

	// No temp file may survive a successful render.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("Expected no temp file after render, stat err = %v", err)
	}
}

func TestRenderIdempotentPath(t *testing.T) {
	r := Renderer{OutDir: t.TempDir(), Org: "Test Org"}
	emp := testEmployee()

	first, err := r.Render(emp)
	if err != nil {
		t.Fatalf("first Render: %v", err)
	}
	second, err := r.Render(emp)
	if err != nil {
		t.Fatalf("second Render: %v", err)
	}
	if first != second {
		t.Errorf("Expected the same deterministic path, got %q and %q", first, second)
	}

	entries, err := os.ReadDir(r.OutDir)
	if err != nil {
		t.Fatalf("read out dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected 1 file after rerun (overwrite), got %d", len(entries))
	}
}

func TestRenderNegativeNet(t *testing.T) {
	r := Renderer{OutDir: t.TempDir(), Org: "Test Org"}
	emp := testEmployee()
	emp.ID = "104"
	emp.Deductions = 130000
	emp.NetSalary = emp.BasicSalary + emp.Allowances - emp.Deductions

	if emp.NetSalary >= 0 {
		t.Fatal("test setup: net salary should be negative")
	}
	if _, err := r.Render(emp); err != nil {
		t.Fatalf("Render of negative net returned error: %v", err)
	}
}

func TestRenderFailure(t *testing.T) {
	// OutDir colliding with an existing file makes MkdirAll fail.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocked")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := Renderer{OutDir: blocker, Org: "Test Org"}
	_, err := r.Render(testEmployee())
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	var renderErr *RenderError
	if !errors.As(err, &renderErr) {
		t.Fatalf("Expected *RenderError, got %T", err)
	}
	if renderErr.EmployeeID != "101" {
		t.Errorf("Expected employee id '101' in error, got %q", renderErr.EmployeeID)
	}
}

func snippet(b []byte) string {
	if len(b) > 8 {
		b = b[:8]
	}
	return string(b)
}
