package payslip

import (
	"context"
	"log"

	"payslip-sync/internal/concurrency"
	"payslip-sync/internal/domain"
)

// Result tags one generated document with the employee that owns it. The mail
// stage joins documents to recipients by EmployeeID — results arrive in
// completion order, so positional pairing against the roster would mismatch
// recipients whenever renders finish out of order.
type Result struct {
	EmployeeID string
	Path       string
	Err        error
}

// RenderFunc produces one employee's payslip; tests substitute it.
type RenderFunc func(domain.Employee) (string, error)

// GenerateAll renders every employee's payslip on a bounded worker pool and
// returns one tagged Result per employee, in completion order. A failed
// render is logged and tagged; it never aborts sibling tasks or the batch.
func GenerateAll(ctx context.Context, employees []domain.Employee, render RenderFunc) []Result {
	collected := concurrency.Collect(ctx, employees, concurrency.DefaultOptions(),
		func(_ context.Context, emp domain.Employee) (string, error) {
			return render(emp)
		})

	out := make([]Result, 0, len(collected))
	for _, c := range collected {
		res := Result{EmployeeID: employees[c.Index].ID, Path: c.Value, Err: c.Err}
		if res.Err != nil {
			res.Path = ""
			log.Printf("payslip: generate %s: %v", res.EmployeeID, res.Err)
		}
		out = append(out, res)
	}
	return out
}
