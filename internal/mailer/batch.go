package mailer

import (
	"context"
	"fmt"
	"log"
	"time"

	"payslip-sync/internal/concurrency"
	"payslip-sync/internal/domain"
	"payslip-sync/internal/payslip"
)

// Stats summarizes one notification batch by outcome kind.
type Stats struct {
	// Attempted is the number of (document, recipient) pairs dispatched.
	Attempted int
	Sent      int
	Failed    int
	// Skipped counts employees that had no generated payslip to send.
	Skipped int
}

// SendFunc delivers one notification; tests substitute it.
type SendFunc func(ctx context.Context, cfg SMTP, n Notification) error

const subject = "Your Payslip for This Month"

// sendTimeout bounds one SMTP session (connect, TLS, auth, send).
const sendTimeout = 2 * time.Minute

// NotifyAll emails every employee their own payslip on a bounded worker pool.
// Documents are joined to recipients by canonical employee id, never by
// position. Failures are logged and tallied; one bad recipient never blocks
// the others.
func NotifyAll(ctx context.Context, cfg SMTP, employees []domain.Employee, generated []payslip.Result, send SendFunc) Stats {
	byID := make(map[string]string, len(generated))
	for _, g := range generated {
		if g.Err == nil && g.Path != "" {
			byID[g.EmployeeID] = g.Path
		}
	}

	var stats Stats
	pairs := make([]pair, 0, len(employees))
	for _, emp := range employees {
		path, ok := byID[emp.ID]
		if !ok {
			stats.Skipped++
			continue
		}
		pairs = append(pairs, pair{emp: emp, path: path})
	}
	stats.Attempted = len(pairs)

	opts := concurrency.DefaultOptions()
	opts.TaskTimeout = sendTimeout

	results := concurrency.Collect(ctx, pairs, opts,
		func(ctx context.Context, p pair) (domain.DeliveryResult, error) {
			err := send(ctx, cfg, Notification{
				To:         p.emp.Email,
				Subject:    subject,
				Body:       body(p.emp.Name),
				Attachment: p.path,
			})
			return domain.DeliveryResult{EmployeeID: p.emp.ID, Recipient: p.emp.Email, Err: err}, err
		})

	for _, res := range results {
		if res.Err != nil {
			stats.Failed++
			log.Printf("mailer: %v", res.Err)
			continue
		}
		stats.Sent++
		log.Printf("mailer: sent to %s", res.Value.Recipient)
	}
	return stats
}

type pair struct {
	emp  domain.Employee
	path string
}

func body(name string) string {
	return fmt.Sprintf("Dear %s,\n\nPlease find your payslip for this month attached to this email.\n\nBest regards,\nPayroll Team\n", name)
}
