package pipeline

import (
	"context"
	"log"

	"github.com/google/uuid"

	"payslip-sync/internal/config"
	"payslip-sync/internal/domain"
	"payslip-sync/internal/mailer"
	"payslip-sync/internal/payslip"
	"payslip-sync/internal/roster"
	"payslip-sync/internal/sftpclient"
)

// Options selects one run's inputs and outputs.
type Options struct {
	RosterPath string
	OutDir     string
	// Archive uploads the generated payslips to the SFTP file server
	// before the mail stage.
	Archive bool
}

// Summary reports one run, broken down by failure kind.
type Summary struct {
	RunID          string
	Loaded         int
	Generated      int
	RenderFailed   int
	Sent           int
	DeliveryFailed int
	// Skipped counts employees whose payslip was never generated and so
	// could not be mailed.
	Skipped    int
	Archived   int
	ArchiveErr error
}

// Clean reports whether every loaded employee got a generated and delivered
// payslip (and the archive, if requested, succeeded).
func (s Summary) Clean() bool {
	return s.RenderFailed == 0 && s.DeliveryFailed == 0 && s.Skipped == 0 && s.ArchiveErr == nil
}

// ArchiveFunc uploads the run's payslips; tests substitute it.
type ArchiveFunc func(ctx context.Context, cfg sftpclient.Config, paths []string) error

// Pipeline sequences load, generation, archive and notification. The stage
// functions default to the real implementations; tests swap them out.
type Pipeline struct {
	Cfg  config.Config
	Opts Options

	Load    func(path string) ([]domain.Employee, error)
	Render  payslip.RenderFunc
	Send    mailer.SendFunc
	Archive ArchiveFunc
}

func New(cfg config.Config, opts Options) *Pipeline {
	renderer := payslip.Renderer{OutDir: opts.OutDir, Org: cfg.OrgName}
	return &Pipeline{
		Cfg:     cfg,
		Opts:    opts,
		Load:    roster.Load,
		Render:  renderer.Render,
		Send:    mailer.Send,
		Archive: sftpclient.Archive,
	}
}

// Run executes the stages in order with a full barrier between them: the
// generation stage finishes entirely before the first email is sent. The
// returned error is non-nil only when the roster cannot be loaded — nothing
// is generated or sent in that case. Per-item failures never abort the run;
// they are carried in the Summary.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	sum := Summary{RunID: uuid.NewString()}

	employees, err := p.Load(p.Opts.RosterPath)
	if err != nil {
		return sum, err
	}
	sum.Loaded = len(employees)

	log.Printf("run %s: generating %d payslips...", sum.RunID, len(employees))
	generated := payslip.GenerateAll(ctx, employees, p.Render)

	var paths []string
	for _, g := range generated {
		if g.Err != nil {
			sum.RenderFailed++
			continue
		}
		sum.Generated++
		paths = append(paths, g.Path)
	}

	if p.Opts.Archive && len(paths) > 0 {
		log.Printf("run %s: archiving %d payslips...", sum.RunID, len(paths))
		if err := p.Archive(ctx, p.Cfg.SFTP, paths); err != nil {
			// Best effort: the mail stage still runs.
			log.Printf("run %s: archive: %v", sum.RunID, err)
			sum.ArchiveErr = err
		} else {
			sum.Archived = len(paths)
		}
	}

	log.Printf("run %s: sending emails...", sum.RunID)
	stats := mailer.NotifyAll(ctx, p.Cfg.SMTP, employees, generated, p.Send)
	sum.Sent = stats.Sent
	sum.DeliveryFailed = stats.Failed
	sum.Skipped = stats.Skipped

	return sum, nil
}
