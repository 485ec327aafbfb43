package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"payslip-sync/internal/config"
	"payslip-sync/internal/pipeline"
)

// Exit codes: 1 means the roster could not be loaded (nothing generated or
// sent), 2 means the run finished but some payslips were not generated,
// archived or delivered.
const (
	exitLoadFailed = 1
	exitPartial    = 2
)

func main() {
	var (
		rosterPath = flag.String("roster", "employees.xlsx", "path to the roster workbook")
		outDir     = flag.String("out", "payslips", "output directory for generated payslips")
		archive    = flag.Bool("sftp", false, "archive generated payslips via SFTP")
		timeout    = flag.Duration("timeout", 10*time.Minute, "overall run timeout")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}

	cfg := config.Load()
	if cfg.SMTP.From == "" || cfg.SMTP.Password == "" {
		log.Fatal("missing env vars: SMTP_FROM / SMTP_PASSWORD")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	p := pipeline.New(cfg, pipeline.Options{
		RosterPath: *rosterPath,
		OutDir:     *outDir,
		Archive:    *archive,
	})

	sum, err := p.Run(ctx)
	if err != nil {
		log.Printf("load error: %v", err)
		os.Exit(exitLoadFailed)
	}

	fmt.Printf("\nRun %s complete: sent %d of %d emails (%d employees loaded)\n",
		sum.RunID, sum.Sent, sum.Generated, sum.Loaded)
	if sum.RenderFailed > 0 || sum.DeliveryFailed > 0 || sum.Skipped > 0 {
		fmt.Printf("failures: %d render, %d delivery, %d skipped\n",
			sum.RenderFailed, sum.DeliveryFailed, sum.Skipped)
	}
	if sum.Archived > 0 {
		fmt.Printf("archived %d payslips\n", sum.Archived)
	}

	if !sum.Clean() {
		os.Exit(exitPartial)
	}
}
