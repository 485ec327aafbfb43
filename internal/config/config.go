package config

import (
	"os"
	"strconv"

	"payslip-sync/internal/mailer"
	"payslip-sync/internal/sftpclient"
)

type Config struct {
	// OrgName is shown on the payslip header band.
	OrgName string

	// SMTP transport for payslip notifications.
	SMTP mailer.SMTP

	// SFTP archive target, only used with -sftp.
	SFTP sftpclient.Config
}

func Load() Config {
	return Config{
		OrgName: getenv("ORG_NAME", "Nashe Graphix Pvt Ltd"),

		SMTP: mailer.SMTP{
			Host:     getenv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getenvInt("SMTP_PORT", 587),
			From:     os.Getenv("SMTP_FROM"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},

		SFTP: sftpclient.Config{
			Host:      os.Getenv("SFTP_HOST"),
			Port:      getenvInt("SFTP_PORT", 22),
			User:      os.Getenv("SFTP_USER"),
			Pass:      os.Getenv("SFTP_PASS"),
			RemoteDir: getenv("SFTP_REMOTE_DIR", "/payslips"),
		},
	}
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
