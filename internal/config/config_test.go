package config

import (
	"os"
	"testing"
)

func TestGetenv(t *testing.T) {
	// Test with empty environment variable
	os.Unsetenv("TEST_GETENV")
	result := getenv("TEST_GETENV", "default")
	if result != "default" {
		t.Errorf("Expected default value 'default', got '%s'", result)
	}

	// Test with set environment variable
	t.Setenv("TEST_GETENV", "test-value")
	result = getenv("TEST_GETENV", "default")
	if result != "test-value" {
		t.Errorf("Expected 'test-value', got '%s'", result)
	}
}

func TestGetenvInt(t *testing.T) {
	// Test with empty environment variable
	os.Unsetenv("TEST_GETENV_INT")
	result := getenvInt("TEST_GETENV_INT", 42)
	if result != 42 {
		t.Errorf("Expected default value 42, got %d", result)
	}

	// Test with valid integer
	t.Setenv("TEST_GETENV_INT", "100")
	result = getenvInt("TEST_GETENV_INT", 42)
	if result != 100 {
		t.Errorf("Expected 100, got %d", result)
	}

	// Test with invalid integer
	t.Setenv("TEST_GETENV_INT", "not-an-int")
	result = getenvInt("TEST_GETENV_INT", 42)
	if result != 42 {
		t.Errorf("Expected default value 42, got %d", result)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("ORG_NAME", "Acme Corp")
	t.Setenv("SMTP_HOST", "mail.acme.test")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_FROM", "payroll@acme.test")
	t.Setenv("SMTP_PASSWORD", "s3cret")
	t.Setenv("SFTP_HOST", "files.acme.test")

	cfg := Load()

	if cfg.OrgName != "Acme Corp" {
		t.Errorf("Expected OrgName 'Acme Corp', got %q", cfg.OrgName)
	}
	if cfg.SMTP.Host != "mail.acme.test" || cfg.SMTP.Port != 2525 {
		t.Errorf("Unexpected SMTP config: %+v", cfg.SMTP)
	}
	if cfg.SMTP.From != "payroll@acme.test" || cfg.SMTP.Password != "s3cret" {
		t.Errorf("Unexpected SMTP identity: %+v", cfg.SMTP)
	}
	if cfg.SFTP.Host != "files.acme.test" || cfg.SFTP.Port != 22 {
		t.Errorf("Unexpected SFTP config: %+v", cfg.SFTP)
	}
	if cfg.SFTP.RemoteDir != "/payslips" {
		t.Errorf("Expected default remote dir '/payslips', got %q", cfg.SFTP.RemoteDir)
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"ORG_NAME", "SMTP_HOST", "SMTP_PORT"} {
		os.Unsetenv(k)
	}

	cfg := Load()
	if cfg.SMTP.Host != "smtp.gmail.com" || cfg.SMTP.Port != 587 {
		t.Errorf("Unexpected SMTP defaults: %+v", cfg.SMTP)
	}
}
