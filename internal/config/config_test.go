package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"benritz/bondcalc/internal/types"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Bond.Par != 1000 || cfg.Bond.Maturity != 20 || cfg.Bond.Coupon != 8.0 || cfg.Bond.Frequency != 2 {
		t.Errorf("unexpected bond defaults: %+v", cfg.Bond)
	}
	if cfg.Assumptions.RequiredYield != 7.0 || cfg.Assumptions.BondPrice != 828.40 {
		t.Errorf("unexpected assumption defaults: %+v", cfg.Assumptions)
	}
	if cfg.Output.AWSProfile != "default" {
		t.Errorf("expected default aws profile, got %q", cfg.Output.AWSProfile)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bondcalc.yaml")
	data := []byte(`bond:
  par: 100
  maturity: 10
  coupon: 3.5
  frequency: 4
assumptions:
  horizon: 2.5
output:
  destination: s3://bonds/schedules
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(ENV_MATURITY, "15")
	t.Setenv(ENV_SQLITE_PATH, "/tmp/bondcalc.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Bond.Par != 100 || cfg.Bond.Coupon != 3.5 || cfg.Bond.Frequency != 4 {
		t.Errorf("file values not applied: %+v", cfg.Bond)
	}
	if cfg.Bond.Maturity != 15 {
		t.Errorf("expected env maturity 15, got %d", cfg.Bond.Maturity)
	}
	if cfg.Assumptions.Horizon != 2.5 {
		t.Errorf("expected horizon 2.5, got %v", cfg.Assumptions.Horizon)
	}
	if cfg.Output.Destination != "s3://bonds/schedules" {
		t.Errorf("unexpected destination %q", cfg.Output.Destination)
	}
	if cfg.Database.SQLitePath != "/tmp/bondcalc.db" {
		t.Errorf("unexpected sqlite path %q", cfg.Database.SQLitePath)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("bond: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_MalformedEnv(t *testing.T) {
	tests := []struct {
		name, value string
	}{
		{ENV_PAR, "abc"},
		{ENV_MATURITY, "20.5"},
		{ENV_COUPON, "8%"},
		{ENV_FREQUENCY, "semi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.name, tt.value)
			_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
			if err == nil {
				t.Fatalf("expected error for %s=%s", tt.name, tt.value)
			}
			if !strings.Contains(err.Error(), tt.name) {
				t.Errorf("expected error to name %s, got %v", tt.name, err)
			}
		})
	}
}

func TestValidate_Frequency(t *testing.T) {
	t.Setenv(ENV_FREQUENCY, "3")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.Validate(); !errors.Is(err, types.ErrInvalidFrequency) {
		t.Errorf("expected ErrInvalidFrequency, got %v", err)
	}
}
