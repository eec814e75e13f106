package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestPriceCmd(t *testing.T) {
	out, err := run(t, "price")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Bond Price at Required Yield 7%: $1106.78") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestYieldCmd(t *testing.T) {
	out, err := run(t, "yield", "--price", "1106.7753616864875")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "7.000000%") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestReturnCmd(t *testing.T) {
	out, err := run(t, "return")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Bond-Equivalent Total Return: 17.15%") ||
		!strings.Contains(out, "Effective Annual Total Return: 17.89%") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestReturnCmd_HorizonAtMaturity(t *testing.T) {
	if _, err := run(t, "return", "--horizon", "20"); err == nil {
		t.Fatal("expected error for horizon at maturity")
	}
	out, err := run(t, "return", "--to-maturity")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Projected Sale Price: $1000.00") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestScheduleCmd(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "schedule", "--maturity", "1", "--start", "2024-01-01", "--output", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "2024-12-31      Principal       $1000.00") {
		t.Errorf("unexpected output %q", out)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "2024", "01", "01", "*.parquet"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 parquet file, got %v", matches)
	}
	if st, err := os.Stat(matches[0]); err != nil || st.Size() == 0 {
		t.Errorf("expected non-empty parquet file: %v", err)
	}
}

func TestInvalidFrequency(t *testing.T) {
	if _, err := run(t, "price", "--frequency", "0"); err == nil {
		t.Fatal("expected error for zero frequency")
	}
}

func TestBatchCmd_IgnoresTermFlags(t *testing.T) {
	workbook := filepath.Join("..", "..", "internal", "batch", "testdata", "bonds.xlsx")
	for _, args := range [][]string{
		{"batch", workbook},
		{"batch", workbook, "--frequency", "0"},
		{"batch", workbook, "--par", "-1"},
	} {
		out, err := run(t, args...)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", args, err)
		}
		if !strings.Contains(out, "bondA") || !strings.Contains(out, "$1106.78") {
			t.Errorf("%v: unexpected output %q", args, out)
		}
	}
}
