package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/chonky/internal/bignum"
	apperrors "github.com/agbru/chonky/internal/errors"
	"github.com/agbru/chonky/internal/metrics"
	"github.com/agbru/chonky/internal/sysmon"
	"github.com/agbru/chonky/internal/ui"
	"github.com/agbru/chonky/internal/verify"
)

func TestPresentCheckTable(t *testing.T) {
	ui.InitTheme(true)
	results := []verify.CheckResult{
		{Name: "division-identity", Samples: 200, Duration: 12 * time.Millisecond},
		{Name: "mersenne-range", Samples: 17, Seed: 42, Err: errors.New("remainder out of range")},
		{Name: "zero", Samples: 1},
	}
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentCheckTable(results, &buf)
	output := buf.String()

	for _, want := range []string{"Self-check Summary", "Check", "Samples", "Duration", "Status",
		"division-identity", "12ms", "PASS", "FAIL (remainder out of range, seed 42)", "< 1µs"} {
		if !strings.Contains(output, want) {
			t.Errorf("table missing %q:\n%s", want, output)
		}
	}

	// Every row starts its sample column at the same offset.
	lines := strings.Split(strings.TrimSpace(output), "\n")
	header := lines[1]
	col := strings.Index(header, "Samples") + len("Samples")
	for _, line := range lines[2:] {
		if len(line) < col || line[col-1] == ' ' {
			t.Errorf("misaligned row %q (header %q)", line, header)
		}
	}
}

func TestCLIResultPresenterHandleError(t *testing.T) {
	ui.InitTheme(true)
	tests := []struct {
		err  error
		want int
		text string
	}{
		{bignum.ErrDivisionByZero, apperrors.ExitErrorUndefined, "Absent result"},
		{bignum.ErrResourceExhausted, apperrors.ExitErrorResource, "Resource exhausted"},
		{errors.New("boom"), apperrors.ExitErrorGeneric, "unexpected error"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if got := (CLIResultPresenter{}).HandleError(tt.err, 0, &buf); got != tt.want {
			t.Errorf("HandleError(%v) = %d, want %d", tt.err, got, tt.want)
		}
		if !strings.Contains(buf.String(), tt.text) {
			t.Errorf("HandleError(%v) printed %q, want %q", tt.err, buf.String(), tt.text)
		}
	}
}

func TestDisplayMemoryStats(t *testing.T) {
	t.Parallel()
	before := metrics.MemorySnapshot{TotalAlloc: 1000, Mallocs: 10, NumGC: 1}
	after := metrics.MemorySnapshot{HeapAlloc: 4096, TotalAlloc: 3048, Mallocs: 15, NumGC: 3}
	var buf bytes.Buffer
	DisplayMemoryStats(before, after, &buf)
	for _, want := range []string{"4.0 KiB", "2.0 KiB in 5 objects", "GC cycles:       2"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("memory stats missing %q:\n%s", want, buf.String())
		}
	}
}

func TestDisplayEnvironment(t *testing.T) {
	ui.InitTheme(true)
	var buf bytes.Buffer
	stats := sysmon.Stats{CPUPercent: 12.5, MemPercent: 50, MemTotal: 2 << 30, MemFree: 1 << 30, LogicalCPU: 8}
	DisplayEnvironment(stats, sysmon.CPUFeatures{Arch: "amd64", ADX: true, BMI2: true}, &buf)
	for _, want := range []string{"amd64 (adx,bmi2)", "8 logical", "12.5% busy", "1.0 GiB free of 2.0 GiB", "ADX+BMI2 carry:  yes"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("environment missing %q:\n%s", want, buf.String())
		}
	}
}

func TestCLIColorProvider(t *testing.T) {
	ui.InitTheme(true)
	c := CLIColorProvider{}
	if c.Red() != ui.ColorRed() || c.Yellow() != ui.ColorYellow() || c.Reset() != ui.ColorReset() {
		t.Error("CLIColorProvider should mirror the current theme")
	}
}
