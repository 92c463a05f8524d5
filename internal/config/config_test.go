package config

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/chonky/internal/errors"
)

var (
	testOps     = []string{"add", "divide", "power_mod_mersenne"}
	testOracles = []string{"big"}
)

func TestParseConfig(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		t.Parallel()
		cfg, err := ParseConfig("chonky", []string{"-self-check"}, io.Discard, testOps, testOracles)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.Samples != DefaultSamples || cfg.Bits != DefaultBits || cfg.Oracle != DefaultOracle {
			t.Errorf("unexpected self-check defaults: %+v", cfg)
		}
		if cfg.Timeout != DefaultTimeout {
			t.Errorf("Expected default Timeout %v, got %v", DefaultTimeout, cfg.Timeout)
		}
		if cfg.LogLevel != "warn" {
			t.Errorf("Expected default LogLevel warn, got %q", cfg.LogLevel)
		}
	})

	t.Run("ValidFlags", func(t *testing.T) {
		t.Parallel()
		args := []string{
			"-op", "Power_Mod_Mersenne",
			"-a", "-0x1f",
			"-b", "ff",
			"-m", "7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed",
			"-timeout", "10s",
			"-q",
			"-d",
			"-o", "result.txt",
			"-metrics",
			"-log-level", "debug",
		}
		cfg, err := ParseConfig("chonky", args, io.Discard, testOps, testOracles)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.Op != "power_mod_mersenne" {
			t.Errorf("Expected lower-cased op, got %q", cfg.Op)
		}
		if cfg.A != "-0x1f" || cfg.B != "ff" || !strings.HasSuffix(cfg.M, "ed") {
			t.Errorf("unexpected operands: %q %q %q", cfg.A, cfg.B, cfg.M)
		}
		if cfg.Timeout != 10*time.Second || !cfg.Quiet || !cfg.Details || !cfg.Metrics {
			t.Errorf("unexpected flags: %+v", cfg)
		}
		if cfg.OutputFile != "result.txt" || cfg.LogLevel != "debug" {
			t.Errorf("unexpected output settings: %+v", cfg)
		}
	})

	t.Run("Help", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		_, err := ParseConfig("chonky", []string{"-h"}, &buf, testOps, testOracles)
		if !errors.Is(err, flag.ErrHelp) {
			t.Fatalf("Expected flag.ErrHelp, got %v", err)
		}
		for _, want := range []string{"Usage: chonky", "Self-check:", "-op", "CHONKY_TIMEOUT"} {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("usage should contain %q, got:\n%s", want, buf.String())
			}
		}
	})

	t.Run("InvalidConfigurations", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name string
			args []string
		}{
			{"missing op", []string{"-a", "1"}},
			{"unknown op", []string{"-op", "sqrt", "-a", "1"}},
			{"zero timeout", []string{"-op", "add", "-timeout", "0s"}},
			{"bad log level", []string{"-op", "add", "-log-level", "loud"}},
			{"zero samples", []string{"-self-check", "-samples", "0"}},
			{"tiny bits", []string{"-self-check", "-bits", "4"}},
			{"negative workers", []string{"-self-check", "-workers", "-1"}},
			{"unknown oracle", []string{"-self-check", "-oracle", "python"}},
		}
		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				var buf bytes.Buffer
				_, err := ParseConfig("chonky", tt.args, &buf, testOps, testOracles)
				var cfgErr apperrors.ConfigError
				if !errors.As(err, &cfgErr) {
					t.Fatalf("Expected ConfigError, got %v", err)
				}
				if !strings.Contains(buf.String(), "Configuration error:") {
					t.Errorf("Expected error message on errorWriter, got %q", buf.String())
				}
			})
		}
	})

	t.Run("UnknownFlag", func(t *testing.T) {
		t.Parallel()
		if _, err := ParseConfig("chonky", []string{"-algo", "fast"}, io.Discard, testOps, testOracles); err == nil {
			t.Error("Expected error for unknown flag")
		}
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CHONKY_OP", "divide")
	t.Setenv("CHONKY_A", "64")
	t.Setenv("CHONKY_B", "-7")
	t.Setenv("CHONKY_TIMEOUT", "2m")
	t.Setenv("CHONKY_QUIET", "yes")
	t.Setenv("CHONKY_DETAILS", "maybe")
	t.Setenv("CHONKY_SAMPLES", "not-a-number")
	t.Setenv("CHONKY_SEED", "42")

	cfg, err := ParseConfig("chonky", []string{"-b", "3"}, io.Discard, testOps, testOracles)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Op != "divide" || cfg.A != "64" {
		t.Errorf("env operands not applied: %+v", cfg)
	}
	if cfg.B != "3" {
		t.Errorf("flag should win over env, got B=%q", cfg.B)
	}
	if cfg.Timeout != 2*time.Minute || !cfg.Quiet {
		t.Errorf("env timeout/quiet not applied: %+v", cfg)
	}
	if cfg.Details {
		t.Error("unrecognized boolean should keep the default")
	}
	if cfg.Samples != DefaultSamples {
		t.Errorf("invalid integer should keep the default, got %d", cfg.Samples)
	}
	if cfg.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Seed)
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"TRUE", false, true},
		{"1", false, true},
		{"no", true, false},
		{"0", true, false},
		{"", true, true},
		{"perhaps", false, false},
	}
	for _, tt := range tests {
		tt := tt
		if got := parseBoolEnv(tt.in, tt.def); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
		}
	}
}
