package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestFieldHelpers(t *testing.T) {
	t.Parallel()
	cause := errors.New("bignum: division by zero")
	tests := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{"String", String("op", "modulo"), "op", "modulo"},
		{"Int", Int("live", 3), "live", 3},
		{"Int64", Int64("seed", -1729), "seed", int64(-1729)},
		{"Uint64", Uint64("handle", 18446744073709551615), "handle", uint64(18446744073709551615)},
		{"Float64", Float64("ms", 1.5), "ms", 1.5},
		{"Err", Err(cause), "error", cause},
		{"Err nil", Err(nil), "error", nil},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.field.Key != tt.key || tt.field.Value != tt.value {
				t.Errorf("got %s=%v, want %s=%v", tt.field.Key, tt.field.Value, tt.key, tt.value)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "handle")
	logger.Info("allocated", Uint64("handle", 7), Int64("seed", -3))

	output := buf.String()
	for _, want := range []string{`"component":"handle"`, "allocated", `"handle":7`, `"seed":-3`, `"level":"info"`} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
	if NewDefaultLogger() == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
}

func TestZerologAdapter_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))

	logger.Debug("absent result", String("op", "divide"))
	logger.Error("check failed", errors.New("mismatch"), Int("sample", 12))
	logger.Error("no cause", nil)
	logger.Printf("ran %d checks", 11)
	logger.Println("self-check", "done")

	output := buf.String()
	for _, want := range []string{
		`"level":"debug"`, "absent result", `"op":"divide"`,
		`"level":"error"`, "mismatch", `"sample":12`, "no cause",
		"ran 11 checks", "self-check done",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
}

func TestZerologAdapter_applyFields(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string field", Field{Key: "op", Value: "power_mod"}, "power_mod"},
		{"int field", Field{Key: "bits", Value: 512}, "512"},
		{"int64 field", Field{Key: "big", Value: int64(9223372036854775807)}, "9223372036854775807"},
		{"uint64 field", Field{Key: "huge", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64 field", Field{Key: "ratio", Value: 0.25}, "0.25"},
		{"error field", Field{Key: "cause", Value: errors.New("oops")}, "oops"},
		{"bool field", Field{Key: "negative", Value: true}, "true"},
		{"interface field", Field{Key: "widths", Value: []int{16, 8}}, "[16,8]"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLogger(&buf, "test").Info("test", tt.field)
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("applyFields should handle %s, output: %s", tt.name, buf.String())
			}
		})
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Info("ignored")
	logger.Error("ignored", errors.New("x"))
	logger.Debug("ignored")
}

func TestStdLoggerAdapter(t *testing.T) {
	tests := []struct {
		name     string
		emit     func(Logger)
		contains []string
	}{
		{
			name:     "info with fields",
			emit:     func(l Logger) { l.Info("allocated", String("sign", "negative")) },
			contains: []string{"[INFO]", "allocated", "sign=negative"},
		},
		{
			name:     "error with cause",
			emit:     func(l Logger) { l.Error("release failed", errors.New("unknown handle"), Uint64("handle", 9)) },
			contains: []string{"[ERROR]", "release failed", "error=unknown handle", "handle=9"},
		},
		{
			name:     "debug",
			emit:     func(l Logger) { l.Debug("fold", Int("passes", 2)) },
			contains: []string{"[DEBUG]", "fold", "passes=2"},
		},
		{
			name:     "printf",
			emit:     func(l Logger) { l.Printf("value is %d", 123) },
			contains: []string{"value is 123"},
		},
		{
			name:     "println",
			emit:     func(l Logger) { l.Println("a", "b", "c") },
			contains: []string{"a b c"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(NewStdLoggerAdapter(log.New(&buf, "", 0)))
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output should contain %q, got: %s", want, buf.String())
				}
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"WARN", zerolog.WarnLevel, false},
		{"disabled", zerolog.Disabled, false},
		{"verbose", zerolog.NoLevel, true},
	}
	for _, tt := range tests {
		tt := tt
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v (err=%v)", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestLoggerInterface(t *testing.T) {
	var _ Logger = NewNopLogger()
	var _ Logger = NewStdLoggerAdapter(log.New(&bytes.Buffer{}, "", 0))
}
