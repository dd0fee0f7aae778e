package log

import (
	"bytes"
	"fmt"
	"testing"
)

// useDefault installs a test logger as the package default for the
// duration of the test.
func useDefault(t *testing.T, buf *bytes.Buffer, opts ...Option) {
	t.Helper()

	original := Default()
	t.Cleanup(func() { SetDefault(original) })

	SetDefault(makeTestLogger(buf, opts...))
}

func TestPackage_LogFunctions_UseDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	useDefault(t, &buf)

	tests := []struct {
		name     string
		fn       func(string, ...any)
		msg      string
		expected string
	}{
		{"Infof", Infof, "info", "2022-12-18T23:30:00(UTC)  INFO info 1\n"},
		{"Warnf", Warnf, "warn", "2022-12-18T23:30:00(UTC)  WARN warn 1\n"},
		{"Errorf", Errorf, "error", "2022-12-18T23:30:00(UTC) ERROR error 1\n"},
		{"Debugf", Debugf, "debug", "2022-12-18T23:30:00(UTC) DEBUG debug 1\n"},
		{"Tracef", Tracef, "trace", "2022-12-18T23:30:00(UTC) TRACE trace 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()

			tt.fn("%s %d", tt.msg, 1)

			if got := buf.String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestPackage_Flag_ReportsCallSite(t *testing.T) {
	var buf bytes.Buffer
	useDefault(t, &buf, WithPrefix(true))

	n := line() + 1
	Flag()

	m := line() + 1
	Flagf("i wake up!")

	expected := fmt.Sprintf(
		"2022-12-18T23:30:00(UTC)  FLAG %[1]s: [pkg_test.go:%[2]d]\n"+
			"2022-12-18T23:30:00(UTC)  FLAG %[1]s: [pkg_test.go:%[3]d] i wake up!\n",
		thisPackage, n, m,
	)
	if got := buf.String(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestPackage_Config_WrapsDefault(t *testing.T) {
	var buf bytes.Buffer
	useDefault(t, &buf)

	Config(WithZone(ZoneJST))

	if Default().Zone() != ZoneJST {
		t.Errorf("expected jst, got %v", Default().Zone())
	}

	Infof("x")

	if got := buf.String(); got != "2022-12-19T08:30:00(JST)  INFO x\n" {
		t.Errorf("unexpected line %q", got)
	}
}
