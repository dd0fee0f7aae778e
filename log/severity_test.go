package log

import (
	"log/slog"
	"testing"
	"time"
)

func TestSeverity_Tag_IsPaddedToWidth(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{SeverityInfo, " INFO"},
		{SeverityWarn, " WARN"},
		{SeverityError, "ERROR"},
		{SeverityDebug, "DEBUG"},
		{SeverityTrace, "TRACE"},
		{SeverityFlag, " FLAG"},
	}

	for _, tt := range tests {
		t.Run(tt.severity.String(), func(t *testing.T) {
			got := tt.severity.Tag()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}

			if len(got) != tagWidth {
				t.Errorf("expected width %d, got %d", tagWidth, len(got))
			}
		})
	}
}

func TestSeverity_Level_RoundTrips(t *testing.T) {
	for s := range Severities() {
		if got := SeverityOf(s.Level()); got != s {
			t.Errorf("SeverityOf(%v.Level()) = %v", s, got)
		}
	}
}

func TestSeverityOf_BucketsIntermediateLevels(t *testing.T) {
	tests := []struct {
		level    slog.Level
		expected Severity
	}{
		{slog.Level(-100), SeverityTrace},
		{LevelDebug - 1, SeverityTrace},
		{LevelDebug + 1, SeverityDebug},
		{LevelInfo + 2, SeverityInfo},
		{LevelError - 1, SeverityWarn},
		{LevelError + 3, SeverityError},
		{slog.Level(100), SeverityFlag},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := SeverityOf(tt.level); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSeverity_String_Unknown(t *testing.T) {
	if got := Severity(42).String(); got != "Severity(42)" {
		t.Errorf("unexpected name %q", got)
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input    string
		expected Severity
		ok       bool
	}{
		{"info", SeverityInfo, true},
		{"  WARN ", SeverityWarn, true},
		{"Error", SeverityError, true},
		{"debug", SeverityDebug, true},
		{"trace", SeverityTrace, true},
		{"flag", SeverityFlag, true},
		{"fatal", SeverityInfo, false},
		{"", SeverityInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseSeverity(tt.input)
			if got != tt.expected || ok != tt.ok {
				t.Errorf("expected (%v, %v), got (%v, %v)", tt.expected, tt.ok, got, ok)
			}
		})
	}
}

func TestParseZone(t *testing.T) {
	tests := []struct {
		input    string
		expected Zone
	}{
		{"utc", ZoneUTC},
		{"UTC", ZoneUTC},
		{" jst ", ZoneJST},
		{"JST", ZoneJST},
		{"pst", DefaultZone},
		{"", DefaultZone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseZone(tt.input); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestZone_LabelAndOffset(t *testing.T) {
	at := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		zone   Zone
		label  string
		offset int
	}{
		{ZoneUTC, "(UTC)", 0},
		{ZoneJST, "(JST)", 9 * 60 * 60},
	}

	for _, tt := range tests {
		t.Run(tt.zone.String(), func(t *testing.T) {
			if got := tt.zone.Label(); got != tt.label {
				t.Errorf("expected label %q, got %q", tt.label, got)
			}

			if _, off := at.In(tt.zone.Location()).Zone(); off != tt.offset {
				t.Errorf("expected offset %d, got %d", tt.offset, off)
			}
		})
	}
}

func TestZones_ListsAll(t *testing.T) {
	var names []string
	for z := range Zones() {
		names = append(names, z)
	}

	if len(names) != 2 || names[0] != "utc" || names[1] != "jst" {
		t.Errorf("unexpected zones %v", names)
	}
}
