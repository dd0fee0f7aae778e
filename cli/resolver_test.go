package cli

import (
	"errors"
	"maps"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/ardnew/clog/pkg"
)

func TestLoadYAML_FlattensNestedKeys(t *testing.T) {
	input := `
log:
  zone: jst
  color: always
log_prefix: true
pprof-mode: cpu
retries: 3
ratio: 0.5
`

	resolver, err := loadYAML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("loadYAML failed: %v", err)
	}

	expected := config{
		"log-zone":   "jst",
		"log-color":  "always",
		"log-prefix": true,
		"pprof-mode": "cpu",
		"retries":    "3",
		"ratio":      "0.5",
	}

	if got, ok := resolver.(config); !ok || !maps.Equal(got, expected) {
		t.Errorf("expected %v, got %v", expected, resolver)
	}
}

func TestLoadYAML_EmptyDocument(t *testing.T) {
	resolver, err := loadYAML(strings.NewReader(""))
	if err != nil {
		t.Fatalf("loadYAML failed: %v", err)
	}

	if got := resolver.(config); len(got) != 0 {
		t.Errorf("expected empty config, got %v", got)
	}
}

func TestLoadYAML_RejectsNonMapping(t *testing.T) {
	_, err := loadYAML(strings.NewReader("- a\n- b\n"))
	if !errors.Is(err, pkg.ErrParseConfig) {
		t.Errorf("expected ErrParseConfig, got %v", err)
	}
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestLoadYAML_ReadError(t *testing.T) {
	_, err := loadYAML(failReader{})
	if !errors.Is(err, pkg.ErrReadConfig) {
		t.Errorf("expected ErrReadConfig, got %v", err)
	}
}

func TestConfig_Resolve(t *testing.T) {
	cfg := config{"log-zone": "jst", "log-color": nil}

	tests := []struct {
		name     string
		expected any
	}{
		{"log-zone", "jst"},
		{"log-color", nil},
		{"log-prefix", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := &kong.Flag{Value: &kong.Value{Name: tt.name}}

			got, err := cfg.Resolve(nil, nil, flag)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}

			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
