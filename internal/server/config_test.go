package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/homelend/mortgage-engine/pkg/constants"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
		wantErr  bool
	}{
		{"1024", 1024, false},
		{"256K", 256 * 1024, false},
		{"10M", 10 * 1024 * 1024, false},
		{"1GB", 1024 * 1024 * 1024, false},
		{"100B", 100, false},
		{"", constants.DefaultMaxBodySizeBytes, false},
		{"abc", 0, true},
		{"10X", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSize(%q) expected error, got %d", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSize(%q) returned error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseSize(%q) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Address != constants.DefaultServerAddress {
		t.Errorf("address = %q, expected default", cfg.Address)
	}
	if cfg.BodySizeBytes() != constants.DefaultMaxBodySizeBytes {
		t.Errorf("body size = %d, expected default", cfg.BodySizeBytes())
	}

	// A missing file also yields defaults.
	cfg, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig returned error for missing file: %v", err)
	}
	if cfg.Address != constants.DefaultServerAddress {
		t.Errorf("address = %q, expected default", cfg.Address)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	contents := "address: \":9090\"\nmaxBodySize: 256K\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Address != ":9090" {
		t.Errorf("address = %q, expected :9090", cfg.Address)
	}
	if cfg.BodySizeBytes() != 256*1024 {
		t.Errorf("body size = %d, expected 262144", cfg.BodySizeBytes())
	}
}
