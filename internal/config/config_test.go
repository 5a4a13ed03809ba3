package config

import (
	"os"
	"testing"
)

func TestParseRequiresInterface(t *testing.T) {
	os.Unsetenv("FW_INTERFACE")
	os.Unsetenv("FW_DB_PATH")

	if _, err := Parse(nil); err == nil {
		t.Fatal("expected an error with no interface specified")
	}
}

func TestParseFlags(t *testing.T) {
	os.Unsetenv("FW_INTERFACE")
	os.Unsetenv("FW_DB_PATH")

	cfg, err := Parse([]string{"--interface", "eth0", "--db-path", "/tmp/x.db", "--verbose"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Interfaces) != 1 || cfg.Interfaces[0] != "eth0" {
		t.Errorf("Interfaces = %v, want [eth0]", cfg.Interfaces)
	}
	if cfg.DBPath != "/tmp/x.db" {
		t.Errorf("DBPath = %q, want /tmp/x.db", cfg.DBPath)
	}
	if !cfg.Verbose {
		t.Error("expected Verbose to be true")
	}
}

func TestParseInterfaceFlagIsSpaceSeparated(t *testing.T) {
	os.Unsetenv("FW_INTERFACE")
	os.Unsetenv("FW_DB_PATH")

	cfg, err := Parse([]string{"--interface", "eth0 eth1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Interfaces) != 2 || cfg.Interfaces[0] != "eth0" || cfg.Interfaces[1] != "eth1" {
		t.Errorf("Interfaces = %v, want [eth0 eth1]", cfg.Interfaces)
	}
}

func TestEnvInterfaceOverride(t *testing.T) {
	os.Setenv("FW_INTERFACE", "eth1 eth2")
	defer os.Unsetenv("FW_INTERFACE")

	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Interfaces) != 2 {
		t.Fatalf("Interfaces = %v, want 2 entries from FW_INTERFACE", cfg.Interfaces)
	}
}

func TestListModeDoesNotRequireInterface(t *testing.T) {
	os.Unsetenv("FW_INTERFACE")
	cfg, err := Parse([]string{"--list", "--db-path", "/tmp/x.db"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.List {
		t.Error("expected List to be true")
	}
}
