package main

import (
	"os"
	"path/filepath"
	"testing"

	"deckport/internal/testsupport"
)

func TestConfigInitAndValidate(t *testing.T) {
	cfgPath := writeConfigFile(t, testsupport.NewConfig(t))

	out, _, err := runCLI(t, []string{"--config", cfgPath, "config", "validate"}, "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}
	requireContains(t, string(data), "[scryfall]")

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected second init without --overwrite to fail")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigShowRendersEffectiveConfig(t *testing.T) {
	cfgPath := writeConfigFile(t, testsupport.NewConfig(t))

	out, _, err := runCLI(t, []string{"--config", cfgPath, "config", "show"}, "")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, cfgPath)
	requireContains(t, out, "[scryfall]")
	requireContains(t, out, "[lookup]")
}
