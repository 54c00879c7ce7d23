package main

import (
	"os"
	"strings"
	"testing"

	"github.com/numatools/numacheck/checkers"
)

func TestREADMEIncludesAllCheckers(t *testing.T) {
	readmeBytes, err := os.ReadFile("README.md")
	if err != nil {
		t.Fatalf("Failed to read README.md: %v", err)
	}
	readmeContent := string(readmeBytes)

	var missingCheckers []string
	for _, checker := range checkers.AllCheckers() {
		flagName := "--" + checker.Name()
		if !strings.Contains(readmeContent, flagName) {
			missingCheckers = append(missingCheckers, checker.Name())
		}
	}
	if len(missingCheckers) > 0 {
		t.Errorf("README.md does not document flags for checkers: %v", missingCheckers)
	}

	// Catch documented flags whose checkers were removed.
	documentedFlags := []string{"--topology", "--routes", "--probe"}
	checkerNames := make(map[string]bool)
	for _, checker := range checkers.AllCheckers() {
		checkerNames[checker.Name()] = true
	}
	for _, flag := range documentedFlags {
		name := strings.TrimPrefix(flag, "--")
		if !checkerNames[name] {
			t.Errorf("README.md documents %s but no %q checker is registered", flag, name)
		}
	}
}

func TestREADMEIncludesMCPTools(t *testing.T) {
	readmeBytes, err := os.ReadFile("README.md")
	if err != nil {
		t.Fatalf("Failed to read README.md: %v", err)
	}
	readmeContent := string(readmeBytes)

	for _, checker := range checkers.AllCheckers() {
		def := checker.MCPToolDefinition()
		if def == nil {
			continue
		}
		if !strings.Contains(readmeContent, def.Name) {
			t.Errorf("README.md does not mention MCP tool %q", def.Name)
		}
	}
}
