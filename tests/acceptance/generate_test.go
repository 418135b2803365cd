package acceptance

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateWithDefaultPaths(t *testing.T) {
	base := t.TempDir()
	exe := installBinary(t, base)

	writeSkill(t, filepath.Join(base, "skills"), "alpha", `---
name: Alpha
description: >-
  Line one
  line two
category: tools
tags: [x, y]
---

# Alpha
`)
	writeSkill(t, filepath.Join(base, "skills"), "beta", "# Beta\n")

	cmd := exec.Command(exe)
	cmd.Dir = t.TempDir()
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("skillindex failed: %v\n%s", err, output)
	}

	if got := strings.TrimSpace(string(output)); got != "Indexed 1 skills across 1 categories" {
		t.Errorf("unexpected summary: %q", got)
	}

	data, err := os.ReadFile(filepath.Join(base, "skills.json"))
	if err != nil {
		t.Fatalf("catalog not written next to the skills root: %v", err)
	}

	var catalog struct {
		Skills []struct {
			Name        string   `json:"name"`
			Slug        string   `json:"slug"`
			Description string   `json:"description"`
			Category    string   `json:"category"`
			Tags        []string `json:"tags"`
		} `json:"skills"`
		Categories []string `json:"categories"`
		UpdatedAt  string   `json:"updatedAt"`
	}
	if err := json.Unmarshal(data, &catalog); err != nil {
		t.Fatalf("catalog is not valid JSON: %v", err)
	}

	if len(catalog.Skills) != 1 {
		t.Fatalf("expected 1 skill, got %d", len(catalog.Skills))
	}
	skill := catalog.Skills[0]
	if skill.Slug != "alpha" || skill.Description != "Line one line two" {
		t.Errorf("unexpected skill: %+v", skill)
	}
	if strings.Join(skill.Tags, ",") != "x,y" {
		t.Errorf("unexpected tags: %v", skill.Tags)
	}
	if strings.Join(catalog.Categories, ",") != "tools" {
		t.Errorf("unexpected categories: %v", catalog.Categories)
	}
	if catalog.UpdatedAt == "" {
		t.Error("updatedAt should be set")
	}
}

func TestGenerateFailsWithoutSkillsRoot(t *testing.T) {
	base := t.TempDir()
	exe := installBinary(t, base)

	cmd := exec.Command(exe)
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	output, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatalf("expected failure without a skills root, got: %s", output)
	}
	if !strings.Contains(string(output), "[ERROR]") {
		t.Errorf("expected an error message, got: %s", output)
	}
	if _, statErr := os.Stat(filepath.Join(base, "skills.json")); !os.IsNotExist(statErr) {
		t.Errorf("no catalog should be written on failure")
	}
}

func TestVersionCommand(t *testing.T) {
	exe := installBinary(t, t.TempDir())

	output, err := exec.Command(exe, "version").CombinedOutput()
	if err != nil {
		t.Fatalf("Failed to execute version command: %v", err)
	}

	outputStr := strings.TrimSpace(string(output))
	if !strings.Contains(outputStr, "version") || !strings.Contains(outputStr, "gitCommit") {
		t.Errorf("Version output should contain version and gitCommit fields. Got: %s", outputStr)
	}
}
