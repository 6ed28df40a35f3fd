package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

const testNames = `names:
  - name: Alice
    trans: 爱丽丝
  - name: Lyria
    trans: 露莉亚
    scenarios:
      - tag: evt180101
        trans: 小露
`

const testSourceNames = `names:
  - name: アリス
    trans: 爱丽丝
`

const testConfig = `lang: en
names:
  foreign: [data/names.en.yaml]
  source: [data/names.jp.yaml]
overrides: data/overrides.yaml
`

func setupProject(t *testing.T) string {
	t.Helper()
	for _, key := range []string{"BLHXFY_LANG", "BLHXFY_OVERRIDES", "BLHXFY_LOG_LEVEL", "BLHXFY_NAMES_FOREIGN", "BLHXFY_NAMES_SOURCE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	dir := t.TempDir()
	files := map[string]string{
		"data/names.en.yaml":  testNames,
		"data/names.jp.yaml":  testSourceNames,
		"data/overrides.yaml": "\"7\":\n  synopsis: 梗概\n",
		".blhxfy.yaml":        testConfig,
	}
	for name, data := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatalf("WriteFile %s: %v", name, err)
		}
	}
	return dir
}

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() {
		rootDir = "."
		verbose = false
	})

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestApplyCommand(t *testing.T) {
	dir := setupProject(t)
	body := `{"scene_list":[{"id":7,"charcter1_name":"Lyria","charcter2_name":"Nobody 2","synopsis":"s"}],"keep":true}`

	out, stderr, err := runCLI(t, body, "apply", "--root", dir,
		"--path", "/rest/scenario/scenario/scene_evt180101_cp1/1", "--report")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if got := gjson.Get(out, "scene_list.0.charcter1_name").String(); got != "小露" {
		t.Fatalf("charcter1_name = %q, want 小露", got)
	}
	if got := gjson.Get(out, "scene_list.0.synopsis").String(); got != "梗概" {
		t.Fatalf("synopsis = %q, want 梗概", got)
	}
	if !gjson.Get(out, "keep").Bool() {
		t.Fatal("unrelated field lost")
	}
	if !strings.Contains(stderr, "Nobody") {
		t.Fatalf("report does not list missing name: %q", stderr)
	}
}

func TestApplyCommandFilesAndLanguageFlag(t *testing.T) {
	dir := setupProject(t)
	in := filepath.Join(dir, "body.json")
	outFile := filepath.Join(dir, "out.json")
	if err := os.WriteFile(in, []byte(`[{"charcter1_name":"アリス"}]`), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, _, err := runCLI(t, "", "apply", "--root", dir, "--lang", "jp",
		"--path", "/scenario/scene_x", "--in", in, "--out", outFile); err != nil {
		t.Fatalf("apply: %v", err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got := gjson.GetBytes(data, "0.charcter1_name").String(); got != "爱丽丝" {
		t.Fatalf("charcter1_name = %q, want 爱丽丝", got)
	}
}

func TestApplyCommandPassthrough(t *testing.T) {
	dir := setupProject(t)
	body := `[{"charcter1_name":"Alice"}]`

	out, _, err := runCLI(t, body, "apply", "--root", dir, "--path", "/quest/content")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if out != body {
		t.Fatalf("output = %q, want unchanged body", out)
	}
}

func TestApplyCommandRequiresPath(t *testing.T) {
	dir := setupProject(t)
	if _, _, err := runCLI(t, "[]", "apply", "--root", dir); err == nil {
		t.Fatal("expected error without --path")
	}
}

func TestLookupCommand(t *testing.T) {
	dir := setupProject(t)

	out, _, err := runCLI(t, "", "lookup", "--root", dir, "--scenario", "scene_evt180101",
		"Alice 2", "Lyria", "Nobody's Voice", "???")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}

	want := []string{
		"Alice 2\t爱丽丝2",
		"Lyria\t小露",
		"Nobody's Voice\t(missed: Nobody's Voice)",
		"???\t(skipped)",
	}
	got := strings.Split(strings.TrimSpace(out), "\n")
	if len(got) != len(want) {
		t.Fatalf("lookup output = %q", out)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCheckCommand(t *testing.T) {
	dir := setupProject(t)

	out, _, err := runCLI(t, "", "check", "--root", dir)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "-> foreign") {
		t.Fatalf("check output missing dictionary choice: %q", out)
	}
	if !strings.Contains(out, "Foreign names: 2") {
		t.Fatalf("check output missing foreign count: %q", out)
	}

	t.Run("missing dictionaries", func(t *testing.T) {
		empty := t.TempDir()
		if _, _, err := runCLI(t, "", "check", "--root", empty); err == nil {
			t.Fatal("expected error without dictionaries")
		}
	})

	t.Run("broken dictionary", func(t *testing.T) {
		broken := filepath.Join(dir, "broken.yaml")
		if err := os.WriteFile(broken, []byte("names:\n  - trans: x\n"), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		_, _, err := runCLI(t, "", "check", "--root", dir, "--names", broken)
		if err == nil || !strings.Contains(err.Error(), "name is required") {
			t.Fatalf("check error = %v", err)
		}
	})
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCLI(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "blhxfy version dev") {
		t.Fatalf("version output = %q", out)
	}
}

func TestPrintUntranslatedDeduplicates(t *testing.T) {
	var buf bytes.Buffer
	printUntranslated(&buf, []string{"b", "a", "b"})
	want := "2 untranslated names\n  a\n  b\n"
	if buf.String() != want {
		t.Fatalf("printUntranslated = %q, want %q", buf.String(), want)
	}
}
