package scenario

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTextOverrides(t *testing.T) {
	t.Run("missing file is empty", func(t *testing.T) {
		got, err := LoadTextOverrides(filepath.Join(t.TempDir(), "none.yaml"))
		if err != nil {
			t.Fatalf("LoadTextOverrides: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("overrides = %v, want empty", got)
		}
	})

	t.Run("parses entries", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "overrides.yaml")
		data := "\"10001\":\n  synopsis: 梗概\n  sel1_txt: 选项\n"
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		got, err := LoadTextOverrides(path)
		if err != nil {
			t.Fatalf("LoadTextOverrides: %v", err)
		}
		if got["10001"]["synopsis"] != "梗概" || got["10001"]["sel1_txt"] != "选项" {
			t.Fatalf("overrides = %v", got)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("- a\n- b\n"), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		if _, err := LoadTextOverrides(path); err == nil {
			t.Fatal("expected error for non-mapping document")
		}
	})
}
