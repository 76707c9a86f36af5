package store

import (
	"os"
	"path/filepath"
	"testing"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	doc := NewDocument(filepath.Join(t.TempDir(), "absent.json"))

	var entries []payload
	if err := doc.Load(&entries); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("missing file loaded entries: %v", entries)
	}
}

func TestLoadCorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	var entries []payload
	if err := NewDocument(path).Load(&entries); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("corrupt file loaded entries: %v", entries)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	doc := NewDocument(path)

	in := []payload{{Name: "a", Count: 1}, {Name: "b", Count: 2}}
	if err := doc.Save(in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var out []payload
	if err := NewDocument(path).Load(&out); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Errorf("roundtrip = %v, want %v", out, in)
	}

	// no temp file left behind
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left after Save")
	}
}

func TestSaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "doc.json")

	if err := NewDocument(path).Save(map[string]string{"k": "v"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var out map[string]string
	if err := NewDocument(path).Load(&out); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if out["k"] != "v" {
		t.Errorf("roundtrip = %v", out)
	}
}
