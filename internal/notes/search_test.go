package notes

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func seededStore(t *testing.T) *Store {
	t.Helper()
	store, _ := openMemory(t, "")
	store.Add(date(2024, time.March, 2), "dentist appointment")
	store.Add(date(2024, time.March, 1), "team standup")
	store.Add(date(2024, time.March, 1), "buy groceries")
	return store
}

func TestAll_DateOrder(t *testing.T) {
	all := seededStore(t).All()
	if len(all) != 3 {
		t.Fatalf("expected 3 notes, got %d", len(all))
	}
	if all[0].Text != "team standup" || all[1].Text != "buy groceries" || all[2].Text != "dentist appointment" {
		t.Errorf("unexpected order: %+v", all)
	}
	if all[1].Index != 1 {
		t.Errorf("expected index 1, got %d", all[1].Index)
	}
}

func TestSearch(t *testing.T) {
	store := seededStore(t)

	matches := store.Search("dentist")
	if len(matches) == 0 {
		t.Fatal("expected a match")
	}
	if matches[0].Text != "dentist appointment" {
		t.Errorf("expected dentist first, got %q", matches[0].Text)
	}
	if Key(matches[0].Date) != "2024-03-02" {
		t.Errorf("unexpected date %s", Key(matches[0].Date))
	}

	if got := store.Search("zzzz"); len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}
	if got := store.Search(""); len(got) != 3 {
		t.Errorf("expected empty query to return all, got %d", len(got))
	}
}

func TestExport_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := seededStore(t).Export(&buf, "json"); err != nil {
		t.Fatalf("export error: %v", err)
	}
	var out map[string][]string
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(out["2024-03-01"]) != 2 {
		t.Errorf("unexpected export: %v", out)
	}
}

func TestExport_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := seededStore(t).Export(&buf, "yaml"); err != nil {
		t.Fatalf("export error: %v", err)
	}
	var out map[string][]string
	if err := yaml.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid yaml: %v", err)
	}
	if out["2024-03-02"][0] != "dentist appointment" {
		t.Errorf("unexpected export: %v", out)
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := seededStore(t).Export(&buf, "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestScanMarkdownAndImport(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "2024-03-05-sprint-review.md"), []byte("plain text, no heading\n"), 0644)
	os.WriteFile(filepath.Join(dir, "retro.md"), []byte("---\ndate: 2024-03-06\ntitle: Team retro\n---\nbody\n"), 0644)
	os.WriteFile(filepath.Join(dir, "undated.md"), []byte("no date here\n"), 0644)
	os.WriteFile(filepath.Join(dir, "2024-03-07.txt"), []byte("not markdown\n"), 0644)

	entries, err := ScanMarkdown(dir)
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(entries), entries)
	}

	store, _ := openMemory(t, "")
	added, err := store.Import(entries)
	if err != nil {
		t.Fatalf("import error: %v", err)
	}
	if added != 2 {
		t.Errorf("expected 2 imported, got %d", added)
	}
	if got := store.Notes(date(2024, time.March, 5)); len(got) != 1 || got[0] != "sprint review" {
		t.Errorf("unexpected notes from filename: %v", got)
	}
	if got := store.Notes(date(2024, time.March, 6)); len(got) != 1 || got[0] != "Team retro" {
		t.Errorf("unexpected notes from frontmatter: %v", got)
	}

	again, _ := store.Import(entries)
	if again != 0 {
		t.Errorf("expected re-import to add nothing, got %d", again)
	}
}

func TestScanMarkdown_Titles(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		expected string
	}{
		{"heading without frontmatter", "2024-03-01-x.md", "# Dentist\n\nbring insurance card\n", "Dentist"},
		{"first level-1 heading wins", "2024-03-01-x.md", "## Agenda\n\n# Planning\n\n# Later\n", "Planning"},
		{"heading after frontmatter", "notes.md", "---\ndate: 2024-03-01\n---\n# Standup\n", "Standup"},
		{"frontmatter title beats heading", "notes.md", "---\ndate: 2024-03-01\ntitle: Board meeting\n---\n# Ignored\n", "Board meeting"},
		{"level-2 only falls back to filename", "2024-03-01-weekly-sync.md", "## Details\n", "weekly sync"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, tt.file), []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			entries, err := ScanMarkdown(dir)
			if err != nil {
				t.Fatalf("scan error: %v", err)
			}
			if len(entries) != 1 {
				t.Fatalf("expected 1 entry, got %d: %+v", len(entries), entries)
			}
			if entries[0].Text != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, entries[0].Text)
			}
			if !entries[0].Date.Equal(date(2024, time.March, 1)) {
				t.Errorf("unexpected date %v", entries[0].Date)
			}
		})
	}
}

func TestTitleFromFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2026-02-14-standup.md", "standup"},
		{"2026-02-14.md", "Note"},
		{"weekly_sync.md", "weekly sync"},
	}
	for _, tt := range tests {
		if got := titleFromFilename(tt.input); got != tt.expected {
			t.Errorf("titleFromFilename(%q): expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}
