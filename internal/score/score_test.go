package score

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestText(t *testing.T) {
	if got := Text(0); got != "Score: 0" {
		t.Fatalf("expected %q, got %q", "Score: 0", got)
	}
	if got := Text(17); got != "Score: 17" {
		t.Fatalf("expected %q, got %q", "Score: 17", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    uint
		wantErr bool
	}{
		{in: "Score: 3", want: 3},
		{in: "Score: 12\n", want: 12},
		{in: "Points: 3", wantErr: true},
		{in: "Score: -1", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestStoreSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	store := NewStore(dir)

	path, err := store.Save(5)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if path != filepath.Join(dir, "score.txt") {
		t.Fatalf("unexpected path %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "Score: 5" {
		t.Fatalf("unexpected contents %q", data)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestStoreSaveOverwrites(t *testing.T) {
	store := NewStore(t.TempDir())
	if _, err := store.Save(9); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := store.Save(2); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got, _ := store.Load(); got != 2 {
		t.Fatalf("expected latest score 2, got %d", got)
	}
}

func TestStoreLoadMissing(t *testing.T) {
	store := NewStore(t.TempDir())
	if _, err := store.Load(); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}
