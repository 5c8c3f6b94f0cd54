package cart

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStorageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	st := NewFileStorage(dir, "cart:sess-1")

	lines := []Line{
		{ProductID: "p1", Name: "Pizza", UnitPrice: 30, Quantity: 2, ImageURL: "/img/p1.png"},
		{ProductID: "p2", Name: "Soda", UnitPrice: 5.5, Quantity: 1},
	}
	if err := st.Save(lines); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(got))
	}
	if got[0] != lines[0] || got[1] != lines[1] {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, lines)
	}
}

func TestFileStorageLoadMissingFile(t *testing.T) {
	st := NewFileStorage(t.TempDir(), "never-saved")
	got, err := st.Load()
	if err != nil {
		t.Fatalf("missing file must not be an error, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil lines, got %+v", got)
	}
}

func TestFileStorageLoadCorruptPayload(t *testing.T) {
	dir := t.TempDir()
	st := NewFileStorage(dir, "broken")
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := st.Load()
	if err != nil {
		t.Fatalf("corrupt payload must not be an error, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected empty cart from corrupt payload, got %+v", got)
	}
}

func TestFileStorageClearRemovesFile(t *testing.T) {
	dir := t.TempDir()
	st := NewFileStorage(dir, "sess")
	if err := st.Save([]Line{{ProductID: "p1", Quantity: 1}}); err != nil {
		t.Fatal(err)
	}
	if err := st.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "sess.json")); !os.IsNotExist(err) {
		t.Fatal("clear must remove the file")
	}
	// Clearing again is fine.
	if err := st.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestFileStorageSurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	s := NewStore(NewFileStorage(dir, "cart:sess-9"))
	s.AddItem(Candidate{ProductID: "p1", Name: "Pizza", UnitPrice: 30})
	s.AddItem(Candidate{ProductID: "p1", Name: "Pizza", UnitPrice: 30})
	s.AddItem(Candidate{ProductID: "p2", Name: "Soda", UnitPrice: 5.5})

	// Simulated process restart: a fresh store over the same file.
	reloaded := NewStore(NewFileStorage(dir, "cart:sess-9"))
	if reloaded.TotalItemCount() != 3 {
		t.Fatalf("expected item count 3 after restart, got %d", reloaded.TotalItemCount())
	}
	if !almostEqual(reloaded.TotalPrice(), 65.5) {
		t.Fatalf("expected total 65.5 after restart, got %v", reloaded.TotalPrice())
	}
	lines := reloaded.Lines()
	if lines[0].ProductID != "p1" || lines[1].ProductID != "p2" {
		t.Fatalf("line order lost across restart: %+v", lines)
	}
}

func TestFileStorageClearedCartStaysEmptyAfterRestart(t *testing.T) {
	dir := t.TempDir()

	s := NewStore(NewFileStorage(dir, "cart:sess-2"))
	s.AddItem(Candidate{ProductID: "p1", Name: "Pizza", UnitPrice: 30})
	s.Clear()

	reloaded := NewStore(NewFileStorage(dir, "cart:sess-2"))
	if reloaded.TotalItemCount() != 0 {
		t.Fatalf("expected empty cart after clear+restart, got %d items", reloaded.TotalItemCount())
	}
}
