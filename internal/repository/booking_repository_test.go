package repository

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"hiltim-backend/internal/csvdb"
	"hiltim-backend/internal/models"
	"hiltim-backend/internal/storage"
)

func TestOpenSeedsEmptyStore(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewBookingRepository(store, zap.NewNop())

	if err := repo.Open(); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if repo.Count() != 2 {
		t.Fatalf("expected 2 seeded records, got %d", repo.Count())
	}

	// The seed must be persisted immediately, not only held in memory.
	content, err := store.Read()
	if err != nil {
		t.Fatalf("read blob: %v", err)
	}
	decoded, _ := csvdb.Decode(content)
	if len(decoded) != 2 {
		t.Fatalf("expected 2 records in blob, got %d", len(decoded))
	}
	if decoded[0].ID != "BK001" || decoded[1].ID != "BK002" {
		t.Fatalf("unexpected seed IDs: %s, %s", decoded[0].ID, decoded[1].ID)
	}
}

func TestOpenLoadsExistingBlob(t *testing.T) {
	store := storage.NewMemoryStore()
	seed := []models.Booking{{ID: "BK042", UserID: "u1", Status: models.StatusConfirmed}}
	if err := store.Write(csvdb.Encode(seed)); err != nil {
		t.Fatalf("write blob: %v", err)
	}

	repo := NewBookingRepository(store, zap.NewNop())
	if err := repo.Open(); err != nil {
		t.Fatalf("open failed: %v", err)
	}

	all := repo.GetAll()
	if len(all) != 1 || all[0].ID != "BK042" {
		t.Fatalf("expected the stored record, got %+v", all)
	}
}

func TestOpenSkipsMalformedRows(t *testing.T) {
	store := storage.NewMemoryStore()
	blob := strings.Join(csvdb.Headers, ",") + "\nbad,row\n"
	if err := store.Write(blob); err != nil {
		t.Fatalf("write blob: %v", err)
	}

	repo := NewBookingRepository(store, zap.NewNop())
	if err := repo.Open(); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if repo.Count() != 0 {
		t.Fatalf("malformed row should be skipped, got %d records", repo.Count())
	}
}

func TestSaveReplacesWholesaleAndPersists(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewBookingRepository(store, zap.NewNop())
	if err := repo.Open(); err != nil {
		t.Fatalf("open failed: %v", err)
	}

	replacement := []models.Booking{{ID: "BK100", UserID: "u9", Status: models.StatusPending}}
	if err := repo.Save(replacement); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if repo.Count() != 1 {
		t.Fatalf("expected 1 record after replace, got %d", repo.Count())
	}

	// A second repository over the same store sees the new list.
	repo2 := NewBookingRepository(store, zap.NewNop())
	if err := repo2.Open(); err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	all := repo2.GetAll()
	if len(all) != 1 || all[0].ID != "BK100" {
		t.Fatalf("expected persisted replacement, got %+v", all)
	}
}

func TestGetAllReturnsCopy(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewBookingRepository(store, zap.NewNop())
	if err := repo.Open(); err != nil {
		t.Fatalf("open failed: %v", err)
	}

	all := repo.GetAll()
	all[0].ID = "mutated"
	if repo.GetAll()[0].ID != "BK001" {
		t.Fatalf("GetAll must not expose internal state")
	}
}
