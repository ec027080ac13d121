package store

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "solves.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)

	version, err := db.currentVersion()
	if err != nil {
		t.Fatalf("currentVersion: %v", err)
	}
	if version != 1 {
		t.Errorf("currentVersion() = %d, want 1", version)
	}
}

func TestRecordAndList(t *testing.T) {
	db := openTestDB(t)

	id, err := db.Record(Solve{
		Scramble:   "R U R' U'",
		Algorithm:  "kociemba",
		Evaluator:  "uniform",
		Solution:   "U R U' R'",
		MoveCount:  4,
		CostMillis: 40,
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if id == "" {
		t.Fatalf("Record returned empty solve ID")
	}

	solves, err := db.List(10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(solves) != 1 {
		t.Fatalf("List returned %d solves, want 1", len(solves))
	}
	if solves[0].SolveID != id {
		t.Errorf("SolveID = %q, want %q", solves[0].SolveID, id)
	}
	if solves[0].MoveCount != 4 {
		t.Errorf("MoveCount = %d, want 4", solves[0].MoveCount)
	}
}

func TestListOrdersNewestFirstAndRespectsLimit(t *testing.T) {
	db := openTestDB(t)

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := db.Record(Solve{Scramble: "R", Algorithm: "naive", Evaluator: "blast", Solution: "R'", MoveCount: 1})
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
		ids = append(ids, id)
	}

	solves, err := db.List(2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(solves) != 2 {
		t.Fatalf("List(2) returned %d solves, want 2", len(solves))
	}
	if solves[0].SolveID != ids[2] {
		t.Errorf("List(2)[0].SolveID = %q, want most recent %q", solves[0].SolveID, ids[2])
	}
}
