// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/go-test/deep"

	"github.com/danielhkuo/live-survey/survey"
	"github.com/danielhkuo/live-survey/testutil"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema() error = %v", err)
	}
	return NewStore(conn)
}

func TestLoad_EmptyStore(t *testing.T) {
	store := setupStore(t)

	entries, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty survey, got %d entries", len(entries))
	}
}

func TestSaveLoad(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	want := []survey.Entry{
		{Name: "Coffee", Votes: 3},
		{Name: "Tea", Votes: -1},
		{Name: `say "hi"`, Votes: 0},
	}
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
}

func TestSave_ReplacesPreviousState(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	store.Save(ctx, []survey.Entry{{Name: "a"}, {Name: "b"}, {Name: "c"}})
	if err := store.Save(ctx, []survey.Entry{{Name: "c", Votes: 9}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "c" || got[0].Votes != 9 {
		t.Errorf("unexpected entries: %+v", got)
	}
}

func TestSave_DuplicateRollsBack(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	store.Save(ctx, []survey.Entry{{Name: "keep"}})
	if err := store.Save(ctx, []survey.Entry{{Name: "x"}, {Name: "x"}}); err == nil {
		t.Fatal("expected unique constraint failure")
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "keep" {
		t.Errorf("failed save should not change the store, got %+v", got)
	}
}

func TestLoad_Corrupt(t *testing.T) {
	tests := []struct {
		name   string
		insert string
	}{
		{"gap in indices", `INSERT INTO survey_entry (idx, name, votes) VALUES (0, 'a', 0), (2, 'b', 0)`},
		{"starts at one", `INSERT INTO survey_entry (idx, name, votes) VALUES (1, 'a', 0)`},
		{"empty name", `INSERT INTO survey_entry (idx, name, votes) VALUES (0, '', 0)`},
		{"name with newline", "INSERT INTO survey_entry (idx, name, votes) VALUES (0, 'a' || char(10) || 'REMOVE 0', 0)"},
		{"non-numeric votes", `INSERT INTO survey_entry (idx, name, votes) VALUES (0, 'a', 'lots')`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := setupStore(t)
			if _, err := store.db.Exec(tt.insert); err != nil {
				t.Fatalf("seed: %v", err)
			}

			_, err := store.Load(context.Background())
			if !errors.Is(err, ErrCorruptStore) {
				t.Errorf("expected ErrCorruptStore, got %v", err)
			}
		})
	}
}

func TestLoad_MissingTableIsNotCorrupt(t *testing.T) {
	store := NewStore(testutil.SetupTestDB(t))

	_, err := store.Load(context.Background())
	if err == nil {
		t.Fatal("expected error without schema")
	}
	if errors.Is(err, ErrCorruptStore) {
		t.Error("an unreadable store should not be reported as corrupt")
	}
}

func TestOpen(t *testing.T) {
	conn, err := Open("sqlite", "file:"+filepath.Join(t.TempDir(), "open.db"))
	if err != nil {
		t.Fatalf("Open(sqlite) error = %v", err)
	}
	defer conn.Close()
	if err := conn.Ping(); err != nil {
		t.Errorf("Ping() error = %v", err)
	}

	if _, err := Open("mysql", "x"); !errors.Is(err, ErrUnsupportedDatabase) {
		t.Errorf("expected ErrUnsupportedDatabase, got %v", err)
	}
}

func TestCreateSchema_Idempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn); err != nil {
			t.Fatalf("CreateSchema() call %d error = %v", i+1, err)
		}
	}
}

func TestRestore(t *testing.T) {
	t.Run("loads saved survey", func(t *testing.T) {
		store := setupStore(t)
		store.Save(context.Background(), []survey.Entry{{Name: "Coffee", Votes: 2}})

		got, entries, err := Restore(context.Background(), store)
		if err != nil {
			t.Fatalf("Restore() error = %v", err)
		}
		if got != store {
			t.Error("expected the store to stay in use")
		}
		if len(entries) != 1 || entries[0].Votes != 2 {
			t.Errorf("unexpected entries: %+v", entries)
		}
	})

	t.Run("corrupt store is an error", func(t *testing.T) {
		store := setupStore(t)
		store.db.Exec(`INSERT INTO survey_entry (idx, name, votes) VALUES (3, 'a', 0)`)

		got, _, err := Restore(context.Background(), store)
		if !errors.Is(err, ErrCorruptStore) {
			t.Errorf("expected ErrCorruptStore, got %v", err)
		}
		if got != nil {
			t.Error("expected no store")
		}
	})

	t.Run("failed load disables persistence", func(t *testing.T) {
		store := setupStore(t)
		saved := []survey.Entry{{Name: "Coffee", Votes: 7}, {Name: "Tea", Votes: 1}}
		if err := store.Save(context.Background(), saved); err != nil {
			t.Fatal(err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		got, entries, err := Restore(ctx, store)
		if err != nil {
			t.Fatalf("Restore() error = %v", err)
		}
		if got != nil || entries != nil {
			t.Fatalf("expected no store and no entries, got %v %+v", got, entries)
		}

		// The rows that could not be read are still there
		still, err := store.Load(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if diff := deep.Equal(still, saved); diff != nil {
			t.Error(diff)
		}
	})

	t.Run("missing table disables persistence", func(t *testing.T) {
		got, entries, err := Restore(context.Background(), NewStore(testutil.SetupTestDB(t)))
		if err != nil || got != nil || entries != nil {
			t.Errorf("Restore() = %v, %+v, %v; want nil, nil, nil", got, entries, err)
		}
	})
}
