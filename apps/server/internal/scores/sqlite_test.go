package scores

import (
	"context"
	"testing"
)

func newMemoryService(t *testing.T) *SQLiteService {
	t.Helper()
	svc, err := NewSQLiteService(":memory:")
	if err != nil {
		t.Fatalf("open in-memory scores db: %v", err)
	}
	t.Cleanup(func() { svc.Close() })
	return svc
}

func TestSQLiteScores_TopOrdersByScoreDescending(t *testing.T) {
	svc := newMemoryService(t)

	svc.Record("blackjack", "alice", 1200)
	svc.Record("blackjack", "bob", 900)
	svc.Record("blackjack", "carol", 1500)

	items, err := svc.Top(context.Background(), "blackjack", 10)
	if err != nil {
		t.Fatalf("Top err: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	wantOrder := []string{"carol", "alice", "bob"}
	for i, want := range wantOrder {
		if items[i].Player != want {
			t.Fatalf("position %d is %s, want %s", i, items[i].Player, want)
		}
	}
	if items[0].Score != 1500 {
		t.Fatalf("top score %d, want 1500", items[0].Score)
	}
}

func TestSQLiteScores_TopRespectsLimit(t *testing.T) {
	svc := newMemoryService(t)

	for i := 0; i < 5; i++ {
		svc.Record("blackjack", "player", 1000+i)
	}

	items, err := svc.Top(context.Background(), "blackjack", 2)
	if err != nil {
		t.Fatalf("Top err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
}

func TestSQLiteScores_GamesAreIsolated(t *testing.T) {
	svc := newMemoryService(t)

	svc.Record("blackjack", "alice", 1200)
	svc.Record("holdem", "bob", 5000)

	items, err := svc.Top(context.Background(), "blackjack", 10)
	if err != nil {
		t.Fatalf("Top err: %v", err)
	}
	if len(items) != 1 || items[0].Player != "alice" {
		t.Fatalf("blackjack scores leaked across games: %+v", items)
	}
}

func TestSQLiteScores_RejectsEmptyGame(t *testing.T) {
	svc := newMemoryService(t)

	if _, err := svc.Top(context.Background(), "", 10); err == nil {
		t.Fatal("expected an error for an empty game name")
	}

	// A record with no player is dropped, not stored.
	svc.Record("blackjack", "", 1000)
	items, err := svc.Top(context.Background(), "blackjack", 10)
	if err != nil {
		t.Fatalf("Top err: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("anonymous record was stored: %+v", items)
	}
}

func TestSQLiteScores_TrimsBeyondKeepLimit(t *testing.T) {
	svc := newMemoryService(t)
	svc.keepLimit = 3

	for i := 0; i < 6; i++ {
		svc.Record("blackjack", "player", 1000+i)
	}

	items, err := svc.Top(context.Background(), "blackjack", 100)
	if err != nil {
		t.Fatalf("Top err: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("kept %d rows, want 3 after trim", len(items))
	}
	if items[0].Score != 1005 {
		t.Fatalf("best retained score %d, want 1005", items[0].Score)
	}
}
