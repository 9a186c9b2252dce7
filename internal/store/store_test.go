package store

import (
	"testing"
	"time"

	"concertd/internal/model"
)

func newConcert(id int, artist string) model.Concert {
	return model.Concert{
		ID:     id,
		Artist: artist,
		Venue:  "Somewhere",
		Date:   time.Date(2024, time.March, 1, 20, 0, 0, 0, time.UTC),
	}
}

func TestNextIDIncrements(t *testing.T) {
	s := New()
	for want := 1; want <= 3; want++ {
		if got := s.NextID(); got != want {
			t.Fatalf("NextID() = %d, want %d", got, want)
		}
	}
}

func TestBumpPast(t *testing.T) {
	tests := []struct {
		name string
		bump int
		want int // next generated id after the bump
	}{
		{"behind counter is a no-op", 0, 1},
		{"at counter advances past it", 1, 2},
		{"ahead of counter advances past it", 10, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.BumpPast(tt.bump)
			if got := s.NextID(); got != tt.want {
				t.Errorf("NextID() after BumpPast(%d) = %d, want %d", tt.bump, got, tt.want)
			}
		})
	}
}

// A record stored at position 0 must be found; an index of 0 is a valid
// hit, not a miss.
func TestFindIndexFirstRecord(t *testing.T) {
	s := New()
	s.Insert(newConcert(1, "Pink Floyd"))
	s.Insert(newConcert(2, "Kraftwerk"))

	idx, ok := s.FindIndex(1)
	if !ok {
		t.Fatal("FindIndex(1) not found, want found at index 0")
	}
	if idx != 0 {
		t.Errorf("FindIndex(1) = %d, want 0", idx)
	}
}

func TestFindIndexNotFound(t *testing.T) {
	s := New()
	s.Insert(newConcert(1, "Pink Floyd"))
	if _, ok := s.FindIndex(99); ok {
		t.Error("FindIndex(99) found, want not found")
	}
}

func TestInsertPreservesOrder(t *testing.T) {
	s := New()
	s.Insert(newConcert(3, "c"))
	s.Insert(newConcert(1, "a"))
	s.Insert(newConcert(2, "b"))

	all := s.All()
	wantIDs := []int{3, 1, 2}
	if len(all) != len(wantIDs) {
		t.Fatalf("All() returned %d records, want %d", len(all), len(wantIDs))
	}
	for i, want := range wantIDs {
		if all[i].ID != want {
			t.Errorf("All()[%d].ID = %d, want %d", i, all[i].ID, want)
		}
	}
}

func TestReplace(t *testing.T) {
	s := New()
	s.Insert(newConcert(1, "a"))
	s.Replace(0, newConcert(1, "b"))
	if got := s.At(0).Artist; got != "b" {
		t.Errorf("At(0).Artist = %q, want %q", got, "b")
	}
}

func TestRemoveAt(t *testing.T) {
	s := New()
	s.Insert(newConcert(1, "a"))
	s.Insert(newConcert(2, "b"))
	s.Insert(newConcert(3, "c"))

	removed := s.RemoveAt(1)
	if removed.ID != 2 {
		t.Errorf("RemoveAt(1).ID = %d, want 2", removed.ID)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	all := s.All()
	if all[0].ID != 1 || all[1].ID != 3 {
		t.Errorf("remaining ids = [%d %d], want [1 3]", all[0].ID, all[1].ID)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	s := New()
	s.Insert(newConcert(1, "a"))
	all := s.All()
	all[0].Artist = "mutated"
	if got := s.At(0).Artist; got != "a" {
		t.Errorf("store record mutated through All(): Artist = %q, want %q", got, "a")
	}
}
