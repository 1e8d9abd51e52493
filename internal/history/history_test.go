package history

import (
	"path/filepath"
	"testing"

	"github.com/raceeng/setupgen/internal/model"
)

func TestOpenMissingFileStartsEmpty(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("expected an empty store, got %d entries", s.Len())
	}
}

func TestRecordAndBestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	entry := Entry{CarID: "ks_ferrari_488_gt3", TrackID: "monza", BestLapSec: 108.432, Profile: model.NeutralProfile()}
	if err := s.Record(entry); err != nil {
		t.Fatal(err)
	}

	got, ok := s.Best("ks_ferrari_488_gt3", "monza")
	if !ok {
		t.Fatal("expected to find the recorded entry")
	}
	if got.BestLapSec != 108.432 {
		t.Errorf("expected best lap 108.432, got %v", got.BestLapSec)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if reopened.Len() != 1 {
		t.Errorf("expected the persisted file to round-trip one entry, got %d", reopened.Len())
	}
}

func TestRecordIgnoresSlowerLap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Record(Entry{CarID: "car", TrackID: "track", BestLapSec: 90.0}); err != nil {
		t.Fatal(err)
	}
	if err := s.Record(Entry{CarID: "car", TrackID: "track", BestLapSec: 95.0}); err != nil {
		t.Fatal(err)
	}

	got, _ := s.Best("car", "track")
	if got.BestLapSec != 90.0 {
		t.Errorf("expected the faster lap to be retained, got %v", got.BestLapSec)
	}
}

func TestRecordAcceptsFasterLap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Record(Entry{CarID: "car", TrackID: "track", BestLapSec: 95.0}); err != nil {
		t.Fatal(err)
	}
	if err := s.Record(Entry{CarID: "car", TrackID: "track", BestLapSec: 90.0}); err != nil {
		t.Fatal(err)
	}

	got, _ := s.Best("car", "track")
	if got.BestLapSec != 90.0 {
		t.Errorf("expected the improved lap to replace the stored one, got %v", got.BestLapSec)
	}
}
