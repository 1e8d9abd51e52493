package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/raceeng/setupgen/internal/convert"
	"github.com/raceeng/setupgen/internal/mapping"
	"github.com/raceeng/setupgen/internal/model"
	"github.com/raceeng/setupgen/internal/setupfile"
)

func TestWriteSavesGenericAndTrackCopies(t *testing.T) {
	root := t.TempDir()
	carID := "ks_ferrari_488"
	carDir := filepath.Join(root, carID)
	if err := os.MkdirAll(filepath.Join(carDir, "generic"), 0o755); err != nil {
		t.Fatal(err)
	}
	existing := setupfile.EncodeINI(map[string]int{"PRESSURE_LF": 25, "SPRING_RATE_LF": 9}, carID)
	if err := os.WriteFile(filepath.Join(carDir, "generic", "last.ini"), []byte(existing), 0o644); err != nil {
		t.Fatal(err)
	}

	s := setupfile.New()
	s.Set(setupfile.SectionTyres, "PRESSURE_LF", 26.6)
	s.Set(setupfile.SectionSuspension, "SPRING_RATE_LF", 154687)

	m := mapping.NewMapper(root)
	sc := convert.NewSmartConverter(convert.NewConverter())
	w := New(root, m, sc)

	car := model.CarDescriptor{CarID: carID}
	result, err := w.Write(s, car, "monza", model.CategoryGT, "setupgen_output", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.GenericPath == "" || result.TrackPath == "" {
		t.Fatalf("expected both generic and track paths to be set, got %+v", result)
	}

	genericContent, err := os.ReadFile(result.GenericPath)
	if err != nil {
		t.Fatal(err)
	}
	decoded := setupfile.DecodeINI(string(genericContent))
	if decoded["PRESSURE_LF"] != 27 {
		t.Errorf("expected PRESSURE_LF rounded to 27, got %d", decoded["PRESSURE_LF"])
	}
	// existing SPRING_RATE_LF=9 < 1000 so this car is click-based.
	if decoded["SPRING_RATE_LF"] != 9 {
		t.Errorf("expected click-quantized spring rate 9, got %d", decoded["SPRING_RATE_LF"])
	}

	trackContent, err := os.ReadFile(result.TrackPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(trackContent) != string(genericContent) {
		t.Error("expected generic and track-specific copies to hold identical content")
	}
}

func TestWriteDoesNotOverwriteTrackCopyWithoutOverwriteFlag(t *testing.T) {
	root := t.TempDir()
	carID := "ks_mazda_mx5"
	trackDir := filepath.Join(root, carID, "monza")
	if err := os.MkdirAll(trackDir, 0o755); err != nil {
		t.Fatal(err)
	}
	sentinel := "[PRESSURE_LF]\nVALUE=99\n\n"
	if err := os.WriteFile(filepath.Join(trackDir, "setupgen_output.ini"), []byte(sentinel), 0o644); err != nil {
		t.Fatal(err)
	}

	s := setupfile.New()
	s.Set(setupfile.SectionTyres, "PRESSURE_LF", 26.0)

	w := New(root, mapping.NewMapper(root), convert.NewSmartConverter(convert.NewConverter()))
	car := model.CarDescriptor{CarID: carID}
	result, err := w.Write(s, car, "monza", model.CategoryStreet, "setupgen_output", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TrackPath != "" {
		t.Error("expected no track-specific write when the file exists and overwrite=false")
	}

	content, err := os.ReadFile(filepath.Join(trackDir, "setupgen_output.ini"))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != sentinel {
		t.Error("expected the pre-existing track-specific file to remain untouched")
	}
}
