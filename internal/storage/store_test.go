package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/pairsim/internal/sim"
)

func testResult() *sim.Result {
	return &sim.Result{
		Thermo: []sim.Thermo{
			{Step: 0, Temp: 0.5, KE: 93, PE: -402.25, EVdwl: -402.25, ETotal: -309.25, Press: 0.125,
				Virial: [6]float64{1, 2, 3, 0.1, 0.2, 0.3}},
			{Step: 10, Time: 0.05, Temp: 0.48, KE: 89.28, PE: -398.53, EVdwl: -398.5, ECoul: -0.03,
				ETotal: -309.25, Press: 0.1 / 3},
		},
		Metrics:    map[string]float64{"energy_drift": 1.5e-6},
		StepsTaken: 10,
	}
}

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	result := testResult()
	runID, err := st.Save(RunMetadata{Style: "lj/cut/coul/cut", Seed: 42, Dt: 0.005, Steps: 10}, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if runID == "" || strings.Contains(runID, "/") {
		t.Errorf("bad run id %q", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Style != "lj/cut/coul/cut" {
		t.Errorf("expected style 'lj/cut/coul/cut', got '%s'", meta.Style)
	}
	if meta.Seed != 42 {
		t.Errorf("expected seed 42, got %d", meta.Seed)
	}
	if meta.Metrics["energy_drift"] != 1.5e-6 {
		t.Errorf("expected drift 1.5e-6, got %g", meta.Metrics["energy_drift"])
	}

	thermo, err := st.LoadThermo(runID)
	if err != nil {
		t.Fatalf("load thermo failed: %v", err)
	}
	if len(thermo) != len(result.Thermo) {
		t.Fatalf("expected %d samples, got %d", len(result.Thermo), len(thermo))
	}
	for i := range thermo {
		if thermo[i] != result.Thermo[i] {
			t.Errorf("sample %d did not round trip:\n got %+v\nwant %+v", i, thermo[i], result.Thermo[i])
		}
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, style := range []string{"buck", "lj/class2/coul/cut"} {
		meta := RunMetadata{Style: style, Timestamp: base.Add(time.Duration(i) * time.Minute)}
		if _, err := st.Save(meta, testResult()); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "stray.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Style != "buck" || runs[1].Style != "lj/class2/coul/cut" {
		t.Errorf("runs not in time order: %s, %s", runs[0].Style, runs[1].Style)
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(RunMetadata{Style: "buck"}, &sim.Result{Metrics: map[string]float64{}})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := st.Dir(runID)
	for _, name := range []string{"metadata.json", "thermo.csv"} {
		if _, err := os.Stat(filepath.Join(runDir, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}

	thermo, err := st.LoadThermo(runID)
	if err != nil {
		t.Fatalf("load thermo failed: %v", err)
	}
	if len(thermo) != 0 {
		t.Errorf("expected no samples, got %d", len(thermo))
	}
}

func TestLoadThermoRejectsCorruptRows(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	runID, err := st.Save(RunMetadata{Style: "buck"}, testResult())
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(st.Dir(runID), "thermo.csv")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	corrupt := strings.Replace(string(data), "-402.25", "oops", 1)
	if err := os.WriteFile(path, []byte(corrupt), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := st.LoadThermo(runID); err == nil {
		t.Error("expected error for corrupt thermo row")
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, RunMetadata{ID: "x", Style: "buck"}, testResult()); err != nil {
		t.Fatal(err)
	}

	var got ExportData
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got.Run.Style != "buck" || len(got.Thermo) != 2 || got.Thermo[1].Step != 10 {
		t.Errorf("unexpected export: %+v", got)
	}
	if got.Run.Metrics["energy_drift"] != 1.5e-6 {
		t.Errorf("metrics missing from export: %v", got.Run.Metrics)
	}
}
