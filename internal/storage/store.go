package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/pairsim/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes a saved run. Restart names the restart file
// written alongside, if any.
type RunMetadata struct {
	ID          string             `json:"id"`
	Style       string             `json:"style"`
	Preset      string             `json:"preset,omitempty"`
	Timestamp   time.Time          `json:"timestamp"`
	Seed        int64              `json:"seed"`
	Dt          float64            `json:"dt"`
	Steps       int                `json:"steps"`
	ThermoEvery int                `json:"thermo_every"`
	Integrator  string             `json:"integrator"`
	NTypes      int                `json:"ntypes"`
	NAtoms      int                `json:"natoms"`
	Threads     int                `json:"threads"`
	Newton      bool               `json:"newton"`
	Restart     string             `json:"restart,omitempty"`
	Metrics     map[string]float64 `json:"metrics"`
}

var thermoHeader = []string{
	"step", "time", "temp", "ke", "pe", "evdwl", "ecoul", "etotal", "press",
	"vxx", "vyy", "vzz", "vxy", "vxz", "vyz",
}

// RunID derives a directory name from a style name and a time.
func RunID(style string, t time.Time) string {
	return fmt.Sprintf("%s_%d", strings.ReplaceAll(style, "/", "-"), t.UnixNano())
}

// Dir is the directory of a run.
func (s *Store) Dir(runID string) string {
	return filepath.Join(s.baseDir, runID)
}

// Save writes metadata.json and thermo.csv into a fresh run directory and
// returns its id. meta.ID and meta.Timestamp are filled in when empty.
func (s *Store) Save(meta RunMetadata, result *sim.Result) (string, error) {
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	if meta.ID == "" {
		meta.ID = RunID(meta.Style, meta.Timestamp)
	}
	meta.Metrics = result.Metrics
	runDir := s.Dir(meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "thermo.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(thermoHeader); err != nil {
		return "", err
	}
	for _, th := range result.Thermo {
		if err := w.Write(thermoRow(th)); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return meta.ID, nil
}

func thermoRow(th sim.Thermo) []string {
	row := []string{strconv.Itoa(th.Step)}
	vals := []float64{th.Time, th.Temp, th.KE, th.PE, th.EVdwl, th.ECoul, th.ETotal, th.Press}
	vals = append(vals, th.Virial[:]...)
	for _, v := range vals {
		row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return row
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}

		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadThermo(runID string) ([]sim.Thermo, error) {
	csvPath := filepath.Join(s.baseDir, runID, "thermo.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(thermoHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []sim.Thermo{}, nil
	}

	out := make([]sim.Thermo, 0, len(records)-1)
	for i, record := range records[1:] {
		th, err := parseThermo(record)
		if err != nil {
			return nil, fmt.Errorf("thermo.csv row %d: %w", i+2, err)
		}
		out = append(out, th)
	}
	return out, nil
}

func parseThermo(record []string) (sim.Thermo, error) {
	var th sim.Thermo
	step, err := strconv.Atoi(record[0])
	if err != nil {
		return th, err
	}
	vals := make([]float64, len(record)-1)
	for j, f := range record[1:] {
		if vals[j], err = strconv.ParseFloat(f, 64); err != nil {
			return th, err
		}
	}
	th.Step = step
	th.Time, th.Temp, th.KE, th.PE = vals[0], vals[1], vals[2], vals[3]
	th.EVdwl, th.ECoul, th.ETotal, th.Press = vals[4], vals[5], vals[6], vals[7]
	copy(th.Virial[:], vals[8:])
	return th, nil
}
