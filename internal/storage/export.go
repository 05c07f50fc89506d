package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/pairsim/internal/sim"
)

type ExportData struct {
	Run    RunMetadata  `json:"run"`
	Thermo []sim.Thermo `json:"thermo"`
}

// ExportJSON writes a run as one indented JSON document to path, or to
// stdout when path is "-".
func ExportJSON(path string, meta RunMetadata, result *sim.Result) error {
	if path == "-" {
		return WriteJSON(os.Stdout, meta, result)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, meta, result)
}

func WriteJSON(w io.Writer, meta RunMetadata, result *sim.Result) error {
	meta.Metrics = result.Metrics
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{Run: meta, Thermo: result.Thermo})
}
