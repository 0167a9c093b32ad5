package gamedir

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// MarkerName is written into an extraction root once every entry is on disk.
const MarkerName = ".extraction.complete"

// ExtractionMarker records what an extraction wrote
type ExtractionMarker struct {
	Timestamp time.Time `json:"timestamp"`
	Archives  []string  `json:"archives"`
	Entries   int       `json:"entries"`
	Chain     string    `json:"chain"`
}

// MarkComplete writes the extraction marker into root
func MarkComplete(root string, archives []string, entries int, chain string) error {
	marker := ExtractionMarker{
		Timestamp: time.Now().UTC(),
		Archives:  archives,
		Entries:   entries,
		Chain:     chain,
	}

	data, err := json.MarshalIndent(marker, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(root, MarkerName), data, 0o644)
}

// ReadMarker returns the marker in root, or false if there is none or it is
// unreadable.
func ReadMarker(root string) (ExtractionMarker, bool) {
	var marker ExtractionMarker

	data, err := os.ReadFile(filepath.Join(root, MarkerName))
	if err != nil {
		return marker, false
	}
	if err := json.Unmarshal(data, &marker); err != nil {
		return marker, false
	}
	return marker, true
}
