package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tailscale/hujson"
)

// SnapshotVersion is the current export format version.
const SnapshotVersion = 1

// Snapshot is the portable JSON form of everything quadro stores.
type Snapshot struct {
	Version    int               `json:"version"`
	ExportedAt time.Time         `json:"exported_at"`
	Profile    *SnapshotProfile  `json:"profile,omitempty"`
	Projects   []SnapshotProject `json:"projects"`
	Tasks      []SnapshotTask    `json:"tasks"`
}

type SnapshotProfile struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type SnapshotProject struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Status string `json:"status,omitempty"`
	Color  string `json:"color,omitempty"`
}

// SnapshotTask carries the deadline as YYYY-MM-DD so it is re-anchored to
// local midnight wherever it is imported.
type SnapshotTask struct {
	ID          string `json:"id,omitempty"`
	ProjectID   string `json:"project_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Deadline    string `json:"deadline"`
	Period      string `json:"period"`
	Priority    string `json:"priority"`
	Status      string `json:"status,omitempty"`
	Archived    bool   `json:"archived,omitempty"`
}

// LoadSnapshot reads a snapshot file. Comments and trailing commas are
// accepted so hand-edited files import cleanly.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSnapshot(data)
}

func ParseSnapshot(data []byte) (*Snapshot, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(standardized, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &snap, nil
}
