package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"portfolio-dashboard/internal/model"
)

// SiteEntry is one site in a catalog snapshot.
type SiteEntry struct {
	model.Site
	Datasets []Dataset `json:"datasets"`
}

// Snapshot is a point-in-time listing of the portfolio, written for UI shells
// that cannot walk the filesystem themselves.
type Snapshot struct {
	Root      string      `json:"root"`
	UpdatedAt string      `json:"updated_at"` // RFC 3339
	Sites     []SiteEntry `json:"sites"`
}

// TakeSnapshot walks the catalog.
func (c *Catalog) TakeSnapshot(now time.Time) (*Snapshot, error) {
	sites, err := c.Sites()
	if err != nil {
		return nil, err
	}
	snap := &Snapshot{
		Root:      c.resolver.Root,
		UpdatedAt: now.UTC().Format(time.RFC3339),
		Sites:     make([]SiteEntry, 0, len(sites)),
	}
	for _, s := range sites {
		snap.Sites = append(snap.Sites, SiteEntry{Site: s, Datasets: c.Availability(s.ID)})
	}
	return snap, nil
}

// LoadSnapshot loads a snapshot from a JSON file.
func LoadSnapshot(filePath string) (*Snapshot, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file: %w", err)
	}

	return &snap, nil
}

// SaveSnapshot writes a snapshot to a JSON file.
func SaveSnapshot(snap *Snapshot, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}

	return nil
}
