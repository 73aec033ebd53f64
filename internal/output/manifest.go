package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Manifest tracks which roster files the last runs produced.
type Manifest struct {
	Version     int         `json:"version"`
	GeneratedAt time.Time   `json:"generatedAt"`
	Rosters     RostersMeta `json:"rosters"`
}

type RostersMeta struct {
	Files         []string  `json:"files"`
	LastRefreshed time.Time `json:"lastRefreshed"`
}

func defaultManifest() Manifest {
	return Manifest{
		Version: 1,
		Rosters: RostersMeta{Files: []string{}},
	}
}

func (w *Writer) updateManifest(file string) error {
	path := filepath.Join(w.basePath, "manifest.json")
	m, _ := readManifest(path)

	if !containsFile(m.Rosters.Files, file) {
		m.Rosters.Files = append(m.Rosters.Files, file)
		sort.Strings(m.Rosters.Files)
	}
	m.Rosters.LastRefreshed = w.now().UTC()

	return writeManifest(w.basePath, m)
}

func containsFile(files []string, file string) bool {
	for _, f := range files {
		if f == file {
			return true
		}
	}
	return false
}

func readManifest(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return defaultManifest(), err
	}
	defer f.Close()

	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(), err
	}
	if m.Rosters.Files == nil {
		m.Rosters.Files = []string{}
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest) error {
	m.GeneratedAt = time.Now().UTC()
	path := filepath.Join(basePath, "manifest.json")
	tmp := path + ".tmp"

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
