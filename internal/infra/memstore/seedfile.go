package memstore

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// seedFile is the YAML document accepted by SeedFromFile:
//
//	tasks:
//	  - title: Water the plants
//	    priority: low
//	    due: 2026-03-01
//	    tags: [home]
type seedFile struct {
	Tasks []seedEntry `yaml:"tasks"`
}

// SeedFromFile populates the store with sample tasks read from a YAML file.
// The file is input only; the store never writes anything back.
func SeedFromFile(s *Store, clock domain.Clock, path string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user's own config
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return seedEntries(s, clock, f.Tasks)
}
