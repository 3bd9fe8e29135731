package corpus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ManifestEntry describes one source document. Paths resolve relative to the
// process working directory.
type ManifestEntry struct {
	ID     string   `yaml:"id"`
	Path   string   `yaml:"path"`
	Source string   `yaml:"source"`
	Topics []string `yaml:"topics"`
}

// LoadManifest reads and parses a YAML manifest: a sequence of entries with
// required id and path. A missing or unparseable manifest is fatal for the
// whole run. Entries without topics default to ["general"].
func LoadManifest(path string) ([]ManifestEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var entries []ManifestEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	seen := make(map[string]bool, len(entries))
	for i := range entries {
		e := &entries[i]
		if e.ID == "" {
			return nil, fmt.Errorf("manifest %s: entry %d: id is required", path, i)
		}
		if e.Path == "" {
			return nil, fmt.Errorf("manifest %s: entry %q: path is required", path, e.ID)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("manifest %s: duplicate id %q", path, e.ID)
		}
		seen[e.ID] = true
		if len(e.Topics) == 0 {
			e.Topics = []string{"general"}
		}
	}
	return entries, nil
}
