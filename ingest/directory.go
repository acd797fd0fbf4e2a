package ingest

import (
	"os"
	"path/filepath"
	"sort"
)

// Directory lists every *.txt file directly inside dir, returning their
// full paths in lexicographic order — the time-slice sequence order the
// Reeb tracker expects.
func Directory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != ".txt" {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	sort.Strings(files)
	return files, nil
}
