package tabular

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadLookups reads every delimited text file in dir into a named
// lookup table: key TAB value, one mapping per line. Malformed lines
// (wrong field count, empty key) are skipped silently, matching the
// corpus's tolerance for hand-curated lookup files. The table name is
// the file's base name without extension (e.g. "pollinator_genus_category.tsv"
// becomes "pollinator_genus_category").
func LoadLookups(dir string) (map[string]map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read lookup dir %s: %w", dir, err)
	}

	out := make(map[string]map[string]string, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		table, err := loadLookupFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		out[name] = table
	}
	return out, nil
}

func loadLookupFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lookup file %s: %w", path, err)
	}
	defer f.Close()

	table := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.SplitN(line, "\t", 2)
		if len(fields) != 2 {
			continue
		}
		key := strings.TrimSpace(fields[0])
		if key == "" {
			continue
		}
		table[key] = strings.TrimSpace(fields[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan lookup file %s: %w", path, err)
	}
	return table, nil
}

// LoadMultiLookup reads a one-to-many lookup (e.g. herbivore -> list
// of predators) from a file of "key\tvalue1|value2|value3" lines.
func LoadMultiLookup(path string) (map[string][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lookup file %s: %w", path, err)
	}
	defer f.Close()

	table := make(map[string][]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.SplitN(line, "\t", 2)
		if len(fields) != 2 {
			continue
		}
		key := strings.TrimSpace(fields[0])
		if key == "" {
			continue
		}
		var values []string
		for _, v := range strings.Split(fields[1], "|") {
			v = strings.TrimSpace(v)
			if v != "" {
				values = append(values, v)
			}
		}
		table[key] = values
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan lookup file %s: %w", path, err)
	}
	return table, nil
}
