// Package tickers loads the tracked-ticker list from its plain-text
// file: one symbol per line, blank lines and #-comments ignored.
package tickers

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads the ticker list at path. A missing file is not an error; it
// yields an empty list, which the poll loop treats as "nothing to do".
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening ticker list %s: %w", path, err)
	}
	defer f.Close()

	var list []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ticker list %s: %w", path, err)
	}

	return list, nil
}
