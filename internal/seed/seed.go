// Package seed loads the static list of names a roster starts from.
package seed

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"
)

//go:embed names.toml
var defaultNames []byte

var ErrEmptySeed = errors.New("seed list is empty")

type file struct {
	Names []string `toml:"names"`
}

// Default returns the embedded seed list.
func Default() []string {
	names, err := parseTOML(defaultNames)
	if err != nil {
		panic(fmt.Sprintf("embedded seed: %v", err))
	}
	return names
}

// Load reads a seed file. Files ending in .toml must hold a `names` array;
// anything else is read as one name per line, skipping blanks and # comments.
// Order and duplicates are preserved.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	var names []string
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		names, err = parseTOML(data)
	} else {
		names, err = parseLines(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse seed %s: %w", path, err)
	}
	return names, nil
}

// Duplicates lists every name that appears more than once, in first-seen order.
func Duplicates(names []string) []string {
	return lo.FindDuplicates(names)
}

func parseTOML(data []byte) ([]string, error) {
	var f file
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, err
	}
	return clean(f.Names)
}

func parseLines(data []byte) ([]string, error) {
	var raw []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		raw = append(raw, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return clean(raw)
}

func clean(raw []string) ([]string, error) {
	names := lo.FilterMap(raw, func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
	if len(names) == 0 {
		return nil, ErrEmptySeed
	}
	return names, nil
}
