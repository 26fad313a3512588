package store

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

// GhosttyConfig is the user's Ghostty config file as flat key = value pairs.
//
// Save rewrites known keys in place and keeps comments and unrelated lines.
// Safe for concurrent use by the API server.
type GhosttyConfig struct {
	Path string

	mu     sync.RWMutex
	values map[string]string
}

// LoadGhosttyConfig reads path (or the default location when empty). A missing
// file is an empty config, not an error.
func LoadGhosttyConfig(path string) (*GhosttyConfig, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultGhosttyConfigPath()
	}
	cfg := &GhosttyConfig{Path: path, values: map[string]string{}}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		if k, v, ok := parseConfigLine(sc.Text()); ok {
			cfg.values[k] = v
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseConfigLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	k, v, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(k), strings.TrimSpace(v), true
}

func (c *GhosttyConfig) Get(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values[key]
}

// Values returns a copy of all configured pairs.
func (c *GhosttyConfig) Values() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]string, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// Set updates key and persists the file. The in-memory value is rolled back
// when the write fails so Get keeps matching what is on disk.
func (c *GhosttyConfig) Set(key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("config: empty key")
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	prev, had := c.values[key]
	c.values[key] = value
	if err := c.saveLocked(); err != nil {
		if had {
			c.values[key] = prev
		} else {
			delete(c.values, key)
		}
		return err
	}
	return nil
}

func (c *GhosttyConfig) saveLocked() error {
	existing, err := os.ReadFile(c.Path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	var buf bytes.Buffer
	written := map[string]bool{}
	if len(existing) > 0 {
		sc := bufio.NewScanner(bytes.NewReader(existing))
		for sc.Scan() {
			line := sc.Text()
			k, _, ok := parseConfigLine(line)
			if ok {
				// Every occurrence gets the value, so a reload (last line wins) agrees.
				if v, known := c.values[k]; known {
					fmt.Fprintf(&buf, "%s = %s\n", k, v)
					written[k] = true
					continue
				}
			}
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
		if err := sc.Err(); err != nil {
			return err
		}
	}

	var added []string
	for k := range c.values {
		if !written[k] {
			added = append(added, k)
		}
	}
	sort.Strings(added)
	for _, k := range added {
		fmt.Fprintf(&buf, "%s = %s\n", k, c.values[k])
	}
	return atomicWriteFile(c.Path, buf.Bytes(), 0o644)
}
