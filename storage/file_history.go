package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

type FileHistory struct {
	dir string
	mu  sync.RWMutex
}

type fileEntry struct {
	Key      string   `json:"key"`
	Messages []string `json:"messages"`
}

func NewFileHistory(dir string) (History, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	return &FileHistory{dir: dir}, nil
}

func (f *FileHistory) Append(key, msg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := f.path(key)
	entry, err := readEntry(path)
	if os.IsNotExist(err) {
		entry = &fileEntry{Key: key}
	} else if err != nil {
		return err
	}
	entry.Messages = append(entry.Messages, msg)

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace file: %w", err)
	}

	return nil
}

func (f *FileHistory) Messages(key string) ([]string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	entry, err := readEntry(f.path(key))
	if os.IsNotExist(err) {
		return nil, keyNotFound(key)
	}
	if err != nil {
		return nil, err
	}

	if entry.Messages == nil {
		return []string{}, nil
	}
	return entry.Messages, nil
}

func (f *FileHistory) Has(key string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	_, err := os.Stat(f.path(key))
	return err == nil
}

func (f *FileHistory) Keys() ([]string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	files, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read history directory: %w", err)
	}

	keys := make([]string, 0, len(files))
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}
		entry, err := readEntry(filepath.Join(f.dir, file.Name()))
		if err != nil {
			continue
		}
		keys = append(keys, entry.Key)
	}
	sort.Strings(keys)
	return keys, nil
}

func (f *FileHistory) Close() error {
	return nil
}

// path keeps a readable prefix of the key and disambiguates keys that
// sanitize to the same name with a hash of the raw key.
func (f *FileHistory) path(key string) string {
	hash := sha256.Sum256([]byte(key))
	name := sanitize(key, 0, "") + "-" + hex.EncodeToString(hash[:8])
	return filepath.Join(f.dir, name+".json")
}

func readEntry(path string) (*fileEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var entry fileEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal history: %w", err)
	}
	return &entry, nil
}
