package kconfig

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/ini.v1"
)

// Store persists boolean and string-list settings grouped into named
// sections of a flat rc file. Missing files and keys read as defaults,
// never as errors.
type Store struct {
	path string
	file *ini.File
}

// Open loads the rc file at path, or starts an empty store when the
// file does not exist yet.
func Open(path string) *Store {
	file, err := ini.LooseLoad(path)
	if err != nil {
		file = ini.Empty()
	}
	return &Store{path: path, file: file}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// ReadBool returns the value stored under group/key, or def when absent
// or unparsable.
func (s *Store) ReadBool(group, key string, def bool) bool {
	sec := s.file.Section(group)
	if !sec.HasKey(key) {
		return def
	}
	v, err := sec.Key(key).Bool()
	if err != nil {
		return def
	}
	return v
}

// WriteBool sets group/key. The change is in-memory until Sync.
func (s *Store) WriteBool(group, key string, v bool) {
	s.file.Section(group).Key(key).SetValue(strconv.FormatBool(v))
}

// ReadStringList returns the comma-separated list stored under group/key.
func (s *Store) ReadStringList(group, key string) []string {
	sec := s.file.Section(group)
	if !sec.HasKey(key) {
		return nil
	}
	var values []string
	for _, v := range sec.Key(key).Strings(",") {
		if v != "" {
			values = append(values, v)
		}
	}
	return values
}

// WriteStringList sets group/key to a comma-separated list.
func (s *Store) WriteStringList(group, key string, values []string) {
	joined := ""
	for i, v := range values {
		if i > 0 {
			joined += ","
		}
		joined += v
	}
	s.file.Section(group).Key(key).SetValue(joined)
}

// Keys returns the key names present in a group.
func (s *Store) Keys(group string) []string {
	return s.file.Section(group).KeyStrings()
}

// Sync flushes the store to disk, creating parent directories as needed.
func (s *Store) Sync() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return s.file.SaveTo(s.path)
}
