package config

import (
	"fmt"
	"path/filepath"
)

// memEnv is an in-memory Env double used across the config package's
// tests, avoiding any real filesystem access.
type memEnv struct {
	files      map[string]string
	cwd        string
	home       string
	userConfig string
	env        map[string]string
}

func newMemEnv() *memEnv {
	return &memEnv{
		files: map[string]string{},
		cwd:   "/work",
		home:  "/home/user",
		env:   map[string]string{},
	}
}

func (m *memEnv) ReadFile(path string) ([]byte, error) {
	content, ok := m.files[filepath.Clean(path)]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", path)
	}
	return []byte(content), nil
}

func (m *memEnv) FileExists(path string) bool {
	_, ok := m.files[filepath.Clean(path)]
	return ok
}

func (m *memEnv) Getenv(key string) string { return m.env[key] }

func (m *memEnv) Getwd() (string, error) { return m.cwd, nil }

func (m *memEnv) UserConfigDir() (string, error) {
	if m.userConfig == "" {
		return "/home/user/.config", nil
	}
	return m.userConfig, nil
}

func (m *memEnv) UserHomeDir() (string, error) { return m.home, nil }

func (m *memEnv) put(path, content string) {
	m.files[filepath.Clean(path)] = content
}
