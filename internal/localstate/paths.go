// Package localstate resolves where the workspace keeps its durable state
// on the local machine.
package localstate

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	envHome       = "AURA_HOME" // override for tests
	dirName       = ".aura"     // default under $HOME
	dbFilename    = "workspace.db"
	localstoreDir = "localstore" // legacy flat-key store lives here
	exportDirName = "exports"
)

// DataDir returns the directory where local state is stored (~/.aura).
// It creates the directory with 0700 permissions if it does not exist.
func DataDir() (string, error) {
	if custom := os.Getenv(envHome); custom != "" {
		if err := os.MkdirAll(custom, 0o700); err != nil {
			return "", err
		}
		return custom, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine user home: %w", err)
	}
	dir := filepath.Join(home, dirName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

// DBPath returns the absolute path to the SQLite database file.
func DBPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dbFilename), nil
}

// LocalStoreDir returns the directory holding legacy flat key/value files.
func LocalStoreDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, localstoreDir), nil
}

// ExportDir returns the directory backup files are written to, creating it
// if needed.
func ExportDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	out := filepath.Join(dir, exportDirName)
	if err := os.MkdirAll(out, 0o700); err != nil {
		return "", err
	}
	return out, nil
}

// Paths groups the resolved state locations for one data directory.
type Paths struct {
	Root       string
	DB         string
	LocalStore string
	Exports    string
}

// Resolve lays out state paths under base, falling back to the default
// data directory when base is empty. The root and export directories are
// created if missing.
func Resolve(base string) (Paths, error) {
	var err error
	if base == "" {
		base, err = DataDir()
		if err != nil {
			return Paths{}, err
		}
	} else if err = os.MkdirAll(base, 0o700); err != nil {
		return Paths{}, err
	}
	p := Paths{
		Root:       base,
		DB:         filepath.Join(base, dbFilename),
		LocalStore: filepath.Join(base, localstoreDir),
		Exports:    filepath.Join(base, exportDirName),
	}
	if err := os.MkdirAll(p.Exports, 0o700); err != nil {
		return Paths{}, err
	}
	return p, nil
}
