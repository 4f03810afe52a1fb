// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package hooppdf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// LocalConn is a simple implementation of the storage interface
// which saves documents to a directory on the local machine.
type LocalConn struct {
	// these should be set before running Init(), or left to defaults
	Dir    string
	Logger *log.Logger
}

// MinimalInit does the bare minimum initialisation
func (a *LocalConn) MinimalInit() error {
	if a.Dir == "" {
		a.Dir = "pdfs"
	}
	err := os.MkdirAll(a.Dir, 0755)
	if err != nil {
		return fmt.Errorf("Error creating output directory: %w", err)
	}

	if a.Logger == nil {
		a.Logger = log.New(os.Stdout)
	}

	return nil
}

// Init just does the same as MinimalInit
func (a *LocalConn) Init() error {
	return a.MinimalInit()
}

// Upload copies everything from r to Dir/key
func (a *LocalConn) Upload(key string, r io.Reader) error {
	p := filepath.Join(a.Dir, filepath.FromSlash(key))
	err := os.MkdirAll(filepath.Dir(p), 0755)
	if err != nil {
		return fmt.Errorf("Error creating directory for %s: %w", key, err)
	}

	f, err := os.Create(p)
	if err != nil {
		return err
	}
	_, err = io.Copy(f, r)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Location returns where a key is stored, for reporting
func (a *LocalConn) Location(key string) string {
	return filepath.Join(a.Dir, filepath.FromSlash(key))
}

func (a *LocalConn) GetLogger() *log.Logger {
	return a.Logger
}

// Log records an item with the Logger. Arguments are handled
// as with fmt.Println.
func (a *LocalConn) Log(v ...interface{}) {
	a.Logger.Print(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}
