// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListImages lists the files directly inside dir, in name order,
// skipping directories and any file which starts with "." to prevent
// automatically generated files like .DS_Store getting in the way.
// Files are not checked to be images; that happens when they are
// decoded.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("Failed to read directory %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		p := filepath.Join(dir, e.Name())
		// use Stat to follow symlinks
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths, nil
}

// CheckInput checks that the input directory exists and has some
// files in it, returning them. If the directory doesn't exist it is
// created, so there is somewhere to put the images, but it is still
// an error.
func CheckInput(dir string) ([]string, error) {
	_, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		mkerr := os.MkdirAll(dir, 0755)
		if mkerr != nil {
			return nil, newError(KindSetup, dir, fmt.Errorf("Input directory does not exist, and could not be created: %w", mkerr))
		}
		return nil, newError(KindSetup, dir, errors.New("No images found; the input directory has been created, add images to it and run again"))
	}
	if err != nil {
		return nil, newError(KindSetup, dir, err)
	}

	paths, err := ListImages(dir)
	if err != nil {
		return nil, newError(KindSetup, dir, err)
	}
	if len(paths) == 0 {
		return nil, newError(KindSetup, dir, errors.New("No images found"))
	}
	return paths, nil
}

// OutputName returns the name of the document made from an image,
// which is its base name with the extension replaced by ".pdf".
func OutputName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".pdf"
}
