// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package hooppdf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// StrLog is a simple logger that saves to a string,
// so it can be printed out only when needed.
type StrLog struct {
	log string
}

func (t *StrLog) Write(p []byte) (n int, err error) {
	t.log += string(p)
	return len(p), nil
}

func TestLocalConn(t *testing.T) {
	var slog StrLog
	dir := filepath.Join(t.TempDir(), "out", "pdfs")
	conn := &LocalConn{Dir: dir, Logger: log.New(&slog)}
	err := conn.Init()
	if err != nil {
		t.Fatalf("Could not initialise local connection: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("Expected output directory %s to be created", dir)
	}

	cases := []struct {
		key      string
		contents string
	}{
		{"empty.pdf", ""},
		{"justastring.pdf", "I am just a basic string"},
		{"sub/nested.pdf", "nested"},
	}
	for _, c := range cases {
		t.Run(c.key, func(t *testing.T) {
			err := conn.Upload(c.key, strings.NewReader(c.contents))
			if err != nil {
				t.Fatalf("Upload failed: %v", err)
			}
			b, err := os.ReadFile(conn.Location(c.key))
			if err != nil {
				t.Fatalf("Could not read uploaded file: %v", err)
			}
			if string(b) != c.contents {
				t.Errorf("Expected contents %q, got %q", c.contents, string(b))
			}
		})
	}

	conn.Log("Uploaded", len(cases), "files")
	if !strings.Contains(slog.log, "Uploaded 3 files") {
		t.Errorf("Expected log message, got %q", slog.log)
	}
}

func TestAwsConnNeedsBucket(t *testing.T) {
	var slog StrLog
	conn := &AwsConn{Logger: log.New(&slog)}
	if err := conn.MinimalInit(); err == nil {
		t.Errorf("Expected an error initialising without a bucket")
	}
}

func TestAwsConnUpload(t *testing.T) {
	bucket := os.Getenv("HOOPPDF_TEST_BUCKET")
	if testing.Short() || bucket == "" {
		t.Skip("Skipping S3 test; set HOOPPDF_TEST_BUCKET to run it")
	}
	var slog StrLog
	conn := &AwsConn{Bucket: bucket, Prefix: "hooppdftest", Logger: log.New(&slog)}
	err := conn.Init()
	if err != nil {
		t.Fatalf("Could not initialise aws connection: %v\nLog: %s", err, slog.log)
	}
	err = conn.Upload("test.pdf", strings.NewReader("%PDF-1.3"))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if want := "s3://" + bucket + "/hooppdftest/test.pdf"; conn.Location("test.pdf") != want {
		t.Errorf("Expected location %s, got %s", want, conn.Location("test.pdf"))
	}
}
