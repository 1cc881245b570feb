package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-enhancer/internal/config"
	"github.com/stretchr/testify/require"
)

const sampleEnhancedText = `Improved Resume Text:

Contact Information:
Email: a@x.com
Phone: 555-1234



Experience:
Engineer | Acme | 2020
Built X
Led Y
2018 Intern | Beta

Skills:
Go
Rust
`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func defaultConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := resolveConfig("")
	require.NoError(t, err)
	return cfg
}

func testStreams() (streams, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return streams{Out: &out, Err: &errOut}, &out, &errOut
}
