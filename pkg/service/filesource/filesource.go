package filesource

import (
	"bufio"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/reclaimer/pkg/domain/interfaces"
)

// OS reads batch sources from the local filesystem
type OS struct{}

var _ interfaces.FileSource = (*OS)(nil)

// New creates a filesystem backed FileSource
func New() *OS {
	return &OS{}
}

// Exists reports whether path is an existing regular file
func (s *OS) Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadLines returns the lines of path in order, without line terminators
func (s *OS) ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open file", goerr.V("path", path))
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to read file", goerr.V("path", path))
	}

	return lines, nil
}
