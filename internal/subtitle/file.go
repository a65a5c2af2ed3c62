package subtitle

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadLines reads the whole file into an ordered sequence of lines,
// terminators stripped. The entire input is in memory before the
// caller can start writing, so writing back to the same path is safe.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open subtitle file %s: %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading subtitle file %s: %w", path, err)
	}

	return lines, nil
}

// WriteLines writes the lines to path, each terminated with a newline.
func WriteLines(path string, lines []string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}
