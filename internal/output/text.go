package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriteLines writes each line followed by a newline.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// TextPath returns input with its extension replaced by ".txt".
func TextPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".txt"
}

// WriteFile writes lines to path. The lines go to a temporary file in the
// same directory first, which is then renamed over path, so a failed write
// never leaves a truncated file behind.
func WriteFile(path string, lines []string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	tmpName := tmp.Name()

	if err := WriteLines(tmp, lines); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close output file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set output file mode: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move output file into place: %w", err)
	}
	return nil
}
