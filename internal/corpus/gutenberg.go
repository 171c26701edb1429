package corpus

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/corvid-labs/corpusmood/internal/models"
)

var startMarkers = []string{
	"*** START OF THE PROJECT GUTENBERG EBOOK",
	"*** START OF THIS PROJECT GUTENBERG EBOOK",
	"*END*THE SMALL PRINT",
}

var endMarkers = []string{
	"*** END OF THE PROJECT GUTENBERG EBOOK",
	"*** END OF THIS PROJECT GUTENBERG EBOOK",
	"End of the Project Gutenberg EBook",
	"End of Project Gutenberg's",
}

// LoadDir reads every .txt novel in dir into TextRecords, one per
// non-empty line. The file's base name is the document id and line numbers
// run over the whole stripped text, so fixed-size line windows correspond
// to contiguous sections of the book.
func LoadDir(dir string) ([]models.TextRecord, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("[Corpus] failed to glob %s: %w", dir, err)
	}
	if len(files) == 0 {
		slog.Warn("[Corpus] No novel files found", slog.String("dir", dir))
	}

	var records []models.TextRecord
	for _, path := range files {
		bookRecords, err := LoadBook(path)
		if err != nil {
			return nil, err
		}
		records = append(records, bookRecords...)
	}
	return records, nil
}

// LoadBook reads a single Gutenberg plain-text file, strips the license
// boilerplate around the body and yields line records.
func LoadBook(path string) ([]models.TextRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("[Corpus] failed to open %s: %w", path, err)
	}
	defer f.Close()

	documentID := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var records []models.TextRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	inBody := true
	lineNumber := 0
	for scanner.Scan() {
		line := scanner.Text()

		if matchesAny(line, startMarkers) {
			// Everything before the start marker was front matter.
			records = records[:0]
			lineNumber = 0
			inBody = true
			continue
		}
		if matchesAny(line, endMarkers) {
			inBody = false
			continue
		}
		if !inBody {
			continue
		}

		lineNumber++
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		records = append(records, models.TextRecord{
			DocumentID: documentID,
			LineNumber: lineNumber,
			Text:       trimmed,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("[Corpus] failed to scan %s: %w", path, err)
	}

	slog.Info("[Corpus] Loaded book",
		slog.String("document_id", documentID),
		slog.Int("lines", len(records)))
	return records, nil
}

func matchesAny(line string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}
