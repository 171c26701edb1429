package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Lexicon maps a lower-cased word to its sentiment value. Polarity lexicons
// hold +1/-1, scored lexicons hold their native range (AFINN uses -5..+5).
// Loaded once, read-only afterwards.
type Lexicon struct {
	Name  string
	words map[string]float64
}

// Lookup returns the value for word and whether the word is present.
// Absent words carry no sentiment signal and are dropped by the join.
func (l *Lexicon) Lookup(word string) (float64, bool) {
	v, ok := l.words[word]
	return v, ok
}

func (l *Lexicon) Len() int {
	return len(l.words)
}

// FromMap builds a lexicon from an in-memory table. Used by tests and by
// callers that assemble small ad-hoc lexicons.
func FromMap(name string, words map[string]float64) *Lexicon {
	m := make(map[string]float64, len(words))
	for w, v := range words {
		m[strings.ToLower(w)] = v
	}
	return &Lexicon{Name: name, words: m}
}

// LoadPolarity reads a Bing-Liu style lexicon: one file of positive words
// mapped to +1 and one file of negative words mapped to -1, one word per
// line. Lines starting with ';' are comments and are skipped.
func LoadPolarity(name, positivePath, negativePath string) (*Lexicon, error) {
	words := make(map[string]float64)

	if err := readWordList(positivePath, 1, words); err != nil {
		return nil, fmt.Errorf("[Lexicon] failed to read positive list: %w", err)
	}
	if err := readWordList(negativePath, -1, words); err != nil {
		return nil, fmt.Errorf("[Lexicon] failed to read negative list: %w", err)
	}

	return &Lexicon{Name: name, words: words}, nil
}

// LoadScored reads an AFINN style lexicon of "word<TAB>score" lines.
// Malformed lines are skipped rather than failing the whole load.
func LoadScored(name, path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("[Lexicon] failed to open %s: %w", path, err)
	}
	defer f.Close()

	words := make(map[string]float64)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		word, scoreStr, found := strings.Cut(line, "\t")
		if !found {
			continue
		}
		score, err := strconv.ParseFloat(strings.TrimSpace(scoreStr), 64)
		if err != nil {
			continue
		}
		words[strings.ToLower(strings.TrimSpace(word))] = score
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("[Lexicon] failed to scan %s: %w", path, err)
	}

	return &Lexicon{Name: name, words: words}, nil
}

func readWordList(path string, value float64, into map[string]float64) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, ";") {
			continue
		}
		into[strings.ToLower(word)] = value
	}
	return scanner.Err()
}
