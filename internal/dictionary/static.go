package dictionary

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/fr_es.yml
var frenchSpanishTable []byte

var (
	punctuationPattern = regexp.MustCompile(`[.,!?;:"'()\[\]]`)
	tokenPattern       = regexp.MustCompile(`(\s+|[.,!?;:"'()\[\]])`)
)

// Normalize lowercases a token and removes the punctuation a word can be
// wrapped in when it is clicked inside a sentence.
func Normalize(token string) string {
	return punctuationPattern.ReplaceAllString(strings.ToLower(token), "")
}

// Segment is a piece of a sentence. Separators are whitespace or a single
// punctuation mark; everything else is a word candidate.
type Segment struct {
	Text      string
	Separator bool
}

// Tokenize splits text into words and separators, keeping every character so
// that concatenating the segments gives the input back.
func Tokenize(text string) []Segment {
	var segments []Segment
	last := 0
	for _, loc := range tokenPattern.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			segments = append(segments, Segment{Text: text[last:loc[0]]})
		}
		segments = append(segments, Segment{Text: text[loc[0]:loc[1]], Separator: true})
		last = loc[1]
	}
	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:]})
	}
	return segments
}

// StaticDictionary is the bundled French to Spanish word table
type StaticDictionary struct {
	entries map[string]string
}

// NewStaticDictionary loads the embedded table
func NewStaticDictionary() (*StaticDictionary, error) {
	return ParseStaticDictionary(frenchSpanishTable)
}

// ParseStaticDictionary reads a yaml mapping of word to translation. Keys are
// normalized so that they match normalized lookups.
func ParseStaticDictionary(contents []byte) (*StaticDictionary, error) {
	var table map[string]string
	if err := yaml.Unmarshal(contents, &table); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal() > %w", err)
	}

	entries := make(map[string]string, len(table))
	for word, translation := range table {
		key := Normalize(word)
		if key == "" || translation == "" {
			continue
		}
		entries[key] = translation
	}
	return &StaticDictionary{entries: entries}, nil
}

// Lookup expects a normalized word
func (d *StaticDictionary) Lookup(word string) (string, bool) {
	if d == nil {
		return "", false
	}
	translation, ok := d.entries[word]
	return translation, ok
}

func (d *StaticDictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}
