package datasync

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/flashcard"
)

const (
	CardsFile   = "cards.yml"
	HistoryFile = "history.yml"
)

// YAMLSink writes exported data to YAML files in a directory.
type YAMLSink struct {
	outputDir string
}

func NewYAMLSink(outputDir string) *YAMLSink {
	return &YAMLSink{outputDir: outputDir}
}

// WriteAll writes cards and history to separate YAML files.
func (s *YAMLSink) WriteAll(data *ExportData) error {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	cards := data.Cards
	if cards == nil {
		cards = []flashcard.Card{}
	}
	if err := writeYAML(filepath.Join(s.outputDir, CardsFile), cards); err != nil {
		return fmt.Errorf("write %s: %w", CardsFile, err)
	}

	history := data.History
	if history == nil {
		history = []flashcard.HistoryEntry{}
	}
	if err := writeYAML(filepath.Join(s.outputDir, HistoryFile), history); err != nil {
		return fmt.Errorf("write %s: %w", HistoryFile, err)
	}
	return nil
}

// ReadYAML reads the files written by YAMLSink. A missing history file is
// treated as empty.
func ReadYAML(inputDir string) (*ExportData, error) {
	var data ExportData
	if err := readYAML(filepath.Join(inputDir, CardsFile), &data.Cards); err != nil {
		return nil, fmt.Errorf("read %s: %w", CardsFile, err)
	}
	err := readYAML(filepath.Join(inputDir, HistoryFile), &data.History)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", HistoryFile, err)
	}
	return &data, nil
}

func writeYAML(path string, data interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	enc := yaml.NewEncoder(f)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}

func readYAML(path string, data interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := yaml.NewDecoder(f).Decode(data); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
