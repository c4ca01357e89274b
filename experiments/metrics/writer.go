package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// StrategySummary is the aggregate outcome of one strategy over the test set.
type StrategySummary struct {
	Strategy        string  `yaml:"strategy"`
	Games           int     `yaml:"games"`
	Won             int     `yaml:"won"`
	Lost            int     `yaml:"lost"`
	TotalMistakes   int     `yaml:"total_mistakes"`
	AverageMistakes float64 `yaml:"average_mistakes"`
	Duration        string  `yaml:"duration"`
}

// Summary is written as summary.yaml at the end of a run.
type Summary struct {
	RunID       string            `yaml:"run_id"`
	Experiment  string            `yaml:"experiment"`
	StartedAt   time.Time         `yaml:"started_at"`
	TrainWords  int               `yaml:"train_words"`
	TestWords   int               `yaml:"test_words"`
	MaxMistakes int               `yaml:"max_mistakes"`
	Strategies  []StrategySummary `yaml:"strategies"`
}

// Writer stores the results of one evaluation run in its own directory.
type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<experiment>/<timestamp>-<run id>.
func NewWriter(root, experiment string, runID uuid.UUID) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, experiment, timestamp+"-"+runID.String()[:8])
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string { return w.baseDir }

func (w *Writer) WriteStrategyConfigs(configs []StrategyConfig) error {
	header := []string{"name", "kind", "order", "lambdas", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		lambdas := make([]string, len(config.Lambdas))
		for i, l := range config.Lambdas {
			lambdas[i] = strconv.FormatFloat(l, 'g', -1, 64)
		}
		rows = append(rows, []string{
			config.Name,
			config.Kind,
			strconv.Itoa(config.Order),
			strings.Join(lambdas, " "),
			strconv.FormatUint(config.Seed, 10),
		})
	}

	if err := w.writeCSV("strategies.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write strategy configs: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"strategy", "index", "word", "length", "status", "mistakes", "turns", "guesses", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Strategy,
			strconv.Itoa(record.Index),
			record.Word,
			strconv.Itoa(len(record.Word)),
			record.Status.String(),
			strconv.Itoa(record.Mistakes),
			strconv.Itoa(record.Turns),
			record.Guesses,
			record.Duration.String(),
		})
	}

	if err := w.writeCSV("games.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	return nil
}

func (w *Writer) WriteSummary(summary Summary) error {
	b, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	err = os.WriteFile(filepath.Join(w.baseDir, "summary.yaml"), b, 0644)
	if err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	// Create a file
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return f.Close()
}
