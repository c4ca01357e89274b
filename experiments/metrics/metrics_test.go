package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"hangman/game"
)

func TestCollector(t *testing.T) {
	t.Run("orders records by strategy then index", func(t *testing.T) {
		c := NewCollector()
		var wg sync.WaitGroup
		for i := 9; i >= 0; i-- {
			wg.Add(1)
			go func() {
				defer wg.Done()
				name := "b"
				if i%2 == 0 {
					name = "a"
				}
				c.AddGame(name, i, game.Result{Word: "cat", Status: game.Won, Guesses: []rune("cat"), Turns: 3})
			}()
		}
		wg.Wait()

		records := c.Records()
		require.Len(t, records, 10)
		require.Equal(t, "a", records[0].Strategy)
		require.Equal(t, 0, records[0].Index)
		require.Equal(t, "a", records[4].Strategy)
		require.Equal(t, 8, records[4].Index)
		require.Equal(t, "b", records[5].Strategy)
		require.Equal(t, 1, records[5].Index)
		require.Equal(t, "cat", records[9].Guesses)
	})

	t.Run("dummy collector keeps nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.AddGame("a", 0, game.Result{})
		require.Empty(t, c.Records())
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	runID := uuid.New()
	w, err := NewWriter(root, "exp", runID)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "exp"), filepath.Dir(w.Dir()))
	require.True(t, strings.HasSuffix(w.Dir(), "-"+runID.String()[:8]))

	t.Run("writes strategy configs", func(t *testing.T) {
		err := w.WriteStrategyConfigs([]StrategyConfig{
			{Name: "ngram-2", Kind: "ngram", Order: 2, Lambdas: []float64{0.1, 0.3, 0.6}},
			{Name: "random", Kind: "random", Seed: 42},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "strategies.csv"))
		require.Equal(t, [][]string{
			{"name", "kind", "order", "lambdas", "seed"},
			{"ngram-2", "ngram", "2", "0.1 0.3 0.6", "0"},
			{"random", "random", "0", "", "42"},
		}, rows)
	})

	t.Run("writes game records", func(t *testing.T) {
		err := w.WriteGameRecords([]GameRecord{
			{Strategy: "random", Index: 3, Word: "cat", Status: game.Lost, Mistakes: 26, Turns: 28, Guesses: "qwe", Duration: time.Millisecond},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "games.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"random", "3", "cat", "3", "lost", "26", "28", "qwe", "1ms"}, rows[1])
	})

	t.Run("writes the summary", func(t *testing.T) {
		err := w.WriteSummary(Summary{
			RunID:      runID.String(),
			Experiment: "exp",
			Strategies: []StrategySummary{{Strategy: "ngram-2", Games: 4, Won: 4, AverageMistakes: 1.5}},
		})
		require.NoError(t, err)

		b, err := os.ReadFile(filepath.Join(w.Dir(), "summary.yaml"))
		require.NoError(t, err)
		require.Contains(t, string(b), "run_id: "+runID.String())
		require.Contains(t, string(b), "average_mistakes: 1.5")
	})
}
