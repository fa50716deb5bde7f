package metrics

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped subfolder of dir for one run's reports.
// Runs started at the same instant get a numbered suffix.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	timestamp := time.Now().UTC().Format("20060102T150405.000000000Z")
	baseDir := filepath.Join(dir, timestamp)
	for i := 1; ; i++ {
		err := os.Mkdir(baseDir, 0755)
		if err == nil {
			break
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
		baseDir = filepath.Join(dir, fmt.Sprintf("%s-%d", timestamp, i))
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteBattles(records []BattleRecord) error {
	header := []string{"match", "turn", "attacker", "defender", "attacker_roll", "defender_roll", "attacker_won", "conquered", "transferred"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Match,
			strconv.Itoa(record.Turn),
			record.Attacker,
			record.Defender,
			strconv.Itoa(record.AttackerRoll),
			strconv.Itoa(record.DefenderRoll),
			strconv.FormatBool(record.AttackerWon),
			strconv.FormatBool(record.Conquered),
			strconv.Itoa(record.Transferred),
		})
	}
	return w.write("battles.csv", header, rows)
}

func (w *Writer) WriteGames(records []GameMetric) error {
	header := []string{"match", "mission", "player_color", "turns", "battles", "conquests", "won", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Match,
			record.Mission,
			record.PlayerColor,
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.Battles),
			strconv.Itoa(record.Conquests),
			strconv.FormatBool(record.Won),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("games.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
