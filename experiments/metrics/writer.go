package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID playing Player1
	Agent2 int // AgentConfig.ID playing Player2
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// gameRow and moveRow are the flat parquet layouts of the records.
type gameRow struct {
	ID             int32  `parquet:"id"`
	Agent1         int32  `parquet:"agent1"`
	Agent2         int32  `parquet:"agent2"`
	StartingPlayer int32  `parquet:"starting_player"`
	Winner         string `parquet:"winner,dict"`
	StartTime      int64  `parquet:"start_time_unix_ms"`
	EndTime        int64  `parquet:"end_time_unix_ms"`
	DurationMs     int64  `parquet:"duration_ms"`
	TotalMoves     int32  `parquet:"total_moves"`
}

type moveRow struct {
	Game         int32  `parquet:"game"`
	Step         int32  `parquet:"step"`
	Player       int32  `parquet:"player"`
	Action       string `parquet:"action,dict"`
	Goroutines   int32  `parquet:"goroutines"`
	DurationUs   int64  `parquet:"duration_us"`
	Episodes     int32  `parquet:"episodes"`
	Cutoff       int32  `parquet:"cutoff"`
	FullPlayouts int32  `parquet:"full_playouts"`
	Cutoffs      int32  `parquet:"cutoffs"`
	TreeSize     int32  `parquet:"tree_size"`
	MaxDepth     int32  `parquet:"max_depth"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> to hold the files of one
// experiment run.
func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "agent", "goroutines", "duration", "episodes", "cutoff", "exploration", "wall_probability", "wall_margin", "evaluation", "temperature", "seed"}
	rows := make([][]string, len(configs))
	for i, config := range configs {
		rows[i] = []string{
			strconv.Itoa(config.ID),
			config.Agent,
			strconv.Itoa(config.Goroutines),
			config.Duration.String(),
			strconv.Itoa(config.Episodes),
			strconv.Itoa(config.Cutoff),
			strconv.FormatFloat(config.Exploration, 'g', -1, 64),
			strconv.FormatFloat(config.WallProbability, 'g', -1, 64),
			strconv.Itoa(config.WallMargin),
			config.Evaluation,
			strconv.FormatFloat(config.Temperature, 'g', -1, 64),
			strconv.FormatUint(config.Seed, 10),
		}
	}
	return w.writeCSV("agent_configs.csv", "agent configs", header, rows)
}

// WriteGameRecords stores the games as CSV and as a zstd compressed parquet file.
func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, len(records))
	parquetRows := make([]gameRow, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.StartingPlayer),
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		}
		parquetRows[i] = gameRow{
			ID:             int32(record.ID),
			Agent1:         int32(record.Agent1),
			Agent2:         int32(record.Agent2),
			StartingPlayer: int32(record.StartingPlayer),
			Winner:         record.Winner,
			StartTime:      record.StartTime.UnixMilli(),
			EndTime:        record.EndTime.UnixMilli(),
			DurationMs:     record.Duration.Milliseconds(),
			TotalMoves:     int32(record.TotalMoves),
		}
	}
	if err := w.writeCSV("game_records.csv", "game records", header, rows); err != nil {
		return err
	}
	return writeParquet(filepath.Join(w.baseDir, "game_records.parquet"), parquetRows, "game_record_v1")
}

// WriteMoveRecords stores the moves as CSV and as a zstd compressed parquet file.
func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "action", "goroutines", "duration", "episodes", "cutoff", "full_playouts", "cutoffs", "tree_size", "max_depth"}
	rows := make([][]string, len(records))
	parquetRows := make([]moveRow, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			record.Action,
			strconv.Itoa(record.Goroutines),
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.Cutoff),
			strconv.Itoa(record.FullPlayouts),
			strconv.Itoa(record.Cutoffs),
			strconv.Itoa(record.TreeSize),
			strconv.Itoa(record.MaxDepth),
		}
		parquetRows[i] = moveRow{
			Game:         int32(record.Game),
			Step:         int32(record.Step),
			Player:       int32(record.Player),
			Action:       record.Action,
			Goroutines:   int32(record.Goroutines),
			DurationUs:   record.Duration.Microseconds(),
			Episodes:     int32(record.Episodes),
			Cutoff:       int32(record.Cutoff),
			FullPlayouts: int32(record.FullPlayouts),
			Cutoffs:      int32(record.Cutoffs),
			TreeSize:     int32(record.TreeSize),
			MaxDepth:     int32(record.MaxDepth),
		}
	}
	if err := w.writeCSV("move_records.csv", "move records", header, rows); err != nil {
		return err
	}
	return writeParquet(filepath.Join(w.baseDir, "move_records.parquet"), parquetRows, "move_record_v1")
}

func (w *Writer) writeCSV(file, what string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s file: %w", what, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", what, err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", what, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", what, err)
	}
	return nil
}

// writeParquet writes to a temp file and renames it, so readers never see a
// partial file.
func writeParquet[T any](path string, rows []T, schema string) error {
	tmpPath := path + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", schema),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename parquet: %w", err)
	}
	return nil
}
