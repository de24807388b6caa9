package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrBadRecord is returned for a score file line that cannot be parsed.
var ErrBadRecord = errors.New("storage: bad score record")

// FileRecord is one line of a level score file: "name,MM:SS".
type FileRecord struct {
	Player string
	Time   time.Duration
}

// FormatTime renders d as MM:SS, rounding down to whole seconds.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// ParseTime accepts MM:SS or a plain number of seconds.
func ParseTime(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if min, sec, ok := strings.Cut(s, ":"); ok {
		m, err := strconv.Atoi(min)
		if err != nil || m < 0 {
			return 0, fmt.Errorf("%w: minutes %q", ErrBadRecord, min)
		}
		sc, err := strconv.Atoi(sec)
		if err != nil || sc < 0 || sc >= 60 {
			return 0, fmt.Errorf("%w: seconds %q", ErrBadRecord, sec)
		}
		return time.Duration(m*60+sc) * time.Second, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: time %q", ErrBadRecord, s)
	}
	return time.Duration(n) * time.Second, nil
}

// WriteRecords writes records as score file lines.
func WriteRecords(w io.Writer, records []FileRecord) error {
	cw := csv.NewWriter(w)
	for _, r := range records {
		if err := cw.Write([]string{r.Player, FormatTime(r.Time)}); err != nil {
			return fmt.Errorf("storage: cannot write record: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("storage: cannot write records: %w", err)
	}
	return nil
}

// ReadRecords parses score file lines. Blank lines are skipped.
func ReadRecords(r io.Reader) ([]FileRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	var out []FileRecord
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadRecord, err)
		}
		d, err := ParseTime(fields[1])
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, FileRecord{Player: strings.TrimSpace(fields[0]), Time: d})
	}
}

// ExportLevel writes the level's times, fastest first, to path.
func (s *Store) ExportLevel(level int, path string) (int, error) {
	entries, err := s.AllTimes(level)
	if err != nil {
		return 0, err
	}
	records := make([]FileRecord, len(entries))
	for i, e := range entries {
		records[i] = FileRecord{Player: e.Player, Time: e.Time}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot create %s: %w", path, err)
	}
	if err := WriteRecords(f, records); err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("storage: cannot close %s: %w", path, err)
	}
	return len(records), nil
}

// ImportLevel reads a score file and stores every record under level.
// Nothing is stored if any line is malformed or any insert fails.
func (s *Store) ImportLevel(level int, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot open %s: %w", path, err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return 0, fmt.Errorf("storage: %s: %w", path, err)
	}
	if err := s.SaveTimes(level, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// SaveTimes records several clears of one level in a single transaction.
// Either every record is stored or none is.
func (s *Store) SaveTimes(level int, records []FileRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op
	defer tx.Rollback()

	for _, r := range records {
		if _, err := insertTime(tx, level, r.Player, r.Time); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit times: %w", err)
	}
	return nil
}
