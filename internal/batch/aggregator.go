// Package batch merges the activity files of one input location into a
// single batch.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"fjacquet/activity-export/internal/dateutils"
	"fjacquet/activity-export/internal/logging"
	"fjacquet/activity-export/internal/models"
)

// DateRange represents a date range with start and end dates
type DateRange struct {
	Start time.Time
	End   time.Time
}

// String returns the date range in the format "YYYY-MM-DD_YYYY-MM-DD"
func (dr DateRange) String() string {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%s", dateutils.ToISODate(dr.Start), dateutils.ToISODate(dr.End))
}

// Merge combines this date range with another, returning the overall range
func (dr DateRange) Merge(other DateRange) DateRange {
	start := dr.Start
	end := dr.End

	if dr.Start.IsZero() {
		start = other.Start
	} else if !other.Start.IsZero() && other.Start.Before(start) {
		start = other.Start
	}

	if dr.End.IsZero() {
		end = other.End
	} else if !other.End.IsZero() && other.End.After(end) {
		end = other.End
	}

	return DateRange{Start: start, End: end}
}

// RangeOf returns the calendar dates spanned by activities. Activities
// without a readable timestamp are ignored.
func RangeOf(activities []models.RawActivity) DateRange {
	var dr DateRange
	for _, a := range activities {
		d := dateutils.CalendarDate(a.OccurredAt)
		if d.IsZero() {
			continue
		}
		dr = dr.Merge(DateRange{Start: d, End: d})
	}
	return dr
}

// Extensions are the activity file extensions picked up from a directory.
var Extensions = []string{".json", ".csv"}

// Aggregator reads several activity files as one batch.
type Aggregator struct {
	logger logging.Logger
}

// NewAggregator creates a new Aggregator instance
func NewAggregator(logger logging.Logger) *Aggregator {
	return &Aggregator{logger: logging.OrDefault(logger)}
}

// CollectFiles expands an input location. A directory yields its activity
// files in name order; anything else is returned as the only file.
func (a *Aggregator) CollectFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error reading input %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("error listing %s: %w", path, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !hasActivityExtension(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(path, e.Name()))
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("no activity files (%s) in %s", strings.Join(Extensions, ", "), path)
	}
	return files, nil
}

func hasActivityExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Aggregate parses files in order and concatenates their activities. The
// first occurrence of an activity id wins; later ones are dropped.
func (a *Aggregator) Aggregate(files []string, parse func(string) ([]models.RawActivity, error)) ([]models.RawActivity, error) {
	var all []models.RawActivity
	seen := make(map[string]string)
	duplicates := 0

	for _, file := range files {
		activities, err := parse(file)
		if err != nil {
			return nil, err
		}
		for _, act := range activities {
			if first, dup := seen[act.ID]; dup {
				duplicates++
				a.logger.Debug("Dropped duplicate activity",
					logging.F(logging.FieldActivityID, act.ID),
					logging.F(logging.FieldInputFile, file),
					logging.F("first_seen_in", first))
				continue
			}
			seen[act.ID] = file
			all = append(all, act)
		}
	}

	if duplicates > 0 {
		a.logger.Warn("Duplicate activities dropped", logging.F(logging.FieldCount, duplicates))
	}

	a.logger.Info("Aggregated activities",
		logging.F(logging.FieldCount, len(all)),
		logging.F("source_files", len(files)),
		logging.F("date_range", RangeOf(all).String()))
	return all, nil
}
