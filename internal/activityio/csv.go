// Package activityio reads the caller-facing activity CSV and writes the
// reconstructed schedule CSV, mirroring the teacher's
// internal/backtest ledger writer and internal/data JSON loader in shape:
// small, dependency-light encoding/csv helpers with no buffering beyond
// what csv.Writer already does.
package activityio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"evscheduled/internal/schedule"
)

// LoadActivities reads the activity table layout of §6: id, act_type, x, y,
// group (1..G on disk, remapped to 0..G-1 in memory), earliest_start,
// latest_start, min_duration, max_duration, des_start_time, des_duration,
// charge_mode, is_charging, is_service_station.
func LoadActivities(path string, intervalMinutes int) ([]schedule.Activity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading activity csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("activity csv %s has no data rows", path)
	}

	acts := make([]schedule.Activity, 0, len(rows)-1)
	for i, row := range rows[1:] {
		act, err := parseActivityRow(row, intervalMinutes)
		if err != nil {
			return nil, fmt.Errorf("activity csv %s row %d: %w", path, i+2, err)
		}
		acts = append(acts, act)
	}
	return acts, nil
}

// parseActivityRow reads the 14 activity columns. earliest_start,
// latest_start and des_start_time may be given either as a raw interval
// count or as an "HH:MM" wall-clock time (see parseIntervalField).
func parseActivityRow(row []string, intervalMinutes int) (schedule.Activity, error) {
	if len(row) < 14 {
		return schedule.Activity{}, fmt.Errorf("expected 14 columns, got %d", len(row))
	}

	plainIdx := []int{0, 7, 8, 10, 11, 12, 13}
	timeIdx := []int{5, 6, 9}

	ints := make(map[int]int, 10)
	for _, idx := range plainIdx {
		v, err := strconv.Atoi(row[idx])
		if err != nil {
			return schedule.Activity{}, fmt.Errorf("column %d: %w", idx, err)
		}
		ints[idx] = v
	}
	for _, idx := range timeIdx {
		v, err := parseIntervalField(row[idx], intervalMinutes)
		if err != nil {
			return schedule.Activity{}, fmt.Errorf("column %d: %w", idx, err)
		}
		ints[idx] = v
	}
	x, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return schedule.Activity{}, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return schedule.Activity{}, fmt.Errorf("y: %w", err)
	}
	group, err := strconv.Atoi(row[4])
	if err != nil {
		return schedule.Activity{}, fmt.Errorf("group: %w", err)
	}

	return schedule.Activity{
		ID:               ints[0],
		Type:             row[1],
		X:                x,
		Y:                y,
		Group:            group - 1, // 1..G on disk -> 0..G-1 in memory
		EarliestStart:    ints[5],
		LatestStart:      ints[6],
		MinDuration:      ints[7],
		MaxDuration:      ints[8],
		DesiredStart:     ints[9],
		DesiredDuration:  ints[10],
		ChargeMode:       ints[11],
		IsCharging:       ints[12] != 0,
		IsServiceStation: ints[13] != 0,
	}, nil
}

// WriteSchedule writes the schedule output layout of §6.
func WriteSchedule(path string, rows []schedule.ScheduleRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"act_id", "act_type", "start_time", "duration",
		"soc_start", "soc_end", "is_charging", "charge_mode",
		"charge_duration", "charge_cost", "utility", "x", "y",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		rec := []string{
			strconv.Itoa(row.ActivityID),
			row.ActivityType,
			fmtFloat(row.StartHour),
			strconv.Itoa(row.Duration),
			fmtFloat(row.SOCStart),
			fmtFloat(row.SOCEnd),
			boolToFlag(row.IsCharging),
			strconv.Itoa(row.ChargeMode),
			fmtFloat(row.ChargeDuration),
			fmtFloat(row.ChargeCost),
			fmtFloat(row.Utility),
			fmtFloat(row.X),
			fmtFloat(row.Y),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func boolToFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
