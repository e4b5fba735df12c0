package services

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/dballard10/Planner-Calendar-Goal-App/internal/calendar"
	"github.com/dballard10/Planner-Calendar-Goal-App/internal/models"
	"github.com/dballard10/Planner-Calendar-Goal-App/internal/store"
)

// taskFromRow decodes a stored row. Missing status, position and links
// fall back to their defaults.
func taskFromRow(row store.Row) (*models.Task, error) {
	task := &models.Task{
		Status: models.StatusOpen,
		Links:  []models.Link{},
	}

	id, ok := row[colID]
	if !ok || id == nil {
		return nil, fmt.Errorf("task row has no id")
	}
	task.ID = fmt.Sprint(id)

	createdAt, err := timeFromValue(row[colCreatedAt])
	if err != nil {
		return nil, fmt.Errorf("task %s: created_at: %w", task.ID, err)
	}
	task.CreatedAt = createdAt

	task.Title, err = stringFromValue(row[colTitle])
	if err != nil {
		return nil, fmt.Errorf("task %s: title: %w", task.ID, err)
	}

	if status, err := stringFromValue(row[colStatus]); err != nil {
		return nil, fmt.Errorf("task %s: status: %w", task.ID, err)
	} else if row[colStatus] != nil {
		task.Status = status
	}

	assigned, ok, err := dateFromValue(row[colAssignedDate])
	if err != nil {
		return nil, fmt.Errorf("task %s: assigned_date: %w", task.ID, err)
	}
	if !ok {
		return nil, fmt.Errorf("task %s has no assigned_date", task.ID)
	}
	task.AssignedDate = models.NewDate(assigned)

	if v := row[colPosition]; v != nil {
		task.Position, err = intFromValue(v)
		if err != nil {
			return nil, fmt.Errorf("task %s: position: %w", task.ID, err)
		}
	}

	if task.Notes, err = optionalString(row[colNotes]); err != nil {
		return nil, fmt.Errorf("task %s: notes: %w", task.ID, err)
	}
	if task.StartTime, err = optionalString(row[colStartTime]); err != nil {
		return nil, fmt.Errorf("task %s: start_time: %w", task.ID, err)
	}
	if task.EndTime, err = optionalString(row[colEndTime]); err != nil {
		return nil, fmt.Errorf("task %s: end_time: %w", task.ID, err)
	}
	if task.StartDate, err = optionalDate(row[colStartDate]); err != nil {
		return nil, fmt.Errorf("task %s: start_date: %w", task.ID, err)
	}
	if task.EndDate, err = optionalDate(row[colEndDate]); err != nil {
		return nil, fmt.Errorf("task %s: end_date: %w", task.ID, err)
	}

	if v := row[colLinks]; v != nil {
		task.Links, err = linksFromValue(v)
		if err != nil {
			return nil, fmt.Errorf("task %s: links: %w", task.ID, err)
		}
	}

	if v := row[colLocation]; v != nil {
		m, err := recordFromValue(v)
		if err != nil {
			return nil, fmt.Errorf("task %s: location: %w", task.ID, err)
		}
		task.Location = models.LocationFromMap(m)
	}

	return task, nil
}

func stringFromValue(v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	}
	return "", fmt.Errorf("unexpected type %T", v)
}

func optionalString(v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s, err := stringFromValue(v)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func timeFromValue(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		return time.Parse(time.RFC3339Nano, t)
	case nil:
		return time.Time{}, fmt.Errorf("missing value")
	}
	return time.Time{}, fmt.Errorf("unexpected type %T", v)
}

// dateFromValue accepts a driver date or a YYYY-MM-DD string. ok is false
// for nil.
func dateFromValue(v any) (time.Time, bool, error) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, false, nil
	case time.Time:
		return calendar.DateOf(d), true, nil
	case string:
		t, err := calendar.ParseISODate(d)
		if err != nil {
			return time.Time{}, false, err
		}
		return t, true, nil
	}
	return time.Time{}, false, fmt.Errorf("unexpected type %T", v)
}

func optionalDate(v any) (*models.Date, error) {
	t, ok, err := dateFromValue(v)
	if err != nil || !ok {
		return nil, err
	}
	d := models.NewDate(t)
	return &d, nil
}

func intFromValue(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("not an integer: %v", n)
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		return int(i), err
	}
	return 0, fmt.Errorf("unexpected type %T", v)
}

func linksFromValue(v any) ([]models.Link, error) {
	switch l := v.(type) {
	case []models.Link:
		return l, nil
	case []map[string]any:
		links := make([]models.Link, len(l))
		for i, m := range l {
			links[i] = m
		}
		return links, nil
	case []any:
		links := make([]models.Link, 0, len(l))
		for _, item := range l {
			m, err := recordFromValue(item)
			if err != nil {
				return nil, err
			}
			links = append(links, m)
		}
		return links, nil
	}
	return nil, fmt.Errorf("unexpected type %T", v)
}

func recordFromValue(v any) (map[string]any, error) {
	switch m := v.(type) {
	case map[string]any:
		return m, nil
	case models.Link:
		return m, nil
	case store.Row:
		return m, nil
	}
	return nil, fmt.Errorf("unexpected type %T", v)
}
