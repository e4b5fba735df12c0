package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/dballard10/Planner-Calendar-Goal-App/internal/calendar"
	"github.com/dballard10/Planner-Calendar-Goal-App/internal/models"
	"github.com/dballard10/Planner-Calendar-Goal-App/internal/store"
)

const (
	colID           = "id"
	colCreatedAt    = "created_at"
	colTitle        = "title"
	colStatus       = "status"
	colAssignedDate = "assigned_date"
	colPosition     = "position"
	colNotes        = "notes"
	colStartDate    = "start_date"
	colEndDate      = "end_date"
	colStartTime    = "start_time"
	colEndTime      = "end_time"
	colLinks        = "links"
	colLocation     = "location"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	tasks  store.Table
	now    func() time.Time
}

func NewTaskService(
	logger zerolog.Logger,
	tasks store.Table,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		tasks:  tasks,
		now:    time.Now,
	}
}

func (s *taskServiceImpl) ListWeekStarts(ctx context.Context) ([]string, error) {
	rows, err := s.tasks.Select(ctx, []string{colAssignedDate})
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select assigned dates")
		return nil, fmt.Errorf("failed to select assigned dates: %w", err)
	}

	weekStarts := map[string]struct{}{
		calendar.FormatISODate(calendar.WeekStart(s.now())): {},
	}
	for _, row := range rows {
		assigned, ok, err := dateFromValue(row[colAssignedDate])
		if err != nil {
			s.logger.Warn().
				Err(err).
				Msg("skipping task with unreadable assigned date")
			continue
		}
		if !ok {
			continue
		}
		weekStarts[calendar.FormatISODate(calendar.WeekStart(assigned))] = struct{}{}
	}

	result := make([]string, 0, len(weekStarts))
	for ws := range weekStarts {
		result = append(result, ws)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(result)))

	s.logger.Debug().
		Int("count", len(result)).
		Msg("listed week starts")
	return result, nil
}

func (s *taskServiceImpl) ListTasksInWeek(ctx context.Context, weekStartISO string) ([]*models.Task, error) {
	weekStart, err := parseDateParam(weekStartISO)
	if err != nil {
		s.logger.Warn().
			Str("week_start", weekStartISO).
			Msg("invalid week start")
		return nil, err
	}
	weekEnd := calendar.WeekEnd(weekStart)

	rows, err := s.tasks.Select(
		ctx,
		nil,
		store.Gte(colAssignedDate, calendar.FormatISODate(weekStart)),
		store.Lte(colAssignedDate, calendar.FormatISODate(weekEnd)),
		store.OrderBy(colAssignedDate, false),
		store.OrderBy(colPosition, false),
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("week_start", weekStartISO).
			Msg("failed to select tasks in week")
		return nil, fmt.Errorf("failed to select tasks in week: %w", err)
	}

	tasks := make([]*models.Task, 0, len(rows))
	for _, row := range rows {
		task, err := taskFromRow(row)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to decode task")
			return nil, err
		}
		tasks = append(tasks, task)
	}

	s.logger.Info().
		Int("count", len(tasks)).
		Str("week_start", weekStartISO).
		Msg("tasks found")
	return tasks, nil
}

func (s *taskServiceImpl) DeleteTasksInWeek(ctx context.Context, weekStartISO string) error {
	weekStart, err := parseDateParam(weekStartISO)
	if err != nil {
		s.logger.Warn().
			Str("week_start", weekStartISO).
			Msg("invalid week start")
		return err
	}
	weekEnd := calendar.WeekEnd(weekStart)

	deleted, err := s.tasks.Delete(
		ctx,
		store.Gte(colAssignedDate, calendar.FormatISODate(weekStart)),
		store.Lte(colAssignedDate, calendar.FormatISODate(weekEnd)),
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("week_start", weekStartISO).
			Msg("failed to delete tasks in week")
		return fmt.Errorf("failed to delete tasks in week: %w", err)
	}

	s.logger.Info().
		Int("affected", len(deleted)).
		Str("week_start", weekStartISO).
		Msg("deleted tasks in week")
	return nil
}

func (s *taskServiceImpl) DeleteTasksOnDay(ctx context.Context, dateISO string) error {
	day, err := parseDateParam(dateISO)
	if err != nil {
		s.logger.Warn().
			Str("date", dateISO).
			Msg("invalid date")
		return err
	}

	deleted, err := s.tasks.Delete(ctx, store.Eq(colAssignedDate, calendar.FormatISODate(day)))
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("date", dateISO).
			Msg("failed to delete tasks on day")
		return fmt.Errorf("failed to delete tasks on day: %w", err)
	}

	s.logger.Info().
		Int("affected", len(deleted)).
		Str("date", dateISO).
		Msg("deleted tasks on day")
	return nil
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, task models.NewTask) (*models.Task, error) {
	status := models.StatusOpen
	if task.Status != nil {
		status = *task.Status
	}
	notes := ""
	if task.Notes != nil {
		notes = *task.Notes
	}

	record := store.Row{
		colTitle:        task.Title,
		colAssignedDate: task.AssignedDate.String(),
		colPosition:     task.Position,
		colStatus:       status,
		colNotes:        notes,
		colLinks:        linksToRecords(task.Links),
	}

	rows, err := s.tasks.Insert(ctx, record)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}
	if len(rows) == 0 {
		s.logger.Error().Msg("insert returned no rows")
		return nil, ErrTaskNotCreated
	}

	created, err := taskFromRow(rows[0])
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to decode created task")
		return nil, err
	}

	s.logger.Info().
		Str("task_id", created.ID).
		Str("assigned_date", created.AssignedDate.String()).
		Msg("created task")
	return created, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, id string, update models.TaskUpdate) (*models.Task, error) {
	fields, err := resolveTaskUpdate(update)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("task_id", id).
			Msg("rejected task update")
		return nil, err
	}

	rows, err := s.tasks.Update(ctx, fields, store.Eq(colID, id))
	if err != nil {
		if errors.Is(err, store.ErrInvalidValue) {
			s.logger.Warn().
				Err(err).
				Str("task_id", id).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}
		if errors.Is(err, store.ErrNullValue) {
			s.logger.Warn().
				Err(err).
				Str("task_id", id).
				Msg("update clears a required column")
			return nil, ErrRequiredFieldNull
		}

		s.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to update task")
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	if len(rows) == 0 {
		s.logger.Warn().
			Str("task_id", id).
			Msg("task not found")
		return nil, ErrTaskNotFound
	}

	updated, err := taskFromRow(rows[0])
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to decode updated task")
		return nil, err
	}

	s.logger.Info().
		Str("task_id", id).
		Int("fields", len(fields)).
		Msg("updated task")
	return updated, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id string) error {
	deleted, err := s.tasks.Delete(ctx, store.Eq(colID, id))
	if err != nil {
		if errors.Is(err, store.ErrInvalidValue) {
			s.logger.Debug().
				Str("task_id", id).
				Msg("malformed task id, nothing to delete")
			return nil
		}

		s.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to delete task")
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Info().
		Str("task_id", id).
		Int("affected", len(deleted)).
		Msg("deleted task")
	return nil
}

func parseDateParam(s string) (time.Time, error) {
	t, err := calendar.ParseISODate(s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
