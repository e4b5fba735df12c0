package services

import (
	"context"
	"errors"

	"github.com/dballard10/Planner-Calendar-Goal-App/internal/models"
)

var (
	ErrInvalidDate       = errors.New("invalid date format, use YYYY-MM-DD")
	ErrNoFieldsToUpdate  = errors.New("no fields to update")
	ErrRequiredFieldNull = errors.New("field cannot be null")
	ErrTaskNotFound      = errors.New("task not found")
	ErrTaskNotCreated    = errors.New("failed to create task")
)

type TaskService interface {
	// ListWeekStarts returns the start date of every week that has at
	// least one task, plus the current week, most recent first.
	ListWeekStarts(ctx context.Context) ([]string, error)

	// ListTasksInWeek returns the tasks assigned to the seven days
	// starting at weekStartISO.
	//
	// It returns ErrInvalidDate if weekStartISO is not a YYYY-MM-DD date.
	ListTasksInWeek(ctx context.Context, weekStartISO string) ([]*models.Task, error)

	// DeleteTasksInWeek deletes the tasks assigned to the seven days
	// starting at weekStartISO.
	//
	// It returns ErrInvalidDate if weekStartISO is not a YYYY-MM-DD date.
	DeleteTasksInWeek(ctx context.Context, weekStartISO string) error

	// DeleteTasksOnDay deletes the tasks assigned to exactly dateISO.
	//
	// It returns ErrInvalidDate if dateISO is not a YYYY-MM-DD date.
	DeleteTasksOnDay(ctx context.Context, dateISO string) error

	// CreateTask stores a new task, filling defaults for the optional
	// fields, and returns it as stored.
	//
	// It returns ErrTaskNotCreated if the store returns no row.
	CreateTask(ctx context.Context, task models.NewTask) (*models.Task, error)

	// UpdateTask applies the fields present in update to the task.
	//
	// It returns ErrNoFieldsToUpdate if update has no fields set and
	// ErrRequiredFieldNull if it clears a column every task must have,
	// both without touching the store. It returns ErrTaskNotFound if no
	// task has the given id.
	UpdateTask(ctx context.Context, id string, update models.TaskUpdate) (*models.Task, error)

	// DeleteTask deletes the task with the given id. Deleting a task
	// that doesn't exist is not an error.
	DeleteTask(ctx context.Context, id string) error
}
