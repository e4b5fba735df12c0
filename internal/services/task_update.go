package services

import (
	"fmt"

	"github.com/dballard10/Planner-Calendar-Goal-App/internal/models"
	"github.com/dballard10/Planner-Calendar-Goal-App/internal/store"
)

// resolveTaskUpdate turns the fields present in the update into column
// writes. Unset fields are skipped and null fields are written as nil.
// Columns that a persisted task always carries cannot be set to null.
func resolveTaskUpdate(upd models.TaskUpdate) (store.Row, error) {
	required := []struct {
		column string
		null   bool
	}{
		{colTitle, upd.Title.IsNull()},
		{colStatus, upd.Status.IsNull()},
		{colPosition, upd.Position.IsNull()},
		{colAssignedDate, upd.AssignedDate.IsNull()},
	}
	for _, r := range required {
		if r.null {
			return nil, fmt.Errorf("%w: %s", ErrRequiredFieldNull, r.column)
		}
	}

	row := store.Row{}

	putField(row, colTitle, upd.Title)
	putField(row, colStatus, upd.Status)
	putField(row, colNotes, upd.Notes)
	putDate(row, colStartDate, upd.StartDate)
	putDate(row, colEndDate, upd.EndDate)
	putField(row, colStartTime, upd.StartTime)
	putField(row, colEndTime, upd.EndTime)
	putLinks(row, upd.Links)
	putLocation(row, upd.Location)
	putField(row, colPosition, upd.Position)
	putDate(row, colAssignedDate, upd.AssignedDate)

	if len(row) == 0 {
		return nil, ErrNoFieldsToUpdate
	}
	return row, nil
}

func putField[T any](row store.Row, column string, f models.Field[T]) {
	if !f.IsSet() {
		return
	}
	v, ok := f.Get()
	if !ok {
		row[column] = nil
		return
	}
	row[column] = v
}

func putDate(row store.Row, column string, f models.Field[models.Date]) {
	if !f.IsSet() {
		return
	}
	d, ok := f.Get()
	if !ok {
		row[column] = nil
		return
	}
	row[column] = d.String()
}

func putLinks(row store.Row, f models.Field[[]models.Link]) {
	if !f.IsSet() {
		return
	}
	links, ok := f.Get()
	if !ok {
		row[colLinks] = nil
		return
	}
	row[colLinks] = linksToRecords(links)
}

func putLocation(row store.Row, f models.Field[models.Location]) {
	if !f.IsSet() {
		return
	}
	loc, ok := f.Get()
	if !ok {
		row[colLocation] = nil
		return
	}
	row[colLocation] = loc.Map()
}

func linksToRecords(links []models.Link) []map[string]any {
	records := make([]map[string]any, len(links))
	for i, l := range links {
		records[i] = l
	}
	return records
}
