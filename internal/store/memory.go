package store

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryTable is an in-process Table. It fills "id" and "created_at" on
// insert the way the database defaults do.
type MemoryTable struct {
	mu   sync.RWMutex
	rows []Row
	now  func() time.Time
}

var _ Table = (*MemoryTable)(nil)

func NewMemoryTable() *MemoryTable {
	return &MemoryTable{now: time.Now}
}

func (t *MemoryTable) Select(ctx context.Context, columns []string, opts ...Option) ([]Row, error) {
	_ = ctx
	q := buildQuery(opts)

	t.mu.RLock()
	defer t.mu.RUnlock()

	matched := make([]Row, 0)
	for _, r := range t.rows {
		if matches(r, q.filters) {
			matched = append(matched, r)
		}
	}
	sortRows(matched, q.orders)

	out := make([]Row, len(matched))
	for i, r := range matched {
		out[i] = project(r, columns)
	}
	return out, nil
}

func (t *MemoryTable) Insert(ctx context.Context, record Row) ([]Row, error) {
	_ = ctx

	r := copyRow(record)
	if _, ok := r["id"]; !ok {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, err
		}
		r["id"] = id.String()
	}
	if _, ok := r["created_at"]; !ok {
		r["created_at"] = t.now().UTC()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.rows = append(t.rows, r)
	return []Row{copyRow(r)}, nil
}

func (t *MemoryTable) Update(ctx context.Context, fields Row, opts ...Option) ([]Row, error) {
	_ = ctx
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	q := buildQuery(opts)
	if len(q.filters) == 0 {
		return nil, ErrUnfiltered
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Row, 0)
	for _, r := range t.rows {
		if !matches(r, q.filters) {
			continue
		}
		for k, v := range fields {
			r[k] = v
		}
		out = append(out, copyRow(r))
	}
	return out, nil
}

func (t *MemoryTable) Delete(ctx context.Context, opts ...Option) ([]Row, error) {
	_ = ctx
	q := buildQuery(opts)
	if len(q.filters) == 0 {
		return nil, ErrUnfiltered
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.rows[:0]
	out := make([]Row, 0)
	for _, r := range t.rows {
		if matches(r, q.filters) {
			out = append(out, r)
			continue
		}
		kept = append(kept, r)
	}
	for i := len(kept); i < len(t.rows); i++ {
		t.rows[i] = nil
	}
	t.rows = kept
	return out, nil
}

// Len returns the number of stored rows.
func (t *MemoryTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

func matches(r Row, filters []Filter) bool {
	for _, f := range filters {
		v, ok := r[f.Column]
		if !ok || v == nil || f.Value == nil {
			return false
		}

		cmp, ok := compare(v, f.Value)
		if !ok {
			if f.Op == OpEq && reflect.DeepEqual(v, f.Value) {
				continue
			}
			return false
		}

		switch f.Op {
		case OpEq:
			if cmp != 0 {
				return false
			}
		case OpGte:
			if cmp < 0 {
				return false
			}
		case OpLte:
			if cmp > 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// compare orders two values of the same kind; ok is false when they are
// not comparable.
func compare(a, b any) (int, bool) {
	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(x, y), true
	case time.Time:
		y, ok := b.(time.Time)
		if !ok {
			return 0, false
		}
		return x.Compare(y), true
	}

	x, ok := number(a)
	if !ok {
		return 0, false
	}
	y, ok := number(b)
	if !ok {
		return 0, false
	}
	switch {
	case x < y:
		return -1, true
	case x > y:
		return 1, true
	}
	return 0, true
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func sortRows(rows []Row, orders []Order) {
	if len(orders) == 0 {
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		for _, o := range orders {
			cmp, ok := compare(rows[i][o.Column], rows[j][o.Column])
			if !ok || cmp == 0 {
				continue
			}
			if o.Desc {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

func project(r Row, columns []string) Row {
	if len(columns) == 0 {
		return copyRow(r)
	}
	out := make(Row, len(columns))
	for _, c := range columns {
		if v, ok := r[c]; ok {
			out[c] = v
		}
	}
	return out
}

func copyRow(r Row) Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
