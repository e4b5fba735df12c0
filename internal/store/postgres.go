package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// PostgresTable implements Table on top of a pgx pool. Identifiers are
// sanitized and every value is sent as a query parameter.
type PostgresTable struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
	name   string
}

var _ Table = (*PostgresTable)(nil)

func NewPostgresTable(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
	name string,
) *PostgresTable {
	return &PostgresTable{
		logger: logger.With().Str("table", name).Logger(),
		pgPool: pgPool,
		name:   name,
	}
}

func (t *PostgresTable) Select(ctx context.Context, columns []string, opts ...Option) ([]Row, error) {
	sql, args := buildSelect(t.name, columns, buildQuery(opts))
	return t.query(ctx, "select", sql, args)
}

func (t *PostgresTable) Insert(ctx context.Context, record Row) ([]Row, error) {
	sql, args := buildInsert(t.name, record)
	return t.query(ctx, "insert", sql, args)
}

func (t *PostgresTable) Update(ctx context.Context, fields Row, opts ...Option) ([]Row, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	q := buildQuery(opts)
	if len(q.filters) == 0 {
		return nil, ErrUnfiltered
	}
	sql, args := buildUpdate(t.name, fields, q)
	return t.query(ctx, "update", sql, args)
}

func (t *PostgresTable) Delete(ctx context.Context, opts ...Option) ([]Row, error) {
	q := buildQuery(opts)
	if len(q.filters) == 0 {
		return nil, ErrUnfiltered
	}
	sql, args := buildDelete(t.name, q)
	return t.query(ctx, "delete", sql, args)
}

func (t *PostgresTable) query(ctx context.Context, op, sql string, args []any) ([]Row, error) {
	rows, err := t.pgPool.Query(ctx, sql, args...)
	if err != nil {
		t.logger.Error().
			Err(err).
			Str("op", op).
			Msg("failed to execute query")
		return nil, mapPgError(err)
	}

	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		t.logger.Error().
			Err(err).
			Str("op", op).
			Msg("failed to collect rows")
		return nil, mapPgError(err)
	}

	result := make([]Row, len(maps))
	for i, m := range maps {
		result[i] = normalizeRow(m)
	}
	t.logger.Debug().
		Str("op", op).
		Int("rows", len(result)).
		Msg("executed query")
	return result, nil
}

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.InvalidTextRepresentation,
			pgerrcode.InvalidDatetimeFormat,
			pgerrcode.DatetimeFieldOverflow:
			return fmt.Errorf("%w: %s", ErrInvalidValue, pgErr.Message)
		case pgerrcode.NotNullViolation:
			return fmt.Errorf("%w: %s", ErrNullValue, pgErr.ColumnName)
		}
	}
	return err
}

// normalizeRow turns driver-specific values into plain ones.
func normalizeRow(m map[string]any) Row {
	row := make(Row, len(m))
	for k, v := range m {
		if b, ok := v.([16]byte); ok {
			v = uuid.UUID(b).String()
		}
		row[k] = v
	}
	return row
}

func buildSelect(table string, columns []string, q query) (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(columnList(columns))
	sb.WriteString(" FROM ")
	sb.WriteString(ident(table))

	args := writeWhere(&sb, q.filters, nil)
	writeOrderBy(&sb, q.orders)
	return sb.String(), args
}

func buildInsert(table string, record Row) (string, []any) {
	columns := sortedKeys(record)
	args := make([]any, 0, len(columns))
	placeholders := make([]string, 0, len(columns))
	for _, c := range columns {
		args = append(args, record[c])
		placeholders = append(placeholders, "$"+strconv.Itoa(len(args)))
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(ident(table))
	if len(columns) == 0 {
		sb.WriteString(" DEFAULT VALUES")
	} else {
		sb.WriteString(" (")
		sb.WriteString(columnList(columns))
		sb.WriteString(") VALUES (")
		sb.WriteString(strings.Join(placeholders, ", "))
		sb.WriteString(")")
	}
	sb.WriteString(" RETURNING *")
	return sb.String(), args
}

func buildUpdate(table string, fields Row, q query) (string, []any) {
	columns := sortedKeys(fields)
	args := make([]any, 0, len(columns)+len(q.filters))
	sets := make([]string, 0, len(columns))
	for _, c := range columns {
		args = append(args, fields[c])
		sets = append(sets, ident(c)+" = $"+strconv.Itoa(len(args)))
	}

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(ident(table))
	sb.WriteString(" SET ")
	sb.WriteString(strings.Join(sets, ", "))
	args = writeWhere(&sb, q.filters, args)
	sb.WriteString(" RETURNING *")
	return sb.String(), args
}

func buildDelete(table string, q query) (string, []any) {
	var sb strings.Builder
	sb.WriteString("DELETE FROM ")
	sb.WriteString(ident(table))
	args := writeWhere(&sb, q.filters, nil)
	sb.WriteString(" RETURNING *")
	return sb.String(), args
}

func writeWhere(sb *strings.Builder, filters []Filter, args []any) []any {
	for i, f := range filters {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		args = append(args, f.Value)
		sb.WriteString(ident(f.Column))
		sb.WriteString(" ")
		sb.WriteString(string(f.Op))
		sb.WriteString(" $")
		sb.WriteString(strconv.Itoa(len(args)))
	}
	return args
}

func writeOrderBy(sb *strings.Builder, orders []Order) {
	for i, o := range orders {
		if i == 0 {
			sb.WriteString(" ORDER BY ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(ident(o.Column))
		if o.Desc {
			sb.WriteString(" DESC")
		}
	}
}

func columnList(columns []string) string {
	if len(columns) == 0 {
		return "*"
	}
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = ident(c)
	}
	return strings.Join(quoted, ", ")
}

func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func sortedKeys(r Row) []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
