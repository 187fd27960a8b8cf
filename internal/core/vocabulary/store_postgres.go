// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/skumaster/internal/platform/apperr"
	"github.com/taibuivan/skumaster/internal/platform/database/schema"
	"github.com/taibuivan/skumaster/internal/platform/dberr"
	"github.com/taibuivan/skumaster/pkg/uuid"
)

// PostgresRepository implements [Repository] using a pgxpool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository returns a fully wired postgres implementation.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Query Helpers

// selectColumns lists the columns read for a kind, including its optional extras.
func selectColumns(kind Kind) string {
	table := schema.CatalogAttribute(kind.Table())
	columns := table.Columns()

	switch kind {
	case KindColor:
		columns = append(columns, table.HexValue)
	case KindType:
		columns = append(columns, table.CategoryID)
	}

	return strings.Join(columns, ", ")
}

// scanAttribute hydrates a row produced by [selectColumns].
func scanAttribute(row pgx.Row, kind Kind) (*Attribute, error) {
	attribute := &Attribute{Kind: kind}
	destination := []any{
		&attribute.ID, &attribute.Code, &attribute.NameAr, &attribute.NameEn,
		&attribute.NumericCode, &attribute.CreatedAt, &attribute.UpdatedAt,
	}

	switch kind {
	case KindColor:
		destination = append(destination, &attribute.HexValue)
	case KindType:
		destination = append(destination, &attribute.CategoryID)
	}

	if err := row.Scan(destination...); err != nil {
		return nil, err
	}
	return attribute, nil
}

/*
List retrieves every row of a vocabulary.

Description: Rows are ordered by numeric code so that listings mirror allocation order.

Parameters:
  - context: context.Context
  - kind: Kind

Returns:
  - []*Attribute: Collection of rows
  - error: Database execution or scanning errors
*/
func (repository *PostgresRepository) List(context context.Context, kind Kind) ([]*Attribute, error) {
	table := schema.CatalogAttribute(kind.Table())

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`, selectColumns(kind), table.Table, table.NumericCode)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_"+kind.Table())
	}
	defer rows.Close()

	attributes := make([]*Attribute, 0)
	for rows.Next() {
		attribute, err := scanAttribute(rows, kind)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_"+kind.Table())
		}
		attributes = append(attributes, attribute)
	}

	return attributes, dberr.Wrap(rows.Err(), "list_"+kind.Table())
}

// FindByID fetches a single row by primary key.
func (repository *PostgresRepository) FindByID(context context.Context, kind Kind, id string) (*Attribute, error) {
	table := schema.CatalogAttribute(kind.Table())

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, selectColumns(kind), table.Table, table.ID)

	attribute, err := scanAttribute(repository.db.QueryRow(context, query, id), kind)
	if err != nil {
		return nil, dberr.Wrap(err, "get_"+kind.Table())
	}
	return attribute, nil
}

// FindByCode fetches a single row by its unique human code.
func (repository *PostgresRepository) FindByCode(context context.Context, kind Kind, code string) (*Attribute, error) {
	table := schema.CatalogAttribute(kind.Table())

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, selectColumns(kind), table.Table, table.Code)

	attribute, err := scanAttribute(repository.db.QueryRow(context, query, code), kind)
	if err != nil {
		return nil, dberr.Wrap(err, "get_"+kind.Table()+"_by_code")
	}
	return attribute, nil
}

/*
Create allocates the next numeric code and inserts the row in one transaction.

Description: The kind's sequence row is locked with SELECT ... FOR UPDATE, which
serializes concurrent creations of the same kind. The next code is one above both
the high-water mark and the current table maximum. The high-water mark is advanced
in the same transaction, so a rollback (capacity, duplicate code) releases nothing.

Parameters:
  - context: context.Context
  - attribute: *Attribute

Returns:
  - error: apperr.CapacityExceeded, conflict on duplicate code, or storage errors
*/
func (repository *PostgresRepository) Create(context context.Context, attribute *Attribute) error {
	table := schema.CatalogAttribute(attribute.Kind.Table())
	sequence := schema.CatalogNumericCodeSequence

	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_"+attribute.Kind.Table())
	}
	defer func() { _ = tx.Rollback(context) }()

	// 1. Lock the high-water mark for this kind
	lockQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 FOR UPDATE`, sequence.LastValue, sequence.Table, sequence.Kind)

	var lastValue int
	if err := tx.QueryRow(context, lockQuery, string(attribute.Kind)).Scan(&lastValue); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.Internal(fmt.Errorf("numeric code sequence missing for %s", attribute.Kind))
		}
		return dberr.Wrap(err, "lock_sequence_"+attribute.Kind.Table())
	}

	// 2. Read the current maximum, visible now that the lock is held
	maxQuery := fmt.Sprintf(`SELECT COALESCE(MAX(%s), 0) FROM %s`, table.NumericCode, table.Table)

	var currentMax int
	if err := tx.QueryRow(context, maxQuery).Scan(&currentMax); err != nil {
		return dberr.Wrap(err, "max_numeric_code_"+attribute.Kind.Table())
	}

	next, err := NextNumericCode(attribute.Kind, lastValue, currentMax)
	if err != nil {
		return err
	}

	// 3. Advance the high-water mark
	advanceQuery := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		sequence.Table, sequence.LastValue, sequence.UpdatedAt, sequence.Kind)

	if _, err := tx.Exec(context, advanceQuery, string(attribute.Kind), next); err != nil {
		return dberr.Wrap(err, "advance_sequence_"+attribute.Kind.Table())
	}

	// 4. Insert the row with the allocated code
	if attribute.ID == "" {
		attribute.ID = uuid.New()
	}
	attribute.NumericCode = next

	columns := []string{table.ID, table.Code, table.NameAr, table.NameEn, table.NumericCode}
	args := []any{attribute.ID, attribute.Code, attribute.NameAr, attribute.NameEn, attribute.NumericCode}

	switch attribute.Kind {
	case KindColor:
		columns = append(columns, table.HexValue)
		args = append(args, attribute.HexValue)
	case KindType:
		columns = append(columns, table.CategoryID)
		args = append(args, attribute.CategoryID)
	}

	insertQuery := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s, %s`,
		table.Table, strings.Join(columns, ", "), placeholders(len(columns)), table.CreatedAt, table.UpdatedAt)

	if err := tx.QueryRow(context, insertQuery, args...).Scan(&attribute.CreatedAt, &attribute.UpdatedAt); err != nil {
		return dberr.Wrap(err, "insert_"+attribute.Kind.Table())
	}

	return dberr.Wrap(tx.Commit(context), "commit_create_"+attribute.Kind.Table())
}

/*
Update replaces the editable fields of a row.

Description: The numeric code column is not part of the statement, so it is
preserved and echoed back through RETURNING.

Parameters:
  - context: context.Context
  - attribute: *Attribute (ID and Kind identify the row)

Returns:
  - error: ErrNotFound, conflict on duplicate code, or storage errors
*/
func (repository *PostgresRepository) Update(context context.Context, attribute *Attribute) error {
	table := schema.CatalogAttribute(attribute.Kind.Table())

	assignments := []string{
		fmt.Sprintf("%s = $2", table.Code),
		fmt.Sprintf("%s = $3", table.NameAr),
		fmt.Sprintf("%s = $4", table.NameEn),
	}
	args := []any{attribute.ID, attribute.Code, attribute.NameAr, attribute.NameEn}

	switch attribute.Kind {
	case KindColor:
		assignments = append(assignments, fmt.Sprintf("%s = $5", table.HexValue))
		args = append(args, attribute.HexValue)
	case KindType:
		assignments = append(assignments, fmt.Sprintf("%s = $5", table.CategoryID))
		args = append(args, attribute.CategoryID)
	}
	assignments = append(assignments, table.UpdatedAt+" = NOW()")

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $1 RETURNING %s, %s, %s`,
		table.Table, strings.Join(assignments, ", "), table.ID, table.NumericCode, table.CreatedAt, table.UpdatedAt)

	err := repository.db.QueryRow(context, query, args...).Scan(&attribute.NumericCode, &attribute.CreatedAt, &attribute.UpdatedAt)
	return dberr.Wrap(err, "update_"+attribute.Kind.Table())
}

// Delete removes a row and reports whether one existed. The sequence is left untouched.
func (repository *PostgresRepository) Delete(context context.Context, kind Kind, id string) (bool, error) {
	table := schema.CatalogAttribute(kind.Table())

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table.Table, table.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		if dberr.IsNotFound(dberr.Wrap(err, "delete_"+kind.Table())) {
			return false, nil
		}
		return false, dberr.Wrap(err, "delete_"+kind.Table())
	}

	return tag.RowsAffected() > 0, nil
}

// Count returns the number of rows in a vocabulary.
func (repository *PostgresRepository) Count(context context.Context, kind Kind) (int, error) {
	table := schema.CatalogAttribute(kind.Table())

	var total int
	err := repository.db.QueryRow(context, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table.Table)).Scan(&total)
	return total, dberr.Wrap(err, "count_"+kind.Table())
}

// placeholders renders "$1, $2, ..., $n".
func placeholders(n int) string {
	marks := make([]string, n)
	for i := range marks {
		marks[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(marks, ", ")
}
