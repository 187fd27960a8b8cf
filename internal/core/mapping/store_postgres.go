// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mapping

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

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

func scanToken(row pgx.Row) (*Token, error) {
	var token Token
	err := row.Scan(
		&token.ID, &token.Token, &token.NumericCode, &token.DescriptionAr,
		&token.DescriptionEn, &token.CreatedAt, &token.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

/*
List retrieves every token.

Description: Ids are UUIDv7, so ordering by id is creation order. The decoder
relies on this order to pick the first token of a shared numeric code.

Returns:
  - []*Token: Collection of tokens
  - error: Database execution or scanning errors
*/
func (repository *PostgresRepository) List(context context.Context) ([]*Token, error) {
	table := schema.CatalogMappingToken

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		strings.Join(table.Columns(), ", "), table.Table, table.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_mapping_tokens")
	}
	defer rows.Close()

	tokens := make([]*Token, 0)
	for rows.Next() {
		token, err := scanToken(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_mapping_token")
		}
		tokens = append(tokens, token)
	}

	return tokens, dberr.Wrap(rows.Err(), "list_mapping_tokens")
}

// FindByID fetches a single token by primary key.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Token, error) {
	table := schema.CatalogMappingToken

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(table.Columns(), ", "), table.Table, table.ID)

	token, err := scanToken(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_mapping_token")
	}
	return token, nil
}

// Create inserts a new token.
func (repository *PostgresRepository) Create(context context.Context, token *Token) error {
	table := schema.CatalogMappingToken

	if token.ID == "" {
		token.ID = uuid.New()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s`,
		table.Table,
		table.ID, table.Token, table.NumericCode, table.DescriptionAr, table.DescriptionEn,
		table.CreatedAt, table.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		token.ID, token.Token, token.NumericCode, token.DescriptionAr, token.DescriptionEn,
	).Scan(&token.CreatedAt, &token.UpdatedAt)

	return dberr.Wrap(err, "create_mapping_token")
}

// Update replaces the editable fields of a token.
func (repository *PostgresRepository) Update(context context.Context, token *Token) error {
	table := schema.CatalogMappingToken

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s`,
		table.Table,
		table.Token, table.NumericCode, table.DescriptionAr, table.DescriptionEn, table.UpdatedAt,
		table.ID,
		table.CreatedAt, table.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		token.ID, token.Token, token.NumericCode, token.DescriptionAr, token.DescriptionEn,
	).Scan(&token.CreatedAt, &token.UpdatedAt)

	return dberr.Wrap(err, "update_mapping_token")
}

// Delete removes a token and reports whether one existed.
func (repository *PostgresRepository) Delete(context context.Context, id string) (bool, error) {
	table := schema.CatalogMappingToken

	tag, err := repository.db.Exec(context, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table.Table, table.ID), id)
	if err != nil {
		wrapped := dberr.Wrap(err, "delete_mapping_token")
		if dberr.IsNotFound(wrapped) {
			return false, nil
		}
		return false, wrapped
	}

	return tag.RowsAffected() > 0, nil
}

// Count returns the number of tokens.
func (repository *PostgresRepository) Count(context context.Context) (int, error) {
	table := schema.CatalogMappingToken

	var total int
	err := repository.db.QueryRow(context, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table.Table)).Scan(&total)
	return total, dberr.Wrap(err, "count_mapping_tokens")
}
