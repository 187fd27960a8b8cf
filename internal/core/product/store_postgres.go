// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/skumaster/internal/core/vocabulary"
	"github.com/taibuivan/skumaster/internal/platform/apperr"
	"github.com/taibuivan/skumaster/internal/platform/database/schema"
	"github.com/taibuivan/skumaster/internal/platform/dberr"
	"github.com/taibuivan/skumaster/pkg/uuid"
)

// PostgresRepository implements [Repository] and [vocabulary.ReferenceCounter] using a pgxpool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository returns a fully wired postgres implementation.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// referenceColumns maps each vocabulary to its id column on catalog.product.
var referenceColumns = map[vocabulary.Kind]string{
	vocabulary.KindSeason:    schema.CatalogProduct.SeasonID,
	vocabulary.KindCategory:  schema.CatalogProduct.CategoryID,
	vocabulary.KindType:      schema.CatalogProduct.TypeID,
	vocabulary.KindFabric:    schema.CatalogProduct.FabricID,
	vocabulary.KindColor:     schema.CatalogProduct.ColorID,
	vocabulary.KindStyle:     schema.CatalogProduct.StyleID,
	vocabulary.KindPrintType: schema.CatalogProduct.PrintTypeID,
	vocabulary.KindPlacement: schema.CatalogProduct.PlacementID,
	vocabulary.KindSupplier:  schema.CatalogProduct.SupplierID,
	vocabulary.KindFactory:   schema.CatalogProduct.FactoryID,
	vocabulary.KindSize:      schema.CatalogProduct.SizeID,
}

// destinations lists scan targets in the order of [schema.CatalogProductTable.Columns].
func destinations(product *Product) []any {
	return []any{
		&product.ID, &product.SeasonID, &product.CategoryID, &product.TypeID, &product.DesignNo,
		&product.FabricID, &product.ColorID, &product.StyleID, &product.PrintTypeID,
		&product.PlacementID, &product.SupplierID, &product.FactoryID, &product.SizeID,
		&product.ProductNameAr, &product.ProductNameEn, &product.MasterDesignCode, &product.SKUCode,
		&product.SKUCodedSegmented, &product.SKUCodedCompact, &product.Notes,
		&product.CreatedAt, &product.UpdatedAt,
	}
}

func scanProduct(row pgx.Row) (*Product, error) {
	var product Product
	if err := row.Scan(destinations(&product)...); err != nil {
		return nil, err
	}
	return &product, nil
}

/*
List returns a filtered page of products and the total count.

Description: The total is read with COUNT(*) OVER() in the same statement. The
free text query is matched with ILIKE against the SKU code, the master design
code, the design number and both names.

Parameters:
  - context: context.Context
  - filter: Filter
  - limit: int
  - offset: int

Returns:
  - []*Product: The requested page
  - int: Total count matching the filter
  - error: Database execution errors
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Product, int, error) {
	table := schema.CatalogProduct

	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`SELECT %s, COUNT(*) OVER() AS total_count FROM %s WHERE TRUE`,
		strings.Join(table.Columns(), ", "), table.Table))

	if query := strings.TrimSpace(filter.Query); query != "" {
		queryBuilder.WriteString(fmt.Sprintf(` AND (%s ILIKE $%d OR %s ILIKE $%d OR %s ILIKE $%d OR %s ILIKE $%d OR %s ILIKE $%d)`,
			table.SKUCode, argID, table.MasterDesignCode, argID, table.DesignNo, argID,
			table.ProductNameAr, argID, table.ProductNameEn, argID))
		args = append(args, "%"+escapeLike(query)+"%")
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(` ORDER BY %s DESC, %s DESC LIMIT $%d OFFSET $%d`,
		table.CreatedAt, table.ID, argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_products")
	}
	defer rows.Close()

	var total int
	products := make([]*Product, 0)
	for rows.Next() {
		var product Product
		if err := rows.Scan(append(destinations(&product), &total)...); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_product")
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_products")
	}

	// An empty page past the end carries no window count
	if len(products) == 0 && offset > 0 {
		count, err := repository.countMatching(context, filter)
		if err != nil {
			return nil, 0, err
		}
		total = count
	}

	return products, total, nil
}

func (repository *PostgresRepository) countMatching(context context.Context, filter Filter) (int, error) {
	table := schema.CatalogProduct

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE TRUE`, table.Table)
	var args []any

	if q := strings.TrimSpace(filter.Query); q != "" {
		query += fmt.Sprintf(` AND (%s ILIKE $1 OR %s ILIKE $1 OR %s ILIKE $1 OR %s ILIKE $1 OR %s ILIKE $1)`,
			table.SKUCode, table.MasterDesignCode, table.DesignNo, table.ProductNameAr, table.ProductNameEn)
		args = append(args, "%"+escapeLike(q)+"%")
	}

	var total int
	err := repository.db.QueryRow(context, query, args...).Scan(&total)
	return total, dberr.Wrap(err, "count_products")
}

// All returns every product, newest first.
func (repository *PostgresRepository) All(context context.Context) ([]*Product, error) {
	table := schema.CatalogProduct

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC, %s DESC`,
		strings.Join(table.Columns(), ", "), table.Table, table.CreatedAt, table.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_all_products")
	}
	defer rows.Close()

	products := make([]*Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_product")
		}
		products = append(products, product)
	}

	return products, dberr.Wrap(rows.Err(), "list_all_products")
}

// FindByID fetches a single product by primary key.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Product, error) {
	table := schema.CatalogProduct

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, strings.Join(table.Columns(), ", "), table.Table, table.ID)

	product, err := scanProduct(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_product")
	}
	return product, nil
}

// writableColumns lists every column set by create and update, with its value.
func writableColumns(product *Product) ([]string, []any) {
	table := schema.CatalogProduct

	columns := []string{
		table.SeasonID, table.CategoryID, table.TypeID, table.DesignNo, table.FabricID,
		table.ColorID, table.StyleID, table.PrintTypeID, table.PlacementID, table.SupplierID,
		table.FactoryID, table.SizeID, table.ProductNameAr, table.ProductNameEn,
		table.MasterDesignCode, table.SKUCode, table.SKUCodedSegmented, table.SKUCodedCompact, table.Notes,
	}
	values := []any{
		product.SeasonID, product.CategoryID, product.TypeID, product.DesignNo, product.FabricID,
		product.ColorID, product.StyleID, product.PrintTypeID, product.PlacementID, product.SupplierID,
		product.FactoryID, product.SizeID, product.ProductNameAr, product.ProductNameEn,
		product.MasterDesignCode, product.SKUCode, product.SKUCodedSegmented, product.SKUCodedCompact, product.Notes,
	}

	return columns, values
}

// Create inserts a new product.
func (repository *PostgresRepository) Create(context context.Context, product *Product) error {
	table := schema.CatalogProduct

	if product.ID == "" {
		product.ID = uuid.New()
	}

	columns, values := writableColumns(product)
	columns = append([]string{table.ID}, columns...)
	values = append([]any{product.ID}, values...)

	marks := make([]string, len(columns))
	for i := range marks {
		marks[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s, %s`,
		table.Table, strings.Join(columns, ", "), strings.Join(marks, ", "), table.CreatedAt, table.UpdatedAt)

	err := repository.db.QueryRow(context, query, values...).Scan(&product.CreatedAt, &product.UpdatedAt)
	return dberr.Wrap(err, "create_product")
}

// Update replaces every stored field of a product.
func (repository *PostgresRepository) Update(context context.Context, product *Product) error {
	table := schema.CatalogProduct

	columns, values := writableColumns(product)

	assignments := make([]string, len(columns))
	for i, column := range columns {
		assignments[i] = fmt.Sprintf("%s = $%d", column, i+2)
	}
	assignments = append(assignments, table.UpdatedAt+" = NOW()")

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $1 RETURNING %s, %s`,
		table.Table, strings.Join(assignments, ", "), table.ID, table.CreatedAt, table.UpdatedAt)

	err := repository.db.QueryRow(context, query, append([]any{product.ID}, values...)...).Scan(&product.CreatedAt, &product.UpdatedAt)
	return dberr.Wrap(err, "update_product")
}

// Delete removes a product and reports whether one existed.
func (repository *PostgresRepository) Delete(context context.Context, id string) (bool, error) {
	table := schema.CatalogProduct

	tag, err := repository.db.Exec(context, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table.Table, table.ID), id)
	if err != nil {
		wrapped := dberr.Wrap(err, "delete_product")
		if dberr.IsNotFound(wrapped) {
			return false, nil
		}
		return false, wrapped
	}

	return tag.RowsAffected() > 0, nil
}

// Count returns the number of products.
func (repository *PostgresRepository) Count(context context.Context) (int, error) {
	var total int
	err := repository.db.QueryRow(context, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.CatalogProduct.Table)).Scan(&total)
	return total, dberr.Wrap(err, "count_products")
}

// CountReferences returns how many products reference the given vocabulary row.
func (repository *PostgresRepository) CountReferences(context context.Context, kind vocabulary.Kind, id string) (int, error) {
	column, ok := referenceColumns[kind]
	if !ok {
		return 0, apperr.NotFound("Vocabulary")
	}

	var total int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, schema.CatalogProduct.Table, column)
	err := repository.db.QueryRow(context, query, id).Scan(&total)
	return total, dberr.Wrap(err, "count_product_references")
}

// escapeLike escapes the ILIKE wildcards in user input.
func escapeLike(value string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(value)
}
