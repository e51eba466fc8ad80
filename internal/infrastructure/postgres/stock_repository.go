package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pizzacloud/restocker/internal/domain/entity"
	"github.com/pizzacloud/restocker/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL.
// Esquema: stock(store_id, item_name, quantity) con PK (store_id, item_name);
// items(name) lista el catálogo; stores(store_id) las tiendas activas.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Quantity lee la cantidad de un ingrediente en una tienda. exists distingue
// "fila ausente" de "cantidad cero": el barrido periódico omite las ausentes.
func (r *StockRepo) Quantity(ctx context.Context, storeID uuid.UUID, itemName string) (int, bool, error) {
	query := `SELECT quantity FROM stock WHERE store_id = $1 AND item_name = $2`
	var quantity int
	err := r.q.QueryRow(ctx, query, storeID, itemName).Scan(&quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("get quantity: %w", err)
	}
	return quantity, true, nil
}

// ListByStore lee todas las filas de stock de una tienda.
func (r *StockRepo) ListByStore(ctx context.Context, storeID uuid.UUID) ([]entity.StockRow, error) {
	query := `SELECT item_name, quantity FROM stock WHERE store_id = $1`
	rows, err := r.q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("select stock: %w", err)
	}
	defer rows.Close()

	var out []entity.StockRow
	for rows.Next() {
		var row entity.StockRow
		if err := rows.Scan(&row.ItemName, &row.Quantity); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stock rows: %w", err)
	}
	return out, nil
}

// SetQuantity escribe la cantidad de un ingrediente en una tienda (upsert).
func (r *StockRepo) SetQuantity(ctx context.Context, storeID uuid.UUID, itemName string, quantity int) error {
	query := `
		INSERT INTO stock (store_id, item_name, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (store_id, item_name)
		DO UPDATE SET quantity = EXCLUDED.quantity`
	if _, err := r.q.Exec(ctx, query, storeID, itemName, quantity); err != nil {
		return fmt.Errorf("set quantity: %w", err)
	}
	return nil
}

// ListItems lee el catálogo de ingredientes persistido.
func (r *StockRepo) ListItems(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT name FROM items`)
	if err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}
	defer rows.Close()

	var items []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}
