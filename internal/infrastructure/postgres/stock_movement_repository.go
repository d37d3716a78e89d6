package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/medstock/medstock-api/internal/domain/entity"
	"github.com/medstock/medstock-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del log append-only sobre PostgreSQL.
// Las escrituras ocurren dentro de la transacción del ajuste (TxRunner);
// las lecturas agregan el log para la analítica de consumo.
type StockMovementRepo struct {
	q Querier
}

func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create inserta un movimiento. Nunca se actualiza ni borra.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements
			(id, record_id, item_id, stock_area_id, type, quantity, reason, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.RecordID, movement.ItemID, movement.StockAreaID,
		movement.Type, movement.Quantity, movement.Reason, movement.CreatedAt, movement.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// GetItemUsage agrega el consumo (deltas negativos, en valor absoluto) por
// artículo de la empresa desde `since`.
func (r *StockMovementRepo) GetItemUsage(ctx context.Context, companyID string, since time.Time) ([]repository.ItemUsage, error) {
	query := `
		SELECT m.item_id, COALESCE(SUM(-m.quantity), 0), COUNT(*)
		FROM stock_movements m
		JOIN stock_areas sa ON sa.id = m.stock_area_id
		JOIN sites s ON s.id = sa.site_id
		WHERE s.company_id = $1 AND m.created_at >= $2 AND m.quantity < 0
		GROUP BY m.item_id`
	rows, err := r.q.Query(ctx, query, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("item usage: %w", err)
	}
	defer rows.Close()

	var out []repository.ItemUsage
	for rows.Next() {
		var u repository.ItemUsage
		if err := rows.Scan(&u.ItemID, &u.TotalDispensed, &u.MovementCount); err != nil {
			return nil, fmt.Errorf("scan item usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// GetDailyNetChange agrega el delta neto diario de la empresa desde `since`,
// ordenado por día ascendente.
func (r *StockMovementRepo) GetDailyNetChange(ctx context.Context, companyID string, since time.Time) ([]repository.DailyNetChange, error) {
	query := `
		SELECT date_trunc('day', m.created_at), COALESCE(SUM(m.quantity), 0), COUNT(*)
		FROM stock_movements m
		JOIN stock_areas sa ON sa.id = m.stock_area_id
		JOIN sites s ON s.id = sa.site_id
		WHERE s.company_id = $1 AND m.created_at >= $2
		GROUP BY 1
		ORDER BY 1 ASC`
	rows, err := r.q.Query(ctx, query, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("daily net change: %w", err)
	}
	defer rows.Close()

	var out []repository.DailyNetChange
	for rows.Next() {
		var c repository.DailyNetChange
		if err := rows.Scan(&c.Day, &c.NetChange, &c.MovementCount); err != nil {
			return nil, fmt.Errorf("scan daily net change: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListRecent devuelve los últimos movimientos de la empresa unidos con
// artículo y ubicación, más reciente primero.
func (r *StockMovementRepo) ListRecent(ctx context.Context, companyID string, since time.Time, limit int) ([]repository.MovementDetail, error) {
	query := `
		SELECT m.id, m.record_id, m.item_id, m.stock_area_id, m.type, m.quantity,
		       m.reason, m.created_at, m.created_by,
		       i.name, sa.name, s.name
		FROM stock_movements m
		JOIN items i ON i.id = m.item_id
		JOIN stock_areas sa ON sa.id = m.stock_area_id
		JOIN sites s ON s.id = sa.site_id
		WHERE s.company_id = $1 AND m.created_at >= $2
		ORDER BY m.created_at DESC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, companyID, since, limit)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var out []repository.MovementDetail
	for rows.Next() {
		var d repository.MovementDetail
		err := rows.Scan(
			&d.Movement.ID, &d.Movement.RecordID, &d.Movement.ItemID, &d.Movement.StockAreaID,
			&d.Movement.Type, &d.Movement.Quantity, &d.Movement.Reason,
			&d.Movement.CreatedAt, &d.Movement.CreatedBy,
			&d.ItemName, &d.StockAreaName, &d.SiteName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
