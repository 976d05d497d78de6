package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/dquintana/fondapos/internal/adapter/storage"
	"github.com/dquintana/fondapos/internal/core/domain"
	"github.com/dquintana/fondapos/internal/core/port"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		statement := r.db.QueryBuilder.Insert("orders").
			Columns("id", "customer", "description", "total", "status",
				"created_at", "payment_method", "amount_tendered").
			Values(order.ID, order.Customer, order.Description, order.Total,
				order.Status, order.CreatedAt, order.PaymentMethod, order.AmountTendered)

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		return r.insertItems(ctx, tx, order.ID, order.Items)
	})
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return order, nil
}

func (r *Repository) insertItems(ctx context.Context, q querier, orderID uuid.UUID, items []domain.LineItem) error {
	for i, item := range items {
		statement := r.db.QueryBuilder.Insert("order_items").
			Columns("order_id", "product_id", "name", "quantity", "unit_price", "position").
			Values(orderID, item.ProductID, item.Name, item.Quantity, item.UnitPrice, i)

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}
		if _, err = q.Exec(ctx, sql, args...); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	return r.readOrder(ctx, r.db, orderID, false)
}

func (r *Repository) readOrder(ctx context.Context, q querier, orderID uuid.UUID, forUpdate bool) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("id", "customer", "description", "total", "status", "created_at",
			"updated_at", "payment_method", "paid_at", "amount_tendered").
		From("orders").
		Where(sq.Eq{"id": orderID})
	if forUpdate {
		statement = statement.Suffix("FOR UPDATE")
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}

	err = q.QueryRow(ctx, sql, args...).Scan(
		&order.ID,
		&order.Customer,
		&order.Description,
		&order.Total,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.PaymentMethod,
		&order.PaidAt,
		&order.AmountTendered,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	if err := r.loadChildren(ctx, q, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *Repository) loadChildren(ctx context.Context, q querier, order *domain.Order) error {
	statement := r.db.QueryBuilder.
		Select("product_id", "name", "quantity", "unit_price").
		From("order_items").
		Where(sq.Eq{"order_id": order.ID}).
		OrderBy("position")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	order.Items = make([]domain.LineItem, 0)
	for rows.Next() {
		item := domain.LineItem{}
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Quantity, &item.UnitPrice); err != nil {
			return err
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	statement = r.db.QueryBuilder.
		Select("paid_at", "amount", "balance_after").
		From("installments").
		Where(sq.Eq{"order_id": order.ID}).
		OrderBy("id")

	sql, args, err = statement.ToSql()
	if err != nil {
		return err
	}
	rows, err = q.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	order.Installments = make([]domain.Installment, 0)
	for rows.Next() {
		ins := domain.Installment{}
		if err := rows.Scan(&ins.At, &ins.Amount, &ins.BalanceAfter); err != nil {
			return err
		}
		order.Installments = append(order.Installments, ins)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	statement = r.db.QueryBuilder.
		Select("paid_at", "method", "amount_tendered").
		From("payments").
		Where(sq.Eq{"order_id": order.ID}).
		OrderBy("id")

	sql, args, err = statement.ToSql()
	if err != nil {
		return err
	}
	rows, err = q.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	order.Payments = make([]domain.PaymentRecord, 0)
	for rows.Next() {
		p := domain.PaymentRecord{}
		if err := rows.Scan(&p.At, &p.Method, &p.AmountTendered); err != nil {
			return err
		}
		order.Payments = append(order.Payments, p)
	}
	return rows.Err()
}

// UpdateOrder locks the order row, loads the aggregate, applies the
// update closure and writes the result back, all in one transaction.
// Installment and payment histories are append-only: rows present
// before the closure ran are never rewritten.
func (r *Repository) UpdateOrder(ctx context.Context, orderID uuid.UUID,
	updateFn port.UpdateOrderFn) (*domain.Order, error) {
	var order *domain.Order

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		order, err = r.readOrder(ctx, tx, orderID, true)
		if err != nil {
			return err
		}

		prevInstallments := len(order.Installments)
		prevPayments := len(order.Payments)

		if err := updateFn(order); err != nil {
			return err
		}

		statement := r.db.QueryBuilder.Update("orders").
			Set("customer", order.Customer).
			Set("description", order.Description).
			Set("total", order.Total).
			Set("status", order.Status).
			Set("updated_at", order.UpdatedAt).
			Set("payment_method", order.PaymentMethod).
			Set("paid_at", order.PaidAt).
			Set("amount_tendered", order.AmountTendered).
			Where(sq.Eq{"id": orderID})

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		deleteSt := r.db.QueryBuilder.Delete("order_items").Where(sq.Eq{"order_id": orderID})
		sql, args, err = deleteSt.ToSql()
		if err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, sql, args...); err != nil {
			return err
		}
		if err := r.insertItems(ctx, tx, orderID, order.Items); err != nil {
			return err
		}

		for _, ins := range order.Installments[prevInstallments:] {
			insertSt := r.db.QueryBuilder.Insert("installments").
				Columns("order_id", "paid_at", "amount", "balance_after").
				Values(orderID, ins.At, ins.Amount, ins.BalanceAfter)
			sql, args, err = insertSt.ToSql()
			if err != nil {
				return err
			}
			if _, err = tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		}

		for _, p := range order.Payments[prevPayments:] {
			insertSt := r.db.QueryBuilder.Insert("payments").
				Columns("order_id", "paid_at", "method", "amount_tendered").
				Values(orderID, p.At, p.Method, p.AmountTendered)
			sql, args, err = insertSt.ToSql()
			if err != nil {
				return err
			}
			if _, err = tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *Repository) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	statement := r.db.QueryBuilder.Delete("orders").Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (r *Repository) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("id").
		From("orders").
		Where(sq.Eq{"status": status}).
		OrderBy("created_at DESC")

	return r.listOrders(ctx, statement)
}

func (r *Repository) ListPaidOrdersBetween(ctx context.Context, from, to time.Time) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("id").
		From("orders").
		Where(sq.Eq{"status": domain.OrderStatusPaid}).
		Where(sq.GtOrEq{"paid_at": from}).
		Where(sq.Lt{"paid_at": to}).
		OrderBy("paid_at DESC")

	return r.listOrders(ctx, statement)
}

func (r *Repository) listOrders(ctx context.Context, statement sq.SelectBuilder) ([]*domain.Order, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	list := make([]*domain.Order, 0, len(ids))
	for _, id := range ids {
		order, err := r.readOrder(ctx, r.db, id, false)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	return list, nil
}

func (r *Repository) GetProduct(ctx context.Context, productID uuid.UUID) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "category", "price", "stock").
		From("products").
		Where(sq.Eq{"id": productID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	product := domain.Product{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Price,
		&product.Stock,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &product, nil
}

func (r *Repository) UpdateStock(ctx context.Context, productID uuid.UUID, stock int) error {
	statement := r.db.QueryBuilder.Update("products").
		Set("stock", stock).
		Where(sq.Eq{"id": productID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (r *Repository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	statement := r.db.QueryBuilder.Insert("products").
		Columns("id", "name", "category", "price", "stock").
		Values(product.ID, product.Name, product.Category, product.Price, product.Stock)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return product, nil
}

func (r *Repository) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "category", "price", "stock").
		From("products").
		OrderBy("name")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Product, 0)
	for rows.Next() {
		product := domain.Product{}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Category,
			&product.Price,
			&product.Stock,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}
