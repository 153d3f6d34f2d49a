package queries

import (
	"context"
	"time"

	"eshop/internal/core/domain/model/kernel"
	"eshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order read models from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve orders with their line items.
// Results are sorted newest first; orders placed in the same instant are
// disambiguated by ID for stable output.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.user_id,
			o.address,
			o.status,
			o.created_at,
			i.product_id,
			i.quantity,
			i.unit_price
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
	`
	args := make([]any, 0, 1)
	if userID, scoped := query.ForUser(); scoped {
		sql += ` WHERE o.user_id = ?`
		args = append(args, userID.Bytes())
	}
	sql += ` ORDER BY o.created_at DESC, o.id, i.product_id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	index := make(map[kernel.UUID]int)

	for rows.Next() {
		var id, userID, productID uuid.UUID
		var address, status string
		var createdAt time.Time
		var quantity int
		var unitPrice decimal.Decimal

		err = rows.Scan(
			&id,
			&userID,
			&address,
			&status,
			&createdAt,
			&productID,
			&quantity,
			&unitPrice,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		pos, seen := index[orderID]
		if !seen {
			ownerID, idErr := kernel.UUIDFromBytes(userID[:])
			if idErr != nil {
				return nil, idErr
			}

			orderStatus, statusErr := order.StatusFromString(status)
			if statusErr != nil {
				return nil, statusErr
			}

			orders = append(orders, GetOrdersQueryResponse{
				ID:          orderID,
				UserID:      ownerID,
				Address:     address,
				Status:      orderStatus,
				CreatedAt:   createdAt,
				TotalAmount: decimal.Zero,
				Items:       make([]GetOrdersQueryResponseItem, 0, 1),
			})
			pos = len(orders) - 1
			index[orderID] = pos
		}

		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		orders[pos].Items = append(orders[pos].Items, GetOrdersQueryResponseItem{
			ProductID: itemProductID,
			Quantity:  quantity,
			UnitPrice: unitPrice,
		})
		orders[pos].TotalAmount = orders[pos].TotalAmount.
			Add(unitPrice.Mul(decimal.NewFromInt(int64(quantity))))
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
