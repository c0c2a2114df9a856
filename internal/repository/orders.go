package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mealtrace/mealtrace/gen/ent"
	entdish "github.com/mealtrace/mealtrace/gen/ent/dish"
	entorder "github.com/mealtrace/mealtrace/gen/ent/order"
	"github.com/mealtrace/mealtrace/internal/entity"
)

// CreateOrderRequest wraps everything needed to persist one parsed order.
type CreateOrderRequest struct {
	UserID     uuid.UUID
	MessageID  string
	RawSubject string
	Candidate  entity.CandidateOrder
	Dishes     []entity.Dish // calorie-resolved, quantity-weighted totals
}

type OrderRepository interface {
	ExistsByMessageID(ctx context.Context, messageID string) (bool, error)
	CreateWithDishes(ctx context.Context, request *CreateOrderRequest) (*entity.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Order, error)
}

type orderRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewOrderRepository(client *ent.Client, logger *slog.Logger) OrderRepository {
	return &orderRepository{
		client: client,
		logger: logger,
	}
}

func (r *orderRepository) ExistsByMessageID(ctx context.Context, messageID string) (bool, error) {
	exists, err := r.client.Order.Query().Where(entorder.MessageID(messageID)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check message id", "message_id", messageID, "error", err)
		return false, err
	}
	return exists, nil
}

func (r *orderRepository) CreateWithDishes(ctx context.Context, request *CreateOrderRequest) (*entity.Order, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		r.logger.Error("failed to open transaction", "error", err)
		return nil, err
	}

	// Total is the sum over dishes with a known calorie value; it stays
	// null only when no dish resolved at all.
	var totalCalories *float64
	hasEstimates := false
	var sum float64
	anyResolved := false
	for _, d := range request.Dishes {
		if d.IsEstimated {
			hasEstimates = true
		}
		if d.Calories == nil {
			continue
		}
		sum += *d.Calories
		anyResolved = true
	}
	if anyResolved {
		totalCalories = &sum
	}

	create := tx.Order.Create().
		SetUserID(request.UserID).
		SetMessageID(request.MessageID).
		SetRestaurantName(request.Candidate.RestaurantName).
		SetOrderedAt(request.Candidate.OrderedAt).
		SetHasEstimates(hasEstimates).
		SetRawSubject(request.RawSubject)
	if request.Candidate.TotalPrice != nil {
		create = create.SetTotalPrice(*request.Candidate.TotalPrice)
	}
	if totalCalories != nil {
		create = create.SetTotalCalories(*totalCalories)
	}

	row, err := create.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to create order", "message_id", request.MessageID, "error", err)
		return nil, err
	}

	out := &entity.Order{
		ID:             row.ID,
		UserID:         request.UserID,
		MessageID:      request.MessageID,
		OrderedAt:      request.Candidate.OrderedAt,
		RestaurantName: request.Candidate.RestaurantName,
		TotalCalories:  totalCalories,
		TotalPrice:     request.Candidate.TotalPrice,
		HasEstimates:   hasEstimates,
		RawSubject:     request.RawSubject,
		CreatedAt:      row.CreatedAt,
	}

	for _, d := range request.Dishes {
		dishCreate := tx.Dish.Create().
			SetOrderID(row.ID).
			SetName(d.Name).
			SetQuantity(d.Quantity).
			SetIsEstimated(d.IsEstimated)
		if d.UnitPrice != nil {
			dishCreate = dishCreate.SetUnitPrice(*d.UnitPrice)
		}
		if d.Calories != nil {
			dishCreate = dishCreate.SetCalories(*d.Calories)
		}
		dishRow, err := dishCreate.Save(ctx)
		if err != nil {
			_ = tx.Rollback()
			r.logger.Error("failed to create dish", "order_id", row.ID, "dish", d.Name, "error", err)
			return nil, err
		}
		d.ID = dishRow.ID
		d.OrderID = row.ID
		out.Dishes = append(out.Dishes, d)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("failed to commit order", "message_id", request.MessageID, "error", err)
		return nil, err
	}

	r.logger.Info("order stored",
		"order_id", row.ID,
		"restaurant", request.Candidate.RestaurantName,
		"dishes", len(request.Dishes),
	)
	return out, nil
}

func (r *orderRepository) ListOrders(ctx context.Context, userID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Order, error) {
	q := r.client.Order.Query().Where(entorder.UserID(userID))
	if fromDate != nil {
		q = q.Where(entorder.OrderedAtGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(entorder.OrderedAtLTE(*toDate))
	}
	rows, err := q.
		WithDishes(func(dq *ent.DishQuery) { dq.Order(entdish.ByCreatedAt()) }).
		Order(entorder.ByOrderedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list orders", "user_id", userID, "error", err)
		return nil, err
	}

	result := make([]*entity.Order, len(rows))
	for i, row := range rows {
		result[i] = toOrder(row)
	}
	return result, nil
}

func toOrder(row *ent.Order) *entity.Order {
	out := &entity.Order{
		ID:             row.ID,
		UserID:         row.UserID,
		MessageID:      row.MessageID,
		OrderedAt:      row.OrderedAt,
		RestaurantName: row.RestaurantName,
		TotalCalories:  row.TotalCalories,
		TotalPrice:     row.TotalPrice,
		HasEstimates:   row.HasEstimates,
		RawSubject:     row.RawSubject,
		CreatedAt:      row.CreatedAt,
	}
	for _, d := range row.Edges.Dishes {
		out.Dishes = append(out.Dishes, entity.Dish{
			ID:          d.ID,
			OrderID:     row.ID,
			Name:        d.Name,
			Quantity:    d.Quantity,
			UnitPrice:   d.UnitPrice,
			Calories:    d.Calories,
			IsEstimated: d.IsEstimated,
		})
	}
	return out
}
