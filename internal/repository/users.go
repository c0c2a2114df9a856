package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mealtrace/mealtrace/gen/ent"
	entorder "github.com/mealtrace/mealtrace/gen/ent/order"
	entuser "github.com/mealtrace/mealtrace/gen/ent/user"
)

type UserRepository interface {
	GetOrCreateByEmail(ctx context.Context, email string) (*ent.User, error)
	CountOrders(ctx context.Context, userID uuid.UUID) (int, error)
}

type userRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUserRepository(client *ent.Client, logger *slog.Logger) UserRepository {
	return &userRepository{
		client: client,
		logger: logger,
	}
}

func (r *userRepository) GetOrCreateByEmail(ctx context.Context, email string) (*ent.User, error) {
	u, err := r.client.User.Query().Where(entuser.Email(email)).Only(ctx)
	if err == nil {
		return u, nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to query user", "email", email, "error", err)
		return nil, err
	}

	u, err = r.client.User.Create().SetEmail(email).Save(ctx)
	if err != nil {
		// Lost a create race; re-read.
		if ent.IsConstraintError(err) {
			return r.client.User.Query().Where(entuser.Email(email)).Only(ctx)
		}
		r.logger.Error("failed to create user", "email", email, "error", err)
		return nil, err
	}
	r.logger.Info("user created", "email", email, "user_id", u.ID)
	return u, nil
}

func (r *userRepository) CountOrders(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := r.client.Order.Query().Where(entorder.UserID(userID)).Count(ctx)
	if err != nil {
		r.logger.Error("failed to count orders", "user_id", userID, "error", err)
		return 0, err
	}
	return n, nil
}
