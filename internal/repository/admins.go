package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"linkshortener/internal/domain"
)

func (r *Repository) CreateAdmin(ctx context.Context, admin *domain.Admin) error {
	if _, err := r.admins.InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("failed to insert admin: %w", wrapErr(err))
	}
	return nil
}

func (r *Repository) FindAdminByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	var admin domain.Admin
	err := r.admins.FindOne(ctx, bson.D{{Key: "username", Value: username}}).Decode(&admin)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &admin, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
