package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
	"github.com/dento-health/dento-portal/backend/internal/domain/repositories"
	"github.com/dento-health/dento-portal/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/dento-health/dento-portal/backend/pkg/errors"
)

// UserAdapter implements UserRepository
type UserAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewUserAdapter creates a new user adapter
func NewUserAdapter(client *postgres.Client) repositories.UserRepository {
	return &UserAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var userColumns = []interface{}{
	"id", "username", "password", "full_name", "email", "phone", "user_type", "created_at",
}

// Create creates a new user
func (a *UserAdapter) Create(ctx context.Context, user *entities.User) error {
	record := goqu.Record{
		"id":         user.ID,
		"username":   user.Username,
		"password":   user.Password,
		"full_name":  user.FullName,
		"email":      sql.NullString{String: user.Email, Valid: user.Email != ""},
		"phone":      sql.NullString{String: user.Phone, Valid: user.Phone != ""},
		"user_type":  string(user.UserType),
		"created_at": user.CreatedAt,
	}

	query, args, err := a.db.Insert("users").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create user", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (a *UserAdapter) GetByID(ctx context.Context, id string) (*entities.User, error) {
	return a.getByField(ctx, "id", id)
}

// GetByUsername retrieves a user by username
func (a *UserAdapter) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	return a.getByField(ctx, "username", username)
}

func (a *UserAdapter) getByField(ctx context.Context, field, value string) (*entities.User, error) {
	query, args, err := a.db.Select(userColumns...).
		From("users").
		Where(goqu.Ex{field: value}).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	user := &entities.User{}
	var email, phone sql.NullString
	var userType string

	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.FullName,
		&email,
		&phone,
		&userType,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user with %s %s not found", field, value))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get user", err)
	}

	user.Email = email.String
	user.Phone = phone.String
	user.UserType = entities.UserType(userType)

	return user, nil
}

// Update updates a user
func (a *UserAdapter) Update(ctx context.Context, user *entities.User) error {
	record := goqu.Record{
		"username":  user.Username,
		"full_name": user.FullName,
		"email":     sql.NullString{String: user.Email, Valid: user.Email != ""},
		"phone":     sql.NullString{String: user.Phone, Valid: user.Phone != ""},
		"user_type": string(user.UserType),
	}
	if user.Password != "" {
		record["password"] = user.Password
	}

	query, args, err := a.db.Update("users").
		Set(record).
		Where(goqu.Ex{"id": user.ID}).
		ToSQL()

	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update user", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("user with id %s not found", user.ID))
	}

	return nil
}

// Delete deletes a user
func (a *UserAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("users").
		Where(goqu.Ex{"id": id}).
		ToSQL()

	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete user", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("user with id %s not found", id))
	}

	return nil
}

// List retrieves all users
func (a *UserAdapter) List(ctx context.Context) ([]*entities.User, error) {
	query, args, err := a.db.Select(userColumns...).
		From("users").
		Order(goqu.I("created_at").Desc()).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list users", err)
	}
	defer rows.Close()

	var users []*entities.User
	for rows.Next() {
		user := &entities.User{}
		var email, phone sql.NullString
		var userType string

		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Password,
			&user.FullName,
			&email,
			&phone,
			&userType,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan user", err)
		}

		user.Email = email.String
		user.Phone = phone.String
		user.UserType = entities.UserType(userType)

		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating users", err)
	}

	return users, nil
}
