package user

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	Search(ctx context.Context, search string, limit int) ([]model.UserDirectoryItem, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO user (name, email, phone, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`
	getUserBase     = `SELECT id, name, email, phone, password_hash, created_at, updated_at FROM user WHERE 1=1`
	searchUserBase  = `SELECT id, name, email FROM user`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	now := time.Now().UTC()
	result, err := s.conn.ExecContext(ctx, insertUserQuery, data.Name, data.Email, data.Phone, data.PasswordHash, now)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	data.CreatedAt = now
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.Phone != "" {
		query += " AND phone = ?"
		args = append(args, filter.Phone)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// Search matches name or email case-insensitively; an empty search lists everyone up to limit.
func (s *SQL) Search(ctx context.Context, search string, limit int) ([]model.UserDirectoryItem, error) {
	query := searchUserBase
	args := make([]any, 0, 3)
	if search != "" {
		pattern := "%" + search + "%"
		query += " WHERE LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)"
		args = append(args, pattern, pattern)
	}
	query += " ORDER BY id LIMIT ?"
	args = append(args, limit)

	users := make([]model.UserDirectoryItem, 0)
	if err := s.conn.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, err
	}
	return users, nil
}
