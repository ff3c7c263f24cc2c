package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"groomstation/internal/db"
)

type PostgresOwnerRepository struct {
	DB *sql.DB
}

func NewPostgresOwnerRepository(db *sql.DB) *PostgresOwnerRepository {
	return &PostgresOwnerRepository{DB: db}
}

func (r *PostgresOwnerRepository) GetOwnerByEmail(email string) (*db.Owner, error) {
	var o db.Owner
	err := r.DB.QueryRow(
		`SELECT id, email, name, password_hash FROM owners WHERE email = $1`, email,
	).Scan(&o.ID, &o.Email, &o.Name, &o.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error querying owner by email: %w", err)
	}
	return &o, nil
}

func (r *PostgresOwnerRepository) CreateOwner(o *db.Owner) error {
	_, err := r.DB.Exec(
		`INSERT INTO owners (id, email, name, password_hash) VALUES ($1, $2, $3, $4)`,
		o.ID, o.Email, o.Name, o.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("error inserting owner: %w", err)
	}
	return nil
}
