package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/qiblatech/minaret/internal/model"
)

// inserts a new admin account, returns the new ID.
func (s *pgStore) CreateAdmin(email, hashedPassword string, name *string) (int, error) {
	query := `
	INSERT INTO admins (email, hashed_password, name, created_at, updated_at)
	VALUES ($1, $2, $3, now(), now())
	RETURNING id;
	`
	var newID int
	err := s.db.QueryRow(query, email, hashedPassword, name).Scan(&newID)
	if err != nil {
		log.Error().Err(err).Msg("failed to create admin")
		return 0, err
	}
	return newID, nil
}

// fetches an admin by email. Returns sql.ErrNoRows when not found.
func (s *pgStore) GetAdminByEmail(email string) (*model.Admin, error) {
	var a model.Admin
	query := `
	SELECT id, email, hashed_password, name, created_at, updated_at
	FROM admins
	WHERE email = $1;
	`
	err := s.db.Get(&a, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Msg("failed to get admin by email")
		return nil, err
	}
	return &a, nil
}

// fetches an admin by ID. Returns sql.ErrNoRows when not found.
func (s *pgStore) GetAdminByID(id int) (*model.Admin, error) {
	var a model.Admin
	query := `
	SELECT id, email, hashed_password, name, created_at, updated_at
	FROM admins
	WHERE id = $1;
	`
	err := s.db.Get(&a, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Msg("failed to get admin by id")
		return nil, err
	}
	return &a, nil
}
