package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/qiblatech/minaret/internal/model"
)

// UpsertMosques writes a freshly loaded directory into the mosques table.
// Records keep their sheet ids so reloads are stable.
func (s *pgStore) UpsertMosques(mosques []model.Mosque) error {
	query := `
	INSERT INTO mosques
	(id, name, address, latitude, longitude, jamat_times, capacity, facilities, last_updated, refreshed_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
	ON CONFLICT (id) DO UPDATE SET
	name = EXCLUDED.name,
	address = EXCLUDED.address,
	latitude = EXCLUDED.latitude,
	longitude = EXCLUDED.longitude,
	jamat_times = EXCLUDED.jamat_times,
	capacity = EXCLUDED.capacity,
	facilities = EXCLUDED.facilities,
	last_updated = EXCLUDED.last_updated,
	refreshed_at = now();
	`
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	for _, m := range mosques {
		if _, err := tx.Exec(query,
			m.ID, m.Name, m.Address, m.Latitude, m.Longitude,
			m.JamatTimes, m.Capacity, m.Facilities, m.LastUpdated,
		); err != nil {
			log.Error().Err(err).Int("mosque", m.ID).Msg("failed to upsert mosque")
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// ListMosques returns every stored mosque in id order.
func (s *pgStore) ListMosques() ([]model.Mosque, error) {
	var mosques []model.Mosque
	query := `
	SELECT id, name, address, latitude, longitude, jamat_times, capacity, facilities, last_updated
	FROM mosques
	ORDER BY id;
	`
	if err := s.db.Select(&mosques, query); err != nil {
		log.Error().Err(err).Msg("failed to list mosques")
		return nil, err
	}
	return mosques, nil
}

// GetMosqueByID fetches one mosque. Returns sql.ErrNoRows when not found.
func (s *pgStore) GetMosqueByID(id int) (*model.Mosque, error) {
	var m model.Mosque
	query := `
	SELECT id, name, address, latitude, longitude, jamat_times, capacity, facilities, last_updated
	FROM mosques
	WHERE id = $1;
	`
	err := s.db.Get(&m, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Msg("failed to get mosque by id")
		return nil, err
	}
	return &m, nil
}

// UpdateJamatTimes replaces a mosque's jamat times (admin correction path).
func (s *pgStore) UpdateJamatTimes(id int, times model.JamatTimes, lastUpdated string) error {
	query := `
	UPDATE mosques
	SET jamat_times = $2,
	last_updated = $3,
	refreshed_at = now()
	WHERE id = $1;
	`
	res, err := s.db.Exec(query, id, times, lastUpdated)
	if err != nil {
		log.Error().Err(err).Msg("failed to update jamat times")
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("no such mosque")
	}
	return nil
}
