// exposes a Store interface that is passed to API handlers
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/qiblatech/minaret/internal/model"
)

type Store interface {
	// admin account functions
	CreateAdmin(email, hashedPassword string, name *string) (int, error)
	GetAdminByEmail(email string) (*model.Admin, error)
	GetAdminByID(id int) (*model.Admin, error)

	// mosque directory functions
	UpsertMosques(mosques []model.Mosque) error
	ListMosques() ([]model.Mosque, error)
	GetMosqueByID(id int) (*model.Mosque, error)
	UpdateJamatTimes(id int, times model.JamatTimes, lastUpdated string) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(database *sqlx.DB) Store {
	if database == nil {
		database = DB
	}
	return &pgStore{db: database}
}
