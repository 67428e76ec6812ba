package database

import "github.com/inovacc/cvehunt/internal/model"

// Store defines the history operations used by the app.
type Store interface {
	SaveClone(clone *model.Clone) error
	ListClones() ([]model.Clone, error)
	Close() error
}
