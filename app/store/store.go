// Package store provides the journal of applied appearance changes.
package store

import (
	"sync"
	"time"

	"github.com/umputun/appearance/app/enum"
)

// Transition is a single attempt to change the system appearance.
// From is nil for direct sets, where the previous mode was not read.
type Transition struct {
	ID        string      `db:"id" json:"id"`
	From      *enum.Mode  `db:"from_mode" json:"from,omitempty"`
	To        enum.Mode   `db:"to_mode" json:"to"`
	Method    enum.Method `db:"method" json:"method"`
	Error     string      `db:"error" json:"error,omitempty"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
}

// DBType identifies the database engine behind the store.
type DBType int

// supported database engines
const (
	DBTypeSQLite DBType = iota
	DBTypePostgres
)

// RWLocker is the subset of sync.RWMutex used by the store.
type RWLocker interface {
	sync.Locker
	RLock()
	RUnlock()
}

// noopLocker is used for postgres, which handles concurrent writers itself.
type noopLocker struct{}

func (noopLocker) Lock()    {}
func (noopLocker) Unlock()  {}
func (noopLocker) RLock()   {}
func (noopLocker) RUnlock() {}
