// Package clinic implements the domain operations of the clinic backend:
// reads over patients, doctors, reports and appointments, the attendance
// upsert reconciliation, and appointment batch creation.
package clinic

import (
	"context"

	"github.com/clinicdesk/clinic-api/internal/store"
)

// Datastore is the store surface the service needs. *store.Store satisfies
// it; tests substitute an in-memory fake.
type Datastore interface {
	Exec(ctx context.Context, sql string, args ...any) error
	Fetch(ctx context.Context, sql string, args ...any) ([]store.Row, error)
}

// Service exposes the clinic operations over an injected datastore. It holds
// no other state; every operation is synchronous and runs on the caller's
// goroutine.
type Service struct {
	db Datastore
}

// NewService creates a Service backed by the given datastore.
func NewService(db Datastore) *Service {
	return &Service{db: db}
}

// Healthy reports whether the datastore answers a trivial query.
func (s *Service) Healthy(ctx context.Context) error {
	_, err := s.db.Fetch(ctx, "SELECT 1")
	return err
}
