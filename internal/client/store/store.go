// Package store implements the session-scoped entity store: the single
// source of truth for a user's vehicles, service records, expenses,
// insurance policies and documents.
//
// A Store is constructed on login, loaded once via Initialize, and torn down
// by Logout. Every mutation re-persists the affected collection through the
// storage adapter. Mutations are serialized by one mutex; no two
// read-modify-write cycles interleave even if callers run concurrently.
//
// Mutations invoked with no active user are silent no-ops. The calling UI is
// expected to gate that path; the checks here are defensive only.
package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/xid"

	"github.com/mygaadi/mygaadi/internal/client/models"
	"github.com/mygaadi/mygaadi/internal/client/storage"
	"github.com/mygaadi/mygaadi/internal/common"
	"github.com/mygaadi/mygaadi/internal/logging"
)

type Store struct {
	mu      sync.Mutex
	adapter storage.Adapter
	log     logging.Logger

	userID string
	ready  bool

	profile   models.Profile
	vehicles  []models.Vehicle
	services  []models.ServiceRecord
	expenses  []models.Expense
	policies  []models.InsurancePolicy
	documents []models.Document

	// test seams
	newID func() string
	now   func() time.Time
}

func New(adapter storage.Adapter, log logging.Logger) *Store {
	return &Store{
		adapter: adapter,
		log:     log.With("component", "store"),
		newID:   func() string { return xid.New().String() },
		now:     time.Now,
	}
}

// Initialize loads all collections for userID from the backing store. On a
// first-ever login the profile is seeded from the email local-part and
// persisted immediately. No mutation is valid before Initialize returns.
func (s *Store) Initialize(ctx context.Context, userID, email string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.userID = userID
	s.vehicles = storage.LoadOr(ctx, s.adapter, userID, common.KeyVehicles, []models.Vehicle{}, s.log)
	s.services = storage.LoadOr(ctx, s.adapter, userID, common.KeyServiceRecords, []models.ServiceRecord{}, s.log)
	s.expenses = storage.LoadOr(ctx, s.adapter, userID, common.KeyExpenses, []models.Expense{}, s.log)
	s.policies = storage.LoadOr(ctx, s.adapter, userID, common.KeyInsurancePolicies, []models.InsurancePolicy{}, s.log)
	s.documents = storage.LoadOr(ctx, s.adapter, userID, common.KeyDocuments, []models.Document{}, s.log)

	seeded := models.Profile{Name: emailLocalPart(email)}
	switch _, err := s.adapter.Load(ctx, userID, common.KeyProfile); {
	case err == nil:
		s.profile = storage.LoadOr(ctx, s.adapter, userID, common.KeyProfile, seeded, s.log)
	case errors.Is(err, common.ErrNotFound):
		// first login for this user: seed and persist right away
		s.profile = seeded
		_ = storage.SaveJSON(ctx, s.adapter, userID, common.KeyProfile, s.profile, s.log)
	default:
		// transient read failure: use the default for this session only,
		// never write it over the stored profile
		s.log.Warn(ctx, "profile read failed, using default without persisting", "err", err)
		s.profile = seeded
	}

	s.ready = true
	s.log.Info(ctx, "store initialized",
		"user", userID,
		"vehicles", len(s.vehicles),
		"serviceRecords", len(s.services),
		"expenses", len(s.expenses),
		"insurancePolicies", len(s.policies),
		"documents", len(s.documents))
	return nil
}

func emailLocalPart(email string) string {
	local := strings.SplitN(email, "@", 2)[0]
	if local == "" {
		return "User"
	}
	return local
}

// authed reports whether mutations are currently valid. Callers hold s.mu.
func (s *Store) authed(ctx context.Context) bool {
	if !s.ready || s.userID == "" {
		s.log.Warn(ctx, "mutation ignored: no active user")
		return false
	}
	return true
}

// UserID returns the active user id, or "" when no session is loaded.
func (s *Store) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// Ready reports whether Initialize has completed for this session.
func (s *Store) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

func (s *Store) Profile() models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// UpdateProfile merges the patch into the profile and persists it.
func (s *Store) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authed(ctx) {
		return models.Profile{}, nil
	}

	patch.Apply(&s.profile)
	_ = storage.SaveJSON(ctx, s.adapter, s.userID, common.KeyProfile, s.profile, s.log)
	return s.profile, nil
}

// ClearAllData empties the five entity collections in memory and removes
// their persisted snapshots. Profile and user identity are untouched;
// distinguish from Logout.
func (s *Store) ClearAllData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authed(ctx) {
		return nil
	}

	s.vehicles = []models.Vehicle{}
	s.services = []models.ServiceRecord{}
	s.expenses = []models.Expense{}
	s.policies = []models.InsurancePolicy{}
	s.documents = []models.Document{}

	if err := s.adapter.DeleteKeys(ctx, s.userID, common.EntityKeys); err != nil {
		s.log.Error(ctx, "clearing persisted collections failed", "err", err)
	}
	return nil
}

// Logout clears the five collections plus profile and identity, in memory
// and in the backing store, and marks the store unusable for further
// mutations.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userID == "" {
		return nil
	}

	keys := append([]string{}, common.EntityKeys...)
	keys = append(keys, common.KeyProfile)
	if err := s.adapter.DeleteKeys(ctx, s.userID, keys); err != nil {
		s.log.Error(ctx, "clearing persisted session failed", "err", err)
	}

	s.vehicles = nil
	s.services = nil
	s.expenses = nil
	s.policies = nil
	s.documents = nil
	s.profile = models.Profile{}
	s.userID = ""
	s.ready = false
	return nil
}
