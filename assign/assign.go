// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package assign

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/danielhkuo/sorting-hat/store"
	"github.com/danielhkuo/sorting-hat/teams"
)

// ErrEmptyKey is returned for an empty or whitespace-only identity key.
var ErrEmptyKey = errors.New("identity key is empty")

// ErrUnknownTeam is returned when a stored assignment references a team
// that is no longer in the configured roster. This indicates the roster
// changed after data was written and should fail loudly.
var ErrUnknownTeam = errors.New("stored team is not in the configured roster")

// Storage is the subset of the store the service needs.
type Storage interface {
	FindByKey(ctx context.Context, identityKey string) (*store.Assignment, error)
	Create(ctx context.Context, identityKey, team string) (*store.Assignment, error)
	CountByTeam(ctx context.Context) (map[string]int, error)
}

// Result is the outcome of an assignment request.
type Result struct {
	IdentityKey string
	Team        string
	Color       string
	Emoji       string
	IsNew       bool
}

// Service implements idempotent random team assignment.
type Service struct {
	store Storage
	teams teams.Config
	pick  func(n int) int
}

// NewService builds a Service with a uniform random picker.
func NewService(storage Storage, roster teams.Config) *Service {
	return NewServiceWithPicker(storage, roster, rand.IntN)
}

// NewServiceWithPicker builds a Service with an injected picker; pick(n)
// must return a value in [0, n). Tests use this for deterministic selection.
func NewServiceWithPicker(storage Storage, roster teams.Config, pick func(n int) int) *Service {
	return &Service{store: storage, teams: roster, pick: pick}
}

// Assign returns the existing assignment for the identity key, or creates
// a new one with a uniformly random team. Repeat calls for the same key
// always return the first call's team.
//
// The key is trimmed of surrounding whitespace before any storage access;
// the trimmed value is both the storage key and the echoed identity. Casing
// is preserved, no fuzzy matching.
func (s *Service) Assign(ctx context.Context, identityKey string) (*Result, error) {
	key := strings.TrimSpace(identityKey)
	if key == "" {
		return nil, ErrEmptyKey
	}

	existing, err := s.store.FindByKey(ctx, key)
	if err == nil {
		return s.result(existing, false)
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up assignment: %w", err)
	}

	// First visit: pure chance, never derived from the key
	team := s.teams.At(s.pick(s.teams.Len())).Name

	created, err := s.store.Create(ctx, key, team)
	if err == nil {
		return s.result(created, true)
	}
	if !errors.Is(err, store.ErrConflict) {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	// Lost the first-insert race: the winner's row is the assignment
	winner, err := s.store.FindByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read after conflict: %w", err)
	}
	return s.result(winner, false)
}

// Statistics returns the assignment count for every configured team,
// zero-filled for teams with no rows yet.
func (s *Service) Statistics(ctx context.Context) (map[string]int, error) {
	counts, err := s.store.CountByTeam(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count assignments: %w", err)
	}

	stats := make(map[string]int, s.teams.Len())
	for _, name := range s.teams.Names() {
		stats[name] = counts[name]
	}
	return stats, nil
}

func (s *Service) result(a *store.Assignment, isNew bool) (*Result, error) {
	team, ok := s.teams.ByName(a.Team)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTeam, a.Team)
	}

	return &Result{
		IdentityKey: a.IdentityKey,
		Team:        team.Name,
		Color:       team.Color,
		Emoji:       team.Emoji,
		IsNew:       isNew,
	}, nil
}
