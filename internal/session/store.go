// Package session holds the client's active identity and its cached remote
// profile.
//
// A Store is constructed once at startup, bootstrapped before first use and
// cleared on explicit logout. Transitions are serialized by a mutex; results
// of overlapping calls follow last-write-wins.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"greenmason/internal/models"
)

var (
	ErrInvalidName = errors.New("name must not be empty")
	ErrAnonymous   = errors.New("no identity claimed")
)

type State int

const (
	Uninitialized State = iota
	Loading
	Anonymous
	Identified
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Loading:
		return "loading"
	case Anonymous:
		return "anonymous"
	case Identified:
		return "identified"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Identity is the normalized username and the label it was typed as.
type Identity struct {
	Username    string
	DisplayName string
}

// NormalizeName trims raw, lowercases it and joins whitespace runs with "_".
// "  Jane   Doe " becomes {jane_doe, Jane   Doe}.
func NormalizeName(raw string) (Identity, error) {
	display := strings.TrimSpace(raw)
	if display == "" {
		return Identity{}, ErrInvalidName
	}
	return Identity{
		Username:    strings.ToLower(strings.Join(strings.Fields(display), "_")),
		DisplayName: display,
	}, nil
}

// Remote is the part of the GreenMason API the store talks to.
type Remote interface {
	CreateUser(ctx context.Context, username, displayName string) (*models.User, error)
	GetUser(ctx context.Context, username string) (*models.User, error)
	LogScore(ctx context.Context, action models.ScoreAction) (*models.ScoreResult, error)
}

// Snapshot is a copy of the store's state. Identity is nil unless Identified;
// Profile is nil until the first successful fetch.
type Snapshot struct {
	State    State
	Identity *Identity
	Profile  *models.User
}

type Store struct {
	remote  Remote
	durable Durable
	logger  *zap.Logger
	now     func() time.Time

	mu       sync.Mutex
	state    State
	identity *Identity
	profile  *models.User
	subs     map[int]func(Snapshot)
	nextSub  int

	pending sync.WaitGroup
}

func NewStore(remote Remote, durable Durable, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		remote:  remote,
		durable: durable,
		logger:  logger,
		now:     time.Now,
		subs:    map[int]func(Snapshot){},
	}
}

// Bootstrap loads the persisted identity. With one, the store becomes
// Identified at once and the profile is fetched in the background; without
// one it becomes Anonymous. Calls after the first are no-ops.
func (s *Store) Bootstrap(ctx context.Context) {
	s.mu.Lock()
	if s.state != Uninitialized {
		s.mu.Unlock()
		return
	}
	s.state = Loading
	s.mu.Unlock()
	s.notify()

	username, err := s.durable.Get(KeyUsername)
	if err != nil {
		s.logger.Warn("Bootstrap(): could not read stored identity", zap.Error(err))
		username = ""
	}
	if username == "" {
		s.transition(Anonymous, nil, nil)
		return
	}

	display, err := s.durable.Get(KeyDisplayName)
	if err != nil || display == "" {
		display = username
	}
	ident := Identity{Username: username, DisplayName: display}
	s.transition(Identified, &ident, nil)

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		user, err := s.remote.GetUser(ctx, ident.Username)
		if err != nil {
			s.logger.Debug("Bootstrap(): profile fetch failed", zap.String("username", ident.Username), zap.Error(err))
			return
		}
		s.applyProfile(ident, user)
	}()
}

// Wait blocks until background profile fetches have settled.
func (s *Store) Wait() {
	s.pending.Wait()
}

// ClaimIdentity persists rawName as the active identity and resolves its
// profile: register, then fetch the existing record, then fall back to a
// zero-valued local profile. Network failures never surface; only an empty
// name is rejected.
func (s *Store) ClaimIdentity(ctx context.Context, rawName string) (Identity, error) {
	ident, err := NormalizeName(rawName)
	if err != nil {
		return Identity{}, err
	}

	if err := s.durable.Set(KeyUsername, ident.Username); err != nil {
		s.logger.Warn("ClaimIdentity(): could not persist username", zap.Error(err))
	}
	if err := s.durable.Set(KeyDisplayName, ident.DisplayName); err != nil {
		s.logger.Warn("ClaimIdentity(): could not persist display name", zap.Error(err))
	}

	s.transition(Identified, &ident, nil)

	user, err := s.remote.CreateUser(ctx, ident.Username, ident.DisplayName)
	if err != nil {
		s.logger.Debug("ClaimIdentity(): register failed, fetching existing", zap.String("username", ident.Username), zap.Error(err))
		user, err = s.remote.GetUser(ctx, ident.Username)
	}
	if err != nil {
		s.logger.Info("ClaimIdentity(): remote unavailable, using local profile", zap.String("username", ident.Username), zap.Error(err))
		now := s.now().UTC()
		user = &models.User{
			Username:    ident.Username,
			DisplayName: ident.DisplayName,
			CreatedAt:   now,
			LastActive:  now,
		}
	}
	s.applyProfile(ident, user)
	return ident, nil
}

// Refresh re-fetches the profile and replaces it wholesale. It does nothing
// when no identity is active; a failed fetch keeps the cached profile.
func (s *Store) Refresh(ctx context.Context) {
	s.mu.Lock()
	if s.state != Identified || s.identity == nil {
		s.mu.Unlock()
		return
	}
	ident := *s.identity
	s.mu.Unlock()

	user, err := s.remote.GetUser(ctx, ident.Username)
	if err != nil {
		s.logger.Debug("Refresh(): keeping cached profile", zap.String("username", ident.Username), zap.Error(err))
		return
	}
	s.applyProfile(ident, user)
}

// RecordAction posts a score event for the active identity and refreshes the
// profile on success.
func (s *Store) RecordAction(ctx context.Context, action string, points int, description string) (*models.ScoreResult, error) {
	s.mu.Lock()
	if s.state != Identified || s.identity == nil {
		s.mu.Unlock()
		return nil, ErrAnonymous
	}
	username := s.identity.Username
	s.mu.Unlock()

	res, err := s.remote.LogScore(ctx, models.ScoreAction{
		Username:    username,
		Action:      action,
		Points:      points,
		Description: description,
	})
	if err != nil {
		return nil, fmt.Errorf("record %s action: %w", action, err)
	}
	s.Refresh(ctx)
	return res, nil
}

// Clear erases the durable identity and returns to Anonymous. The in-memory
// reset happens even when erasing fails.
func (s *Store) Clear() error {
	err := errors.Join(
		s.durable.Delete(KeyUsername),
		s.durable.Delete(KeyDisplayName),
	)
	s.transition(Anonymous, nil, nil)
	return err
}

// Subscribe registers fn to receive a snapshot after every transition and
// returns a function that removes it.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{State: s.state}
	if s.identity != nil {
		ident := *s.identity
		snap.Identity = &ident
	}
	if s.profile != nil {
		snap.Profile = copyUser(s.profile)
	}
	return snap
}

func (s *Store) transition(state State, ident *Identity, profile *models.User) {
	s.mu.Lock()
	s.state = state
	s.identity = ident
	s.profile = profile
	s.mu.Unlock()
	s.notify()
}

// applyProfile stores user only if ident is still the active identity.
func (s *Store) applyProfile(ident Identity, user *models.User) {
	s.mu.Lock()
	if s.state != Identified || s.identity == nil || s.identity.Username != ident.Username {
		s.mu.Unlock()
		s.logger.Debug("applyProfile(): identity changed, dropping result", zap.String("username", ident.Username))
		return
	}
	s.profile = copyUser(user)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) notify() {
	s.mu.Lock()
	snap := s.snapshotLocked()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

func copyUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Rank != nil {
		r := *u.Rank
		c.Rank = &r
	}
	return &c
}
