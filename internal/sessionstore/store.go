package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/BruksfildServices01/home-services/internal/domain/user"
)

var (
	ErrCorrupt       = errors.New("sessionstore: corrupt value")
	ErrSchemaVersion = errors.New("sessionstore: unsupported schema version")
)

const (
	keyUsers         = "users"
	keyBookings      = "bookings"
	keyFeedbacks     = "feedbacks"
	keySchemaVersion = "schemaVersion"
	keyCurrentUser   = "currentUser"
	keyDraft         = "bookingDraft"
)

type Store struct {
	kv     KV
	prefix string
	ttl    time.Duration
}

// New builds a store namespaced by prefix. ttl applies to sessions and
// drafts; the state collections never expire.
func New(kv KV, prefix string, ttl time.Duration) *Store {
	return &Store{kv: kv, prefix: prefix, ttl: ttl}
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}

func (s *Store) key(parts ...string) string {
	k := s.prefix
	for _, p := range parts {
		if k == "" {
			k = p
			continue
		}
		k += ":" + p
	}
	return k
}

func (s *Store) Save(ctx context.Context, snap *Snapshot) error {
	if err := s.kv.Set(ctx, s.key(keySchemaVersion), strconv.Itoa(SchemaVersion), 0); err != nil {
		return err
	}

	collections := []struct {
		key   string
		value any
		skip  bool
	}{
		{keyUsers, snap.Users, snap.Users == nil},
		{keyBookings, snap.Bookings, snap.Bookings == nil},
		{keyFeedbacks, snap.Feedbacks, snap.Feedbacks == nil},
	}

	for _, c := range collections {
		if c.skip {
			continue
		}
		raw, err := json.Marshal(c.value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", c.key, err)
		}
		if err := s.kv.Set(ctx, s.key(c.key), string(raw), 0); err != nil {
			return err
		}
	}
	return nil
}

// Load fills snap from the store. Absent collections leave the
// corresponding field untouched.
func (s *Store) Load(ctx context.Context, snap *Snapshot) error {
	version, ok, err := s.kv.Get(ctx, s.key(keySchemaVersion))
	if err != nil {
		return err
	}
	if ok {
		v, convErr := strconv.Atoi(version)
		if convErr != nil {
			return fmt.Errorf("%w: %s", ErrCorrupt, keySchemaVersion)
		}
		if v != SchemaVersion {
			return fmt.Errorf("%w: got %d, want %d", ErrSchemaVersion, v, SchemaVersion)
		}
	}

	if err := s.loadJSON(ctx, keyUsers, &snap.Users); err != nil {
		return err
	}
	if err := s.loadJSON(ctx, keyBookings, &snap.Bookings); err != nil {
		return err
	}
	return s.loadJSON(ctx, keyFeedbacks, &snap.Feedbacks)
}

func (s *Store) loadJSON(ctx context.Context, name string, dst any) error {
	raw, ok, err := s.kv.Get(ctx, s.key(name))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, name, err)
	}
	return nil
}

func (s *Store) SaveSession(ctx context.Context, sess *user.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.key(keyCurrentUser, sess.ID), string(raw), s.ttl)
}

// LoadSession returns nil without error when the session does not exist
// or has expired.
func (s *Store) LoadSession(ctx context.Context, id string) (*user.Session, error) {
	raw, ok, err := s.kv.Get(ctx, s.key(keyCurrentUser, id))
	if err != nil || !ok {
		return nil, err
	}

	var sess user.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, keyCurrentUser, err)
	}
	return &sess, nil
}

// DeleteSession removes the session and anything scoped to it.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	return s.kv.Delete(ctx, s.key(keyCurrentUser, id), s.key(keyDraft, id))
}

func (s *Store) SaveDraft(ctx context.Context, sessionID string, d *Draft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.key(keyDraft, sessionID), string(raw), s.ttl)
}

func (s *Store) LoadDraft(ctx context.Context, sessionID string) (*Draft, error) {
	raw, ok, err := s.kv.Get(ctx, s.key(keyDraft, sessionID))
	if err != nil || !ok {
		return nil, err
	}

	var d Draft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, keyDraft, err)
	}
	return &d, nil
}

func (s *Store) DeleteDraft(ctx context.Context, sessionID string) error {
	return s.kv.Delete(ctx, s.key(keyDraft, sessionID))
}
