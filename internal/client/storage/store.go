// Package storage implements the client's durable key-value store: the user
// collection, the current-user snapshot, the auth token, and the remember-me
// flag, all kept in a local SQLite database.
//
// Reads never fail from the caller's point of view: absent or corrupt data
// degrades to the zero value and the problem is logged. The single write
// path that callers must treat as fatal is SaveUser.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/moonui/moonui/internal/client/models"
	"github.com/moonui/moonui/internal/common"
	"github.com/moonui/moonui/internal/dbx"
	"github.com/moonui/moonui/internal/logging"
)

// Storage keys. The moon_ui_ prefix matches the format written by earlier
// builds of the application.
const (
	keyUsers       = "moon_ui_users"
	keyCurrentUser = "moon_ui_current_user"
	keyAuthToken   = "moon_ui_auth_token"
	keyRememberMe  = "moon_ui_remember_me"
)

type Store struct {
	db  *sql.DB
	log logging.Logger
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log}
}

// SaveUser upserts the user by ID into the user collection. The read-check-
// write sequence runs in one transaction so two concurrent registrations
// cannot both claim a username. A username held by a different ID yields
// common.ErrUsernameExists; any other failure yields common.ErrStorage.
func (s *Store) SaveUser(ctx context.Context, user models.User) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		kv := newKVRepository(tx)

		users := s.decodeUsers(ctx, kv)

		found := false
		for i, u := range users {
			if u.Username == user.Username && u.ID != user.ID {
				return common.ErrUsernameExists
			}
			if u.ID == user.ID {
				users[i] = user
				found = true
			}
		}
		if !found {
			users = append(users, user)
		}

		data, err := json.Marshal(users)
		if err != nil {
			return err
		}
		return kv.set(ctx, keyUsers, data)
	})
	if err != nil {
		if errors.Is(err, common.ErrUsernameExists) {
			return err
		}
		s.log.Error(ctx, "failed to save user", "user", user.ID, "error", err)
		return common.ErrStorage
	}
	return nil
}

// Users returns the stored user collection. Absent or unreadable data
// yields an empty slice.
func (s *Store) Users(ctx context.Context) []models.User {
	return s.decodeUsers(ctx, newKVRepository(s.db))
}

func (s *Store) decodeUsers(ctx context.Context, kv *kvRepository) []models.User {
	data, err := kv.get(ctx, keyUsers)
	if err != nil {
		s.log.Error(ctx, "failed to read user collection", "error", err)
		return []models.User{}
	}
	if data == nil {
		return []models.User{}
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		s.log.Error(ctx, "corrupt user collection, treating as empty", "error", err)
		return []models.User{}
	}
	return users
}

// UserByUsername returns the user with the given username, or nil.
func (s *Store) UserByUsername(ctx context.Context, username string) *models.User {
	for _, u := range s.Users(ctx) {
		if u.Username == username {
			return &u
		}
	}
	return nil
}

// UserByID returns the user with the given ID, or nil.
func (s *Store) UserByID(ctx context.Context, id string) *models.User {
	for _, u := range s.Users(ctx) {
		if u.ID == id {
			return &u
		}
	}
	return nil
}

// SetCurrentUser stores the current-user snapshot; nil removes it.
func (s *Store) SetCurrentUser(ctx context.Context, user *models.User) {
	kv := newKVRepository(s.db)
	if user == nil {
		if err := kv.delete(ctx, keyCurrentUser); err != nil {
			s.log.Error(ctx, "failed to remove current user", "error", err)
		}
		return
	}

	data, err := json.Marshal(user)
	if err != nil {
		s.log.Error(ctx, "failed to encode current user", "error", err)
		return
	}
	if err := kv.set(ctx, keyCurrentUser, data); err != nil {
		s.log.Error(ctx, "failed to save current user", "error", err)
	}
}

// CurrentUser returns the stored current-user snapshot, or nil.
func (s *Store) CurrentUser(ctx context.Context) *models.User {
	data, err := newKVRepository(s.db).get(ctx, keyCurrentUser)
	if err != nil {
		s.log.Error(ctx, "failed to read current user", "error", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		s.log.Error(ctx, "corrupt current user, treating as absent", "error", err)
		return nil
	}
	return &user
}

// SetAuthToken stores the auth token; the empty string removes it.
func (s *Store) SetAuthToken(ctx context.Context, token string) {
	kv := newKVRepository(s.db)
	if token == "" {
		if err := kv.delete(ctx, keyAuthToken); err != nil {
			s.log.Error(ctx, "failed to remove auth token", "error", err)
		}
		return
	}
	if err := kv.set(ctx, keyAuthToken, []byte(token)); err != nil {
		s.log.Error(ctx, "failed to save auth token", "error", err)
	}
}

// AuthToken returns the stored auth token, or "" when absent.
func (s *Store) AuthToken(ctx context.Context) string {
	data, err := newKVRepository(s.db).get(ctx, keyAuthToken)
	if err != nil {
		s.log.Error(ctx, "failed to read auth token", "error", err)
		return ""
	}
	return string(data)
}

// SetRememberMe stores the remember-me flag.
func (s *Store) SetRememberMe(ctx context.Context, remember bool) {
	value := "false"
	if remember {
		value = "true"
	}
	if err := newKVRepository(s.db).set(ctx, keyRememberMe, []byte(value)); err != nil {
		s.log.Error(ctx, "failed to save remember-me flag", "error", err)
	}
}

// RememberMe reports the stored remember-me flag; absent means false.
func (s *Store) RememberMe(ctx context.Context) bool {
	data, err := newKVRepository(s.db).get(ctx, keyRememberMe)
	if err != nil {
		s.log.Error(ctx, "failed to read remember-me flag", "error", err)
		return false
	}
	return string(data) == "true"
}

// ClearAuth removes the current-user snapshot, the auth token, and the
// remember-me flag. The user collection is untouched.
func (s *Store) ClearAuth(ctx context.Context) {
	kv := newKVRepository(s.db)
	for _, key := range []string{keyCurrentUser, keyAuthToken, keyRememberMe} {
		if err := kv.delete(ctx, key); err != nil {
			s.log.Error(ctx, "failed to clear auth key", "key", key, "error", err)
		}
	}
}

// ClearAll removes every key this subsystem owns, including the user
// collection.
func (s *Store) ClearAll(ctx context.Context) {
	kv := newKVRepository(s.db)
	for _, key := range []string{keyUsers, keyCurrentUser, keyAuthToken, keyRememberMe} {
		if err := kv.delete(ctx, key); err != nil {
			s.log.Error(ctx, "failed to clear key", "key", key, "error", err)
		}
	}
}
