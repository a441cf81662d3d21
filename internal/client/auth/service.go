// Package auth implements the client-side authentication service: password
// encoding, token issuance and validation, and the register/login flows
// backed by the persistent store.
//
// Flow methods never return errors to the caller; every outcome, expected
// or not, is folded into a Result with a user-facing message.
package auth

import (
	"context"
	"errors"

	"github.com/moonui/moonui/internal/client/models"
	"github.com/moonui/moonui/internal/client/storage"
	"github.com/moonui/moonui/internal/common"
	"github.com/moonui/moonui/internal/logging"
)

// User-facing messages. Login deliberately reports one indistinguishable
// message for unknown-username and wrong-password so the error channel does
// not reveal which field was wrong.
const (
	MsgUsernameExists     = "username already exists, please choose another"
	MsgRegisterOK         = "registration successful"
	MsgRegisterFailed     = "registration failed, please try again later"
	MsgInvalidCredentials = "invalid username or password"
	MsgLoginOK            = "login successful"
)

// LoginCredentials carry a login request.
type LoginCredentials struct {
	Username   string
	Password   string
	RememberMe bool
}

// RegisterCredentials carry a registration request.
type RegisterCredentials struct {
	Username        string
	Password        string
	ConfirmPassword string
	RememberMe      bool
}

// Result is the outcome of a register or login flow. User and Token are set
// only on success.
type Result struct {
	Success bool
	Message string
	User    *models.User
	Token   string
}

// Service provides the authentication flows on top of the persistent store.
type Service struct {
	store *storage.Store
	log   logging.Logger
}

func NewService(store *storage.Store, log logging.Logger) *Service {
	return &Service{store: store, log: log}
}

// Register creates a new account. A username already present in the store is
// rejected; any storage failure is reported with a generic retry message.
func (s *Service) Register(ctx context.Context, creds RegisterCredentials) Result {
	if existing := s.store.UserByUsername(ctx, creds.Username); existing != nil {
		return Result{Success: false, Message: MsgUsernameExists}
	}

	user := models.User{
		ID:           NewUserID(),
		Username:     creds.Username,
		PasswordHash: EncodePassword(creds.Password),
		CreatedAt:    nowFn().UnixMilli(),
	}

	if err := s.store.SaveUser(ctx, user); err != nil {
		if errors.Is(err, common.ErrUsernameExists) {
			// Lost the race against a concurrent registration.
			return Result{Success: false, Message: MsgUsernameExists}
		}
		s.log.Error(ctx, "registration failed", "username", creds.Username, "error", err)
		return Result{Success: false, Message: MsgRegisterFailed}
	}

	token := GenerateToken(user.ID, creds.RememberMe)

	return Result{Success: true, Message: MsgRegisterOK, User: &user, Token: token}
}

// Login verifies the credentials and issues a fresh token on success.
func (s *Service) Login(ctx context.Context, creds LoginCredentials) Result {
	user := s.store.UserByUsername(ctx, creds.Username)
	if user == nil {
		return Result{Success: false, Message: MsgInvalidCredentials}
	}

	if EncodePassword(creds.Password) != user.PasswordHash {
		return Result{Success: false, Message: MsgInvalidCredentials}
	}

	token := GenerateToken(user.ID, creds.RememberMe)

	return Result{Success: true, Message: MsgLoginOK, User: user, Token: token}
}

// ValidateToken decodes and checks the token and resolves its user. It
// returns nil for malformed or expired tokens, and for tokens whose user no
// longer exists in the store.
func (s *Service) ValidateToken(ctx context.Context, token string) *models.User {
	claims, ok := ParseToken(token)
	if !ok {
		s.log.Debug(ctx, "token failed to decode")
		return nil
	}
	if claims.Expired(nowFn()) {
		s.log.Debug(ctx, "token expired", "user", claims.UserID)
		return nil
	}
	return s.store.UserByID(ctx, claims.UserID)
}

// Logout removes the persisted auth state. The user collection stays.
func (s *Service) Logout(ctx context.Context) {
	s.store.ClearAuth(ctx)
}
