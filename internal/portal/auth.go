package portal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/neximprove/portal/internal/common"
	"github.com/neximprove/portal/internal/kvstore"
	"github.com/neximprove/portal/internal/models"
)

// RegisterData are the inputs to RegisterUser. The caller (UI) is expected
// to have validated that all three are non-empty.
type RegisterData struct {
	FullName string
	Email    string
	Password string
}

// checkEmailFree reports common.ErrDuplicateEmail when the email is taken.
// Email comparison is a case-sensitive exact match.
func checkEmailFree(users []models.User, email string) error {
	for _, u := range users {
		if u.Email == email {
			return fmt.Errorf("%s: %w", email, common.ErrDuplicateEmail)
		}
	}
	return nil
}

// matchCredentials returns the user with the given email and password, or
// an error wrapping common.ErrInvalidCredentials. Both fields are compared
// exactly.
func matchCredentials(users []models.User, email, password string) (*models.User, error) {
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("%s: %w", email, common.ErrInvalidCredentials)
}

// userIndex locates a user by id, or returns an error wrapping
// common.ErrNotFound.
func userIndex(users []models.User, id string) (int, error) {
	for i := range users {
		if users[i].ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("user %s: %w", id, common.ErrNotFound)
}

// RegisterUser appends a new user unless the email is already taken.
func (s *Service) RegisterUser(ctx context.Context, data RegisterData) Result {
	users, err := s.readUsers(ctx)
	if err != nil {
		s.log.Error(ctx, "register failed", "error", err)
		return failure("Registration failed. Please try again.")
	}

	if err := checkEmailFree(users, data.Email); err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return failure("Email already registered")
		}
		s.log.Error(ctx, "register failed", "error", err)
		return failure("Registration failed. Please try again.")
	}

	now := nowFn()
	users = append(users, models.User{
		ID:        strconv.FormatInt(now.UnixNano(), 10),
		FullName:  data.FullName,
		Email:     data.Email,
		Password:  data.Password,
		CreatedAt: now.UTC().Format(time.RFC3339),
	})

	if err := s.writeUsers(ctx, users); err != nil {
		s.log.Error(ctx, "register failed", "error", err)
		return failure("Registration failed. Please try again.")
	}

	return success("Account created successfully!")
}

// LoginUser matches email and password exactly against the stored users and
// persists a fresh session on success. Any previous session is overwritten
// wholesale.
func (s *Service) LoginUser(ctx context.Context, email, password string) LoginResult {
	users, err := s.readUsers(ctx)
	if err != nil {
		s.log.Error(ctx, "login failed", "error", err)
		return LoginResult{Result: failure("Login failed. Please try again.")}
	}

	match, err := matchCredentials(users, email, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			return LoginResult{Result: failure("Invalid credentials")}
		}
		s.log.Error(ctx, "login failed", "error", err)
		return LoginResult{Result: failure("Login failed. Please try again.")}
	}

	session := models.Session{
		ID:         match.ID,
		FullName:   match.FullName,
		Email:      match.Email,
		LoggedInAt: nowFn().UTC().Format(time.RFC3339),
	}

	raw, err := json.Marshal(session)
	if err == nil {
		err = s.store.Set(ctx, kvstore.KeyCurrentUser, raw)
	}
	if err != nil {
		s.log.Error(ctx, "login failed", "error", err)
		return LoginResult{Result: failure("Login failed. Please try again.")}
	}

	return LoginResult{Result: Result{Success: true}, User: &session}
}

// LogoutUser clears the session unconditionally. There is no error
// condition; a failing delete is logged and otherwise ignored.
func (s *Service) LogoutUser(ctx context.Context) {
	if err := s.store.Delete(ctx, kvstore.KeyCurrentUser); err != nil {
		s.log.Warn(ctx, "logout: failed to clear session", "error", err)
	}
}

// GetCurrentUser returns the persisted session, or nil when absent.
// Corrupt storage is treated as an absent session.
func (s *Service) GetCurrentUser(ctx context.Context) *models.Session {
	raw, err := s.store.Get(ctx, kvstore.KeyCurrentUser)
	if err != nil || raw == nil {
		return nil
	}
	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil
	}
	return &session
}

// IsAuthenticated reports whether a session is present.
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	return s.GetCurrentUser(ctx) != nil
}

// UpdateUser merges the non-nil update fields into the matching user. When
// the updated user holds the current session, the session's name and email
// are refreshed in lockstep so the UI stays consistent.
func (s *Service) UpdateUser(ctx context.Context, id string, updates models.UserUpdate) UserResult {
	users, err := s.readUsers(ctx)
	if err != nil {
		s.log.Error(ctx, "update user failed", "error", err)
		return UserResult{Result: failure("Failed to update user")}
	}

	idx, err := userIndex(users, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return UserResult{Result: failure("User not found")}
		}
		s.log.Error(ctx, "update user failed", "error", err)
		return UserResult{Result: failure("Failed to update user")}
	}

	updates.Apply(&users[idx])

	if err := s.writeUsers(ctx, users); err != nil {
		s.log.Error(ctx, "update user failed", "error", err)
		return UserResult{Result: failure("Failed to update user")}
	}

	if session := s.GetCurrentUser(ctx); session != nil && session.ID == id {
		session.FullName = users[idx].FullName
		session.Email = users[idx].Email
		if raw, err := json.Marshal(session); err == nil {
			if err := s.store.Set(ctx, kvstore.KeyCurrentUser, raw); err != nil {
				s.log.Warn(ctx, "update user: failed to refresh session", "error", err)
			}
		}
	}

	updated := users[idx]
	return UserResult{Result: Result{Success: true}, User: &updated}
}
