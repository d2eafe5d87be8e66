package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"classifieds/internal/models"
	"classifieds/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 32
	minPasswordLen = 6
	maxPasswordLen = 72 // bcrypt rejects longer inputs

	tokenBytes = 32 // 256-bit session and CSRF tokens
)

// AuthService owns registration, credential verification and the
// session/CSRF lifecycle.
type AuthService struct {
	users      repository.Users
	sessions   repository.Sessions
	sessionTTL time.Duration
	log        Logger
}

func NewAuthService(users repository.Users, sessions repository.Sessions, sessionTTL time.Duration, log Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, sessionTTL: sessionTTL, log: log}
}

var _ Auth = (*AuthService)(nil)

// Register validates credentials, hashes the password and creates the user.
func (s *AuthService) Register(ctx context.Context, username, password string) (int, error) {
	username = strings.TrimSpace(username)
	if n := utf8.RuneCountInString(username); n < minUsernameLen || n > maxUsernameLen {
		return 0, validationf("username must be %d-%d characters", minUsernameLen, maxUsernameLen)
	}
	// Password length is a byte bound: bcrypt hashes at most maxPasswordLen bytes.
	if n := len(password); n < minPasswordLen || n > maxPasswordLen {
		return 0, validationf("password must be %d-%d bytes", minPasswordLen, maxPasswordLen)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.users.Create(ctx, username, hash, time.Now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return 0, ErrUsernameTaken
		}
		return 0, err
	}
	return id, nil
}

// Login verifies credentials and mints a session with a fresh CSRF token.
// Unknown user and wrong password both come back as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if u == nil || !checkPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return nil, fmt.Errorf("mint session token: %w", err)
	}
	csrf, err := newToken()
	if err != nil {
		return nil, fmt.Errorf("mint csrf token: %w", err)
	}

	now := time.Now().UTC()
	sess := models.Session{
		Token:     token,
		UserID:    u.ID,
		CSRFToken: csrf,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Authenticate resolves a live session by token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}
	sess, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess == nil || !sess.ExpiresAt.After(time.Now().UTC()) {
		return nil, ErrInvalidSession
	}
	return sess, nil
}

// Logout drops the session row; identity and CSRF token die together in the
// one delete. Idempotent for unknown tokens.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// RunSessionSweeper periodically removes expired sessions until ctx is
// cancelled. Run it from main in its own goroutine.
func (s *AuthService) RunSessionSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.sessions.DeleteExpired(ctx, time.Now().UTC())
			if err != nil {
				if s.log != nil {
					s.log.Errorw("session_sweep_failed", "err", err)
				}
				continue
			}
			if n > 0 && s.log != nil {
				s.log.Infow("session_sweep", "removed", n)
			}
		}
	}
}

// CSRFTokenMatches compares a submitted CSRF token against the session's
// stored one in constant time.
func CSRFTokenMatches(want, got string) bool {
	if want == "" || got == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(want), []byte(got)) == 1
}

// helper: hash password safely; salt is random per call and embedded in the
// output, so verification is self-contained.
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash. Malformed stored hashes just report
// false; the caller never branches on a hash-format error.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// helper: mint a hex-encoded 256-bit random token.
func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
