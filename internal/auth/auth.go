// Package auth manages user accounts, credentials, profiles, and API tokens.
package auth

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jkoskela/fitweek/internal/contexthelpers"
	"github.com/jkoskela/fitweek/internal/errors"
	"github.com/jkoskela/fitweek/internal/sqlite"
)

const timestampFormat = time.RFC3339

// ErrInvalidCredentials is returned for unknown users or wrong passwords. The
// two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.NewSentinel("invalid credentials")

// ErrUserExists is returned when the username or email is already taken.
var ErrUserExists = errors.NewSentinel("user already exists")

// ErrNoProfile is returned when a user has not filled in their profile yet.
var ErrNoProfile = errors.NewSentinel("profile not found")

// User is a registered account without credential material.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Profile holds the biometric and preference inputs that drive plan
// generation.
type Profile struct {
	WeightKg            float64  `json:"weightKg"`
	HeightCm            float64  `json:"heightCm"`
	Age                 int      `json:"age"`
	Sex                 string   `json:"sex"`
	ActivityLevel       string   `json:"activityLevel"`
	Goal                string   `json:"goal"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	CuisinePreferences  []string `json:"cuisinePreferences"`
}

// Service handles registration, authentication, and profile storage.
type Service struct {
	db     *sqlite.Database
	logger *slog.Logger
}

// NewService creates an auth service.
func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, username, email, password string) (User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return User{}, errors.New("username, email, and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	res, err := s.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO users (username, email, password_hash, created_at)
		VALUES (?, ?, ?, ?)`,
		username, email, string(hash), now.Format(timestampFormat))
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrUserExists
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}

	userID, err := res.LastInsertId()
	if err != nil {
		return User{}, fmt.Errorf("user id: %w", err)
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "registered user",
		slog.Int64("user_id", userID), slog.String("username", username))

	return User{ID: userID, Username: username, Email: email, CreatedAt: now}, nil
}

// Authenticate verifies a username/password pair and returns the account.
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	var (
		user         User
		passwordHash string
		createdAtStr string
		isActive     bool
	)
	err := s.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, is_active, created_at
		FROM users
		WHERE username = ?`, username).
		Scan(&user.ID, &user.Username, &user.Email, &passwordHash, &isActive, &createdAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, fmt.Errorf("query user: %w", err)
	}
	if !isActive {
		return User{}, ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	if user.CreatedAt, err = time.Parse(timestampFormat, createdAtStr); err != nil {
		return User{}, fmt.Errorf("parse created at: %w", err)
	}

	return user, nil
}

// SaveProfile upserts the authenticated user's profile.
func (s *Service) SaveProfile(ctx context.Context, profile Profile) error {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	restrictionsJSON, err := json.Marshal(valueOrEmpty(profile.DietaryRestrictions))
	if err != nil {
		return fmt.Errorf("marshal restrictions: %w", err)
	}
	cuisinesJSON, err := json.Marshal(valueOrEmpty(profile.CuisinePreferences))
	if err != nil {
		return fmt.Errorf("marshal cuisines: %w", err)
	}

	_, err = s.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO profiles (
			user_id, weight_kg, height_cm, age, sex, activity_level, goal,
			dietary_restrictions, cuisine_preferences, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			weight_kg = excluded.weight_kg,
			height_cm = excluded.height_cm,
			age = excluded.age,
			sex = excluded.sex,
			activity_level = excluded.activity_level,
			goal = excluded.goal,
			dietary_restrictions = excluded.dietary_restrictions,
			cuisine_preferences = excluded.cuisine_preferences,
			updated_at = excluded.updated_at`,
		userID, profile.WeightKg, profile.HeightCm, profile.Age, profile.Sex,
		profile.ActivityLevel, profile.Goal, string(restrictionsJSON), string(cuisinesJSON),
		time.Now().Format(timestampFormat))
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}

	return nil
}

// Profile returns the authenticated user's profile.
func (s *Service) Profile(ctx context.Context) (Profile, error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	var (
		profile          Profile
		restrictionsJSON string
		cuisinesJSON     string
	)
	err := s.db.ReadOnly.QueryRowContext(ctx, `
		SELECT weight_kg, height_cm, age, sex, activity_level, goal, dietary_restrictions, cuisine_preferences
		FROM profiles
		WHERE user_id = ?`, userID).
		Scan(&profile.WeightKg, &profile.HeightCm, &profile.Age, &profile.Sex,
			&profile.ActivityLevel, &profile.Goal, &restrictionsJSON, &cuisinesJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNoProfile
		}
		return Profile{}, fmt.Errorf("query profile: %w", err)
	}

	if err = json.Unmarshal([]byte(restrictionsJSON), &profile.DietaryRestrictions); err != nil {
		return Profile{}, fmt.Errorf("unmarshal restrictions: %w", err)
	}
	if err = json.Unmarshal([]byte(cuisinesJSON), &profile.CuisinePreferences); err != nil {
		return Profile{}, fmt.Errorf("unmarshal cuisines: %w", err)
	}

	return profile, nil
}

func valueOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
