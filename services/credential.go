package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/MeghnathGit/elearning-platform/models"
)

// dummyHash is compared against when the user lookup misses, so a login
// attempt takes the same bcrypt work whether the account exists or not.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// CredentialService owns user identity and login verification.
type CredentialService struct {
	db              *gorm.DB
	saltRound       int
	allowEmailLogin bool
}

func NewCredentialService(db *gorm.DB, saltRound int, allowEmailLogin bool) *CredentialService {
	return &CredentialService{db: db, saltRound: saltRound, allowEmailLogin: allowEmailLogin}
}

// Register creates a new user with the USER role. Returns ErrConflict when
// the username or the email is already taken.
func (s *CredentialService) Register(username, email, password string) (*models.User, error) {
	var existing models.User
	err := s.db.Where("username = ? OR email = ?", username, email).First(&existing).Error
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.saltRound)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     "USER",
	}
	if err := s.db.Create(&user).Error; err != nil {
		// Two racing registrations can both pass the lookup above; the
		// unique constraints on username/email catch the loser here.
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	return &user, nil
}

// Verify resolves a login attempt. The identifier is the username, or the
// email as well when email login is enabled. Unknown identifier and wrong
// password are indistinguishable to the caller.
func (s *CredentialService) Verify(identifier, password string) (*models.User, error) {
	var user models.User
	query := s.db.Where("username = ?", identifier)
	if s.allowEmailLogin {
		query = s.db.Where("username = ? OR email = ?", identifier, identifier)
	}

	if err := query.First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Burn the same bcrypt cost as a real comparison.
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// isUniqueViolation matches duplicate-key errors from both supported
// backends (SQLite and PostgreSQL word their errors differently).
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
