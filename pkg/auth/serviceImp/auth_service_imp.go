package serviceImp

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mantrix/entities"
	"mantrix/pkg/auth/repository"
	"mantrix/pkg/auth/service"
)

var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthSvc struct {
	users    repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

func New(users repository.UserRepository, secret string, ttlHours int) *AuthSvc {
	return &AuthSvc{users: users, secret: []byte(secret), tokenTTL: time.Duration(ttlHours) * time.Hour}
}

func (s *AuthSvc) Register(email, password string) (*service.TokenResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := s.users.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// Username comes from the email local part; full name is a readable
	// version of it until the user sets one.
	username := strings.SplitN(email, "@", 2)[0]
	fullName := titleWords(strings.NewReplacer(".", " ", "_", " ").Replace(username))

	u := &entities.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		FullName:     fullName,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return s.tokenFor(u)
}

func (s *AuthSvc) Login(email, password string) (*service.TokenResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.tokenFor(u)
}

func (s *AuthSvc) GetUser(id string) (*entities.User, error) {
	return s.users.FindByID(id)
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func (s *AuthSvc) tokenFor(u *entities.User) (*service.TokenResponse, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"iat":     now.Unix(),
		"exp":     now.Add(s.tokenTTL).Unix(),
	})
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return nil, err
	}
	return &service.TokenResponse{UserID: u.ID, Email: u.Email, AccessToken: signed}, nil
}
