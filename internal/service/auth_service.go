package service

import (
	"context"
	"errors"
	"time"

	"carshop/internal/model"
	"carshop/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUsernameTaken      = errors.New("Username is already taken!")
	ErrEmailTaken         = errors.New("Email is already taken!")
)

// Tokens expire 10 days after issuance
const tokenTTL = 240 * time.Hour

// AuthService handles registration, login and bearer token lifecycle
type AuthService struct {
	users     repository.UserRepository
	jwtSecret []byte
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserRepository, jwtSecret []byte) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: jwtSecret,
	}
}

// IssueToken produces a signed token carrying the username as subject
func (s *AuthService) IssueToken(username string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// VerifyToken validates a token and returns its subject. Tampered,
// undecodable or expired tokens yield ErrInvalidToken, never a panic.
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// Register creates a new account and returns it with a fresh token
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.UserResponse, error) {
	taken, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	taken, err = s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:  req.Username,
		Password:  string(hash),
		Email:     req.Email,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Role:      "USER",
	}
	if _, err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	return s.userResponse(user)
}

// Login validates credentials and returns the account with a fresh token
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.UserResponse, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.userResponse(user)
}

func (s *AuthService) userResponse(user *model.User) (*model.UserResponse, error) {
	token, err := s.IssueToken(user.Username)
	if err != nil {
		return nil, err
	}
	return &model.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.Firstname,
		LastName:  user.Lastname,
		Token:     token,
	}, nil
}

// SeedDefaultUser creates the demo account present on a fresh start
func (s *AuthService) SeedDefaultUser(ctx context.Context) error {
	exists, err := s.users.ExistsByUsername(ctx, "thinhtrai1")
	if err != nil || exists {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("1"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = s.users.Save(ctx, &model.User{
		Username:  "thinhtrai1",
		Password:  string(hash),
		Email:     "ducthinhtrai@gmail.com",
		Firstname: "Thinh",
		Lastname:  "Duck",
		Role:      "USER",
	})
	return err
}
