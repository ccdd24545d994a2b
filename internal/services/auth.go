package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/grapplelog/grapplelog-backend/internal/data/aggregates"
	userrepos "github.com/grapplelog/grapplelog-backend/internal/data/repos/user"
	types "github.com/grapplelog/grapplelog-backend/internal/domain"
	domainagg "github.com/grapplelog/grapplelog-backend/internal/domain/aggregates"
	"github.com/grapplelog/grapplelog-backend/internal/platform/logger"
	"github.com/grapplelog/grapplelog-backend/internal/requestdata"
)

// AuthService provides the one thing the logging core needs from the
// outside world: a signed-in user identifier. Registration and login are
// the minimal host surface around it.
type AuthService interface {
	Register(ctx context.Context, email, password, firstName, lastName string) (*types.User, string, error)
	Login(ctx context.Context, email, password string) (*types.User, string, error)
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type authService struct {
	db             *gorm.DB
	log            *logger.Logger
	userRepo       userrepos.UserRepo
	jwtSecretKey   []byte
	accessTokenTTL time.Duration
}

func NewAuthService(db *gorm.DB, baseLog *logger.Logger, userRepo userrepos.UserRepo, jwtSecretKey string, accessTokenTTL time.Duration) AuthService {
	return &authService{
		db:             db,
		log:            baseLog.With("service", "AuthService"),
		userRepo:       userRepo,
		jwtSecretKey:   []byte(jwtSecretKey),
		accessTokenTTL: accessTokenTTL,
	}
}

func (s *authService) Register(ctx context.Context, email, password, firstName, lastName string) (*types.User, string, error) {
	const op = "auth.register"

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", domainagg.NewError(domainagg.CodeValidation, op, "email and password are required", nil)
	}
	existing, err := s.userRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		return nil, "", aggregates.MapError(op, err)
	}
	if existing != nil {
		return nil, "", domainagg.NewError(domainagg.CodeConflict, op, "email is already in use", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", aggregates.MapError(op, err)
	}
	u, err := s.userRepo.Create(ctx, nil, &types.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  string(hash),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
	})
	if err != nil {
		return nil, "", aggregates.MapError(op, err)
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return nil, "", aggregates.MapError(op, err)
	}
	s.log.Info("registered user", "user_id", u.ID)
	return u, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*types.User, string, error) {
	const op = "auth.login"

	u, err := s.userRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		return nil, "", aggregates.MapError(op, err)
	}
	if u == nil {
		return nil, "", domainagg.NewError(domainagg.CodeNotFound, op, "invalid credentials", nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, "", domainagg.NewError(domainagg.CodeNotFound, op, "invalid credentials", nil)
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return nil, "", aggregates.MapError(op, err)
	}
	return u, token, nil
}

// SetContextFromToken validates the bearer token and stamps the caller's
// identity into the request context.
func (s *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	const op = "auth.token"

	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domainagg.NewError(domainagg.CodeValidation, op, "unexpected signing method", nil)
		}
		return s.jwtSecretKey, nil
	})
	if err != nil || !token.Valid {
		return ctx, domainagg.NewError(domainagg.CodeValidation, op, "invalid token", err)
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return ctx, domainagg.NewError(domainagg.CodeValidation, op, "invalid token subject", err)
	}
	return requestdata.WithRequestData(ctx, &requestdata.RequestData{
		TokenString: tokenString,
		UserID:      userID,
	}), nil
}

func (s *authService) issueToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecretKey)
}
