package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// RegisterInput is the payload of a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Weight   float64
	Goal     domain.Goal
	Age      int
}

// AuthConfig configures token issuing and verification links.
type AuthConfig struct {
	JWTSecret           string
	JWTExpiration       time.Duration
	VerificationBaseURL string // the token is appended as the last path segment
}

// --- Service Interface ---
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (token string, user *domain.User, err error)
	Login(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	// Authenticate maps a bearer token to the principal it was issued for.
	Authenticate(token string) (primitive.ObjectID, error)
	VerifyEmail(ctx context.Context, token string) error
	Me(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
}

// --- Service Implementation ---

type authService struct {
	userRepo         repository.UserRepository
	verificationRepo repository.EmailVerificationRepository
	mailer           Mailer
	cfg              AuthConfig
	log              logrus.FieldLogger
	now              func() time.Time
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo repository.UserRepository, verificationRepo repository.EmailVerificationRepository, mailer Mailer, cfg AuthConfig, log logrus.FieldLogger) AuthService {
	if cfg.JWTSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if cfg.JWTExpiration <= 0 {
		cfg.JWTExpiration = 24 * time.Hour
	}
	return &authService{
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		mailer:           mailer,
		cfg:              cfg,
		log:              log,
		now:              time.Now,
	}
}

func (in RegisterInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return newError(ErrInvalidArgument, "name is required")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return newError(ErrInvalidArgument, "invalid email address")
	}
	if len(in.Password) < minPasswordLength {
		return newError(ErrInvalidArgument, "password must be at least %d characters", minPasswordLength)
	}
	if !in.Goal.Valid() {
		return newError(ErrInvalidArgument, "invalid goal %q", in.Goal)
	}
	if in.Weight < 0 || in.Age < 0 {
		return newError(ErrInvalidArgument, "weight and age must not be negative")
	}
	return nil
}

// Register creates the account, signs the user in and sends a verification link.
func (s *authService) Register(ctx context.Context, in RegisterInput) (string, *domain.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := in.validate(); err != nil {
		return "", nil, err
	}

	_, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err == nil {
		return "", nil, newError(ErrConflict, "user with this email already exists")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hashedPassword),
		Weight:       in.Weight,
		Goal:         in.Goal,
		Age:          in.Age,
	}
	if _, err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", nil, newError(ErrConflict, "user with this email already exists")
		}
		return "", nil, err
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	// The account exists at this point; a failed email only costs the link.
	if err := s.sendVerification(ctx, user); err != nil {
		s.log.WithError(err).WithField("user_id", user.ID.Hex()).Warn("could not issue email verification")
	}
	return token, user, nil
}

func (s *authService) sendVerification(ctx context.Context, user *domain.User) error {
	v := &domain.EmailVerification{
		UserID:    user.ID,
		Token:     uuid.NewString() + user.ID.Hex(),
		CreatedAt: s.now().UTC(),
	}
	if _, err := s.verificationRepo.Create(ctx, v); err != nil {
		return err
	}
	link := strings.TrimRight(s.cfg.VerificationBaseURL, "/") + "/" + v.Token
	return s.mailer.SendVerification(ctx, user.Email, user.Name, link)
}

// Login checks the credentials and issues a token. Unknown email and wrong
// password are indistinguishable.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, newError(ErrInvalidArgument, "email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, newError(ErrAuthenticationFailed, "%s", ErrAuthenticationFailed)
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, newError(ErrAuthenticationFailed, "%s", ErrAuthenticationFailed)
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, user, nil
}

// VerifyEmail consumes a verification token. Expired tokens are removed.
func (s *authService) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return newError(ErrInvalidArgument, "verification token is required")
	}
	v, err := s.verificationRepo.GetByToken(ctx, token)
	if err != nil {
		return repoError(err, "verification token")
	}

	if v.Expired(s.now()) {
		if err := s.verificationRepo.Delete(ctx, v.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return newError(ErrExpiredOrInvalid, "verification link has expired")
	}

	if err := s.userRepo.SetVerified(ctx, v.UserID); err != nil {
		return repoError(err, "user")
	}
	if err := s.verificationRepo.Delete(ctx, v.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return nil
}

func (s *authService) Me(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, repoError(err, "user")
	}
	return user, nil
}

// --- JWT Helpers ---

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

const jwtIssuer = "fitness-tracker"

func (s *authService) generateJWT(user *domain.User) (string, error) {
	now := s.now()
	claims := &jwtClaims{
		UserID: user.ID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    jwtIssuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
}

// Authenticate verifies signature, algorithm and expiry of token.
func (s *authService) Authenticate(token string) (primitive.ObjectID, error) {
	if token == "" {
		return primitive.NilObjectID, newError(ErrMissingCredential, "authorization token is required")
	}

	claims := &jwtClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return primitive.NilObjectID, newError(ErrExpiredOrInvalid, "invalid or expired token")
	}
	// RegisteredClaims.Valid uses the wall clock; re-check against ours.
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(s.now()) {
		return primitive.NilObjectID, newError(ErrExpiredOrInvalid, "invalid or expired token")
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, newError(ErrExpiredOrInvalid, "invalid token subject")
	}
	return userID, nil
}
