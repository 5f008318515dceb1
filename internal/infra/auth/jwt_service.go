package auth

import (
	"strconv"
	"time"

	"holocron/config"
	"holocron/internal/domain/service"
	"holocron/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const accessTokenType = "access"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth.TokenSecret == "" {
		return nil, errors.New("auth.tokenSecret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Auth.TokenSecret),
		ttl:    cfg.Auth.TokenTTL,
		issuer: cfg.Env.ServiceName,
		now:    time.Now,
	}, nil
}

// GenerateAccessToken creates a signed HS256 access token for the given user.
func (s *jwtService) GenerateAccessToken(userID uint) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := &service.Claims{
		UserID: userID,
		Type:   accessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign access token")
	}

	return token, expiresAt, nil
}

// ValidateToken checks the validity of a token string and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	if !token.Valid || claims.Type != accessTokenType {
		return nil, errors.New("invalid access token")
	}

	if claims.UserID == 0 {
		id, err := strconv.ParseUint(claims.Subject, 10, 64)
		if err != nil || id == 0 {
			return nil, errors.New("token subject is not a user id")
		}
		claims.UserID = uint(id)
	}

	return claims, nil
}
