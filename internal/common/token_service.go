package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// PersonnelToken is the decoded login token.
type PersonnelToken struct {
	UserID    string
	Username  string
	TeamID    string
	TeamName  string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}

// TokenService issues and validates HS256 login tokens. Any issuer holding
// the shared secret (e.g. a central auth service) produces tokens this
// service accepts, so issuance can move out of process without touching the
// middleware.
type TokenService struct {
	secretKey []byte
	redis     *redis.Client
}

// NewTokenService creates a new token service. The redis client may be nil;
// revocation checks are skipped without it.
func NewTokenService(secretKey []byte, redis *redis.Client) *TokenService {
	return &TokenService{
		secretKey: secretKey,
		redis:     redis,
	}
}

// Issue generates a signed token for the given personnel claims.
func (s *TokenService) Issue(userID, username, teamID, teamName, role string, ttl time.Duration) (string, time.Time, error) {
	tokenID := uuid.New().String()
	expiresAt := time.Now().Add(ttl)

	claims := jwt.MapClaims{
		"user_id":   userID,
		"username":  username,
		"team_id":   teamID,
		"team_name": teamName,
		"role":      role,
		"jti":       tokenID,
		"exp":       expiresAt.Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Validate parses a token, verifies the signature and expiry, and checks
// the revocation list.
func (s *TokenService) Validate(ctx context.Context, tokenString string) (*PersonnelToken, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	userID, ok := (*claims)["user_id"].(string)
	if !ok {
		return nil, errors.New("missing or invalid user_id claim")
	}

	username, _ := (*claims)["username"].(string)
	teamID, _ := (*claims)["team_id"].(string)
	teamName, _ := (*claims)["team_name"].(string)
	role, _ := (*claims)["role"].(string)

	tokenID, ok := (*claims)["jti"].(string)
	if !ok {
		return nil, errors.New("missing or invalid jti claim")
	}

	expFloat, ok := (*claims)["exp"].(float64)
	if !ok {
		return nil, errors.New("missing or invalid exp claim")
	}
	expiresAt := time.Unix(int64(expFloat), 0)

	if time.Now().After(expiresAt) {
		return nil, errors.New("token expired")
	}

	revoked, err := s.IsTokenRevoked(ctx, tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		return nil, errors.New("token revoked")
	}

	return &PersonnelToken{
		UserID:    userID,
		Username:  username,
		TeamID:    teamID,
		TeamName:  teamName,
		Role:      role,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}, nil
}

// Revoke blacklists a token until its natural expiry.
func (s *TokenService) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	if s.redis == nil {
		return errors.New("revocation requires redis")
	}

	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}

	err := s.redis.Set(ctx, "revoked_token:"+tokenID, "1", ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

// IsTokenRevoked checks the blacklist.
func (s *TokenService) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	if s.redis == nil {
		return false, nil
	}

	result, err := s.redis.Get(ctx, "revoked_token:"+tokenID).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return result == "1", nil
}
