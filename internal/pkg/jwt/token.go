package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/canyfix/repairdesk/internal/pkg/constants"
	"github.com/canyfix/repairdesk/internal/pkg/models"
	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidIssuer = errors.New("invalid token issuer")
)

// Claims carries the verified repairman identity and the job scope of a token
type Claims struct {
	RepairmanID int64  `json:"repairman_id"`
	Phone       string `json:"phone"`
	Scope       string `json:"scope"`
	LeadID      int64  `json:"lead_id,omitempty"`
	jwt.RegisteredClaims
}

// AllowsJob reports whether the token may unmask or act on the given job.
// Global tokens admit any job; job tokens only the job they were issued for.
func (c *Claims) AllowsJob(jobID int64) bool {
	if c.Scope == constants.TokenScopeJob {
		return c.LeadID == jobID
	}
	return true
}

// GenerateToken issues an access token for a repairman who passed login OTP
// verification. leadID is only embedded when the configured scope is per job.
func GenerateToken(repairmanID int64, phone string, leadID int64, cfg *models.Config) (string, int64, error) {
	// Set token expiration time
	expirationTime := time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Minute)

	scope := cfg.JWT.Scope
	if scope == "" {
		scope = constants.TokenScopeGlobal
	}
	if scope != constants.TokenScopeJob {
		leadID = 0
	}

	claims := Claims{
		RepairmanID: repairmanID,
		Phone:       phone,
		Scope:       scope,
		LeadID:      leadID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    cfg.JWT.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Sign token with configured secret
	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, claims.ExpiresAt.Unix(), nil
}

// ValidateToken verifies signature, expiry and issuer and returns the claims
func ValidateToken(tokenString string, cfg models.JWTConfig) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if cfg.Issuer != "" && !claims.VerifyIssuer(cfg.Issuer, true) {
		return nil, ErrInvalidIssuer
	}

	return claims, nil
}
