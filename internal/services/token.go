package services

import (
	"errors"
	"fmt"
	"time"

	"flicks-backend/internal/apperrors"
	"flicks-backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type Claims struct {
	UserID uint      `json:"uid"`
	Type   TokenType `json:"typ"`
	jwt.RegisteredClaims
}

type TokenIssuer interface {
	Issue(userID uint) (*TokenPair, error)
	// Parse verifies the signature, the expiry and the token type.
	Parse(token string, typ TokenType) (*Claims, error)
}

type jwtIssuer struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenIssuer(cfg config.JWTConfig) TokenIssuer {
	return &jwtIssuer{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        time.Now,
	}
}

func (i *jwtIssuer) Issue(userID uint) (*TokenPair, error) {
	access, err := i.sign(userID, AccessToken, i.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := i.sign(userID, RefreshToken, i.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

func (i *jwtIssuer) sign(userID uint, typ TokenType, ttl time.Duration) (string, error) {
	now := i.now()
	claims := Claims{
		UserID: userID,
		Type:   typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    i.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (i *jwtIssuer) Parse(tokenString string, typ TokenType) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now), jwt.WithIssuer(i.issuer))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindUnauthorized, apperrors.ErrInvalidToken.Error(), err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.Type != typ {
		return nil, apperrors.Wrap(apperrors.KindUnauthorized, apperrors.ErrInvalidToken.Error(),
			errors.New("unexpected token type "+string(claims.Type)))
	}
	return claims, nil
}
