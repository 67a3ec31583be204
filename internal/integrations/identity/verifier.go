package identity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier проверяет ID-токены, подписанные секретом канала (HS256)
// Аудитория токена должна совпадать с ID канала
type Verifier struct {
	secret    []byte
	channelID string
	issuer    string
	leeway    time.Duration
	now       func() time.Time
}

// NewVerifier создает верификатор. Пустой issuer не проверяется
func NewVerifier(channelSecret, channelID, issuer string) *Verifier {
	return &Verifier{
		secret:    []byte(strings.TrimSpace(channelSecret)),
		channelID: channelID,
		issuer:    issuer,
		leeway:    5 * time.Second,
		now:       time.Now,
	}
}

// Verify разбирает токен и возвращает профиль пользователя
func (v *Verifier) Verify(token string) (*Profile, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}
	if len(v.secret) == 0 {
		return nil, fmt.Errorf("%w: channel secret not configured", ErrInvalidToken)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(v.leeway),
		jwt.WithTimeFunc(v.now),
		jwt.WithExpirationRequired(),
	}
	if v.channelID != "" {
		opts = append(opts, jwt.WithAudience(v.channelID))
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &idTokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, ErrTokenExpired
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return &Profile{Subject: claims.Subject, Name: claims.Name}, nil
}
