package identity

import "errors"

var (
	// ErrMissingToken возвращается, если токен не передан
	ErrMissingToken = errors.New("identity: missing id token")

	// ErrTokenExpired возвращается, если срок действия ID-токена истек
	ErrTokenExpired = errors.New("identity: id token expired")

	// ErrInvalidToken возвращается для любого другого невалидного токена
	ErrInvalidToken = errors.New("identity: invalid id token")
)
