// Package identity extracts the acting user from a bearer token.
// The token is issued and verified by the identity provider; the
// client only reads its claims to decide which feed scope applies.
package identity

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Role роль пользователя внутри компании.
type Role string

const (
	RoleAdmin     Role = "admin"     // привилегированный доступ ко всем постам
	RoleMember    Role = "member"    // доступ к постам своей компании
	RoleAnonymous Role = "anonymous" // только публичные посты
)

// ErrNoToken возвращается, когда токен не задан.
var ErrNoToken = errors.New("identity token is empty")

// Identity описывает текущего пользователя и его компанию.
type Identity struct {
	UserID    string
	CompanyID string
	Role      Role
}

// Claims содержит интересующие клиента поля токена.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id"`
	Role      string `json:"role"`
}

// FromToken разбирает bearer-токен и возвращает identity пользователя.
// Подпись не проверяется: токен выдан провайдером аутентификации и
// проверяется удаленным хранилищем на каждом запросе; клиенту нужны
// только claims для выбора области запросов.
func FromToken(token string) (*Identity, error) {
	if token == "" {
		return nil, ErrNoToken
	}

	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse identity token: %w", err)
	}

	id := &Identity{
		UserID:    claims.UserID,
		CompanyID: claims.CompanyID,
		Role:      Role(claims.Role),
	}
	if id.Role == "" {
		id.Role = RoleAnonymous
	}

	return id, nil
}

// Anonymous возвращает identity без привязки к пользователю.
func Anonymous() *Identity {
	return &Identity{Role: RoleAnonymous}
}
