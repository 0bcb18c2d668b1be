package middleware

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"codecollabhub/internal/services"
)

// Тип для ключа контекста.
type contextKey string

// Ключи для хранения данных пользователя в контексте.
const (
	UserIDKey   contextKey = "userID"
	UsernameKey contextKey = "username"
)

// ErrNoToken означает, что запрос анонимный: ни заголовка Authorization,
// ни query-параметра token в нем нет.
var ErrNoToken = errors.New("токен аутентификации не предоставлен")

// Authenticator возвращает middleware, проверяющий JWT токен и кладущий
// данные пользователя в контекст запроса.
func Authenticator(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := ParseIdentity(r, jwtSecret)
			if err != nil {
				if errors.Is(err, ErrNoToken) {
					log.Println("[AuthMiddleware] Токен не предоставлен")
					http.Error(w, "Требуется аутентификация", http.StatusUnauthorized)
					return
				}
				log.Printf("[AuthMiddleware] Ошибка валидации токена: %v", err)
				http.Error(w, "Невалидный токен", http.StatusUnauthorized)
				return
			}

			// Добавляем данные пользователя в контекст запроса
			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, UsernameKey, claims.Username)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ParseIdentity извлекает и валидирует JWT из запроса. Токен принимается из
// заголовка Authorization (Bearer) или, для websocket-подключений, из
// query-параметра token: браузерный WebSocket API не позволяет выставлять
// произвольные заголовки. Для анонимного запроса возвращается ErrNoToken.
func ParseIdentity(r *http.Request, jwtSecret string) (*services.Claims, error) {
	tokenString, err := extractToken(r)
	if err != nil {
		return nil, err
	}

	claims := &services.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Убеждаемся, что метод подписи - HS256
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга/валидации токена: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("невалидный токен")
	}

	return claims, nil
}

// extractToken достает JWT из запроса.
func extractToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			return "", fmt.Errorf("неверный формат заголовка Authorization: %s", authHeader)
		}
		return headerParts[1], nil
	}

	if token := r.URL.Query().Get("token"); token != "" {
		return token, nil
	}

	return "", ErrNoToken
}

// GetUserIDFromContext извлекает UserID из контекста запроса.
// Возвращает ID пользователя и true, если ID найден, иначе 0 и false.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	if ctx == nil {
		return 0, false
	}
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}

// GetUsernameFromContext извлекает имя пользователя из контекста запроса.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}
