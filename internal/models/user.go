package models

import "time"

// User представляет учетную запись пользователя вместе с его профилем.
// Тэги `db` используются для маппинга с полями БД с помощью sqlx.
// Тэги `json` используются для (де)сериализации JSON.
type User struct {
	ID           int64  `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	Email        string `db:"email" json:"email,omitempty"`
	PasswordHash string `db:"password_hash" json:"-"` // Не отправляем хеш пароля в JSON
	// Поля профиля. PreferredLanguage подставляется в качестве языка
	// по умолчанию при создании новых проектов пользователя.
	Bio               string    `db:"bio" json:"bio"`
	PreferredLanguage string    `db:"preferred_language" json:"preferred_language"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// RegisterRequest представляет тело запроса на регистрацию.
// Email необязателен.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest представляет тело запроса на вход.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse представляет тело ответа при успешном входе.
type LoginResponse struct {
	Token string `json:"token"`
}

// UpdateProfileRequest представляет тело запроса на обновление профиля.
// nil-поле означает "не менять".
type UpdateProfileRequest struct {
	Bio               *string `json:"bio"`
	PreferredLanguage *string `json:"preferred_language"`
}
