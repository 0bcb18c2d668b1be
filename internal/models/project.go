package models

import "time"

// Роли участников проекта.
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Статусы заявок на вступление в проект.
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// Project представляет проект - контейнер для файлов с кодом и задач.
type Project struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Language    string    `db:"language" json:"language"`
	OwnerID     int64     `db:"owner_id" json:"owner_id"`
	IsPublic    bool      `db:"is_public" json:"is_public"`
	MaxMembers  int       `db:"max_members" json:"max_members"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// ProjectMembership связывает пользователя с проектом и его ролью.
type ProjectMembership struct {
	ID        int64     `db:"id" json:"id"`
	ProjectID int64     `db:"project_id" json:"project_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Username  string    `db:"username" json:"username"`
	Role      string    `db:"role" json:"role"`
	JoinedAt  time.Time `db:"joined_at" json:"joined_at"`
}

// ProjectRequest представляет заявку пользователя на вступление в проект.
type ProjectRequest struct {
	ID          int64     `db:"id" json:"id"`
	ProjectID   int64     `db:"project_id" json:"project_id"`
	RequesterID int64     `db:"requester_id" json:"requester_id"`
	Status      string    `db:"status" json:"status"`
	Message     string    `db:"message" json:"message"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
