package models

import "time"

// CodeFile представляет файл с кодом внутри проекта.
// Содержимое файла хранится не здесь, а в версиях (FileVersion).
type CodeFile struct {
	ID        int64     `db:"id" json:"id"`
	ProjectID int64     `db:"project_id" json:"project_id"`
	Filename  string    `db:"filename" json:"filename"`
	Language  string    `db:"language" json:"language"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
