package models

import "time"

// FileVersion представляет неизменяемый снимок содержимого файла.
// Номера версий уникальны и строго возрастают в пределах одного файла.
// Если содержимое вынесено в объектное хранилище, Content пуст,
// а ObjectKey указывает на объект.
type FileVersion struct {
	ID            int64     `db:"id" json:"id"`
	FileID        int64     `db:"file_id" json:"file_id"`
	CreatorID     int64     `db:"creator_id" json:"creator_id"`
	Content       string    `db:"content" json:"content"`
	ObjectKey     *string   `db:"object_key" json:"object_key,omitempty"` // может быть NULL
	VersionNumber int       `db:"version_number" json:"version_number"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
