// Package members управляет пользователями бота: регистрацией при первом обращении
// и обновлением имени/username.
// models.go описывает структуры данных для работы с таблицей members.
package members

import "time"

// Member — пользователь, хотя бы раз написавший боту в личку.
type Member struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`    // Telegram user ID (уникальный)
	Username  string    `db:"username"`   // @username (может быть пустым)
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	JoinedAt  time.Time `db:"joined_at"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Profile — данные пользователя из апдейта Telegram.
type Profile struct {
	UserID    int64
	Username  string
	FirstName string
	LastName  string
}

// DisplayName возвращает имя для обращения в сообщениях.
// В отличие от чатов, в личке обращаемся по имени, а не по @username.
func (m *Member) DisplayName() string {
	if m.FirstName != "" {
		return m.FirstName
	}
	if m.Username != "" {
		return "@" + m.Username
	}
	return "kamu"
}
