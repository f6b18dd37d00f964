// Package members — service.go содержит бизнес-логику управления пользователями.
package members

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Service управляет пользователями бота.
type Service struct {
	repo *Repository

	// known — кэш уже зарегистрированных в этом процессе пользователей,
	// чтобы не ходить в БД на каждое сообщение.
	known sync.Map
}

// NewService создаёт новый сервис пользователей.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// EnsureMember гарантирует, что пользователь есть в базе, и обновляет его имя.
// Все таблицы трекера ссылаются на members(user_id), поэтому вызывается
// до любой команды.
func (s *Service) EnsureMember(ctx context.Context, p Profile) error {
	if _, ok := s.known.Load(p.UserID); ok {
		return nil
	}

	created, err := s.repo.Upsert(ctx, p)
	if err != nil {
		return fmt.Errorf("ошибка регистрации пользователя: %w", err)
	}
	s.known.Store(p.UserID, struct{}{})

	if created {
		log.WithFields(log.Fields{
			"user_id":  p.UserID,
			"username": p.Username,
		}).Info("Новый пользователь зарегистрирован")
	}
	return nil
}

// GetByUserID возвращает пользователя по его Telegram user ID.
func (s *Service) GetByUserID(ctx context.Context, userID int64) (*Member, error) {
	return s.repo.GetByUserID(ctx, userID)
}
