package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/logger"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/models"
)

type EventRepository interface {
	Create(ctx context.Context, event *models.ShareEvent) error
	StatsByUser(ctx context.Context, userID string) (*models.UserStats, error)
}

// StatsPublisher получает свежую статистику пользователя после каждого события.
type StatsPublisher interface {
	PublishStats(userID string, stats *models.UserStats) error
}

// EventService ведёт журнал взаимодействий и считает статистику.
type EventService struct {
	events    EventRepository
	clock     Clock
	publisher StatsPublisher
}

func NewEventService(events EventRepository, clock Clock) *EventService {
	return &EventService{events: events, clock: clock}
}

// SetPublisher подключает рассылку статистики (websocket hub).
func (s *EventService) SetPublisher(p StatsPublisher) {
	s.publisher = p
}

// RecordEvent добавляет событие. Значение action не проверяется.
func (s *EventService) RecordEvent(ctx context.Context, userID, postID, action string) (*models.ShareEvent, error) {
	event := &models.ShareEvent{
		ID:        uuid.NewString(),
		UserID:    userID,
		PostID:    postID,
		Action:    action,
		Timestamp: s.clock.Now(),
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("event service: record: %w", err)
	}

	s.publish(ctx, userID)

	return event, nil
}

// RecordShare пишет событие share_<platform> и возвращает сообщение для пользователя.
func (s *EventService) RecordShare(ctx context.Context, userID, postID, platform string) (string, error) {
	logger.Get().WithFields(logrus.Fields{
		"user_id":  userID,
		"post_id":  postID,
		"platform": platform,
	}).Info("пост отправлен в соцсеть")

	if _, err := s.RecordEvent(ctx, userID, postID, models.ActionSharePrefix+platform); err != nil {
		return "", err
	}

	return fmt.Sprintf("Post shared to %s", platform), nil
}

// GetUserStats возвращает общее число событий и разбивку по action.
func (s *EventService) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	stats, err := s.events.StatsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("event service: stats: %w", err)
	}
	return stats, nil
}

// publish не влияет на результат записи: событие уже сохранено.
func (s *EventService) publish(ctx context.Context, userID string) {
	if s.publisher == nil {
		return
	}

	stats, err := s.events.StatsByUser(ctx, userID)
	if err == nil {
		err = s.publisher.PublishStats(userID, stats)
	}
	if err != nil {
		logger.Get().WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Warn("не удалось разослать статистику")
	}
}
