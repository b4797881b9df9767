package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/logger"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/models"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/pkg/apperror"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/repository"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/whatsapp"
)

// DefaultFallbackURL подставляется в сообщение, если у поста нет ссылки.
const DefaultFallbackURL = "https://socialripple.com"

type UserLookup interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type PostLookup interface {
	GetByID(ctx context.Context, id string) (*models.Post, error)
}

type EventRecorder interface {
	RecordEvent(ctx context.Context, userID, postID, action string) (*models.ShareEvent, error)
}

// WhatsAppService пропускает отправку в WhatsApp только пользователям с подтверждённым номером.
type WhatsAppService struct {
	users       UserLookup
	posts       PostLookup
	events      EventRecorder
	sender      whatsapp.Sender
	fallbackURL string
}

func NewWhatsAppService(users UserLookup, posts PostLookup, events EventRecorder, sender whatsapp.Sender, fallbackURL string) *WhatsAppService {
	if fallbackURL == "" {
		fallbackURL = DefaultFallbackURL
	}
	return &WhatsAppService{
		users:       users,
		posts:       posts,
		events:      events,
		sender:      sender,
		fallbackURL: fallbackURL,
	}
}

// SendWhatsApp отправляет пост на подтверждённый номер пользователя и возвращает этот номер.
func (s *WhatsAppService) SendWhatsApp(ctx context.Context, userID, postID string) (string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return "", apperror.ErrPhoneNotVerified
	}
	if err != nil {
		return "", fmt.Errorf("whatsapp service: user: %w", err)
	}
	if !user.Verified || user.PhoneNumber == nil {
		return "", apperror.ErrPhoneNotVerified
	}

	post, err := s.posts.GetByID(ctx, postID)
	if errors.Is(err, repository.ErrPostNotFound) {
		return "", apperror.ErrPostNotFound
	}
	if err != nil {
		return "", fmt.Errorf("whatsapp service: post: %w", err)
	}

	phone := *user.PhoneNumber
	if err := s.sender.Send(ctx, phone, BuildMessage(post, s.fallbackURL)); err != nil {
		return "", fmt.Errorf("whatsapp service: send: %w", err)
	}

	if _, err := s.events.RecordEvent(ctx, userID, postID, models.ActionSentToWhatsApp); err != nil {
		return "", fmt.Errorf("whatsapp service: %w", err)
	}

	logger.Get().WithFields(logrus.Fields{
		"user_id": userID,
		"post_id": postID,
	}).Info("пост отправлен в WhatsApp")

	return phone, nil
}

// BuildMessage собирает текст: заголовок, содержание и ссылку поста (или fallbackURL).
func BuildMessage(post *models.Post, fallbackURL string) string {
	link := fallbackURL
	if post.LinkURL != nil && *post.LinkURL != "" {
		link = *post.LinkURL
	}

	parts := []string{post.Title, post.Content, link}
	return strings.Join(parts, "\n\n")
}
