// Package memory реализует хранилище в памяти процесса.
// Используется при STORE_DRIVER=memory и в тестах; каждый Store изолирован.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/models"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/repository"
)

// Store держит все коллекции под одним мьютексом.
type Store struct {
	mu       sync.RWMutex
	posts    []models.Post
	users    map[string]models.User
	sessions []models.OTPSession
	events   []models.ShareEvent
}

// NewStore создаёт пустое хранилище.
func NewStore() *Store {
	return &Store{users: make(map[string]models.User)}
}

// PingContext всегда успешен; нужен для health check.
func (s *Store) PingContext(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) Posts() *PostRepository   { return &PostRepository{s: s} }
func (s *Store) Users() *UserRepository   { return &UserRepository{s: s} }
func (s *Store) OTP() *OTPRepository      { return &OTPRepository{s: s} }
func (s *Store) Events() *EventRepository { return &EventRepository{s: s} }

// PostRepository: каталог постов в памяти.
type PostRepository struct{ s *Store }

func (r *PostRepository) List(ctx context.Context, category string, limit int) ([]models.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	posts := []models.Post{}
	for _, p := range r.s.posts {
		if category != "" && p.Category != category {
			continue
		}
		posts = append(posts, p)
		if limit > 0 && len(posts) == limit {
			break
		}
	}
	return posts, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.posts {
		if p.ID == id {
			post := p
			return &post, nil
		}
	}
	return nil, repository.ErrPostNotFound
}

func (r *PostRepository) SeedIfEmpty(ctx context.Context, posts []models.Post) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if len(r.s.posts) > 0 {
		return false, nil
	}
	r.s.posts = append(r.s.posts, posts...)
	sort.SliceStable(r.s.posts, func(i, j int) bool {
		return r.s.posts[i].Timestamp.Before(r.s.posts[j].Timestamp)
	})
	return true, nil
}

// UserRepository: пользователи в памяти.
type UserRepository struct{ s *Store }

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &user, nil
}

func (r *UserRepository) BindPhone(ctx context.Context, userID, phoneNumber string, at time.Time) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[userID]
	if !ok {
		user = models.User{ID: userID, CreatedAt: at}
	}
	phone := phoneNumber
	user.PhoneNumber = &phone
	user.Verified = true
	user.UpdatedAt = at
	r.s.users[userID] = user

	return &user, nil
}

// OTPRepository: сессии кодов в памяти.
type OTPRepository struct{ s *Store }

func (r *OTPRepository) Create(ctx context.Context, session *models.OTPSession) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.sessions = append(r.s.sessions, *session)
	return nil
}

func (r *OTPRepository) FindPending(ctx context.Context, phoneNumber, code string) (*models.OTPSession, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var found *models.OTPSession
	for i := range r.s.sessions {
		sess := r.s.sessions[i]
		if sess.PhoneNumber != phoneNumber || sess.Code != code || sess.Verified {
			continue
		}
		if found == nil || !sess.CreatedAt.Before(found.CreatedAt) {
			found = &sess
		}
	}
	if found == nil {
		return nil, repository.ErrOTPSessionNotFound
	}
	return found, nil
}

func (r *OTPRepository) MarkVerified(ctx context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.sessions {
		if r.s.sessions[i].ID != id {
			continue
		}
		if r.s.sessions[i].Verified {
			return false, nil
		}
		r.s.sessions[i].Verified = true
		return true, nil
	}
	return false, nil
}

// EventRepository: журнал событий в памяти.
type EventRepository struct{ s *Store }

func (r *EventRepository) Create(ctx context.Context, event *models.ShareEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.events = append(r.s.events, *event)
	return nil
}

func (r *EventRepository) StatsByUser(ctx context.Context, userID string) (*models.UserStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	stats := &models.UserStats{SharesByPlatform: map[string]int64{}}
	for _, e := range r.s.events {
		if e.UserID != userID {
			continue
		}
		stats.SharesByPlatform[e.Action]++
		stats.TotalShares++
	}
	return stats, nil
}
