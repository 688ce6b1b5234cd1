package service

import (
	"sort"
	"sync"
	"time"

	"petnutricare/internal/model"

	"github.com/google/uuid"
)

// NotificationService keeps a per-recipient queue of notifications in process
// memory. Recipients are usually keyed by email. Contents do not survive a
// restart.
type NotificationService interface {
	Add(recipientKey, title, message, notificationType string) model.Notification
	ListForRecipient(recipientKey string) []model.Notification
	MarkRead(recipientKey, id string) bool
	MarkAllRead(recipientKey string)
	ClearForRecipient(recipientKey string)
}

type notificationService struct {
	mu    sync.RWMutex
	items []model.Notification
}

// NewNotificationService creates an empty NotificationService.
func NewNotificationService() NotificationService {
	return &notificationService{}
}

func (s *notificationService) Add(recipientKey, title, message, notificationType string) model.Notification {
	if !model.ValidNotificationType(notificationType) {
		notificationType = model.NotificationReminder
	}

	item := model.Notification{
		ID:           "notif-" + uuid.NewString(),
		RecipientKey: recipientKey,
		Title:        title,
		Message:      message,
		Type:         notificationType,
		CreatedAt:    time.Now(),
		Read:         false,
	}

	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()

	return item
}

// ListForRecipient returns the recipient's notifications, newest first.
func (s *notificationService) ListForRecipient(recipientKey string) []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Notification
	for _, n := range s.items {
		if n.RecipientKey == recipientKey {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// MarkRead marks one of the recipient's notifications as read and reports
// whether it existed. Notifications belonging to other recipients are
// invisible here, so callers cannot touch queues that aren't theirs.
func (s *notificationService) MarkRead(recipientKey, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id && s.items[i].RecipientKey == recipientKey {
			s.items[i].Read = true
			return true
		}
	}
	return false
}

func (s *notificationService) MarkAllRead(recipientKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].RecipientKey == recipientKey {
			s.items[i].Read = true
		}
	}
}

func (s *notificationService) ClearForRecipient(recipientKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.items[:0]
	for _, n := range s.items {
		if n.RecipientKey != recipientKey {
			next = append(next, n)
		}
	}
	s.items = next
}
