// AngelaMos | 2026
// service.go

package message

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/travel-marketplace/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Conversation(
	ctx context.Context,
	userID, otherID int64,
) ([]Message, error) {
	return s.repo.ListBetween(ctx, userID, otherID)
}

func (s *Service) Inbox(ctx context.Context, userID int64) ([]Message, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *Service) Contacts(ctx context.Context, userID int64) ([]Contact, error) {
	return s.repo.ListContacts(ctx, userID)
}

// Send stores a message from senderID. The sender always comes from the
// session, never from the request body.
func (s *Service) Send(
	ctx context.Context,
	senderID int64,
	req SendMessageRequest,
) (*Message, error) {
	m := &Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	core.AddSpanEvent(ctx, "message.sent",
		attribute.Int64("message.id", m.ID),
		attribute.Int64("message.receiver_id", m.ReceiverID),
	)

	return m, nil
}

// MarkRead flags a message as read. Only its receiver may do so; anyone
// else gets ErrNotFound and the row is untouched.
func (s *Service) MarkRead(
	ctx context.Context,
	id, userID int64,
) (*Message, error) {
	m, err := s.repo.GetByID(ctx, id)
	if _, err := core.OwnedOrNotFound(m, err, receiverOf, userID); err != nil {
		return nil, err
	}

	return s.repo.MarkRead(ctx, id)
}
