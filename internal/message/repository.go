// AngelaMos | 2026
// repository.go

package message

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/travel-marketplace/internal/core"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*Message, error)
	ListBetween(ctx context.Context, a, b int64) ([]Message, error)
	ListByUserID(ctx context.Context, userID int64) ([]Message, error)
	ListContacts(ctx context.Context, userID int64) ([]Contact, error)
	Create(ctx context.Context, m *Message) error
	MarkRead(ctx context.Context, id int64) (*Message, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const messageColumns = "id, sender_id, receiver_id, content, read, created_at"

func (r *repository) GetByID(ctx context.Context, id int64) (*Message, error) {
	query := r.db.Rebind("SELECT " + messageColumns + " FROM messages WHERE id = ?")

	var m Message
	err := r.db.GetContext(ctx, &m, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get message: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	}

	return &m, nil
}

// ListBetween returns the conversation between a and b in both directions,
// oldest first.
func (r *repository) ListBetween(
	ctx context.Context,
	a, b int64,
) ([]Message, error) {
	query := r.db.Rebind("SELECT " + messageColumns + ` FROM messages
		WHERE (sender_id = ? AND receiver_id = ?)
		   OR (sender_id = ? AND receiver_id = ?)
		ORDER BY created_at, id`)

	messages := []Message{}
	if err := r.db.SelectContext(ctx, &messages, query, a, b, b, a); err != nil {
		return nil, fmt.Errorf("list conversation: %w", err)
	}

	return messages, nil
}

func (r *repository) ListByUserID(
	ctx context.Context,
	userID int64,
) ([]Message, error) {
	query := r.db.Rebind("SELECT " + messageColumns + ` FROM messages
		WHERE sender_id = ? OR receiver_id = ?
		ORDER BY created_at, id`)

	messages := []Message{}
	if err := r.db.SelectContext(ctx, &messages, query, userID, userID); err != nil {
		return nil, fmt.Errorf("list messages by user: %w", err)
	}

	return messages, nil
}

func (r *repository) ListContacts(
	ctx context.Context,
	userID int64,
) ([]Contact, error) {
	query := r.db.Rebind(`
		SELECT id, username, full_name, role FROM users
		WHERE id IN (
			SELECT receiver_id FROM messages WHERE sender_id = ?
			UNION
			SELECT sender_id FROM messages WHERE receiver_id = ?
		) AND id <> ?
		ORDER BY username`)

	contacts := []Contact{}
	if err := r.db.SelectContext(ctx, &contacts, query, userID, userID, userID); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	return contacts, nil
}

func (r *repository) Create(ctx context.Context, m *Message) error {
	query := r.db.Rebind(`
		INSERT INTO messages (sender_id, receiver_id, content)
		VALUES (?, ?, ?)
		RETURNING id`)

	var id int64
	err := r.db.GetContext(ctx, &id, query, m.SenderID, m.ReceiverID, m.Content)
	if err != nil {
		return fmt.Errorf("create message: %w", core.ClassifyDBError(err))
	}

	created, err := r.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	*m = *created

	return nil
}

func (r *repository) MarkRead(ctx context.Context, id int64) (*Message, error) {
	read := true

	var set core.Assignments
	core.Set(&set, "read", &read)

	if err := core.UpdateByID(ctx, r.db, "messages", id, &set); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}
