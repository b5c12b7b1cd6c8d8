// AngelaMos | 2026
// entity.go

package message

import (
	"time"
)

type Message struct {
	ID         int64     `db:"id"          json:"id"`
	SenderID   int64     `db:"sender_id"   json:"senderId"`
	ReceiverID int64     `db:"receiver_id" json:"receiverId"`
	Content    string    `db:"content"     json:"content"`
	Read       bool      `db:"read"        json:"read"`
	CreatedAt  time.Time `db:"created_at"  json:"createdAt"`
}

func receiverOf(m *Message) int64 {
	return m.ReceiverID
}

// Contact is a user the caller has exchanged at least one message with.
type Contact struct {
	ID       int64  `db:"id"        json:"id"`
	Username string `db:"username"  json:"username"`
	FullName string `db:"full_name" json:"fullName"`
	Role     string `db:"role"      json:"role"`
}

type SendMessageRequest struct {
	ReceiverID int64  `json:"receiverId" validate:"required,gt=0"`
	Content    string `json:"content"    validate:"required,max=5000"`
}
