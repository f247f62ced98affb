package entities

import (
	"time"

	"github.com/google/uuid"
)

type FriendInvitation struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	SenderUserID    string    `gorm:"index" json:"sender_user_id"`
	RecipientEmail  string    `json:"recipient_email"`
	InvitationToken string    `gorm:"uniqueIndex" json:"invitation_token"`
	IsAccepted      bool      `json:"is_accepted"`
	IsExpired       bool      `json:"is_expired"`
	ExpiresAt       time.Time `json:"expires_at"`

	Timestamp
}

// Friendship stores the undirected pair with UserID1 < UserID2 so the
// relation has a single canonical row.
type Friendship struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID1 string    `gorm:"index:idx_friendship_pair,unique" json:"user_id_1"`
	UserID2 string    `gorm:"index:idx_friendship_pair,unique" json:"user_id_2"`

	Timestamp
}
