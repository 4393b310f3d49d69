package domain

import (
	"time"

	"github.com/google/uuid"
)

// Advertiser is the business profile of a user who runs campaigns.
type Advertiser struct {
	ID                 int64     `json:"id"`
	UserID             uuid.UUID `json:"user_id"`
	Name               string    `json:"name"`
	BirthDate          time.Time `json:"birth_date"`
	Phone              string    `json:"phone_number"`
	BusinessName       string    `json:"business_name"`
	Address            string    `json:"address"`
	BusinessPhone      string    `json:"business_phone"`
	BusinessNumber     string    `json:"business_number"`
	RepresentativeName string    `json:"representative_name"`
	CreatedAt          time.Time `json:"created_at"`
}

// Influencer is the channel profile of a user who applies to campaigns.
type Influencer struct {
	ID            int64     `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Name          string    `json:"name"`
	BirthDate     time.Time `json:"birth_date"`
	Phone         string    `json:"phone_number"`
	ChannelName   string    `json:"channel_name"`
	ChannelURL    string    `json:"channel_url"`
	FollowerCount int       `json:"follower_count"`
	CreatedAt     time.Time `json:"created_at"`
}
