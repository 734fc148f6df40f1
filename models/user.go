package models

import "time"

// MetadataDisplayName is the user metadata key holding the display name.
const MetadataDisplayName = "display_name"

// User is a staff account of the dashboard.
type User struct {
	ID           string            `bson:"id" json:"id" gorm:"primaryKey"`
	Email        string            `bson:"email" json:"email" gorm:"uniqueIndex"`
	PasswordHash string            `bson:"password_hash" json:"-"`
	Metadata     map[string]string `bson:"metadata,omitempty" json:"user_metadata,omitempty" gorm:"serializer:json"`
	LastLogin    time.Time         `bson:"last_login,omitempty" json:"last_login,omitempty"`
	CreatedAt    time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time         `bson:"updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }

// DisplayName returns the metadata display name, or "" when unset.
func (u User) DisplayName() string {
	if u.Metadata == nil {
		return ""
	}
	return u.Metadata[MetadataDisplayName]
}

// UserAttributes is an auth-provider update: top-level attributes plus metadata entries.
type UserAttributes struct {
	Email    *string
	Password *string
	Metadata map[string]string
}

// Session is an authenticated sign-in.
type Session struct {
	Token     string    `json:"access_token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

// Credentials is what the account page shows.
type Credentials struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}
