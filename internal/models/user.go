package models

import "time"

// User is an account. Follow edges and film marks live in their own tables.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id" example:"1"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username" example:"alice"`
	Phone        string    `gorm:"uniqueIndex;size:20;not null" json:"phone" example:"+989122222111"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Admin        bool      `gorm:"default:false" json:"-"`
	IsActive     bool      `gorm:"index;default:true" json:"-"`
	Profile      *Profile  `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"-"`
	Bio       string    `gorm:"size:70" json:"bio"`
	Name      string    `gorm:"size:50;index" json:"name"`
	Photo     string    `json:"photo"`
	Banner    string    `json:"banner"`
	IsActive  bool      `gorm:"index;default:true" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// PhoneOTP only records that a phone asked for a code. The code itself and the
// verified flag are kept in the cache with their own expiry.
type PhoneOTP struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"7"`
	Phone     string    `gorm:"uniqueIndex;size:20;not null" json:"phone" example:"+989122222111"`
	IsActive  bool      `gorm:"index;default:true" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (PhoneOTP) TableName() string {
	return "phone_otps"
}

// UserFollowing is the "user follows following" side of a follow edge.
type UserFollowing struct {
	UserID      uint      `gorm:"primaryKey"`
	FollowingID uint      `gorm:"primaryKey;index"`
	CreatedAt   time.Time `gorm:"index"`
}

func (UserFollowing) TableName() string {
	return "user_followings"
}

// UserFollower mirrors UserFollowing: "user is followed by follower".
type UserFollower struct {
	UserID     uint      `gorm:"primaryKey"`
	FollowerID uint      `gorm:"primaryKey;index"`
	CreatedAt  time.Time `gorm:"index"`
}

func (UserFollower) TableName() string {
	return "user_followers"
}

// UserSummary is the row shape of follower lists and user search.
type UserSummary struct {
	ID         uint   `json:"id" example:"2"`
	Username   string `json:"username" example:"bob"`
	Name       string `json:"name" example:"Bob"`
	Photo      string `json:"photo"`
	IsFollowed bool   `json:"is_followed"`
}

type ProfileDetail struct {
	ID                uint   `json:"id" example:"1"`
	Username          string `json:"username" example:"alice"`
	Bio               string `json:"bio"`
	Name              string `json:"name"`
	Photo             string `json:"photo"`
	Banner            string `json:"banner"`
	FollowersCount    int64  `json:"followers_count"`
	FollowingsCount   int64  `json:"followings_count"`
	FilmsWatchedCount int64  `json:"films_watched_count"`
	IsFollowed        *bool  `json:"is_followed,omitempty"`
}
