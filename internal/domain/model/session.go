package model

import "time"

// Session 存在 redis, 匿名訪客也有 session (購物車用), 登入後才帶 UserID/ProfileID
type Session struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"user_id,omitempty"`
	ProfileID uint      `json:"profile_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.UserID != 0
}

type CartItem struct {
	ProductID uint
	Count     int
}

type Cart struct {
	SessionID string
	Items     []CartItem
}
