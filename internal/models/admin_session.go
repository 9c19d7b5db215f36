package models

// AdminSession represents an authenticated administrator session
type AdminSession struct {
	AdminID   string   `json:"adminId"`
	Email     string   `json:"email"`
	Name      string   `json:"name"`
	Role      UserRole `json:"role"`
	ExpiresAt int64    `json:"exp"`
	IssuedAt  int64    `json:"iat"`
}
