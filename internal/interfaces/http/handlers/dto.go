package handlers

import (
	"time"

	"adminkit/internal/domain/product"
	"adminkit/internal/domain/user"
)

// UserResponse is the public user profile; the password hash never appears.
type UserResponse struct {
	ID          uint       `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	FullName    string     `json:"fullName"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Gender      string     `json:"gender"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func NewUserResponse(u *user.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		Username:  u.Username,
		Email:     u.Email,
		Gender:    string(u.Gender),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if !u.DateOfBirth.IsZero() {
		dob := u.DateOfBirth
		resp.DateOfBirth = &dob
	}
	return resp
}

func NewUserResponseList(users []*user.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

type SessionResponse struct {
	SessionID    string     `json:"sessionId"`
	UserID       uint       `json:"userId"`
	LoginTime    time.Time  `json:"loginTime"`
	LogoutTime   *time.Time `json:"logoutTime,omitempty"`
	IPAddress    string     `json:"ipAddress"`
	UserAgent    string     `json:"userAgent"`
	DeviceType   string     `json:"deviceType"`
	Browser      string     `json:"browser"`
	OS           string     `json:"os"`
	IsActive     bool       `json:"isActive"`
	LastActivity time.Time  `json:"lastActivity"`
	ExpiresAt    time.Time  `json:"expiresAt"`
}

func NewSessionResponse(s *user.Session) SessionResponse {
	return SessionResponse{
		SessionID:    s.ID,
		UserID:       s.UserID,
		LoginTime:    s.LoginTime,
		LogoutTime:   s.LogoutTime,
		IPAddress:    s.IPAddress,
		UserAgent:    s.UserAgent,
		DeviceType:   s.DeviceType,
		Browser:      s.Browser,
		OS:           s.OS,
		IsActive:     s.IsActive,
		LastActivity: s.LastActivity,
		ExpiresAt:    s.ExpiresAt,
	}
}

func NewSessionResponseList(sessions []*user.Session) []SessionResponse {
	out := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, NewSessionResponse(s))
	}
	return out
}

type DeviceCountResponse struct {
	DeviceType string `json:"deviceType"`
	Count      int64  `json:"count"`
}

type SessionStatsResponse struct {
	TotalSessions   int64                 `json:"totalSessions"`
	ActiveSessions  int64                 `json:"activeSessions"`
	TodaySessions   int64                 `json:"todaySessions"`
	DeviceBreakdown []DeviceCountResponse `json:"deviceBreakdown"`
}

func NewSessionStatsResponse(stats *user.SessionStats) SessionStatsResponse {
	breakdown := make([]DeviceCountResponse, 0, len(stats.DeviceBreakdown))
	for _, dc := range stats.DeviceBreakdown {
		breakdown = append(breakdown, DeviceCountResponse{
			DeviceType: dc.DeviceType,
			Count:      dc.Count,
		})
	}
	return SessionStatsResponse{
		TotalSessions:   stats.TotalSessions,
		ActiveSessions:  stats.ActiveSessions,
		TodaySessions:   stats.TodaySessions,
		DeviceBreakdown: breakdown,
	}
}

type ProductResponse struct {
	ID             uint              `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	Category       string            `json:"category"`
	Brand          string            `json:"brand"`
	Stock          int               `json:"stock"`
	SKU            string            `json:"sku"`
	Tags           []string          `json:"tags"`
	Images         []string          `json:"images"`
	Specifications map[string]string `json:"specifications"`
	InStock        bool              `json:"inStock"`
	IsActive       bool              `json:"isActive"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

func NewProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		Category:       p.Category,
		Brand:          p.Brand,
		Stock:          p.Stock,
		SKU:            p.SKU,
		Tags:           p.Tags,
		Images:         p.Images,
		Specifications: p.Specifications,
		InStock:        p.InStock(),
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func NewProductResponseList(products []*product.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p))
	}
	return out
}

// TokenResponse is the payload returned by token refresh. Login and register
// return the same fields inline next to the user profile.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}
