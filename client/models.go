package client

import "time"

// Stats is the dashboard summary the backend aggregates.
type Stats struct {
	TotalUsers     int     `json:"totalUsers"`
	TotalProviders int     `json:"totalProviders"`
	TotalBookings  int     `json:"totalBookings"`
	TotalRevenue   float64 `json:"totalRevenue"`
}

// User is an account row in the user management screen.
type User struct {
	ID        string     `json:"id"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Verified  bool       `json:"verified"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Provider is a service provider awaiting or holding verification.
type Provider struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Category string `json:"category,omitempty"`
	Verified bool   `json:"verified"`
}

// Service is a marketplace listing.
type Service struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	ProviderID  string  `json:"provider_id,omitempty"`
}

// Dispute is an open or resolved disagreement over a booking.
type Dispute struct {
	ID              string     `json:"id"`
	BookingID       string     `json:"booking_id"`
	Reason          string     `json:"reason"`
	Status          string     `json:"status"`
	ResolutionNotes string     `json:"resolution_notes,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
}

// Profile is the signed-in admin's own account data on the settings screen.
type Profile struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}
