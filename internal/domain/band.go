package domain

import "time"

type Band struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Genre       string    `json:"genre"`
	Location    string    `json:"location"`
	Bio         string    `json:"bio,omitempty"`
	LongBio     string    `json:"long_bio,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CoverURL    string    `json:"cover_url,omitempty"`
	Featured    bool      `json:"featured"`
	YearsActive int       `json:"years_active,omitempty"`
	Members     int       `json:"members,omitempty"`
	Instagram   string    `json:"instagram,omitempty"`
	Facebook    string    `json:"facebook,omitempty"`
	YouTube     string    `json:"youtube,omitempty"`
	Spotify     string    `json:"spotify,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RateCard is one priced offering of a band (e.g. "Wedding, 4 hours").
type RateCard struct {
	ID          string    `json:"id"`
	BandID      string    `json:"band_id"`
	EventType   string    `json:"event_type"`
	Price       float64   `json:"price"`
	Duration    string    `json:"duration,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Video struct {
	ID           string    `json:"id"`
	BandID       string    `json:"band_id"`
	Title        string    `json:"title"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	Platform     string    `json:"platform"`
	CreatedAt    time.Time `json:"created_at"`
}

type BandEvent struct {
	ID        string    `json:"id"`
	BandID    string    `json:"band_id"`
	Name      string    `json:"name"`
	Venue     string    `json:"venue"`
	EventDate string    `json:"event_date"`
	EventTime string    `json:"event_time"`
	TicketURL string    `json:"ticket_url,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	IsVisible bool      `json:"is_visible"`
	CreatedAt time.Time `json:"created_at"`
}

type Favorite struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	BandID    string    `json:"band_id"`
	CreatedAt time.Time `json:"created_at"`

	Band *Band `json:"band,omitempty" gorm:"-"`
}
