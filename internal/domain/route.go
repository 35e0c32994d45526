package domain

import "time"

// Route is a shared travel route with start/end coordinates and an
// optional finish-line image stored alongside the row.
type Route struct {
	ID            string
	Name          string
	Description   string
	StartLat      float64
	StartLng      float64
	EndLat        float64
	EndLng        float64
	UserID        string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	StartLocation string
	EndLocation   string
	FinishImage   []byte
}
