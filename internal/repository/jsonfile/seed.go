package jsonfile

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"lendify-backend/internal/domain"
)

// seedPassword is the demo credential shared by all seed accounts.
const seedPassword = "password123"

// SeedDocument builds the starter dataset written when no datastore
// exists: four users around lower Manhattan and six listed tools, with
// empty checkout and rating collections. Passwords are bcrypt-hashed
// before they ever touch disk.
func SeedDocument() (*domain.Document, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed password: %w", err)
	}
	pw := string(hash)

	return &domain.Document{
		Users: []domain.User{
			{
				ID:           1,
				Name:         "Mike Johnson",
				Email:        "mike@example.com",
				PasswordHash: pw,
				Location:     domain.Location{Lat: 40.7128, Lng: -74.0060},
				TrustScore:   100,
			},
			{
				ID:           2,
				Name:         "Sarah Chen",
				Email:        "sarah@example.com",
				PasswordHash: pw,
				Location:     domain.Location{Lat: 40.7150, Lng: -74.0080},
				TrustScore:   105,
			},
			{
				ID:           3,
				Name:         "Tom Rodriguez",
				Email:        "tom@example.com",
				PasswordHash: pw,
				Location:     domain.Location{Lat: 40.7100, Lng: -74.0040},
				TrustScore:   95,
			},
			{
				ID:           4,
				Name:         "Lisa Park",
				Email:        "lisa@example.com",
				PasswordHash: pw,
				Location:     domain.Location{Lat: 40.7180, Lng: -74.0100},
				TrustScore:   110,
			},
		},
		Tools: []domain.Tool{
			{
				ID:       1,
				Name:     "Cordless Drill",
				Category: "Power Tools",
				OwnerID:  1,
				Status:   domain.ToolStatusAvailable,
				QRToken:  "TOOL-001-DRILL",
				Location: domain.Location{Lat: 40.7128, Lng: -74.0060},
			},
			{
				ID:       2,
				Name:     "Circular Saw",
				Category: "Power Tools",
				OwnerID:  2,
				Status:   domain.ToolStatusAvailable,
				QRToken:  "TOOL-002-SAW",
				Location: domain.Location{Lat: 40.7150, Lng: -74.0080},
			},
			{
				ID:       3,
				Name:     "Ladder (10ft)",
				Category: "Ladders",
				OwnerID:  3,
				Status:   domain.ToolStatusAvailable,
				QRToken:  "TOOL-003-LADDER",
				Location: domain.Location{Lat: 40.7100, Lng: -74.0040},
			},
			{
				ID:       4,
				Name:     "Pressure Washer",
				Category: "Outdoor",
				OwnerID:  4,
				Status:   domain.ToolStatusAvailable,
				QRToken:  "TOOL-004-WASHER",
				Location: domain.Location{Lat: 40.7180, Lng: -74.0100},
			},
			{
				ID:       5,
				Name:     "Angle Grinder",
				Category: "Power Tools",
				OwnerID:  1,
				Status:   domain.ToolStatusAvailable,
				QRToken:  "TOOL-005-GRINDER",
				Location: domain.Location{Lat: 40.7128, Lng: -74.0060},
			},
			{
				ID:       6,
				Name:     "Toolbox Set",
				Category: "Hand Tools",
				OwnerID:  2,
				Status:   domain.ToolStatusAvailable,
				QRToken:  "TOOL-006-BOX",
				Location: domain.Location{Lat: 40.7150, Lng: -74.0080},
			},
		},
		Checkouts: []domain.Checkout{},
		Ratings:   []domain.Rating{},
	}, nil
}
