package transport

import (
	"strings"

	"github.com/craftroots/marketplace/internal/models"
)

// ArtisanView is the public shape of an artisan. It whitelists the
// client-facing fields; credential material never appears here.
type ArtisanView struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Bio         *string  `json:"bio"`
	Location    *string  `json:"location"`
	Specialties []string `json:"specialties"`
	Experience  *string  `json:"experience"`
	ImageURL    *string  `json:"imageUrl"`
	IsActive    bool     `json:"isActive"`
}

// FormatArtisan builds the public view of a user record. The stored
// comma-delimited specialties string becomes an ordered list with
// whitespace trimmed and empty pieces dropped; an absent or empty value
// stays nil rather than turning into an empty list.
func FormatArtisan(u *models.User) ArtisanView {
	return ArtisanView{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Bio:         u.Bio,
		Location:    u.Location,
		Specialties: SplitSpecialties(u.Specialties),
		Experience:  u.Experience,
		ImageURL:    u.ImageURL,
		IsActive:    u.IsActive,
	}
}

func FormatArtisans(users []models.User) []ArtisanView {
	views := make([]ArtisanView, len(users))
	for i := range users {
		views[i] = FormatArtisan(&users[i])
	}
	return views
}

func SplitSpecialties(s *string) []string {
	if s == nil || *s == "" {
		return nil
	}
	var out []string
	for _, piece := range strings.Split(*s, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		out = append(out, piece)
	}
	return out
}
