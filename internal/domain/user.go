package domain

// DefaultTrustScore is assigned to every new account.
const DefaultTrustScore = 100

// Location is a lat/lng coordinate pair in decimal degrees.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type User struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"password"`
	Location     Location `json:"location"`
	TrustScore   int      `json:"trustScore"`
}

// PublicUser is the API projection of a User with credentials stripped.
type PublicUser struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Location   Location `json:"location"`
	TrustScore int      `json:"trustScore"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Location:   u.Location,
		TrustScore: u.TrustScore,
	}
}

// ApplyScoreDelta adjusts the trust score by delta, clamping at zero.
// There is no upper bound.
func (u *User) ApplyScoreDelta(delta int) {
	u.TrustScore += delta
	if u.TrustScore < 0 {
		u.TrustScore = 0
	}
}
