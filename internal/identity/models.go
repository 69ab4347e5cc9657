// Package identity owns server-side accounts and profiles. These records,
// together with billing orders, are the authoritative entitlement source.
package identity

import "time"

type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          string    `json:"role"` // learner|admin
	PasswordHash  string    `json:"-"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

// Profile is the learner-editable record linked 1:1 to a user. The app
// tolerates a missing profile (it is lazily created) but never a missing
// user.
type Profile struct {
	UserID         string    `json:"user_id"`
	DisplayName    string    `json:"display_name"`
	Bio            string    `json:"bio"`
	Goals          string    `json:"goals"`
	FavoriteModule int       `json:"favorite_module"`
	UpdatedAt      time.Time `json:"updated_at"`
}

const (
	defaultBio   = "Rebuilding my focus, one week at a time."
	defaultGoals = "Finish all 13 modules."
)

// NewDefaultProfile seeds the profile created at provisioning or first
// login.
func NewDefaultProfile(userID, displayName string, now time.Time) Profile {
	return Profile{
		UserID:         userID,
		DisplayName:    displayName,
		Bio:            defaultBio,
		Goals:          defaultGoals,
		FavoriteModule: 1,
		UpdatedAt:      now,
	}
}
