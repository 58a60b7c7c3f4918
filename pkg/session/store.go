package session

// Session is the client-held authentication state: bearer/refresh tokens and
// the authenticated artisan's identity. It is created on login or register,
// read on every authenticated request, and destroyed on logout.
type Session struct {
	AccessToken  string `yaml:"access_token"`
	RefreshToken string `yaml:"refresh_token"`
	ArtisanID    int    `yaml:"artisan_id"`
	ArtisanEmail string `yaml:"artisan_email,omitempty"`
}

// Authenticated reports whether the session carries a usable token.
func (s *Session) Authenticated() bool {
	return s != nil && s.AccessToken != "" && s.ArtisanID != 0
}

// Store persists the session across runs. Load returns (nil, nil) when no
// session exists; callers treat that as "not logged in", not an error.
//
// All components read sessions through a Store given to them explicitly.
// Only the login, register and logout flows write it.
type Store interface {
	Load() (*Session, error)
	Save(*Session) error
	Clear() error
}
