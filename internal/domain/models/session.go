package models

import "time"

// AdminSession is an issued admin credential. The token is an opaque
// signed string carried in the session cookie; ExpiresAt mirrors the
// expiry claim embedded in the token.
type AdminSession struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UploadedFile is what the media upload endpoint returns per file.
type UploadedFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
