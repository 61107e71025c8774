package utils

import (
	"context"
	"errors"
	"os"

	"google.golang.org/api/idtoken"
)

// GoogleUser adalah hasil verifikasi ID token Google
type GoogleUser struct {
	GoogleID string
	Email    string
	Name     string
	Picture  string
}

var ErrGoogleTokenInvalid = errors.New("token Google tidak valid")

// VerifyGoogleToken memverifikasi ID token ke Google dan mengambil profil dasar.
// Audience dicek terhadap GOOGLE_CLIENT_ID.
func VerifyGoogleToken(ctx context.Context, token string) (*GoogleUser, error) {
	payload, err := idtoken.Validate(ctx, token, os.Getenv("GOOGLE_CLIENT_ID"))
	if err != nil {
		return nil, ErrGoogleTokenInvalid
	}

	user := &GoogleUser{GoogleID: payload.Subject}
	if v, ok := payload.Claims["email"].(string); ok {
		user.Email = v
	}
	if v, ok := payload.Claims["name"].(string); ok {
		user.Name = v
	}
	if v, ok := payload.Claims["picture"].(string); ok {
		user.Picture = v
	}

	return user, nil
}
