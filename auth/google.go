package auth

import (
	"context"
	"errors"

	"google.golang.org/api/idtoken"
)

// GoogleVerifier validates Google-issued ID tokens against an OAuth client ID.
type GoogleVerifier struct {
	ClientID string
}

// VerifyIDToken checks the token's signature and audience and returns the
// verified email address.
func (v GoogleVerifier) VerifyIDToken(ctx context.Context, raw string) (string, error) {
	if v.ClientID == "" {
		return "", errors.New("auth: google client id not configured")
	}
	payload, err := idtoken.Validate(ctx, raw, v.ClientID)
	if err != nil {
		return "", err
	}
	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return "", errors.New("auth: email not present in id token")
	}
	return email, nil
}
