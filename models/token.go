package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps the bearer JWT the sync endpoints receive. Authentication and
// token issuance live outside this system; the core only needs the "sub"
// claim parsed into the current user id that every service call takes.
type Token struct {
	// Token is the underlying parsed JWT. Excluded from JSON because only
	// the compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides the standard claim set (sub, exp, iat, iss).
	jwt.RegisteredClaims

	// SignedString is the compact JWS form of the token.
	SignedString string `json:"-"`

	// UserID caches the "sub" claim parsed as int64.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim and
// parses it as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
