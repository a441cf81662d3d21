package auth

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/moonui/moonui/internal/common"
)

const (
	// TokenValidity is the lifetime of every issued token.
	TokenValidity = 7 * 24 * time.Hour

	// ExpiryWarningWindow is how close to expiry a token has to be before
	// IsTokenExpiringSoon reports true.
	ExpiryWarningWindow = 24 * time.Hour

	nonceLength = 9
)

// nowFn is a test seam for the clock.
var nowFn = time.Now

// Claims are the fields embedded in an auth token, canonical regardless of
// which wire shape the token used.
type Claims struct {
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Nonce     string
}

// GenerateToken issues a token for the given user ID. The encoded payload is
//
//	userId_issuedAtMillis_expiresAtMillis_nonce
//
// base64-encoded with no signature; the token is opaque, not verifiable.
// rememberMe is accepted for call-site symmetry but does not change the
// validity window — it only controls whether a session is restored on
// startup. Every token lives for TokenValidity.
func GenerateToken(userID string, rememberMe bool) string {
	_ = rememberMe
	issued := nowFn()
	expires := issued.Add(TokenValidity)
	payload := fmt.Sprintf("%s_%d_%d_%s",
		userID, issued.UnixMilli(), expires.UnixMilli(), common.RandBase36String(nonceLength))
	return base64.StdEncoding.EncodeToString([]byte(payload))
}

// ParseToken decodes a token into canonical Claims. Two wire shapes are
// accepted:
//
//	userId_issuedAt_expiresAt_nonce   current
//	userId_issuedAt_nonce             legacy, expiresAt derived as issuedAt + 7d
//
// User IDs themselves contain underscores, so the fixed fields are taken
// from the end of the split payload and the remainder is the user ID.
// Any input that does not decode into one of the two shapes yields ok=false.
func ParseToken(token string) (Claims, bool) {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Claims{}, false
	}

	parts := strings.Split(string(decoded), "_")

	// Current shape: ... issuedAt, expiresAt, nonce.
	if len(parts) >= 4 {
		issued, okIssued := parseMillis(parts[len(parts)-3])
		expires, okExpires := parseMillis(parts[len(parts)-2])
		if okIssued && okExpires {
			return Claims{
				UserID:    strings.Join(parts[:len(parts)-3], "_"),
				IssuedAt:  issued,
				ExpiresAt: expires,
				Nonce:     parts[len(parts)-1],
			}, true
		}
	}

	// Legacy shape: ... issuedAt, nonce.
	if len(parts) >= 3 {
		issued, ok := parseMillis(parts[len(parts)-2])
		if ok {
			return Claims{
				UserID:    strings.Join(parts[:len(parts)-2], "_"),
				IssuedAt:  issued,
				ExpiresAt: issued.Add(TokenValidity),
				Nonce:     parts[len(parts)-1],
			}, true
		}
	}

	return Claims{}, false
}

func parseMillis(s string) (time.Time, bool) {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}

// Expired reports whether the claims are past their expiry at the given
// moment. A token expiring exactly now is still accepted.
func (c Claims) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// IsTokenExpiringSoon reports whether the token is valid but within
// ExpiryWarningWindow of expiry. Undecodable tokens yield false.
func IsTokenExpiringSoon(token string) bool {
	claims, ok := ParseToken(token)
	if !ok {
		return false
	}
	left := claims.ExpiresAt.Sub(nowFn())
	return left > 0 && left < ExpiryWarningWindow
}

// TokenRemainingTime returns how long the token stays valid, never negative.
// Undecodable tokens yield zero.
func TokenRemainingTime(token string) time.Duration {
	claims, ok := ParseToken(token)
	if !ok {
		return 0
	}
	left := claims.ExpiresAt.Sub(nowFn())
	if left < 0 {
		return 0
	}
	return left
}
