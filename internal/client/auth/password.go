package auth

import (
	"encoding/base64"
	"fmt"

	"github.com/moonui/moonui/internal/common"
)

// passwordSalt matches the value used by earlier builds; changing it would
// invalidate every stored password hash.
const passwordSalt = "moon_ui_salt_2024"

// EncodePassword produces the stored password form: the password with a
// fixed salt appended, base64-encoded. This is a deterministic, reversible
// encoding, not a cryptographic hash — a known weakness of the stored data
// format, kept for compatibility with existing user records.
func EncodePassword(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password + passwordSalt))
}

// NewUserID returns a new user identifier of the form
// user_<unixMillis>_<9 base36 chars>. Uniqueness is probabilistic; no check
// against the store is performed.
func NewUserID() string {
	return fmt.Sprintf("user_%d_%s", nowFn().UnixMilli(), common.RandBase36String(9))
}
