// AngelaMos | 2026
// security.go

package core

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/argon2"
)

const (
	saltLength     = 16
	sessionIDBytes = 32
)

type argonParams struct {
	memory  uint32
	time    uint32
	threads uint8
	keyLen  uint32
}

// currentArgon is what new hashes use. Stored hashes with any other
// parameters are upgraded on the next successful login.
var currentArgon = argonParams{
	memory:  64 * 1024,
	time:    1,
	threads: 4,
	keyLen:  32,
}

func (p argonParams) derive(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, p.time, p.memory, p.threads, p.keyLen)
}

// argonHash is the decoded form of a PHC string:
// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
type argonHash struct {
	params argonParams
	salt   []byte
	key    []byte
}

func (h argonHash) String() string {
	enc := base64.RawStdEncoding
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.memory, h.params.time, h.params.threads,
		enc.EncodeToString(h.salt),
		enc.EncodeToString(h.key),
	)
}

func parseArgonHash(encoded string) (argonHash, error) {
	fields := strings.Split(strings.TrimPrefix(encoded, "$"), "$")
	if len(fields) != 5 || fields[0] != "argon2id" {
		return argonHash{}, fmt.Errorf("parse password hash: not an argon2id PHC string")
	}

	var version int
	if _, err := fmt.Sscanf(fields[1], "v=%d", &version); err != nil {
		return argonHash{}, fmt.Errorf("parse password hash version: %w", err)
	}
	if version != argon2.Version {
		return argonHash{}, fmt.Errorf("parse password hash: argon2 version %d", version)
	}

	var h argonHash
	if _, err := fmt.Sscanf(fields[2], "m=%d,t=%d,p=%d",
		&h.params.memory, &h.params.time, &h.params.threads,
	); err != nil {
		return argonHash{}, fmt.Errorf("parse password hash params: %w", err)
	}

	var err error
	if h.salt, err = base64.RawStdEncoding.DecodeString(fields[3]); err != nil {
		return argonHash{}, fmt.Errorf("parse password hash salt: %w", err)
	}
	if h.key, err = base64.RawStdEncoding.DecodeString(fields[4]); err != nil {
		return argonHash{}, fmt.Errorf("parse password hash key: %w", err)
	}
	//nolint:gosec // G115: argon2 keys are a few dozen bytes
	h.params.keyLen = uint32(len(h.key))

	return h, nil
}

// HashPassword returns a PHC-encoded argon2id hash with a fresh salt.
func HashPassword(password string) (string, error) {
	salt, err := randomBytes(saltLength)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return argonHash{
		params: currentArgon,
		salt:   salt,
		key:    currentArgon.derive(password, salt),
	}.String(), nil
}

func VerifyPassword(password, encoded string) (bool, error) {
	h, err := parseArgonHash(encoded)
	if err != nil {
		return false, err
	}

	candidate := h.params.derive(password, h.salt)
	return subtle.ConstantTimeCompare(h.key, candidate) == 1, nil
}

func needsRehash(encoded string) bool {
	h, err := parseArgonHash(encoded)
	return err != nil || h.params != currentArgon
}

var unknownAccountHash = sync.OnceValue(func() string {
	h, err := HashPassword("no-such-account")
	if err != nil {
		panic(fmt.Sprintf("core: build placeholder hash: %v", err))
	}
	return h
})

// VerifyPasswordTimingSafe costs one argon2 derivation whether or not the
// account exists, so response time does not reveal usernames. A nil or
// empty hash never verifies. When the stored hash uses outdated
// parameters the second return value carries its replacement.
func VerifyPasswordTimingSafe(
	password string,
	encoded *string,
) (bool, string, error) {
	if encoded == nil || *encoded == "" {
		//nolint:errcheck // result discarded, only the work matters
		_, _ = VerifyPassword(password, unknownAccountHash())
		return false, "", nil
	}

	ok, err := VerifyPassword(password, *encoded)
	if err != nil || !ok {
		return false, "", err
	}

	if !needsRehash(*encoded) {
		return true, "", nil
	}

	upgraded, err := HashPassword(password)
	if err != nil {
		//nolint:nilerr // login already succeeded; the upgrade waits for next time
		return true, "", nil
	}
	return true, upgraded, nil
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}

// NewSessionID returns a 256-bit random identifier, URL-safe encoded.
func NewSessionID() (string, error) {
	b, err := randomBytes(sessionIDBytes)
	if err != nil {
		return "", fmt.Errorf("new session id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// HashToken is how session ids are keyed at rest, so a leaked Redis
// keyspace does not hand out live cookies.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
