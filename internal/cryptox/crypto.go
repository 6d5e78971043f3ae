// Package cryptox derives account keys and seals the free-text practice
// note. Sealed notes are the only form in which a note reaches storage or
// the wire.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sanmitsu/internal/common"
	"golang.org/x/crypto/argon2"
)

// NoteSchemeVersion identifies the sealing format produced by SealNote.
const NoteSchemeVersion = 1

var ErrUnsupportedScheme = errors.New("unsupported note scheme")

func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}

func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// SealNote encrypts plaintext with AES-256-GCM under key and returns the
// ciphertext and nonce as standard base64 strings.
func SealNote(plaintext string, key []byte) (ciphertext, nonce string, err error) {
	aead, err := newGCM(key)
	if err != nil {
		return "", "", err
	}

	n := common.GenerateRandByteArray(aead.NonceSize())
	sealed := aead.Seal(nil, n, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(sealed), base64.StdEncoding.EncodeToString(n), nil
}

// OpenNote reverses SealNote. version is the entry's noteVersion; nil is
// treated as NoteSchemeVersion.
func OpenNote(ciphertext, nonce string, version *int, key []byte) (string, error) {
	if version != nil && *version != NoteSchemeVersion {
		return "", fmt.Errorf("%w: %d", ErrUnsupportedScheme, *version)
	}

	sealed, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("decode ciphertext: %w", err)
	}
	n, err := base64.StdEncoding.DecodeString(nonce)
	if err != nil {
		return "", fmt.Errorf("decode nonce: %w", err)
	}

	aead, err := newGCM(key)
	if err != nil {
		return "", err
	}
	if len(n) != aead.NonceSize() {
		return "", fmt.Errorf("bad nonce length %d", len(n))
	}

	plaintext, err := aead.Open(nil, n, sealed, nil)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
