package redis

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"time"
)

// SessionData is the refresh-session record stored per user. A user has at
// most one live refresh session; logging in again replaces it.
type SessionData struct {
	SessionID string    `json:"sessionId"`
	IssuedAt  time.Time `json:"issuedAt"`
}

// SessionStore persists refresh sessions in Redis, encrypted at rest.
type SessionStore struct {
	encryptionKey []byte
}

var (
	setSessionValue = Set
	getSessionValue = Get
	delSessionValue = Del
)

// NewSessionStore creates a session store from a 32-byte hex key.
func NewSessionStore(encryptionKeyHex string) (*SessionStore, error) {
	key, err := hex.DecodeString(encryptionKeyHex)
	if err != nil {
		return nil, errors.New("invalid encryption key hex")
	}
	if len(key) != 32 {
		return nil, errors.New("encryption key must be 32 bytes (64 hex chars)")
	}
	return &SessionStore{encryptionKey: key}, nil
}

// Create stores the refresh session for userID, replacing any existing one.
func (s *SessionStore) Create(ctx context.Context, userID, sessionID string, expiration time.Duration) error {
	jsonData, err := json.Marshal(&SessionData{SessionID: sessionID, IssuedAt: time.Now()})
	if err != nil {
		return err
	}

	encrypted, err := s.encrypt(jsonData)
	if err != nil {
		return err
	}

	return setSessionValue(ctx, sessionKey(userID), encrypted, expiration)
}

// Validate reports whether sessionID is the live refresh session for userID.
func (s *SessionStore) Validate(ctx context.Context, userID, sessionID string) (bool, error) {
	encrypted, err := getSessionValue(ctx, sessionKey(userID))
	if err != nil {
		return false, err
	}

	decrypted, err := s.decrypt(encrypted)
	if err != nil {
		return false, err
	}

	var data SessionData
	if err := json.Unmarshal(decrypted, &data); err != nil {
		return false, err
	}

	return data.SessionID == sessionID, nil
}

// Delete removes the refresh session for userID.
func (s *SessionStore) Delete(ctx context.Context, userID string) error {
	return delSessionValue(ctx, sessionKey(userID))
}

func sessionKey(userID string) string {
	return "session:user:" + userID
}

func (s *SessionStore) encrypt(plaintext []byte) (string, error) {
	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, plaintext, nil)
	return hex.EncodeToString(ciphertext), nil
}

func (s *SessionStore) decrypt(ciphertextHex string) ([]byte, error) {
	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce, data := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, data, nil)
}
