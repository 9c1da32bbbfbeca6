// Package clientstore keeps per-visitor state in HMAC-signed cookies, one
// cookie per key. A value travels as sig.payload, both base64 rawurl; a bad
// signature or an undecodable payload reads as if the key were absent.
package clientstore

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
)

const maxAge = 60 * 60 * 24 * 180 // six months

type Store struct {
	secret []byte
}

func New(secret string) *Store {
	if secret == "" {
		secret = "dev-insecure"
	}
	return &Store{secret: []byte(secret)}
}

func (s *Store) Get(r *http.Request, key string) ([]byte, bool) {
	c, err := r.Cookie(key)
	if err != nil || c.Value == "" {
		return nil, false
	}
	payload, ok := s.verify(c.Value)
	return payload, ok
}

func (s *Store) Set(w http.ResponseWriter, key string, value []byte) {
	http.SetCookie(w, &http.Cookie{Name: key, Value: s.sign(value), Path: "/", MaxAge: maxAge, HttpOnly: true})
}

func (s *Store) Remove(w http.ResponseWriter, key string) {
	http.SetCookie(w, &http.Cookie{Name: key, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
}

// Load decodes the stored value into v, reporting false for absent or
// malformed data so the caller can fall back to its default.
func (s *Store) Load(r *http.Request, key string, v any) bool {
	payload, ok := s.Get(r, key)
	if !ok {
		return false
	}
	return json.Unmarshal(payload, v) == nil
}

func (s *Store) Save(w http.ResponseWriter, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.Set(w, key, b)
	return nil
}

func (s *Store) sign(payload []byte) string {
	h := hmac.New(sha256.New, s.secret)
	h.Write(payload)
	sig := base64.RawURLEncoding.EncodeToString(h.Sum(nil))
	return sig + "." + base64.RawURLEncoding.EncodeToString(payload)
}

func (s *Store) verify(value string) ([]byte, bool) {
	parts := strings.SplitN(value, ".", 2)
	if len(parts) != 2 {
		return nil, false
	}
	sig, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, false
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, false
	}
	h := hmac.New(sha256.New, s.secret)
	h.Write(payload)
	if !hmac.Equal(sig, h.Sum(nil)) {
		return nil, false
	}
	return payload, true
}
