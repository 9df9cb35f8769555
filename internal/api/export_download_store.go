package api

import (
	"crypto/rand"
	"encoding/base64"
	"os"
	"sync"
	"time"
)

type exportDownload struct {
	filePath  string
	season    string
	expiresAt time.Time
}

// exportDownloadStore hands out one-time download tokens for generated
// report files.
type exportDownloadStore struct {
	mu    sync.Mutex
	items map[string]exportDownload
}

func newExportDownloadStore() *exportDownloadStore {
	return &exportDownloadStore{
		items: make(map[string]exportDownload),
	}
}

func (s *exportDownloadStore) put(filePath, seasonCode string, ttl time.Duration) (token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	token = newRandomToken(24)
	s.items[token] = exportDownload{
		filePath:  filePath,
		season:    seasonCode,
		expiresAt: time.Now().Add(ttl),
	}
	return token
}

func (s *exportDownloadStore) get(token string) (exportDownload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	v, ok := s.items[token]
	if !ok {
		return exportDownload{}, false
	}
	if time.Now().After(v.expiresAt) {
		delete(s.items, token)
		_ = os.Remove(v.filePath)
		return exportDownload{}, false
	}
	return v, true
}

// delete forgets the token. keepFile leaves the report on disk so a caller
// that is still streaming it can remove it afterwards.
func (s *exportDownloadStore) delete(token string, keepFile bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.items[token]
	delete(s.items, token)
	if ok && !keepFile {
		_ = os.Remove(v.filePath)
	}
}

// purgeExpiredLocked drops stale tokens and their report files.
func (s *exportDownloadStore) purgeExpiredLocked(now time.Time) {
	for k, v := range s.items {
		if now.After(v.expiresAt) {
			delete(s.items, k)
			_ = os.Remove(v.filePath)
		}
	}
}

func newRandomToken(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
