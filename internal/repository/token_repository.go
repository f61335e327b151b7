package repository

import (
    "sync"
    "time"

    "github.com/iliyamo/hotel-reservation/internal/model"
)

// TokenRepo keeps refresh-token hashes in memory, keyed by the hash
// itself.  Sessions therefore do not survive a restart, which matches
// the rest of the system's lifetime.
type TokenRepo struct {
    mu     sync.Mutex
    byHash map[string]*model.RefreshToken
}

// NewTokenRepo returns an empty token store.
func NewTokenRepo() *TokenRepo {
    return &TokenRepo{byHash: make(map[string]*model.RefreshToken)}
}

// StoreRefresh records a refresh token hash for a user.
func (r *TokenRepo) StoreRefresh(userID, tokenHash string, exp time.Time) {
    r.mu.Lock()
    defer r.mu.Unlock()
    r.byHash[tokenHash] = &model.RefreshToken{
        UserID:    userID,
        TokenHash: tokenHash,
        ExpiresAt: exp,
    }
}

// ValidateRefresh returns the owning user ID when a non-revoked,
// non-expired token with this hash exists.
func (r *TokenRepo) ValidateRefresh(tokenHash string) (string, error) {
    r.mu.Lock()
    defer r.mu.Unlock()
    t, ok := r.byHash[tokenHash]
    if !ok || t.RevokedAt != nil || time.Now().UTC().After(t.ExpiresAt) {
        return "", ErrNotFound
    }
    return t.UserID, nil
}

// RevokeByHash marks one token as revoked.
func (r *TokenRepo) RevokeByHash(tokenHash string) {
    r.mu.Lock()
    defer r.mu.Unlock()
    if t, ok := r.byHash[tokenHash]; ok && t.RevokedAt == nil {
        now := time.Now().UTC()
        t.RevokedAt = &now
    }
}

// RevokeAllForUser revokes every active token belonging to the user.
func (r *TokenRepo) RevokeAllForUser(userID string) {
    r.mu.Lock()
    defer r.mu.Unlock()
    now := time.Now().UTC()
    for _, t := range r.byHash {
        if t.UserID == userID && t.RevokedAt == nil {
            t.RevokedAt = &now
        }
    }
}
