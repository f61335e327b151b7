package repository

import (
    "fmt"
    "regexp"
    "sync"

    "github.com/iliyamo/hotel-reservation/internal/model"
)

var (
    contactPattern       = regexp.MustCompile(`^\d{10}$`)
    complaintRoomPattern = regexp.MustCompile(`^\d{1,3}$`)
)

// ErrInvalidComplaint is returned when a complaint fails field
// validation.
var ErrInvalidComplaint = fmt.Errorf("invalid complaint")

// ComplaintRepo is the in-memory complaint log.  IDs come from a
// monotonic counter so they stay unique even after cascade deletions.
type ComplaintRepo struct {
    mu     sync.RWMutex
    nextID int
    items  []*model.Complaint
}

// NewComplaintRepo returns an empty complaint log.
func NewComplaintRepo() *ComplaintRepo {
    return &ComplaintRepo{nextID: 1}
}

// Add validates and records a complaint filed under the given guest
// name, returning a copy of the stored record.
func (r *ComplaintRepo) Add(username, contact, roomNumber, complaintType string, rating int) (*model.Complaint, error) {
    if !contactPattern.MatchString(contact) {
        return nil, fmt.Errorf("%w: contact number must be 10 digits", ErrInvalidComplaint)
    }
    if !complaintRoomPattern.MatchString(roomNumber) {
        return nil, fmt.Errorf("%w: room number must be 1-999", ErrInvalidComplaint)
    }
    if len(complaintType) < 3 {
        return nil, fmt.Errorf("%w: complaint type must be at least 3 characters", ErrInvalidComplaint)
    }
    if rating < 1 || rating > 5 {
        return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidComplaint)
    }

    r.mu.Lock()
    defer r.mu.Unlock()
    c := &model.Complaint{
        ID:            r.nextID,
        Username:      username,
        ContactNumber: contact,
        RoomNumber:    roomNumber,
        ComplaintType: complaintType,
        Rating:        rating,
    }
    r.nextID++
    r.items = append(r.items, c)
    cp := *c
    return &cp, nil
}

// List returns all complaints in filing order.
func (r *ComplaintRepo) List() []*model.Complaint {
    r.mu.RLock()
    defer r.mu.RUnlock()
    out := make([]*model.Complaint, 0, len(r.items))
    for _, c := range r.items {
        cp := *c
        out = append(out, &cp)
    }
    return out
}

// DeleteByUsername drops every complaint filed under the given guest
// name.  Part of the profile-deletion cascade.
func (r *ComplaintRepo) DeleteByUsername(username string) int {
    r.mu.Lock()
    defer r.mu.Unlock()
    kept := r.items[:0]
    removed := 0
    for _, c := range r.items {
        if c.Username == username {
            removed++
            continue
        }
        kept = append(kept, c)
    }
    r.items = kept
    return removed
}
