package repository

import (
    "fmt"
    "regexp"
    "strings"
    "sync"
    "time"

    "github.com/iliyamo/hotel-reservation/internal/model"
    "github.com/iliyamo/hotel-reservation/internal/utils"
)

var (
    namePattern  = regexp.MustCompile(`^[a-zA-Z ]+$`)
    emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// ErrInvalidProfile is returned when a registration or profile update
// fails validation.  The wrapped message says which field was bad.
var ErrInvalidProfile = fmt.Errorf("invalid profile")

// UserRepo is the in-memory user store.  IDs are assigned as "U001",
// "U002", ... from a counter that never goes backwards, so deleting a
// profile cannot cause an ID to be reissued.
type UserRepo struct {
    mu      sync.RWMutex
    nextID  int
    byID    map[string]*model.User
    ordered []*model.User
}

// NewUserRepo returns an empty user store.
func NewUserRepo() *UserRepo {
    return &UserRepo{nextID: 1, byID: make(map[string]*model.User)}
}

// Seed inserts a user with a fixed ID and pre-chosen password.  It is
// used only for startup data and keeps the ID counter ahead of every
// seeded ID.
func (r *UserRepo) Seed(id, name, email, password string, admin bool, bcryptCost int) error {
    hash, err := utils.HashPassword(password, bcryptCost)
    if err != nil {
        return err
    }
    r.mu.Lock()
    defer r.mu.Unlock()
    if _, ok := r.byID[id]; ok {
        return fmt.Errorf("user %s already exists", id)
    }
    u := &model.User{
        ID:           id,
        Name:         name,
        Email:        strings.ToLower(email),
        PasswordHash: hash,
        Admin:        admin,
        CreatedAt:    time.Now().UTC(),
    }
    r.byID[id] = u
    r.ordered = append(r.ordered, u)
    var n int
    if _, err := fmt.Sscanf(id, "U%03d", &n); err == nil && n >= r.nextID {
        r.nextID = n + 1
    }
    return nil
}

// Register validates the profile fields, hashes the password and
// stores a new customer account.  Emails are unique case-insensitively.
func (r *UserRepo) Register(name, email, password string, bcryptCost int) (*model.User, error) {
    if err := validateName(name); err != nil {
        return nil, err
    }
    email = strings.ToLower(strings.TrimSpace(email))
    if err := validateEmail(email); err != nil {
        return nil, err
    }
    if err := validatePassword(password); err != nil {
        return nil, err
    }
    hash, err := utils.HashPassword(password, bcryptCost)
    if err != nil {
        return nil, err
    }

    r.mu.Lock()
    defer r.mu.Unlock()
    if r.emailTakenLocked(email, "") {
        return nil, ErrEmailExists
    }
    u := &model.User{
        ID:           fmt.Sprintf("U%03d", r.nextID),
        Name:         name,
        Email:        email,
        PasswordHash: hash,
        Admin:        false,
        CreatedAt:    time.Now().UTC(),
    }
    r.nextID++
    r.byID[u.ID] = u
    r.ordered = append(r.ordered, u)
    cp := *u
    return &cp, nil
}

// GetByID returns a copy of the user with the given ID.
func (r *UserRepo) GetByID(id string) (*model.User, error) {
    r.mu.RLock()
    defer r.mu.RUnlock()
    u, ok := r.byID[id]
    if !ok {
        return nil, ErrNotFound
    }
    cp := *u
    return &cp, nil
}

// Authenticate verifies the credentials and returns the user on
// success.  A miss and a bad password are indistinguishable to the
// caller.
func (r *UserRepo) Authenticate(id, password string) (*model.User, error) {
    r.mu.RLock()
    u, ok := r.byID[id]
    r.mu.RUnlock()
    if !ok || !utils.VerifyPassword(u.PasswordHash, password) {
        return nil, ErrNotFound
    }
    cp := *u
    return &cp, nil
}

// ProfileUpdate carries the optional fields of an in-place profile
// update.  Nil means "keep the current value".
type ProfileUpdate struct {
    Name     *string
    Email    *string
    Password *string
}

// Update applies a partial profile update to the user.  Each supplied
// field is validated the same way as at registration; the user ID and
// admin flag can never change.
func (r *UserRepo) Update(id string, upd ProfileUpdate, bcryptCost int) (*model.User, error) {
    var newHash string
    if upd.Password != nil {
        if err := validatePassword(*upd.Password); err != nil {
            return nil, err
        }
        h, err := utils.HashPassword(*upd.Password, bcryptCost)
        if err != nil {
            return nil, err
        }
        newHash = h
    }
    if upd.Name != nil {
        if err := validateName(*upd.Name); err != nil {
            return nil, err
        }
    }

    r.mu.Lock()
    defer r.mu.Unlock()
    u, ok := r.byID[id]
    if !ok {
        return nil, ErrNotFound
    }
    if upd.Email != nil {
        email := strings.ToLower(strings.TrimSpace(*upd.Email))
        if err := validateEmail(email); err != nil {
            return nil, err
        }
        if email != u.Email && r.emailTakenLocked(email, id) {
            return nil, ErrEmailExists
        }
        u.Email = email
    }
    if upd.Name != nil {
        u.Name = *upd.Name
    }
    if newHash != "" {
        u.PasswordHash = newHash
    }
    cp := *u
    return &cp, nil
}

// Delete removes a user account.  The caller is responsible for the
// cascade (reservations, complaints, sessions).
func (r *UserRepo) Delete(id string) (*model.User, error) {
    r.mu.Lock()
    defer r.mu.Unlock()
    u, ok := r.byID[id]
    if !ok {
        return nil, ErrNotFound
    }
    delete(r.byID, id)
    for i, cand := range r.ordered {
        if cand == u {
            r.ordered = append(r.ordered[:i], r.ordered[i+1:]...)
            break
        }
    }
    cp := *u
    return &cp, nil
}

func (r *UserRepo) emailTakenLocked(email, exceptID string) bool {
    for _, u := range r.ordered {
        if u.ID != exceptID && strings.EqualFold(u.Email, email) {
            return true
        }
    }
    return false
}

func validateName(name string) error {
    if len(name) < 2 || len(name) > 50 {
        return fmt.Errorf("%w: name must be 2-50 characters", ErrInvalidProfile)
    }
    if !namePattern.MatchString(name) {
        return fmt.Errorf("%w: name must contain only letters and spaces", ErrInvalidProfile)
    }
    return nil
}

func validateEmail(email string) error {
    if len(email) < 5 || len(email) > 50 {
        return fmt.Errorf("%w: email must be 5-50 characters", ErrInvalidProfile)
    }
    if !emailPattern.MatchString(email) {
        return fmt.Errorf("%w: invalid email format", ErrInvalidProfile)
    }
    return nil
}

func validatePassword(password string) error {
    if len(password) < 6 || len(password) > 20 {
        return fmt.Errorf("%w: password must be 6-20 characters", ErrInvalidProfile)
    }
    var lower, upper, digit bool
    for _, c := range password {
        switch {
        case c >= 'a' && c <= 'z':
            lower = true
        case c >= 'A' && c <= 'Z':
            upper = true
        case c >= '0' && c <= '9':
            digit = true
        }
    }
    if !lower || !upper || !digit {
        return fmt.Errorf("%w: password needs a lowercase letter, an uppercase letter and a digit", ErrInvalidProfile)
    }
    return nil
}
