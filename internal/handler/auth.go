package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-reservation/internal/config"
    "github.com/iliyamo/hotel-reservation/internal/model"
    "github.com/iliyamo/hotel-reservation/internal/repository"
    "github.com/iliyamo/hotel-reservation/internal/utils"
)

// AuthHandler owns registration, login, token refresh and the
// profile endpoints.  Deleting a profile cascades into the ledger,
// the complaint log and the session store.
type AuthHandler struct {
    Cfg        config.Config
    Users      *repository.UserRepo
    Tokens     *repository.TokenRepo
    Ledger     *repository.ReservationRepo
    Complaints *repository.ComplaintRepo
}

// userView is the JSON shape of a user profile in responses.  The
// password hash never leaves the server.
type userView struct {
    UserID string `json:"user_id"`
    Name   string `json:"name"`
    Email  string `json:"email"`
    Role   string `json:"role"`
}

func userViewOf(u *model.User) userView {
    return userView{UserID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role()}
}

// Register creates a customer account.  POST /v1/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
    var body struct {
        Name     string `json:"name"`
        Email    string `json:"email"`
        Password string `json:"password"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    u, err := h.Users.Register(body.Name, body.Email, body.Password, h.Cfg.BcryptCost)
    if err != nil {
        return writeRepoError(c, err)
    }
    return c.JSON(http.StatusCreated, userViewOf(u))
}

// Login authenticates by user ID and password and issues a token
// pair.  POST /v1/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
    var body struct {
        UserID   string `json:"user_id"`
        Password string `json:"password"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    u, err := h.Users.Authenticate(body.UserID, body.Password)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
    }
    return h.issueTokens(c, u)
}

// Refresh rotates a refresh token: the presented token is revoked and
// a fresh pair is issued.  POST /v1/auth/refresh
func (h *AuthHandler) Refresh(c echo.Context) error {
    var body struct {
        RefreshToken string `json:"refresh_token"`
    }
    if err := c.Bind(&body); err != nil || body.RefreshToken == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token is required"})
    }
    hash := utils.HashRefreshRaw(body.RefreshToken)
    userID, err := h.Tokens.ValidateRefresh(hash)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired refresh token"})
    }
    u, err := h.Users.GetByID(userID)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired refresh token"})
    }
    h.Tokens.RevokeByHash(hash)
    return h.issueTokens(c, u)
}

// Logout revokes the presented refresh token.  POST /v1/auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
    var body struct {
        RefreshToken string `json:"refresh_token"`
    }
    if err := c.Bind(&body); err != nil || body.RefreshToken == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token is required"})
    }
    h.Tokens.RevokeByHash(utils.HashRefreshRaw(body.RefreshToken))
    return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}

// Me returns the authenticated user's profile.  GET /v1/me
func (h *AuthHandler) Me(c echo.Context) error {
    req, err := requester(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    u, err := h.Users.GetByID(req.UserID)
    if err != nil {
        return writeRepoError(c, err)
    }
    return c.JSON(http.StatusOK, userViewOf(u))
}

// UpdateMe applies a partial profile update.  Omitted fields keep
// their current values.  PUT /v1/me
func (h *AuthHandler) UpdateMe(c echo.Context) error {
    req, err := requester(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var body struct {
        Name     *string `json:"name"`
        Email    *string `json:"email"`
        Password *string `json:"password"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    u, err := h.Users.Update(req.UserID, repository.ProfileUpdate{
        Name:     body.Name,
        Email:    body.Email,
        Password: body.Password,
    }, h.Cfg.BcryptCost)
    if err != nil {
        return writeRepoError(c, err)
    }
    return c.JSON(http.StatusOK, userViewOf(u))
}

// DeleteMe removes the account and everything hanging off it: all of
// the user's reservations, their complaints and their sessions.
// DELETE /v1/me
func (h *AuthHandler) DeleteMe(c echo.Context) error {
    req, err := requester(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    u, err := h.Users.Delete(req.UserID)
    if err != nil {
        return writeRepoError(c, err)
    }
    cancelled := h.Ledger.CancelAllForUser(u.ID)
    removed := h.Complaints.DeleteByUsername(u.Name)
    h.Tokens.RevokeAllForUser(u.ID)
    return c.JSON(http.StatusOK, echo.Map{
        "message":                "profile deleted",
        "cancelled_reservations": cancelled,
        "removed_complaints":     removed,
    })
}

func (h *AuthHandler) issueTokens(c echo.Context, u *model.User) error {
    access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role(), h.Cfg.AccessTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not issue token"})
    }
    refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not issue token"})
    }
    h.Tokens.StoreRefresh(u.ID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp)
    return c.JSON(http.StatusOK, echo.Map{
        "access_token":  access.Token,
        "expires_at":    access.Exp,
        "refresh_token": refresh.Raw,
        "user":          userViewOf(u),
    })
}
