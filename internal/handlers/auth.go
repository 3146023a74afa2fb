package handlers

import (
	"net/http"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"mindfullearner/internal/apperr"
	"mindfullearner/internal/models"
	"mindfullearner/internal/respond"
	"mindfullearner/internal/store"
)

type AuthHandler struct {
	store     *store.Store
	jwtSecret []byte
	tokenTTL  time.Duration
	logger    *zap.Logger
}

func NewAuthHandler(s *store.Store, jwtSecret []byte, tokenTTL time.Duration, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{store: s, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

const maxPasswordBytes = 72

type signupRequest struct {
	Username string `json:"username" validate:"notblank,max=64"`
	Password string `json:"password" validate:"notblank,min=6,max=72"`
	Email    string `json:"email" validate:"required,email"`
	Degree   string `json:"degree" validate:"notblank"`
	Goal     string `json:"goal" validate:"required,oneof=academic academic-plus all-round"`
}

type signinRequest struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decode(r, &req); err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	// bcrypt rejects secrets longer than 72 bytes; max above counts runes.
	if len(req.Password) > maxPasswordBytes {
		respond.Error(w, h.logger, apperr.Validation("password", "out_of_range"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	user, err := h.store.CreateUser(r.Context(), models.User{
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: string(hashed),
		Email:        strings.TrimSpace(strings.ToLower(req.Email)),
		Degree:       strings.TrimSpace(req.Degree),
		Goal:         req.Goal,
	})
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	token, err := h.issueJWT(user.ID)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	h.logger.Info("user signed up", zap.Int64("user_id", user.ID))
	respond.JSON(w, http.StatusCreated, authResponse{User: user, Token: token, Message: "User created successfully"})
}

func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := decode(r, &req); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	user, err := h.store.UserByUsername(r.Context(), strings.TrimSpace(req.Username))
	if apperr.Is(err, apperr.KindNotFound) {
		respond.Error(w, h.logger, apperr.Unauthenticated("invalid_credentials"))
		return
	}
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		respond.Error(w, h.logger, apperr.Unauthenticated("invalid_credentials"))
		return
	}

	token, err := h.issueJWT(user.ID)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, authResponse{User: user, Token: token, Message: "Signed in successfully"})
}

func (h *AuthHandler) issueJWT(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": now.Add(h.tokenTTL).Unix(),
		"iat": now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.jwtSecret)
}
