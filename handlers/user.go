package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/savoria/savoria/config"
	"github.com/savoria/savoria/database"
	"github.com/savoria/savoria/database/dbhelper"
	"github.com/savoria/savoria/middlewares"
	"github.com/savoria/savoria/models"
	"github.com/savoria/savoria/utils"
)

func Register(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.RespondError(w, http.StatusBadRequest, "all fields are required")
		return
	}
	if len(req.Password) < 6 {
		utils.RespondError(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	exists, err := dbhelper.IsUserExists(req.Email)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to check user existence")
		return
	}
	if exists {
		utils.RespondError(w, http.StatusBadRequest, "user already exists")
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	var userID uuid.UUID
	var accToken, refToken string
	// user row and role row commit together or not at all
	txErr := database.Tx(func(tx *sqlx.Tx) error {
		userID, err = dbhelper.CreateUser(tx, req.Name, req.Email, hashedPassword)
		if err != nil {
			logrus.Printf("failed to create user, error: %v", err)
			return err
		}

		if err = dbhelper.AssignRole(tx, userID, models.RoleUser); err != nil {
			logrus.Printf("failed to assign role to the user, error: %v", err)
			return err
		}

		accToken, refToken, err = utils.GenerateTokens(userID, []string{string(models.RoleUser)})
		if err != nil {
			logrus.Printf("failed to generate token, error: %v", err)
			return err
		}
		return nil
	})
	if txErr != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	setRefreshCookie(w, refToken)
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"user_id":      userID,
		"email":        req.Email,
		"name":         req.Name,
		"access_token": accToken,
	})
}

func Login(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.RespondError(w, http.StatusBadRequest, "email and password required")
		return
	}

	userID, name, err := dbhelper.GetUserByPassword(req.Email, req.Password)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "server error")
		return
	}

	roles, err := dbhelper.GetUserRolesByUserID(userID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "could not fetch roles")
		return
	}
	if len(roles) == 0 {
		utils.RespondError(w, http.StatusForbidden, "no roles assigned")
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(userID, roles)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to generate tokens")
		return
	}

	setRefreshCookie(w, refreshToken)
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"user_id":      userID,
		"name":         name,
		"email":        req.Email,
		"access_token": accessToken,
		"roles":        roles,
		"message":      "Successfully logged in",
	})
}

func RefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "refresh token missing")
		return
	}

	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.SecretKey), nil
	})
	if err != nil || !token.Valid {
		utils.RespondError(w, http.StatusUnauthorized, "invalid or expired refresh token")
		return
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "invalid refresh token subject")
		return
	}

	roles, err := dbhelper.GetUserRolesByUserID(userID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "could not fetch roles")
		return
	}

	newAccessToken, newRefreshToken, err := utils.GenerateTokens(userID, roles)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	setRefreshCookie(w, newRefreshToken)
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"access_token": newAccessToken,
	})
}

func Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Successfully logged out",
	})
}

// Me reports the authenticated session, which the admin dashboard uses for its
// access check before rendering.
func Me(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetAuthenticatedUser(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"user_id": claims.UserID,
		"roles":   claims.Roles,
	})
}

func setRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		Expires:  time.Now().Add(7 * 24 * time.Hour),
	})
}
