package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pventura/stockroom/internal/auth"
)

// SignupHandler godoc
// @Summary Register a new account and return an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username, password, display name"
// @Success 201 {object} SignupResult
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/signup [post]
func SignupHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if creds.Username == "" || creds.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}
	if len(creds.Username) < 3 || len(creds.Password) < 6 {
		writeError(w, http.StatusBadRequest, "username or password too short")
		return
	}

	account, err := userStore.Register(r.Context(), creds.Username, creds.Password, creds.Name)
	if err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			writeError(w, http.StatusConflict, "An account with this username already exists. Please try signing in instead.")
			return
		}
		writeRepoError(w, err, "")
		return
	}

	token, err := auth.GenerateToken(account)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	writeJSON(w, http.StatusCreated, SignupResult{Success: true, Token: token})
}

// LoginHandler godoc
// @Summary Exchange credentials for an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	account, err := userStore.Authenticate(r.Context(), creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, auth.ErrBadCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid username or password")
			return
		}
		writeRepoError(w, err, "")
		return
	}

	token, err := auth.GenerateToken(account)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	writeJSON(w, http.StatusOK, LoginResult{Token: token})
}
