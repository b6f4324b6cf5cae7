package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/dcode-github/dream_nest/models"
	"github.com/dcode-github/dream_nest/services"
)

func RegisterUser(users services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("Error decoding user data: %v", err)
			writeError(w, http.StatusBadRequest, "Invalid request payload", nil)
			return
		}

		user, err := users.Register(r.Context(), req)
		if err != nil {
			status := statusFor(err)
			log.Printf("Registration failed for %s: %v", req.Email, err)
			switch status {
			case http.StatusConflict:
				writeError(w, status, "User already exists!", err)
			case http.StatusInternalServerError:
				writeError(w, status, "Registration failed!", err)
			default:
				writeError(w, status, "Invalid registration data", err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, models.APIResponse{Message: "User registered successfully", Data: user})
	}
}

func LoginUser(users services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("Error decoding login credentials: %v", err)
			writeError(w, http.StatusBadRequest, "Invalid payload", nil)
			return
		}

		token, user, err := users.Login(r.Context(), req)
		if err != nil {
			status := statusFor(err)
			log.Printf("Login failed for %s: %v", req.Email, err)
			switch status {
			case http.StatusUnauthorized:
				writeError(w, status, "Invalid credentials", nil)
			case http.StatusInternalServerError:
				writeError(w, status, "Login failed", err)
			default:
				writeError(w, status, "Invalid payload", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.APIResponse{Message: "Login successful", Token: token, Data: user})
	}
}
