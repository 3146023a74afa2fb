package handlers

import "mindfullearner/internal/models"

// authResponse is the stored user without its password hash, plus a
// session token.
type authResponse struct {
	models.User
	Token   string `json:"token"`
	Message string `json:"message"`
}

type success struct {
	Success bool `json:"success"`
}

// dataEnvelope wraps health reads.
type dataEnvelope struct {
	Data any `json:"data"`
}

type preferencesEnvelope struct {
	Success     bool `json:"success,omitempty"`
	Preferences any  `json:"preferences"`
}

type roadmapsEnvelope struct {
	Roadmaps []models.Roadmap `json:"roadmaps"`
}

type hobbiesEnvelope struct {
	Hobbies []models.Hobby `json:"hobbies"`
}
