package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"party-lab/auth"
	"party-lab/domain"
	"party-lab/errors"
	"party-lab/services"
	"strconv"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Message string      `json:"message"`
	User    string      `json:"user"`
	Role    domain.Role `json:"role"`
	Token   string      `json:"token"`
}

type profileResponse struct {
	User string      `json:"user"`
	Role domain.Role `json:"role"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var body credentials
	if err := decodeJSON(w, r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	_, err := s.authService.Register(r.Context(), auth.RegisterRequest{
		Username: body.Username,
		Password: body.Password,
		Role:     body.Role,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "user registered"})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var body credentials
	if err := decodeJSON(w, r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	token, session, err := s.authService.Login(r.Context(), auth.LoginRequest{
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token.String(),
		Path:     "/",
		MaxAge:   int(s.issuer.Duration().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, loginResponse{
		Message: "logged in",
		User:    session.Username,
		Role:    session.Role,
		Token:   token.String(),
	})
}

// logout only clears the cookie, tokens are stateless and expire on their own.
func (s *Server) logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, messageResponse{Message: "logged out"})
}

func (s *Server) profile(w http.ResponseWriter, r *http.Request) {
	session, err := s.authService.Profile(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profileResponse{User: session.Username, Role: session.Role})
}

func (s *Server) listCharacters(w http.ResponseWriter, r *http.Request) {
	characters, err := s.characterService.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, characters)
}

func (s *Server) createCharacter(w http.ResponseWriter, r *http.Request) {
	var input services.CharacterInput
	if err := decodeJSON(w, r, &input); err != nil {
		s.writeError(w, r, err)
		return
	}
	created, err := s.characterService.Create(r.Context(), input)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (s *Server) updateCharacter(w http.ResponseWriter, r *http.Request) {
	id, err := characterID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var patch services.CharacterPatch
	if err = decodeJSON(w, r, &patch); err != nil {
		s.writeError(w, r, err)
		return
	}
	updated, err := s.characterService.Update(r.Context(), id, patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteCharacter(w http.ResponseWriter, r *http.Request) {
	id, err := characterID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err = s.characterService.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "character deleted"})
}

// generateParties accepts the bare id array of the legacy client as well as a full request object.
func (s *Server) generateParties(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	request, err := parseGenerateRequest(body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	result, err := s.partyService.Generate(r.Context(), request)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result.Parties)
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func parseGenerateRequest(body []byte) (services.GenerateRequest, error) {
	var request services.GenerateRequest
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &request.IDs); err != nil {
			return services.GenerateRequest{}, fmt.Errorf("%w: ids must be an array of integers", errors.ErrInvalidInput)
		}
		return request, nil
	}
	if err := json.Unmarshal(trimmed, &request); err != nil {
		return services.GenerateRequest{}, fmt.Errorf("%w: malformed generate request", errors.ErrInvalidInput)
	}
	return request, nil
}

func characterID(r *http.Request) (domain.CharacterID, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: character id must be a positive integer", errors.ErrInvalidInput)
	}
	return domain.CharacterID(id), nil
}
