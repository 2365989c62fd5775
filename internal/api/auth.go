package api

import (
	"context"
	"regexp"
	"strings"

	"collegehub/internal/keymap"
	"collegehub/internal/models"
	"collegehub/internal/session"
)

type AuthService struct {
	client *Client
	store  session.Store
}

type Credentials struct {
	StudentID string
	Password  string
	FirstName string
	LastName  string
}

type LoginResult struct {
	Token string
	User  models.User
}

// Leading colons and whitespace show up when credentials are pasted out of
// chat clients; everything after that prefix is the password and is never
// altered.
var passwordPrefix = regexp.MustCompile(`^[:\s]+`)

func sanitizePassword(pwd string) string {
	return strings.TrimSpace(passwordPrefix.ReplaceAllString(pwd, ""))
}

// Login authenticates against the backend and, on success, stores the
// returned token and normalizes the returned user object.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	payload := map[string]any{
		"studentId": strings.TrimSpace(creds.StudentID),
		"password":  sanitizePassword(creds.Password),
	}
	if first := strings.TrimSpace(creds.FirstName); first != "" {
		payload["firstName"] = first
	}
	if last := strings.TrimSpace(creds.LastName); last != "" {
		payload["lastName"] = last
	}

	res, err := s.client.Post(ctx, "/api/auth/login", payload)
	if err != nil {
		return nil, err
	}

	body, _ := res.(map[string]any)
	result := new(LoginResult)
	if token, ok := body["token"].(string); ok && token != "" {
		result.Token = token
		s.client.SetToken(token)
	}
	user, err := normalizeUser(body["user"])
	if err != nil {
		return nil, err
	}
	result.User = user
	return result, nil
}

// Logout clears the token and drops the cached user object older clients
// persisted alongside it.
func (s *AuthService) Logout(ctx context.Context) error {
	s.client.ClearToken()
	s.store.Remove(session.LegacyUserKey)
	return nil
}

func (s *AuthService) Me(ctx context.Context) (models.User, error) {
	res, err := s.client.Get(ctx, "/api/user/me")
	if err != nil {
		return models.User{}, err
	}
	return normalizeUser(res)
}

type ProfileUpdate struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

func (s *AuthService) UpdateProfile(ctx context.Context, update ProfileUpdate) (models.User, error) {
	res, err := s.client.Put(ctx, "/api/user/profile", update)
	if err != nil {
		return models.User{}, err
	}
	return normalizeUser(res)
}

// normalizeUser reconciles the user shapes the backend has been seen
// returning: camelCase, snake_case, and names nested under profile. Name
// values containing '.' or '_' are treated as mis-mapped fields and dropped.
func normalizeUser(v any) (models.User, error) {
	var user models.User
	if v == nil {
		return user, nil
	}
	if err := decode(v, &user); err != nil {
		return models.User{}, err
	}

	raw, _ := keymap.CamelKeys(v).(map[string]any)
	user.FirstName = pickName(raw, "firstName")
	user.LastName = pickName(raw, "lastName")
	if user.Name == "" {
		user.Name = user.DisplayName()
	}
	return user, nil
}

func pickName(raw map[string]any, key string) string {
	if name := validName(raw[key]); name != "" {
		return name
	}
	if profile, ok := raw["profile"].(map[string]any); ok {
		if name := validName(profile[key]); name != "" {
			return name
		}
	}
	return ""
}

func validName(v any) string {
	name, _ := v.(string)
	if strings.ContainsAny(name, "._") {
		return ""
	}
	return strings.TrimSpace(name)
}
