package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Session holds the API base URL and the bearer token issued at login.
type Session struct {
	BaseURL string
	Token   string
	UserID  uint
	client  *http.Client
}

func NewSession() *Session {
	return &Session{client: &http.Client{Timeout: 10 * time.Second}}
}

type UserRow struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type ProjectRow struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UserID      uint   `json:"user_id"`
}

func (s *Session) Login(baseURL, email, password string) error {
	s.BaseURL = baseURL
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := s.client.Post(baseURL+"/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed (%d)", resp.StatusCode)
	}
	var out struct {
		Success struct {
			Token  string `json:"token"`
			UserID uint   `json:"userId"`
		} `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("decode login response: %w", err)
	}
	s.Token = out.Success.Token
	s.UserID = out.Success.UserID
	return nil
}

func (s *Session) Users() ([]UserRow, error) {
	var out struct {
		Users []UserRow `json:"users"`
	}
	if err := s.get("/users", &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// Projects lists the session user's projects. The API answers 404 for
// an empty set; the console shows that as an empty table instead.
func (s *Session) Projects() ([]ProjectRow, error) {
	var out struct {
		Projects []ProjectRow `json:"projects"`
	}
	err := s.get("/projects", &out)
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && se.code == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return out.Projects, nil
}

func (s *Session) DeleteProject(id uint) error {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/projects/%d", s.BaseURL, id), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.Token)
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("delete failed (%d)", resp.StatusCode)
	}
	return nil
}

type statusError struct {
	code int
}

func (e *statusError) Error() string { return fmt.Sprintf("unexpected status %d", e.code) }

func (s *Session) get(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, s.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.Token)
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &statusError{code: resp.StatusCode}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
