package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/edusynth/internal/utils"
)

func token(t *testing.T, id string) string {
	t.Helper()
	tok, err := utils.NewToken("k", id, "Ada", "ada@example.com", time.Hour)
	require.NoError(t, err)
	return tok.Token
}

func TestRegister_ReturnsSessionFromNewToken(t *testing.T) {
	raw := token(t, "u-1")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sign-in", r.URL.Path)
		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "Ada", in["fullName"])
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "User created", "newtoken": raw})
	}))
	defer srv.Close()

	s, err := New(srv.URL, nil).Register(context.Background(), "Ada", "ada@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u-1", s.User.ID)
	assert.Equal(t, raw, s.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "User already exists", "code": "conflict"})
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).Register(context.Background(), "Ada", "ada@example.com", "pw")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "User already exists", apiErr.Message)
}

func TestLogin_ReadsTokenCookie(t *testing.T) {
	raw := token(t, "")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/login", r.URL.Path)
		http.SetCookie(w, &http.Cookie{Name: TokenCookie, Value: raw, HttpOnly: true, Path: "/"})
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "Login successful"})
	}))
	defer srv.Close()

	s, err := New(srv.URL+"/", nil).Login(context.Background(), "ada@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", s.User.Email)
	assert.Empty(t, s.User.ID)
}

func TestLogin_InvalidCredentialsIs500WithCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Invalid credentials", "code": "invalid_credentials"})
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).Login(context.Background(), "ada@example.com", "bad")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestLogin_MissingCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).Login(context.Background(), "ada@example.com", "pw")
	assert.Error(t, err)
}

func TestUpdateProgress_SendsBearerAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/courses/catalog-1", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		var in ProgressUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, 50, in.Progress)
		assert.Equal(t, 1, in.CompletedLessons)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	err := New(srv.URL, nil).UpdateProgress(context.Background(), "tok",
		ProgressUpdate{CourseID: "catalog-1", Progress: 50, CompletedLessons: 1})
	assert.NoError(t, err)
}

func TestUpdateProgress_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"missing token"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	err := c.UpdateProgress(context.Background(), "", ProgressUpdate{CourseID: "x"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = c.UpdateProgress(context.Background(), "tok", ProgressUpdate{})
	assert.Error(t, err)
}
