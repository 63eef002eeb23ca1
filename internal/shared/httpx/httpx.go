package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
)

type HandlerFunc func(http.ResponseWriter, *http.Request) error

type APIError struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
	Status int    `json:"status"`
}

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// Headers injected by the upstream gateway after it has authenticated the
// request. This service never sees credentials.
const (
	HeaderFamilySpace = "X-Family-Space"
	HeaderUserID      = "X-User-Id"
)

func WriteJSON(w http.ResponseWriter, v any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, err error, reason string) {
	if err == nil {
		err = errors.New(http.StatusText(status))
	}
	WriteJSON(w, APIError{Error: err.Error(), Reason: reason, Status: status}, status)
}

func Wrap(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			code := http.StatusBadRequest
			switch {
			case errors.Is(err, ErrUnauthorized):
				code = http.StatusUnauthorized
			case errors.Is(err, ErrNotFound):
				code = http.StatusNotFound
			}
			WriteError(w, code, err, "")
		}
	})
}

func Decode[T any](r *http.Request) (T, error) {
	var t T
	err := json.NewDecoder(r.Body).Decode(&t)
	return t, err
}

func FamilyFromRequest(r *http.Request) (string, error) {
	fid := r.Header.Get(HeaderFamilySpace)
	if fid == "" {
		return "", ErrUnauthorized
	}
	return fid, nil
}

func UserFromRequest(r *http.Request) (string, error) {
	uid := r.Header.Get(HeaderUserID)
	if uid == "" {
		return "", ErrUnauthorized
	}
	return uid, nil
}

func QueryInt(r *http.Request, key string, def int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
