package utils

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

func StrPtr(s string) *string {
	return &s
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func WriteJSONError(w http.ResponseWriter, message string, code int) {
	WriteJSON(w, code, map[string]string{"error": message})
}

// FormString returns the trimmed value of key, or nil when the field is
// missing or blank.
func FormString(form url.Values, key string) *string {
	v := strings.TrimSpace(form.Get(key))
	if v == "" {
		return nil
	}
	return &v
}

// FormFloat parses key as a float, returning nil when the field is blank.
func FormFloat(form url.Values, key string) (*float64, error) {
	raw := FormString(form, key)
	if raw == nil {
		return nil, nil
	}
	f, err := strconv.ParseFloat(*raw, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// FormInt parses key as an int, returning def when the field is blank.
func FormInt(form url.Values, key string, def int) (int, error) {
	raw := FormString(form, key)
	if raw == nil {
		return def, nil
	}
	return strconv.Atoi(*raw)
}
