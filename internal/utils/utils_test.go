package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointers(t *testing.T) {
	assert.Equal(t, "x", *StrPtr("x"))
	assert.Equal(t, "", PtrString(nil))
	assert.Equal(t, "x", PtrString(StrPtr("x")))
}

func TestWriteJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSONError(w, "Book not found", http.StatusNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Book not found", body["error"])
}

func TestFormHelpers(t *testing.T) {
	form := url.Values{
		"title": {"  Dune  "},
		"blank": {"   "},
		"price": {"12.5"},
		"bad":   {"twelve"},
		"num":   {"7"},
	}

	t.Run("FormString", func(t *testing.T) {
		assert.Equal(t, "Dune", PtrString(FormString(form, "title")))
		assert.Nil(t, FormString(form, "blank"))
		assert.Nil(t, FormString(form, "missing"))
	})

	t.Run("FormFloat", func(t *testing.T) {
		f, err := FormFloat(form, "price")
		require.NoError(t, err)
		assert.Equal(t, 12.5, *f)

		f, err = FormFloat(form, "missing")
		assert.NoError(t, err)
		assert.Nil(t, f)

		_, err = FormFloat(form, "bad")
		assert.Error(t, err)
	})

	t.Run("FormInt", func(t *testing.T) {
		n, err := FormInt(form, "num", 0)
		require.NoError(t, err)
		assert.Equal(t, 7, n)

		n, err = FormInt(form, "missing", -1)
		require.NoError(t, err)
		assert.Equal(t, -1, n)

		_, err = FormInt(form, "bad", 0)
		assert.Error(t, err)
	})
}
