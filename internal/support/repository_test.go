package support

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rebookz-admin/internal/apiclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "/support", r.URL.Path)
			w.Write([]byte(`[{"_id":"t1","category":"account","description":"Cannot log in","status":"open","contactEmail":"a@b.c"}]`))
		case http.MethodPut:
			assert.Equal(t, "/support/t1", r.URL.Path)
			var body Response
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, StatusClosed, body.Status)
			assert.Equal(t, "Password reset sent", body.AdminResponse)
			w.Write([]byte(`{"_id":"t1","status":"closed","adminResponse":"Password reset sent"}`))
		}
	}))
	defer srv.Close()

	repo := NewRepository(apiclient.New(srv.URL))
	ctx := context.Background()

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].User)
	assert.Equal(t, "a@b.c", items[0].Email())

	updated, err := repo.Update(ctx, "t1", Response{Status: StatusClosed, AdminResponse: "Password reset sent"})
	require.NoError(t, err)
	assert.Equal(t, "Password reset sent", updated.AdminResponse)
}
