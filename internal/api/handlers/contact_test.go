package handlers_test

import (
	"net/http"
	"testing"

	"github.com/chiroyli/salon-backend/internal/domain"
	"github.com/chiroyli/salon-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactHandler_Submit(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		request        map[string]string
		expectedStatus int
	}{
		{
			name: "valid submission",
			request: map[string]string{
				"name":    "Dilnoza",
				"email":   "dilnoza@example.com",
				"phone":   "+998901234567",
				"message": "Do you do bridal makeup?",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name",
			request:        map[string]string{"email": "d@example.com"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid email",
			request:        map[string]string{"name": "Dilnoza", "email": "nope"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.APIURL("/contact"), tt.request)
			defer resp.Body.Close()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}

	var count int64
	require.NoError(t, ts.DB.DB.Model(&domain.ContactSubmission{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "only the valid submission should be stored")
}

func TestContactHandler_List(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, cookie := testutil.RegisterUser(t, ts, "staff@x.com", "secret1")

	resp := postJSON(t, ts.APIURL("/contact"), map[string]string{
		"name":  "Dilnoza",
		"email": "dilnoza@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	t.Run("requires a session", func(t *testing.T) {
		resp := doGet(t, ts.APIURL("/contact"), nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("lists stored submissions", func(t *testing.T) {
		resp := doGet(t, ts.APIURL("/contact"), cookie)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got []struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		}
		testutil.AssertJSONResponse(t, resp, &got)
		require.Len(t, got, 1)
		assert.Equal(t, "Dilnoza", got[0].Name)
		assert.Equal(t, "dilnoza@example.com", got[0].Email)
	})
}

func TestContactHandler_Newsletter(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("subscribe", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/newsletter"), map[string]string{"email": "sub@example.com"})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("duplicate subscribe is idempotent", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/newsletter"), map[string]string{"email": "SUB@example.com"})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var count int64
		require.NoError(t, ts.DB.DB.Model(&domain.NewsletterSubscription{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/newsletter"), map[string]string{"email": "bogus"})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
