package handlers_test

import (
	"net/http"
	"testing"

	"github.com/chiroyli/salon-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doPatch(t *testing.T, url string, cookie *http.Cookie) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPatch, url, nil)
	require.NoError(t, err)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func doGet(t *testing.T, url string, cookie *http.Cookie) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

type notificationJSON struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Title  string `json:"title"`
	IsRead bool   `json:"isRead"`
}

func TestNotificationHandler(t *testing.T) {
	ts := testutil.NewTestServer(t)

	me, cookie := testutil.RegisterUser(t, ts, "notify@x.com", "secret1")
	other, _ := testutil.RegisterUser(t, ts, "other@x.com", "secret1")

	mine := testutil.NewNotificationBuilder(me.User.ID).WithTitle("Your booking is tomorrow").Build(t, ts.DB.DB)
	testutil.NewNotificationBuilder(me.User.ID).WithTitle("Booking confirmed").Read().Build(t, ts.DB.DB)
	theirs := testutil.NewNotificationBuilder(other.User.ID).Build(t, ts.DB.DB)

	t.Run("list returns only own notifications", func(t *testing.T) {
		resp := doGet(t, ts.APIURL("/notifications"), cookie)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got []notificationJSON
		testutil.AssertJSONResponse(t, resp, &got)
		require.Len(t, got, 2)
		for _, n := range got {
			assert.NotEqual(t, theirs.ID.String(), n.ID)
		}
	})

	t.Run("list requires a session", func(t *testing.T) {
		resp := doGet(t, ts.APIURL("/notifications"), nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("mark one read", func(t *testing.T) {
		resp := doPatch(t, ts.APIURL("/notifications/"+mine.ID.String()+"/read"), cookie)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got notificationJSON
		testutil.AssertJSONResponse(t, resp, &got)
		assert.Equal(t, mine.ID.String(), got.ID)
		assert.True(t, got.IsRead)
	})

	t.Run("cannot mark someone else's notification", func(t *testing.T) {
		resp := doPatch(t, ts.APIURL("/notifications/"+theirs.ID.String()+"/read"), cookie)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		resp := doPatch(t, ts.APIURL("/notifications/not-a-uuid/read"), cookie)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("read-all is idempotent", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			resp := doPatch(t, ts.APIURL("/notifications/read-all"), cookie)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			resp.Body.Close()
		}

		resp := doGet(t, ts.APIURL("/notifications"), cookie)
		defer resp.Body.Close()

		var got []notificationJSON
		testutil.AssertJSONResponse(t, resp, &got)
		require.Len(t, got, 2)
		for _, n := range got {
			assert.True(t, n.IsRead)
		}
	})
}
