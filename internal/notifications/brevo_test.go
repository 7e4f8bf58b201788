package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"flowworks-backend/internal/contact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ contact.Notifier = (*BrevoClient)(nil)

func TestNewBrevoClientDisabledWithoutCredentials(t *testing.T) {
	assert.Nil(t, NewBrevoClient("", "hello@flowworks.dev", "", "", false))
	assert.Nil(t, NewBrevoClient("key", "  ", "", "", false))

	c := NewBrevoClient("key", "hello@flowworks.dev", "", "", false)
	require.NotNil(t, c)
	assert.Equal(t, "hello@flowworks.dev", c.senderName)
	assert.Equal(t, "hello@flowworks.dev", c.notifyEmail)
}

func TestSendContactNotification(t *testing.T) {
	var got brevoSendRequest
	var apiKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.Header.Get("api-key")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"messageId":"<abc@brevo>"}`))
	}))
	defer srv.Close()

	c := NewBrevoClient("secret", "hello@flowworks.dev", "FlowWorks", "team@flowworks.dev", true)
	c.endpoint = srv.URL

	id, err := c.SendContactNotification(context.Background(), contact.Inquiry{
		ID:      "65f0c0ffee",
		Name:    "Dana",
		Email:   "dana@example.com",
		Company: "Whitfield Transport",
		Message: "<b>help</b>",
	})
	require.NoError(t, err)
	assert.Equal(t, "<abc@brevo>", id)
	assert.Equal(t, "secret", apiKey)

	require.Len(t, got.To, 1)
	assert.Equal(t, "team@flowworks.dev", got.To[0].Email)
	assert.Equal(t, "New inquiry from Dana (Whitfield Transport)", got.Subject)
	assert.Equal(t, "drop", got.Headers["X-Sib-Sandbox"])
	assert.Contains(t, got.HtmlContent, "&lt;b&gt;help&lt;/b&gt;")
}

func TestSendContactAcknowledgement(t *testing.T) {
	var got brevoSendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"messageId":"m-1"}`))
	}))
	defer srv.Close()

	c := NewBrevoClient("secret", "hello@flowworks.dev", "FlowWorks", "", false)
	c.endpoint = srv.URL

	_, err := c.SendContactAcknowledgement(context.Background(), contact.Inquiry{Name: "Dana", Email: "dana@example.com", Message: "hi"})
	require.NoError(t, err)
	require.Len(t, got.To, 1)
	assert.Equal(t, "dana@example.com", got.To[0].Email)
	assert.Nil(t, got.Headers)
}

func TestSendReportsUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"unauthorized"}`))
	}))
	defer srv.Close()

	c := NewBrevoClient("bad", "hello@flowworks.dev", "", "", false)
	c.endpoint = srv.URL

	_, err := c.SendContactAcknowledgement(context.Background(), contact.Inquiry{Name: "Dana", Email: "dana@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=401")

	_, err = c.SendContactAcknowledgement(context.Background(), contact.Inquiry{Name: "Dana"})
	assert.EqualError(t, err, "missing recipient email")
}
