package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func restore() {
	tokenInfoEndpoint = "https://oauth2.googleapis.com/tokeninfo"
	httpClient = http.DefaultClient
}

func TestVerifyGoogleToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "tok123", r.URL.Query().Get("id_token"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"sub":"104857","name":"Alice","email":"alice@example.com","picture":"https://img/p.png"}`))
		}))
		defer srv.Close()
		tokenInfoEndpoint = srv.URL

		info, err := VerifyGoogleToken(context.Background(), "tok123")
		require.NoError(t, err)
		require.Equal(t, "104857", info.Sub)
		require.Equal(t, "Alice", info.Name)
		require.Equal(t, "alice@example.com", info.Email)
		require.Equal(t, "https://img/p.png", info.Picture)
	})

	t.Run("non-success status", func(t *testing.T) {
		t.Cleanup(restore)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()
		tokenInfoEndpoint = srv.URL

		_, err := VerifyGoogleToken(context.Background(), "bad")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unexpected status 400")
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Cleanup(restore)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()
		tokenInfoEndpoint = srv.URL

		_, err := VerifyGoogleToken(context.Background(), "tok")
		require.Error(t, err)
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		t.Cleanup(restore)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()
		tokenInfoEndpoint = srv.URL

		_, err := VerifyGoogleToken(context.Background(), "tok")
		require.Error(t, err)
	})
}
