package config_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MohitGedela/GeoShield/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func TestSlack_Configure(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled without flags", func(t *testing.T) {
		notifier, err := config.NewSlackForTest("", "", "").Configure(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, notifier).Nil()
	})

	t.Run("partial configuration is an error", func(t *testing.T) {
		_, err := config.NewSlackForTest("xoxb-token", "", "").Configure(ctx)
		gt.Error(t, err).Is(config.ErrInvalidConfig)
	})

	t.Run("resolves channel at startup", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/conversations.info", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"ok":true,"channel":{"id":"C123","name":"disaster-ops"}}`))
		})
		srv := httptest.NewServer(mux)
		t.Cleanup(srv.Close)

		notifier, err := config.NewSlackForTest("xoxb-token", "C123", srv.URL+"/").Configure(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, notifier).NotNil()
	})

	t.Run("unknown channel fails", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/conversations.info", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"ok":false,"error":"channel_not_found"}`))
		})
		srv := httptest.NewServer(mux)
		t.Cleanup(srv.Close)

		_, err := config.NewSlackForTest("xoxb-token", "C999", srv.URL+"/").Configure(ctx)
		gt.Value(t, err).NotNil()
	})
}

func TestRepository_Configure(t *testing.T) {
	ctx := context.Background()

	t.Run("memory backend", func(t *testing.T) {
		repo, err := config.NewRepositoryForTest("memory", "").Configure(ctx)
		gt.NoError(t, err).Required()
		gt.NoError(t, repo.Close())
	})

	t.Run("firestore requires project", func(t *testing.T) {
		_, err := config.NewRepositoryForTest("firestore", "").Configure(ctx)
		gt.Error(t, err).Is(config.ErrInvalidConfig)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := config.NewRepositoryForTest("postgres", "").Configure(ctx)
		gt.Error(t, err).Is(config.ErrInvalidConfig)
	})
}
