package bootstrap_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go-hrms/internal/bootstrap"
	"go-hrms/internal/config"

	"github.com/stretchr/testify/assert"
)

type recordingAudit struct {
	entries []bootstrap.AuditLog
}

func (r *recordingAudit) Log(ctx context.Context, entry bootstrap.AuditLog) {
	r.entries = append(r.entries, entry)
}

func TestRunHTTPServer_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	audit := &recordingAudit{}

	done := make(chan error, 1)
	go func() {
		done <- bootstrap.RunHTTPServer(ctx, http.NewServeMux(), config.ServerConfig{Port: "0"}, audit)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	if assert.Len(t, audit.entries, 1) {
		assert.Equal(t, "SERVER_SHUTDOWN", audit.entries[0].Action)
	}
}
