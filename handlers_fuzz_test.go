package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rustycoin/server/internal/node"
	log "github.com/sirupsen/logrus"
)

func init() {
	// Reduce log output during fuzzing so the fuzzer is not slowed and logs are not flooded.
	log.SetLevel(log.PanicLevel)
}

// FuzzDecodeNode fuzzes the request body decoder with arbitrary raw bytes.
// Invalid bodies must return an error, never panic.
func FuzzDecodeNode(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte(`{}`))
	f.Add([]byte(`{"address":"10.0.0.1","port":9000}`))
	f.Add([]byte(`{"address":"10.0.0.1"}`))
	f.Add([]byte(`{"port":9000}`))
	f.Add([]byte(`{"address":"10.0.0.1","port":70000}`))
	f.Add([]byte(`{"address":null,"port":null}`))
	f.Add([]byte(`not json`))
	f.Add([]byte{0xFF, 0xFE})
	f.Add(append([]byte(`{"address":"`), make([]byte, 100)...))
	f.Fuzz(func(t *testing.T, body []byte) {
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
		_, _ = decodeNode(req)
	})
}

// FuzzHandleRegister fuzzes the full register path through the router.
// Responses must be either 200 or 400 and the handler must not panic.
func FuzzHandleRegister(f *testing.F) {
	f.Add([]byte(`{"address":"10.0.0.1","port":9000}`))
	f.Add([]byte(`{"address":"","port":0}`))
	f.Add([]byte(`[]`))
	f.Add([]byte(`{"address":"10.0.0.1","port":-1}`))
	f.Add(make([]byte, 1000))
	f.Fuzz(func(t *testing.T, body []byte) {
		srv := NewServer(context.Background(), nil, node.NewRegistry())
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		srv.httpRouter.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK && rec.Code != http.StatusBadRequest {
			t.Fatalf("unexpected status %d", rec.Code)
		}
	})
}
