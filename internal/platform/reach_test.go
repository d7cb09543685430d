package platform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCheckReachable(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{"no content", http.StatusNoContent, false},
		{"not found still reachable", http.StatusNotFound, false},
		{"server error", http.StatusBadGateway, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodHead {
					t.Errorf("Expected HEAD, got %s", r.Method)
				}
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := CheckReachable(context.Background(), srv.URL)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckReachable() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckReachable_Cancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := CheckReachable(ctx, srv.URL); err == nil {
		t.Fatal("Expected error for cancelled probe")
	}
}

func TestCheckReachable_BadURL(t *testing.T) {
	if err := CheckReachable(context.Background(), "://bad"); err == nil {
		t.Fatal("Expected error for malformed URL")
	}
}
