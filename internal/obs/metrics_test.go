package obs

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestInstrumentPreservesStatus(t *testing.T) {
	h := Instrument(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status=%d, want %d", rec.Code, http.StatusTeapot)
	}
}

func TestObserveRPCDoesNotPanic(t *testing.T) {
	ObserveRPC("/authgrid.v1.AuthService/CheckPermission", "OK", 5*time.Millisecond)
	CountPermissionDecision(true)
	CountPermissionDecision(false)
	CountLoginOutcome("success")
	CountSanctionCheck(true)
}
