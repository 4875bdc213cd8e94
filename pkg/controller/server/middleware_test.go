package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/guardian/github-lens/pkg/controller/server"
	"github.com/guardian/github-lens/pkg/domain/mock"
	"github.com/guardian/github-lens/pkg/utils/logging"
)

func TestMiddleware(t *testing.T) {
	t.Run("adds logger and request ID to context", func(t *testing.T) {
		var capturedCtx context.Context

		srv := server.New(&mock.UseCaseMock{})
		mux := srv.Mux()
		mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
			capturedCtx = r.Context()
			w.WriteHeader(http.StatusOK)
		})

		mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

		gt.False(t, logging.From(capturedCtx) == logging.From(context.Background()))
		reqID, _ := logging.CtxRequestID(capturedCtx)
		gt.True(t, reqID != "")
	})

	t.Run("passes status codes through", func(t *testing.T) {
		for _, code := range []int{http.StatusOK, http.StatusNotFound, http.StatusInternalServerError} {
			srv := server.New(&mock.UseCaseMock{})
			mux := srv.Mux()
			mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(code)
			})

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))
			gt.V(t, rec.Code).Equal(code)
		}
	})

	t.Run("recovers from panics", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})
		mux := srv.Mux()
		mux.HandleFunc("/panic", func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
	})
}
