package internal_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailrelay/internal"
	"github.com/dmitrymomot/mailrelay/pkg/health"
)

type routes func(r internal.Router)

func (f routes) Routes(r internal.Router) { f(r) }

func serve(app http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestApp_ErrorHandling(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHandlers(routes(func(r internal.Router) {
		r.GET("/ok", func(w http.ResponseWriter, _ *http.Request) error {
			internal.WriteText(w, http.StatusOK, "fine")
			return nil
		})
		r.GET("/http-error", func(http.ResponseWriter, *http.Request) error {
			return internal.NewHTTPError(http.StatusTeapot, "short and stout", nil)
		})
		r.GET("/plain-error", func(http.ResponseWriter, *http.Request) error {
			return errors.New("secret detail")
		})
		r.GET("/written", func(w http.ResponseWriter, _ *http.Request) error {
			internal.WriteText(w, http.StatusAccepted, "partial")
			return errors.New("after write")
		})
	})))

	tests := []struct {
		path   string
		body   string
		status int
	}{
		{path: "/ok", status: http.StatusOK, body: "fine"},
		{path: "/http-error", status: http.StatusTeapot, body: "short and stout"},
		{path: "/plain-error", status: http.StatusInternalServerError, body: "Internal Server Error"},
		{path: "/written", status: http.StatusAccepted, body: "partial"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			rec := serve(app, http.MethodGet, tt.path)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}

func TestApp_CustomErrorHandler(t *testing.T) {
	t.Parallel()

	var got error
	app := internal.New(
		internal.WithErrorHandler(func(w http.ResponseWriter, _ *http.Request, err error) {
			got = err
			w.WriteHeader(http.StatusBadGateway)
		}),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.POST("/", func(http.ResponseWriter, *http.Request) error { return io.ErrUnexpectedEOF })
		})),
	)

	rec := serve(app, http.MethodPost, "/")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.ErrorIs(t, got, io.ErrUnexpectedEOF)
}

func TestApp_MiddlewareOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) internal.Middleware {
		return func(next internal.HandlerFunc) internal.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) error {
				order = append(order, name)
				return next(w, r)
			}
		}
	}

	app := internal.New(
		internal.WithMiddleware(mark("global-1"), mark("global-2")),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.POST("/email", func(http.ResponseWriter, *http.Request) error {
				order = append(order, "handler")
				return nil
			}, mark("route-1"), mark("route-2"))
		})),
	)

	serve(app, http.MethodPost, "/email")

	require.Equal(t, []string{"global-1", "global-2", "route-1", "route-2", "handler"}, order)
}

func TestApp_HealthEndpoints(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHealthChecks(health.Checks{
		"provider": func(context.Context) error { return errors.New("down") },
	}))

	assert.Equal(t, http.StatusOK, serve(app, http.MethodGet, "/health/live").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(app, http.MethodGet, "/health/ready").Code)
}

func TestApp_HealthDisabledByDefault(t *testing.T) {
	t.Parallel()

	app := internal.New()
	assert.Equal(t, http.StatusNotFound, serve(app, http.MethodGet, "/health/live").Code)
}

func TestApp_Run_GracefulShutdown(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHandlers(routes(func(r internal.Router) {
		r.GET("/ping", func(w http.ResponseWriter, _ *http.Request) error {
			internal.WriteText(w, http.StatusOK, "pong")
			return nil
		})
	})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addrCh := make(chan net.Addr, 1)
	hookCalled := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- app.Run("127.0.0.1:0",
			internal.WithContext(ctx),
			internal.OnReady(func(a net.Addr) { addrCh <- a }),
			internal.ShutdownTimeout(time.Second),
			internal.ShutdownHook(func(context.Context) error {
				close(hookCalled)
				return nil
			}),
		)
	}()

	addr := <-addrCh
	resp, err := http.Get("http://" + addr.String() + "/ping")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	<-hookCalled
}

func TestApp_Run_HookErrorsAreJoined(t *testing.T) {
	t.Parallel()

	app := internal.New()
	ctx, cancel := context.WithCancel(context.Background())

	hookErr := errors.New("flush failed")
	done := make(chan error, 1)
	go func() {
		done <- app.Run("127.0.0.1:0",
			internal.WithContext(ctx),
			internal.OnReady(func(net.Addr) { cancel() }),
			internal.ShutdownHook(func(context.Context) error { return hookErr }),
		)
	}()

	select {
	case err := <-done:
		require.ErrorIs(t, err, hookErr)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestApp_Run_ListenError(t *testing.T) {
	t.Parallel()

	err := internal.New().Run("256.0.0.1:99999")
	require.Error(t, err)
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	cause := errors.New("bad json")
	err := internal.ErrBadRequest("invalid JSON body", cause)

	assert.Equal(t, "invalid JSON body", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.StatusCode())
	assert.ErrorIs(t, err, cause)
	assert.Same(t, err, internal.AsHTTPError(err))
	assert.Nil(t, internal.AsHTTPError(cause))
	assert.Equal(t, http.StatusRequestEntityTooLarge, internal.ErrRequestTooLarge("x", nil).Code)
	assert.Equal(t, http.StatusUnprocessableEntity, internal.ErrUnprocessable("x", nil).Code)
}
