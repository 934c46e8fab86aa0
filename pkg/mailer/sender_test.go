package mailer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailrelay/pkg/mailer"
)

type pingSender struct {
	mailer.SenderFunc
	pingErr error
}

func (p pingSender) Ping(context.Context) error { return p.pingErr }

func TestWithTimeout_BoundsSend(t *testing.T) {
	t.Parallel()

	slow := mailer.SenderFunc(func(ctx context.Context, _ *mailer.Email) (*mailer.Receipt, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	s := mailer.WithTimeout(slow, 10*time.Millisecond)
	_, err := s.Send(context.Background(), &mailer.Email{})

	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWithTimeout_NonPositiveReturnsSame(t *testing.T) {
	t.Parallel()

	called := false
	inner := mailer.SenderFunc(func(ctx context.Context, _ *mailer.Email) (*mailer.Receipt, error) {
		called = true
		_, hasDeadline := ctx.Deadline()
		require.False(t, hasDeadline)
		return &mailer.Receipt{Message: "Queued"}, nil
	})

	s := mailer.WithTimeout(inner, 0)
	r, err := s.Send(context.Background(), &mailer.Email{})

	require.NoError(t, err)
	require.True(t, called)
	require.Equal(t, "Queued", r.Message)
}

func TestWithTimeout_ForwardsPing(t *testing.T) {
	t.Parallel()

	pingErr := errors.New("unreachable")
	s := mailer.WithTimeout(pingSender{pingErr: pingErr}, time.Second)

	p, ok := s.(mailer.Pinger)
	require.True(t, ok)
	require.ErrorIs(t, p.Ping(context.Background()), pingErr)
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	t.Run("pinger result is returned", func(t *testing.T) {
		t.Parallel()

		pingErr := errors.New("quota exceeded")
		check := mailer.Healthcheck(pingSender{pingErr: pingErr})
		require.ErrorIs(t, check(context.Background()), pingErr)
	})

	t.Run("senders without ping are healthy", func(t *testing.T) {
		t.Parallel()

		check := mailer.Healthcheck(mailer.SenderFunc(func(context.Context, *mailer.Email) (*mailer.Receipt, error) {
			return nil, errors.New("never called")
		}))
		require.NoError(t, check(context.Background()))
	})
}
