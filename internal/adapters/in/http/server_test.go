package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comanda/internal/core/domain/model/auth"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
)

func newTestContext(t *testing.T, headers map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestRespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unknown object", errs.NewObjectNotFoundError("order_id", "x"), http.StatusNotFound},
		{"payment required", errs.NewPaymentRequiredError("x"), http.StatusPaymentRequired},
		{"already paid", errs.NewAlreadyPaidError("x"), http.StatusConflict},
		{"invalid transition", errs.NewInvalidTransitionError("pending", "delivered"), http.StatusConflict},
		{"item unavailable", errs.NewItemUnavailableError("Lomo Saltado"), http.StatusConflict},
		{"invalid value", errs.NewValueIsInvalidError("channel"), http.StatusBadRequest},
		{"required value", errs.NewValueIsRequiredError("lines"), http.StatusBadRequest},
		{"unexpected error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, rec := newTestContext(t, nil)

			err := respondError(ctx, tt.err)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRespondError_HidesInternalDetails(t *testing.T) {
	ctx, rec := newTestContext(t, nil)

	err := respondError(ctx, errors.New("pq: connection refused"))

	require.NoError(t, err)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Contains(t, rec.Body.String(), "internal server error")
}

func TestCapabilityForStatus(t *testing.T) {
	assert.Equal(t, auth.StartPreparing, capabilityForStatus("preparing"))
	assert.Equal(t, auth.MarkReady, capabilityForStatus("ready"))
	assert.Equal(t, auth.MarkDelivered, capabilityForStatus("delivered"))
	assert.Equal(t, auth.CancelOrder, capabilityForStatus("cancelled"))
	assert.Equal(t, auth.CapabilityUnknown, capabilityForStatus("pending"))
	assert.Equal(t, auth.CapabilityUnknown, capabilityForStatus("bogus"))
}

func TestActorMiddleware_ResolvesActor(t *testing.T) {
	actorID := kernel.NewUUID()
	ctx, _ := newTestContext(t, map[string]string{
		actorIDHeader:   actorID.String(),
		actorRoleHeader: "cashier",
	})

	var resolved auth.Actor
	handler := ActorMiddleware()(func(c echo.Context) error {
		actor, ok := actorFrom(c)
		require.True(t, ok)
		resolved = actor
		return nil
	})

	require.NoError(t, handler(ctx))
	assert.True(t, resolved.ID().IsEqual(actorID))
	assert.True(t, resolved.Can(auth.RegisterPayment))
	assert.False(t, resolved.Can(auth.StartPreparing))
}

func TestActorMiddleware_RejectsInvalidIdentity(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"no headers", nil},
		{"bad actor id", map[string]string{
			actorIDHeader:   "not-a-uuid",
			actorRoleHeader: "cashier",
		}},
		{"bad role", map[string]string{
			actorIDHeader:   kernel.NewUUID().String(),
			actorRoleHeader: "intern",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, rec := newTestContext(t, tt.headers)

			handler := ActorMiddleware()(func(c echo.Context) error {
				t.Fatal("handler must not run without a valid actor")
				return nil
			})

			require.NoError(t, handler(ctx))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
