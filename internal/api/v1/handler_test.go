package v1_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wpwhiz/signalwire-woo/internal/api"
	v1 "github.com/wpwhiz/signalwire-woo/internal/api/v1"
	"github.com/wpwhiz/signalwire-woo/internal/constants"
	"github.com/wpwhiz/signalwire-woo/internal/mocks"
	"github.com/wpwhiz/signalwire-woo/internal/model"
	"github.com/wpwhiz/signalwire-woo/internal/service"
	"go.uber.org/zap"
)

func newTestApp(notify *mocks.NotifyService, inbound *mocks.InboundService) *fiber.App {
	handler := v1.NewHandler(zap.NewNop(), notify, inbound)
	app := api.NewApp()
	api.SetupRoutes(app, handler)
	return app
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestHandler_Ping(t *testing.T) {
	app := newTestApp(&mocks.NotifyService{}, &mocks.InboundService{})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_Receive(t *testing.T) {
	t.Run("stop keyword returns unsubscribed payload with status 400", func(t *testing.T) {
		mockInbound := &mocks.InboundService{}
		app := newTestApp(&mocks.NotifyService{}, mockInbound)

		mockInbound.On("HandleMessage", mock.Anything, service.InboundMessageCommand{
			AccountSID: "AC123",
			From:       "+15551234567",
			Body:       "STOP",
		}).Return(service.NewServiceError(constants.ErrCodeContactUnsubscribed, service.ErrContactUnsubscribed))

		form := url.Values{}
		form.Set("AccountSid", "AC123")
		form.Set("From", "+15551234567")
		form.Set("Body", "STOP")

		resp := postForm(t, app, "/signalwire-sms/v1/receive/", form)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, constants.ErrCodeContactUnsubscribed, body["code"])

		mockInbound.AssertExpectations(t)
	})

	t.Run("start keyword returns resubscribed payload with status 400", func(t *testing.T) {
		mockInbound := &mocks.InboundService{}
		app := newTestApp(&mocks.NotifyService{}, mockInbound)

		mockInbound.On("HandleMessage", mock.Anything, mock.AnythingOfType("service.InboundMessageCommand")).
			Return(service.NewServiceError(constants.ErrCodeContactResubscribed, service.ErrContactResubscribed))

		form := url.Values{}
		form.Set("AccountSid", "AC123")
		form.Set("From", "+15551234567")
		form.Set("Body", "START")

		resp := postForm(t, app, "/signalwire-sms/v1/receive/", form)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, constants.ErrCodeContactResubscribed, body["code"])
	})

	t.Run("unrecognized keyword returns 200 with empty body", func(t *testing.T) {
		mockInbound := &mocks.InboundService{}
		app := newTestApp(&mocks.NotifyService{}, mockInbound)

		mockInbound.On("HandleMessage", mock.Anything, mock.AnythingOfType("service.InboundMessageCommand")).
			Return(nil)

		form := url.Values{}
		form.Set("AccountSid", "AC123")
		form.Set("From", "+15551234567")
		form.Set("Body", "where is my order")

		resp := postForm(t, app, "/signalwire-sms/v1/receive/", form)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Empty(t, raw)
	})

	t.Run("provider error code maps to 400", func(t *testing.T) {
		mockInbound := &mocks.InboundService{}
		app := newTestApp(&mocks.NotifyService{}, mockInbound)

		mockInbound.On("HandleMessage", mock.Anything, mock.MatchedBy(func(cmd service.InboundMessageCommand) bool {
			return cmd.ErrorCode == "30007"
		})).Return(service.NewServiceError(constants.ErrCodeSignalwireError, service.ErrContactUnsubscribed))

		form := url.Values{}
		form.Set("AccountSid", "AC123")
		form.Set("From", "+15551234567")
		form.Set("Body", "STOP")
		form.Set("error_code", "30007")

		resp := postForm(t, app, "/signalwire-sms/v1/receive/", form)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, constants.ErrCodeSignalwireError, body["code"])
	})

	t.Run("unexpected error is masked as internal error", func(t *testing.T) {
		mockInbound := &mocks.InboundService{}
		app := newTestApp(&mocks.NotifyService{}, mockInbound)

		mockInbound.On("HandleMessage", mock.Anything, mock.AnythingOfType("service.InboundMessageCommand")).
			Return(service.ErrDatabase)

		form := url.Values{}
		form.Set("AccountSid", "AC123")
		form.Set("From", "+15551234567")
		form.Set("Body", "STOP")

		resp := postForm(t, app, "/signalwire-sms/v1/receive/", form)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, constants.ErrCodeInternalError, body["code"])
	})
}

func TestHandler_OrderStatus(t *testing.T) {
	t.Run("dispatched notification", func(t *testing.T) {
		mockNotify := &mocks.NotifyService{}
		app := newTestApp(mockNotify, &mocks.InboundService{})

		mockNotify.On("OrderStatusChanged", mock.Anything, service.OrderStatusChangedCommand{
			OrderID: 42,
			Status:  model.OrderStatusCompleted,
		}).Return(service.NotifyResult{DeliveryID: 9}, nil)

		resp := postJSON(t, app, "/v1/orders/42/status", `{"status":"completed"}`)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "dispatched", body["status"])
		assert.Equal(t, float64(9), body["delivery_id"])

		mockNotify.AssertExpectations(t)
	})

	t.Run("skipped notification carries the reason", func(t *testing.T) {
		mockNotify := &mocks.NotifyService{}
		app := newTestApp(mockNotify, &mocks.InboundService{})

		mockNotify.On("OrderStatusChanged", mock.Anything, mock.AnythingOfType("service.OrderStatusChangedCommand")).
			Return(service.NotifyResult{Skipped: true, SkipReason: "not_subscribed"}, nil)

		resp := postJSON(t, app, "/v1/orders/42/status", `{"status":"completed"}`)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "skipped", body["status"])
		assert.Equal(t, "not_subscribed", body["reason"])
	})

	t.Run("force send flag reaches the service", func(t *testing.T) {
		mockNotify := &mocks.NotifyService{}
		app := newTestApp(mockNotify, &mocks.InboundService{})

		mockNotify.On("OrderStatusChanged", mock.Anything, mock.MatchedBy(func(cmd service.OrderStatusChangedCommand) bool {
			return cmd.ForceSend
		})).Return(service.NotifyResult{DeliveryID: 3}, nil)

		resp := postJSON(t, app, "/v1/orders/42/status", `{"status":"pending","force_send":true}`)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockNotify.AssertExpectations(t)
	})

	t.Run("unknown order returns 404", func(t *testing.T) {
		mockNotify := &mocks.NotifyService{}
		app := newTestApp(mockNotify, &mocks.InboundService{})

		mockNotify.On("OrderStatusChanged", mock.Anything, mock.AnythingOfType("service.OrderStatusChangedCommand")).
			Return(service.NotifyResult{}, service.NewServiceError(constants.ErrCodeOrderNotFound, service.ErrDatabase))

		resp := postJSON(t, app, "/v1/orders/99/status", `{"status":"completed"}`)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, constants.ErrCodeOrderNotFound, body["code"])
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		mockNotify := &mocks.NotifyService{}
		app := newTestApp(mockNotify, &mocks.InboundService{})

		resp := postJSON(t, app, "/v1/orders/42/status", `{"status":`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockNotify.AssertNotCalled(t, "OrderStatusChanged", mock.Anything, mock.Anything)
	})
}
