// Package signalwire is a minimal client for the SignalWire LaML messaging
// API. It covers the single call this service needs: creating an outbound
// message under the configured project.
package signalwire

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/wpwhiz/signalwire-woo/pkg/httpclient"
)

const messagesPathFormat = "/api/laml/2010-04-01/Accounts/%s/Messages"

type Sender interface {
	Send(ctx context.Context, to string, body string) (res Response, err error)
}

type Config struct {
	SpaceURL   string        `mapstructure:"space_url"`
	AccountSID string        `mapstructure:"account_sid"`
	AuthToken  string        `mapstructure:"auth_token"`
	FromNumber string        `mapstructure:"from_number"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetry   int           `mapstructure:"max_retry"`
}

type Client struct {
	cfg    Config
	client httpclient.HTTPClient
}

func NewClient(cfg Config, client httpclient.HTTPClient) Sender {
	return &Client{cfg: cfg, client: client}
}

func (c *Client) Send(ctx context.Context, to string, body string) (Response, error) {
	if to == "" {
		return Response{}, errors.New(ErrorCodeInvalidNumber)
	}

	if body == "" {
		return Response{}, errors.New(ErrorCodeInvalidRequest)
	}

	form := url.Values{}
	form.Set("From", c.cfg.FromNumber)
	form.Set("To", to)
	form.Set("Body", body)

	endpoint := c.cfg.SpaceURL + fmt.Sprintf(messagesPathFormat, c.cfg.AccountSID)
	headers := map[string]string{
		"Authorization": "Basic " + basicCredentials(c.cfg.AccountSID, c.cfg.AuthToken),
	}

	resp, err := c.client.PostForm(ctx, endpoint, form, headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return Response{}, errors.New(ErrorCodeTimeout)
		}

		return Response{}, errors.New(ErrorCodeNetworkError)
	}

	defer resp.Body.Close()

	// The LaML API answers 201 Created for an accepted message.
	if resp.StatusCode != http.StatusCreated {
		switch resp.StatusCode {
		case http.StatusBadRequest, http.StatusUnprocessableEntity:
			return Response{}, errors.New(ErrorCodeInvalidNumber)
		case http.StatusUnauthorized, http.StatusForbidden:
			return Response{}, errors.New(ErrorCodeUnauthorized)
		default:
			return Response{}, errors.New(ErrorCodeServerError)
		}
	}

	var res Response
	if err = json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return Response{}, errors.New(ErrorCodeServerError)
	}

	return res, nil
}

func basicCredentials(accountSID, authToken string) string {
	return base64.StdEncoding.EncodeToString([]byte(accountSID + ":" + authToken))
}
