package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to the card-processing gateway. Only intent creation is
// needed server-side; the charge itself completes in the client with the
// returned secret.
type Client struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
}

func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:   baseURL,
		secretKey: secretKey,
	}
}

// CreatePaymentIntent asks the gateway to authorize a card charge of the
// given amount and returns the client-side confirmation token.
func (c *Client) CreatePaymentIntent(amountInCents int64, currency string) (string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountInCents, 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	httpReq, err := http.NewRequest("POST", c.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}

	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var apiErr ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			return "", errors.New(apiErr.Error.Message)
		}
		return "", errors.New("payment gateway returned non-OK status: " + resp.Status)
	}

	var apiResp PaymentIntentResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", err
	}
	if apiResp.ClientSecret == "" {
		return "", errors.New("payment gateway response missing client secret")
	}
	return apiResp.ClientSecret, nil
}
