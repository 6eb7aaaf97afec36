package marketdata

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ratesPayload = `{"base": "RUB", "rates": {"USD": 0.011, "EUR": 0.010, "RUB": 1.0}}`

func TestExchangeRate_GetRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v4/latest/RUB", r.URL.Path)
		fmt.Fprint(w, ratesPayload)
	}))
	defer server.Close()

	client := NewExchangeRateClientWithBaseURL("RUB", server.URL)

	rates, err := client.GetRates(context.Background(), []string{"USD", "EUR"})

	require.NoError(t, err)
	require.Len(t, rates, 2)

	// 1 / 0.011 = 90.909... -> 90.91 RUB per USD
	assert.Equal(t, "USD", rates[0].Currency)
	assert.True(t, rates[0].Rate.Equal(decimal.RequireFromString("90.91")), "got %s", rates[0].Rate)
	assert.Equal(t, "EUR", rates[1].Currency)
	assert.True(t, rates[1].Rate.Equal(decimal.RequireFromString("100")), "got %s", rates[1].Rate)
}

func TestExchangeRate_OmitsUnknownCurrencies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, ratesPayload)
	}))
	defer server.Close()

	client := NewExchangeRateClientWithBaseURL("RUB", server.URL)

	rates, err := client.GetRates(context.Background(), []string{"USD", "XYZ"})

	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.Equal(t, "USD", rates[0].Currency)
}

func TestExchangeRate_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewExchangeRateClientWithBaseURL("RUB", server.URL)

	_, err := client.GetRates(context.Background(), []string{"USD"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestExchangeRate_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json")
	}))
	defer server.Close()

	client := NewExchangeRateClientWithBaseURL("RUB", server.URL)

	_, err := client.GetRates(context.Background(), []string{"USD"})

	assert.Error(t, err)
}
