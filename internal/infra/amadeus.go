package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	ModeFlight = "flight"
	ModeTrain  = "train"
)

// FareQuote is a single priced offer for one leg of travel. It only lives
// long enough to feed the transport recommendation.
type FareQuote struct {
	Mode     string  `json:"mode"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Carrier  string  `json:"carrier"`
}

type FlightClientInterface interface {
	// CheapestFlight returns the cheapest offer for the leg, or nil when the
	// client is unconfigured or no offer matches.
	CheapestFlight(ctx context.Context, originCity, destinationCity, date string) (*FareQuote, error)
}

// AmadeusClient queries the Amadeus flight-offers API. Credentials are
// optional: without them every lookup reports no quote instead of failing.
type AmadeusClient struct {
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewAmadeusClient() *AmadeusClient {
	baseURL := "https://api.amadeus.com"
	if env := os.Getenv("AMADEUS_ENV"); env == "" || env == "test" {
		baseURL = "https://test.api.amadeus.com"
	}

	return &AmadeusClient{
		clientID:     os.Getenv("AMADEUS_CLIENT_ID"),
		clientSecret: os.Getenv("AMADEUS_CLIENT_SECRET"),
		baseURL:      baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *AmadeusClient) configured() bool {
	return c.clientID != "" && c.clientSecret != ""
}

func (c *AmadeusClient) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("amadeus token request failed (%d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode amadeus token response: %w", err)
	}

	c.accessToken = result.AccessToken
	// Refresh a minute early so in-flight requests never carry a stale token.
	c.tokenExpiry = time.Now().Add(time.Duration(result.ExpiresIn-60) * time.Second)

	return c.accessToken, nil
}

func (c *AmadeusClient) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("amadeus request %s failed (%d): %s", path, resp.StatusCode, string(body))
	}

	return json.Unmarshal(body, out)
}

// cityCode resolves a city keyword to its IATA code, empty when unknown.
func (c *AmadeusClient) cityCode(ctx context.Context, city string) (string, error) {
	params := url.Values{}
	params.Set("keyword", city)
	params.Set("subType", "CITY,AIRPORT")

	var result struct {
		Data []struct {
			IataCode string `json:"iataCode"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/v1/reference-data/locations", params, &result); err != nil {
		return "", err
	}

	if len(result.Data) == 0 {
		return "", nil
	}
	return result.Data[0].IataCode, nil
}

func (c *AmadeusClient) CheapestFlight(ctx context.Context, originCity, destinationCity, date string) (*FareQuote, error) {
	if !c.configured() {
		return nil, nil
	}

	originCode, err := c.cityCode(ctx, originCity)
	if err != nil {
		return nil, err
	}
	if originCode == "" {
		return nil, nil
	}

	destCode, err := c.cityCode(ctx, destinationCity)
	if err != nil {
		return nil, err
	}
	if destCode == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("originLocationCode", originCode)
	params.Set("destinationLocationCode", destCode)
	params.Set("departureDate", date)
	params.Set("adults", "1")
	// Only the cheapest offer matters for the comparison.
	params.Set("max", "1")

	var result struct {
		Data []struct {
			Price struct {
				Total    string `json:"total"`
				Currency string `json:"currency"`
			} `json:"price"`
			Itineraries []struct {
				Segments []struct {
					CarrierCode string `json:"carrierCode"`
				} `json:"segments"`
			} `json:"itineraries"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/v2/shopping/flight-offers", params, &result); err != nil {
		return nil, err
	}

	if len(result.Data) == 0 {
		return nil, nil
	}

	offer := result.Data[0]
	amount, err := strconv.ParseFloat(offer.Price.Total, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price total in amadeus offer: %w", err)
	}

	carrier := ""
	if len(offer.Itineraries) > 0 && len(offer.Itineraries[0].Segments) > 0 {
		carrier = offer.Itineraries[0].Segments[0].CarrierCode
	}

	return &FareQuote{
		Mode:     ModeFlight,
		Amount:   amount,
		Currency: offer.Price.Currency,
		Carrier:  carrier,
	}, nil
}
