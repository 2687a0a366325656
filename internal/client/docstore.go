package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iswarpatel123/braintree-render/internal/config"
	"github.com/iswarpatel123/braintree-render/internal/model"
)

// ErrOrderNotFound is returned by GetOrder when the document store has no
// document under the given id.
var ErrOrderNotFound = errors.New("order not found")

// OrderStore is the capability the orchestrator needs from the hosted
// document database.
type OrderStore interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
}

type appwriteClientImpl struct {
	httpClient   *http.Client
	endpoint     string
	projectID    string
	apiKey       string
	databaseID   string
	collectionID string
}

func NewAppwriteClient(cfg *config.Appwrite) OrderStore {
	return &appwriteClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		endpoint:     cfg.Endpoint,
		projectID:    cfg.ProjectID,
		apiKey:       cfg.APIKey,
		databaseID:   cfg.DatabaseID,
		collectionID: cfg.CollectionID,
	}
}

type appwriteError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (c *appwriteClientImpl) documentsURL() string {
	return fmt.Sprintf("%s/databases/%s/collections/%s/documents",
		c.endpoint, c.databaseID, c.collectionID)
}

func (c *appwriteClientImpl) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Appwrite-Project", c.projectID)
	req.Header.Set("X-Appwrite-Key", c.apiKey)
}

func (c *appwriteClientImpl) CreateOrder(ctx context.Context, order *model.Order) error {
	payload, err := json.Marshal(map[string]interface{}{
		"documentId": order.OrderID,
		"data":       order,
	})
	if err != nil {
		return fmt.Errorf("marshal order document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.documentsURL(), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("create document: %s", readAppwriteError(resp))
	}

	return nil
}

func (c *appwriteClientImpl) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.documentsURL()+"/"+orderID, nil)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrOrderNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get document: %s", readAppwriteError(resp))
	}

	var order model.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("decode order document: %w", err)
	}

	return &order, nil
}

// readAppwriteError extracts the store's error message, falling back to the
// raw status when the body is not the usual error envelope.
func readAppwriteError(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(body) == 0 {
		return resp.Status
	}

	var apiErr appwriteError
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Message == "" {
		return fmt.Sprintf("%s: %s", resp.Status, body)
	}

	return apiErr.Message
}
