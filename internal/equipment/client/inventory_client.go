package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labforge/labops/pkg/health"
	"github.com/labforge/labops/pkg/logger"
)

// InventoryClient fetches stock records from the inventory service so the
// equipment service can join supply requirements against live quantities.
type InventoryClient struct {
	baseURL string
	client  *http.Client
}

// NewInventoryClient creates a new inventory service client
func NewInventoryClient(baseURL string) *InventoryClient {
	logger.Logger.Info().
		Str("base_url", baseURL).
		Msg("Inventory service client initialized")

	return &InventoryClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 3 * time.Second},
	}
}

// StockRecords returns the current inventory as the engine's join view.
func (c *InventoryClient) StockRecords(ctx context.Context) ([]health.StockRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/inventory?limit=100", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build inventory request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inventory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inventory service returned status %d", resp.StatusCode)
	}

	var envelope struct {
		Success bool `json:"success"`
		Data    []struct {
			ID              uint    `json:"id"`
			ProductName     string  `json:"product_name"`
			CatalogNumber   string  `json:"catalog_number"`
			CurrentQuantity float64 `json:"current_quantity"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode inventory response: %w", err)
	}
	if !envelope.Success {
		return nil, fmt.Errorf("inventory service reported failure")
	}

	records := make([]health.StockRecord, 0, len(envelope.Data))
	for _, item := range envelope.Data {
		records = append(records, health.StockRecord{
			ID:              item.ID,
			Name:            item.ProductName,
			CatalogNumber:   item.CatalogNumber,
			CurrentQuantity: item.CurrentQuantity,
		})
	}
	return records, nil
}
