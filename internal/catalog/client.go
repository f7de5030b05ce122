package catalog

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

const ApiBaseUrl = "https://world.openfoodfacts.org"

type ClientOpts struct {
	BaseURL string
}

// Client looks up packaged products by barcode from an Open Food Facts
// compatible catalog.
type Client struct {
	httpClient *resty.Client
	baseURL    string
}

func NewClient(opts ClientOpts) *Client {
	c := Client{baseURL: ApiBaseUrl}
	if opts.BaseURL != "" {
		c.baseURL = opts.BaseURL
	}
	c.httpClient = resty.New().
		SetDebug(false).
		SetBaseURL(c.baseURL).
		SetHeaders(
			map[string]string{
				"Accept":     "application/json",
				"User-Agent": "nutriscan-backend/1.0",
			},
		)

	return &c
}

type productResponse struct {
	Status  int     `json:"status"`
	Product Product `json:"product"`
}

// Product is the subset of catalog fields rendered into analysis evidence.
type Product struct {
	ProductName     string     `json:"product_name"`
	Brands          string     `json:"brands"`
	Quantity        string     `json:"quantity"`
	NutriscoreGrade string     `json:"nutriscore_grade"`
	NovaGroup       int        `json:"nova_group"`
	IngredientsText string     `json:"ingredients_text"`
	Nutriments      Nutriments `json:"nutriments"`
}

// Nutriments holds per-100g (or per-100ml) macro values.
type Nutriments struct {
	EnergyKcal100g float64 `json:"energy-kcal_100g"`
	Fat100g        float64 `json:"fat_100g"`
	Carbs100g      float64 `json:"carbohydrates_100g"`
	Sugars100g     float64 `json:"sugars_100g"`
	Proteins100g   float64 `json:"proteins_100g"`
	Salt100g       float64 `json:"salt_100g"`
}

// GetProduct fetches a product by barcode. The found flag is false when the
// catalog has no matching product or reports a non-success status; transport
// and HTTP errors are returned separately so the caller can decide how to
// fold them.
func (c *Client) GetProduct(ctx context.Context, barcode string) (Product, bool, error) {
	result := &productResponse{}

	res, err := c.httpClient.
		NewRequest().
		SetContext(ctx).
		SetResult(result).
		SetPathParams(map[string]string{
			"barcode": barcode,
		}).
		Get("/api/v2/product/{barcode}.json")
	if err != nil {
		return Product{}, false, err
	}
	if res.IsError() {
		return Product{}, false, fmt.Errorf("request failed: %s %s (status: %d)", res.Request.Method, res.Request.URL, res.StatusCode())
	}
	if result.Status != 1 {
		return Product{}, false, nil
	}

	return result.Product, true, nil
}

// LookupFacts fetches a product and renders it into evidence text for the
// analysis pipeline. Satisfies the pipeline's ProductLookup interface.
func (c *Client) LookupFacts(ctx context.Context, barcode string) (string, bool, error) {
	product, found, err := c.GetProduct(ctx, barcode)
	if err != nil || !found {
		return "", false, err
	}
	return RenderFacts(product), true, nil
}
