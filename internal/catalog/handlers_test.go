package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-kasir/internal/catalog"
)

type productsResponse struct {
	Data []struct {
		Name  string  `json:"name"`
		Unit  string  `json:"unit"`
		Price float64 `json:"price"`
	} `json:"data"`
}

type failingLister struct{}

func (failingLister) List(context.Context) ([]catalog.Entry, error) {
	return nil, errors.New("boom")
}

func TestProductsHandler(t *testing.T) {
	store := catalog.NewInMemory()
	store.Add(catalog.Product{Name: "toothbrush", Unit: catalog.UnitEach}, 0.99)
	store.Add(catalog.Product{Name: "apples", Unit: catalog.UnitKilo}, 1.99)

	h := &catalog.Handler{Source: store}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec := httptest.NewRecorder()
	h.Products(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp productsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	require.Equal(t, "apples", resp.Data[0].Name)
	require.Equal(t, "kilo", resp.Data[0].Unit)
	require.Equal(t, "toothbrush", resp.Data[1].Name)
}

func TestProductsHandlerEmpty(t *testing.T) {
	h := &catalog.Handler{Source: catalog.NewInMemory()}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec := httptest.NewRecorder()
	h.Products(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp productsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Empty(t, resp.Data)
}

func TestProductsHandlerSourceFailure(t *testing.T) {
	h := &catalog.Handler{Source: failingLister{}}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec := httptest.NewRecorder()
	h.Products(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
