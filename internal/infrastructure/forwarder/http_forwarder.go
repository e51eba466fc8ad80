package forwarder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pizzacloud/restocker/internal/application/routing"
)

var _ routing.Poster = (*Client)(nil)

// Client entrega documentos JSON a los demás componentes del pipeline y al
// cliente de origen. Sin reintentos: un fallo se devuelve tal cual al llamador.
type Client struct {
	httpClient *http.Client
}

// New construye el cliente saliente.
func New() *Client {
	return &Client{httpClient: &http.Client{Timeout: 30 * time.Second}}
}

// PostDocument envía el documento por POST y devuelve status y cuerpo de la
// respuesta. El cuerpo va doble-codificado (un string JSON que contiene el
// documento), que es el formato de intercambio entre componentes del pipeline.
func (c *Client) PostDocument(ctx context.Context, url string, doc []byte) (*routing.Response, error) {
	body, err := json.Marshal(string(doc))
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", url, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return &routing.Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}
