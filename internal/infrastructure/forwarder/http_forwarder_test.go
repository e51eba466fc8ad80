package forwarder_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzacloud/restocker/internal/infrastructure/forwarder"
)

// El documento viaja doble-codificado: el cuerpo HTTP es un string JSON que
// contiene el documento. Es el formato de intercambio del pipeline.
func TestPostDocument_DobleCodificaElCuerpo(t *testing.T) {
	doc := []byte(`{"pizza-order":{"custName":"Alicia"}}`)

	var received []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		received = body
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	resp, err := forwarder.New().PostDocument(context.Background(), srv.URL, doc)
	require.NoError(t, err)

	var inner string
	require.NoError(t, json.Unmarshal(received, &inner), "el cuerpo debe ser un string JSON")
	assert.JSONEq(t, string(doc), inner)

	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, string(resp.Body))
}

func TestPostDocument_RetransmiteStatusYCuerpo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("stage down"))
	}))
	defer srv.Close()

	resp, err := forwarder.New().PostDocument(context.Background(), srv.URL, []byte(`{}`))
	require.NoError(t, err, "un status no-2xx no es error de transporte")
	assert.Equal(t, 503, resp.StatusCode)
	assert.Equal(t, "stage down", string(resp.Body))
}

func TestPostDocument_DestinoInalcanzable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // cerrado a propósito

	_, err := forwarder.New().PostDocument(context.Background(), srv.URL, []byte(`{}`))
	assert.Error(t, err)
}
