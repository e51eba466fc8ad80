package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pizzacloud/restocker/internal/application/workflow"
	"github.com/pizzacloud/restocker/internal/domain/entity"
	"github.com/pizzacloud/restocker/pkg/logger"
)

// ComponentName nombre de esta etapa dentro de las listas de componentes.
const ComponentName = "restocker"

// dataStoreComponent etapa de datos que se excluye del enrutamiento.
const dataStoreComponent = "cass"

// Puertos y rutas fijos de cada componente alcanzable desde esta etapa.
var componentPorts = map[string]string{
	"order-verifier":    "1000/order",
	"delivery-assigner": "3000/order",
	"stock-analyzer":    "4000/order",
	"order-processor":   "6000/order",
}

// Response respuesta de una llamada saliente, se retransmite tal cual al
// llamador original.
type Response struct {
	StatusCode int
	Body       []byte
}

// Poster puerto de salida HTTP. doc es el documento JSON a entregar.
type Poster interface {
	PostDocument(ctx context.Context, url string, doc []byte) (*Response, error)
}

// Router decide la siguiente etapa del pipeline de una tienda y entrega el
// pedido: al siguiente componente si existe, o los resultados al cliente de
// origen si esta es la etapa terminal.
type Router struct {
	registry *workflow.Registry
	poster   Poster
	log      *logger.Logger
}

// NewRouter construye el router de pipeline.
func NewRouter(registry *workflow.Registry, poster Poster, log *logger.Logger) *Router {
	return &Router{registry: registry, poster: poster, log: log}
}

// NextComponent devuelve el componente que sigue a esta etapa en el workflow,
// excluida la etapa de datos. ok es false si esta es la etapa terminal.
func NextComponent(w entity.Workflow) (string, bool) {
	components := make([]string, 0, len(w.ComponentList))
	for _, c := range w.ComponentList {
		if c != dataStoreComponent {
			components = append(components, c)
		}
	}
	for i, c := range components {
		if c == ComponentName && i+1 < len(components) {
			return components[i+1], true
		}
	}
	return "", false
}

// ComponentURL resuelve la dirección de un componente. En topología edge el
// nombre lleva el sufijo workflow-offset.
func ComponentURL(component string, w entity.Workflow) (string, error) {
	portPath, ok := componentPorts[component]
	if !ok {
		return "", fmt.Errorf("no address known for component %s", component)
	}
	name := component
	if w.Method == entity.MethodEdge {
		name += strconv.Itoa(w.WorkflowOffset)
	}
	return "http://" + name + ":" + portPath, nil
}

// Route entrega el pedido (raw: documento JSON tal como llegó, posiblemente
// enriquecido por etapas previas). Retransmite el status y el cuerpo de la
// llamada saliente; un status no-2xx del destino se registra y se retransmite,
// no se convierte en fallo propio. No hay reintentos.
func (r *Router) Route(ctx context.Context, storeID string, order entity.Order, raw []byte) (*Response, error) {
	w, ok := r.registry.Get(storeID)
	if !ok {
		return nil, fmt.Errorf("no workflow registered for store %s", storeID)
	}

	next, ok := NextComponent(w)
	if !ok {
		return r.sendResults(ctx, w, order, raw)
	}

	url, err := ComponentURL(next, w)
	if err != nil {
		return nil, err
	}
	return r.forward(ctx, url, order, raw)
}

// forward envía el pedido al siguiente componente del workflow.
func (r *Router) forward(ctx context.Context, url string, order entity.Order, raw []byte) (*Response, error) {
	resp, err := r.poster.PostDocument(ctx, url, raw)
	if err != nil {
		return nil, fmt.Errorf("send order to next component: %w", err)
	}

	custName := order.PizzaOrder.CustName
	if resp.StatusCode == 200 {
		r.log.Info().Str("customer", custName).Msg("order is valid, sent to next component")
	} else {
		r.log.Info().Str("customer", custName).Int("status", resp.StatusCode).
			Str("body", string(resp.Body)).Msg("order is valid, issue sending to next component")
	}
	return resp, nil
}

// sendResults etapa terminal: compone el mensaje de resultados para el cliente
// de origen y se lo entrega en su endpoint /results.
func (r *Router) sendResults(ctx context.Context, w entity.Workflow, order entity.Order, raw []byte) (*Response, error) {
	message := "Order for " + order.PizzaOrder.CustName
	if order.Assignment != nil {
		message += " will be delivered in " + strconv.Itoa(order.Assignment.EstimatedTime) +
			" minutes by delivery entity " + order.Assignment.DeliveredBy + "."
	} else {
		message += " has been placed."
	}

	payload, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return nil, fmt.Errorf("encode results message: %w", err)
	}

	originURL := "http://" + w.Origin + ":8080/results"
	resp, err := r.poster.PostDocument(ctx, originURL, payload)
	if err != nil {
		return nil, fmt.Errorf("send results to origin: %w", err)
	}

	custName := order.PizzaOrder.CustName
	if resp.StatusCode == 200 {
		r.log.Info().Str("customer", custName).Msg("sufficient stock, origin received the results")
		// Al llamador original se le devuelve el pedido completo.
		return &Response{StatusCode: resp.StatusCode, Body: raw}, nil
	}
	r.log.Info().Str("customer", custName).Int("status", resp.StatusCode).
		Str("body", string(resp.Body)).Msg("sufficient stock, issue sending results to origin")
	return resp, nil
}
