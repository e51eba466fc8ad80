package entity

// Workflow descriptor de pipeline de una tienda: la lista ordenada de
// componentes que recorren sus pedidos más metadatos de direccionamiento.
// Lo crea y reemplaza el cliente vía los endpoints de workflow; esta etapa
// nunca lo muta durante el procesamiento de un pedido.
type Workflow struct {
	Method         string   `json:"method"`
	ComponentList  []string `json:"component-list"`
	Origin         string   `json:"origin"`
	WorkflowOffset int      `json:"workflow-offset"`
}

// Topología "edge": los nombres de componente llevan el sufijo workflow-offset
// al resolver direcciones.
const MethodEdge = "edge"
