package http

import "encoding/json"

// decodeDocument acepta el cuerpo como objeto JSON o como string JSON que
// contiene el objeto (formato doble-codificado con el que los componentes del
// pipeline se pasan documentos entre sí) y devuelve el objeto plano.
func decodeDocument(body []byte) []byte {
	var inner string
	if err := json.Unmarshal(body, &inner); err == nil {
		return []byte(inner)
	}
	return body
}
