package entity

// Catalog es el conjunto fijo y ordenado de ingredientes que rastrea el sistema.
// Todo mapa de cantidades es total sobre este catálogo (ausente = cero).
var Catalog = []string{
	"Dough", "SpicySauce", "TraditionalSauce", "Cheese",
	"Pepperoni", "Sausage", "Beef", "Onion",
	"Chicken", "Peppers", "Olives", "Bacon",
	"Pineapple", "Mushrooms",
}

// Quantities mapa ingrediente → cantidad (unidades enteras; nunca se persiste un negativo).
type Quantities map[string]int

// NewQuantities crea un mapa de cantidades inicializado en cero para todo el catálogo.
func NewQuantities() Quantities {
	q := make(Quantities, len(Catalog))
	for _, name := range Catalog {
		q[name] = 0
	}
	return q
}

// StockRow fila persistida de stock: cantidad de un ingrediente en una tienda.
type StockRow struct {
	ItemName string
	Quantity int
}

// Shortage déficit de un ingrediente frente a lo que exige un pedido.
// Quantity es estrictamente positivo.
type Shortage struct {
	ItemName string `json:"item-name"`
	Quantity int    `json:"quantity"`
}
