package entity

// Order documento de pedido tal como viaja por el pipeline. Las etapas
// posteriores pueden anexar campos (ej. assignment); esta etapa solo los lee.
type Order struct {
	PizzaOrder PizzaOrder  `json:"pizza-order"`
	Assignment *Assignment `json:"assignment,omitempty"`
}

// PizzaOrder datos del pedido emitidos por el cliente.
type PizzaOrder struct {
	StoreID   string  `json:"storeId"`
	CustName  string  `json:"custName"`
	PizzaList []Pizza `json:"pizzaList"`
}

// Pizza especificación de una pizza dentro del pedido.
type Pizza struct {
	CrustType   CrustType    `json:"crustType"`
	SauceType   SauceType    `json:"sauceType"`
	CheeseAmt   CheeseAmount `json:"cheeseAmt"`
	ToppingList []string     `json:"toppingList"`
}

// Assignment resultado que anexa la etapa de asignación de reparto (si existe).
type Assignment struct {
	DeliveredBy   string `json:"deliveredBy"`
	EstimatedTime int    `json:"estimatedTime"`
}

// CrustType tipo de masa. Una etiqueta desconocida aporta 0 unidades de Dough:
// política permisiva deliberada, no una validación.
type CrustType string

const (
	CrustThin        CrustType = "Thin"
	CrustTraditional CrustType = "Traditional"
)

// DoughUnits unidades de Dough que consume la masa.
func (c CrustType) DoughUnits() int {
	switch c {
	case CrustThin:
		return 1
	case CrustTraditional:
		return 2
	default:
		return 0
	}
}

// SauceType tipo de salsa. Cada variante consume un ingrediente distinto del
// catálogo; una etiqueta desconocida no consume nada.
type SauceType string

const (
	SauceSpicy       SauceType = "Spicy"
	SauceTraditional SauceType = "Traditional"
)

// Ingredient ingrediente del catálogo que consume la salsa y cuántas unidades.
// ok es false para etiquetas desconocidas.
func (s SauceType) Ingredient() (name string, units int, ok bool) {
	switch s {
	case SauceSpicy:
		return "SpicySauce", 1, true
	case SauceTraditional:
		return "TraditionalSauce", 1, true
	default:
		return "", 0, false
	}
}

// CheeseAmount cantidad de queso. Etiqueta desconocida aporta 0.
type CheeseAmount string

const (
	CheeseLight  CheeseAmount = "Light"
	CheeseNormal CheeseAmount = "Normal"
	CheeseExtra  CheeseAmount = "Extra"
)

// Units unidades de Cheese que consume la variante.
func (a CheeseAmount) Units() int {
	switch a {
	case CheeseLight:
		return 1
	case CheeseNormal:
		return 2
	case CheeseExtra:
		return 3
	default:
		return 0
	}
}
