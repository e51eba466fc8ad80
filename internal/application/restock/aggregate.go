package restock

import (
	"fmt"

	"github.com/pizzacloud/restocker/internal/domain"
	"github.com/pizzacloud/restocker/internal/domain/entity"
)

// Aggregate suma los ingredientes que exige la lista de pizzas de un pedido.
// Pura y determinista: el resultado es total sobre el catálogo y no depende
// del orden de las pizzas. Las etiquetas desconocidas de masa/salsa/queso
// aportan 0 (política permisiva); un topping desconocido sí es error porque
// indexa directamente el catálogo.
func Aggregate(pizzas []entity.Pizza) (entity.Quantities, error) {
	required := entity.NewQuantities()

	for _, pizza := range pizzas {
		required["Dough"] += pizza.CrustType.DoughUnits()

		if sauce, units, ok := pizza.SauceType.Ingredient(); ok {
			required[sauce] += units
		}

		required["Cheese"] += pizza.CheeseAmt.Units()

		for _, topping := range pizza.ToppingList {
			if _, ok := required[topping]; !ok {
				return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTopping, topping)
			}
			required[topping]++
		}
	}

	return required, nil
}
