package restock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzacloud/restocker/internal/application/restock"
	"github.com/pizzacloud/restocker/internal/domain/entity"
	"github.com/pizzacloud/restocker/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del almacén de stock: una sola tienda, registra cada escritura en orden
// para poder afirmar el contrato "todos los restocks antes del primer descuento".
// ──────────────────────────────────────────────────────────────────────────────

type write struct {
	item     string
	quantity int
}

type fakeStockRepo struct {
	rows      map[string]int
	writes    []write
	failOn    string // SetQuantity falla para este ingrediente
	listCalls int
}

func newFakeStockRepo(rows map[string]int) *fakeStockRepo {
	if rows == nil {
		rows = make(map[string]int)
	}
	return &fakeStockRepo{rows: rows}
}

func (f *fakeStockRepo) Quantity(_ context.Context, _ uuid.UUID, itemName string) (int, bool, error) {
	q, ok := f.rows[itemName]
	return q, ok, nil
}

func (f *fakeStockRepo) ListByStore(_ context.Context, _ uuid.UUID) ([]entity.StockRow, error) {
	f.listCalls++
	out := make([]entity.StockRow, 0, len(f.rows))
	for item, q := range f.rows {
		out = append(out, entity.StockRow{ItemName: item, Quantity: q})
	}
	return out, nil
}

func (f *fakeStockRepo) SetQuantity(_ context.Context, _ uuid.UUID, itemName string, quantity int) error {
	if itemName == f.failOn {
		return errors.New("write failed")
	}
	f.writes = append(f.writes, write{item: itemName, quantity: quantity})
	f.rows[itemName] = quantity
	return nil
}

func (f *fakeStockRepo) ListItems(_ context.Context) ([]string, error) {
	return entity.Catalog, nil
}

// seedAll llena todas las filas del catálogo con la misma cantidad.
func seedAll(quantity int) map[string]int {
	rows := make(map[string]int, len(entity.Catalog))
	for _, name := range entity.Catalog {
		rows[name] = quantity
	}
	return rows
}

var testStoreID = uuid.MustParse("a0f2cdd5-16e2-4de0-b672-1ff71e3113be")

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestProcess_StockSuficienteSoloDescuenta(t *testing.T) {
	repo := newFakeStockRepo(seedAll(20))
	uc := restock.NewUseCase(repo, logger.Nop())

	pizzas := []entity.Pizza{{
		CrustType:   entity.CrustTraditional,
		SauceType:   entity.SauceSpicy,
		CheeseAmt:   entity.CheeseNormal,
		ToppingList: []string{"Pepperoni"},
	}}

	require.NoError(t, uc.Process(context.Background(), testStoreID, pizzas))

	assert.Equal(t, 18, repo.rows["Dough"])
	assert.Equal(t, 19, repo.rows["SpicySauce"])
	assert.Equal(t, 18, repo.rows["Cheese"])
	assert.Equal(t, 19, repo.rows["Pepperoni"])
	assert.Len(t, repo.writes, 4, "solo se escriben los ingredientes requeridos")
	for _, w := range repo.writes {
		assert.GreaterOrEqual(t, w.quantity, 0, "nunca se escribe un negativo")
	}
}

// Escenario de referencia: Cheese=1 almacenado, pedido exige Cheese=2.
// Faltante de 1 → restock a 1+1+10 = 12 → descuento de 2 → final 10.
func TestProcess_FaltanteReponeYDescuenta(t *testing.T) {
	rows := seedAll(20)
	rows["Cheese"] = 1
	repo := newFakeStockRepo(rows)
	uc := restock.NewUseCase(repo, logger.Nop())

	pizzas := []entity.Pizza{{CheeseAmt: entity.CheeseNormal}}

	require.NoError(t, uc.Process(context.Background(), testStoreID, pizzas))

	require.Len(t, repo.writes, 2)
	assert.Equal(t, write{item: "Cheese", quantity: 12}, repo.writes[0], "restock = déficit + actual + buffer")
	assert.Equal(t, write{item: "Cheese", quantity: 10}, repo.writes[1], "descuento sobre el snapshot post-restock")
	assert.Equal(t, 10, repo.rows["Cheese"])
}

// Todos los restocks de un pedido se completan antes del primer descuento.
func TestProcess_RestocksAntesDeDescuentos(t *testing.T) {
	rows := seedAll(20)
	rows["Cheese"] = 0
	rows["Dough"] = 1
	repo := newFakeStockRepo(rows)
	uc := restock.NewUseCase(repo, logger.Nop())

	pizzas := []entity.Pizza{{CrustType: entity.CrustTraditional, CheeseAmt: entity.CheeseExtra}}

	require.NoError(t, uc.Process(context.Background(), testStoreID, pizzas))
	require.Len(t, repo.writes, 4, "2 restocks + 2 descuentos")

	// Un restock siempre sube la fila; un descuento siempre la baja.
	firstDecrement := -1
	for i, w := range repo.writes {
		isRestock := w.item == "Cheese" && w.quantity == 13 || w.item == "Dough" && w.quantity == 12
		if !isRestock && firstDecrement == -1 {
			firstDecrement = i
		}
		if isRestock && firstDecrement != -1 {
			t.Fatalf("restock de %s después del primer descuento (posición %d)", w.item, i)
		}
	}

	assert.Equal(t, 10, repo.rows["Cheese"], "13 - 3")
	assert.Equal(t, 10, repo.rows["Dough"], "12 - 2")
}

// El primer error de escritura aborta el resto del pedido: ningún descuento
// llega a ejecutarse si falla un restock.
func TestProcess_FalloDeEscrituraAborta(t *testing.T) {
	rows := seedAll(20)
	rows["Cheese"] = 0
	repo := newFakeStockRepo(rows)
	repo.failOn = "Cheese"
	uc := restock.NewUseCase(repo, logger.Nop())

	pizzas := []entity.Pizza{{CrustType: entity.CrustThin, CheeseAmt: entity.CheeseLight}}

	err := uc.Process(context.Background(), testStoreID, pizzas)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "restock Cheese")
	assert.Empty(t, repo.writes, "ni restocks posteriores ni descuentos tras el fallo")
}

func TestProcess_ToppingDesconocidoNoTocaElAlmacen(t *testing.T) {
	repo := newFakeStockRepo(seedAll(20))
	uc := restock.NewUseCase(repo, logger.Nop())

	pizzas := []entity.Pizza{{ToppingList: []string{"Anchovies"}}}

	err := uc.Process(context.Background(), testStoreID, pizzas)
	require.Error(t, err)
	assert.Zero(t, repo.listCalls, "el pedido se rechaza antes de leer stock")
	assert.Empty(t, repo.writes)
}

// Una cantidad requerida de cero jamás genera faltante ni escritura, aunque la
// fila almacenada esté en cero.
func TestProcess_RequeridoCeroNoGeneraFaltante(t *testing.T) {
	rows := seedAll(0)
	repo := newFakeStockRepo(rows)
	uc := restock.NewUseCase(repo, logger.Nop())

	pizzas := []entity.Pizza{{CrustType: "Stuffed", SauceType: "Garlic", CheeseAmt: "Double"}}

	require.NoError(t, uc.Process(context.Background(), testStoreID, pizzas))
	assert.Empty(t, repo.writes)
}
