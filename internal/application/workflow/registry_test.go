package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzacloud/restocker/internal/application/workflow"
	"github.com/pizzacloud/restocker/internal/domain"
	"github.com/pizzacloud/restocker/internal/domain/entity"
)

const testStoreID = "7098813e-4624-462a-81a1-7e038e412b48"

func testWorkflow() entity.Workflow {
	return entity.Workflow{
		Method:         "persistent",
		ComponentList:  []string{"cass", "restocker", "delivery-assigner"},
		Origin:         "10.0.0.5",
		WorkflowOffset: 0,
	}
}

func TestRegistry_RegistroDuplicadoFalla(t *testing.T) {
	r := workflow.NewRegistry()

	require.NoError(t, r.Register(testStoreID, testWorkflow()))
	err := r.Register(testStoreID, testWorkflow())
	assert.ErrorIs(t, err, domain.ErrWorkflowExists)
}

func TestRegistry_BorrarYReRegistrar(t *testing.T) {
	r := workflow.NewRegistry()

	assert.ErrorIs(t, r.Delete(testStoreID), domain.ErrWorkflowNotFound)

	require.NoError(t, r.Register(testStoreID, testWorkflow()))
	require.NoError(t, r.Delete(testStoreID))

	_, ok := r.Get(testStoreID)
	assert.False(t, ok)

	require.NoError(t, r.Register(testStoreID, testWorkflow()), "tras borrar se puede volver a registrar")
}

func TestRegistry_ReplaceActualizaSinPrecondicion(t *testing.T) {
	r := workflow.NewRegistry()

	w := testWorkflow()
	w.Method = "edge"
	r.Replace(testStoreID, w)

	got, ok := r.Get(testStoreID)
	require.True(t, ok)
	assert.Equal(t, "edge", got.Method)
}

// All devuelve una copia: mutarla no afecta al registro.
func TestRegistry_AllEsCopia(t *testing.T) {
	r := workflow.NewRegistry()
	require.NoError(t, r.Register(testStoreID, testWorkflow()))

	all := r.All()
	delete(all, testStoreID)

	_, ok := r.Get(testStoreID)
	assert.True(t, ok, "el registro no debe verse afectado por mutaciones de la copia")
}

func TestRegistry_StoreIDs(t *testing.T) {
	r := workflow.NewRegistry()
	require.NoError(t, r.Register(testStoreID, testWorkflow()))

	assert.Equal(t, []string{testStoreID}, r.StoreIDs())
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de schema
// ──────────────────────────────────────────────────────────────────────────────

func TestValidator_DocumentoValido(t *testing.T) {
	v, err := workflow.NewValidator()
	require.NoError(t, err)

	doc := []byte(`{
		"method": "edge",
		"component-list": ["cass", "restocker"],
		"origin": "10.0.0.5",
		"workflow-offset": 2
	}`)
	assert.NoError(t, v.Validate(doc))
}

func TestValidator_ReportaPrimerError(t *testing.T) {
	v, err := workflow.NewValidator()
	require.NoError(t, err)

	cases := []struct {
		name string
		doc  string
	}{
		{"sin origin", `{"method": "persistent", "component-list": ["cass", "restocker"]}`},
		{"method fuera del enum", `{"method": "cloud", "component-list": ["cass"], "origin": "x"}`},
		{"componente desconocido", `{"method": "edge", "component-list": ["mailer"], "origin": "x"}`},
		{"offset no entero", `{"method": "edge", "component-list": ["cass"], "origin": "x", "workflow-offset": "2"}`},
		{"propiedad extra", `{"method": "edge", "component-list": ["cass"], "origin": "x", "color": "red"}`},
		{"no es un objeto", `[1, 2, 3]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate([]byte(tc.doc))
			require.Error(t, err)
			assert.NotEmpty(t, err.Error(), "el error lleva la primera violación")
		})
	}
}
