package workflow

import (
	"sync"

	"github.com/pizzacloud/restocker/internal/domain"
	"github.com/pizzacloud/restocker/internal/domain/entity"
)

// Registry registro en memoria de los workflows activos, clave storeID.
// Lo leen todos los pedidos y el barrido periódico; lo escriben solo los
// endpoints de gestión. Propiedad explícita con RWMutex, sin singleton.
type Registry struct {
	mu        sync.RWMutex
	workflows map[string]entity.Workflow
}

// NewRegistry construye un registro vacío.
func NewRegistry() *Registry {
	return &Registry{workflows: make(map[string]entity.Workflow)}
}

// Register da de alta el workflow de una tienda. Falla si ya existe.
func (r *Registry) Register(storeID string, w entity.Workflow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.workflows[storeID]; ok {
		return domain.ErrWorkflowExists
	}
	r.workflows[storeID] = w
	return nil
}

// Replace reemplaza (o crea) el workflow de una tienda.
func (r *Registry) Replace(storeID string, w entity.Workflow) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workflows[storeID] = w
}

// Delete elimina el workflow de una tienda. Falla si no existe.
func (r *Registry) Delete(storeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.workflows[storeID]; !ok {
		return domain.ErrWorkflowNotFound
	}
	delete(r.workflows, storeID)
	return nil
}

// Get devuelve el workflow de una tienda, si está registrado.
func (r *Registry) Get(storeID string) (entity.Workflow, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.workflows[storeID]
	return w, ok
}

// All devuelve una copia del mapa completo de workflows.
func (r *Registry) All() map[string]entity.Workflow {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]entity.Workflow, len(r.workflows))
	for storeID, w := range r.workflows {
		out[storeID] = w
	}
	return out
}

// StoreIDs devuelve los IDs de tienda con workflow activo.
func (r *Registry) StoreIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.workflows))
	for storeID := range r.workflows {
		ids = append(ids, storeID)
	}
	return ids
}
