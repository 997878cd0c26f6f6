package memory

import (
	"fmt"
	"sync"
	"time"
)

// idGenerator produce IDs opacos con formato {prefijo}-{timestamp en ms}.
// Si dos generaciones caen en el mismo milisegundo, avanza el timestamp en 1
// para garantizar unicidad dentro de la colección sin cambiar el formato.
type idGenerator struct {
	mu   sync.Mutex
	last int64
}

func (g *idGenerator) next(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ms := time.Now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return fmt.Sprintf("%s-%d", prefix, ms)
}
