package service

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-client-panel/internal/utils"
	"github.com/MKhiriev/go-client-panel/models"
)

// seqIDs hands out "id-1", "id-2", ... and can be primed with ids to return
// first.
type seqIDs struct {
	mu     sync.Mutex
	n      int
	primed []string
}

func (g *seqIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.primed) > 0 {
		id := g.primed[0]
		g.primed = g.primed[1:]
		return id
	}
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func newTestRoster(t *testing.T, today string) *RosterStore {
	t.Helper()
	return NewRosterStore(utils.ClockAt(models.MustParseDate(today)), &seqIDs{})
}

func sampleInput(nome string, due string) models.ClientInput {
	return models.ClientInput{
		Nome:       nome,
		Login:      "login_" + nome,
		Senha:      "pw",
		Servidor:   "srv1",
		Vencimento: models.MustParseDate(due),
	}
}

func mustCreate(t *testing.T, r *RosterStore, nome, due string) models.Client {
	t.Helper()
	c, err := r.Create(sampleInput(nome, due))
	require.NoError(t, err)
	return c
}
