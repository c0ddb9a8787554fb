package postgres

import (
	"context"

	"github.com/dealerhub/dealer-ops-api/internal/tenant"
)

// Cluster mantém uma conexão isolada por brand e resolve qual delas atende a
// unidade de trabalho atual a partir do contexto. Nenhum repositório guarda
// uma conexão fixa: toda operação passa por Conn(ctx), então uma requisição
// sem brand falha antes de tocar qualquer banco.
type Cluster struct {
	conns map[tenant.Brand]*Connection
}

func NewCluster(conns map[tenant.Brand]*Connection) *Cluster {
	return &Cluster{conns: conns}
}

// Conn resolve a conexão do brand presente no contexto. Retorna
// tenant.ErrNoBrand quando o contexto não carrega um brand — nunca um
// fallback silencioso.
func (c *Cluster) Conn(ctx context.Context) (*Connection, error) {
	brand, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	conn, ok := c.conns[brand]
	if !ok {
		return nil, tenant.ErrNoBrand
	}

	return conn, nil
}

// Close fecha todas as conexões do cluster.
func (c *Cluster) Close() {
	for _, conn := range c.conns {
		_ = conn.Close()
	}
}

// Ping verifica todas as conexões do cluster.
func (c *Cluster) Ping(ctx context.Context) error {
	for _, conn := range c.conns {
		if err := conn.Ping(ctx); err != nil {
			return err
		}
	}
	return nil
}
