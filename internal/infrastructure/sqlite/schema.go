package sqlite

import (
	"fmt"
	"strings"
)

// Esquema declarativo: cada tabela é definida uma única vez e alimenta tanto o
// bootstrap (CREATE TABLE IF NOT EXISTS) quanto as listas de colunas usadas
// pelos repositórios, para que DDL e consultas não divirjam.

// Column uma coluna com seu fragmento DDL (tipo + constraints).
type Column struct {
	Name string
	DDL  string
}

// Table uma tabela do banco com colunas e cláusulas extras (índices etc).
type Table struct {
	Name    string
	Columns []Column
	Extra   []string // statements adicionais, executados após o CREATE TABLE
}

// CreateDDL monta o CREATE TABLE IF NOT EXISTS e os statements extras.
func (t Table) CreateDDL() string {
	defs := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		defs = append(defs, fmt.Sprintf("    %s %s", c.Name, c.DDL))
	}
	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);", t.Name, strings.Join(defs, ",\n"))
	for _, extra := range t.Extra {
		ddl += "\n" + extra
	}
	return ddl
}

// SelectColumns lista de colunas para SELECT, na ordem do esquema.
func (t Table) SelectColumns() string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}

// InsertSQL INSERT com placeholders nomeados para todas as colunas.
func (t Table) InsertSQL() string {
	names := make([]string, 0, len(t.Columns))
	binds := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.Name)
		binds = append(binds, ":"+c.Name)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.Name, strings.Join(names, ", "), strings.Join(binds, ", "))
}

// UpdateSQL UPDATE com placeholders nomeados, exceto id e created_at (imutáveis).
func (t Table) UpdateSQL() string {
	sets := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		if c.Name == "id" || c.Name == "created_at" {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s = :%s", c.Name, c.Name))
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = :id", t.Name, strings.Join(sets, ", "))
}

// Tabelas do banco.
var (
	Grupos = Table{
		Name: "grupos",
		Columns: []Column{
			{"id", "TEXT PRIMARY KEY"},
			{"nome", "TEXT NOT NULL UNIQUE"},
			{"descricao", "TEXT NOT NULL DEFAULT ''"},
			{"cor", "TEXT NOT NULL DEFAULT '#3B82F6'"},
			{"ativo", "INTEGER NOT NULL DEFAULT 1"},
			{"created_at", "TIMESTAMP NOT NULL"},
			{"updated_at", "TIMESTAMP NOT NULL"},
		},
	}

	Itens = Table{
		Name: "itens",
		Columns: []Column{
			{"id", "TEXT PRIMARY KEY"},
			{"nome", "TEXT NOT NULL"},
			{"descricao", "TEXT NOT NULL DEFAULT ''"},
			{"grupo_id", "TEXT NOT NULL REFERENCES grupos(id)"},
			{"quantidade", "NUMERIC NOT NULL DEFAULT 0"},
			{"unidade", "TEXT NOT NULL DEFAULT 'un'"},
			{"valor_unitario", "NUMERIC NOT NULL DEFAULT 0"},
			{"estoque_minimo", "NUMERIC NOT NULL DEFAULT 0"},
			{"estoque_ideal", "NUMERIC NOT NULL DEFAULT 0"},
			{"localizacao", "TEXT NOT NULL DEFAULT ''"},
			{"sku", "TEXT NOT NULL DEFAULT ''"},
			{"observacoes", "TEXT NOT NULL DEFAULT ''"},
			{"ativo", "INTEGER NOT NULL DEFAULT 1"},
			{"created_at", "TIMESTAMP NOT NULL"},
			{"updated_at", "TIMESTAMP NOT NULL"},
		},
		Extra: []string{
			"CREATE INDEX IF NOT EXISTS idx_itens_grupo ON itens(grupo_id);",
		},
	}

	Movimentacoes = Table{
		Name: "movimentacoes",
		Columns: []Column{
			{"id", "TEXT PRIMARY KEY"},
			{"item_id", "TEXT NOT NULL REFERENCES itens(id)"},
			{"tipo", "TEXT NOT NULL"},
			{"quantidade", "NUMERIC NOT NULL"},
			{"quantidade_anterior", "NUMERIC NOT NULL"},
			{"quantidade_nova", "NUMERIC NOT NULL"},
			{"motivo", "TEXT NOT NULL DEFAULT ''"},
			{"observacoes", "TEXT NOT NULL DEFAULT ''"},
			{"usuario", "TEXT NOT NULL DEFAULT ''"},
			{"created_at", "TIMESTAMP NOT NULL"},
		},
		Extra: []string{
			"CREATE INDEX IF NOT EXISTS idx_movimentacoes_item ON movimentacoes(item_id);",
			"CREATE INDEX IF NOT EXISTS idx_movimentacoes_data ON movimentacoes(created_at);",
		},
	}

	Fornecedores = Table{
		Name: "fornecedores",
		Columns: []Column{
			{"id", "TEXT PRIMARY KEY"},
			{"nome", "TEXT NOT NULL"},
			{"email", "TEXT NOT NULL DEFAULT ''"},
			{"telefone", "TEXT NOT NULL DEFAULT ''"},
			{"endereco", "TEXT NOT NULL DEFAULT ''"},
			{"cnpj", "TEXT NOT NULL DEFAULT ''"},
			{"observacoes", "TEXT NOT NULL DEFAULT ''"},
			{"ativo", "INTEGER NOT NULL DEFAULT 1"},
			{"created_at", "TIMESTAMP NOT NULL"},
			{"updated_at", "TIMESTAMP NOT NULL"},
		},
	}

	Configs = Table{
		Name: "config",
		Columns: []Column{
			{"id", "TEXT PRIMARY KEY"},
			{"chave", "TEXT NOT NULL UNIQUE"},
			{"valor", "TEXT NOT NULL DEFAULT ''"},
			{"created_at", "TIMESTAMP NOT NULL"},
		},
	}

	Clientes = Table{
		Name: "clientes",
		Columns: []Column{
			{"id", "TEXT PRIMARY KEY"},
			{"nome", "TEXT NOT NULL"},
			{"telefone", "TEXT NOT NULL DEFAULT ''"},
			{"email", "TEXT NOT NULL DEFAULT ''"},
			{"endereco", "TEXT NOT NULL DEFAULT ''"},
			{"observacoes", "TEXT NOT NULL DEFAULT ''"},
			{"ativo", "INTEGER NOT NULL DEFAULT 1"},
			{"created_at", "TIMESTAMP NOT NULL"},
			{"updated_at", "TIMESTAMP NOT NULL"},
		},
	}

	Mesas = Table{
		Name: "mesas",
		Columns: []Column{
			{"id", "TEXT PRIMARY KEY"},
			{"numero", "INTEGER NOT NULL UNIQUE"},
			{"capacidade", "INTEGER NOT NULL DEFAULT 4"},
			{"status", "TEXT NOT NULL DEFAULT 'livre'"},
			{"created_at", "TIMESTAMP NOT NULL"},
			{"updated_at", "TIMESTAMP NOT NULL"},
		},
	}

	Cardapio = Table{
		Name: "cardapio",
		Columns: []Column{
			{"id", "TEXT PRIMARY KEY"},
			{"nome", "TEXT NOT NULL"},
			{"descricao", "TEXT NOT NULL DEFAULT ''"},
			{"categoria", "TEXT NOT NULL DEFAULT ''"},
			{"preco", "NUMERIC NOT NULL DEFAULT 0"},
			{"disponivel", "INTEGER NOT NULL DEFAULT 1"},
			{"created_at", "TIMESTAMP NOT NULL"},
			{"updated_at", "TIMESTAMP NOT NULL"},
		},
	}

	Pedidos = Table{
		Name: "pedidos",
		Columns: []Column{
			{"id", "TEXT PRIMARY KEY"},
			{"mesa_id", "TEXT REFERENCES mesas(id)"},
			{"cliente_id", "TEXT REFERENCES clientes(id)"},
			{"status", "TEXT NOT NULL DEFAULT 'aberto'"},
			{"total", "NUMERIC NOT NULL DEFAULT 0"},
			{"observacoes", "TEXT NOT NULL DEFAULT ''"},
			{"created_at", "TIMESTAMP NOT NULL"},
			{"updated_at", "TIMESTAMP NOT NULL"},
		},
		Extra: []string{
			"CREATE INDEX IF NOT EXISTS idx_pedidos_status ON pedidos(status);",
		},
	}

	PedidoItens = Table{
		Name: "pedido_itens",
		Columns: []Column{
			{"id", "TEXT PRIMARY KEY"},
			{"pedido_id", "TEXT NOT NULL REFERENCES pedidos(id)"},
			{"cardapio_id", "TEXT NOT NULL REFERENCES cardapio(id)"},
			{"quantidade", "INTEGER NOT NULL DEFAULT 1"},
			{"preco_unitario", "NUMERIC NOT NULL DEFAULT 0"},
			{"observacao", "TEXT NOT NULL DEFAULT ''"},
			{"created_at", "TIMESTAMP NOT NULL"},
		},
		Extra: []string{
			"CREATE INDEX IF NOT EXISTS idx_pedido_itens_pedido ON pedido_itens(pedido_id);",
		},
	}
)

// Schema todas as tabelas, na ordem de criação (referenciadas primeiro).
var Schema = []Table{
	Grupos, Itens, Movimentacoes, Fornecedores, Configs,
	Clientes, Mesas, Cardapio, Pedidos, PedidoItens,
}
