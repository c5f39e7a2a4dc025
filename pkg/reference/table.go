// Package reference is the registry of tables reachable through the generic
// record store. Only tables listed here can be named at runtime; every SQL
// identifier the store builds comes from this registry.
package reference

import (
	"sort"

	"alqualis/pkg/faults"
)

// Dependent is a column in another table that points at a reference row.
type Dependent struct {
	Table  string
	Column string
}

type Table struct {
	Name       string
	IDColumn   string
	NameColumn string
	// ReadOnly tables can be listed and searched but not written through
	// the generic store; they have their own repositories.
	ReadOnly   bool
	Dependents []Dependent
}

const (
	Cooperative  = "cooperativa"
	Municipality = "municipio"
	Community    = "comunidade"
	Variety      = "variedade"
	ExposureFace = "face_exposicao"
	Producer     = "produtor"
	Plantation   = "plantacao"
)

var registry = map[string]Table{
	Cooperative: {
		Name: Cooperative, IDColumn: "id_cooperativa", NameColumn: "nome_cooperativa",
		Dependents: []Dependent{{"cooperativa_produtor", "id_cooperativa"}},
	},
	Municipality: {
		Name: Municipality, IDColumn: "id_municipio", NameColumn: "nome_municipio",
		Dependents: []Dependent{{"plantacao", "id_municipio"}},
	},
	Community: {
		Name: Community, IDColumn: "id_comunidade", NameColumn: "nome_comunidade",
		Dependents: []Dependent{{"plantacao", "id_comunidade"}},
	},
	Variety: {
		Name: Variety, IDColumn: "id_variedade", NameColumn: "nome_variedade",
		Dependents: []Dependent{{"plantacao", "id_variedade"}},
	},
	ExposureFace: {
		Name: ExposureFace, IDColumn: "id_face_exposicao", NameColumn: "nome_face_exposicao",
		Dependents: []Dependent{{"face_exposicao_plantacao", "id_face_exposicao"}},
	},
	Producer: {
		Name: Producer, IDColumn: "id_produtor", NameColumn: "nome_produtor", ReadOnly: true,
		Dependents: []Dependent{{"plantacao", "id_produtor"}},
	},
	Plantation: {
		Name: Plantation, IDColumn: "id_plantacao", NameColumn: "nome_plantacao", ReadOnly: true,
	},
}

// Lookup resolves a table name to its registry entry.
func Lookup(name string) (Table, error) {
	t, ok := registry[name]
	if !ok {
		return Table{}, faults.New(faults.ValidationError, "unknown table "+name)
	}
	return t, nil
}

// Writable resolves name and rejects tables that cannot be written generically.
func Writable(name string) (Table, error) {
	t, err := Lookup(name)
	if err != nil {
		return t, err
	}
	if t.ReadOnly {
		return Table{}, faults.New(faults.ValidationError, "table "+name+" is read-only here")
	}
	return t, nil
}

// Names lists the registered tables in alphabetical order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
