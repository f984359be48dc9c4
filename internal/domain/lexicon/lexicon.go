// Package lexicon holds the static lookup tables used by intent parsing:
// speaker aliases and topic keyword expansions. Both tables are ordered
// slices rather than maps: substring resolution scans in declaration order
// and the first declared entry wins, which keeps the tie-break explicit.
// The tables are immutable after process start.
package lexicon

// Alias maps a lowercase name fragment to a canonical deputy name.
type Alias struct {
	Fragment  string
	Canonical string
}

// aliases covers accented and unaccented spellings plus bare surnames for
// the deputies of the environment commission corpus.
var aliases = []Alias{
	{"félix gonzález", "Félix González"},
	{"felix gonzalez", "Félix González"},
	{"gonzález", "Félix González"},
	{"gonzalez", "Félix González"},
	{"daniella cicardini", "Daniella Cicardini"},
	{"cicardini", "Daniella Cicardini"},
	{"jorge brito", "Jorge Brito"},
	{"brito", "Jorge Brito"},
	{"camila musante", "Camila Musante"},
	{"musante", "Camila Musante"},
	{"sebastián videla", "Sebastián Videla"},
	{"sebastian videla", "Sebastián Videla"},
	{"videla", "Sebastián Videla"},
	{"maría candelaria acevedo", "María Candelaria Acevedo"},
	{"maria candelaria acevedo", "María Candelaria Acevedo"},
	{"acevedo", "María Candelaria Acevedo"},
	{"harry jürgensen", "Harry Jürgensen"},
	{"harry jurgensen", "Harry Jürgensen"},
	{"jürgensen", "Harry Jürgensen"},
	{"jurgensen", "Harry Jürgensen"},
}

// Aliases returns the alias table in declaration order.
func Aliases() []Alias { return aliases }

// ResolveAlias looks up an exact lowercase fragment.
func ResolveAlias(fragment string) (string, bool) {
	for _, a := range aliases {
		if a.Fragment == fragment {
			return a.Canonical, true
		}
	}
	return "", false
}

// Topic maps a canonical topic label to its keyword variants: synonyms,
// morphological variants and domain slang, all lowercase.
type Topic struct {
	Label    string
	Keywords []string
}

var topics = []Topic{
	{"rompientes", []string{"rompiente", "rompientes", "ola", "olas", "surf", "borde costero"}},
	{"pesca", []string{"pesca", "pescador", "pescadores", "pesquera", "artesanal", "cuota"}},
	{"medio ambiente", []string{"ambiental", "ambiente", "ecosistema", "contaminación", "contaminacion"}},
	{"humedales", []string{"humedal", "humedales", "urbano", "ecosistema"}},
	{"salmonicultura", []string{"salmón", "salmon", "salmonera", "salmoneras", "concesión", "concesion"}},
	{"litio", []string{"litio", "salar", "salares", "minería", "mineria", "extracción", "extraccion"}},
	{"bosque nativo", []string{"bosque", "bosques", "nativo", "tala", "forestal"}},
	{"presupuesto", []string{"presupuesto", "recursos", "financiamiento", "glosa", "partida"}},
}

// Topics returns the topic table in declaration order.
func Topics() []Topic { return topics }
