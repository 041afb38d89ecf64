package sink

// Columns of the names table, in insert order.
var Columns = []string{"id", "dialect", "name", "syllables"}

// Row is one generated name ready for insertion.
type Row struct {
	ID        string
	Dialect   string
	Name      string
	Syllables int
}

func (r Row) values() []interface{} {
	return []interface{}{r.ID, r.Dialect, r.Name, r.Syllables}
}

// key identifies a name within its dialect; the table is unique on it.
func (r Row) key() string {
	return r.Dialect + "|" + r.Name
}

// PumpResult is the report line for one pump run.
type PumpResult struct {
	TableName string
	Target    int
	Actual    int
	Attempts  int
	Status    string
	ErrorMsg  string
}
