package sqlite

// createItems defines the inventory table. The database file persists
// across runs, so creation is conditional.
const createItems = `
CREATE TABLE IF NOT EXISTS items (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE,
	quantity INTEGER,
	threshold INTEGER,
	last_updated TEXT,
	daily_usage REAL
);`

// schemaDDL lists every statement applied on open, in order.
var schemaDDL = []string{
	createItems,
}
