package database

import (
	"fmt"
	"strconv"
	"strings"
)

// Driver names a supported store backend
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Validate reports whether the driver is supported
func (d Driver) Validate() error {
	switch d {
	case DriverSQLite, DriverPostgres:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be: sqlite, postgres)", ErrUnknownDriver, string(d))
	}
}

// sqlName is the name registered with database/sql
func (d Driver) sqlName() string {
	if d == DriverPostgres {
		return "pgx"
	}
	return "sqlite"
}

// rebind rewrites ? placeholders into $1, $2, ... for PostgreSQL.
// Queries in this package never contain a literal question mark.
func (d Driver) rebind(query string) string {
	if d != DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
