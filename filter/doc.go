/*
Package filter builds typed, composable query predicates for Azure Table
Storage and compiles them to the service's textual filter grammar.

A filter is an immutable expression tree built from constructor functions:

	f := filter.And(
	    filter.Eq("Name", "Bob"),
	    filter.Gt("Age", 5),
	)
	query, ok := filter.Compile(f)
	// query == "(Name eq 'Bob') and (Age gt 5)", ok == true

NoFilter() is the identity element: combining it with any filter leaves that
filter unchanged, and a tree that reduces entirely to NoFilter compiles to
absence (ok == false). Callers must then omit the filter clause from the query
rather than send an empty string.

Literal encoding follows the service's EDM literal grammar: byte slices as
X'hex', time.Time as datetime'...' in UTC, uuid.UUID as guid'...', int64 with
an L suffix, and any unrecognized type single-quoted as a string.
*/
package filter
