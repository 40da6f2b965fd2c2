// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ParsingMapping is the predicate function for parsingmapping builders.
type ParsingMapping func(*sql.Selector)

// StockItem is the predicate function for stockitem builders.
type StockItem func(*sql.Selector)

// SupplierProduct is the predicate function for supplierproduct builders.
type SupplierProduct func(*sql.Selector)
