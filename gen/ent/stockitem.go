// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fabtrack/steelparse/gen/ent/stockitem"
	"github.com/google/uuid"
)

// StockItem is the model entity for the StockItem schema.
type StockItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ItemCode holds the value of the "item_code" field.
	ItemCode string `json:"item_code,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// UnitCost holds the value of the "unit_cost" field.
	UnitCost *float64 `json:"unit_cost,omitempty"`
	// PriceUnit holds the value of the "price_unit" field.
	PriceUnit *string `json:"price_unit,omitempty"`
	// ParsedMetalType holds the value of the "parsed_metal_type" field.
	ParsedMetalType *string `json:"parsed_metal_type,omitempty"`
	// ParsedAlloy holds the value of the "parsed_alloy" field.
	ParsedAlloy *string `json:"parsed_alloy,omitempty"`
	// ParsedDimensions holds the value of the "parsed_dimensions" field.
	ParsedDimensions *string `json:"parsed_dimensions,omitempty"`
	// ParserVersion holds the value of the "parser_version" field.
	ParserVersion *string `json:"parser_version,omitempty"`
	// ParseConfidence holds the value of the "parse_confidence" field.
	ParseConfidence *float32 `json:"parse_confidence,omitempty"`
	// ParsedAt holds the value of the "parsed_at" field.
	ParsedAt *time.Time `json:"parsed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StockItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stockitem.FieldUnitCost, stockitem.FieldParseConfidence:
			values[i] = new(sql.NullFloat64)
		case stockitem.FieldItemCode, stockitem.FieldDescription, stockitem.FieldPriceUnit, stockitem.FieldParsedMetalType, stockitem.FieldParsedAlloy, stockitem.FieldParsedDimensions, stockitem.FieldParserVersion:
			values[i] = new(sql.NullString)
		case stockitem.FieldParsedAt, stockitem.FieldCreatedAt, stockitem.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case stockitem.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StockItem fields.
func (_m *StockItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stockitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case stockitem.FieldItemCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_code", values[i])
			} else if value.Valid {
				_m.ItemCode = value.String
			}
		case stockitem.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case stockitem.FieldUnitCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field unit_cost", values[i])
			} else if value.Valid {
				_m.UnitCost = new(float64)
				*_m.UnitCost = value.Float64
			}
		case stockitem.FieldPriceUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field price_unit", values[i])
			} else if value.Valid {
				_m.PriceUnit = new(string)
				*_m.PriceUnit = value.String
			}
		case stockitem.FieldParsedMetalType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parsed_metal_type", values[i])
			} else if value.Valid {
				_m.ParsedMetalType = new(string)
				*_m.ParsedMetalType = value.String
			}
		case stockitem.FieldParsedAlloy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parsed_alloy", values[i])
			} else if value.Valid {
				_m.ParsedAlloy = new(string)
				*_m.ParsedAlloy = value.String
			}
		case stockitem.FieldParsedDimensions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parsed_dimensions", values[i])
			} else if value.Valid {
				_m.ParsedDimensions = new(string)
				*_m.ParsedDimensions = value.String
			}
		case stockitem.FieldParserVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parser_version", values[i])
			} else if value.Valid {
				_m.ParserVersion = new(string)
				*_m.ParserVersion = value.String
			}
		case stockitem.FieldParseConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field parse_confidence", values[i])
			} else if value.Valid {
				_m.ParseConfidence = new(float32)
				*_m.ParseConfidence = float32(value.Float64)
			}
		case stockitem.FieldParsedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field parsed_at", values[i])
			} else if value.Valid {
				_m.ParsedAt = new(time.Time)
				*_m.ParsedAt = value.Time
			}
		case stockitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case stockitem.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StockItem.
// This includes values selected through modifiers, order, etc.
func (_m *StockItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StockItem.
// Note that you need to call StockItem.Unwrap() before calling this method if this StockItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StockItem) Update() *StockItemUpdateOne {
	return NewStockItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StockItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StockItem) Unwrap() *StockItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StockItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StockItem) String() string {
	var builder strings.Builder
	builder.WriteString("StockItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("item_code=")
	builder.WriteString(_m.ItemCode)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.UnitCost; v != nil {
		builder.WriteString("unit_cost=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PriceUnit; v != nil {
		builder.WriteString("price_unit=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ParsedMetalType; v != nil {
		builder.WriteString("parsed_metal_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ParsedAlloy; v != nil {
		builder.WriteString("parsed_alloy=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ParsedDimensions; v != nil {
		builder.WriteString("parsed_dimensions=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ParserVersion; v != nil {
		builder.WriteString("parser_version=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ParseConfidence; v != nil {
		builder.WriteString("parse_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ParsedAt; v != nil {
		builder.WriteString("parsed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StockItems is a parsable slice of StockItem.
type StockItems []*StockItem
