// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fabtrack/steelparse/gen/ent/supplierproduct"
	"github.com/google/uuid"
)

// SupplierProduct is the model entity for the SupplierProduct schema.
type SupplierProduct struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SupplierName holds the value of the "supplier_name" field.
	SupplierName string `json:"supplier_name,omitempty"`
	// ItemNo holds the value of the "item_no" field.
	ItemNo *string `json:"item_no,omitempty"`
	// VariantID holds the value of the "variant_id" field.
	VariantID *string `json:"variant_id,omitempty"`
	// ProductName holds the value of the "product_name" field.
	ProductName *string `json:"product_name,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Price holds the value of the "price" field.
	Price *float64 `json:"price,omitempty"`
	// PriceUnit holds the value of the "price_unit" field.
	PriceUnit *string `json:"price_unit,omitempty"`
	// Specifications holds the value of the "specifications" field.
	Specifications json.RawMessage `json:"specifications,omitempty"`
	// ParsedItemCode holds the value of the "parsed_item_code" field.
	ParsedItemCode *string `json:"parsed_item_code,omitempty"`
	// ParsedMetalType holds the value of the "parsed_metal_type" field.
	ParsedMetalType *string `json:"parsed_metal_type,omitempty"`
	// ParsedAlloy holds the value of the "parsed_alloy" field.
	ParsedAlloy *string `json:"parsed_alloy,omitempty"`
	// ParsedDimensions holds the value of the "parsed_dimensions" field.
	ParsedDimensions *string `json:"parsed_dimensions,omitempty"`
	// ParsedUnitCost holds the value of the "parsed_unit_cost" field.
	ParsedUnitCost *float64 `json:"parsed_unit_cost,omitempty"`
	// ParsedPriceUnit holds the value of the "parsed_price_unit" field.
	ParsedPriceUnit *string `json:"parsed_price_unit,omitempty"`
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
func (*SupplierProduct) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case supplierproduct.FieldSpecifications:
			values[i] = new([]byte)
		case supplierproduct.FieldPrice, supplierproduct.FieldParsedUnitCost, supplierproduct.FieldParseConfidence:
			values[i] = new(sql.NullFloat64)
		case supplierproduct.FieldSupplierName, supplierproduct.FieldItemNo, supplierproduct.FieldVariantID, supplierproduct.FieldProductName, supplierproduct.FieldDescription, supplierproduct.FieldPriceUnit, supplierproduct.FieldParsedItemCode, supplierproduct.FieldParsedMetalType, supplierproduct.FieldParsedAlloy, supplierproduct.FieldParsedDimensions, supplierproduct.FieldParsedPriceUnit, supplierproduct.FieldParserVersion:
			values[i] = new(sql.NullString)
		case supplierproduct.FieldParsedAt, supplierproduct.FieldCreatedAt, supplierproduct.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case supplierproduct.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SupplierProduct fields.
func (_m *SupplierProduct) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case supplierproduct.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case supplierproduct.FieldSupplierName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_name", values[i])
			} else if value.Valid {
				_m.SupplierName = value.String
			}
		case supplierproduct.FieldItemNo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_no", values[i])
			} else if value.Valid {
				_m.ItemNo = new(string)
				*_m.ItemNo = value.String
			}
		case supplierproduct.FieldVariantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field variant_id", values[i])
			} else if value.Valid {
				_m.VariantID = new(string)
				*_m.VariantID = value.String
			}
		case supplierproduct.FieldProductName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field product_name", values[i])
			} else if value.Valid {
				_m.ProductName = new(string)
				*_m.ProductName = value.String
			}
		case supplierproduct.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case supplierproduct.FieldPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = new(float64)
				*_m.Price = value.Float64
			}
		case supplierproduct.FieldPriceUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field price_unit", values[i])
			} else if value.Valid {
				_m.PriceUnit = new(string)
				*_m.PriceUnit = value.String
			}
		case supplierproduct.FieldSpecifications:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field specifications", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Specifications); err != nil {
					return fmt.Errorf("unmarshal field specifications: %w", err)
				}
			}
		case supplierproduct.FieldParsedItemCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parsed_item_code", values[i])
			} else if value.Valid {
				_m.ParsedItemCode = new(string)
				*_m.ParsedItemCode = value.String
			}
		case supplierproduct.FieldParsedMetalType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parsed_metal_type", values[i])
			} else if value.Valid {
				_m.ParsedMetalType = new(string)
				*_m.ParsedMetalType = value.String
			}
		case supplierproduct.FieldParsedAlloy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parsed_alloy", values[i])
			} else if value.Valid {
				_m.ParsedAlloy = new(string)
				*_m.ParsedAlloy = value.String
			}
		case supplierproduct.FieldParsedDimensions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parsed_dimensions", values[i])
			} else if value.Valid {
				_m.ParsedDimensions = new(string)
				*_m.ParsedDimensions = value.String
			}
		case supplierproduct.FieldParsedUnitCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field parsed_unit_cost", values[i])
			} else if value.Valid {
				_m.ParsedUnitCost = new(float64)
				*_m.ParsedUnitCost = value.Float64
			}
		case supplierproduct.FieldParsedPriceUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parsed_price_unit", values[i])
			} else if value.Valid {
				_m.ParsedPriceUnit = new(string)
				*_m.ParsedPriceUnit = value.String
			}
		case supplierproduct.FieldParserVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parser_version", values[i])
			} else if value.Valid {
				_m.ParserVersion = new(string)
				*_m.ParserVersion = value.String
			}
		case supplierproduct.FieldParseConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field parse_confidence", values[i])
			} else if value.Valid {
				_m.ParseConfidence = new(float32)
				*_m.ParseConfidence = float32(value.Float64)
			}
		case supplierproduct.FieldParsedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field parsed_at", values[i])
			} else if value.Valid {
				_m.ParsedAt = new(time.Time)
				*_m.ParsedAt = value.Time
			}
		case supplierproduct.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case supplierproduct.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SupplierProduct.
// This includes values selected through modifiers, order, etc.
func (_m *SupplierProduct) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SupplierProduct.
// Note that you need to call SupplierProduct.Unwrap() before calling this method if this SupplierProduct
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SupplierProduct) Update() *SupplierProductUpdateOne {
	return NewSupplierProductClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SupplierProduct entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SupplierProduct) Unwrap() *SupplierProduct {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SupplierProduct is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SupplierProduct) String() string {
	var builder strings.Builder
	builder.WriteString("SupplierProduct(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("supplier_name=")
	builder.WriteString(_m.SupplierName)
	builder.WriteString(", ")
	if v := _m.ItemNo; v != nil {
		builder.WriteString("item_no=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.VariantID; v != nil {
		builder.WriteString("variant_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ProductName; v != nil {
		builder.WriteString("product_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Price; v != nil {
		builder.WriteString("price=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PriceUnit; v != nil {
		builder.WriteString("price_unit=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("specifications=")
	builder.WriteString(fmt.Sprintf("%v", _m.Specifications))
	builder.WriteString(", ")
	if v := _m.ParsedItemCode; v != nil {
		builder.WriteString("parsed_item_code=")
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
	if v := _m.ParsedUnitCost; v != nil {
		builder.WriteString("parsed_unit_cost=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ParsedPriceUnit; v != nil {
		builder.WriteString("parsed_price_unit=")
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

// SupplierProducts is a parsable slice of SupplierProduct.
type SupplierProducts []*SupplierProduct
