// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fabtrack/steelparse/gen/ent/parsingmapping"
	"github.com/google/uuid"
)

// ParsingMapping is the model entity for the ParsingMapping schema.
type ParsingMapping struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// MappingKey holds the value of the "mapping_key" field.
	MappingKey string `json:"mapping_key,omitempty"`
	// InputSnapshot holds the value of the "input_snapshot" field.
	InputSnapshot json.RawMessage `json:"input_snapshot,omitempty"`
	// ItemCode holds the value of the "item_code" field.
	ItemCode *string `json:"item_code,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// MetalType holds the value of the "metal_type" field.
	MetalType *string `json:"metal_type,omitempty"`
	// Alloy holds the value of the "alloy" field.
	Alloy *string `json:"alloy,omitempty"`
	// Specifics holds the value of the "specifics" field.
	Specifics *string `json:"specifics,omitempty"`
	// Dimensions holds the value of the "dimensions" field.
	Dimensions *string `json:"dimensions,omitempty"`
	// UnitCost holds the value of the "unit_cost" field.
	UnitCost *float64 `json:"unit_cost,omitempty"`
	// PriceUnit holds the value of the "price_unit" field.
	PriceUnit *string `json:"price_unit,omitempty"`
	// ParserVersion holds the value of the "parser_version" field.
	ParserVersion string `json:"parser_version,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float32 `json:"confidence,omitempty"`
	// RawModelOutput holds the value of the "raw_model_output" field.
	RawModelOutput string `json:"raw_model_output,omitempty"`
	// Validated holds the value of the "validated" field.
	Validated bool `json:"validated,omitempty"`
	// ValidatedBy holds the value of the "validated_by" field.
	ValidatedBy *string `json:"validated_by,omitempty"`
	// ValidatedAt holds the value of the "validated_at" field.
	ValidatedAt *time.Time `json:"validated_at,omitempty"`
	// ValidationNotes holds the value of the "validation_notes" field.
	ValidationNotes *string `json:"validation_notes,omitempty"`
	// ItemCodeExists holds the value of the "item_code_exists" field.
	ItemCodeExists *bool `json:"item_code_exists,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ParsingMapping) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case parsingmapping.FieldInputSnapshot:
			values[i] = new([]byte)
		case parsingmapping.FieldValidated, parsingmapping.FieldItemCodeExists:
			values[i] = new(sql.NullBool)
		case parsingmapping.FieldUnitCost, parsingmapping.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case parsingmapping.FieldMappingKey, parsingmapping.FieldItemCode, parsingmapping.FieldDescription, parsingmapping.FieldMetalType, parsingmapping.FieldAlloy, parsingmapping.FieldSpecifics, parsingmapping.FieldDimensions, parsingmapping.FieldPriceUnit, parsingmapping.FieldParserVersion, parsingmapping.FieldRawModelOutput, parsingmapping.FieldValidatedBy, parsingmapping.FieldValidationNotes:
			values[i] = new(sql.NullString)
		case parsingmapping.FieldValidatedAt, parsingmapping.FieldCreatedAt, parsingmapping.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case parsingmapping.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ParsingMapping fields.
func (_m *ParsingMapping) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case parsingmapping.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case parsingmapping.FieldMappingKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mapping_key", values[i])
			} else if value.Valid {
				_m.MappingKey = value.String
			}
		case parsingmapping.FieldInputSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field input_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InputSnapshot); err != nil {
					return fmt.Errorf("unmarshal field input_snapshot: %w", err)
				}
			}
		case parsingmapping.FieldItemCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_code", values[i])
			} else if value.Valid {
				_m.ItemCode = new(string)
				*_m.ItemCode = value.String
			}
		case parsingmapping.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case parsingmapping.FieldMetalType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field metal_type", values[i])
			} else if value.Valid {
				_m.MetalType = new(string)
				*_m.MetalType = value.String
			}
		case parsingmapping.FieldAlloy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alloy", values[i])
			} else if value.Valid {
				_m.Alloy = new(string)
				*_m.Alloy = value.String
			}
		case parsingmapping.FieldSpecifics:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field specifics", values[i])
			} else if value.Valid {
				_m.Specifics = new(string)
				*_m.Specifics = value.String
			}
		case parsingmapping.FieldDimensions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dimensions", values[i])
			} else if value.Valid {
				_m.Dimensions = new(string)
				*_m.Dimensions = value.String
			}
		case parsingmapping.FieldUnitCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field unit_cost", values[i])
			} else if value.Valid {
				_m.UnitCost = new(float64)
				*_m.UnitCost = value.Float64
			}
		case parsingmapping.FieldPriceUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field price_unit", values[i])
			} else if value.Valid {
				_m.PriceUnit = new(string)
				*_m.PriceUnit = value.String
			}
		case parsingmapping.FieldParserVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parser_version", values[i])
			} else if value.Valid {
				_m.ParserVersion = value.String
			}
		case parsingmapping.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float32)
				*_m.Confidence = float32(value.Float64)
			}
		case parsingmapping.FieldRawModelOutput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_model_output", values[i])
			} else if value.Valid {
				_m.RawModelOutput = value.String
			}
		case parsingmapping.FieldValidated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field validated", values[i])
			} else if value.Valid {
				_m.Validated = value.Bool
			}
		case parsingmapping.FieldValidatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validated_by", values[i])
			} else if value.Valid {
				_m.ValidatedBy = new(string)
				*_m.ValidatedBy = value.String
			}
		case parsingmapping.FieldValidatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field validated_at", values[i])
			} else if value.Valid {
				_m.ValidatedAt = new(time.Time)
				*_m.ValidatedAt = value.Time
			}
		case parsingmapping.FieldValidationNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validation_notes", values[i])
			} else if value.Valid {
				_m.ValidationNotes = new(string)
				*_m.ValidationNotes = value.String
			}
		case parsingmapping.FieldItemCodeExists:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field item_code_exists", values[i])
			} else if value.Valid {
				_m.ItemCodeExists = new(bool)
				*_m.ItemCodeExists = value.Bool
			}
		case parsingmapping.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case parsingmapping.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ParsingMapping.
// This includes values selected through modifiers, order, etc.
func (_m *ParsingMapping) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ParsingMapping.
// Note that you need to call ParsingMapping.Unwrap() before calling this method if this ParsingMapping
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ParsingMapping) Update() *ParsingMappingUpdateOne {
	return NewParsingMappingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ParsingMapping entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ParsingMapping) Unwrap() *ParsingMapping {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ParsingMapping is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ParsingMapping) String() string {
	var builder strings.Builder
	builder.WriteString("ParsingMapping(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("mapping_key=")
	builder.WriteString(_m.MappingKey)
	builder.WriteString(", ")
	builder.WriteString("input_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputSnapshot))
	builder.WriteString(", ")
	if v := _m.ItemCode; v != nil {
		builder.WriteString("item_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MetalType; v != nil {
		builder.WriteString("metal_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Alloy; v != nil {
		builder.WriteString("alloy=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Specifics; v != nil {
		builder.WriteString("specifics=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Dimensions; v != nil {
		builder.WriteString("dimensions=")
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
	builder.WriteString("parser_version=")
	builder.WriteString(_m.ParserVersion)
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("raw_model_output=")
	builder.WriteString(_m.RawModelOutput)
	builder.WriteString(", ")
	builder.WriteString("validated=")
	builder.WriteString(fmt.Sprintf("%v", _m.Validated))
	builder.WriteString(", ")
	if v := _m.ValidatedBy; v != nil {
		builder.WriteString("validated_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ValidatedAt; v != nil {
		builder.WriteString("validated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ValidationNotes; v != nil {
		builder.WriteString("validation_notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ItemCodeExists; v != nil {
		builder.WriteString("item_code_exists=")
		builder.WriteString(fmt.Sprintf("%v", *v))
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

// ParsingMappings is a parsable slice of ParsingMapping.
type ParsingMappings []*ParsingMapping
