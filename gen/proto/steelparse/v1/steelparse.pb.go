// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: steelparse/v1/steelparse.proto

package steelparsepb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type InputItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Description   string                 `protobuf:"bytes,1,opt,name=description,proto3" json:"description,omitempty"`
	ProductName   string                 `protobuf:"bytes,2,opt,name=product_name,json=productName,proto3" json:"product_name,omitempty"`
	SupplierName  string                 `protobuf:"bytes,3,opt,name=supplier_name,json=supplierName,proto3" json:"supplier_name,omitempty"`
	ItemNo        string                 `protobuf:"bytes,4,opt,name=item_no,json=itemNo,proto3" json:"item_no,omitempty"`
	VariantId     string                 `protobuf:"bytes,5,opt,name=variant_id,json=variantId,proto3" json:"variant_id,omitempty"`
	Price         *float64               `protobuf:"fixed64,6,opt,name=price,proto3,oneof" json:"price,omitempty"`
	PriceUnit     string                 `protobuf:"bytes,7,opt,name=price_unit,json=priceUnit,proto3" json:"price_unit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InputItem) Reset() {
	*x = InputItem{}
	mi := &file_steelparse_v1_steelparse_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InputItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InputItem) ProtoMessage() {}

func (x *InputItem) ProtoReflect() protoreflect.Message {
	mi := &file_steelparse_v1_steelparse_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InputItem.ProtoReflect.Descriptor instead.
func (*InputItem) Descriptor() ([]byte, []int) {
	return file_steelparse_v1_steelparse_proto_rawDescGZIP(), []int{0}
}

func (x *InputItem) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *InputItem) GetProductName() string {
	if x != nil {
		return x.ProductName
	}
	return ""
}

func (x *InputItem) GetSupplierName() string {
	if x != nil {
		return x.SupplierName
	}
	return ""
}

func (x *InputItem) GetItemNo() string {
	if x != nil {
		return x.ItemNo
	}
	return ""
}

func (x *InputItem) GetVariantId() string {
	if x != nil {
		return x.VariantId
	}
	return ""
}

func (x *InputItem) GetPrice() float64 {
	if x != nil && x.Price != nil {
		return *x.Price
	}
	return 0
}

func (x *InputItem) GetPriceUnit() string {
	if x != nil {
		return x.PriceUnit
	}
	return ""
}

type Mapping struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	MappingKey      string                 `protobuf:"bytes,1,opt,name=mapping_key,json=mappingKey,proto3" json:"mapping_key,omitempty"`
	ItemCode        *string                `protobuf:"bytes,2,opt,name=item_code,json=itemCode,proto3,oneof" json:"item_code,omitempty"`
	Description     *string                `protobuf:"bytes,3,opt,name=description,proto3,oneof" json:"description,omitempty"`
	MetalType       *string                `protobuf:"bytes,4,opt,name=metal_type,json=metalType,proto3,oneof" json:"metal_type,omitempty"`
	Alloy           *string                `protobuf:"bytes,5,opt,name=alloy,proto3,oneof" json:"alloy,omitempty"`
	Specifics       *string                `protobuf:"bytes,6,opt,name=specifics,proto3,oneof" json:"specifics,omitempty"`
	Dimensions      *string                `protobuf:"bytes,7,opt,name=dimensions,proto3,oneof" json:"dimensions,omitempty"`
	UnitCost        *float64               `protobuf:"fixed64,8,opt,name=unit_cost,json=unitCost,proto3,oneof" json:"unit_cost,omitempty"`
	PriceUnit       *string                `protobuf:"bytes,9,opt,name=price_unit,json=priceUnit,proto3,oneof" json:"price_unit,omitempty"`
	ParserVersion   string                 `protobuf:"bytes,10,opt,name=parser_version,json=parserVersion,proto3" json:"parser_version,omitempty"`
	Confidence      *float32               `protobuf:"fixed32,11,opt,name=confidence,proto3,oneof" json:"confidence,omitempty"`
	Validated       bool                   `protobuf:"varint,12,opt,name=validated,proto3" json:"validated,omitempty"`
	ValidatedBy     *string                `protobuf:"bytes,13,opt,name=validated_by,json=validatedBy,proto3,oneof" json:"validated_by,omitempty"`
	ValidatedAt     *string                `protobuf:"bytes,14,opt,name=validated_at,json=validatedAt,proto3,oneof" json:"validated_at,omitempty"` // RFC 3339
	ValidationNotes *string                `protobuf:"bytes,15,opt,name=validation_notes,json=validationNotes,proto3,oneof" json:"validation_notes,omitempty"`
	ItemCodeExists  *bool                  `protobuf:"varint,16,opt,name=item_code_exists,json=itemCodeExists,proto3,oneof" json:"item_code_exists,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,17,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Mapping) Reset() {
	*x = Mapping{}
	mi := &file_steelparse_v1_steelparse_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Mapping) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Mapping) ProtoMessage() {}

func (x *Mapping) ProtoReflect() protoreflect.Message {
	mi := &file_steelparse_v1_steelparse_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Mapping.ProtoReflect.Descriptor instead.
func (*Mapping) Descriptor() ([]byte, []int) {
	return file_steelparse_v1_steelparse_proto_rawDescGZIP(), []int{1}
}

func (x *Mapping) GetMappingKey() string {
	if x != nil {
		return x.MappingKey
	}
	return ""
}

func (x *Mapping) GetItemCode() string {
	if x != nil && x.ItemCode != nil {
		return *x.ItemCode
	}
	return ""
}

func (x *Mapping) GetDescription() string {
	if x != nil && x.Description != nil {
		return *x.Description
	}
	return ""
}

func (x *Mapping) GetMetalType() string {
	if x != nil && x.MetalType != nil {
		return *x.MetalType
	}
	return ""
}

func (x *Mapping) GetAlloy() string {
	if x != nil && x.Alloy != nil {
		return *x.Alloy
	}
	return ""
}

func (x *Mapping) GetSpecifics() string {
	if x != nil && x.Specifics != nil {
		return *x.Specifics
	}
	return ""
}

func (x *Mapping) GetDimensions() string {
	if x != nil && x.Dimensions != nil {
		return *x.Dimensions
	}
	return ""
}

func (x *Mapping) GetUnitCost() float64 {
	if x != nil && x.UnitCost != nil {
		return *x.UnitCost
	}
	return 0
}

func (x *Mapping) GetPriceUnit() string {
	if x != nil && x.PriceUnit != nil {
		return *x.PriceUnit
	}
	return ""
}

func (x *Mapping) GetParserVersion() string {
	if x != nil {
		return x.ParserVersion
	}
	return ""
}

func (x *Mapping) GetConfidence() float32 {
	if x != nil && x.Confidence != nil {
		return *x.Confidence
	}
	return 0
}

func (x *Mapping) GetValidated() bool {
	if x != nil {
		return x.Validated
	}
	return false
}

func (x *Mapping) GetValidatedBy() string {
	if x != nil && x.ValidatedBy != nil {
		return *x.ValidatedBy
	}
	return ""
}

func (x *Mapping) GetValidatedAt() string {
	if x != nil && x.ValidatedAt != nil {
		return *x.ValidatedAt
	}
	return ""
}

func (x *Mapping) GetValidationNotes() string {
	if x != nil && x.ValidationNotes != nil {
		return *x.ValidationNotes
	}
	return ""
}

func (x *Mapping) GetItemCodeExists() bool {
	if x != nil && x.ItemCodeExists != nil {
		return *x.ItemCodeExists
	}
	return false
}

func (x *Mapping) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ParseItemsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*InputItem           `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseItemsRequest) Reset() {
	*x = ParseItemsRequest{}
	mi := &file_steelparse_v1_steelparse_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseItemsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseItemsRequest) ProtoMessage() {}

func (x *ParseItemsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_steelparse_v1_steelparse_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseItemsRequest.ProtoReflect.Descriptor instead.
func (*ParseItemsRequest) Descriptor() ([]byte, []int) {
	return file_steelparse_v1_steelparse_proto_rawDescGZIP(), []int{2}
}

func (x *ParseItemsRequest) GetItems() []*InputItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type ParseResult struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// absent mapping means the item degraded to an empty result
	Mapping       *Mapping `protobuf:"bytes,1,opt,name=mapping,proto3,oneof" json:"mapping,omitempty"`
	WasCached     bool     `protobuf:"varint,2,opt,name=was_cached,json=wasCached,proto3" json:"was_cached,omitempty"`
	MappingKey    string   `protobuf:"bytes,3,opt,name=mapping_key,json=mappingKey,proto3" json:"mapping_key,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseResult) Reset() {
	*x = ParseResult{}
	mi := &file_steelparse_v1_steelparse_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseResult) ProtoMessage() {}

func (x *ParseResult) ProtoReflect() protoreflect.Message {
	mi := &file_steelparse_v1_steelparse_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseResult.ProtoReflect.Descriptor instead.
func (*ParseResult) Descriptor() ([]byte, []int) {
	return file_steelparse_v1_steelparse_proto_rawDescGZIP(), []int{3}
}

func (x *ParseResult) GetMapping() *Mapping {
	if x != nil {
		return x.Mapping
	}
	return nil
}

func (x *ParseResult) GetWasCached() bool {
	if x != nil {
		return x.WasCached
	}
	return false
}

func (x *ParseResult) GetMappingKey() string {
	if x != nil {
		return x.MappingKey
	}
	return ""
}

type ParseItemsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Results       []*ParseResult         `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseItemsResponse) Reset() {
	*x = ParseItemsResponse{}
	mi := &file_steelparse_v1_steelparse_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseItemsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseItemsResponse) ProtoMessage() {}

func (x *ParseItemsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_steelparse_v1_steelparse_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseItemsResponse.ProtoReflect.Descriptor instead.
func (*ParseItemsResponse) Descriptor() ([]byte, []int) {
	return file_steelparse_v1_steelparse_proto_rawDescGZIP(), []int{4}
}

func (x *ParseItemsResponse) GetResults() []*ParseResult {
	if x != nil {
		return x.Results
	}
	return nil
}

type ListUnvalidatedRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUnvalidatedRequest) Reset() {
	*x = ListUnvalidatedRequest{}
	mi := &file_steelparse_v1_steelparse_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUnvalidatedRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUnvalidatedRequest) ProtoMessage() {}

func (x *ListUnvalidatedRequest) ProtoReflect() protoreflect.Message {
	mi := &file_steelparse_v1_steelparse_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUnvalidatedRequest.ProtoReflect.Descriptor instead.
func (*ListUnvalidatedRequest) Descriptor() ([]byte, []int) {
	return file_steelparse_v1_steelparse_proto_rawDescGZIP(), []int{5}
}

func (x *ListUnvalidatedRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListUnvalidatedResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Mappings      []*Mapping             `protobuf:"bytes,1,rep,name=mappings,proto3" json:"mappings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUnvalidatedResponse) Reset() {
	*x = ListUnvalidatedResponse{}
	mi := &file_steelparse_v1_steelparse_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUnvalidatedResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUnvalidatedResponse) ProtoMessage() {}

func (x *ListUnvalidatedResponse) ProtoReflect() protoreflect.Message {
	mi := &file_steelparse_v1_steelparse_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUnvalidatedResponse.ProtoReflect.Descriptor instead.
func (*ListUnvalidatedResponse) Descriptor() ([]byte, []int) {
	return file_steelparse_v1_steelparse_proto_rawDescGZIP(), []int{6}
}

func (x *ListUnvalidatedResponse) GetMappings() []*Mapping {
	if x != nil {
		return x.Mappings
	}
	return nil
}

type ValidateMappingRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	MappingKey  string                 `protobuf:"bytes,1,opt,name=mapping_key,json=mappingKey,proto3" json:"mapping_key,omitempty"`
	ValidatedBy string                 `protobuf:"bytes,2,opt,name=validated_by,json=validatedBy,proto3" json:"validated_by,omitempty"`
	Notes       string                 `protobuf:"bytes,3,opt,name=notes,proto3" json:"notes,omitempty"`
	// unset fields leave the stored values unchanged
	ItemCode      *string  `protobuf:"bytes,4,opt,name=item_code,json=itemCode,proto3,oneof" json:"item_code,omitempty"`
	Description   *string  `protobuf:"bytes,5,opt,name=description,proto3,oneof" json:"description,omitempty"`
	MetalType     *string  `protobuf:"bytes,6,opt,name=metal_type,json=metalType,proto3,oneof" json:"metal_type,omitempty"`
	Alloy         *string  `protobuf:"bytes,7,opt,name=alloy,proto3,oneof" json:"alloy,omitempty"`
	Specifics     *string  `protobuf:"bytes,8,opt,name=specifics,proto3,oneof" json:"specifics,omitempty"`
	Dimensions    *string  `protobuf:"bytes,9,opt,name=dimensions,proto3,oneof" json:"dimensions,omitempty"`
	UnitCost      *float64 `protobuf:"fixed64,10,opt,name=unit_cost,json=unitCost,proto3,oneof" json:"unit_cost,omitempty"`
	PriceUnit     *string  `protobuf:"bytes,11,opt,name=price_unit,json=priceUnit,proto3,oneof" json:"price_unit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidateMappingRequest) Reset() {
	*x = ValidateMappingRequest{}
	mi := &file_steelparse_v1_steelparse_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateMappingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateMappingRequest) ProtoMessage() {}

func (x *ValidateMappingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_steelparse_v1_steelparse_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateMappingRequest.ProtoReflect.Descriptor instead.
func (*ValidateMappingRequest) Descriptor() ([]byte, []int) {
	return file_steelparse_v1_steelparse_proto_rawDescGZIP(), []int{7}
}

func (x *ValidateMappingRequest) GetMappingKey() string {
	if x != nil {
		return x.MappingKey
	}
	return ""
}

func (x *ValidateMappingRequest) GetValidatedBy() string {
	if x != nil {
		return x.ValidatedBy
	}
	return ""
}

func (x *ValidateMappingRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *ValidateMappingRequest) GetItemCode() string {
	if x != nil && x.ItemCode != nil {
		return *x.ItemCode
	}
	return ""
}

func (x *ValidateMappingRequest) GetDescription() string {
	if x != nil && x.Description != nil {
		return *x.Description
	}
	return ""
}

func (x *ValidateMappingRequest) GetMetalType() string {
	if x != nil && x.MetalType != nil {
		return *x.MetalType
	}
	return ""
}

func (x *ValidateMappingRequest) GetAlloy() string {
	if x != nil && x.Alloy != nil {
		return *x.Alloy
	}
	return ""
}

func (x *ValidateMappingRequest) GetSpecifics() string {
	if x != nil && x.Specifics != nil {
		return *x.Specifics
	}
	return ""
}

func (x *ValidateMappingRequest) GetDimensions() string {
	if x != nil && x.Dimensions != nil {
		return *x.Dimensions
	}
	return ""
}

func (x *ValidateMappingRequest) GetUnitCost() float64 {
	if x != nil && x.UnitCost != nil {
		return *x.UnitCost
	}
	return 0
}

func (x *ValidateMappingRequest) GetPriceUnit() string {
	if x != nil && x.PriceUnit != nil {
		return *x.PriceUnit
	}
	return ""
}

type ValidateMappingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Mapping       *Mapping               `protobuf:"bytes,1,opt,name=mapping,proto3" json:"mapping,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidateMappingResponse) Reset() {
	*x = ValidateMappingResponse{}
	mi := &file_steelparse_v1_steelparse_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateMappingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateMappingResponse) ProtoMessage() {}

func (x *ValidateMappingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_steelparse_v1_steelparse_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateMappingResponse.ProtoReflect.Descriptor instead.
func (*ValidateMappingResponse) Descriptor() ([]byte, []int) {
	return file_steelparse_v1_steelparse_proto_rawDescGZIP(), []int{8}
}

func (x *ValidateMappingResponse) GetMapping() *Mapping {
	if x != nil {
		return x.Mapping
	}
	return nil
}

type RefreshExistenceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MappingKey    string                 `protobuf:"bytes,1,opt,name=mapping_key,json=mappingKey,proto3" json:"mapping_key,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RefreshExistenceRequest) Reset() {
	*x = RefreshExistenceRequest{}
	mi := &file_steelparse_v1_steelparse_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RefreshExistenceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RefreshExistenceRequest) ProtoMessage() {}

func (x *RefreshExistenceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_steelparse_v1_steelparse_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RefreshExistenceRequest.ProtoReflect.Descriptor instead.
func (*RefreshExistenceRequest) Descriptor() ([]byte, []int) {
	return file_steelparse_v1_steelparse_proto_rawDescGZIP(), []int{9}
}

func (x *RefreshExistenceRequest) GetMappingKey() string {
	if x != nil {
		return x.MappingKey
	}
	return ""
}

type RefreshExistenceResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ItemCodeExists bool                   `protobuf:"varint,1,opt,name=item_code_exists,json=itemCodeExists,proto3" json:"item_code_exists,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *RefreshExistenceResponse) Reset() {
	*x = RefreshExistenceResponse{}
	mi := &file_steelparse_v1_steelparse_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RefreshExistenceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RefreshExistenceResponse) ProtoMessage() {}

func (x *RefreshExistenceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_steelparse_v1_steelparse_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RefreshExistenceResponse.ProtoReflect.Descriptor instead.
func (*RefreshExistenceResponse) Descriptor() ([]byte, []int) {
	return file_steelparse_v1_steelparse_proto_rawDescGZIP(), []int{10}
}

func (x *RefreshExistenceResponse) GetItemCodeExists() bool {
	if x != nil {
		return x.ItemCodeExists
	}
	return false
}

var File_steelparse_v1_steelparse_proto protoreflect.FileDescriptor

const file_steelparse_v1_steelparse_proto_rawDesc = "" +
	"\n" +
	"\x1esteelparse/v1/steelparse.proto\x12\rsteelparse.v1\"\xf1\x01\n" +
	"\tInputItem\x12 \n" +
	"\vdescription\x18\x01 \x01(\tR\vdescription\x12!\n" +
	"\fproduct_name\x18\x02 \x01(\tR\vproductName\x12#\n" +
	"\rsupplier_name\x18\x03 \x01(\tR\fsupplierName\x12\x17\n" +
	"\aitem_no\x18\x04 \x01(\tR\x06itemNo\x12\x1d\n" +
	"\n" +
	"variant_id\x18\x05 \x01(\tR\tvariantId\x12\x19\n" +
	"\x05price\x18\x06 \x01(\x01H\x00R\x05price\x88\x01\x01\x12\x1d\n" +
	"\n" +
	"price_unit\x18\a \x01(\tR\tpriceUnitB\b\n" +
	"\x06_price\"\xc4\x06\n" +
	"\aMapping\x12\x1f\n" +
	"\vmapping_key\x18\x01 \x01(\tR\n" +
	"mappingKey\x12 \n" +
	"\titem_code\x18\x02 \x01(\tH\x00R\bitemCode\x88\x01\x01\x12%\n" +
	"\vdescription\x18\x03 \x01(\tH\x01R\vdescription\x88\x01\x01\x12\"\n" +
	"\n" +
	"metal_type\x18\x04 \x01(\tH\x02R\tmetalType\x88\x01\x01\x12\x19\n" +
	"\x05alloy\x18\x05 \x01(\tH\x03R\x05alloy\x88\x01\x01\x12!\n" +
	"\tspecifics\x18\x06 \x01(\tH\x04R\tspecifics\x88\x01\x01\x12#\n" +
	"\n" +
	"dimensions\x18\a \x01(\tH\x05R\n" +
	"dimensions\x88\x01\x01\x12 \n" +
	"\tunit_cost\x18\b \x01(\x01H\x06R\bunitCost\x88\x01\x01\x12\"\n" +
	"\n" +
	"price_unit\x18\t \x01(\tH\aR\tpriceUnit\x88\x01\x01\x12%\n" +
	"\x0eparser_version\x18\n" +
	" \x01(\tR\rparserVersion\x12#\n" +
	"\n" +
	"confidence\x18\v \x01(\x02H\bR\n" +
	"confidence\x88\x01\x01\x12\x1c\n" +
	"\tvalidated\x18\f \x01(\bR\tvalidated\x12&\n" +
	"\fvalidated_by\x18\r \x01(\tH\tR\vvalidatedBy\x88\x01\x01\x12&\n" +
	"\fvalidated_at\x18\x0e \x01(\tH\n" +
	"R\vvalidatedAt\x88\x01\x01\x12.\n" +
	"\x10validation_notes\x18\x0f \x01(\tH\vR\x0fvalidationNotes\x88\x01\x01\x12-\n" +
	"\x10item_code_exists\x18\x10 \x01(\bH\fR\x0eitemCodeExists\x88\x01\x01\x12\x1d\n" +
	"\n" +
	"created_at\x18\x11 \x01(\tR\tcreatedAtB\f\n" +
	"\n" +
	"_item_codeB\x0e\n" +
	"\f_descriptionB\r\n" +
	"\v_metal_typeB\b\n" +
	"\x06_alloyB\f\n" +
	"\n" +
	"_specificsB\r\n" +
	"\v_dimensionsB\f\n" +
	"\n" +
	"_unit_costB\r\n" +
	"\v_price_unitB\r\n" +
	"\v_confidenceB\x0f\n" +
	"\r_validated_byB\x0f\n" +
	"\r_validated_atB\x13\n" +
	"\x11_validation_notesB\x13\n" +
	"\x11_item_code_exists\"C\n" +
	"\x11ParseItemsRequest\x12.\n" +
	"\x05items\x18\x01 \x03(\v2\x18.steelparse.v1.InputItemR\x05items\"\x90\x01\n" +
	"\vParseResult\x125\n" +
	"\amapping\x18\x01 \x01(\v2\x16.steelparse.v1.MappingH\x00R\amapping\x88\x01\x01\x12\x1d\n" +
	"\n" +
	"was_cached\x18\x02 \x01(\bR\twasCached\x12\x1f\n" +
	"\vmapping_key\x18\x03 \x01(\tR\n" +
	"mappingKeyB\n" +
	"\n" +
	"\b_mapping\"J\n" +
	"\x12ParseItemsResponse\x124\n" +
	"\aresults\x18\x01 \x03(\v2\x1a.steelparse.v1.ParseResultR\aresults\".\n" +
	"\x16ListUnvalidatedRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\"M\n" +
	"\x17ListUnvalidatedResponse\x122\n" +
	"\bmappings\x18\x01 \x03(\v2\x16.steelparse.v1.MappingR\bmappings\"\xf9\x03\n" +
	"\x16ValidateMappingRequest\x12\x1f\n" +
	"\vmapping_key\x18\x01 \x01(\tR\n" +
	"mappingKey\x12!\n" +
	"\fvalidated_by\x18\x02 \x01(\tR\vvalidatedBy\x12\x14\n" +
	"\x05notes\x18\x03 \x01(\tR\x05notes\x12 \n" +
	"\titem_code\x18\x04 \x01(\tH\x00R\bitemCode\x88\x01\x01\x12%\n" +
	"\vdescription\x18\x05 \x01(\tH\x01R\vdescription\x88\x01\x01\x12\"\n" +
	"\n" +
	"metal_type\x18\x06 \x01(\tH\x02R\tmetalType\x88\x01\x01\x12\x19\n" +
	"\x05alloy\x18\a \x01(\tH\x03R\x05alloy\x88\x01\x01\x12!\n" +
	"\tspecifics\x18\b \x01(\tH\x04R\tspecifics\x88\x01\x01\x12#\n" +
	"\n" +
	"dimensions\x18\t \x01(\tH\x05R\n" +
	"dimensions\x88\x01\x01\x12 \n" +
	"\tunit_cost\x18\n" +
	" \x01(\x01H\x06R\bunitCost\x88\x01\x01\x12\"\n" +
	"\n" +
	"price_unit\x18\v \x01(\tH\aR\tpriceUnit\x88\x01\x01B\f\n" +
	"\n" +
	"_item_codeB\x0e\n" +
	"\f_descriptionB\r\n" +
	"\v_metal_typeB\b\n" +
	"\x06_alloyB\f\n" +
	"\n" +
	"_specificsB\r\n" +
	"\v_dimensionsB\f\n" +
	"\n" +
	"_unit_costB\r\n" +
	"\v_price_unit\"K\n" +
	"\x17ValidateMappingResponse\x120\n" +
	"\amapping\x18\x01 \x01(\v2\x16.steelparse.v1.MappingR\amapping\":\n" +
	"\x17RefreshExistenceRequest\x12\x1f\n" +
	"\vmapping_key\x18\x01 \x01(\tR\n" +
	"mappingKey\"D\n" +
	"\x18RefreshExistenceResponse\x12(\n" +
	"\x10item_code_exists\x18\x01 \x01(\bR\x0eitemCodeExists2\x95\x03\n" +
	"\x17InventoryMappingService\x12Q\n" +
	"\n" +
	"ParseItems\x12 .steelparse.v1.ParseItemsRequest\x1a!.steelparse.v1.ParseItemsResponse\x12`\n" +
	"\x0fListUnvalidated\x12%.steelparse.v1.ListUnvalidatedRequest\x1a&.steelparse.v1.ListUnvalidatedResponse\x12`\n" +
	"\x0fValidateMapping\x12%.steelparse.v1.ValidateMappingRequest\x1a&.steelparse.v1.ValidateMappingResponse\x12c\n" +
	"\x10RefreshExistence\x12&.steelparse.v1.RefreshExistenceRequest\x1a'.steelparse.v1.RefreshExistenceResponseBEZCgithub.com/fabtrack/steelparse/gen/proto/steelparse/v1;steelparsepbb\x06proto3"

var (
	file_steelparse_v1_steelparse_proto_rawDescOnce sync.Once
	file_steelparse_v1_steelparse_proto_rawDescData []byte
)

func file_steelparse_v1_steelparse_proto_rawDescGZIP() []byte {
	file_steelparse_v1_steelparse_proto_rawDescOnce.Do(func() {
		file_steelparse_v1_steelparse_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_steelparse_v1_steelparse_proto_rawDesc), len(file_steelparse_v1_steelparse_proto_rawDesc)))
	})
	return file_steelparse_v1_steelparse_proto_rawDescData
}

var file_steelparse_v1_steelparse_proto_msgTypes = make([]protoimpl.MessageInfo, 11)
var file_steelparse_v1_steelparse_proto_goTypes = []any{
	(*InputItem)(nil),                // 0: steelparse.v1.InputItem
	(*Mapping)(nil),                  // 1: steelparse.v1.Mapping
	(*ParseItemsRequest)(nil),        // 2: steelparse.v1.ParseItemsRequest
	(*ParseResult)(nil),              // 3: steelparse.v1.ParseResult
	(*ParseItemsResponse)(nil),       // 4: steelparse.v1.ParseItemsResponse
	(*ListUnvalidatedRequest)(nil),   // 5: steelparse.v1.ListUnvalidatedRequest
	(*ListUnvalidatedResponse)(nil),  // 6: steelparse.v1.ListUnvalidatedResponse
	(*ValidateMappingRequest)(nil),   // 7: steelparse.v1.ValidateMappingRequest
	(*ValidateMappingResponse)(nil),  // 8: steelparse.v1.ValidateMappingResponse
	(*RefreshExistenceRequest)(nil),  // 9: steelparse.v1.RefreshExistenceRequest
	(*RefreshExistenceResponse)(nil), // 10: steelparse.v1.RefreshExistenceResponse
}
var file_steelparse_v1_steelparse_proto_depIdxs = []int32{
	0,  // 0: steelparse.v1.ParseItemsRequest.items:type_name -> steelparse.v1.InputItem
	1,  // 1: steelparse.v1.ParseResult.mapping:type_name -> steelparse.v1.Mapping
	3,  // 2: steelparse.v1.ParseItemsResponse.results:type_name -> steelparse.v1.ParseResult
	1,  // 3: steelparse.v1.ListUnvalidatedResponse.mappings:type_name -> steelparse.v1.Mapping
	1,  // 4: steelparse.v1.ValidateMappingResponse.mapping:type_name -> steelparse.v1.Mapping
	2,  // 5: steelparse.v1.InventoryMappingService.ParseItems:input_type -> steelparse.v1.ParseItemsRequest
	5,  // 6: steelparse.v1.InventoryMappingService.ListUnvalidated:input_type -> steelparse.v1.ListUnvalidatedRequest
	7,  // 7: steelparse.v1.InventoryMappingService.ValidateMapping:input_type -> steelparse.v1.ValidateMappingRequest
	9,  // 8: steelparse.v1.InventoryMappingService.RefreshExistence:input_type -> steelparse.v1.RefreshExistenceRequest
	4,  // 9: steelparse.v1.InventoryMappingService.ParseItems:output_type -> steelparse.v1.ParseItemsResponse
	6,  // 10: steelparse.v1.InventoryMappingService.ListUnvalidated:output_type -> steelparse.v1.ListUnvalidatedResponse
	8,  // 11: steelparse.v1.InventoryMappingService.ValidateMapping:output_type -> steelparse.v1.ValidateMappingResponse
	10, // 12: steelparse.v1.InventoryMappingService.RefreshExistence:output_type -> steelparse.v1.RefreshExistenceResponse
	9,  // [9:13] is the sub-list for method output_type
	5,  // [5:9] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_steelparse_v1_steelparse_proto_init() }
func file_steelparse_v1_steelparse_proto_init() {
	if File_steelparse_v1_steelparse_proto != nil {
		return
	}
	file_steelparse_v1_steelparse_proto_msgTypes[0].OneofWrappers = []any{}
	file_steelparse_v1_steelparse_proto_msgTypes[1].OneofWrappers = []any{}
	file_steelparse_v1_steelparse_proto_msgTypes[3].OneofWrappers = []any{}
	file_steelparse_v1_steelparse_proto_msgTypes[7].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_steelparse_v1_steelparse_proto_rawDesc), len(file_steelparse_v1_steelparse_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   11,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_steelparse_v1_steelparse_proto_goTypes,
		DependencyIndexes: file_steelparse_v1_steelparse_proto_depIdxs,
		MessageInfos:      file_steelparse_v1_steelparse_proto_msgTypes,
	}.Build()
	File_steelparse_v1_steelparse_proto = out.File
	file_steelparse_v1_steelparse_proto_goTypes = nil
	file_steelparse_v1_steelparse_proto_depIdxs = nil
}
