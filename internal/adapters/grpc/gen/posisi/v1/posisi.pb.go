// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: posisi/v1/posisi.proto

package posisiv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	wrapperspb "google.golang.org/protobuf/types/known/wrapperspb"
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

type PosisiTersedia struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Id            string                  `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	NamaPosisi    string                  `protobuf:"bytes,2,opt,name=nama_posisi,json=namaPosisi,proto3" json:"nama_posisi,omitempty"`
	UnitKerja     string                  `protobuf:"bytes,3,opt,name=unit_kerja,json=unitKerja,proto3" json:"unit_kerja,omitempty"`
	Deskripsi     *wrapperspb.StringValue `protobuf:"bytes,4,opt,name=deskripsi,proto3" json:"deskripsi,omitempty"`
	Persyaratan   *wrapperspb.StringValue `protobuf:"bytes,5,opt,name=persyaratan,proto3" json:"persyaratan,omitempty"`
	Kuota         int32                   `protobuf:"varint,6,opt,name=kuota,proto3" json:"kuota,omitempty"`
	IsAvailable   bool                    `protobuf:"varint,7,opt,name=is_available,json=isAvailable,proto3" json:"is_available,omitempty"`
	CreatedAt     *timestamppb.Timestamp  `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp  `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PosisiTersedia) Reset() {
	*x = PosisiTersedia{}
	mi := &file_posisi_v1_posisi_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PosisiTersedia) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PosisiTersedia) ProtoMessage() {}

func (x *PosisiTersedia) ProtoReflect() protoreflect.Message {
	mi := &file_posisi_v1_posisi_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PosisiTersedia.ProtoReflect.Descriptor instead.
func (*PosisiTersedia) Descriptor() ([]byte, []int) {
	return file_posisi_v1_posisi_proto_rawDescGZIP(), []int{0}
}

func (x *PosisiTersedia) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *PosisiTersedia) GetNamaPosisi() string {
	if x != nil {
		return x.NamaPosisi
	}
	return ""
}

func (x *PosisiTersedia) GetUnitKerja() string {
	if x != nil {
		return x.UnitKerja
	}
	return ""
}

func (x *PosisiTersedia) GetDeskripsi() *wrapperspb.StringValue {
	if x != nil {
		return x.Deskripsi
	}
	return nil
}

func (x *PosisiTersedia) GetPersyaratan() *wrapperspb.StringValue {
	if x != nil {
		return x.Persyaratan
	}
	return nil
}

func (x *PosisiTersedia) GetKuota() int32 {
	if x != nil {
		return x.Kuota
	}
	return 0
}

func (x *PosisiTersedia) GetIsAvailable() bool {
	if x != nil {
		return x.IsAvailable
	}
	return false
}

func (x *PosisiTersedia) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *PosisiTersedia) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type CreatePosisiRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	NamaPosisi    string                  `protobuf:"bytes,1,opt,name=nama_posisi,json=namaPosisi,proto3" json:"nama_posisi,omitempty"`
	UnitKerja     string                  `protobuf:"bytes,2,opt,name=unit_kerja,json=unitKerja,proto3" json:"unit_kerja,omitempty"`
	Deskripsi     *wrapperspb.StringValue `protobuf:"bytes,3,opt,name=deskripsi,proto3" json:"deskripsi,omitempty"`
	Persyaratan   *wrapperspb.StringValue `protobuf:"bytes,4,opt,name=persyaratan,proto3" json:"persyaratan,omitempty"`
	Kuota         int32                   `protobuf:"varint,5,opt,name=kuota,proto3" json:"kuota,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreatePosisiRequest) Reset() {
	*x = CreatePosisiRequest{}
	mi := &file_posisi_v1_posisi_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePosisiRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePosisiRequest) ProtoMessage() {}

func (x *CreatePosisiRequest) ProtoReflect() protoreflect.Message {
	mi := &file_posisi_v1_posisi_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePosisiRequest.ProtoReflect.Descriptor instead.
func (*CreatePosisiRequest) Descriptor() ([]byte, []int) {
	return file_posisi_v1_posisi_proto_rawDescGZIP(), []int{1}
}

func (x *CreatePosisiRequest) GetNamaPosisi() string {
	if x != nil {
		return x.NamaPosisi
	}
	return ""
}

func (x *CreatePosisiRequest) GetUnitKerja() string {
	if x != nil {
		return x.UnitKerja
	}
	return ""
}

func (x *CreatePosisiRequest) GetDeskripsi() *wrapperspb.StringValue {
	if x != nil {
		return x.Deskripsi
	}
	return nil
}

func (x *CreatePosisiRequest) GetPersyaratan() *wrapperspb.StringValue {
	if x != nil {
		return x.Persyaratan
	}
	return nil
}

func (x *CreatePosisiRequest) GetKuota() int32 {
	if x != nil {
		return x.Kuota
	}
	return 0
}

type CreatePosisiResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Posisi        *PosisiTersedia        `protobuf:"bytes,1,opt,name=posisi,proto3" json:"posisi,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreatePosisiResponse) Reset() {
	*x = CreatePosisiResponse{}
	mi := &file_posisi_v1_posisi_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePosisiResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePosisiResponse) ProtoMessage() {}

func (x *CreatePosisiResponse) ProtoReflect() protoreflect.Message {
	mi := &file_posisi_v1_posisi_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePosisiResponse.ProtoReflect.Descriptor instead.
func (*CreatePosisiResponse) Descriptor() ([]byte, []int) {
	return file_posisi_v1_posisi_proto_rawDescGZIP(), []int{2}
}

func (x *CreatePosisiResponse) GetPosisi() *PosisiTersedia {
	if x != nil {
		return x.Posisi
	}
	return nil
}

type GetPosisiRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPosisiRequest) Reset() {
	*x = GetPosisiRequest{}
	mi := &file_posisi_v1_posisi_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPosisiRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPosisiRequest) ProtoMessage() {}

func (x *GetPosisiRequest) ProtoReflect() protoreflect.Message {
	mi := &file_posisi_v1_posisi_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPosisiRequest.ProtoReflect.Descriptor instead.
func (*GetPosisiRequest) Descriptor() ([]byte, []int) {
	return file_posisi_v1_posisi_proto_rawDescGZIP(), []int{3}
}

func (x *GetPosisiRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetPosisiResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Posisi        *PosisiTersedia        `protobuf:"bytes,1,opt,name=posisi,proto3" json:"posisi,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPosisiResponse) Reset() {
	*x = GetPosisiResponse{}
	mi := &file_posisi_v1_posisi_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPosisiResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPosisiResponse) ProtoMessage() {}

func (x *GetPosisiResponse) ProtoReflect() protoreflect.Message {
	mi := &file_posisi_v1_posisi_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPosisiResponse.ProtoReflect.Descriptor instead.
func (*GetPosisiResponse) Descriptor() ([]byte, []int) {
	return file_posisi_v1_posisi_proto_rawDescGZIP(), []int{4}
}

func (x *GetPosisiResponse) GetPosisi() *PosisiTersedia {
	if x != nil {
		return x.Posisi
	}
	return nil
}

type ListPosisiRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UnitKerja     string                 `protobuf:"bytes,1,opt,name=unit_kerja,json=unitKerja,proto3" json:"unit_kerja,omitempty"`
	AvailableOnly bool                   `protobuf:"varint,2,opt,name=available_only,json=availableOnly,proto3" json:"available_only,omitempty"`
	PageSize      int32                  `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken     string                 `protobuf:"bytes,4,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPosisiRequest) Reset() {
	*x = ListPosisiRequest{}
	mi := &file_posisi_v1_posisi_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPosisiRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPosisiRequest) ProtoMessage() {}

func (x *ListPosisiRequest) ProtoReflect() protoreflect.Message {
	mi := &file_posisi_v1_posisi_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPosisiRequest.ProtoReflect.Descriptor instead.
func (*ListPosisiRequest) Descriptor() ([]byte, []int) {
	return file_posisi_v1_posisi_proto_rawDescGZIP(), []int{5}
}

func (x *ListPosisiRequest) GetUnitKerja() string {
	if x != nil {
		return x.UnitKerja
	}
	return ""
}

func (x *ListPosisiRequest) GetAvailableOnly() bool {
	if x != nil {
		return x.AvailableOnly
	}
	return false
}

func (x *ListPosisiRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListPosisiRequest) GetPageToken() string {
	if x != nil {
		return x.PageToken
	}
	return ""
}

type ListPosisiResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Posisi        []*PosisiTersedia      `protobuf:"bytes,1,rep,name=posisi,proto3" json:"posisi,omitempty"`
	NextPageToken string                 `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPosisiResponse) Reset() {
	*x = ListPosisiResponse{}
	mi := &file_posisi_v1_posisi_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPosisiResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPosisiResponse) ProtoMessage() {}

func (x *ListPosisiResponse) ProtoReflect() protoreflect.Message {
	mi := &file_posisi_v1_posisi_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPosisiResponse.ProtoReflect.Descriptor instead.
func (*ListPosisiResponse) Descriptor() ([]byte, []int) {
	return file_posisi_v1_posisi_proto_rawDescGZIP(), []int{6}
}

func (x *ListPosisiResponse) GetPosisi() []*PosisiTersedia {
	if x != nil {
		return x.Posisi
	}
	return nil
}

func (x *ListPosisiResponse) GetNextPageToken() string {
	if x != nil {
		return x.NextPageToken
	}
	return ""
}

type UpdatePosisiRequest struct {
	state      protoimpl.MessageState  `protogen:"open.v1"`
	Id         string                  `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	NamaPosisi *wrapperspb.StringValue `protobuf:"bytes,2,opt,name=nama_posisi,json=namaPosisi,proto3" json:"nama_posisi,omitempty"`
	UnitKerja  *wrapperspb.StringValue `protobuf:"bytes,3,opt,name=unit_kerja,json=unitKerja,proto3" json:"unit_kerja,omitempty"`
	// An empty wrapped value clears the field.
	Deskripsi     *wrapperspb.StringValue `protobuf:"bytes,4,opt,name=deskripsi,proto3" json:"deskripsi,omitempty"`
	Persyaratan   *wrapperspb.StringValue `protobuf:"bytes,5,opt,name=persyaratan,proto3" json:"persyaratan,omitempty"`
	Kuota         *wrapperspb.Int32Value  `protobuf:"bytes,6,opt,name=kuota,proto3" json:"kuota,omitempty"`
	IsAvailable   *wrapperspb.BoolValue   `protobuf:"bytes,7,opt,name=is_available,json=isAvailable,proto3" json:"is_available,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdatePosisiRequest) Reset() {
	*x = UpdatePosisiRequest{}
	mi := &file_posisi_v1_posisi_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdatePosisiRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdatePosisiRequest) ProtoMessage() {}

func (x *UpdatePosisiRequest) ProtoReflect() protoreflect.Message {
	mi := &file_posisi_v1_posisi_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdatePosisiRequest.ProtoReflect.Descriptor instead.
func (*UpdatePosisiRequest) Descriptor() ([]byte, []int) {
	return file_posisi_v1_posisi_proto_rawDescGZIP(), []int{7}
}

func (x *UpdatePosisiRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdatePosisiRequest) GetNamaPosisi() *wrapperspb.StringValue {
	if x != nil {
		return x.NamaPosisi
	}
	return nil
}

func (x *UpdatePosisiRequest) GetUnitKerja() *wrapperspb.StringValue {
	if x != nil {
		return x.UnitKerja
	}
	return nil
}

func (x *UpdatePosisiRequest) GetDeskripsi() *wrapperspb.StringValue {
	if x != nil {
		return x.Deskripsi
	}
	return nil
}

func (x *UpdatePosisiRequest) GetPersyaratan() *wrapperspb.StringValue {
	if x != nil {
		return x.Persyaratan
	}
	return nil
}

func (x *UpdatePosisiRequest) GetKuota() *wrapperspb.Int32Value {
	if x != nil {
		return x.Kuota
	}
	return nil
}

func (x *UpdatePosisiRequest) GetIsAvailable() *wrapperspb.BoolValue {
	if x != nil {
		return x.IsAvailable
	}
	return nil
}

type UpdatePosisiResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Posisi        *PosisiTersedia        `protobuf:"bytes,1,opt,name=posisi,proto3" json:"posisi,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdatePosisiResponse) Reset() {
	*x = UpdatePosisiResponse{}
	mi := &file_posisi_v1_posisi_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdatePosisiResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdatePosisiResponse) ProtoMessage() {}

func (x *UpdatePosisiResponse) ProtoReflect() protoreflect.Message {
	mi := &file_posisi_v1_posisi_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdatePosisiResponse.ProtoReflect.Descriptor instead.
func (*UpdatePosisiResponse) Descriptor() ([]byte, []int) {
	return file_posisi_v1_posisi_proto_rawDescGZIP(), []int{8}
}

func (x *UpdatePosisiResponse) GetPosisi() *PosisiTersedia {
	if x != nil {
		return x.Posisi
	}
	return nil
}

type DeactivatePosisiRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeactivatePosisiRequest) Reset() {
	*x = DeactivatePosisiRequest{}
	mi := &file_posisi_v1_posisi_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeactivatePosisiRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeactivatePosisiRequest) ProtoMessage() {}

func (x *DeactivatePosisiRequest) ProtoReflect() protoreflect.Message {
	mi := &file_posisi_v1_posisi_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeactivatePosisiRequest.ProtoReflect.Descriptor instead.
func (*DeactivatePosisiRequest) Descriptor() ([]byte, []int) {
	return file_posisi_v1_posisi_proto_rawDescGZIP(), []int{9}
}

func (x *DeactivatePosisiRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeactivatePosisiResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Posisi        *PosisiTersedia        `protobuf:"bytes,1,opt,name=posisi,proto3" json:"posisi,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeactivatePosisiResponse) Reset() {
	*x = DeactivatePosisiResponse{}
	mi := &file_posisi_v1_posisi_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeactivatePosisiResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeactivatePosisiResponse) ProtoMessage() {}

func (x *DeactivatePosisiResponse) ProtoReflect() protoreflect.Message {
	mi := &file_posisi_v1_posisi_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeactivatePosisiResponse.ProtoReflect.Descriptor instead.
func (*DeactivatePosisiResponse) Descriptor() ([]byte, []int) {
	return file_posisi_v1_posisi_proto_rawDescGZIP(), []int{10}
}

func (x *DeactivatePosisiResponse) GetPosisi() *PosisiTersedia {
	if x != nil {
		return x.Posisi
	}
	return nil
}

var File_posisi_v1_posisi_proto protoreflect.FileDescriptor

const file_posisi_v1_posisi_proto_rawDesc = "" +
	"\n" +
	"\x16posisi/v1/posisi.proto\x12\tposisi.v1\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x1egoogle/protobuf/wrappers.proto\"\x8b\x03\n" +
	"\x0ePosisiTersedia\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vnama_posisi\x18\x02 \x01(\tR\n" +
	"namaPosisi\x12\x1d\n" +
	"\n" +
	"unit_kerja\x18\x03 \x01(\tR\tunitKerja\x12:\n" +
	"\tdeskripsi\x18\x04 \x01(\v2\x1c.google.protobuf.StringValueR\tdeskripsi\x12>\n" +
	"\vpersyaratan\x18\x05 \x01(\v2\x1c.google.protobuf.StringValueR\vpersyaratan\x12\x14\n" +
	"\x05kuota\x18\x06 \x01(\x05R\x05kuota\x12!\n" +
	"\fis_available\x18\a \x01(\bR\visAvailable\x129\n" +
	"\n" +
	"created_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\xe7\x01\n" +
	"\x13CreatePosisiRequest\x12\x1f\n" +
	"\vnama_posisi\x18\x01 \x01(\tR\n" +
	"namaPosisi\x12\x1d\n" +
	"\n" +
	"unit_kerja\x18\x02 \x01(\tR\tunitKerja\x12:\n" +
	"\tdeskripsi\x18\x03 \x01(\v2\x1c.google.protobuf.StringValueR\tdeskripsi\x12>\n" +
	"\vpersyaratan\x18\x04 \x01(\v2\x1c.google.protobuf.StringValueR\vpersyaratan\x12\x14\n" +
	"\x05kuota\x18\x05 \x01(\x05R\x05kuota\"I\n" +
	"\x14CreatePosisiResponse\x121\n" +
	"\x06posisi\x18\x01 \x01(\v2\x19.posisi.v1.PosisiTersediaR\x06posisi\"\"\n" +
	"\x10GetPosisiRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"F\n" +
	"\x11GetPosisiResponse\x121\n" +
	"\x06posisi\x18\x01 \x01(\v2\x19.posisi.v1.PosisiTersediaR\x06posisi\"\x95\x01\n" +
	"\x11ListPosisiRequest\x12\x1d\n" +
	"\n" +
	"unit_kerja\x18\x01 \x01(\tR\tunitKerja\x12%\n" +
	"\x0eavailable_only\x18\x02 \x01(\bR\ravailableOnly\x12\x1b\n" +
	"\tpage_size\x18\x03 \x01(\x05R\bpageSize\x12\x1d\n" +
	"\n" +
	"page_token\x18\x04 \x01(\tR\tpageToken\"o\n" +
	"\x12ListPosisiResponse\x121\n" +
	"\x06posisi\x18\x01 \x03(\v2\x19.posisi.v1.PosisiTersediaR\x06posisi\x12&\n" +
	"\x0fnext_page_token\x18\x02 \x01(\tR\rnextPageToken\"\x8f\x03\n" +
	"\x13UpdatePosisiRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12=\n" +
	"\vnama_posisi\x18\x02 \x01(\v2\x1c.google.protobuf.StringValueR\n" +
	"namaPosisi\x12;\n" +
	"\n" +
	"unit_kerja\x18\x03 \x01(\v2\x1c.google.protobuf.StringValueR\tunitKerja\x12:\n" +
	"\tdeskripsi\x18\x04 \x01(\v2\x1c.google.protobuf.StringValueR\tdeskripsi\x12>\n" +
	"\vpersyaratan\x18\x05 \x01(\v2\x1c.google.protobuf.StringValueR\vpersyaratan\x121\n" +
	"\x05kuota\x18\x06 \x01(\v2\x1b.google.protobuf.Int32ValueR\x05kuota\x12=\n" +
	"\fis_available\x18\a \x01(\v2\x1a.google.protobuf.BoolValueR\visAvailable\"I\n" +
	"\x14UpdatePosisiResponse\x121\n" +
	"\x06posisi\x18\x01 \x01(\v2\x19.posisi.v1.PosisiTersediaR\x06posisi\")\n" +
	"\x17DeactivatePosisiRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"M\n" +
	"\x18DeactivatePosisiResponse\x121\n" +
	"\x06posisi\x18\x01 \x01(\v2\x19.posisi.v1.PosisiTersediaR\x06posisi2\xa9\x03\n" +
	"\x15PosisiTersediaService\x12O\n" +
	"\fCreatePosisi\x12\x1e.posisi.v1.CreatePosisiRequest\x1a\x1f.posisi.v1.CreatePosisiResponse\x12F\n" +
	"\tGetPosisi\x12\x1b.posisi.v1.GetPosisiRequest\x1a\x1c.posisi.v1.GetPosisiResponse\x12I\n" +
	"\n" +
	"ListPosisi\x12\x1c.posisi.v1.ListPosisiRequest\x1a\x1d.posisi.v1.ListPosisiResponse\x12O\n" +
	"\fUpdatePosisi\x12\x1e.posisi.v1.UpdatePosisiRequest\x1a\x1f.posisi.v1.UpdatePosisiResponse\x12[\n" +
	"\x10DeactivatePosisi\x12\".posisi.v1.DeactivatePosisiRequest\x1a#.posisi.v1.DeactivatePosisiResponseBMZKgithub.com/bkpsdm/simpeg-grpc/internal/adapters/grpc/gen/posisi/v1;posisiv1b\x06proto3"

var (
	file_posisi_v1_posisi_proto_rawDescOnce sync.Once
	file_posisi_v1_posisi_proto_rawDescData []byte
)

func file_posisi_v1_posisi_proto_rawDescGZIP() []byte {
	file_posisi_v1_posisi_proto_rawDescOnce.Do(func() {
		file_posisi_v1_posisi_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_posisi_v1_posisi_proto_rawDesc), len(file_posisi_v1_posisi_proto_rawDesc)))
	})
	return file_posisi_v1_posisi_proto_rawDescData
}

var file_posisi_v1_posisi_proto_msgTypes = make([]protoimpl.MessageInfo, 11)
var file_posisi_v1_posisi_proto_goTypes = []any{
	(*PosisiTersedia)(nil),           // 0: posisi.v1.PosisiTersedia
	(*CreatePosisiRequest)(nil),      // 1: posisi.v1.CreatePosisiRequest
	(*CreatePosisiResponse)(nil),     // 2: posisi.v1.CreatePosisiResponse
	(*GetPosisiRequest)(nil),         // 3: posisi.v1.GetPosisiRequest
	(*GetPosisiResponse)(nil),        // 4: posisi.v1.GetPosisiResponse
	(*ListPosisiRequest)(nil),        // 5: posisi.v1.ListPosisiRequest
	(*ListPosisiResponse)(nil),       // 6: posisi.v1.ListPosisiResponse
	(*UpdatePosisiRequest)(nil),      // 7: posisi.v1.UpdatePosisiRequest
	(*UpdatePosisiResponse)(nil),     // 8: posisi.v1.UpdatePosisiResponse
	(*DeactivatePosisiRequest)(nil),  // 9: posisi.v1.DeactivatePosisiRequest
	(*DeactivatePosisiResponse)(nil), // 10: posisi.v1.DeactivatePosisiResponse
	(*wrapperspb.StringValue)(nil),   // 11: google.protobuf.StringValue
	(*timestamppb.Timestamp)(nil),    // 12: google.protobuf.Timestamp
	(*wrapperspb.Int32Value)(nil),    // 13: google.protobuf.Int32Value
	(*wrapperspb.BoolValue)(nil),     // 14: google.protobuf.BoolValue
}
var file_posisi_v1_posisi_proto_depIdxs = []int32{
	11, // 0: posisi.v1.PosisiTersedia.deskripsi:type_name -> google.protobuf.StringValue
	11, // 1: posisi.v1.PosisiTersedia.persyaratan:type_name -> google.protobuf.StringValue
	12, // 2: posisi.v1.PosisiTersedia.created_at:type_name -> google.protobuf.Timestamp
	12, // 3: posisi.v1.PosisiTersedia.updated_at:type_name -> google.protobuf.Timestamp
	11, // 4: posisi.v1.CreatePosisiRequest.deskripsi:type_name -> google.protobuf.StringValue
	11, // 5: posisi.v1.CreatePosisiRequest.persyaratan:type_name -> google.protobuf.StringValue
	0,  // 6: posisi.v1.CreatePosisiResponse.posisi:type_name -> posisi.v1.PosisiTersedia
	0,  // 7: posisi.v1.GetPosisiResponse.posisi:type_name -> posisi.v1.PosisiTersedia
	0,  // 8: posisi.v1.ListPosisiResponse.posisi:type_name -> posisi.v1.PosisiTersedia
	11, // 9: posisi.v1.UpdatePosisiRequest.nama_posisi:type_name -> google.protobuf.StringValue
	11, // 10: posisi.v1.UpdatePosisiRequest.unit_kerja:type_name -> google.protobuf.StringValue
	11, // 11: posisi.v1.UpdatePosisiRequest.deskripsi:type_name -> google.protobuf.StringValue
	11, // 12: posisi.v1.UpdatePosisiRequest.persyaratan:type_name -> google.protobuf.StringValue
	13, // 13: posisi.v1.UpdatePosisiRequest.kuota:type_name -> google.protobuf.Int32Value
	14, // 14: posisi.v1.UpdatePosisiRequest.is_available:type_name -> google.protobuf.BoolValue
	0,  // 15: posisi.v1.UpdatePosisiResponse.posisi:type_name -> posisi.v1.PosisiTersedia
	0,  // 16: posisi.v1.DeactivatePosisiResponse.posisi:type_name -> posisi.v1.PosisiTersedia
	1,  // 17: posisi.v1.PosisiTersediaService.CreatePosisi:input_type -> posisi.v1.CreatePosisiRequest
	3,  // 18: posisi.v1.PosisiTersediaService.GetPosisi:input_type -> posisi.v1.GetPosisiRequest
	5,  // 19: posisi.v1.PosisiTersediaService.ListPosisi:input_type -> posisi.v1.ListPosisiRequest
	7,  // 20: posisi.v1.PosisiTersediaService.UpdatePosisi:input_type -> posisi.v1.UpdatePosisiRequest
	9,  // 21: posisi.v1.PosisiTersediaService.DeactivatePosisi:input_type -> posisi.v1.DeactivatePosisiRequest
	2,  // 22: posisi.v1.PosisiTersediaService.CreatePosisi:output_type -> posisi.v1.CreatePosisiResponse
	4,  // 23: posisi.v1.PosisiTersediaService.GetPosisi:output_type -> posisi.v1.GetPosisiResponse
	6,  // 24: posisi.v1.PosisiTersediaService.ListPosisi:output_type -> posisi.v1.ListPosisiResponse
	8,  // 25: posisi.v1.PosisiTersediaService.UpdatePosisi:output_type -> posisi.v1.UpdatePosisiResponse
	10, // 26: posisi.v1.PosisiTersediaService.DeactivatePosisi:output_type -> posisi.v1.DeactivatePosisiResponse
	22, // [22:27] is the sub-list for method output_type
	17, // [17:22] is the sub-list for method input_type
	17, // [17:17] is the sub-list for extension type_name
	17, // [17:17] is the sub-list for extension extendee
	0,  // [0:17] is the sub-list for field type_name
}

func init() { file_posisi_v1_posisi_proto_init() }
func file_posisi_v1_posisi_proto_init() {
	if File_posisi_v1_posisi_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_posisi_v1_posisi_proto_rawDesc), len(file_posisi_v1_posisi_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   11,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_posisi_v1_posisi_proto_goTypes,
		DependencyIndexes: file_posisi_v1_posisi_proto_depIdxs,
		MessageInfos:      file_posisi_v1_posisi_proto_msgTypes,
	}.Build()
	File_posisi_v1_posisi_proto = out.File
	file_posisi_v1_posisi_proto_goTypes = nil
	file_posisi_v1_posisi_proto_depIdxs = nil
}
