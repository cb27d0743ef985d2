// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: riwayat/v1/riwayat.proto

package riwayatv1

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

type RiwayatJabatan struct {
	state           protoimpl.MessageState  `protogen:"open.v1"`
	Id              string                  `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PegawaiId       string                  `protobuf:"bytes,2,opt,name=pegawai_id,json=pegawaiId,proto3" json:"pegawai_id,omitempty"`
	Jabatan         string                  `protobuf:"bytes,3,opt,name=jabatan,proto3" json:"jabatan,omitempty"`
	JabatanTambahan *wrapperspb.StringValue `protobuf:"bytes,4,opt,name=jabatan_tambahan,json=jabatanTambahan,proto3" json:"jabatan_tambahan,omitempty"`
	UnitKerja       string                  `protobuf:"bytes,5,opt,name=unit_kerja,json=unitKerja,proto3" json:"unit_kerja,omitempty"`
	// YYYY-MM-DD.
	TmtJabatan    string                  `protobuf:"bytes,6,opt,name=tmt_jabatan,json=tmtJabatan,proto3" json:"tmt_jabatan,omitempty"`
	TmtBerakhir   *wrapperspb.StringValue `protobuf:"bytes,7,opt,name=tmt_berakhir,json=tmtBerakhir,proto3" json:"tmt_berakhir,omitempty"`
	Keterangan    *wrapperspb.StringValue `protobuf:"bytes,8,opt,name=keterangan,proto3" json:"keterangan,omitempty"`
	CreatedAt     *timestamppb.Timestamp  `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp  `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RiwayatJabatan) Reset() {
	*x = RiwayatJabatan{}
	mi := &file_riwayat_v1_riwayat_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RiwayatJabatan) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RiwayatJabatan) ProtoMessage() {}

func (x *RiwayatJabatan) ProtoReflect() protoreflect.Message {
	mi := &file_riwayat_v1_riwayat_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RiwayatJabatan.ProtoReflect.Descriptor instead.
func (*RiwayatJabatan) Descriptor() ([]byte, []int) {
	return file_riwayat_v1_riwayat_proto_rawDescGZIP(), []int{0}
}

func (x *RiwayatJabatan) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *RiwayatJabatan) GetPegawaiId() string {
	if x != nil {
		return x.PegawaiId
	}
	return ""
}

func (x *RiwayatJabatan) GetJabatan() string {
	if x != nil {
		return x.Jabatan
	}
	return ""
}

func (x *RiwayatJabatan) GetJabatanTambahan() *wrapperspb.StringValue {
	if x != nil {
		return x.JabatanTambahan
	}
	return nil
}

func (x *RiwayatJabatan) GetUnitKerja() string {
	if x != nil {
		return x.UnitKerja
	}
	return ""
}

func (x *RiwayatJabatan) GetTmtJabatan() string {
	if x != nil {
		return x.TmtJabatan
	}
	return ""
}

func (x *RiwayatJabatan) GetTmtBerakhir() *wrapperspb.StringValue {
	if x != nil {
		return x.TmtBerakhir
	}
	return nil
}

func (x *RiwayatJabatan) GetKeterangan() *wrapperspb.StringValue {
	if x != nil {
		return x.Keterangan
	}
	return nil
}

func (x *RiwayatJabatan) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *RiwayatJabatan) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type CreateRiwayatRequest struct {
	state           protoimpl.MessageState  `protogen:"open.v1"`
	PegawaiId       string                  `protobuf:"bytes,1,opt,name=pegawai_id,json=pegawaiId,proto3" json:"pegawai_id,omitempty"`
	Jabatan         string                  `protobuf:"bytes,2,opt,name=jabatan,proto3" json:"jabatan,omitempty"`
	JabatanTambahan *wrapperspb.StringValue `protobuf:"bytes,3,opt,name=jabatan_tambahan,json=jabatanTambahan,proto3" json:"jabatan_tambahan,omitempty"`
	UnitKerja       string                  `protobuf:"bytes,4,opt,name=unit_kerja,json=unitKerja,proto3" json:"unit_kerja,omitempty"`
	TmtJabatan      string                  `protobuf:"bytes,5,opt,name=tmt_jabatan,json=tmtJabatan,proto3" json:"tmt_jabatan,omitempty"`
	TmtBerakhir     *wrapperspb.StringValue `protobuf:"bytes,6,opt,name=tmt_berakhir,json=tmtBerakhir,proto3" json:"tmt_berakhir,omitempty"`
	Keterangan      *wrapperspb.StringValue `protobuf:"bytes,7,opt,name=keterangan,proto3" json:"keterangan,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CreateRiwayatRequest) Reset() {
	*x = CreateRiwayatRequest{}
	mi := &file_riwayat_v1_riwayat_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateRiwayatRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateRiwayatRequest) ProtoMessage() {}

func (x *CreateRiwayatRequest) ProtoReflect() protoreflect.Message {
	mi := &file_riwayat_v1_riwayat_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateRiwayatRequest.ProtoReflect.Descriptor instead.
func (*CreateRiwayatRequest) Descriptor() ([]byte, []int) {
	return file_riwayat_v1_riwayat_proto_rawDescGZIP(), []int{1}
}

func (x *CreateRiwayatRequest) GetPegawaiId() string {
	if x != nil {
		return x.PegawaiId
	}
	return ""
}

func (x *CreateRiwayatRequest) GetJabatan() string {
	if x != nil {
		return x.Jabatan
	}
	return ""
}

func (x *CreateRiwayatRequest) GetJabatanTambahan() *wrapperspb.StringValue {
	if x != nil {
		return x.JabatanTambahan
	}
	return nil
}

func (x *CreateRiwayatRequest) GetUnitKerja() string {
	if x != nil {
		return x.UnitKerja
	}
	return ""
}

func (x *CreateRiwayatRequest) GetTmtJabatan() string {
	if x != nil {
		return x.TmtJabatan
	}
	return ""
}

func (x *CreateRiwayatRequest) GetTmtBerakhir() *wrapperspb.StringValue {
	if x != nil {
		return x.TmtBerakhir
	}
	return nil
}

func (x *CreateRiwayatRequest) GetKeterangan() *wrapperspb.StringValue {
	if x != nil {
		return x.Keterangan
	}
	return nil
}

type CreateRiwayatResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Riwayat       *RiwayatJabatan        `protobuf:"bytes,1,opt,name=riwayat,proto3" json:"riwayat,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateRiwayatResponse) Reset() {
	*x = CreateRiwayatResponse{}
	mi := &file_riwayat_v1_riwayat_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateRiwayatResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateRiwayatResponse) ProtoMessage() {}

func (x *CreateRiwayatResponse) ProtoReflect() protoreflect.Message {
	mi := &file_riwayat_v1_riwayat_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateRiwayatResponse.ProtoReflect.Descriptor instead.
func (*CreateRiwayatResponse) Descriptor() ([]byte, []int) {
	return file_riwayat_v1_riwayat_proto_rawDescGZIP(), []int{2}
}

func (x *CreateRiwayatResponse) GetRiwayat() *RiwayatJabatan {
	if x != nil {
		return x.Riwayat
	}
	return nil
}

type UpdateRiwayatRequest struct {
	state   protoimpl.MessageState  `protogen:"open.v1"`
	Id      string                  `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Jabatan *wrapperspb.StringValue `protobuf:"bytes,2,opt,name=jabatan,proto3" json:"jabatan,omitempty"`
	// An empty wrapped value clears the field.
	JabatanTambahan *wrapperspb.StringValue `protobuf:"bytes,3,opt,name=jabatan_tambahan,json=jabatanTambahan,proto3" json:"jabatan_tambahan,omitempty"`
	UnitKerja       *wrapperspb.StringValue `protobuf:"bytes,4,opt,name=unit_kerja,json=unitKerja,proto3" json:"unit_kerja,omitempty"`
	TmtJabatan      *wrapperspb.StringValue `protobuf:"bytes,5,opt,name=tmt_jabatan,json=tmtJabatan,proto3" json:"tmt_jabatan,omitempty"`
	TmtBerakhir     *wrapperspb.StringValue `protobuf:"bytes,6,opt,name=tmt_berakhir,json=tmtBerakhir,proto3" json:"tmt_berakhir,omitempty"`
	Keterangan      *wrapperspb.StringValue `protobuf:"bytes,7,opt,name=keterangan,proto3" json:"keterangan,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *UpdateRiwayatRequest) Reset() {
	*x = UpdateRiwayatRequest{}
	mi := &file_riwayat_v1_riwayat_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateRiwayatRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateRiwayatRequest) ProtoMessage() {}

func (x *UpdateRiwayatRequest) ProtoReflect() protoreflect.Message {
	mi := &file_riwayat_v1_riwayat_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateRiwayatRequest.ProtoReflect.Descriptor instead.
func (*UpdateRiwayatRequest) Descriptor() ([]byte, []int) {
	return file_riwayat_v1_riwayat_proto_rawDescGZIP(), []int{3}
}

func (x *UpdateRiwayatRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateRiwayatRequest) GetJabatan() *wrapperspb.StringValue {
	if x != nil {
		return x.Jabatan
	}
	return nil
}

func (x *UpdateRiwayatRequest) GetJabatanTambahan() *wrapperspb.StringValue {
	if x != nil {
		return x.JabatanTambahan
	}
	return nil
}

func (x *UpdateRiwayatRequest) GetUnitKerja() *wrapperspb.StringValue {
	if x != nil {
		return x.UnitKerja
	}
	return nil
}

func (x *UpdateRiwayatRequest) GetTmtJabatan() *wrapperspb.StringValue {
	if x != nil {
		return x.TmtJabatan
	}
	return nil
}

func (x *UpdateRiwayatRequest) GetTmtBerakhir() *wrapperspb.StringValue {
	if x != nil {
		return x.TmtBerakhir
	}
	return nil
}

func (x *UpdateRiwayatRequest) GetKeterangan() *wrapperspb.StringValue {
	if x != nil {
		return x.Keterangan
	}
	return nil
}

type UpdateRiwayatResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Riwayat       *RiwayatJabatan        `protobuf:"bytes,1,opt,name=riwayat,proto3" json:"riwayat,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateRiwayatResponse) Reset() {
	*x = UpdateRiwayatResponse{}
	mi := &file_riwayat_v1_riwayat_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateRiwayatResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateRiwayatResponse) ProtoMessage() {}

func (x *UpdateRiwayatResponse) ProtoReflect() protoreflect.Message {
	mi := &file_riwayat_v1_riwayat_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateRiwayatResponse.ProtoReflect.Descriptor instead.
func (*UpdateRiwayatResponse) Descriptor() ([]byte, []int) {
	return file_riwayat_v1_riwayat_proto_rawDescGZIP(), []int{4}
}

func (x *UpdateRiwayatResponse) GetRiwayat() *RiwayatJabatan {
	if x != nil {
		return x.Riwayat
	}
	return nil
}

type DeleteRiwayatRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteRiwayatRequest) Reset() {
	*x = DeleteRiwayatRequest{}
	mi := &file_riwayat_v1_riwayat_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteRiwayatRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteRiwayatRequest) ProtoMessage() {}

func (x *DeleteRiwayatRequest) ProtoReflect() protoreflect.Message {
	mi := &file_riwayat_v1_riwayat_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteRiwayatRequest.ProtoReflect.Descriptor instead.
func (*DeleteRiwayatRequest) Descriptor() ([]byte, []int) {
	return file_riwayat_v1_riwayat_proto_rawDescGZIP(), []int{5}
}

func (x *DeleteRiwayatRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteRiwayatResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteRiwayatResponse) Reset() {
	*x = DeleteRiwayatResponse{}
	mi := &file_riwayat_v1_riwayat_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteRiwayatResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteRiwayatResponse) ProtoMessage() {}

func (x *DeleteRiwayatResponse) ProtoReflect() protoreflect.Message {
	mi := &file_riwayat_v1_riwayat_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteRiwayatResponse.ProtoReflect.Descriptor instead.
func (*DeleteRiwayatResponse) Descriptor() ([]byte, []int) {
	return file_riwayat_v1_riwayat_proto_rawDescGZIP(), []int{6}
}

type ListRiwayatByPegawaiRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PegawaiId     string                 `protobuf:"bytes,1,opt,name=pegawai_id,json=pegawaiId,proto3" json:"pegawai_id,omitempty"`
	PageSize      int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken     string                 `protobuf:"bytes,3,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRiwayatByPegawaiRequest) Reset() {
	*x = ListRiwayatByPegawaiRequest{}
	mi := &file_riwayat_v1_riwayat_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRiwayatByPegawaiRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRiwayatByPegawaiRequest) ProtoMessage() {}

func (x *ListRiwayatByPegawaiRequest) ProtoReflect() protoreflect.Message {
	mi := &file_riwayat_v1_riwayat_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRiwayatByPegawaiRequest.ProtoReflect.Descriptor instead.
func (*ListRiwayatByPegawaiRequest) Descriptor() ([]byte, []int) {
	return file_riwayat_v1_riwayat_proto_rawDescGZIP(), []int{7}
}

func (x *ListRiwayatByPegawaiRequest) GetPegawaiId() string {
	if x != nil {
		return x.PegawaiId
	}
	return ""
}

func (x *ListRiwayatByPegawaiRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListRiwayatByPegawaiRequest) GetPageToken() string {
	if x != nil {
		return x.PageToken
	}
	return ""
}

type ListRiwayatByPegawaiResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Riwayat       []*RiwayatJabatan      `protobuf:"bytes,1,rep,name=riwayat,proto3" json:"riwayat,omitempty"`
	NextPageToken string                 `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRiwayatByPegawaiResponse) Reset() {
	*x = ListRiwayatByPegawaiResponse{}
	mi := &file_riwayat_v1_riwayat_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRiwayatByPegawaiResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRiwayatByPegawaiResponse) ProtoMessage() {}

func (x *ListRiwayatByPegawaiResponse) ProtoReflect() protoreflect.Message {
	mi := &file_riwayat_v1_riwayat_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRiwayatByPegawaiResponse.ProtoReflect.Descriptor instead.
func (*ListRiwayatByPegawaiResponse) Descriptor() ([]byte, []int) {
	return file_riwayat_v1_riwayat_proto_rawDescGZIP(), []int{8}
}

func (x *ListRiwayatByPegawaiResponse) GetRiwayat() []*RiwayatJabatan {
	if x != nil {
		return x.Riwayat
	}
	return nil
}

func (x *ListRiwayatByPegawaiResponse) GetNextPageToken() string {
	if x != nil {
		return x.NextPageToken
	}
	return ""
}

type GetCurrentJabatanRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PegawaiId     string                 `protobuf:"bytes,1,opt,name=pegawai_id,json=pegawaiId,proto3" json:"pegawai_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCurrentJabatanRequest) Reset() {
	*x = GetCurrentJabatanRequest{}
	mi := &file_riwayat_v1_riwayat_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCurrentJabatanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCurrentJabatanRequest) ProtoMessage() {}

func (x *GetCurrentJabatanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_riwayat_v1_riwayat_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCurrentJabatanRequest.ProtoReflect.Descriptor instead.
func (*GetCurrentJabatanRequest) Descriptor() ([]byte, []int) {
	return file_riwayat_v1_riwayat_proto_rawDescGZIP(), []int{9}
}

func (x *GetCurrentJabatanRequest) GetPegawaiId() string {
	if x != nil {
		return x.PegawaiId
	}
	return ""
}

type GetCurrentJabatanResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Riwayat       *RiwayatJabatan        `protobuf:"bytes,1,opt,name=riwayat,proto3" json:"riwayat,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCurrentJabatanResponse) Reset() {
	*x = GetCurrentJabatanResponse{}
	mi := &file_riwayat_v1_riwayat_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCurrentJabatanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCurrentJabatanResponse) ProtoMessage() {}

func (x *GetCurrentJabatanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_riwayat_v1_riwayat_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCurrentJabatanResponse.ProtoReflect.Descriptor instead.
func (*GetCurrentJabatanResponse) Descriptor() ([]byte, []int) {
	return file_riwayat_v1_riwayat_proto_rawDescGZIP(), []int{10}
}

func (x *GetCurrentJabatanResponse) GetRiwayat() *RiwayatJabatan {
	if x != nil {
		return x.Riwayat
	}
	return nil
}

var File_riwayat_v1_riwayat_proto protoreflect.FileDescriptor

const file_riwayat_v1_riwayat_proto_rawDesc = "" +
	"\n" +
	"\x18riwayat/v1/riwayat.proto\x12\n" +
	"riwayat.v1\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x1egoogle/protobuf/wrappers.proto\"\xd7\x03\n" +
	"\x0eRiwayatJabatan\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"pegawai_id\x18\x02 \x01(\tR\tpegawaiId\x12\x18\n" +
	"\ajabatan\x18\x03 \x01(\tR\ajabatan\x12G\n" +
	"\x10jabatan_tambahan\x18\x04 \x01(\v2\x1c.google.protobuf.StringValueR\x0fjabatanTambahan\x12\x1d\n" +
	"\n" +
	"unit_kerja\x18\x05 \x01(\tR\tunitKerja\x12\x1f\n" +
	"\vtmt_jabatan\x18\x06 \x01(\tR\n" +
	"tmtJabatan\x12?\n" +
	"\ftmt_berakhir\x18\a \x01(\v2\x1c.google.protobuf.StringValueR\vtmtBerakhir\x12<\n" +
	"\n" +
	"keterangan\x18\b \x01(\v2\x1c.google.protobuf.StringValueR\n" +
	"keterangan\x129\n" +
	"\n" +
	"created_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\xd7\x02\n" +
	"\x14CreateRiwayatRequest\x12\x1d\n" +
	"\n" +
	"pegawai_id\x18\x01 \x01(\tR\tpegawaiId\x12\x18\n" +
	"\ajabatan\x18\x02 \x01(\tR\ajabatan\x12G\n" +
	"\x10jabatan_tambahan\x18\x03 \x01(\v2\x1c.google.protobuf.StringValueR\x0fjabatanTambahan\x12\x1d\n" +
	"\n" +
	"unit_kerja\x18\x04 \x01(\tR\tunitKerja\x12\x1f\n" +
	"\vtmt_jabatan\x18\x05 \x01(\tR\n" +
	"tmtJabatan\x12?\n" +
	"\ftmt_berakhir\x18\x06 \x01(\v2\x1c.google.protobuf.StringValueR\vtmtBerakhir\x12<\n" +
	"\n" +
	"keterangan\x18\a \x01(\v2\x1c.google.protobuf.StringValueR\n" +
	"keterangan\"M\n" +
	"\x15CreateRiwayatResponse\x124\n" +
	"\ariwayat\x18\x01 \x01(\v2\x1a.riwayat.v1.RiwayatJabatanR\ariwayat\"\xa2\x03\n" +
	"\x14UpdateRiwayatRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x126\n" +
	"\ajabatan\x18\x02 \x01(\v2\x1c.google.protobuf.StringValueR\ajabatan\x12G\n" +
	"\x10jabatan_tambahan\x18\x03 \x01(\v2\x1c.google.protobuf.StringValueR\x0fjabatanTambahan\x12;\n" +
	"\n" +
	"unit_kerja\x18\x04 \x01(\v2\x1c.google.protobuf.StringValueR\tunitKerja\x12=\n" +
	"\vtmt_jabatan\x18\x05 \x01(\v2\x1c.google.protobuf.StringValueR\n" +
	"tmtJabatan\x12?\n" +
	"\ftmt_berakhir\x18\x06 \x01(\v2\x1c.google.protobuf.StringValueR\vtmtBerakhir\x12<\n" +
	"\n" +
	"keterangan\x18\a \x01(\v2\x1c.google.protobuf.StringValueR\n" +
	"keterangan\"M\n" +
	"\x15UpdateRiwayatResponse\x124\n" +
	"\ariwayat\x18\x01 \x01(\v2\x1a.riwayat.v1.RiwayatJabatanR\ariwayat\"&\n" +
	"\x14DeleteRiwayatRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x17\n" +
	"\x15DeleteRiwayatResponse\"x\n" +
	"\x1bListRiwayatByPegawaiRequest\x12\x1d\n" +
	"\n" +
	"pegawai_id\x18\x01 \x01(\tR\tpegawaiId\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\x12\x1d\n" +
	"\n" +
	"page_token\x18\x03 \x01(\tR\tpageToken\"|\n" +
	"\x1cListRiwayatByPegawaiResponse\x124\n" +
	"\ariwayat\x18\x01 \x03(\v2\x1a.riwayat.v1.RiwayatJabatanR\ariwayat\x12&\n" +
	"\x0fnext_page_token\x18\x02 \x01(\tR\rnextPageToken\"9\n" +
	"\x18GetCurrentJabatanRequest\x12\x1d\n" +
	"\n" +
	"pegawai_id\x18\x01 \x01(\tR\tpegawaiId\"Q\n" +
	"\x19GetCurrentJabatanResponse\x124\n" +
	"\ariwayat\x18\x01 \x01(\v2\x1a.riwayat.v1.RiwayatJabatanR\ariwayat2\xe6\x03\n" +
	"\x15RiwayatJabatanService\x12T\n" +
	"\rCreateRiwayat\x12 .riwayat.v1.CreateRiwayatRequest\x1a!.riwayat.v1.CreateRiwayatResponse\x12T\n" +
	"\rUpdateRiwayat\x12 .riwayat.v1.UpdateRiwayatRequest\x1a!.riwayat.v1.UpdateRiwayatResponse\x12T\n" +
	"\rDeleteRiwayat\x12 .riwayat.v1.DeleteRiwayatRequest\x1a!.riwayat.v1.DeleteRiwayatResponse\x12i\n" +
	"\x14ListRiwayatByPegawai\x12'.riwayat.v1.ListRiwayatByPegawaiRequest\x1a(.riwayat.v1.ListRiwayatByPegawaiResponse\x12`\n" +
	"\x11GetCurrentJabatan\x12$.riwayat.v1.GetCurrentJabatanRequest\x1a%.riwayat.v1.GetCurrentJabatanResponseBOZMgithub.com/bkpsdm/simpeg-grpc/internal/adapters/grpc/gen/riwayat/v1;riwayatv1b\x06proto3"

var (
	file_riwayat_v1_riwayat_proto_rawDescOnce sync.Once
	file_riwayat_v1_riwayat_proto_rawDescData []byte
)

func file_riwayat_v1_riwayat_proto_rawDescGZIP() []byte {
	file_riwayat_v1_riwayat_proto_rawDescOnce.Do(func() {
		file_riwayat_v1_riwayat_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_riwayat_v1_riwayat_proto_rawDesc), len(file_riwayat_v1_riwayat_proto_rawDesc)))
	})
	return file_riwayat_v1_riwayat_proto_rawDescData
}

var file_riwayat_v1_riwayat_proto_msgTypes = make([]protoimpl.MessageInfo, 11)
var file_riwayat_v1_riwayat_proto_goTypes = []any{
	(*RiwayatJabatan)(nil),               // 0: riwayat.v1.RiwayatJabatan
	(*CreateRiwayatRequest)(nil),         // 1: riwayat.v1.CreateRiwayatRequest
	(*CreateRiwayatResponse)(nil),        // 2: riwayat.v1.CreateRiwayatResponse
	(*UpdateRiwayatRequest)(nil),         // 3: riwayat.v1.UpdateRiwayatRequest
	(*UpdateRiwayatResponse)(nil),        // 4: riwayat.v1.UpdateRiwayatResponse
	(*DeleteRiwayatRequest)(nil),         // 5: riwayat.v1.DeleteRiwayatRequest
	(*DeleteRiwayatResponse)(nil),        // 6: riwayat.v1.DeleteRiwayatResponse
	(*ListRiwayatByPegawaiRequest)(nil),  // 7: riwayat.v1.ListRiwayatByPegawaiRequest
	(*ListRiwayatByPegawaiResponse)(nil), // 8: riwayat.v1.ListRiwayatByPegawaiResponse
	(*GetCurrentJabatanRequest)(nil),     // 9: riwayat.v1.GetCurrentJabatanRequest
	(*GetCurrentJabatanResponse)(nil),    // 10: riwayat.v1.GetCurrentJabatanResponse
	(*wrapperspb.StringValue)(nil),       // 11: google.protobuf.StringValue
	(*timestamppb.Timestamp)(nil),        // 12: google.protobuf.Timestamp
}
var file_riwayat_v1_riwayat_proto_depIdxs = []int32{
	11, // 0: riwayat.v1.RiwayatJabatan.jabatan_tambahan:type_name -> google.protobuf.StringValue
	11, // 1: riwayat.v1.RiwayatJabatan.tmt_berakhir:type_name -> google.protobuf.StringValue
	11, // 2: riwayat.v1.RiwayatJabatan.keterangan:type_name -> google.protobuf.StringValue
	12, // 3: riwayat.v1.RiwayatJabatan.created_at:type_name -> google.protobuf.Timestamp
	12, // 4: riwayat.v1.RiwayatJabatan.updated_at:type_name -> google.protobuf.Timestamp
	11, // 5: riwayat.v1.CreateRiwayatRequest.jabatan_tambahan:type_name -> google.protobuf.StringValue
	11, // 6: riwayat.v1.CreateRiwayatRequest.tmt_berakhir:type_name -> google.protobuf.StringValue
	11, // 7: riwayat.v1.CreateRiwayatRequest.keterangan:type_name -> google.protobuf.StringValue
	0,  // 8: riwayat.v1.CreateRiwayatResponse.riwayat:type_name -> riwayat.v1.RiwayatJabatan
	11, // 9: riwayat.v1.UpdateRiwayatRequest.jabatan:type_name -> google.protobuf.StringValue
	11, // 10: riwayat.v1.UpdateRiwayatRequest.jabatan_tambahan:type_name -> google.protobuf.StringValue
	11, // 11: riwayat.v1.UpdateRiwayatRequest.unit_kerja:type_name -> google.protobuf.StringValue
	11, // 12: riwayat.v1.UpdateRiwayatRequest.tmt_jabatan:type_name -> google.protobuf.StringValue
	11, // 13: riwayat.v1.UpdateRiwayatRequest.tmt_berakhir:type_name -> google.protobuf.StringValue
	11, // 14: riwayat.v1.UpdateRiwayatRequest.keterangan:type_name -> google.protobuf.StringValue
	0,  // 15: riwayat.v1.UpdateRiwayatResponse.riwayat:type_name -> riwayat.v1.RiwayatJabatan
	0,  // 16: riwayat.v1.ListRiwayatByPegawaiResponse.riwayat:type_name -> riwayat.v1.RiwayatJabatan
	0,  // 17: riwayat.v1.GetCurrentJabatanResponse.riwayat:type_name -> riwayat.v1.RiwayatJabatan
	1,  // 18: riwayat.v1.RiwayatJabatanService.CreateRiwayat:input_type -> riwayat.v1.CreateRiwayatRequest
	3,  // 19: riwayat.v1.RiwayatJabatanService.UpdateRiwayat:input_type -> riwayat.v1.UpdateRiwayatRequest
	5,  // 20: riwayat.v1.RiwayatJabatanService.DeleteRiwayat:input_type -> riwayat.v1.DeleteRiwayatRequest
	7,  // 21: riwayat.v1.RiwayatJabatanService.ListRiwayatByPegawai:input_type -> riwayat.v1.ListRiwayatByPegawaiRequest
	9,  // 22: riwayat.v1.RiwayatJabatanService.GetCurrentJabatan:input_type -> riwayat.v1.GetCurrentJabatanRequest
	2,  // 23: riwayat.v1.RiwayatJabatanService.CreateRiwayat:output_type -> riwayat.v1.CreateRiwayatResponse
	4,  // 24: riwayat.v1.RiwayatJabatanService.UpdateRiwayat:output_type -> riwayat.v1.UpdateRiwayatResponse
	6,  // 25: riwayat.v1.RiwayatJabatanService.DeleteRiwayat:output_type -> riwayat.v1.DeleteRiwayatResponse
	8,  // 26: riwayat.v1.RiwayatJabatanService.ListRiwayatByPegawai:output_type -> riwayat.v1.ListRiwayatByPegawaiResponse
	10, // 27: riwayat.v1.RiwayatJabatanService.GetCurrentJabatan:output_type -> riwayat.v1.GetCurrentJabatanResponse
	23, // [23:28] is the sub-list for method output_type
	18, // [18:23] is the sub-list for method input_type
	18, // [18:18] is the sub-list for extension type_name
	18, // [18:18] is the sub-list for extension extendee
	0,  // [0:18] is the sub-list for field type_name
}

func init() { file_riwayat_v1_riwayat_proto_init() }
func file_riwayat_v1_riwayat_proto_init() {
	if File_riwayat_v1_riwayat_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_riwayat_v1_riwayat_proto_rawDesc), len(file_riwayat_v1_riwayat_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   11,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_riwayat_v1_riwayat_proto_goTypes,
		DependencyIndexes: file_riwayat_v1_riwayat_proto_depIdxs,
		MessageInfos:      file_riwayat_v1_riwayat_proto_msgTypes,
	}.Build()
	File_riwayat_v1_riwayat_proto = out.File
	file_riwayat_v1_riwayat_proto_goTypes = nil
	file_riwayat_v1_riwayat_proto_depIdxs = nil
}
