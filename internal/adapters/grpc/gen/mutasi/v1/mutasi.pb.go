// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: mutasi/v1/mutasi.proto

package mutasiv1

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

type MutasiStatus int32

const (
	MutasiStatus_MUTASI_STATUS_UNSPECIFIED MutasiStatus = 0
	MutasiStatus_MUTASI_STATUS_PENDING     MutasiStatus = 1
	MutasiStatus_MUTASI_STATUS_APPROVED    MutasiStatus = 2
	MutasiStatus_MUTASI_STATUS_REJECTED    MutasiStatus = 3
)

// Enum value maps for MutasiStatus.
var (
	MutasiStatus_name = map[int32]string{
		0: "MUTASI_STATUS_UNSPECIFIED",
		1: "MUTASI_STATUS_PENDING",
		2: "MUTASI_STATUS_APPROVED",
		3: "MUTASI_STATUS_REJECTED",
	}
	MutasiStatus_value = map[string]int32{
		"MUTASI_STATUS_UNSPECIFIED": 0,
		"MUTASI_STATUS_PENDING":     1,
		"MUTASI_STATUS_APPROVED":    2,
		"MUTASI_STATUS_REJECTED":    3,
	}
)

func (x MutasiStatus) Enum() *MutasiStatus {
	p := new(MutasiStatus)
	*p = x
	return p
}

func (x MutasiStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (MutasiStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_mutasi_v1_mutasi_proto_enumTypes[0].Descriptor()
}

func (MutasiStatus) Type() protoreflect.EnumType {
	return &file_mutasi_v1_mutasi_proto_enumTypes[0]
}

func (x MutasiStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use MutasiStatus.Descriptor instead.
func (MutasiStatus) EnumDescriptor() ([]byte, []int) {
	return file_mutasi_v1_mutasi_proto_rawDescGZIP(), []int{0}
}

type Mutasi struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PegawaiId     string                 `protobuf:"bytes,2,opt,name=pegawai_id,json=pegawaiId,proto3" json:"pegawai_id,omitempty"`
	UnitKerjaLama string                 `protobuf:"bytes,3,opt,name=unit_kerja_lama,json=unitKerjaLama,proto3" json:"unit_kerja_lama,omitempty"`
	JabatanLama   string                 `protobuf:"bytes,4,opt,name=jabatan_lama,json=jabatanLama,proto3" json:"jabatan_lama,omitempty"`
	UnitKerjaBaru string                 `protobuf:"bytes,5,opt,name=unit_kerja_baru,json=unitKerjaBaru,proto3" json:"unit_kerja_baru,omitempty"`
	JabatanBaru   string                 `protobuf:"bytes,6,opt,name=jabatan_baru,json=jabatanBaru,proto3" json:"jabatan_baru,omitempty"`
	// YYYY-MM-DD.
	TanggalEfektif     string                  `protobuf:"bytes,7,opt,name=tanggal_efektif,json=tanggalEfektif,proto3" json:"tanggal_efektif,omitempty"`
	AlasanMutasi       string                  `protobuf:"bytes,8,opt,name=alasan_mutasi,json=alasanMutasi,proto3" json:"alasan_mutasi,omitempty"`
	Status             MutasiStatus            `protobuf:"varint,9,opt,name=status,proto3,enum=mutasi.v1.MutasiStatus" json:"status,omitempty"`
	DiajukanOleh       string                  `protobuf:"bytes,10,opt,name=diajukan_oleh,json=diajukanOleh,proto3" json:"diajukan_oleh,omitempty"`
	DisetujuiOleh      *wrapperspb.StringValue `protobuf:"bytes,11,opt,name=disetujui_oleh,json=disetujuiOleh,proto3" json:"disetujui_oleh,omitempty"`
	TanggalDisetujui   *timestamppb.Timestamp  `protobuf:"bytes,12,opt,name=tanggal_disetujui,json=tanggalDisetujui,proto3" json:"tanggal_disetujui,omitempty"`
	CatatanPersetujuan *wrapperspb.StringValue `protobuf:"bytes,13,opt,name=catatan_persetujuan,json=catatanPersetujuan,proto3" json:"catatan_persetujuan,omitempty"`
	CreatedAt          *timestamppb.Timestamp  `protobuf:"bytes,14,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt          *timestamppb.Timestamp  `protobuf:"bytes,15,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Mutasi) Reset() {
	*x = Mutasi{}
	mi := &file_mutasi_v1_mutasi_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Mutasi) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Mutasi) ProtoMessage() {}

func (x *Mutasi) ProtoReflect() protoreflect.Message {
	mi := &file_mutasi_v1_mutasi_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Mutasi.ProtoReflect.Descriptor instead.
func (*Mutasi) Descriptor() ([]byte, []int) {
	return file_mutasi_v1_mutasi_proto_rawDescGZIP(), []int{0}
}

func (x *Mutasi) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Mutasi) GetPegawaiId() string {
	if x != nil {
		return x.PegawaiId
	}
	return ""
}

func (x *Mutasi) GetUnitKerjaLama() string {
	if x != nil {
		return x.UnitKerjaLama
	}
	return ""
}

func (x *Mutasi) GetJabatanLama() string {
	if x != nil {
		return x.JabatanLama
	}
	return ""
}

func (x *Mutasi) GetUnitKerjaBaru() string {
	if x != nil {
		return x.UnitKerjaBaru
	}
	return ""
}

func (x *Mutasi) GetJabatanBaru() string {
	if x != nil {
		return x.JabatanBaru
	}
	return ""
}

func (x *Mutasi) GetTanggalEfektif() string {
	if x != nil {
		return x.TanggalEfektif
	}
	return ""
}

func (x *Mutasi) GetAlasanMutasi() string {
	if x != nil {
		return x.AlasanMutasi
	}
	return ""
}

func (x *Mutasi) GetStatus() MutasiStatus {
	if x != nil {
		return x.Status
	}
	return MutasiStatus_MUTASI_STATUS_UNSPECIFIED
}

func (x *Mutasi) GetDiajukanOleh() string {
	if x != nil {
		return x.DiajukanOleh
	}
	return ""
}

func (x *Mutasi) GetDisetujuiOleh() *wrapperspb.StringValue {
	if x != nil {
		return x.DisetujuiOleh
	}
	return nil
}

func (x *Mutasi) GetTanggalDisetujui() *timestamppb.Timestamp {
	if x != nil {
		return x.TanggalDisetujui
	}
	return nil
}

func (x *Mutasi) GetCatatanPersetujuan() *wrapperspb.StringValue {
	if x != nil {
		return x.CatatanPersetujuan
	}
	return nil
}

func (x *Mutasi) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Mutasi) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type CreateMutasiRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	PegawaiId      string                 `protobuf:"bytes,1,opt,name=pegawai_id,json=pegawaiId,proto3" json:"pegawai_id,omitempty"`
	UnitKerjaLama  string                 `protobuf:"bytes,2,opt,name=unit_kerja_lama,json=unitKerjaLama,proto3" json:"unit_kerja_lama,omitempty"`
	JabatanLama    string                 `protobuf:"bytes,3,opt,name=jabatan_lama,json=jabatanLama,proto3" json:"jabatan_lama,omitempty"`
	UnitKerjaBaru  string                 `protobuf:"bytes,4,opt,name=unit_kerja_baru,json=unitKerjaBaru,proto3" json:"unit_kerja_baru,omitempty"`
	JabatanBaru    string                 `protobuf:"bytes,5,opt,name=jabatan_baru,json=jabatanBaru,proto3" json:"jabatan_baru,omitempty"`
	TanggalEfektif string                 `protobuf:"bytes,6,opt,name=tanggal_efektif,json=tanggalEfektif,proto3" json:"tanggal_efektif,omitempty"`
	AlasanMutasi   string                 `protobuf:"bytes,7,opt,name=alasan_mutasi,json=alasanMutasi,proto3" json:"alasan_mutasi,omitempty"`
	DiajukanOleh   string                 `protobuf:"bytes,8,opt,name=diajukan_oleh,json=diajukanOleh,proto3" json:"diajukan_oleh,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateMutasiRequest) Reset() {
	*x = CreateMutasiRequest{}
	mi := &file_mutasi_v1_mutasi_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateMutasiRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateMutasiRequest) ProtoMessage() {}

func (x *CreateMutasiRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mutasi_v1_mutasi_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateMutasiRequest.ProtoReflect.Descriptor instead.
func (*CreateMutasiRequest) Descriptor() ([]byte, []int) {
	return file_mutasi_v1_mutasi_proto_rawDescGZIP(), []int{1}
}

func (x *CreateMutasiRequest) GetPegawaiId() string {
	if x != nil {
		return x.PegawaiId
	}
	return ""
}

func (x *CreateMutasiRequest) GetUnitKerjaLama() string {
	if x != nil {
		return x.UnitKerjaLama
	}
	return ""
}

func (x *CreateMutasiRequest) GetJabatanLama() string {
	if x != nil {
		return x.JabatanLama
	}
	return ""
}

func (x *CreateMutasiRequest) GetUnitKerjaBaru() string {
	if x != nil {
		return x.UnitKerjaBaru
	}
	return ""
}

func (x *CreateMutasiRequest) GetJabatanBaru() string {
	if x != nil {
		return x.JabatanBaru
	}
	return ""
}

func (x *CreateMutasiRequest) GetTanggalEfektif() string {
	if x != nil {
		return x.TanggalEfektif
	}
	return ""
}

func (x *CreateMutasiRequest) GetAlasanMutasi() string {
	if x != nil {
		return x.AlasanMutasi
	}
	return ""
}

func (x *CreateMutasiRequest) GetDiajukanOleh() string {
	if x != nil {
		return x.DiajukanOleh
	}
	return ""
}

type CreateMutasiResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Mutasi        *Mutasi                `protobuf:"bytes,1,opt,name=mutasi,proto3" json:"mutasi,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateMutasiResponse) Reset() {
	*x = CreateMutasiResponse{}
	mi := &file_mutasi_v1_mutasi_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateMutasiResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateMutasiResponse) ProtoMessage() {}

func (x *CreateMutasiResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mutasi_v1_mutasi_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateMutasiResponse.ProtoReflect.Descriptor instead.
func (*CreateMutasiResponse) Descriptor() ([]byte, []int) {
	return file_mutasi_v1_mutasi_proto_rawDescGZIP(), []int{2}
}

func (x *CreateMutasiResponse) GetMutasi() *Mutasi {
	if x != nil {
		return x.Mutasi
	}
	return nil
}

type GetMutasiRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMutasiRequest) Reset() {
	*x = GetMutasiRequest{}
	mi := &file_mutasi_v1_mutasi_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMutasiRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMutasiRequest) ProtoMessage() {}

func (x *GetMutasiRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mutasi_v1_mutasi_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMutasiRequest.ProtoReflect.Descriptor instead.
func (*GetMutasiRequest) Descriptor() ([]byte, []int) {
	return file_mutasi_v1_mutasi_proto_rawDescGZIP(), []int{3}
}

func (x *GetMutasiRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetMutasiResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Mutasi        *Mutasi                `protobuf:"bytes,1,opt,name=mutasi,proto3" json:"mutasi,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMutasiResponse) Reset() {
	*x = GetMutasiResponse{}
	mi := &file_mutasi_v1_mutasi_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMutasiResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMutasiResponse) ProtoMessage() {}

func (x *GetMutasiResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mutasi_v1_mutasi_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMutasiResponse.ProtoReflect.Descriptor instead.
func (*GetMutasiResponse) Descriptor() ([]byte, []int) {
	return file_mutasi_v1_mutasi_proto_rawDescGZIP(), []int{4}
}

func (x *GetMutasiResponse) GetMutasi() *Mutasi {
	if x != nil {
		return x.Mutasi
	}
	return nil
}

type ListMutasiRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	PegawaiId     *wrapperspb.StringValue `protobuf:"bytes,1,opt,name=pegawai_id,json=pegawaiId,proto3" json:"pegawai_id,omitempty"`
	Status        MutasiStatus            `protobuf:"varint,2,opt,name=status,proto3,enum=mutasi.v1.MutasiStatus" json:"status,omitempty"`
	PageSize      int32                   `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken     string                  `protobuf:"bytes,4,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMutasiRequest) Reset() {
	*x = ListMutasiRequest{}
	mi := &file_mutasi_v1_mutasi_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMutasiRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMutasiRequest) ProtoMessage() {}

func (x *ListMutasiRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mutasi_v1_mutasi_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMutasiRequest.ProtoReflect.Descriptor instead.
func (*ListMutasiRequest) Descriptor() ([]byte, []int) {
	return file_mutasi_v1_mutasi_proto_rawDescGZIP(), []int{5}
}

func (x *ListMutasiRequest) GetPegawaiId() *wrapperspb.StringValue {
	if x != nil {
		return x.PegawaiId
	}
	return nil
}

func (x *ListMutasiRequest) GetStatus() MutasiStatus {
	if x != nil {
		return x.Status
	}
	return MutasiStatus_MUTASI_STATUS_UNSPECIFIED
}

func (x *ListMutasiRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListMutasiRequest) GetPageToken() string {
	if x != nil {
		return x.PageToken
	}
	return ""
}

type ListMutasiResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Mutasi        []*Mutasi              `protobuf:"bytes,1,rep,name=mutasi,proto3" json:"mutasi,omitempty"`
	Total         int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	NextPageToken string                 `protobuf:"bytes,3,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMutasiResponse) Reset() {
	*x = ListMutasiResponse{}
	mi := &file_mutasi_v1_mutasi_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMutasiResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMutasiResponse) ProtoMessage() {}

func (x *ListMutasiResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mutasi_v1_mutasi_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMutasiResponse.ProtoReflect.Descriptor instead.
func (*ListMutasiResponse) Descriptor() ([]byte, []int) {
	return file_mutasi_v1_mutasi_proto_rawDescGZIP(), []int{6}
}

func (x *ListMutasiResponse) GetMutasi() []*Mutasi {
	if x != nil {
		return x.Mutasi
	}
	return nil
}

func (x *ListMutasiResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *ListMutasiResponse) GetNextPageToken() string {
	if x != nil {
		return x.NextPageToken
	}
	return ""
}

type UpdateMutasiStatusRequest struct {
	state              protoimpl.MessageState  `protogen:"open.v1"`
	Id                 string                  `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Status             MutasiStatus            `protobuf:"varint,2,opt,name=status,proto3,enum=mutasi.v1.MutasiStatus" json:"status,omitempty"`
	DisetujuiOleh      string                  `protobuf:"bytes,3,opt,name=disetujui_oleh,json=disetujuiOleh,proto3" json:"disetujui_oleh,omitempty"`
	CatatanPersetujuan *wrapperspb.StringValue `protobuf:"bytes,4,opt,name=catatan_persetujuan,json=catatanPersetujuan,proto3" json:"catatan_persetujuan,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *UpdateMutasiStatusRequest) Reset() {
	*x = UpdateMutasiStatusRequest{}
	mi := &file_mutasi_v1_mutasi_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateMutasiStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateMutasiStatusRequest) ProtoMessage() {}

func (x *UpdateMutasiStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mutasi_v1_mutasi_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateMutasiStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateMutasiStatusRequest) Descriptor() ([]byte, []int) {
	return file_mutasi_v1_mutasi_proto_rawDescGZIP(), []int{7}
}

func (x *UpdateMutasiStatusRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateMutasiStatusRequest) GetStatus() MutasiStatus {
	if x != nil {
		return x.Status
	}
	return MutasiStatus_MUTASI_STATUS_UNSPECIFIED
}

func (x *UpdateMutasiStatusRequest) GetDisetujuiOleh() string {
	if x != nil {
		return x.DisetujuiOleh
	}
	return ""
}

func (x *UpdateMutasiStatusRequest) GetCatatanPersetujuan() *wrapperspb.StringValue {
	if x != nil {
		return x.CatatanPersetujuan
	}
	return nil
}

type UpdateMutasiStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Mutasi        *Mutasi                `protobuf:"bytes,1,opt,name=mutasi,proto3" json:"mutasi,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateMutasiStatusResponse) Reset() {
	*x = UpdateMutasiStatusResponse{}
	mi := &file_mutasi_v1_mutasi_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateMutasiStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateMutasiStatusResponse) ProtoMessage() {}

func (x *UpdateMutasiStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mutasi_v1_mutasi_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateMutasiStatusResponse.ProtoReflect.Descriptor instead.
func (*UpdateMutasiStatusResponse) Descriptor() ([]byte, []int) {
	return file_mutasi_v1_mutasi_proto_rawDescGZIP(), []int{8}
}

func (x *UpdateMutasiStatusResponse) GetMutasi() *Mutasi {
	if x != nil {
		return x.Mutasi
	}
	return nil
}

type DeleteMutasiRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteMutasiRequest) Reset() {
	*x = DeleteMutasiRequest{}
	mi := &file_mutasi_v1_mutasi_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteMutasiRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteMutasiRequest) ProtoMessage() {}

func (x *DeleteMutasiRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mutasi_v1_mutasi_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteMutasiRequest.ProtoReflect.Descriptor instead.
func (*DeleteMutasiRequest) Descriptor() ([]byte, []int) {
	return file_mutasi_v1_mutasi_proto_rawDescGZIP(), []int{9}
}

func (x *DeleteMutasiRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteMutasiResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteMutasiResponse) Reset() {
	*x = DeleteMutasiResponse{}
	mi := &file_mutasi_v1_mutasi_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteMutasiResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteMutasiResponse) ProtoMessage() {}

func (x *DeleteMutasiResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mutasi_v1_mutasi_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteMutasiResponse.ProtoReflect.Descriptor instead.
func (*DeleteMutasiResponse) Descriptor() ([]byte, []int) {
	return file_mutasi_v1_mutasi_proto_rawDescGZIP(), []int{10}
}

var File_mutasi_v1_mutasi_proto protoreflect.FileDescriptor

const file_mutasi_v1_mutasi_proto_rawDesc = "" +
	"\n" +
	"\x16mutasi/v1/mutasi.proto\x12\tmutasi.v1\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x1egoogle/protobuf/wrappers.proto\"\xc4\x05\n" +
	"\x06Mutasi\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"pegawai_id\x18\x02 \x01(\tR\tpegawaiId\x12&\n" +
	"\x0funit_kerja_lama\x18\x03 \x01(\tR\runitKerjaLama\x12!\n" +
	"\fjabatan_lama\x18\x04 \x01(\tR\vjabatanLama\x12&\n" +
	"\x0funit_kerja_baru\x18\x05 \x01(\tR\runitKerjaBaru\x12!\n" +
	"\fjabatan_baru\x18\x06 \x01(\tR\vjabatanBaru\x12'\n" +
	"\x0ftanggal_efektif\x18\a \x01(\tR\x0etanggalEfektif\x12#\n" +
	"\ralasan_mutasi\x18\b \x01(\tR\falasanMutasi\x12/\n" +
	"\x06status\x18\t \x01(\x0e2\x17.mutasi.v1.MutasiStatusR\x06status\x12#\n" +
	"\rdiajukan_oleh\x18\n" +
	" \x01(\tR\fdiajukanOleh\x12C\n" +
	"\x0edisetujui_oleh\x18\v \x01(\v2\x1c.google.protobuf.StringValueR\rdisetujuiOleh\x12G\n" +
	"\x11tanggal_disetujui\x18\f \x01(\v2\x1a.google.protobuf.TimestampR\x10tanggalDisetujui\x12M\n" +
	"\x13catatan_persetujuan\x18\r \x01(\v2\x1c.google.protobuf.StringValueR\x12catatanPersetujuan\x129\n" +
	"\n" +
	"created_at\x18\x0e \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\x0f \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\xbd\x02\n" +
	"\x13CreateMutasiRequest\x12\x1d\n" +
	"\n" +
	"pegawai_id\x18\x01 \x01(\tR\tpegawaiId\x12&\n" +
	"\x0funit_kerja_lama\x18\x02 \x01(\tR\runitKerjaLama\x12!\n" +
	"\fjabatan_lama\x18\x03 \x01(\tR\vjabatanLama\x12&\n" +
	"\x0funit_kerja_baru\x18\x04 \x01(\tR\runitKerjaBaru\x12!\n" +
	"\fjabatan_baru\x18\x05 \x01(\tR\vjabatanBaru\x12'\n" +
	"\x0ftanggal_efektif\x18\x06 \x01(\tR\x0etanggalEfektif\x12#\n" +
	"\ralasan_mutasi\x18\a \x01(\tR\falasanMutasi\x12#\n" +
	"\rdiajukan_oleh\x18\b \x01(\tR\fdiajukanOleh\"A\n" +
	"\x14CreateMutasiResponse\x12)\n" +
	"\x06mutasi\x18\x01 \x01(\v2\x11.mutasi.v1.MutasiR\x06mutasi\"\"\n" +
	"\x10GetMutasiRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\">\n" +
	"\x11GetMutasiResponse\x12)\n" +
	"\x06mutasi\x18\x01 \x01(\v2\x11.mutasi.v1.MutasiR\x06mutasi\"\xbd\x01\n" +
	"\x11ListMutasiRequest\x12;\n" +
	"\n" +
	"pegawai_id\x18\x01 \x01(\v2\x1c.google.protobuf.StringValueR\tpegawaiId\x12/\n" +
	"\x06status\x18\x02 \x01(\x0e2\x17.mutasi.v1.MutasiStatusR\x06status\x12\x1b\n" +
	"\tpage_size\x18\x03 \x01(\x05R\bpageSize\x12\x1d\n" +
	"\n" +
	"page_token\x18\x04 \x01(\tR\tpageToken\"}\n" +
	"\x12ListMutasiResponse\x12)\n" +
	"\x06mutasi\x18\x01 \x03(\v2\x11.mutasi.v1.MutasiR\x06mutasi\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x05R\x05total\x12&\n" +
	"\x0fnext_page_token\x18\x03 \x01(\tR\rnextPageToken\"\xd2\x01\n" +
	"\x19UpdateMutasiStatusRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12/\n" +
	"\x06status\x18\x02 \x01(\x0e2\x17.mutasi.v1.MutasiStatusR\x06status\x12%\n" +
	"\x0edisetujui_oleh\x18\x03 \x01(\tR\rdisetujuiOleh\x12M\n" +
	"\x13catatan_persetujuan\x18\x04 \x01(\v2\x1c.google.protobuf.StringValueR\x12catatanPersetujuan\"G\n" +
	"\x1aUpdateMutasiStatusResponse\x12)\n" +
	"\x06mutasi\x18\x01 \x01(\v2\x11.mutasi.v1.MutasiR\x06mutasi\"%\n" +
	"\x13DeleteMutasiRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x16\n" +
	"\x14DeleteMutasiResponse*\x80\x01\n" +
	"\fMutasiStatus\x12\x1d\n" +
	"\x19MUTASI_STATUS_UNSPECIFIED\x10\x00\x12\x19\n" +
	"\x15MUTASI_STATUS_PENDING\x10\x01\x12\x1a\n" +
	"\x16MUTASI_STATUS_APPROVED\x10\x02\x12\x1a\n" +
	"\x16MUTASI_STATUS_REJECTED\x10\x032\xa7\x03\n" +
	"\rMutasiService\x12O\n" +
	"\fCreateMutasi\x12\x1e.mutasi.v1.CreateMutasiRequest\x1a\x1f.mutasi.v1.CreateMutasiResponse\x12F\n" +
	"\tGetMutasi\x12\x1b.mutasi.v1.GetMutasiRequest\x1a\x1c.mutasi.v1.GetMutasiResponse\x12I\n" +
	"\n" +
	"ListMutasi\x12\x1c.mutasi.v1.ListMutasiRequest\x1a\x1d.mutasi.v1.ListMutasiResponse\x12a\n" +
	"\x12UpdateMutasiStatus\x12$.mutasi.v1.UpdateMutasiStatusRequest\x1a%.mutasi.v1.UpdateMutasiStatusResponse\x12O\n" +
	"\fDeleteMutasi\x12\x1e.mutasi.v1.DeleteMutasiRequest\x1a\x1f.mutasi.v1.DeleteMutasiResponseBMZKgithub.com/bkpsdm/simpeg-grpc/internal/adapters/grpc/gen/mutasi/v1;mutasiv1b\x06proto3"

var (
	file_mutasi_v1_mutasi_proto_rawDescOnce sync.Once
	file_mutasi_v1_mutasi_proto_rawDescData []byte
)

func file_mutasi_v1_mutasi_proto_rawDescGZIP() []byte {
	file_mutasi_v1_mutasi_proto_rawDescOnce.Do(func() {
		file_mutasi_v1_mutasi_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_mutasi_v1_mutasi_proto_rawDesc), len(file_mutasi_v1_mutasi_proto_rawDesc)))
	})
	return file_mutasi_v1_mutasi_proto_rawDescData
}

var file_mutasi_v1_mutasi_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_mutasi_v1_mutasi_proto_msgTypes = make([]protoimpl.MessageInfo, 11)
var file_mutasi_v1_mutasi_proto_goTypes = []any{
	(MutasiStatus)(0),                  // 0: mutasi.v1.MutasiStatus
	(*Mutasi)(nil),                     // 1: mutasi.v1.Mutasi
	(*CreateMutasiRequest)(nil),        // 2: mutasi.v1.CreateMutasiRequest
	(*CreateMutasiResponse)(nil),       // 3: mutasi.v1.CreateMutasiResponse
	(*GetMutasiRequest)(nil),           // 4: mutasi.v1.GetMutasiRequest
	(*GetMutasiResponse)(nil),          // 5: mutasi.v1.GetMutasiResponse
	(*ListMutasiRequest)(nil),          // 6: mutasi.v1.ListMutasiRequest
	(*ListMutasiResponse)(nil),         // 7: mutasi.v1.ListMutasiResponse
	(*UpdateMutasiStatusRequest)(nil),  // 8: mutasi.v1.UpdateMutasiStatusRequest
	(*UpdateMutasiStatusResponse)(nil), // 9: mutasi.v1.UpdateMutasiStatusResponse
	(*DeleteMutasiRequest)(nil),        // 10: mutasi.v1.DeleteMutasiRequest
	(*DeleteMutasiResponse)(nil),       // 11: mutasi.v1.DeleteMutasiResponse
	(*wrapperspb.StringValue)(nil),     // 12: google.protobuf.StringValue
	(*timestamppb.Timestamp)(nil),      // 13: google.protobuf.Timestamp
}
var file_mutasi_v1_mutasi_proto_depIdxs = []int32{
	0,  // 0: mutasi.v1.Mutasi.status:type_name -> mutasi.v1.MutasiStatus
	12, // 1: mutasi.v1.Mutasi.disetujui_oleh:type_name -> google.protobuf.StringValue
	13, // 2: mutasi.v1.Mutasi.tanggal_disetujui:type_name -> google.protobuf.Timestamp
	12, // 3: mutasi.v1.Mutasi.catatan_persetujuan:type_name -> google.protobuf.StringValue
	13, // 4: mutasi.v1.Mutasi.created_at:type_name -> google.protobuf.Timestamp
	13, // 5: mutasi.v1.Mutasi.updated_at:type_name -> google.protobuf.Timestamp
	1,  // 6: mutasi.v1.CreateMutasiResponse.mutasi:type_name -> mutasi.v1.Mutasi
	1,  // 7: mutasi.v1.GetMutasiResponse.mutasi:type_name -> mutasi.v1.Mutasi
	12, // 8: mutasi.v1.ListMutasiRequest.pegawai_id:type_name -> google.protobuf.StringValue
	0,  // 9: mutasi.v1.ListMutasiRequest.status:type_name -> mutasi.v1.MutasiStatus
	1,  // 10: mutasi.v1.ListMutasiResponse.mutasi:type_name -> mutasi.v1.Mutasi
	0,  // 11: mutasi.v1.UpdateMutasiStatusRequest.status:type_name -> mutasi.v1.MutasiStatus
	12, // 12: mutasi.v1.UpdateMutasiStatusRequest.catatan_persetujuan:type_name -> google.protobuf.StringValue
	1,  // 13: mutasi.v1.UpdateMutasiStatusResponse.mutasi:type_name -> mutasi.v1.Mutasi
	2,  // 14: mutasi.v1.MutasiService.CreateMutasi:input_type -> mutasi.v1.CreateMutasiRequest
	4,  // 15: mutasi.v1.MutasiService.GetMutasi:input_type -> mutasi.v1.GetMutasiRequest
	6,  // 16: mutasi.v1.MutasiService.ListMutasi:input_type -> mutasi.v1.ListMutasiRequest
	8,  // 17: mutasi.v1.MutasiService.UpdateMutasiStatus:input_type -> mutasi.v1.UpdateMutasiStatusRequest
	10, // 18: mutasi.v1.MutasiService.DeleteMutasi:input_type -> mutasi.v1.DeleteMutasiRequest
	3,  // 19: mutasi.v1.MutasiService.CreateMutasi:output_type -> mutasi.v1.CreateMutasiResponse
	5,  // 20: mutasi.v1.MutasiService.GetMutasi:output_type -> mutasi.v1.GetMutasiResponse
	7,  // 21: mutasi.v1.MutasiService.ListMutasi:output_type -> mutasi.v1.ListMutasiResponse
	9,  // 22: mutasi.v1.MutasiService.UpdateMutasiStatus:output_type -> mutasi.v1.UpdateMutasiStatusResponse
	11, // 23: mutasi.v1.MutasiService.DeleteMutasi:output_type -> mutasi.v1.DeleteMutasiResponse
	19, // [19:24] is the sub-list for method output_type
	14, // [14:19] is the sub-list for method input_type
	14, // [14:14] is the sub-list for extension type_name
	14, // [14:14] is the sub-list for extension extendee
	0,  // [0:14] is the sub-list for field type_name
}

func init() { file_mutasi_v1_mutasi_proto_init() }
func file_mutasi_v1_mutasi_proto_init() {
	if File_mutasi_v1_mutasi_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_mutasi_v1_mutasi_proto_rawDesc), len(file_mutasi_v1_mutasi_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   11,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_mutasi_v1_mutasi_proto_goTypes,
		DependencyIndexes: file_mutasi_v1_mutasi_proto_depIdxs,
		EnumInfos:         file_mutasi_v1_mutasi_proto_enumTypes,
		MessageInfos:      file_mutasi_v1_mutasi_proto_msgTypes,
	}.Build()
	File_mutasi_v1_mutasi_proto = out.File
	file_mutasi_v1_mutasi_proto_goTypes = nil
	file_mutasi_v1_mutasi_proto_depIdxs = nil
}
