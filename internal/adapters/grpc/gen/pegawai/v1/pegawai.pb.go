// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: pegawai/v1/pegawai.proto

package pegawaiv1

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

type JenisKelamin int32

const (
	JenisKelamin_JENIS_KELAMIN_UNSPECIFIED JenisKelamin = 0
	JenisKelamin_JENIS_KELAMIN_LAKI_LAKI   JenisKelamin = 1
	JenisKelamin_JENIS_KELAMIN_PEREMPUAN   JenisKelamin = 2
)

// Enum value maps for JenisKelamin.
var (
	JenisKelamin_name = map[int32]string{
		0: "JENIS_KELAMIN_UNSPECIFIED",
		1: "JENIS_KELAMIN_LAKI_LAKI",
		2: "JENIS_KELAMIN_PEREMPUAN",
	}
	JenisKelamin_value = map[string]int32{
		"JENIS_KELAMIN_UNSPECIFIED": 0,
		"JENIS_KELAMIN_LAKI_LAKI":   1,
		"JENIS_KELAMIN_PEREMPUAN":   2,
	}
)

func (x JenisKelamin) Enum() *JenisKelamin {
	p := new(JenisKelamin)
	*p = x
	return p
}

func (x JenisKelamin) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (JenisKelamin) Descriptor() protoreflect.EnumDescriptor {
	return file_pegawai_v1_pegawai_proto_enumTypes[0].Descriptor()
}

func (JenisKelamin) Type() protoreflect.EnumType {
	return &file_pegawai_v1_pegawai_proto_enumTypes[0]
}

func (x JenisKelamin) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use JenisKelamin.Descriptor instead.
func (JenisKelamin) EnumDescriptor() ([]byte, []int) {
	return file_pegawai_v1_pegawai_proto_rawDescGZIP(), []int{0}
}

type Pendidikan int32

const (
	Pendidikan_PENDIDIKAN_UNSPECIFIED Pendidikan = 0
	Pendidikan_PENDIDIKAN_SD          Pendidikan = 1
	Pendidikan_PENDIDIKAN_SMP         Pendidikan = 2
	Pendidikan_PENDIDIKAN_SMA         Pendidikan = 3
	Pendidikan_PENDIDIKAN_D3          Pendidikan = 4
	Pendidikan_PENDIDIKAN_S1          Pendidikan = 5
	Pendidikan_PENDIDIKAN_S2          Pendidikan = 6
	Pendidikan_PENDIDIKAN_S3          Pendidikan = 7
)

// Enum value maps for Pendidikan.
var (
	Pendidikan_name = map[int32]string{
		0: "PENDIDIKAN_UNSPECIFIED",
		1: "PENDIDIKAN_SD",
		2: "PENDIDIKAN_SMP",
		3: "PENDIDIKAN_SMA",
		4: "PENDIDIKAN_D3",
		5: "PENDIDIKAN_S1",
		6: "PENDIDIKAN_S2",
		7: "PENDIDIKAN_S3",
	}
	Pendidikan_value = map[string]int32{
		"PENDIDIKAN_UNSPECIFIED": 0,
		"PENDIDIKAN_SD":          1,
		"PENDIDIKAN_SMP":         2,
		"PENDIDIKAN_SMA":         3,
		"PENDIDIKAN_D3":          4,
		"PENDIDIKAN_S1":          5,
		"PENDIDIKAN_S2":          6,
		"PENDIDIKAN_S3":          7,
	}
)

func (x Pendidikan) Enum() *Pendidikan {
	p := new(Pendidikan)
	*p = x
	return p
}

func (x Pendidikan) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Pendidikan) Descriptor() protoreflect.EnumDescriptor {
	return file_pegawai_v1_pegawai_proto_enumTypes[1].Descriptor()
}

func (Pendidikan) Type() protoreflect.EnumType {
	return &file_pegawai_v1_pegawai_proto_enumTypes[1]
}

func (x Pendidikan) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Pendidikan.Descriptor instead.
func (Pendidikan) EnumDescriptor() ([]byte, []int) {
	return file_pegawai_v1_pegawai_proto_rawDescGZIP(), []int{1}
}

type GolonganDarah int32

const (
	GolonganDarah_GOLONGAN_DARAH_UNSPECIFIED GolonganDarah = 0
	GolonganDarah_GOLONGAN_DARAH_A           GolonganDarah = 1
	GolonganDarah_GOLONGAN_DARAH_B           GolonganDarah = 2
	GolonganDarah_GOLONGAN_DARAH_AB          GolonganDarah = 3
	GolonganDarah_GOLONGAN_DARAH_O           GolonganDarah = 4
)

// Enum value maps for GolonganDarah.
var (
	GolonganDarah_name = map[int32]string{
		0: "GOLONGAN_DARAH_UNSPECIFIED",
		1: "GOLONGAN_DARAH_A",
		2: "GOLONGAN_DARAH_B",
		3: "GOLONGAN_DARAH_AB",
		4: "GOLONGAN_DARAH_O",
	}
	GolonganDarah_value = map[string]int32{
		"GOLONGAN_DARAH_UNSPECIFIED": 0,
		"GOLONGAN_DARAH_A":           1,
		"GOLONGAN_DARAH_B":           2,
		"GOLONGAN_DARAH_AB":          3,
		"GOLONGAN_DARAH_O":           4,
	}
)

func (x GolonganDarah) Enum() *GolonganDarah {
	p := new(GolonganDarah)
	*p = x
	return p
}

func (x GolonganDarah) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (GolonganDarah) Descriptor() protoreflect.EnumDescriptor {
	return file_pegawai_v1_pegawai_proto_enumTypes[2].Descriptor()
}

func (GolonganDarah) Type() protoreflect.EnumType {
	return &file_pegawai_v1_pegawai_proto_enumTypes[2]
}

func (x GolonganDarah) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use GolonganDarah.Descriptor instead.
func (GolonganDarah) EnumDescriptor() ([]byte, []int) {
	return file_pegawai_v1_pegawai_proto_rawDescGZIP(), []int{2}
}

type WilayahRef struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Nama          string                 `protobuf:"bytes,2,opt,name=nama,proto3" json:"nama,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WilayahRef) Reset() {
	*x = WilayahRef{}
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WilayahRef) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WilayahRef) ProtoMessage() {}

func (x *WilayahRef) ProtoReflect() protoreflect.Message {
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WilayahRef.ProtoReflect.Descriptor instead.
func (*WilayahRef) Descriptor() ([]byte, []int) {
	return file_pegawai_v1_pegawai_proto_rawDescGZIP(), []int{0}
}

func (x *WilayahRef) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *WilayahRef) GetNama() string {
	if x != nil {
		return x.Nama
	}
	return ""
}

type Alamat struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Provinsi      *WilayahRef            `protobuf:"bytes,1,opt,name=provinsi,proto3" json:"provinsi,omitempty"`
	Kota          *WilayahRef            `protobuf:"bytes,2,opt,name=kota,proto3" json:"kota,omitempty"`
	Kecamatan     *WilayahRef            `protobuf:"bytes,3,opt,name=kecamatan,proto3" json:"kecamatan,omitempty"`
	Desa          *WilayahRef            `protobuf:"bytes,4,opt,name=desa,proto3" json:"desa,omitempty"`
	Detail        string                 `protobuf:"bytes,5,opt,name=detail,proto3" json:"detail,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Alamat) Reset() {
	*x = Alamat{}
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Alamat) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Alamat) ProtoMessage() {}

func (x *Alamat) ProtoReflect() protoreflect.Message {
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Alamat.ProtoReflect.Descriptor instead.
func (*Alamat) Descriptor() ([]byte, []int) {
	return file_pegawai_v1_pegawai_proto_rawDescGZIP(), []int{1}
}

func (x *Alamat) GetProvinsi() *WilayahRef {
	if x != nil {
		return x.Provinsi
	}
	return nil
}

func (x *Alamat) GetKota() *WilayahRef {
	if x != nil {
		return x.Kota
	}
	return nil
}

func (x *Alamat) GetKecamatan() *WilayahRef {
	if x != nil {
		return x.Kecamatan
	}
	return nil
}

func (x *Alamat) GetDesa() *WilayahRef {
	if x != nil {
		return x.Desa
	}
	return nil
}

func (x *Alamat) GetDetail() string {
	if x != nil {
		return x.Detail
	}
	return ""
}

type Pegawai struct {
	state   protoimpl.MessageState  `protogen:"open.v1"`
	Id      string                  `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Nip     string                  `protobuf:"bytes,2,opt,name=nip,proto3" json:"nip,omitempty"`
	Nama    string                  `protobuf:"bytes,3,opt,name=nama,proto3" json:"nama,omitempty"`
	Email   string                  `protobuf:"bytes,4,opt,name=email,proto3" json:"email,omitempty"`
	Telepon *wrapperspb.StringValue `protobuf:"bytes,5,opt,name=telepon,proto3" json:"telepon,omitempty"`
	// YYYY-MM-DD.
	TanggalLahir  string                 `protobuf:"bytes,6,opt,name=tanggal_lahir,json=tanggalLahir,proto3" json:"tanggal_lahir,omitempty"`
	JenisKelamin  JenisKelamin           `protobuf:"varint,7,opt,name=jenis_kelamin,json=jenisKelamin,proto3,enum=pegawai.v1.JenisKelamin" json:"jenis_kelamin,omitempty"`
	Pendidikan    Pendidikan             `protobuf:"varint,8,opt,name=pendidikan,proto3,enum=pegawai.v1.Pendidikan" json:"pendidikan,omitempty"`
	GolonganDarah GolonganDarah          `protobuf:"varint,9,opt,name=golongan_darah,json=golonganDarah,proto3,enum=pegawai.v1.GolonganDarah" json:"golongan_darah,omitempty"`
	Alamat        *Alamat                `protobuf:"bytes,10,opt,name=alamat,proto3" json:"alamat,omitempty"`
	IsActive      bool                   `protobuf:"varint,11,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,12,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,13,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Pegawai) Reset() {
	*x = Pegawai{}
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Pegawai) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Pegawai) ProtoMessage() {}

func (x *Pegawai) ProtoReflect() protoreflect.Message {
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Pegawai.ProtoReflect.Descriptor instead.
func (*Pegawai) Descriptor() ([]byte, []int) {
	return file_pegawai_v1_pegawai_proto_rawDescGZIP(), []int{2}
}

func (x *Pegawai) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Pegawai) GetNip() string {
	if x != nil {
		return x.Nip
	}
	return ""
}

func (x *Pegawai) GetNama() string {
	if x != nil {
		return x.Nama
	}
	return ""
}

func (x *Pegawai) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Pegawai) GetTelepon() *wrapperspb.StringValue {
	if x != nil {
		return x.Telepon
	}
	return nil
}

func (x *Pegawai) GetTanggalLahir() string {
	if x != nil {
		return x.TanggalLahir
	}
	return ""
}

func (x *Pegawai) GetJenisKelamin() JenisKelamin {
	if x != nil {
		return x.JenisKelamin
	}
	return JenisKelamin_JENIS_KELAMIN_UNSPECIFIED
}

func (x *Pegawai) GetPendidikan() Pendidikan {
	if x != nil {
		return x.Pendidikan
	}
	return Pendidikan_PENDIDIKAN_UNSPECIFIED
}

func (x *Pegawai) GetGolonganDarah() GolonganDarah {
	if x != nil {
		return x.GolonganDarah
	}
	return GolonganDarah_GOLONGAN_DARAH_UNSPECIFIED
}

func (x *Pegawai) GetAlamat() *Alamat {
	if x != nil {
		return x.Alamat
	}
	return nil
}

func (x *Pegawai) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

func (x *Pegawai) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Pegawai) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type CreatePegawaiRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Nip           string                  `protobuf:"bytes,1,opt,name=nip,proto3" json:"nip,omitempty"`
	Nama          string                  `protobuf:"bytes,2,opt,name=nama,proto3" json:"nama,omitempty"`
	Email         string                  `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	Telepon       *wrapperspb.StringValue `protobuf:"bytes,4,opt,name=telepon,proto3" json:"telepon,omitempty"`
	TanggalLahir  string                  `protobuf:"bytes,5,opt,name=tanggal_lahir,json=tanggalLahir,proto3" json:"tanggal_lahir,omitempty"`
	JenisKelamin  JenisKelamin            `protobuf:"varint,6,opt,name=jenis_kelamin,json=jenisKelamin,proto3,enum=pegawai.v1.JenisKelamin" json:"jenis_kelamin,omitempty"`
	Pendidikan    Pendidikan              `protobuf:"varint,7,opt,name=pendidikan,proto3,enum=pegawai.v1.Pendidikan" json:"pendidikan,omitempty"`
	GolonganDarah GolonganDarah           `protobuf:"varint,8,opt,name=golongan_darah,json=golonganDarah,proto3,enum=pegawai.v1.GolonganDarah" json:"golongan_darah,omitempty"`
	Alamat        *Alamat                 `protobuf:"bytes,9,opt,name=alamat,proto3" json:"alamat,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreatePegawaiRequest) Reset() {
	*x = CreatePegawaiRequest{}
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePegawaiRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePegawaiRequest) ProtoMessage() {}

func (x *CreatePegawaiRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePegawaiRequest.ProtoReflect.Descriptor instead.
func (*CreatePegawaiRequest) Descriptor() ([]byte, []int) {
	return file_pegawai_v1_pegawai_proto_rawDescGZIP(), []int{3}
}

func (x *CreatePegawaiRequest) GetNip() string {
	if x != nil {
		return x.Nip
	}
	return ""
}

func (x *CreatePegawaiRequest) GetNama() string {
	if x != nil {
		return x.Nama
	}
	return ""
}

func (x *CreatePegawaiRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *CreatePegawaiRequest) GetTelepon() *wrapperspb.StringValue {
	if x != nil {
		return x.Telepon
	}
	return nil
}

func (x *CreatePegawaiRequest) GetTanggalLahir() string {
	if x != nil {
		return x.TanggalLahir
	}
	return ""
}

func (x *CreatePegawaiRequest) GetJenisKelamin() JenisKelamin {
	if x != nil {
		return x.JenisKelamin
	}
	return JenisKelamin_JENIS_KELAMIN_UNSPECIFIED
}

func (x *CreatePegawaiRequest) GetPendidikan() Pendidikan {
	if x != nil {
		return x.Pendidikan
	}
	return Pendidikan_PENDIDIKAN_UNSPECIFIED
}

func (x *CreatePegawaiRequest) GetGolonganDarah() GolonganDarah {
	if x != nil {
		return x.GolonganDarah
	}
	return GolonganDarah_GOLONGAN_DARAH_UNSPECIFIED
}

func (x *CreatePegawaiRequest) GetAlamat() *Alamat {
	if x != nil {
		return x.Alamat
	}
	return nil
}

type CreatePegawaiResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pegawai       *Pegawai               `protobuf:"bytes,1,opt,name=pegawai,proto3" json:"pegawai,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreatePegawaiResponse) Reset() {
	*x = CreatePegawaiResponse{}
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePegawaiResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePegawaiResponse) ProtoMessage() {}

func (x *CreatePegawaiResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePegawaiResponse.ProtoReflect.Descriptor instead.
func (*CreatePegawaiResponse) Descriptor() ([]byte, []int) {
	return file_pegawai_v1_pegawai_proto_rawDescGZIP(), []int{4}
}

func (x *CreatePegawaiResponse) GetPegawai() *Pegawai {
	if x != nil {
		return x.Pegawai
	}
	return nil
}

type GetPegawaiRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPegawaiRequest) Reset() {
	*x = GetPegawaiRequest{}
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPegawaiRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPegawaiRequest) ProtoMessage() {}

func (x *GetPegawaiRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPegawaiRequest.ProtoReflect.Descriptor instead.
func (*GetPegawaiRequest) Descriptor() ([]byte, []int) {
	return file_pegawai_v1_pegawai_proto_rawDescGZIP(), []int{5}
}

func (x *GetPegawaiRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetPegawaiResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pegawai       *Pegawai               `protobuf:"bytes,1,opt,name=pegawai,proto3" json:"pegawai,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPegawaiResponse) Reset() {
	*x = GetPegawaiResponse{}
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPegawaiResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPegawaiResponse) ProtoMessage() {}

func (x *GetPegawaiResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPegawaiResponse.ProtoReflect.Descriptor instead.
func (*GetPegawaiResponse) Descriptor() ([]byte, []int) {
	return file_pegawai_v1_pegawai_proto_rawDescGZIP(), []int{6}
}

func (x *GetPegawaiResponse) GetPegawai() *Pegawai {
	if x != nil {
		return x.Pegawai
	}
	return nil
}

type ListPegawaiRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Nama          string                 `protobuf:"bytes,1,opt,name=nama,proto3" json:"nama,omitempty"`
	Nip           string                 `protobuf:"bytes,2,opt,name=nip,proto3" json:"nip,omitempty"`
	IsActive      *wrapperspb.BoolValue  `protobuf:"bytes,3,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	PageSize      int32                  `protobuf:"varint,4,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken     string                 `protobuf:"bytes,5,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPegawaiRequest) Reset() {
	*x = ListPegawaiRequest{}
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPegawaiRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPegawaiRequest) ProtoMessage() {}

func (x *ListPegawaiRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPegawaiRequest.ProtoReflect.Descriptor instead.
func (*ListPegawaiRequest) Descriptor() ([]byte, []int) {
	return file_pegawai_v1_pegawai_proto_rawDescGZIP(), []int{7}
}

func (x *ListPegawaiRequest) GetNama() string {
	if x != nil {
		return x.Nama
	}
	return ""
}

func (x *ListPegawaiRequest) GetNip() string {
	if x != nil {
		return x.Nip
	}
	return ""
}

func (x *ListPegawaiRequest) GetIsActive() *wrapperspb.BoolValue {
	if x != nil {
		return x.IsActive
	}
	return nil
}

func (x *ListPegawaiRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListPegawaiRequest) GetPageToken() string {
	if x != nil {
		return x.PageToken
	}
	return ""
}

type ListPegawaiResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pegawai       []*Pegawai             `protobuf:"bytes,1,rep,name=pegawai,proto3" json:"pegawai,omitempty"`
	NextPageToken string                 `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPegawaiResponse) Reset() {
	*x = ListPegawaiResponse{}
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPegawaiResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPegawaiResponse) ProtoMessage() {}

func (x *ListPegawaiResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPegawaiResponse.ProtoReflect.Descriptor instead.
func (*ListPegawaiResponse) Descriptor() ([]byte, []int) {
	return file_pegawai_v1_pegawai_proto_rawDescGZIP(), []int{8}
}

func (x *ListPegawaiResponse) GetPegawai() []*Pegawai {
	if x != nil {
		return x.Pegawai
	}
	return nil
}

func (x *ListPegawaiResponse) GetNextPageToken() string {
	if x != nil {
		return x.NextPageToken
	}
	return ""
}

type UpdatePegawaiRequest struct {
	state protoimpl.MessageState  `protogen:"open.v1"`
	Id    string                  `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Nama  *wrapperspb.StringValue `protobuf:"bytes,2,opt,name=nama,proto3" json:"nama,omitempty"`
	Email *wrapperspb.StringValue `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	// An empty wrapped value clears the phone number.
	Telepon            *wrapperspb.StringValue `protobuf:"bytes,4,opt,name=telepon,proto3" json:"telepon,omitempty"`
	TanggalLahir       *wrapperspb.StringValue `protobuf:"bytes,5,opt,name=tanggal_lahir,json=tanggalLahir,proto3" json:"tanggal_lahir,omitempty"`
	JenisKelamin       JenisKelamin            `protobuf:"varint,6,opt,name=jenis_kelamin,json=jenisKelamin,proto3,enum=pegawai.v1.JenisKelamin" json:"jenis_kelamin,omitempty"`
	Pendidikan         Pendidikan              `protobuf:"varint,7,opt,name=pendidikan,proto3,enum=pegawai.v1.Pendidikan" json:"pendidikan,omitempty"`
	GolonganDarah      GolonganDarah           `protobuf:"varint,8,opt,name=golongan_darah,json=golonganDarah,proto3,enum=pegawai.v1.GolonganDarah" json:"golongan_darah,omitempty"`
	ClearGolonganDarah bool                    `protobuf:"varint,9,opt,name=clear_golongan_darah,json=clearGolonganDarah,proto3" json:"clear_golongan_darah,omitempty"`
	Alamat             *Alamat                 `protobuf:"bytes,10,opt,name=alamat,proto3" json:"alamat,omitempty"`
	IsActive           *wrapperspb.BoolValue   `protobuf:"bytes,11,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *UpdatePegawaiRequest) Reset() {
	*x = UpdatePegawaiRequest{}
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdatePegawaiRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdatePegawaiRequest) ProtoMessage() {}

func (x *UpdatePegawaiRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdatePegawaiRequest.ProtoReflect.Descriptor instead.
func (*UpdatePegawaiRequest) Descriptor() ([]byte, []int) {
	return file_pegawai_v1_pegawai_proto_rawDescGZIP(), []int{9}
}

func (x *UpdatePegawaiRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdatePegawaiRequest) GetNama() *wrapperspb.StringValue {
	if x != nil {
		return x.Nama
	}
	return nil
}

func (x *UpdatePegawaiRequest) GetEmail() *wrapperspb.StringValue {
	if x != nil {
		return x.Email
	}
	return nil
}

func (x *UpdatePegawaiRequest) GetTelepon() *wrapperspb.StringValue {
	if x != nil {
		return x.Telepon
	}
	return nil
}

func (x *UpdatePegawaiRequest) GetTanggalLahir() *wrapperspb.StringValue {
	if x != nil {
		return x.TanggalLahir
	}
	return nil
}

func (x *UpdatePegawaiRequest) GetJenisKelamin() JenisKelamin {
	if x != nil {
		return x.JenisKelamin
	}
	return JenisKelamin_JENIS_KELAMIN_UNSPECIFIED
}

func (x *UpdatePegawaiRequest) GetPendidikan() Pendidikan {
	if x != nil {
		return x.Pendidikan
	}
	return Pendidikan_PENDIDIKAN_UNSPECIFIED
}

func (x *UpdatePegawaiRequest) GetGolonganDarah() GolonganDarah {
	if x != nil {
		return x.GolonganDarah
	}
	return GolonganDarah_GOLONGAN_DARAH_UNSPECIFIED
}

func (x *UpdatePegawaiRequest) GetClearGolonganDarah() bool {
	if x != nil {
		return x.ClearGolonganDarah
	}
	return false
}

func (x *UpdatePegawaiRequest) GetAlamat() *Alamat {
	if x != nil {
		return x.Alamat
	}
	return nil
}

func (x *UpdatePegawaiRequest) GetIsActive() *wrapperspb.BoolValue {
	if x != nil {
		return x.IsActive
	}
	return nil
}

type UpdatePegawaiResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pegawai       *Pegawai               `protobuf:"bytes,1,opt,name=pegawai,proto3" json:"pegawai,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdatePegawaiResponse) Reset() {
	*x = UpdatePegawaiResponse{}
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdatePegawaiResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdatePegawaiResponse) ProtoMessage() {}

func (x *UpdatePegawaiResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdatePegawaiResponse.ProtoReflect.Descriptor instead.
func (*UpdatePegawaiResponse) Descriptor() ([]byte, []int) {
	return file_pegawai_v1_pegawai_proto_rawDescGZIP(), []int{10}
}

func (x *UpdatePegawaiResponse) GetPegawai() *Pegawai {
	if x != nil {
		return x.Pegawai
	}
	return nil
}

type DeletePegawaiRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeletePegawaiRequest) Reset() {
	*x = DeletePegawaiRequest{}
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeletePegawaiRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeletePegawaiRequest) ProtoMessage() {}

func (x *DeletePegawaiRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeletePegawaiRequest.ProtoReflect.Descriptor instead.
func (*DeletePegawaiRequest) Descriptor() ([]byte, []int) {
	return file_pegawai_v1_pegawai_proto_rawDescGZIP(), []int{11}
}

func (x *DeletePegawaiRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeletePegawaiResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeletePegawaiResponse) Reset() {
	*x = DeletePegawaiResponse{}
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeletePegawaiResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeletePegawaiResponse) ProtoMessage() {}

func (x *DeletePegawaiResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeletePegawaiResponse.ProtoReflect.Descriptor instead.
func (*DeletePegawaiResponse) Descriptor() ([]byte, []int) {
	return file_pegawai_v1_pegawai_proto_rawDescGZIP(), []int{12}
}

type ListMendekatiPensiunRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMendekatiPensiunRequest) Reset() {
	*x = ListMendekatiPensiunRequest{}
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMendekatiPensiunRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMendekatiPensiunRequest) ProtoMessage() {}

func (x *ListMendekatiPensiunRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMendekatiPensiunRequest.ProtoReflect.Descriptor instead.
func (*ListMendekatiPensiunRequest) Descriptor() ([]byte, []int) {
	return file_pegawai_v1_pegawai_proto_rawDescGZIP(), []int{13}
}

type ListMendekatiPensiunResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pegawai       []*Pegawai             `protobuf:"bytes,1,rep,name=pegawai,proto3" json:"pegawai,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMendekatiPensiunResponse) Reset() {
	*x = ListMendekatiPensiunResponse{}
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMendekatiPensiunResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMendekatiPensiunResponse) ProtoMessage() {}

func (x *ListMendekatiPensiunResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pegawai_v1_pegawai_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMendekatiPensiunResponse.ProtoReflect.Descriptor instead.
func (*ListMendekatiPensiunResponse) Descriptor() ([]byte, []int) {
	return file_pegawai_v1_pegawai_proto_rawDescGZIP(), []int{14}
}

func (x *ListMendekatiPensiunResponse) GetPegawai() []*Pegawai {
	if x != nil {
		return x.Pegawai
	}
	return nil
}

var File_pegawai_v1_pegawai_proto protoreflect.FileDescriptor

const file_pegawai_v1_pegawai_proto_rawDesc = "" +
	"\n" +
	"\x18pegawai/v1/pegawai.proto\x12\n" +
	"pegawai.v1\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x1egoogle/protobuf/wrappers.proto\"0\n" +
	"\n" +
	"WilayahRef\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04nama\x18\x02 \x01(\tR\x04nama\"\xe2\x01\n" +
	"\x06Alamat\x122\n" +
	"\bprovinsi\x18\x01 \x01(\v2\x16.pegawai.v1.WilayahRefR\bprovinsi\x12*\n" +
	"\x04kota\x18\x02 \x01(\v2\x16.pegawai.v1.WilayahRefR\x04kota\x124\n" +
	"\tkecamatan\x18\x03 \x01(\v2\x16.pegawai.v1.WilayahRefR\tkecamatan\x12*\n" +
	"\x04desa\x18\x04 \x01(\v2\x16.pegawai.v1.WilayahRefR\x04desa\x12\x16\n" +
	"\x06detail\x18\x05 \x01(\tR\x06detail\"\xaa\x04\n" +
	"\aPegawai\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x10\n" +
	"\x03nip\x18\x02 \x01(\tR\x03nip\x12\x12\n" +
	"\x04nama\x18\x03 \x01(\tR\x04nama\x12\x14\n" +
	"\x05email\x18\x04 \x01(\tR\x05email\x126\n" +
	"\atelepon\x18\x05 \x01(\v2\x1c.google.protobuf.StringValueR\atelepon\x12#\n" +
	"\rtanggal_lahir\x18\x06 \x01(\tR\ftanggalLahir\x12=\n" +
	"\rjenis_kelamin\x18\a \x01(\x0e2\x18.pegawai.v1.JenisKelaminR\fjenisKelamin\x126\n" +
	"\n" +
	"pendidikan\x18\b \x01(\x0e2\x16.pegawai.v1.PendidikanR\n" +
	"pendidikan\x12@\n" +
	"\x0egolongan_darah\x18\t \x01(\x0e2\x19.pegawai.v1.GolonganDarahR\rgolonganDarah\x12*\n" +
	"\x06alamat\x18\n" +
	" \x01(\v2\x12.pegawai.v1.AlamatR\x06alamat\x12\x1b\n" +
	"\tis_active\x18\v \x01(\bR\bisActive\x129\n" +
	"\n" +
	"created_at\x18\f \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\r \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\x94\x03\n" +
	"\x14CreatePegawaiRequest\x12\x10\n" +
	"\x03nip\x18\x01 \x01(\tR\x03nip\x12\x12\n" +
	"\x04nama\x18\x02 \x01(\tR\x04nama\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\x126\n" +
	"\atelepon\x18\x04 \x01(\v2\x1c.google.protobuf.StringValueR\atelepon\x12#\n" +
	"\rtanggal_lahir\x18\x05 \x01(\tR\ftanggalLahir\x12=\n" +
	"\rjenis_kelamin\x18\x06 \x01(\x0e2\x18.pegawai.v1.JenisKelaminR\fjenisKelamin\x126\n" +
	"\n" +
	"pendidikan\x18\a \x01(\x0e2\x16.pegawai.v1.PendidikanR\n" +
	"pendidikan\x12@\n" +
	"\x0egolongan_darah\x18\b \x01(\x0e2\x19.pegawai.v1.GolonganDarahR\rgolonganDarah\x12*\n" +
	"\x06alamat\x18\t \x01(\v2\x12.pegawai.v1.AlamatR\x06alamat\"F\n" +
	"\x15CreatePegawaiResponse\x12-\n" +
	"\apegawai\x18\x01 \x01(\v2\x13.pegawai.v1.PegawaiR\apegawai\"#\n" +
	"\x11GetPegawaiRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"C\n" +
	"\x12GetPegawaiResponse\x12-\n" +
	"\apegawai\x18\x01 \x01(\v2\x13.pegawai.v1.PegawaiR\apegawai\"\xaf\x01\n" +
	"\x12ListPegawaiRequest\x12\x12\n" +
	"\x04nama\x18\x01 \x01(\tR\x04nama\x12\x10\n" +
	"\x03nip\x18\x02 \x01(\tR\x03nip\x127\n" +
	"\tis_active\x18\x03 \x01(\v2\x1a.google.protobuf.BoolValueR\bisActive\x12\x1b\n" +
	"\tpage_size\x18\x04 \x01(\x05R\bpageSize\x12\x1d\n" +
	"\n" +
	"page_token\x18\x05 \x01(\tR\tpageToken\"l\n" +
	"\x13ListPegawaiResponse\x12-\n" +
	"\apegawai\x18\x01 \x03(\v2\x13.pegawai.v1.PegawaiR\apegawai\x12&\n" +
	"\x0fnext_page_token\x18\x02 \x01(\tR\rnextPageToken\"\xd7\x04\n" +
	"\x14UpdatePegawaiRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x120\n" +
	"\x04nama\x18\x02 \x01(\v2\x1c.google.protobuf.StringValueR\x04nama\x122\n" +
	"\x05email\x18\x03 \x01(\v2\x1c.google.protobuf.StringValueR\x05email\x126\n" +
	"\atelepon\x18\x04 \x01(\v2\x1c.google.protobuf.StringValueR\atelepon\x12A\n" +
	"\rtanggal_lahir\x18\x05 \x01(\v2\x1c.google.protobuf.StringValueR\ftanggalLahir\x12=\n" +
	"\rjenis_kelamin\x18\x06 \x01(\x0e2\x18.pegawai.v1.JenisKelaminR\fjenisKelamin\x126\n" +
	"\n" +
	"pendidikan\x18\a \x01(\x0e2\x16.pegawai.v1.PendidikanR\n" +
	"pendidikan\x12@\n" +
	"\x0egolongan_darah\x18\b \x01(\x0e2\x19.pegawai.v1.GolonganDarahR\rgolonganDarah\x120\n" +
	"\x14clear_golongan_darah\x18\t \x01(\bR\x12clearGolonganDarah\x12*\n" +
	"\x06alamat\x18\n" +
	" \x01(\v2\x12.pegawai.v1.AlamatR\x06alamat\x127\n" +
	"\tis_active\x18\v \x01(\v2\x1a.google.protobuf.BoolValueR\bisActive\"F\n" +
	"\x15UpdatePegawaiResponse\x12-\n" +
	"\apegawai\x18\x01 \x01(\v2\x13.pegawai.v1.PegawaiR\apegawai\"&\n" +
	"\x14DeletePegawaiRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x17\n" +
	"\x15DeletePegawaiResponse\"\x1d\n" +
	"\x1bListMendekatiPensiunRequest\"M\n" +
	"\x1cListMendekatiPensiunResponse\x12-\n" +
	"\apegawai\x18\x01 \x03(\v2\x13.pegawai.v1.PegawaiR\apegawai*g\n" +
	"\fJenisKelamin\x12\x1d\n" +
	"\x19JENIS_KELAMIN_UNSPECIFIED\x10\x00\x12\x1b\n" +
	"\x17JENIS_KELAMIN_LAKI_LAKI\x10\x01\x12\x1b\n" +
	"\x17JENIS_KELAMIN_PEREMPUAN\x10\x02*\xaf\x01\n" +
	"\n" +
	"Pendidikan\x12\x1a\n" +
	"\x16PENDIDIKAN_UNSPECIFIED\x10\x00\x12\x11\n" +
	"\rPENDIDIKAN_SD\x10\x01\x12\x12\n" +
	"\x0ePENDIDIKAN_SMP\x10\x02\x12\x12\n" +
	"\x0ePENDIDIKAN_SMA\x10\x03\x12\x11\n" +
	"\rPENDIDIKAN_D3\x10\x04\x12\x11\n" +
	"\rPENDIDIKAN_S1\x10\x05\x12\x11\n" +
	"\rPENDIDIKAN_S2\x10\x06\x12\x11\n" +
	"\rPENDIDIKAN_S3\x10\a*\x88\x01\n" +
	"\rGolonganDarah\x12\x1e\n" +
	"\x1aGOLONGAN_DARAH_UNSPECIFIED\x10\x00\x12\x14\n" +
	"\x10GOLONGAN_DARAH_A\x10\x01\x12\x14\n" +
	"\x10GOLONGAN_DARAH_B\x10\x02\x12\x15\n" +
	"\x11GOLONGAN_DARAH_AB\x10\x03\x12\x14\n" +
	"\x10GOLONGAN_DARAH_O\x10\x042\x9a\x04\n" +
	"\x0ePegawaiService\x12T\n" +
	"\rCreatePegawai\x12 .pegawai.v1.CreatePegawaiRequest\x1a!.pegawai.v1.CreatePegawaiResponse\x12K\n" +
	"\n" +
	"GetPegawai\x12\x1d.pegawai.v1.GetPegawaiRequest\x1a\x1e.pegawai.v1.GetPegawaiResponse\x12N\n" +
	"\vListPegawai\x12\x1e.pegawai.v1.ListPegawaiRequest\x1a\x1f.pegawai.v1.ListPegawaiResponse\x12T\n" +
	"\rUpdatePegawai\x12 .pegawai.v1.UpdatePegawaiRequest\x1a!.pegawai.v1.UpdatePegawaiResponse\x12T\n" +
	"\rDeletePegawai\x12 .pegawai.v1.DeletePegawaiRequest\x1a!.pegawai.v1.DeletePegawaiResponse\x12i\n" +
	"\x14ListMendekatiPensiun\x12'.pegawai.v1.ListMendekatiPensiunRequest\x1a(.pegawai.v1.ListMendekatiPensiunResponseBOZMgithub.com/bkpsdm/simpeg-grpc/internal/adapters/grpc/gen/pegawai/v1;pegawaiv1b\x06proto3"

var (
	file_pegawai_v1_pegawai_proto_rawDescOnce sync.Once
	file_pegawai_v1_pegawai_proto_rawDescData []byte
)

func file_pegawai_v1_pegawai_proto_rawDescGZIP() []byte {
	file_pegawai_v1_pegawai_proto_rawDescOnce.Do(func() {
		file_pegawai_v1_pegawai_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_pegawai_v1_pegawai_proto_rawDesc), len(file_pegawai_v1_pegawai_proto_rawDesc)))
	})
	return file_pegawai_v1_pegawai_proto_rawDescData
}

var file_pegawai_v1_pegawai_proto_enumTypes = make([]protoimpl.EnumInfo, 3)
var file_pegawai_v1_pegawai_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_pegawai_v1_pegawai_proto_goTypes = []any{
	(JenisKelamin)(0),                    // 0: pegawai.v1.JenisKelamin
	(Pendidikan)(0),                      // 1: pegawai.v1.Pendidikan
	(GolonganDarah)(0),                   // 2: pegawai.v1.GolonganDarah
	(*WilayahRef)(nil),                   // 3: pegawai.v1.WilayahRef
	(*Alamat)(nil),                       // 4: pegawai.v1.Alamat
	(*Pegawai)(nil),                      // 5: pegawai.v1.Pegawai
	(*CreatePegawaiRequest)(nil),         // 6: pegawai.v1.CreatePegawaiRequest
	(*CreatePegawaiResponse)(nil),        // 7: pegawai.v1.CreatePegawaiResponse
	(*GetPegawaiRequest)(nil),            // 8: pegawai.v1.GetPegawaiRequest
	(*GetPegawaiResponse)(nil),           // 9: pegawai.v1.GetPegawaiResponse
	(*ListPegawaiRequest)(nil),           // 10: pegawai.v1.ListPegawaiRequest
	(*ListPegawaiResponse)(nil),          // 11: pegawai.v1.ListPegawaiResponse
	(*UpdatePegawaiRequest)(nil),         // 12: pegawai.v1.UpdatePegawaiRequest
	(*UpdatePegawaiResponse)(nil),        // 13: pegawai.v1.UpdatePegawaiResponse
	(*DeletePegawaiRequest)(nil),         // 14: pegawai.v1.DeletePegawaiRequest
	(*DeletePegawaiResponse)(nil),        // 15: pegawai.v1.DeletePegawaiResponse
	(*ListMendekatiPensiunRequest)(nil),  // 16: pegawai.v1.ListMendekatiPensiunRequest
	(*ListMendekatiPensiunResponse)(nil), // 17: pegawai.v1.ListMendekatiPensiunResponse
	(*wrapperspb.StringValue)(nil),       // 18: google.protobuf.StringValue
	(*timestamppb.Timestamp)(nil),        // 19: google.protobuf.Timestamp
	(*wrapperspb.BoolValue)(nil),         // 20: google.protobuf.BoolValue
}
var file_pegawai_v1_pegawai_proto_depIdxs = []int32{
	3,  // 0: pegawai.v1.Alamat.provinsi:type_name -> pegawai.v1.WilayahRef
	3,  // 1: pegawai.v1.Alamat.kota:type_name -> pegawai.v1.WilayahRef
	3,  // 2: pegawai.v1.Alamat.kecamatan:type_name -> pegawai.v1.WilayahRef
	3,  // 3: pegawai.v1.Alamat.desa:type_name -> pegawai.v1.WilayahRef
	18, // 4: pegawai.v1.Pegawai.telepon:type_name -> google.protobuf.StringValue
	0,  // 5: pegawai.v1.Pegawai.jenis_kelamin:type_name -> pegawai.v1.JenisKelamin
	1,  // 6: pegawai.v1.Pegawai.pendidikan:type_name -> pegawai.v1.Pendidikan
	2,  // 7: pegawai.v1.Pegawai.golongan_darah:type_name -> pegawai.v1.GolonganDarah
	4,  // 8: pegawai.v1.Pegawai.alamat:type_name -> pegawai.v1.Alamat
	19, // 9: pegawai.v1.Pegawai.created_at:type_name -> google.protobuf.Timestamp
	19, // 10: pegawai.v1.Pegawai.updated_at:type_name -> google.protobuf.Timestamp
	18, // 11: pegawai.v1.CreatePegawaiRequest.telepon:type_name -> google.protobuf.StringValue
	0,  // 12: pegawai.v1.CreatePegawaiRequest.jenis_kelamin:type_name -> pegawai.v1.JenisKelamin
	1,  // 13: pegawai.v1.CreatePegawaiRequest.pendidikan:type_name -> pegawai.v1.Pendidikan
	2,  // 14: pegawai.v1.CreatePegawaiRequest.golongan_darah:type_name -> pegawai.v1.GolonganDarah
	4,  // 15: pegawai.v1.CreatePegawaiRequest.alamat:type_name -> pegawai.v1.Alamat
	5,  // 16: pegawai.v1.CreatePegawaiResponse.pegawai:type_name -> pegawai.v1.Pegawai
	5,  // 17: pegawai.v1.GetPegawaiResponse.pegawai:type_name -> pegawai.v1.Pegawai
	20, // 18: pegawai.v1.ListPegawaiRequest.is_active:type_name -> google.protobuf.BoolValue
	5,  // 19: pegawai.v1.ListPegawaiResponse.pegawai:type_name -> pegawai.v1.Pegawai
	18, // 20: pegawai.v1.UpdatePegawaiRequest.nama:type_name -> google.protobuf.StringValue
	18, // 21: pegawai.v1.UpdatePegawaiRequest.email:type_name -> google.protobuf.StringValue
	18, // 22: pegawai.v1.UpdatePegawaiRequest.telepon:type_name -> google.protobuf.StringValue
	18, // 23: pegawai.v1.UpdatePegawaiRequest.tanggal_lahir:type_name -> google.protobuf.StringValue
	0,  // 24: pegawai.v1.UpdatePegawaiRequest.jenis_kelamin:type_name -> pegawai.v1.JenisKelamin
	1,  // 25: pegawai.v1.UpdatePegawaiRequest.pendidikan:type_name -> pegawai.v1.Pendidikan
	2,  // 26: pegawai.v1.UpdatePegawaiRequest.golongan_darah:type_name -> pegawai.v1.GolonganDarah
	4,  // 27: pegawai.v1.UpdatePegawaiRequest.alamat:type_name -> pegawai.v1.Alamat
	20, // 28: pegawai.v1.UpdatePegawaiRequest.is_active:type_name -> google.protobuf.BoolValue
	5,  // 29: pegawai.v1.UpdatePegawaiResponse.pegawai:type_name -> pegawai.v1.Pegawai
	5,  // 30: pegawai.v1.ListMendekatiPensiunResponse.pegawai:type_name -> pegawai.v1.Pegawai
	6,  // 31: pegawai.v1.PegawaiService.CreatePegawai:input_type -> pegawai.v1.CreatePegawaiRequest
	8,  // 32: pegawai.v1.PegawaiService.GetPegawai:input_type -> pegawai.v1.GetPegawaiRequest
	10, // 33: pegawai.v1.PegawaiService.ListPegawai:input_type -> pegawai.v1.ListPegawaiRequest
	12, // 34: pegawai.v1.PegawaiService.UpdatePegawai:input_type -> pegawai.v1.UpdatePegawaiRequest
	14, // 35: pegawai.v1.PegawaiService.DeletePegawai:input_type -> pegawai.v1.DeletePegawaiRequest
	16, // 36: pegawai.v1.PegawaiService.ListMendekatiPensiun:input_type -> pegawai.v1.ListMendekatiPensiunRequest
	7,  // 37: pegawai.v1.PegawaiService.CreatePegawai:output_type -> pegawai.v1.CreatePegawaiResponse
	9,  // 38: pegawai.v1.PegawaiService.GetPegawai:output_type -> pegawai.v1.GetPegawaiResponse
	11, // 39: pegawai.v1.PegawaiService.ListPegawai:output_type -> pegawai.v1.ListPegawaiResponse
	13, // 40: pegawai.v1.PegawaiService.UpdatePegawai:output_type -> pegawai.v1.UpdatePegawaiResponse
	15, // 41: pegawai.v1.PegawaiService.DeletePegawai:output_type -> pegawai.v1.DeletePegawaiResponse
	17, // 42: pegawai.v1.PegawaiService.ListMendekatiPensiun:output_type -> pegawai.v1.ListMendekatiPensiunResponse
	37, // [37:43] is the sub-list for method output_type
	31, // [31:37] is the sub-list for method input_type
	31, // [31:31] is the sub-list for extension type_name
	31, // [31:31] is the sub-list for extension extendee
	0,  // [0:31] is the sub-list for field type_name
}

func init() { file_pegawai_v1_pegawai_proto_init() }
func file_pegawai_v1_pegawai_proto_init() {
	if File_pegawai_v1_pegawai_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_pegawai_v1_pegawai_proto_rawDesc), len(file_pegawai_v1_pegawai_proto_rawDesc)),
			NumEnums:      3,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_pegawai_v1_pegawai_proto_goTypes,
		DependencyIndexes: file_pegawai_v1_pegawai_proto_depIdxs,
		EnumInfos:         file_pegawai_v1_pegawai_proto_enumTypes,
		MessageInfos:      file_pegawai_v1_pegawai_proto_msgTypes,
	}.Build()
	File_pegawai_v1_pegawai_proto = out.File
	file_pegawai_v1_pegawai_proto_goTypes = nil
	file_pegawai_v1_pegawai_proto_depIdxs = nil
}
