// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: wilayah/v1/wilayah.proto

package wilayahv1

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

type Wilayah struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Nama          string                 `protobuf:"bytes,2,opt,name=nama,proto3" json:"nama,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Wilayah) Reset() {
	*x = Wilayah{}
	mi := &file_wilayah_v1_wilayah_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Wilayah) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Wilayah) ProtoMessage() {}

func (x *Wilayah) ProtoReflect() protoreflect.Message {
	mi := &file_wilayah_v1_wilayah_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Wilayah.ProtoReflect.Descriptor instead.
func (*Wilayah) Descriptor() ([]byte, []int) {
	return file_wilayah_v1_wilayah_proto_rawDescGZIP(), []int{0}
}

func (x *Wilayah) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Wilayah) GetNama() string {
	if x != nil {
		return x.Nama
	}
	return ""
}

type ListProvincesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProvincesRequest) Reset() {
	*x = ListProvincesRequest{}
	mi := &file_wilayah_v1_wilayah_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProvincesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProvincesRequest) ProtoMessage() {}

func (x *ListProvincesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_wilayah_v1_wilayah_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProvincesRequest.ProtoReflect.Descriptor instead.
func (*ListProvincesRequest) Descriptor() ([]byte, []int) {
	return file_wilayah_v1_wilayah_proto_rawDescGZIP(), []int{1}
}

type ListProvincesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Wilayah       []*Wilayah             `protobuf:"bytes,1,rep,name=wilayah,proto3" json:"wilayah,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProvincesResponse) Reset() {
	*x = ListProvincesResponse{}
	mi := &file_wilayah_v1_wilayah_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProvincesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProvincesResponse) ProtoMessage() {}

func (x *ListProvincesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_wilayah_v1_wilayah_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProvincesResponse.ProtoReflect.Descriptor instead.
func (*ListProvincesResponse) Descriptor() ([]byte, []int) {
	return file_wilayah_v1_wilayah_proto_rawDescGZIP(), []int{2}
}

func (x *ListProvincesResponse) GetWilayah() []*Wilayah {
	if x != nil {
		return x.Wilayah
	}
	return nil
}

type ListRegenciesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProvinceId    string                 `protobuf:"bytes,1,opt,name=province_id,json=provinceId,proto3" json:"province_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRegenciesRequest) Reset() {
	*x = ListRegenciesRequest{}
	mi := &file_wilayah_v1_wilayah_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRegenciesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRegenciesRequest) ProtoMessage() {}

func (x *ListRegenciesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_wilayah_v1_wilayah_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRegenciesRequest.ProtoReflect.Descriptor instead.
func (*ListRegenciesRequest) Descriptor() ([]byte, []int) {
	return file_wilayah_v1_wilayah_proto_rawDescGZIP(), []int{3}
}

func (x *ListRegenciesRequest) GetProvinceId() string {
	if x != nil {
		return x.ProvinceId
	}
	return ""
}

type ListRegenciesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Wilayah       []*Wilayah             `protobuf:"bytes,1,rep,name=wilayah,proto3" json:"wilayah,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRegenciesResponse) Reset() {
	*x = ListRegenciesResponse{}
	mi := &file_wilayah_v1_wilayah_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRegenciesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRegenciesResponse) ProtoMessage() {}

func (x *ListRegenciesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_wilayah_v1_wilayah_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRegenciesResponse.ProtoReflect.Descriptor instead.
func (*ListRegenciesResponse) Descriptor() ([]byte, []int) {
	return file_wilayah_v1_wilayah_proto_rawDescGZIP(), []int{4}
}

func (x *ListRegenciesResponse) GetWilayah() []*Wilayah {
	if x != nil {
		return x.Wilayah
	}
	return nil
}

type ListDistrictsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RegencyId     string                 `protobuf:"bytes,1,opt,name=regency_id,json=regencyId,proto3" json:"regency_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDistrictsRequest) Reset() {
	*x = ListDistrictsRequest{}
	mi := &file_wilayah_v1_wilayah_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDistrictsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDistrictsRequest) ProtoMessage() {}

func (x *ListDistrictsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_wilayah_v1_wilayah_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDistrictsRequest.ProtoReflect.Descriptor instead.
func (*ListDistrictsRequest) Descriptor() ([]byte, []int) {
	return file_wilayah_v1_wilayah_proto_rawDescGZIP(), []int{5}
}

func (x *ListDistrictsRequest) GetRegencyId() string {
	if x != nil {
		return x.RegencyId
	}
	return ""
}

type ListDistrictsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Wilayah       []*Wilayah             `protobuf:"bytes,1,rep,name=wilayah,proto3" json:"wilayah,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDistrictsResponse) Reset() {
	*x = ListDistrictsResponse{}
	mi := &file_wilayah_v1_wilayah_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDistrictsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDistrictsResponse) ProtoMessage() {}

func (x *ListDistrictsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_wilayah_v1_wilayah_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDistrictsResponse.ProtoReflect.Descriptor instead.
func (*ListDistrictsResponse) Descriptor() ([]byte, []int) {
	return file_wilayah_v1_wilayah_proto_rawDescGZIP(), []int{6}
}

func (x *ListDistrictsResponse) GetWilayah() []*Wilayah {
	if x != nil {
		return x.Wilayah
	}
	return nil
}

type ListVillagesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DistrictId    string                 `protobuf:"bytes,1,opt,name=district_id,json=districtId,proto3" json:"district_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVillagesRequest) Reset() {
	*x = ListVillagesRequest{}
	mi := &file_wilayah_v1_wilayah_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVillagesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVillagesRequest) ProtoMessage() {}

func (x *ListVillagesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_wilayah_v1_wilayah_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVillagesRequest.ProtoReflect.Descriptor instead.
func (*ListVillagesRequest) Descriptor() ([]byte, []int) {
	return file_wilayah_v1_wilayah_proto_rawDescGZIP(), []int{7}
}

func (x *ListVillagesRequest) GetDistrictId() string {
	if x != nil {
		return x.DistrictId
	}
	return ""
}

type ListVillagesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Wilayah       []*Wilayah             `protobuf:"bytes,1,rep,name=wilayah,proto3" json:"wilayah,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVillagesResponse) Reset() {
	*x = ListVillagesResponse{}
	mi := &file_wilayah_v1_wilayah_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVillagesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVillagesResponse) ProtoMessage() {}

func (x *ListVillagesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_wilayah_v1_wilayah_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVillagesResponse.ProtoReflect.Descriptor instead.
func (*ListVillagesResponse) Descriptor() ([]byte, []int) {
	return file_wilayah_v1_wilayah_proto_rawDescGZIP(), []int{8}
}

func (x *ListVillagesResponse) GetWilayah() []*Wilayah {
	if x != nil {
		return x.Wilayah
	}
	return nil
}

var File_wilayah_v1_wilayah_proto protoreflect.FileDescriptor

const file_wilayah_v1_wilayah_proto_rawDesc = "" +
	"\n" +
	"\x18wilayah/v1/wilayah.proto\x12\n" +
	"wilayah.v1\"-\n" +
	"\aWilayah\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04nama\x18\x02 \x01(\tR\x04nama\"\x16\n" +
	"\x14ListProvincesRequest\"F\n" +
	"\x15ListProvincesResponse\x12-\n" +
	"\awilayah\x18\x01 \x03(\v2\x13.wilayah.v1.WilayahR\awilayah\"7\n" +
	"\x14ListRegenciesRequest\x12\x1f\n" +
	"\vprovince_id\x18\x01 \x01(\tR\n" +
	"provinceId\"F\n" +
	"\x15ListRegenciesResponse\x12-\n" +
	"\awilayah\x18\x01 \x03(\v2\x13.wilayah.v1.WilayahR\awilayah\"5\n" +
	"\x14ListDistrictsRequest\x12\x1d\n" +
	"\n" +
	"regency_id\x18\x01 \x01(\tR\tregencyId\"F\n" +
	"\x15ListDistrictsResponse\x12-\n" +
	"\awilayah\x18\x01 \x03(\v2\x13.wilayah.v1.WilayahR\awilayah\"6\n" +
	"\x13ListVillagesRequest\x12\x1f\n" +
	"\vdistrict_id\x18\x01 \x01(\tR\n" +
	"districtId\"E\n" +
	"\x14ListVillagesResponse\x12-\n" +
	"\awilayah\x18\x01 \x03(\v2\x13.wilayah.v1.WilayahR\awilayah2\xe5\x02\n" +
	"\x0eWilayahService\x12T\n" +
	"\rListProvinces\x12 .wilayah.v1.ListProvincesRequest\x1a!.wilayah.v1.ListProvincesResponse\x12T\n" +
	"\rListRegencies\x12 .wilayah.v1.ListRegenciesRequest\x1a!.wilayah.v1.ListRegenciesResponse\x12T\n" +
	"\rListDistricts\x12 .wilayah.v1.ListDistrictsRequest\x1a!.wilayah.v1.ListDistrictsResponse\x12Q\n" +
	"\fListVillages\x12\x1f.wilayah.v1.ListVillagesRequest\x1a .wilayah.v1.ListVillagesResponseBOZMgithub.com/bkpsdm/simpeg-grpc/internal/adapters/grpc/gen/wilayah/v1;wilayahv1b\x06proto3"

var (
	file_wilayah_v1_wilayah_proto_rawDescOnce sync.Once
	file_wilayah_v1_wilayah_proto_rawDescData []byte
)

func file_wilayah_v1_wilayah_proto_rawDescGZIP() []byte {
	file_wilayah_v1_wilayah_proto_rawDescOnce.Do(func() {
		file_wilayah_v1_wilayah_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_wilayah_v1_wilayah_proto_rawDesc), len(file_wilayah_v1_wilayah_proto_rawDesc)))
	})
	return file_wilayah_v1_wilayah_proto_rawDescData
}

var file_wilayah_v1_wilayah_proto_msgTypes = make([]protoimpl.MessageInfo, 9)
var file_wilayah_v1_wilayah_proto_goTypes = []any{
	(*Wilayah)(nil),               // 0: wilayah.v1.Wilayah
	(*ListProvincesRequest)(nil),  // 1: wilayah.v1.ListProvincesRequest
	(*ListProvincesResponse)(nil), // 2: wilayah.v1.ListProvincesResponse
	(*ListRegenciesRequest)(nil),  // 3: wilayah.v1.ListRegenciesRequest
	(*ListRegenciesResponse)(nil), // 4: wilayah.v1.ListRegenciesResponse
	(*ListDistrictsRequest)(nil),  // 5: wilayah.v1.ListDistrictsRequest
	(*ListDistrictsResponse)(nil), // 6: wilayah.v1.ListDistrictsResponse
	(*ListVillagesRequest)(nil),   // 7: wilayah.v1.ListVillagesRequest
	(*ListVillagesResponse)(nil),  // 8: wilayah.v1.ListVillagesResponse
}
var file_wilayah_v1_wilayah_proto_depIdxs = []int32{
	0, // 0: wilayah.v1.ListProvincesResponse.wilayah:type_name -> wilayah.v1.Wilayah
	0, // 1: wilayah.v1.ListRegenciesResponse.wilayah:type_name -> wilayah.v1.Wilayah
	0, // 2: wilayah.v1.ListDistrictsResponse.wilayah:type_name -> wilayah.v1.Wilayah
	0, // 3: wilayah.v1.ListVillagesResponse.wilayah:type_name -> wilayah.v1.Wilayah
	1, // 4: wilayah.v1.WilayahService.ListProvinces:input_type -> wilayah.v1.ListProvincesRequest
	3, // 5: wilayah.v1.WilayahService.ListRegencies:input_type -> wilayah.v1.ListRegenciesRequest
	5, // 6: wilayah.v1.WilayahService.ListDistricts:input_type -> wilayah.v1.ListDistrictsRequest
	7, // 7: wilayah.v1.WilayahService.ListVillages:input_type -> wilayah.v1.ListVillagesRequest
	2, // 8: wilayah.v1.WilayahService.ListProvinces:output_type -> wilayah.v1.ListProvincesResponse
	4, // 9: wilayah.v1.WilayahService.ListRegencies:output_type -> wilayah.v1.ListRegenciesResponse
	6, // 10: wilayah.v1.WilayahService.ListDistricts:output_type -> wilayah.v1.ListDistrictsResponse
	8, // 11: wilayah.v1.WilayahService.ListVillages:output_type -> wilayah.v1.ListVillagesResponse
	8, // [8:12] is the sub-list for method output_type
	4, // [4:8] is the sub-list for method input_type
	4, // [4:4] is the sub-list for extension type_name
	4, // [4:4] is the sub-list for extension extendee
	0, // [0:4] is the sub-list for field type_name
}

func init() { file_wilayah_v1_wilayah_proto_init() }
func file_wilayah_v1_wilayah_proto_init() {
	if File_wilayah_v1_wilayah_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_wilayah_v1_wilayah_proto_rawDesc), len(file_wilayah_v1_wilayah_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   9,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_wilayah_v1_wilayah_proto_goTypes,
		DependencyIndexes: file_wilayah_v1_wilayah_proto_depIdxs,
		MessageInfos:      file_wilayah_v1_wilayah_proto_msgTypes,
	}.Build()
	File_wilayah_v1_wilayah_proto = out.File
	file_wilayah_v1_wilayah_proto_goTypes = nil
	file_wilayah_v1_wilayah_proto_depIdxs = nil
}
