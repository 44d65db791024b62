// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.9
// 	protoc        (unknown)
// source: albumkeeper.proto

package proto

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

// MediaRecord is the wire form of one authoritative media record. The asset
// variant is flattened kind-discriminated: images carry width/height,
// videos carry duration_secs.
type MediaRecord struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	AlbumId        string                 `protobuf:"bytes,2,opt,name=album_id,json=albumId,proto3" json:"album_id,omitempty"`
	UploaderId     string                 `protobuf:"bytes,3,opt,name=uploader_id,json=uploaderId,proto3" json:"uploader_id,omitempty"`
	Kind           string                 `protobuf:"bytes,4,opt,name=kind,proto3" json:"kind,omitempty"`
	AssetId        string                 `protobuf:"bytes,5,opt,name=asset_id,json=assetId,proto3" json:"asset_id,omitempty"`
	Width          int32                  `protobuf:"varint,6,opt,name=width,proto3" json:"width,omitempty"`
	Height         int32                  `protobuf:"varint,7,opt,name=height,proto3" json:"height,omitempty"`
	DurationSecs   float64                `protobuf:"fixed64,8,opt,name=duration_secs,json=durationSecs,proto3" json:"duration_secs,omitempty"`
	SizeBytes      int64                  `protobuf:"varint,9,opt,name=size_bytes,json=sizeBytes,proto3" json:"size_bytes,omitempty"`
	CorrelationKey string                 `protobuf:"bytes,10,opt,name=correlation_key,json=correlationKey,proto3" json:"correlation_key,omitempty"`
	Ready          bool                   `protobuf:"varint,11,opt,name=ready,proto3" json:"ready,omitempty"`
	Deleted        bool                   `protobuf:"varint,12,opt,name=deleted,proto3" json:"deleted,omitempty"`
	CreatedAtUnix  int64                  `protobuf:"varint,13,opt,name=created_at_unix,json=createdAtUnix,proto3" json:"created_at_unix,omitempty"`
	Version        int64                  `protobuf:"varint,14,opt,name=version,proto3" json:"version,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *MediaRecord) Reset() {
	*x = MediaRecord{}
	mi := &file_albumkeeper_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MediaRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MediaRecord) ProtoMessage() {}

func (x *MediaRecord) ProtoReflect() protoreflect.Message {
	mi := &file_albumkeeper_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MediaRecord.ProtoReflect.Descriptor instead.
func (*MediaRecord) Descriptor() ([]byte, []int) {
	return file_albumkeeper_proto_rawDescGZIP(), []int{0}
}

func (x *MediaRecord) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *MediaRecord) GetAlbumId() string {
	if x != nil {
		return x.AlbumId
	}
	return ""
}

func (x *MediaRecord) GetUploaderId() string {
	if x != nil {
		return x.UploaderId
	}
	return ""
}

func (x *MediaRecord) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *MediaRecord) GetAssetId() string {
	if x != nil {
		return x.AssetId
	}
	return ""
}

func (x *MediaRecord) GetWidth() int32 {
	if x != nil {
		return x.Width
	}
	return 0
}

func (x *MediaRecord) GetHeight() int32 {
	if x != nil {
		return x.Height
	}
	return 0
}

func (x *MediaRecord) GetDurationSecs() float64 {
	if x != nil {
		return x.DurationSecs
	}
	return 0
}

func (x *MediaRecord) GetSizeBytes() int64 {
	if x != nil {
		return x.SizeBytes
	}
	return 0
}

func (x *MediaRecord) GetCorrelationKey() string {
	if x != nil {
		return x.CorrelationKey
	}
	return ""
}

func (x *MediaRecord) GetReady() bool {
	if x != nil {
		return x.Ready
	}
	return false
}

func (x *MediaRecord) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

func (x *MediaRecord) GetCreatedAtUnix() int64 {
	if x != nil {
		return x.CreatedAtUnix
	}
	return 0
}

func (x *MediaRecord) GetVersion() int64 {
	if x != nil {
		return x.Version
	}
	return 0
}

type PingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PingRequest) Reset() {
	*x = PingRequest{}
	mi := &file_albumkeeper_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PingRequest) ProtoMessage() {}

func (x *PingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_albumkeeper_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PingRequest.ProtoReflect.Descriptor instead.
func (*PingRequest) Descriptor() ([]byte, []int) {
	return file_albumkeeper_proto_rawDescGZIP(), []int{1}
}

type PingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PingResponse) Reset() {
	*x = PingResponse{}
	mi := &file_albumkeeper_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PingResponse) ProtoMessage() {}

func (x *PingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_albumkeeper_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PingResponse.ProtoReflect.Descriptor instead.
func (*PingResponse) Descriptor() ([]byte, []int) {
	return file_albumkeeper_proto_rawDescGZIP(), []int{2}
}

func (x *PingResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type CreateMediaRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	AlbumId        string                 `protobuf:"bytes,1,opt,name=album_id,json=albumId,proto3" json:"album_id,omitempty"`
	Kind           string                 `protobuf:"bytes,2,opt,name=kind,proto3" json:"kind,omitempty"`
	AssetId        string                 `protobuf:"bytes,3,opt,name=asset_id,json=assetId,proto3" json:"asset_id,omitempty"`
	Width          int32                  `protobuf:"varint,4,opt,name=width,proto3" json:"width,omitempty"`
	Height         int32                  `protobuf:"varint,5,opt,name=height,proto3" json:"height,omitempty"`
	DurationSecs   float64                `protobuf:"fixed64,6,opt,name=duration_secs,json=durationSecs,proto3" json:"duration_secs,omitempty"`
	SizeBytes      int64                  `protobuf:"varint,7,opt,name=size_bytes,json=sizeBytes,proto3" json:"size_bytes,omitempty"`
	CorrelationKey string                 `protobuf:"bytes,8,opt,name=correlation_key,json=correlationKey,proto3" json:"correlation_key,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateMediaRequest) Reset() {
	*x = CreateMediaRequest{}
	mi := &file_albumkeeper_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateMediaRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateMediaRequest) ProtoMessage() {}

func (x *CreateMediaRequest) ProtoReflect() protoreflect.Message {
	mi := &file_albumkeeper_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateMediaRequest.ProtoReflect.Descriptor instead.
func (*CreateMediaRequest) Descriptor() ([]byte, []int) {
	return file_albumkeeper_proto_rawDescGZIP(), []int{3}
}

func (x *CreateMediaRequest) GetAlbumId() string {
	if x != nil {
		return x.AlbumId
	}
	return ""
}

func (x *CreateMediaRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *CreateMediaRequest) GetAssetId() string {
	if x != nil {
		return x.AssetId
	}
	return ""
}

func (x *CreateMediaRequest) GetWidth() int32 {
	if x != nil {
		return x.Width
	}
	return 0
}

func (x *CreateMediaRequest) GetHeight() int32 {
	if x != nil {
		return x.Height
	}
	return 0
}

func (x *CreateMediaRequest) GetDurationSecs() float64 {
	if x != nil {
		return x.DurationSecs
	}
	return 0
}

func (x *CreateMediaRequest) GetSizeBytes() int64 {
	if x != nil {
		return x.SizeBytes
	}
	return 0
}

func (x *CreateMediaRequest) GetCorrelationKey() string {
	if x != nil {
		return x.CorrelationKey
	}
	return ""
}

type CreateMediaResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Record        *MediaRecord           `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateMediaResponse) Reset() {
	*x = CreateMediaResponse{}
	mi := &file_albumkeeper_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateMediaResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateMediaResponse) ProtoMessage() {}

func (x *CreateMediaResponse) ProtoReflect() protoreflect.Message {
	mi := &file_albumkeeper_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateMediaResponse.ProtoReflect.Descriptor instead.
func (*CreateMediaResponse) Descriptor() ([]byte, []int) {
	return file_albumkeeper_proto_rawDescGZIP(), []int{4}
}

func (x *CreateMediaResponse) GetRecord() *MediaRecord {
	if x != nil {
		return x.Record
	}
	return nil
}

type ListAlbumMediaRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AlbumId       string                 `protobuf:"bytes,1,opt,name=album_id,json=albumId,proto3" json:"album_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAlbumMediaRequest) Reset() {
	*x = ListAlbumMediaRequest{}
	mi := &file_albumkeeper_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAlbumMediaRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAlbumMediaRequest) ProtoMessage() {}

func (x *ListAlbumMediaRequest) ProtoReflect() protoreflect.Message {
	mi := &file_albumkeeper_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAlbumMediaRequest.ProtoReflect.Descriptor instead.
func (*ListAlbumMediaRequest) Descriptor() ([]byte, []int) {
	return file_albumkeeper_proto_rawDescGZIP(), []int{5}
}

func (x *ListAlbumMediaRequest) GetAlbumId() string {
	if x != nil {
		return x.AlbumId
	}
	return ""
}

type ListAlbumMediaResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*MediaRecord         `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAlbumMediaResponse) Reset() {
	*x = ListAlbumMediaResponse{}
	mi := &file_albumkeeper_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAlbumMediaResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAlbumMediaResponse) ProtoMessage() {}

func (x *ListAlbumMediaResponse) ProtoReflect() protoreflect.Message {
	mi := &file_albumkeeper_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAlbumMediaResponse.ProtoReflect.Descriptor instead.
func (*ListAlbumMediaResponse) Descriptor() ([]byte, []int) {
	return file_albumkeeper_proto_rawDescGZIP(), []int{6}
}

func (x *ListAlbumMediaResponse) GetRecords() []*MediaRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

type WatchAlbumRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AlbumId       string                 `protobuf:"bytes,1,opt,name=album_id,json=albumId,proto3" json:"album_id,omitempty"`
	SinceVersion  int64                  `protobuf:"varint,2,opt,name=since_version,json=sinceVersion,proto3" json:"since_version,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WatchAlbumRequest) Reset() {
	*x = WatchAlbumRequest{}
	mi := &file_albumkeeper_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WatchAlbumRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WatchAlbumRequest) ProtoMessage() {}

func (x *WatchAlbumRequest) ProtoReflect() protoreflect.Message {
	mi := &file_albumkeeper_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WatchAlbumRequest.ProtoReflect.Descriptor instead.
func (*WatchAlbumRequest) Descriptor() ([]byte, []int) {
	return file_albumkeeper_proto_rawDescGZIP(), []int{7}
}

func (x *WatchAlbumRequest) GetAlbumId() string {
	if x != nil {
		return x.AlbumId
	}
	return ""
}

func (x *WatchAlbumRequest) GetSinceVersion() int64 {
	if x != nil {
		return x.SinceVersion
	}
	return 0
}

type WatchAlbumResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*MediaRecord         `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	Version       int64                  `protobuf:"varint,2,opt,name=version,proto3" json:"version,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WatchAlbumResponse) Reset() {
	*x = WatchAlbumResponse{}
	mi := &file_albumkeeper_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WatchAlbumResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WatchAlbumResponse) ProtoMessage() {}

func (x *WatchAlbumResponse) ProtoReflect() protoreflect.Message {
	mi := &file_albumkeeper_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WatchAlbumResponse.ProtoReflect.Descriptor instead.
func (*WatchAlbumResponse) Descriptor() ([]byte, []int) {
	return file_albumkeeper_proto_rawDescGZIP(), []int{8}
}

func (x *WatchAlbumResponse) GetRecords() []*MediaRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

func (x *WatchAlbumResponse) GetVersion() int64 {
	if x != nil {
		return x.Version
	}
	return 0
}

type IssueUploadCredentialsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filenames     []string               `protobuf:"bytes,1,rep,name=filenames,proto3" json:"filenames,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IssueUploadCredentialsRequest) Reset() {
	*x = IssueUploadCredentialsRequest{}
	mi := &file_albumkeeper_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IssueUploadCredentialsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IssueUploadCredentialsRequest) ProtoMessage() {}

func (x *IssueUploadCredentialsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_albumkeeper_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IssueUploadCredentialsRequest.ProtoReflect.Descriptor instead.
func (*IssueUploadCredentialsRequest) Descriptor() ([]byte, []int) {
	return file_albumkeeper_proto_rawDescGZIP(), []int{9}
}

func (x *IssueUploadCredentialsRequest) GetFilenames() []string {
	if x != nil {
		return x.Filenames
	}
	return nil
}

type UploadCredential struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AssetId       string                 `protobuf:"bytes,1,opt,name=asset_id,json=assetId,proto3" json:"asset_id,omitempty"`
	UploadUrl     string                 `protobuf:"bytes,2,opt,name=upload_url,json=uploadUrl,proto3" json:"upload_url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadCredential) Reset() {
	*x = UploadCredential{}
	mi := &file_albumkeeper_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadCredential) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadCredential) ProtoMessage() {}

func (x *UploadCredential) ProtoReflect() protoreflect.Message {
	mi := &file_albumkeeper_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadCredential.ProtoReflect.Descriptor instead.
func (*UploadCredential) Descriptor() ([]byte, []int) {
	return file_albumkeeper_proto_rawDescGZIP(), []int{10}
}

func (x *UploadCredential) GetAssetId() string {
	if x != nil {
		return x.AssetId
	}
	return ""
}

func (x *UploadCredential) GetUploadUrl() string {
	if x != nil {
		return x.UploadUrl
	}
	return ""
}

type IssueUploadCredentialsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Credentials   []*UploadCredential    `protobuf:"bytes,1,rep,name=credentials,proto3" json:"credentials,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IssueUploadCredentialsResponse) Reset() {
	*x = IssueUploadCredentialsResponse{}
	mi := &file_albumkeeper_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IssueUploadCredentialsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IssueUploadCredentialsResponse) ProtoMessage() {}

func (x *IssueUploadCredentialsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_albumkeeper_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IssueUploadCredentialsResponse.ProtoReflect.Descriptor instead.
func (*IssueUploadCredentialsResponse) Descriptor() ([]byte, []int) {
	return file_albumkeeper_proto_rawDescGZIP(), []int{11}
}

func (x *IssueUploadCredentialsResponse) GetCredentials() []*UploadCredential {
	if x != nil {
		return x.Credentials
	}
	return nil
}

type SignImageURLRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ImageId       string                 `protobuf:"bytes,1,opt,name=image_id,json=imageId,proto3" json:"image_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SignImageURLRequest) Reset() {
	*x = SignImageURLRequest{}
	mi := &file_albumkeeper_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SignImageURLRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SignImageURLRequest) ProtoMessage() {}

func (x *SignImageURLRequest) ProtoReflect() protoreflect.Message {
	mi := &file_albumkeeper_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SignImageURLRequest.ProtoReflect.Descriptor instead.
func (*SignImageURLRequest) Descriptor() ([]byte, []int) {
	return file_albumkeeper_proto_rawDescGZIP(), []int{12}
}

func (x *SignImageURLRequest) GetImageId() string {
	if x != nil {
		return x.ImageId
	}
	return ""
}

type SignImageURLResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Url           string                 `protobuf:"bytes,1,opt,name=url,proto3" json:"url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SignImageURLResponse) Reset() {
	*x = SignImageURLResponse{}
	mi := &file_albumkeeper_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SignImageURLResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SignImageURLResponse) ProtoMessage() {}

func (x *SignImageURLResponse) ProtoReflect() protoreflect.Message {
	mi := &file_albumkeeper_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SignImageURLResponse.ProtoReflect.Descriptor instead.
func (*SignImageURLResponse) Descriptor() ([]byte, []int) {
	return file_albumkeeper_proto_rawDescGZIP(), []int{13}
}

func (x *SignImageURLResponse) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

type SignVideoTokenRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VideoUid      string                 `protobuf:"bytes,1,opt,name=video_uid,json=videoUid,proto3" json:"video_uid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SignVideoTokenRequest) Reset() {
	*x = SignVideoTokenRequest{}
	mi := &file_albumkeeper_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SignVideoTokenRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SignVideoTokenRequest) ProtoMessage() {}

func (x *SignVideoTokenRequest) ProtoReflect() protoreflect.Message {
	mi := &file_albumkeeper_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SignVideoTokenRequest.ProtoReflect.Descriptor instead.
func (*SignVideoTokenRequest) Descriptor() ([]byte, []int) {
	return file_albumkeeper_proto_rawDescGZIP(), []int{14}
}

func (x *SignVideoTokenRequest) GetVideoUid() string {
	if x != nil {
		return x.VideoUid
	}
	return ""
}

type SignVideoTokenResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Token         string                 `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SignVideoTokenResponse) Reset() {
	*x = SignVideoTokenResponse{}
	mi := &file_albumkeeper_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SignVideoTokenResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SignVideoTokenResponse) ProtoMessage() {}

func (x *SignVideoTokenResponse) ProtoReflect() protoreflect.Message {
	mi := &file_albumkeeper_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SignVideoTokenResponse.ProtoReflect.Descriptor instead.
func (*SignVideoTokenResponse) Descriptor() ([]byte, []int) {
	return file_albumkeeper_proto_rawDescGZIP(), []int{15}
}

func (x *SignVideoTokenResponse) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

type DeleteMediaRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AlbumId       string                 `protobuf:"bytes,1,opt,name=album_id,json=albumId,proto3" json:"album_id,omitempty"`
	Id            string                 `protobuf:"bytes,2,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteMediaRequest) Reset() {
	*x = DeleteMediaRequest{}
	mi := &file_albumkeeper_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteMediaRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteMediaRequest) ProtoMessage() {}

func (x *DeleteMediaRequest) ProtoReflect() protoreflect.Message {
	mi := &file_albumkeeper_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteMediaRequest.ProtoReflect.Descriptor instead.
func (*DeleteMediaRequest) Descriptor() ([]byte, []int) {
	return file_albumkeeper_proto_rawDescGZIP(), []int{16}
}

func (x *DeleteMediaRequest) GetAlbumId() string {
	if x != nil {
		return x.AlbumId
	}
	return ""
}

func (x *DeleteMediaRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteMediaResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteMediaResponse) Reset() {
	*x = DeleteMediaResponse{}
	mi := &file_albumkeeper_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteMediaResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteMediaResponse) ProtoMessage() {}

func (x *DeleteMediaResponse) ProtoReflect() protoreflect.Message {
	mi := &file_albumkeeper_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteMediaResponse.ProtoReflect.Descriptor instead.
func (*DeleteMediaResponse) Descriptor() ([]byte, []int) {
	return file_albumkeeper_proto_rawDescGZIP(), []int{17}
}

var File_albumkeeper_proto protoreflect.FileDescriptor

const file_albumkeeper_proto_rawDesc = "" +
	"\n" +
	"\x11albumkeeper.proto\x12\x13albumkeeper.service\"\x95\x03\n" +
	"\vMediaRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\balbum_id\x18\x02 \x01(\tR\aalbumId\x12\x1f\n" +
	"\vuploader_id\x18\x03 \x01(\tR\n" +
	"uploaderId\x12\x12\n" +
	"\x04kind\x18\x04 \x01(\tR\x04kind\x12\x19\n" +
	"\basset_id\x18\x05 \x01(\tR\aassetId\x12\x14\n" +
	"\x05width\x18\x06 \x01(\x05R\x05width\x12\x16\n" +
	"\x06height\x18\a \x01(\x05R\x06height\x12#\n" +
	"\rduration_secs\x18\b \x01(\x01R\fdurationSecs\x12\x1d\n" +
	"\n" +
	"size_bytes\x18\t \x01(\x03R\tsizeBytes\x12'\n" +
	"\x0fcorrelation_key\x18\n" +
	" \x01(\tR\x0ecorrelationKey\x12\x14\n" +
	"\x05ready\x18\v \x01(\bR\x05ready\x12\x18\n" +
	"\adeleted\x18\f \x01(\bR\adeleted\x12&\n" +
	"\x0fcreated_at_unix\x18\r \x01(\x03R\rcreatedAtUnix\x12\x18\n" +
	"\aversion\x18\x0e \x01(\x03R\aversion\"\r\n" +
	"\vPingRequest\"&\n" +
	"\fPingResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\"\xf9\x01\n" +
	"\x12CreateMediaRequest\x12\x19\n" +
	"\balbum_id\x18\x01 \x01(\tR\aalbumId\x12\x12\n" +
	"\x04kind\x18\x02 \x01(\tR\x04kind\x12\x19\n" +
	"\basset_id\x18\x03 \x01(\tR\aassetId\x12\x14\n" +
	"\x05width\x18\x04 \x01(\x05R\x05width\x12\x16\n" +
	"\x06height\x18\x05 \x01(\x05R\x06height\x12#\n" +
	"\rduration_secs\x18\x06 \x01(\x01R\fdurationSecs\x12\x1d\n" +
	"\n" +
	"size_bytes\x18\a \x01(\x03R\tsizeBytes\x12'\n" +
	"\x0fcorrelation_key\x18\b \x01(\tR\x0ecorrelationKey\"O\n" +
	"\x13CreateMediaResponse\x128\n" +
	"\x06record\x18\x01 \x01(\v2 .albumkeeper.service.MediaRecordR\x06record\"2\n" +
	"\x15ListAlbumMediaRequest\x12\x19\n" +
	"\balbum_id\x18\x01 \x01(\tR\aalbumId\"T\n" +
	"\x16ListAlbumMediaResponse\x12:\n" +
	"\arecords\x18\x01 \x03(\v2 .albumkeeper.service.MediaRecordR\arecords\"S\n" +
	"\x11WatchAlbumRequest\x12\x19\n" +
	"\balbum_id\x18\x01 \x01(\tR\aalbumId\x12#\n" +
	"\rsince_version\x18\x02 \x01(\x03R\fsinceVersion\"j\n" +
	"\x12WatchAlbumResponse\x12:\n" +
	"\arecords\x18\x01 \x03(\v2 .albumkeeper.service.MediaRecordR\arecords\x12\x18\n" +
	"\aversion\x18\x02 \x01(\x03R\aversion\"=\n" +
	"\x1dIssueUploadCredentialsRequest\x12\x1c\n" +
	"\tfilenames\x18\x01 \x03(\tR\tfilenames\"L\n" +
	"\x10UploadCredential\x12\x19\n" +
	"\basset_id\x18\x01 \x01(\tR\aassetId\x12\x1d\n" +
	"\n" +
	"upload_url\x18\x02 \x01(\tR\tuploadUrl\"i\n" +
	"\x1eIssueUploadCredentialsResponse\x12G\n" +
	"\vcredentials\x18\x01 \x03(\v2%.albumkeeper.service.UploadCredentialR\vcredentials\"0\n" +
	"\x13SignImageURLRequest\x12\x19\n" +
	"\bimage_id\x18\x01 \x01(\tR\aimageId\"(\n" +
	"\x14SignImageURLResponse\x12\x10\n" +
	"\x03url\x18\x01 \x01(\tR\x03url\"4\n" +
	"\x15SignVideoTokenRequest\x12\x1b\n" +
	"\tvideo_uid\x18\x01 \x01(\tR\bvideoUid\".\n" +
	"\x16SignVideoTokenResponse\x12\x14\n" +
	"\x05token\x18\x01 \x01(\tR\x05token\"?\n" +
	"\x12DeleteMediaRequest\x12\x19\n" +
	"\balbum_id\x18\x01 \x01(\tR\aalbumId\x12\x0e\n" +
	"\x02id\x18\x02 \x01(\tR\x02id\"\x15\n" +
	"\x13DeleteMediaResponse2\xc5\x06\n" +
	"\x12AlbumKeeperService\x12K\n" +
	"\x04Ping\x12 .albumkeeper.service.PingRequest\x1a!.albumkeeper.service.PingResponse\x12`\n" +
	"\vCreateMedia\x12'.albumkeeper.service.CreateMediaRequest\x1a(.albumkeeper.service.CreateMediaResponse\x12i\n" +
	"\x0eListAlbumMedia\x12*.albumkeeper.service.ListAlbumMediaRequest\x1a+.albumkeeper.service.ListAlbumMediaResponse\x12_\n" +
	"\n" +
	"WatchAlbum\x12&.albumkeeper.service.WatchAlbumRequest\x1a'.albumkeeper.service.WatchAlbumResponse0\x01\x12\x81\x01\n" +
	"\x16IssueUploadCredentials\x122.albumkeeper.service.IssueUploadCredentialsRequest\x1a3.albumkeeper.service.IssueUploadCredentialsResponse\x12c\n" +
	"\fSignImageURL\x12(.albumkeeper.service.SignImageURLRequest\x1a).albumkeeper.service.SignImageURLResponse\x12i\n" +
	"\x0eSignVideoToken\x12*.albumkeeper.service.SignVideoTokenRequest\x1a+.albumkeeper.service.SignVideoTokenResponse\x12`\n" +
	"\vDeleteMedia\x12'.albumkeeper.service.DeleteMediaRequest\x1a(.albumkeeper.service.DeleteMediaResponseB4Z2github.com/dmitrijs2005/albumkeeper/internal/protob\x06proto3"

var (
	file_albumkeeper_proto_rawDescOnce sync.Once
	file_albumkeeper_proto_rawDescData []byte
)

func file_albumkeeper_proto_rawDescGZIP() []byte {
	file_albumkeeper_proto_rawDescOnce.Do(func() {
		file_albumkeeper_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_albumkeeper_proto_rawDesc), len(file_albumkeeper_proto_rawDesc)))
	})
	return file_albumkeeper_proto_rawDescData
}

var file_albumkeeper_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_albumkeeper_proto_goTypes = []any{
	(*MediaRecord)(nil),                    // 0: albumkeeper.service.MediaRecord
	(*PingRequest)(nil),                    // 1: albumkeeper.service.PingRequest
	(*PingResponse)(nil),                   // 2: albumkeeper.service.PingResponse
	(*CreateMediaRequest)(nil),             // 3: albumkeeper.service.CreateMediaRequest
	(*CreateMediaResponse)(nil),            // 4: albumkeeper.service.CreateMediaResponse
	(*ListAlbumMediaRequest)(nil),          // 5: albumkeeper.service.ListAlbumMediaRequest
	(*ListAlbumMediaResponse)(nil),         // 6: albumkeeper.service.ListAlbumMediaResponse
	(*WatchAlbumRequest)(nil),              // 7: albumkeeper.service.WatchAlbumRequest
	(*WatchAlbumResponse)(nil),             // 8: albumkeeper.service.WatchAlbumResponse
	(*IssueUploadCredentialsRequest)(nil),  // 9: albumkeeper.service.IssueUploadCredentialsRequest
	(*UploadCredential)(nil),               // 10: albumkeeper.service.UploadCredential
	(*IssueUploadCredentialsResponse)(nil), // 11: albumkeeper.service.IssueUploadCredentialsResponse
	(*SignImageURLRequest)(nil),            // 12: albumkeeper.service.SignImageURLRequest
	(*SignImageURLResponse)(nil),           // 13: albumkeeper.service.SignImageURLResponse
	(*SignVideoTokenRequest)(nil),          // 14: albumkeeper.service.SignVideoTokenRequest
	(*SignVideoTokenResponse)(nil),         // 15: albumkeeper.service.SignVideoTokenResponse
	(*DeleteMediaRequest)(nil),             // 16: albumkeeper.service.DeleteMediaRequest
	(*DeleteMediaResponse)(nil),            // 17: albumkeeper.service.DeleteMediaResponse
}
var file_albumkeeper_proto_depIdxs = []int32{
	0,  // 0: albumkeeper.service.CreateMediaResponse.record:type_name -> albumkeeper.service.MediaRecord
	0,  // 1: albumkeeper.service.ListAlbumMediaResponse.records:type_name -> albumkeeper.service.MediaRecord
	0,  // 2: albumkeeper.service.WatchAlbumResponse.records:type_name -> albumkeeper.service.MediaRecord
	10, // 3: albumkeeper.service.IssueUploadCredentialsResponse.credentials:type_name -> albumkeeper.service.UploadCredential
	1,  // 4: albumkeeper.service.AlbumKeeperService.Ping:input_type -> albumkeeper.service.PingRequest
	3,  // 5: albumkeeper.service.AlbumKeeperService.CreateMedia:input_type -> albumkeeper.service.CreateMediaRequest
	5,  // 6: albumkeeper.service.AlbumKeeperService.ListAlbumMedia:input_type -> albumkeeper.service.ListAlbumMediaRequest
	7,  // 7: albumkeeper.service.AlbumKeeperService.WatchAlbum:input_type -> albumkeeper.service.WatchAlbumRequest
	9,  // 8: albumkeeper.service.AlbumKeeperService.IssueUploadCredentials:input_type -> albumkeeper.service.IssueUploadCredentialsRequest
	12, // 9: albumkeeper.service.AlbumKeeperService.SignImageURL:input_type -> albumkeeper.service.SignImageURLRequest
	14, // 10: albumkeeper.service.AlbumKeeperService.SignVideoToken:input_type -> albumkeeper.service.SignVideoTokenRequest
	16, // 11: albumkeeper.service.AlbumKeeperService.DeleteMedia:input_type -> albumkeeper.service.DeleteMediaRequest
	2,  // 12: albumkeeper.service.AlbumKeeperService.Ping:output_type -> albumkeeper.service.PingResponse
	4,  // 13: albumkeeper.service.AlbumKeeperService.CreateMedia:output_type -> albumkeeper.service.CreateMediaResponse
	6,  // 14: albumkeeper.service.AlbumKeeperService.ListAlbumMedia:output_type -> albumkeeper.service.ListAlbumMediaResponse
	8,  // 15: albumkeeper.service.AlbumKeeperService.WatchAlbum:output_type -> albumkeeper.service.WatchAlbumResponse
	11, // 16: albumkeeper.service.AlbumKeeperService.IssueUploadCredentials:output_type -> albumkeeper.service.IssueUploadCredentialsResponse
	13, // 17: albumkeeper.service.AlbumKeeperService.SignImageURL:output_type -> albumkeeper.service.SignImageURLResponse
	15, // 18: albumkeeper.service.AlbumKeeperService.SignVideoToken:output_type -> albumkeeper.service.SignVideoTokenResponse
	17, // 19: albumkeeper.service.AlbumKeeperService.DeleteMedia:output_type -> albumkeeper.service.DeleteMediaResponse
	12, // [12:20] is the sub-list for method output_type
	4,  // [4:12] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_albumkeeper_proto_init() }
func file_albumkeeper_proto_init() {
	if File_albumkeeper_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_albumkeeper_proto_rawDesc), len(file_albumkeeper_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_albumkeeper_proto_goTypes,
		DependencyIndexes: file_albumkeeper_proto_depIdxs,
		MessageInfos:      file_albumkeeper_proto_msgTypes,
	}.Build()
	File_albumkeeper_proto = out.File
	file_albumkeeper_proto_goTypes = nil
	file_albumkeeper_proto_depIdxs = nil
}
