// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: reviews/v1/reviews.proto

package reviewsv1

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

type Review struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId      string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Status          string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	ConfidenceScore float64                `protobuf:"fixed64,4,opt,name=confidence_score,json=confidenceScore,proto3" json:"confidence_score,omitempty"`
	ExtractionNotes string                 `protobuf:"bytes,5,opt,name=extraction_notes,json=extractionNotes,proto3" json:"extraction_notes,omitempty"`
	AutoExtracted   map[string]string      `protobuf:"bytes,6,rep,name=auto_extracted,json=autoExtracted,proto3" json:"auto_extracted,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	ReviewedFields  map[string]string      `protobuf:"bytes,7,rep,name=reviewed_fields,json=reviewedFields,proto3" json:"reviewed_fields,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	ReviewerId      string                 `protobuf:"bytes,8,opt,name=reviewer_id,json=reviewerId,proto3" json:"reviewer_id,omitempty"`
	AssignedAt      string                 `protobuf:"bytes,9,opt,name=assigned_at,json=assignedAt,proto3" json:"assigned_at,omitempty"`
	ReviewedAt      string                 `protobuf:"bytes,10,opt,name=reviewed_at,json=reviewedAt,proto3" json:"reviewed_at,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Review) Reset() {
	*x = Review{}
	mi := &file_reviews_v1_reviews_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Review) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Review) ProtoMessage() {}

func (x *Review) ProtoReflect() protoreflect.Message {
	mi := &file_reviews_v1_reviews_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Review.ProtoReflect.Descriptor instead.
func (*Review) Descriptor() ([]byte, []int) {
	return file_reviews_v1_reviews_proto_rawDescGZIP(), []int{0}
}

func (x *Review) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Review) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *Review) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Review) GetConfidenceScore() float64 {
	if x != nil {
		return x.ConfidenceScore
	}
	return 0
}

func (x *Review) GetExtractionNotes() string {
	if x != nil {
		return x.ExtractionNotes
	}
	return ""
}

func (x *Review) GetAutoExtracted() map[string]string {
	if x != nil {
		return x.AutoExtracted
	}
	return nil
}

func (x *Review) GetReviewedFields() map[string]string {
	if x != nil {
		return x.ReviewedFields
	}
	return nil
}

func (x *Review) GetReviewerId() string {
	if x != nil {
		return x.ReviewerId
	}
	return ""
}

func (x *Review) GetAssignedAt() string {
	if x != nil {
		return x.AssignedAt
	}
	return ""
}

func (x *Review) GetReviewedAt() string {
	if x != nil {
		return x.ReviewedAt
	}
	return ""
}

func (x *Review) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ListPendingReviewsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPendingReviewsRequest) Reset() {
	*x = ListPendingReviewsRequest{}
	mi := &file_reviews_v1_reviews_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPendingReviewsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPendingReviewsRequest) ProtoMessage() {}

func (x *ListPendingReviewsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_reviews_v1_reviews_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPendingReviewsRequest.ProtoReflect.Descriptor instead.
func (*ListPendingReviewsRequest) Descriptor() ([]byte, []int) {
	return file_reviews_v1_reviews_proto_rawDescGZIP(), []int{1}
}

func (x *ListPendingReviewsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListPendingReviewsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reviews       []*Review              `protobuf:"bytes,1,rep,name=reviews,proto3" json:"reviews,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPendingReviewsResponse) Reset() {
	*x = ListPendingReviewsResponse{}
	mi := &file_reviews_v1_reviews_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPendingReviewsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPendingReviewsResponse) ProtoMessage() {}

func (x *ListPendingReviewsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_reviews_v1_reviews_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPendingReviewsResponse.ProtoReflect.Descriptor instead.
func (*ListPendingReviewsResponse) Descriptor() ([]byte, []int) {
	return file_reviews_v1_reviews_proto_rawDescGZIP(), []int{2}
}

func (x *ListPendingReviewsResponse) GetReviews() []*Review {
	if x != nil {
		return x.Reviews
	}
	return nil
}

type GetReviewRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReviewId      string                 `protobuf:"bytes,1,opt,name=review_id,json=reviewId,proto3" json:"review_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReviewRequest) Reset() {
	*x = GetReviewRequest{}
	mi := &file_reviews_v1_reviews_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReviewRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReviewRequest) ProtoMessage() {}

func (x *GetReviewRequest) ProtoReflect() protoreflect.Message {
	mi := &file_reviews_v1_reviews_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReviewRequest.ProtoReflect.Descriptor instead.
func (*GetReviewRequest) Descriptor() ([]byte, []int) {
	return file_reviews_v1_reviews_proto_rawDescGZIP(), []int{3}
}

func (x *GetReviewRequest) GetReviewId() string {
	if x != nil {
		return x.ReviewId
	}
	return ""
}

type GetReviewResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Review        *Review                `protobuf:"bytes,1,opt,name=review,proto3" json:"review,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReviewResponse) Reset() {
	*x = GetReviewResponse{}
	mi := &file_reviews_v1_reviews_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReviewResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReviewResponse) ProtoMessage() {}

func (x *GetReviewResponse) ProtoReflect() protoreflect.Message {
	mi := &file_reviews_v1_reviews_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReviewResponse.ProtoReflect.Descriptor instead.
func (*GetReviewResponse) Descriptor() ([]byte, []int) {
	return file_reviews_v1_reviews_proto_rawDescGZIP(), []int{4}
}

func (x *GetReviewResponse) GetReview() *Review {
	if x != nil {
		return x.Review
	}
	return nil
}

type AssignReviewRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReviewId      string                 `protobuf:"bytes,1,opt,name=review_id,json=reviewId,proto3" json:"review_id,omitempty"`
	ReviewerId    string                 `protobuf:"bytes,2,opt,name=reviewer_id,json=reviewerId,proto3" json:"reviewer_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AssignReviewRequest) Reset() {
	*x = AssignReviewRequest{}
	mi := &file_reviews_v1_reviews_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AssignReviewRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssignReviewRequest) ProtoMessage() {}

func (x *AssignReviewRequest) ProtoReflect() protoreflect.Message {
	mi := &file_reviews_v1_reviews_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssignReviewRequest.ProtoReflect.Descriptor instead.
func (*AssignReviewRequest) Descriptor() ([]byte, []int) {
	return file_reviews_v1_reviews_proto_rawDescGZIP(), []int{5}
}

func (x *AssignReviewRequest) GetReviewId() string {
	if x != nil {
		return x.ReviewId
	}
	return ""
}

func (x *AssignReviewRequest) GetReviewerId() string {
	if x != nil {
		return x.ReviewerId
	}
	return ""
}

type AssignReviewResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AssignReviewResponse) Reset() {
	*x = AssignReviewResponse{}
	mi := &file_reviews_v1_reviews_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AssignReviewResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssignReviewResponse) ProtoMessage() {}

func (x *AssignReviewResponse) ProtoReflect() protoreflect.Message {
	mi := &file_reviews_v1_reviews_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssignReviewResponse.ProtoReflect.Descriptor instead.
func (*AssignReviewResponse) Descriptor() ([]byte, []int) {
	return file_reviews_v1_reviews_proto_rawDescGZIP(), []int{6}
}

type CompleteReviewRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ReviewId       string                 `protobuf:"bytes,1,opt,name=review_id,json=reviewId,proto3" json:"review_id,omitempty"`
	ReviewedFields map[string]string      `protobuf:"bytes,2,rep,name=reviewed_fields,json=reviewedFields,proto3" json:"reviewed_fields,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Notes          string                 `protobuf:"bytes,3,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CompleteReviewRequest) Reset() {
	*x = CompleteReviewRequest{}
	mi := &file_reviews_v1_reviews_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteReviewRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteReviewRequest) ProtoMessage() {}

func (x *CompleteReviewRequest) ProtoReflect() protoreflect.Message {
	mi := &file_reviews_v1_reviews_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteReviewRequest.ProtoReflect.Descriptor instead.
func (*CompleteReviewRequest) Descriptor() ([]byte, []int) {
	return file_reviews_v1_reviews_proto_rawDescGZIP(), []int{7}
}

func (x *CompleteReviewRequest) GetReviewId() string {
	if x != nil {
		return x.ReviewId
	}
	return ""
}

func (x *CompleteReviewRequest) GetReviewedFields() map[string]string {
	if x != nil {
		return x.ReviewedFields
	}
	return nil
}

func (x *CompleteReviewRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type CompleteReviewResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteReviewResponse) Reset() {
	*x = CompleteReviewResponse{}
	mi := &file_reviews_v1_reviews_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteReviewResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteReviewResponse) ProtoMessage() {}

func (x *CompleteReviewResponse) ProtoReflect() protoreflect.Message {
	mi := &file_reviews_v1_reviews_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteReviewResponse.ProtoReflect.Descriptor instead.
func (*CompleteReviewResponse) Descriptor() ([]byte, []int) {
	return file_reviews_v1_reviews_proto_rawDescGZIP(), []int{8}
}

type SkipReviewRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReviewId      string                 `protobuf:"bytes,1,opt,name=review_id,json=reviewId,proto3" json:"review_id,omitempty"`
	Notes         string                 `protobuf:"bytes,2,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SkipReviewRequest) Reset() {
	*x = SkipReviewRequest{}
	mi := &file_reviews_v1_reviews_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SkipReviewRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SkipReviewRequest) ProtoMessage() {}

func (x *SkipReviewRequest) ProtoReflect() protoreflect.Message {
	mi := &file_reviews_v1_reviews_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SkipReviewRequest.ProtoReflect.Descriptor instead.
func (*SkipReviewRequest) Descriptor() ([]byte, []int) {
	return file_reviews_v1_reviews_proto_rawDescGZIP(), []int{9}
}

func (x *SkipReviewRequest) GetReviewId() string {
	if x != nil {
		return x.ReviewId
	}
	return ""
}

func (x *SkipReviewRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type SkipReviewResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SkipReviewResponse) Reset() {
	*x = SkipReviewResponse{}
	mi := &file_reviews_v1_reviews_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SkipReviewResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SkipReviewResponse) ProtoMessage() {}

func (x *SkipReviewResponse) ProtoReflect() protoreflect.Message {
	mi := &file_reviews_v1_reviews_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SkipReviewResponse.ProtoReflect.Descriptor instead.
func (*SkipReviewResponse) Descriptor() ([]byte, []int) {
	return file_reviews_v1_reviews_proto_rawDescGZIP(), []int{10}
}

var File_reviews_v1_reviews_proto protoreflect.FileDescriptor

const file_reviews_v1_reviews_proto_rawDesc = "" +
	"\n" +
	"\x18reviews/v1/reviews.proto\x12\n" +
	"reviews.v1\"\xcd\x04\n" +
	"\x06Review\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12)\n" +
	"\x10confidence_score\x18\x04 \x01(\x01R\x0fconfidenceScore\x12)\n" +
	"\x10extraction_notes\x18\x05 \x01(\tR\x0fextractionNotes\x12L\n" +
	"\x0eauto_extracted\x18\x06 \x03(\v2%.reviews.v1.Review.AutoExtractedEntryR\rautoExtracted\x12O\n" +
	"\x0freviewed_fields\x18\a \x03(\v2&.reviews.v1.Review.ReviewedFieldsEntryR\x0ereviewedFields\x12\x1f\n" +
	"\vreviewer_id\x18\b \x01(\tR\n" +
	"reviewerId\x12\x1f\n" +
	"\vassigned_at\x18\t \x01(\tR\n" +
	"assignedAt\x12\x1f\n" +
	"\vreviewed_at\x18\n" +
	" \x01(\tR\n" +
	"reviewedAt\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\x1a@\n" +
	"\x12AutoExtractedEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\x1aA\n" +
	"\x13ReviewedFieldsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"1\n" +
	"\x19ListPendingReviewsRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\"J\n" +
	"\x1aListPendingReviewsResponse\x12,\n" +
	"\areviews\x18\x01 \x03(\v2\x12.reviews.v1.ReviewR\areviews\"/\n" +
	"\x10GetReviewRequest\x12\x1b\n" +
	"\treview_id\x18\x01 \x01(\tR\breviewId\"?\n" +
	"\x11GetReviewResponse\x12*\n" +
	"\x06review\x18\x01 \x01(\v2\x12.reviews.v1.ReviewR\x06review\"S\n" +
	"\x13AssignReviewRequest\x12\x1b\n" +
	"\treview_id\x18\x01 \x01(\tR\breviewId\x12\x1f\n" +
	"\vreviewer_id\x18\x02 \x01(\tR\n" +
	"reviewerId\"\x16\n" +
	"\x14AssignReviewResponse\"\xed\x01\n" +
	"\x15CompleteReviewRequest\x12\x1b\n" +
	"\treview_id\x18\x01 \x01(\tR\breviewId\x12^\n" +
	"\x0freviewed_fields\x18\x02 \x03(\v25.reviews.v1.CompleteReviewRequest.ReviewedFieldsEntryR\x0ereviewedFields\x12\x14\n" +
	"\x05notes\x18\x03 \x01(\tR\x05notes\x1aA\n" +
	"\x13ReviewedFieldsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\x18\n" +
	"\x16CompleteReviewResponse\"F\n" +
	"\x11SkipReviewRequest\x12\x1b\n" +
	"\treview_id\x18\x01 \x01(\tR\breviewId\x12\x14\n" +
	"\x05notes\x18\x02 \x01(\tR\x05notes\"\x14\n" +
	"\x12SkipReviewResponse2\xb8\x03\n" +
	"\x0eReviewsService\x12c\n" +
	"\x12ListPendingReviews\x12%.reviews.v1.ListPendingReviewsRequest\x1a&.reviews.v1.ListPendingReviewsResponse\x12H\n" +
	"\tGetReview\x12\x1c.reviews.v1.GetReviewRequest\x1a\x1d.reviews.v1.GetReviewResponse\x12Q\n" +
	"\fAssignReview\x12\x1f.reviews.v1.AssignReviewRequest\x1a .reviews.v1.AssignReviewResponse\x12W\n" +
	"\x0eCompleteReview\x12!.reviews.v1.CompleteReviewRequest\x1a\".reviews.v1.CompleteReviewResponse\x12K\n" +
	"\n" +
	"SkipReview\x12\x1d.reviews.v1.SkipReviewRequest\x1a\x1e.reviews.v1.SkipReviewResponseBDZBgithub.com/Ajauregui69/livo-backend/gen/proto/reviews/v1;reviewsv1b\x06proto3"

var (
	file_reviews_v1_reviews_proto_rawDescOnce sync.Once
	file_reviews_v1_reviews_proto_rawDescData []byte
)

func file_reviews_v1_reviews_proto_rawDescGZIP() []byte {
	file_reviews_v1_reviews_proto_rawDescOnce.Do(func() {
		file_reviews_v1_reviews_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_reviews_v1_reviews_proto_rawDesc), len(file_reviews_v1_reviews_proto_rawDesc)))
	})
	return file_reviews_v1_reviews_proto_rawDescData
}

var file_reviews_v1_reviews_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_reviews_v1_reviews_proto_goTypes = []any{
	(*Review)(nil),                     // 0: reviews.v1.Review
	(*ListPendingReviewsRequest)(nil),  // 1: reviews.v1.ListPendingReviewsRequest
	(*ListPendingReviewsResponse)(nil), // 2: reviews.v1.ListPendingReviewsResponse
	(*GetReviewRequest)(nil),           // 3: reviews.v1.GetReviewRequest
	(*GetReviewResponse)(nil),          // 4: reviews.v1.GetReviewResponse
	(*AssignReviewRequest)(nil),        // 5: reviews.v1.AssignReviewRequest
	(*AssignReviewResponse)(nil),       // 6: reviews.v1.AssignReviewResponse
	(*CompleteReviewRequest)(nil),      // 7: reviews.v1.CompleteReviewRequest
	(*CompleteReviewResponse)(nil),     // 8: reviews.v1.CompleteReviewResponse
	(*SkipReviewRequest)(nil),          // 9: reviews.v1.SkipReviewRequest
	(*SkipReviewResponse)(nil),         // 10: reviews.v1.SkipReviewResponse
	nil,                                // 11: reviews.v1.Review.AutoExtractedEntry
	nil,                                // 12: reviews.v1.Review.ReviewedFieldsEntry
	nil,                                // 13: reviews.v1.CompleteReviewRequest.ReviewedFieldsEntry
}
var file_reviews_v1_reviews_proto_depIdxs = []int32{
	11, // 0: reviews.v1.Review.auto_extracted:type_name -> reviews.v1.Review.AutoExtractedEntry
	12, // 1: reviews.v1.Review.reviewed_fields:type_name -> reviews.v1.Review.ReviewedFieldsEntry
	0,  // 2: reviews.v1.ListPendingReviewsResponse.reviews:type_name -> reviews.v1.Review
	0,  // 3: reviews.v1.GetReviewResponse.review:type_name -> reviews.v1.Review
	13, // 4: reviews.v1.CompleteReviewRequest.reviewed_fields:type_name -> reviews.v1.CompleteReviewRequest.ReviewedFieldsEntry
	1,  // 5: reviews.v1.ReviewsService.ListPendingReviews:input_type -> reviews.v1.ListPendingReviewsRequest
	3,  // 6: reviews.v1.ReviewsService.GetReview:input_type -> reviews.v1.GetReviewRequest
	5,  // 7: reviews.v1.ReviewsService.AssignReview:input_type -> reviews.v1.AssignReviewRequest
	7,  // 8: reviews.v1.ReviewsService.CompleteReview:input_type -> reviews.v1.CompleteReviewRequest
	9,  // 9: reviews.v1.ReviewsService.SkipReview:input_type -> reviews.v1.SkipReviewRequest
	2,  // 10: reviews.v1.ReviewsService.ListPendingReviews:output_type -> reviews.v1.ListPendingReviewsResponse
	4,  // 11: reviews.v1.ReviewsService.GetReview:output_type -> reviews.v1.GetReviewResponse
	6,  // 12: reviews.v1.ReviewsService.AssignReview:output_type -> reviews.v1.AssignReviewResponse
	8,  // 13: reviews.v1.ReviewsService.CompleteReview:output_type -> reviews.v1.CompleteReviewResponse
	10, // 14: reviews.v1.ReviewsService.SkipReview:output_type -> reviews.v1.SkipReviewResponse
	10, // [10:15] is the sub-list for method output_type
	5,  // [5:10] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_reviews_v1_reviews_proto_init() }
func file_reviews_v1_reviews_proto_init() {
	if File_reviews_v1_reviews_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_reviews_v1_reviews_proto_rawDesc), len(file_reviews_v1_reviews_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_reviews_v1_reviews_proto_goTypes,
		DependencyIndexes: file_reviews_v1_reviews_proto_depIdxs,
		MessageInfos:      file_reviews_v1_reviews_proto_msgTypes,
	}.Build()
	File_reviews_v1_reviews_proto = out.File
	file_reviews_v1_reviews_proto_goTypes = nil
	file_reviews_v1_reviews_proto_depIdxs = nil
}
