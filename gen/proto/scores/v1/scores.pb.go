// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: scores/v1/scores.proto

package scoresv1

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

type FactorBreakdown struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Income        float64                `protobuf:"fixed64,1,opt,name=income,proto3" json:"income,omitempty"`
	Employment    float64                `protobuf:"fixed64,2,opt,name=employment,proto3" json:"employment,omitempty"`
	Banking       float64                `protobuf:"fixed64,3,opt,name=banking,proto3" json:"banking,omitempty"`
	Debt          float64                `protobuf:"fixed64,4,opt,name=debt,proto3" json:"debt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FactorBreakdown) Reset() {
	*x = FactorBreakdown{}
	mi := &file_scores_v1_scores_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FactorBreakdown) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FactorBreakdown) ProtoMessage() {}

func (x *FactorBreakdown) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FactorBreakdown.ProtoReflect.Descriptor instead.
func (*FactorBreakdown) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{0}
}

func (x *FactorBreakdown) GetIncome() float64 {
	if x != nil {
		return x.Income
	}
	return 0
}

func (x *FactorBreakdown) GetEmployment() float64 {
	if x != nil {
		return x.Employment
	}
	return 0
}

func (x *FactorBreakdown) GetBanking() float64 {
	if x != nil {
		return x.Banking
	}
	return 0
}

func (x *FactorBreakdown) GetDebt() float64 {
	if x != nil {
		return x.Debt
	}
	return 0
}

type CreditScore struct {
	state                  protoimpl.MessageState `protogen:"open.v1"`
	Id                     string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	SubjectId              string                 `protobuf:"bytes,2,opt,name=subject_id,json=subjectId,proto3" json:"subject_id,omitempty"`
	Score                  int32                  `protobuf:"varint,3,opt,name=score,proto3" json:"score,omitempty"`
	RiskTier               string                 `protobuf:"bytes,4,opt,name=risk_tier,json=riskTier,proto3" json:"risk_tier,omitempty"`
	EstimatedMonthlyIncome string                 `protobuf:"bytes,5,opt,name=estimated_monthly_income,json=estimatedMonthlyIncome,proto3" json:"estimated_monthly_income,omitempty"` // decimal string
	MaxLoan                string                 `protobuf:"bytes,6,opt,name=max_loan,json=maxLoan,proto3" json:"max_loan,omitempty"`                                                // decimal string
	SuggestedDownPayment   string                 `protobuf:"bytes,7,opt,name=suggested_down_payment,json=suggestedDownPayment,proto3" json:"suggested_down_payment,omitempty"`       // decimal string
	Recommendations        []string               `protobuf:"bytes,8,rep,name=recommendations,proto3" json:"recommendations,omitempty"`
	Breakdown              *FactorBreakdown       `protobuf:"bytes,9,opt,name=breakdown,proto3" json:"breakdown,omitempty"`
	Active                 bool                   `protobuf:"varint,10,opt,name=active,proto3" json:"active,omitempty"`
	ComputedAt             string                 `protobuf:"bytes,11,opt,name=computed_at,json=computedAt,proto3" json:"computed_at,omitempty"`
	ExpiresAt              string                 `protobuf:"bytes,12,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *CreditScore) Reset() {
	*x = CreditScore{}
	mi := &file_scores_v1_scores_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreditScore) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreditScore) ProtoMessage() {}

func (x *CreditScore) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreditScore.ProtoReflect.Descriptor instead.
func (*CreditScore) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{1}
}

func (x *CreditScore) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *CreditScore) GetSubjectId() string {
	if x != nil {
		return x.SubjectId
	}
	return ""
}

func (x *CreditScore) GetScore() int32 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *CreditScore) GetRiskTier() string {
	if x != nil {
		return x.RiskTier
	}
	return ""
}

func (x *CreditScore) GetEstimatedMonthlyIncome() string {
	if x != nil {
		return x.EstimatedMonthlyIncome
	}
	return ""
}

func (x *CreditScore) GetMaxLoan() string {
	if x != nil {
		return x.MaxLoan
	}
	return ""
}

func (x *CreditScore) GetSuggestedDownPayment() string {
	if x != nil {
		return x.SuggestedDownPayment
	}
	return ""
}

func (x *CreditScore) GetRecommendations() []string {
	if x != nil {
		return x.Recommendations
	}
	return nil
}

func (x *CreditScore) GetBreakdown() *FactorBreakdown {
	if x != nil {
		return x.Breakdown
	}
	return nil
}

func (x *CreditScore) GetActive() bool {
	if x != nil {
		return x.Active
	}
	return false
}

func (x *CreditScore) GetComputedAt() string {
	if x != nil {
		return x.ComputedAt
	}
	return ""
}

func (x *CreditScore) GetExpiresAt() string {
	if x != nil {
		return x.ExpiresAt
	}
	return ""
}

type ComputeScoreRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SubjectId     string                 `protobuf:"bytes,1,opt,name=subject_id,json=subjectId,proto3" json:"subject_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ComputeScoreRequest) Reset() {
	*x = ComputeScoreRequest{}
	mi := &file_scores_v1_scores_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ComputeScoreRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ComputeScoreRequest) ProtoMessage() {}

func (x *ComputeScoreRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ComputeScoreRequest.ProtoReflect.Descriptor instead.
func (*ComputeScoreRequest) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{2}
}

func (x *ComputeScoreRequest) GetSubjectId() string {
	if x != nil {
		return x.SubjectId
	}
	return ""
}

type ComputeScoreResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Score         *CreditScore           `protobuf:"bytes,1,opt,name=score,proto3" json:"score,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ComputeScoreResponse) Reset() {
	*x = ComputeScoreResponse{}
	mi := &file_scores_v1_scores_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ComputeScoreResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ComputeScoreResponse) ProtoMessage() {}

func (x *ComputeScoreResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ComputeScoreResponse.ProtoReflect.Descriptor instead.
func (*ComputeScoreResponse) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{3}
}

func (x *ComputeScoreResponse) GetScore() *CreditScore {
	if x != nil {
		return x.Score
	}
	return nil
}

type GetActiveScoreRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SubjectId     string                 `protobuf:"bytes,1,opt,name=subject_id,json=subjectId,proto3" json:"subject_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetActiveScoreRequest) Reset() {
	*x = GetActiveScoreRequest{}
	mi := &file_scores_v1_scores_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetActiveScoreRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetActiveScoreRequest) ProtoMessage() {}

func (x *GetActiveScoreRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetActiveScoreRequest.ProtoReflect.Descriptor instead.
func (*GetActiveScoreRequest) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{4}
}

func (x *GetActiveScoreRequest) GetSubjectId() string {
	if x != nil {
		return x.SubjectId
	}
	return ""
}

type GetActiveScoreResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Score         *CreditScore           `protobuf:"bytes,1,opt,name=score,proto3" json:"score,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetActiveScoreResponse) Reset() {
	*x = GetActiveScoreResponse{}
	mi := &file_scores_v1_scores_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetActiveScoreResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetActiveScoreResponse) ProtoMessage() {}

func (x *GetActiveScoreResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetActiveScoreResponse.ProtoReflect.Descriptor instead.
func (*GetActiveScoreResponse) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{5}
}

func (x *GetActiveScoreResponse) GetScore() *CreditScore {
	if x != nil {
		return x.Score
	}
	return nil
}

type ExpireScoreRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SubjectId     string                 `protobuf:"bytes,1,opt,name=subject_id,json=subjectId,proto3" json:"subject_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExpireScoreRequest) Reset() {
	*x = ExpireScoreRequest{}
	mi := &file_scores_v1_scores_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExpireScoreRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExpireScoreRequest) ProtoMessage() {}

func (x *ExpireScoreRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExpireScoreRequest.ProtoReflect.Descriptor instead.
func (*ExpireScoreRequest) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{6}
}

func (x *ExpireScoreRequest) GetSubjectId() string {
	if x != nil {
		return x.SubjectId
	}
	return ""
}

type ExpireScoreResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExpireScoreResponse) Reset() {
	*x = ExpireScoreResponse{}
	mi := &file_scores_v1_scores_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExpireScoreResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExpireScoreResponse) ProtoMessage() {}

func (x *ExpireScoreResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExpireScoreResponse.ProtoReflect.Descriptor instead.
func (*ExpireScoreResponse) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{7}
}

type GetScoreHistoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SubjectId     string                 `protobuf:"bytes,1,opt,name=subject_id,json=subjectId,proto3" json:"subject_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetScoreHistoryRequest) Reset() {
	*x = GetScoreHistoryRequest{}
	mi := &file_scores_v1_scores_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetScoreHistoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetScoreHistoryRequest) ProtoMessage() {}

func (x *GetScoreHistoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetScoreHistoryRequest.ProtoReflect.Descriptor instead.
func (*GetScoreHistoryRequest) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{8}
}

func (x *GetScoreHistoryRequest) GetSubjectId() string {
	if x != nil {
		return x.SubjectId
	}
	return ""
}

type GetScoreHistoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scores        []*CreditScore         `protobuf:"bytes,1,rep,name=scores,proto3" json:"scores,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetScoreHistoryResponse) Reset() {
	*x = GetScoreHistoryResponse{}
	mi := &file_scores_v1_scores_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetScoreHistoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetScoreHistoryResponse) ProtoMessage() {}

func (x *GetScoreHistoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetScoreHistoryResponse.ProtoReflect.Descriptor instead.
func (*GetScoreHistoryResponse) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{9}
}

func (x *GetScoreHistoryResponse) GetScores() []*CreditScore {
	if x != nil {
		return x.Scores
	}
	return nil
}

var File_scores_v1_scores_proto protoreflect.FileDescriptor

const file_scores_v1_scores_proto_rawDesc = "" +
	"\n" +
	"\x16scores/v1/scores.proto\x12\tscores.v1\"w\n" +
	"\x0fFactorBreakdown\x12\x16\n" +
	"\x06income\x18\x01 \x01(\x01R\x06income\x12\x1e\n" +
	"\n" +
	"employment\x18\x02 \x01(\x01R\n" +
	"employment\x12\x18\n" +
	"\abanking\x18\x03 \x01(\x01R\abanking\x12\x12\n" +
	"\x04debt\x18\x04 \x01(\x01R\x04debt\"\xb6\x03\n" +
	"\vCreditScore\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"subject_id\x18\x02 \x01(\tR\tsubjectId\x12\x14\n" +
	"\x05score\x18\x03 \x01(\x05R\x05score\x12\x1b\n" +
	"\trisk_tier\x18\x04 \x01(\tR\briskTier\x128\n" +
	"\x18estimated_monthly_income\x18\x05 \x01(\tR\x16estimatedMonthlyIncome\x12\x19\n" +
	"\bmax_loan\x18\x06 \x01(\tR\amaxLoan\x124\n" +
	"\x16suggested_down_payment\x18\a \x01(\tR\x14suggestedDownPayment\x12(\n" +
	"\x0frecommendations\x18\b \x03(\tR\x0frecommendations\x128\n" +
	"\tbreakdown\x18\t \x01(\v2\x1a.scores.v1.FactorBreakdownR\tbreakdown\x12\x16\n" +
	"\x06active\x18\n" +
	" \x01(\bR\x06active\x12\x1f\n" +
	"\vcomputed_at\x18\v \x01(\tR\n" +
	"computedAt\x12\x1d\n" +
	"\n" +
	"expires_at\x18\f \x01(\tR\texpiresAt\"4\n" +
	"\x13ComputeScoreRequest\x12\x1d\n" +
	"\n" +
	"subject_id\x18\x01 \x01(\tR\tsubjectId\"D\n" +
	"\x14ComputeScoreResponse\x12,\n" +
	"\x05score\x18\x01 \x01(\v2\x16.scores.v1.CreditScoreR\x05score\"6\n" +
	"\x15GetActiveScoreRequest\x12\x1d\n" +
	"\n" +
	"subject_id\x18\x01 \x01(\tR\tsubjectId\"F\n" +
	"\x16GetActiveScoreResponse\x12,\n" +
	"\x05score\x18\x01 \x01(\v2\x16.scores.v1.CreditScoreR\x05score\"3\n" +
	"\x12ExpireScoreRequest\x12\x1d\n" +
	"\n" +
	"subject_id\x18\x01 \x01(\tR\tsubjectId\"\x15\n" +
	"\x13ExpireScoreResponse\"7\n" +
	"\x16GetScoreHistoryRequest\x12\x1d\n" +
	"\n" +
	"subject_id\x18\x01 \x01(\tR\tsubjectId\"I\n" +
	"\x17GetScoreHistoryResponse\x12.\n" +
	"\x06scores\x18\x01 \x03(\v2\x16.scores.v1.CreditScoreR\x06scores2\xdf\x02\n" +
	"\rScoresService\x12O\n" +
	"\fComputeScore\x12\x1e.scores.v1.ComputeScoreRequest\x1a\x1f.scores.v1.ComputeScoreResponse\x12U\n" +
	"\x0eGetActiveScore\x12 .scores.v1.GetActiveScoreRequest\x1a!.scores.v1.GetActiveScoreResponse\x12L\n" +
	"\vExpireScore\x12\x1d.scores.v1.ExpireScoreRequest\x1a\x1e.scores.v1.ExpireScoreResponse\x12X\n" +
	"\x0fGetScoreHistory\x12!.scores.v1.GetScoreHistoryRequest\x1a\".scores.v1.GetScoreHistoryResponseBBZ@github.com/Ajauregui69/livo-backend/gen/proto/scores/v1;scoresv1b\x06proto3"

var (
	file_scores_v1_scores_proto_rawDescOnce sync.Once
	file_scores_v1_scores_proto_rawDescData []byte
)

func file_scores_v1_scores_proto_rawDescGZIP() []byte {
	file_scores_v1_scores_proto_rawDescOnce.Do(func() {
		file_scores_v1_scores_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_scores_v1_scores_proto_rawDesc), len(file_scores_v1_scores_proto_rawDesc)))
	})
	return file_scores_v1_scores_proto_rawDescData
}

var file_scores_v1_scores_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_scores_v1_scores_proto_goTypes = []any{
	(*FactorBreakdown)(nil),         // 0: scores.v1.FactorBreakdown
	(*CreditScore)(nil),             // 1: scores.v1.CreditScore
	(*ComputeScoreRequest)(nil),     // 2: scores.v1.ComputeScoreRequest
	(*ComputeScoreResponse)(nil),    // 3: scores.v1.ComputeScoreResponse
	(*GetActiveScoreRequest)(nil),   // 4: scores.v1.GetActiveScoreRequest
	(*GetActiveScoreResponse)(nil),  // 5: scores.v1.GetActiveScoreResponse
	(*ExpireScoreRequest)(nil),      // 6: scores.v1.ExpireScoreRequest
	(*ExpireScoreResponse)(nil),     // 7: scores.v1.ExpireScoreResponse
	(*GetScoreHistoryRequest)(nil),  // 8: scores.v1.GetScoreHistoryRequest
	(*GetScoreHistoryResponse)(nil), // 9: scores.v1.GetScoreHistoryResponse
}
var file_scores_v1_scores_proto_depIdxs = []int32{
	0, // 0: scores.v1.CreditScore.breakdown:type_name -> scores.v1.FactorBreakdown
	1, // 1: scores.v1.ComputeScoreResponse.score:type_name -> scores.v1.CreditScore
	1, // 2: scores.v1.GetActiveScoreResponse.score:type_name -> scores.v1.CreditScore
	1, // 3: scores.v1.GetScoreHistoryResponse.scores:type_name -> scores.v1.CreditScore
	2, // 4: scores.v1.ScoresService.ComputeScore:input_type -> scores.v1.ComputeScoreRequest
	4, // 5: scores.v1.ScoresService.GetActiveScore:input_type -> scores.v1.GetActiveScoreRequest
	6, // 6: scores.v1.ScoresService.ExpireScore:input_type -> scores.v1.ExpireScoreRequest
	8, // 7: scores.v1.ScoresService.GetScoreHistory:input_type -> scores.v1.GetScoreHistoryRequest
	3, // 8: scores.v1.ScoresService.ComputeScore:output_type -> scores.v1.ComputeScoreResponse
	5, // 9: scores.v1.ScoresService.GetActiveScore:output_type -> scores.v1.GetActiveScoreResponse
	7, // 10: scores.v1.ScoresService.ExpireScore:output_type -> scores.v1.ExpireScoreResponse
	9, // 11: scores.v1.ScoresService.GetScoreHistory:output_type -> scores.v1.GetScoreHistoryResponse
	8, // [8:12] is the sub-list for method output_type
	4, // [4:8] is the sub-list for method input_type
	4, // [4:4] is the sub-list for extension type_name
	4, // [4:4] is the sub-list for extension extendee
	0, // [0:4] is the sub-list for field type_name
}

func init() { file_scores_v1_scores_proto_init() }
func file_scores_v1_scores_proto_init() {
	if File_scores_v1_scores_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_scores_v1_scores_proto_rawDesc), len(file_scores_v1_scores_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_scores_v1_scores_proto_goTypes,
		DependencyIndexes: file_scores_v1_scores_proto_depIdxs,
		MessageInfos:      file_scores_v1_scores_proto_msgTypes,
	}.Build()
	File_scores_v1_scores_proto = out.File
	file_scores_v1_scores_proto_goTypes = nil
	file_scores_v1_scores_proto_depIdxs = nil
}
