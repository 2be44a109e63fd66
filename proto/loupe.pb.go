// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: loupe.proto

package loupev1

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

type CompleteRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Task labels the call site (page_audit, quick_diff, post_analysis,
	// checkpoint_assessment, strategy_narrative) for gateway routing and
	// observability.
	Task         string `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	SystemPrompt string `protobuf:"bytes,2,opt,name=system_prompt,json=systemPrompt,proto3" json:"system_prompt,omitempty"`
	UserPrompt   string `protobuf:"bytes,3,opt,name=user_prompt,json=userPrompt,proto3" json:"user_prompt,omitempty"`
	// Image URLs attached to the user turn, in order.
	ImageUrls []string `protobuf:"bytes,4,rep,name=image_urls,json=imageUrls,proto3" json:"image_urls,omitempty"`
	MaxTokens int32    `protobuf:"varint,5,opt,name=max_tokens,json=maxTokens,proto3" json:"max_tokens,omitempty"`
	// Correlation id (analysis or change id) for gateway-side tracing.
	ReferenceId   string `protobuf:"bytes,6,opt,name=reference_id,json=referenceId,proto3" json:"reference_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteRequest) Reset() {
	*x = CompleteRequest{}
	mi := &file_loupe_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteRequest) ProtoMessage() {}

func (x *CompleteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_loupe_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteRequest.ProtoReflect.Descriptor instead.
func (*CompleteRequest) Descriptor() ([]byte, []int) {
	return file_loupe_proto_rawDescGZIP(), []int{0}
}

func (x *CompleteRequest) GetTask() string {
	if x != nil {
		return x.Task
	}
	return ""
}

func (x *CompleteRequest) GetSystemPrompt() string {
	if x != nil {
		return x.SystemPrompt
	}
	return ""
}

func (x *CompleteRequest) GetUserPrompt() string {
	if x != nil {
		return x.UserPrompt
	}
	return ""
}

func (x *CompleteRequest) GetImageUrls() []string {
	if x != nil {
		return x.ImageUrls
	}
	return nil
}

func (x *CompleteRequest) GetMaxTokens() int32 {
	if x != nil {
		return x.MaxTokens
	}
	return 0
}

func (x *CompleteRequest) GetReferenceId() string {
	if x != nil {
		return x.ReferenceId
	}
	return ""
}

type CompleteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	Model         string                 `protobuf:"bytes,2,opt,name=model,proto3" json:"model,omitempty"`
	InputTokens   int32                  `protobuf:"varint,3,opt,name=input_tokens,json=inputTokens,proto3" json:"input_tokens,omitempty"`
	OutputTokens  int32                  `protobuf:"varint,4,opt,name=output_tokens,json=outputTokens,proto3" json:"output_tokens,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteResponse) Reset() {
	*x = CompleteResponse{}
	mi := &file_loupe_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteResponse) ProtoMessage() {}

func (x *CompleteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_loupe_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteResponse.ProtoReflect.Descriptor instead.
func (*CompleteResponse) Descriptor() ([]byte, []int) {
	return file_loupe_proto_rawDescGZIP(), []int{1}
}

func (x *CompleteResponse) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *CompleteResponse) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

func (x *CompleteResponse) GetInputTokens() int32 {
	if x != nil {
		return x.InputTokens
	}
	return 0
}

func (x *CompleteResponse) GetOutputTokens() int32 {
	if x != nil {
		return x.OutputTokens
	}
	return 0
}

var File_loupe_proto protoreflect.FileDescriptor

const file_loupe_proto_rawDesc = "" +
	"\n" +
	"\vloupe.proto\x12\floupe.llm.v1\"\xcc\x01\n" +
	"\x0fCompleteRequest\x12\x12\n" +
	"\x04task\x18\x01 \x01(\tR\x04task\x12#\n" +
	"\rsystem_prompt\x18\x02 \x01(\tR\fsystemPrompt\x12\x1f\n" +
	"\vuser_prompt\x18\x03 \x01(\tR\n" +
	"userPrompt\x12\x1d\n" +
	"\n" +
	"image_urls\x18\x04 \x03(\tR\timageUrls\x12\x1d\n" +
	"\n" +
	"max_tokens\x18\x05 \x01(\x05R\tmaxTokens\x12!\n" +
	"\freference_id\x18\x06 \x01(\tR\vreferenceId\"\x84\x01\n" +
	"\x10CompleteResponse\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12\x14\n" +
	"\x05model\x18\x02 \x01(\tR\x05model\x12!\n" +
	"\finput_tokens\x18\x03 \x01(\x05R\vinputTokens\x12#\n" +
	"\routput_tokens\x18\x04 \x01(\x05R\foutputTokens2W\n" +
	"\n" +
	"LLMService\x12I\n" +
	"\bComplete\x12\x1d.loupe.llm.v1.CompleteRequest\x1a\x1e.loupe.llm.v1.CompleteResponseB)Z'github.com/loupe-hq/loupe/proto;loupev1b\x06proto3"

var (
	file_loupe_proto_rawDescOnce sync.Once
	file_loupe_proto_rawDescData []byte
)

func file_loupe_proto_rawDescGZIP() []byte {
	file_loupe_proto_rawDescOnce.Do(func() {
		file_loupe_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_loupe_proto_rawDesc), len(file_loupe_proto_rawDesc)))
	})
	return file_loupe_proto_rawDescData
}

var file_loupe_proto_msgTypes = make([]protoimpl.MessageInfo, 2)
var file_loupe_proto_goTypes = []any{
	(*CompleteRequest)(nil),  // 0: loupe.llm.v1.CompleteRequest
	(*CompleteResponse)(nil), // 1: loupe.llm.v1.CompleteResponse
}
var file_loupe_proto_depIdxs = []int32{
	0, // 0: loupe.llm.v1.LLMService.Complete:input_type -> loupe.llm.v1.CompleteRequest
	1, // 1: loupe.llm.v1.LLMService.Complete:output_type -> loupe.llm.v1.CompleteResponse
	1, // [1:2] is the sub-list for method output_type
	0, // [0:1] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_loupe_proto_init() }
func file_loupe_proto_init() {
	if File_loupe_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_loupe_proto_rawDesc), len(file_loupe_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   2,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_loupe_proto_goTypes,
		DependencyIndexes: file_loupe_proto_depIdxs,
		MessageInfos:      file_loupe_proto_msgTypes,
	}.Build()
	File_loupe_proto = out.File
	file_loupe_proto_goTypes = nil
	file_loupe_proto_depIdxs = nil
}
