// Package a owns the schema of testdata/a/a.proto.
//
// The file is described in Go with descriptorpb and turned into a dynamicpb
// message type, so no protoc step is needed to build it. Nothing is
// registered globally by this package; importing the atest package links the
// schema into the process-wide protobuf registries.
package a

import (
	"fmt"  // fmt is used to wrap registry errors and print FooA
	"io"   // io is the destination for RunFooA
	"sync" // sync builds the file descriptor once

	"google.golang.org/protobuf/encoding/prototext"    // prototext renders the debug string
	"google.golang.org/protobuf/proto"                 // proto provides the message interface and scalar helpers
	"google.golang.org/protobuf/reflect/protodesc"     // protodesc turns the descriptor proto into a live descriptor
	"google.golang.org/protobuf/reflect/protoreflect"  // protoreflect names the file and message descriptors
	"google.golang.org/protobuf/reflect/protoregistry" // protoregistry holds registered files and message types
	"google.golang.org/protobuf/types/descriptorpb"    // descriptorpb describes testdata/a/a.proto
	"google.golang.org/protobuf/types/dynamicpb"       // dynamicpb builds FooProto without generated code
)

///////////////////////////////////////////////////////////////////////////////
// Schema
///////////////////////////////////////////////////////////////////////////////

const (
	// FileName is the path the schema is registered under.
	FileName = "testdata/a/a.proto"

	// FooProtoName is the full name of the FooProto message.
	FooProtoName protoreflect.FullName = "test.FooProto"
)

var (
	buildOnce sync.Once
	file      protoreflect.FileDescriptor
	buildErr  error
)

func fileDescriptorProto() *descriptorpb.FileDescriptorProto {
	optional := descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum()
	repeated := descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()

	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String(FileName),
		Package: proto.String(string(FooProtoName.Parent())),
		Syntax:  proto.String("proto2"),
		MessageType: []*descriptorpb.DescriptorProto{{
			Name: proto.String(string(FooProtoName.Name())),
			Field: []*descriptorpb.FieldDescriptorProto{
				{
					Name:     proto.String("name"),
					JsonName: proto.String("name"),
					Number:   proto.Int32(1),
					Label:    optional,
					Type:     descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
				},
				{
					Name:     proto.String("values"),
					JsonName: proto.String("values"),
					Number:   proto.Int32(2),
					Label:    repeated,
					Type:     descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum(),
				},
			},
		}},
	}
}

// File returns the descriptor of testdata/a/a.proto.
func File() (protoreflect.FileDescriptor, error) {
	buildOnce.Do(func() {
		file, buildErr = protodesc.NewFile(fileDescriptorProto(), new(protoregistry.Files))
		if buildErr != nil {
			buildErr = fmt.Errorf("failed to build %s: %w", FileName, buildErr)
		}
	})
	return file, buildErr
}

// Register adds the file and the FooProto message type to files and types.
func Register(files *protoregistry.Files, types *protoregistry.Types) error {
	fd, err := File()
	if err != nil {
		return err
	}
	if err := files.RegisterFile(fd); err != nil {
		return fmt.Errorf("failed to register %s: %w", FileName, err)
	}

	md := fd.Messages().ByName(FooProtoName.Name())
	if err := types.RegisterMessage(dynamicpb.NewMessageType(md)); err != nil {
		return fmt.Errorf("failed to register %s: %w", FooProtoName, err)
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// Construction and printing
///////////////////////////////////////////////////////////////////////////////

// New constructs an empty FooProto through r. It fails with an error
// wrapping protoregistry.NotFound when the schema was never registered in r.
func New(r protoregistry.MessageTypeResolver) (proto.Message, error) {
	mt, err := r.FindMessageByName(FooProtoName)
	if err != nil {
		return nil, fmt.Errorf("%s is not linked: %w", FooProtoName, err)
	}
	return mt.New().Interface(), nil
}

// NewFooProto constructs an empty FooProto from the global registry.
func NewFooProto() (proto.Message, error) {
	return New(protoregistry.GlobalTypes)
}

// DebugString renders m in protobuf text format.
func DebugString(m proto.Message) string {
	return prototext.Format(m)
}

// RunFooA writes "FooA" followed by the text form of an empty FooProto.
func RunFooA(w io.Writer) error {
	m, err := NewFooProto()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "FooA%s\n", DebugString(m))
	return err
}
