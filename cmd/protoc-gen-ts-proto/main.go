// The protoc-gen-ts-proto binary is a protoc plugin that generates
// TypeScript message types and wire-format codecs.
//
// Grounded on golang-protobuf/protogen/protogen.go's run() (stdin read,
// proto.Unmarshal into CodeGeneratorRequest, plugin function, proto.Marshal
// the CodeGeneratorResponse to stdout) and cmd/protoc-gen-go/main.go's
// flag.FlagSet-based parameter parsing, generalized from protoc-gen-go's
// single "plugins"/"import_prefix" flags to this plugin's three options
// (SPEC_FULL.md §1.1).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/kev0960/ts-proto/codegen"
	"github.com/kev0960/ts-proto/typemap"
)

func main() {
	defer glog.Flush()
	if err := run(); err != nil {
		glog.Errorf("protoc-gen-ts-proto: %v", err)
		fmt.Fprintf(os.Stderr, "protoc-gen-ts-proto: %v\n", err)
		glog.Flush()
		os.Exit(1)
	}
}

func run() error {
	in, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading request: %w", err)
	}
	req := &pluginpb.CodeGeneratorRequest{}
	if err := proto.Unmarshal(in, req); err != nil {
		return fmt.Errorf("parsing request: %w", err)
	}

	opts, err := parseParameter(req.GetParameter())
	if err != nil {
		return fmt.Errorf("parsing plugin parameter: %w", err)
	}

	resp := generate(req, opts)

	out, err := proto.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshaling response: %w", err)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}

// parseParameter parses protoc's comma-separated key=value plugin parameter
// string with the stdlib flag package, the same mechanism
// golang-protobuf/protogen.go uses (flag.FlagSet.Set matches the
// param/value shape the parameter string decomposes into).
func parseParameter(parameter string) (codegen.Options, error) {
	opts := codegen.DefaultOptions()

	var flags flag.FlagSet
	oneof := flags.String("oneof", "wrapped", "oneof representation: wrapped|tagged_union")
	suppressDefaults := flags.Bool("suppress_scalar_defaults", false, "omit scalar fields at their default value on encode")
	mapFields := flags.String("map_fields", "reject", "map<K,V> field handling: reject|desugar")

	for _, param := range strings.Split(parameter, ",") {
		if param == "" {
			continue
		}
		var value string
		key := param
		if i := strings.Index(param, "="); i >= 0 {
			key, value = param[:i], param[i+1:]
		}
		if err := flags.Set(key, value); err != nil {
			return opts, fmt.Errorf("unknown parameter %q", key)
		}
	}

	switch *oneof {
	case "wrapped":
		opts.Oneof = codegen.OneofWrapped
	case "tagged_union":
		opts.Oneof = codegen.OneofTaggedUnion
	default:
		return opts, fmt.Errorf(`oneof: want "wrapped" or "tagged_union", got %q`, *oneof)
	}

	switch *mapFields {
	case "reject":
		opts.MapFields = codegen.MapFieldsReject
	case "desugar":
		opts.MapFields = codegen.MapFieldsDesugar
	default:
		return opts, fmt.Errorf(`map_fields: want "reject" or "desugar", got %q`, *mapFields)
	}

	opts.SuppressScalarDefaults = *suppressDefaults
	return opts, nil
}

// generate implements SPEC_FULL.md §3's multi-file batch generation: the
// TypeMap is built once over every file protoc handed us (so types declared
// in an imported-but-not-regenerated file still resolve), then each
// requested file is generated independently; one file's failure does not
// abort the batch (spec.md §7: "Other files in the batch are independent"),
// via errors.Join aggregation into one CodeGeneratorResponse.Error string.
func generate(req *pluginpb.CodeGeneratorRequest, opts codegen.Options) *pluginpb.CodeGeneratorResponse {
	tm := typemap.Build(req.GetProtoFile())

	toGenerate := make(map[string]bool, len(req.GetFileToGenerate()))
	for _, name := range req.GetFileToGenerate() {
		toGenerate[name] = true
	}

	var files []*pluginpb.CodeGeneratorResponse_File
	var errs []error

	for _, fd := range req.GetProtoFile() {
		if !toGenerate[fd.GetName()] {
			continue
		}
		glog.V(1).Infof("generating %s", fd.GetName())
		out, err := generateOne(tm, opts, fd)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", fd.GetName(), err))
			continue
		}
		files = append(files, &pluginpb.CodeGeneratorResponse_File{
			Name:    proto.String(out.Name),
			Content: proto.String(out.Content),
		})
	}

	resp := &pluginpb.CodeGeneratorResponse{
		SupportedFeatures: proto.Uint64(uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL)),
		File:              files,
	}
	if len(errs) > 0 {
		joined := errors.Join(errs...)
		glog.Errorf("generation errors: %v", joined)
		resp.Error = proto.String(joined.Error())
	}
	return resp
}

func generateOne(tm *typemap.TypeMap, opts codegen.Options, fd *descriptorpb.FileDescriptorProto) (codegen.File, error) {
	return codegen.GenerateFile(tm, opts, fd)
}
