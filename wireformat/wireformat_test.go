package wireformat

import (
	"testing"

	"google.golang.org/protobuf/types/descriptorpb"
)

// TestTag verifies spec.md P4 against the literal tag bytes spec.md §8's
// end-to-end scenarios name.
func TestTag(t *testing.T) {
	tests := []struct {
		name   string
		number int32
		wt     Type
		want   uint32
	}{
		{"scalar echo field 1 length-delimited", 1, LengthDelimited, 0x0a},
		{"repeated packed field 1 length-delimited", 1, LengthDelimited, 0x0a},
		{"nested message field 2 length-delimited", 2, LengthDelimited, 0x12},
		{"wrapper value field 3 length-delimited", 3, LengthDelimited, 0x1a},
		{"enum field 1 varint", 1, Varint, 0x08},
	}
	for _, tc := range tests {
		if got := Tag(tc.number, tc.wt); got != tc.want {
			t.Errorf("%s: Tag(%d, %d) = 0x%02x, want 0x%02x", tc.name, tc.number, tc.wt, got, tc.want)
		}
	}
}

func TestBasicWireTypeUndefinedForMessage(t *testing.T) {
	if _, ok := BasicWireType(descriptorpb.FieldDescriptorProto_TYPE_MESSAGE); ok {
		t.Error("BasicWireType(MESSAGE) should be undefined (ok=false); messages are always length-delimited via fork/ldelim")
	}
}

func TestIs64Bit(t *testing.T) {
	if !Is64Bit(descriptorpb.FieldDescriptorProto_TYPE_INT64) {
		t.Error("INT64 should be 64-bit")
	}
	if Is64Bit(descriptorpb.FieldDescriptorProto_TYPE_INT32) {
		t.Error("INT32 should not be 64-bit")
	}
}
