package value

import (
	"fmt"
	"sort"

	"google.golang.org/protobuf/types/known/structpb"
)

// Tags of the single-field Structs that carry what protobuf Values cannot.
const (
	// ProtoFloatTag wraps a float so that 51.0 is not read back as an integer.
	ProtoFloatTag = "float"
	// ProtoMappingTag wraps a mapping as a list of [name, value] pairs, keeping
	// field order.
	ProtoMappingTag = "mapping"
)

// Proto converts v into a protobuf Value. Integers become numbers, floats
// become {"float": n} and mappings become {"mapping": [[name, value], ...]}.
// FromProto reverses the conversion exactly.
func (v Value) Proto() *structpb.Value {
	switch v.kind {
	case KindBool:
		return structpb.NewBoolValue(v.b)
	case KindInteger:
		return structpb.NewNumberValue(float64(v.i))
	case KindFloat:
		return tagged(ProtoFloatTag, structpb.NewNumberValue(v.f))
	case KindString:
		return structpb.NewStringValue(v.s)
	case KindSequence:
		list := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(v.items))}
		for _, item := range v.items {
			list.Values = append(list.Values, item.Proto())
		}
		return structpb.NewListValue(list)
	case KindMapping:
		pairs := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(v.fields))}
		for _, f := range v.fields {
			pairs.Values = append(pairs.Values, structpb.NewListValue(&structpb.ListValue{
				Values: []*structpb.Value{structpb.NewStringValue(f.Name), f.Value.Proto()},
			}))
		}
		return tagged(ProtoMappingTag, structpb.NewListValue(pairs))
	default:
		return structpb.NewNullValue()
	}
}

func tagged(tag string, inner *structpb.Value) *structpb.Value {
	return structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{tag: inner}})
}

// FromProto converts a protobuf Value produced by Proto back into a Value.
// Plain Structs from other producers are accepted as mappings in ascending
// name order, and plain numbers with a fraction as floats.
func FromProto(pv *structpb.Value) (Value, error) {
	if pv == nil {
		return Null(), nil
	}
	switch k := pv.GetKind().(type) {
	case nil, *structpb.Value_NullValue:
		return Null(), nil
	case *structpb.Value_BoolValue:
		return Bool(k.BoolValue), nil
	case *structpb.Value_NumberValue:
		n := k.NumberValue
		if n == float64(int64(n)) {
			return Int(int64(n)), nil
		}
		return Float(n), nil
	case *structpb.Value_StringValue:
		return String(k.StringValue), nil
	case *structpb.Value_ListValue:
		items := make([]Value, 0, len(k.ListValue.GetValues()))
		for _, item := range k.ListValue.GetValues() {
			v, err := FromProto(item)
			if err != nil {
				return Null(), err
			}
			items = append(items, v)
		}
		return Seq(items...), nil
	case *structpb.Value_StructValue:
		return fromStruct(k.StructValue)
	default:
		return Null(), fmt.Errorf("unsupported protobuf value kind %T", k)
	}
}

func fromStruct(s *structpb.Struct) (Value, error) {
	src := s.GetFields()
	if len(src) == 1 {
		if inner, ok := src[ProtoFloatTag]; ok {
			n, ok := inner.GetKind().(*structpb.Value_NumberValue)
			if !ok {
				return Null(), fmt.Errorf("%s tag holds %T, want a number", ProtoFloatTag, inner.GetKind())
			}
			return Float(n.NumberValue), nil
		}
		if inner, ok := src[ProtoMappingTag]; ok {
			return fromPairs(inner)
		}
	}

	names := make([]string, 0, len(src))
	for name := range src {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]Field, 0, len(names))
	for _, name := range names {
		v, err := FromProto(src[name])
		if err != nil {
			return Null(), err
		}
		fields = append(fields, F(name, v))
	}
	return Map(fields...), nil
}

func fromPairs(pv *structpb.Value) (Value, error) {
	list, ok := pv.GetKind().(*structpb.Value_ListValue)
	if !ok {
		return Null(), fmt.Errorf("%s tag holds %T, want a list", ProtoMappingTag, pv.GetKind())
	}

	fields := make([]Field, 0, len(list.ListValue.GetValues()))
	for i, item := range list.ListValue.GetValues() {
		pair := item.GetListValue().GetValues()
		if len(pair) != 2 {
			return Null(), fmt.Errorf("mapping entry %d: want [name, value], got %d elements", i, len(pair))
		}
		name, ok := pair[0].GetKind().(*structpb.Value_StringValue)
		if !ok {
			return Null(), fmt.Errorf("mapping entry %d: name is %T, want a string", i, pair[0].GetKind())
		}
		v, err := FromProto(pair[1])
		if err != nil {
			return Null(), err
		}
		fields = append(fields, F(name.StringValue, v))
	}
	return Map(fields...), nil
}
