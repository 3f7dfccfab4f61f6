package std

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/akaoio/zen/values"
)

var jsonMethods = []*Builtin{
	{Name: "json_parse", Callback: jsonParse},
	{Name: "json_stringify", Callback: jsonStringify},
}

func init() {
	Builtins = append(Builtins, jsonMethods...)
}

// jsonParse decodes a JSON string into ZEN values. Decoding walks the token
// stream rather than unmarshalling into Go maps so that object keys keep
// their source order, which ZEN objects observe.
func jsonParse(rt Runtime, writer io.Writer, args ...values.Value) values.Value {
	if len(args) != 1 {
		return createError("json_parse expects 1 argument, got %d", len(args))
	}
	s, ok := args[0].(*values.String)
	if !ok {
		return createError("json_parse: argument must be a string, got %s", args[0].GetType())
	}

	dec := json.NewDecoder(strings.NewReader(s.Value))
	v, err := decodeJSONValue(dec)
	if err != nil {
		return values.NewError(values.BadArgument, "invalid JSON: %v", err)
	}
	return v
}

// decodeJSONValue decodes the next complete JSON value from the token
// stream.
func decodeJSONValue(dec *json.Decoder) (values.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := values.NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key := keyTok.(string)
				v, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, v)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return obj, nil
		default: // '['
			arr := &values.Array{Elements: make([]values.Value, 0)}
			for dec.More() {
				v, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				arr.Elements = append(arr.Elements, v)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return arr, nil
		}
	case string:
		return &values.String{Value: t}, nil
	case float64:
		return &values.Number{Value: t}, nil
	case bool:
		return &values.Boolean{Value: t}, nil
	default:
		return &values.Null{}, nil
	}
}

// jsonStringify encodes a ZEN value as a JSON string, preserving object key
// order. Values with no JSON analogue (functions, classes, undecidable)
// encode as null.
func jsonStringify(rt Runtime, writer io.Writer, args ...values.Value) values.Value {
	if len(args) != 1 {
		return createError("json_stringify expects 1 argument, got %d", len(args))
	}
	var sb strings.Builder
	encodeJSONValue(&sb, args[0])
	return &values.String{Value: sb.String()}
}

// encodeJSONValue appends the JSON form of v to sb.
func encodeJSONValue(sb *strings.Builder, v values.Value) {
	switch v := v.(type) {
	case *values.Boolean:
		sb.WriteString(strconv.FormatBool(v.Value))
	case *values.Number:
		sb.WriteString(v.ToString())
	case *values.String:
		sb.WriteString(strconv.Quote(v.Value))
	case *values.Array:
		sb.WriteByte('[')
		for i, elem := range v.Elements {
			if i > 0 {
				sb.WriteByte(',')
			}
			encodeJSONValue(sb, elem)
		}
		sb.WriteByte(']')
	case *values.Object:
		sb.WriteByte('{')
		for i, key := range v.Keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Quote(key))
			sb.WriteByte(':')
			encodeJSONValue(sb, v.Pairs[key])
		}
		sb.WriteByte('}')
	default:
		sb.WriteString("null")
	}
}
