package settings

import(
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Documents are stored as a google.protobuf.Struct in its JSON form:
//   {"plotValue/elevation": {"visible": true, "color": "#000000"}, ...}

func Marshal(doc Document) ([]byte, error) {
	fields := map[string]interface{}{}
	for k,rec := range doc {
		entry := map[string]interface{}{}
		if rec.Visible != nil { entry["visible"] = *rec.Visible }
		if rec.Color != nil   { entry["color"] = FormatColor(*rec.Color) }
		fields[k] = entry
	}

	s,err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("settings: encode: %w", err)
	}
	return protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
}

// Unmarshal decodes a document. Entries or fields of the wrong shape are
// dropped rather than failing the whole document.
func Unmarshal(b []byte) (Document, error) {
	doc := Document{}
	if len(b) == 0 {
		return doc, nil
	}

	s := &structpb.Struct{}
	if err := protojson.Unmarshal(b, s); err != nil {
		return doc, fmt.Errorf("settings: decode: %w", err)
	}

	for k,v := range s.GetFields() {
		entry := v.GetStructValue()
		if entry == nil { continue }

		rec := Record{}
		if f,exists := entry.GetFields()["visible"]; exists {
			if bv,ok := f.GetKind().(*structpb.Value_BoolValue); ok {
				rec.Visible = Bool(bv.BoolValue)
			}
		}
		if f,exists := entry.GetFields()["color"]; exists {
			if c,err := ParseColor(f.GetStringValue()); err == nil {
				rec.Color = Color(c)
			}
		}
		doc[k] = rec
	}
	return doc, nil
}
