package scenario

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// TransformJSON is Transform for a raw JSON response body. Only the scene
// list is decoded and re-encoded, so keys inside each scene entry come out
// sorted and insignificant whitespace is dropped; for the wrapped shape the
// other fields of the object are kept byte for byte. Bodies that are not
// JSON, or not one of the two scene shapes, are returned unchanged.
func (o *Overlay) TransformJSON(ctx context.Context, body []byte, pathname, lang string) ([]byte, Report) {
	if _, ok := ResolveScenario(pathname); !ok {
		return body, Report{}
	}
	if !gjson.ValidBytes(body) {
		return body, Report{}
	}

	root := gjson.ParseBytes(body)
	switch {
	case root.IsArray():
		list, err := decodeList([]byte(root.Raw))
		if err != nil {
			return body, Report{}
		}
		out, report := o.Transform(ctx, list, pathname, lang)
		enc, err := encode(out)
		if err != nil {
			return body, Report{}
		}
		return enc, report

	case root.IsObject():
		field := root.Get(FieldSceneList)
		if !field.IsArray() {
			return body, Report{}
		}
		list, err := decodeList([]byte(field.Raw))
		if err != nil {
			return body, Report{}
		}
		out, report := o.Transform(ctx, list, pathname, lang)
		enc, err := encode(out)
		if err != nil {
			return body, Report{}
		}
		spliced, err := sjson.SetRawBytes(body, FieldSceneList, enc)
		if err != nil {
			return body, Report{}
		}
		return spliced, report
	}

	return body, Report{}
}

// decodeList decodes a JSON array keeping numbers as json.Number.
func decodeList(raw []byte) ([]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var list []any
	if err := dec.Decode(&list); err != nil {
		return nil, err
	}
	return list, nil
}

// encode marshals v without HTML escaping; scene text carries markup.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
