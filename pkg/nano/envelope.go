package nano

import (
	"encoding/json"
	"fmt"
)

// ItemResponse is a successful API document carrying a single object.
// The type parameter pins the expected concrete object type; use
// ItemResponse[AnyObject] when the kind is only known at runtime.
type ItemResponse[T any] struct {
	// Data is the returned object.
	Data T
	// Included holds side-loaded related objects requested via include=.
	Included []AnyObject
	// PostInfo carries the surrounding-post context the API attaches to
	// post and page documents. Nil for every other kind.
	PostInfo *PostInfo
}

// CollectionResponse is a successful API document carrying a list of
// objects.
type CollectionResponse[T any] struct {
	// Data is the returned object list.
	Data []T
	// Included holds side-loaded related objects requested via include=.
	Included []AnyObject
	// PostInfo carries the surrounding-post context the API attaches to
	// post and page documents. Nil for every other kind.
	PostInfo *PostInfo
}

// PostInfo is the extra context the API flattens into the document when
// the subject is a post or page: the neighboring posts and the author
// card lookups.
type PostInfo struct {
	AfterPosts  []ItemResponse[*PostObject]     `json:"after_posts"`
	AuthorCards CollectionResponse[*PostObject] `json:"author_cards"`
	BeforePosts []ItemResponse[*PostObject]     `json:"before_posts"`
}

var postInfoKeys = []string{"after_posts", "author_cards", "before_posts"}

// GetRef finds the full object behind a relationship reference in the
// included list, or nil when the reference was not side-loaded.
func (r *ItemResponse[T]) GetRef(ref ObjectRef) Object {
	return findRef(r.Included, ref)
}

// GetRef finds the full object behind a relationship reference in the
// included list, or nil when the reference was not side-loaded.
func (r *CollectionResponse[T]) GetRef(ref ObjectRef) Object {
	return findRef(r.Included, ref)
}

func findRef(included []AnyObject, ref ObjectRef) Object {
	for _, obj := range included {
		if obj.Object == nil {
			continue
		}

		if obj.GetID() == ref.ID && obj.Kind() == ref.Kind {
			return obj.Object
		}
	}

	return nil
}

// UnmarshalJSON decodes the document strictly: only the envelope keys and
// the flattened post context are accepted.
func (r *ItemResponse[T]) UnmarshalJSON(data []byte) error {
	keys, err := splitDocument(data)
	if err != nil {
		return err
	}

	raw, ok := keys["data"]
	if !ok {
		return &DecodeError{Path: "data", Err: ErrMissingKey}
	}

	*r = ItemResponse[T]{}

	err = json.Unmarshal(raw, &r.Data)
	if err != nil {
		return PrependDecodePath("data", err)
	}

	r.Included, err = decodeIncluded(keys)
	if err != nil {
		return err
	}

	r.PostInfo, err = decodePostInfo(keys)

	return err
}

// MarshalJSON rebuilds the flat document form.
func (r ItemResponse[T]) MarshalJSON() ([]byte, error) {
	return marshalDocument(r.Data, r.Included, r.PostInfo)
}

/// UnmarshalJSON decodes the document strictly: only the envelope keys and
// the flattened post context are accepted.
func (r *CollectionResponse[T]) UnmarshalJSON(data []byte) error {
	keys, err := splitDocument(data)
	if err != nil {
		return err
	}

	raw, ok := keys["data"]
	if !ok {
		return &DecodeError{Path: "data", Err: ErrMissingKey}
	}

	*r = CollectionResponse[T]{}

	err = json.Unmarshal(raw, &r.Data)
	if err != nil {
		return PrependDecodePath("data", err)
	}

	r.Included, err = decodeIncluded(keys)
	if err != nil {
		return err
	}

	r.PostInfo, err = decodePostInfo(keys)

	return err
}

// MarshalJSON rebuilds the flat document form.
func (r CollectionResponse[T]) MarshalJSON() ([]byte, error) {
	return marshalDocument(r.Data, r.Included, r.PostInfo)
}

// splitDocument breaks a document into its top-level keys and rejects any
// key outside the envelope schema.
func splitDocument(data []byte) (map[string]json.RawMessage, error) {
	var keys map[string]json.RawMessage

	err := json.Unmarshal(data, &keys)
	if err != nil {
		return nil, WrapDecode(err)
	}

	for key := range keys {
		if key == "data" || key == "included" || isPostInfoKey(key) {
			continue
		}

		return nil, &DecodeError{Path: key, Err: ErrUnexpectedKey}
	}

	return keys, nil
}

func isPostInfoKey(key string) bool {
	for _, name := range postInfoKeys {
		if key == name {
			return true
		}
	}

	return false
}

func decodeIncluded(keys map[string]json.RawMessage) ([]AnyObject, error) {
	raw, ok := keys["included"]
	if !ok || string(raw) == "null" {
		return nil, nil
	}

	var included []AnyObject

	err := json.Unmarshal(raw, &included)
	if err != nil {
		return nil, PrependDecodePath("included", err)
	}

	return included, nil
}

// decodePostInfo assembles the flattened post context. The three keys
// travel together; a partial set is a malformed document.
func decodePostInfo(keys map[string]json.RawMessage) (*PostInfo, error) {
	present := 0

	for _, name := range postInfoKeys {
		if _, ok := keys[name]; ok {
			present++
		}
	}

	if present == 0 {
		return nil, nil
	}

	if present != len(postInfoKeys) {
		for _, name := range postInfoKeys {
			if _, ok := keys[name]; !ok {
				return nil, &DecodeError{Path: name, Err: ErrMissingKey}
			}
		}
	}

	info := &PostInfo{}

	for _, field := range []struct {
		name string
		dst  any
	}{
		{"after_posts", &info.AfterPosts},
		{"author_cards", &info.AuthorCards},
		{"before_posts", &info.BeforePosts},
	} {
		err := json.Unmarshal(keys[field.name], field.dst)
		if err != nil {
			return nil, PrependDecodePath(field.name, err)
		}
	}

	return info, nil
}

func marshalDocument(data any, included []AnyObject, info *PostInfo) ([]byte, error) {
	doc := map[string]any{"data": data}

	if included != nil {
		doc["included"] = included
	}

	if info != nil {
		raw, err := json.Marshal(info)
		if err != nil {
			return nil, fmt.Errorf("encoding post context: %w", err)
		}

		var flat map[string]json.RawMessage

		err = json.Unmarshal(raw, &flat)
		if err != nil {
			return nil, fmt.Errorf("encoding post context: %w", err)
		}

		for key, val := range flat {
			doc[key] = val
		}
	}

	return json.Marshal(doc)
}
