package nano

import (
	"encoding/json"
	"fmt"
	"sort"
)

// ObjectRef is a lightweight pointer to an object: its kind plus id. It
// never owns the object's data; pair it with an envelope's Included list
// to get at the full object.
type ObjectRef struct {
	ID   ID   `json:"id"`
	Kind Kind `json:"type"`
}

// Ref builds an ObjectRef.
func Ref(kind Kind, id uint64) ObjectRef {
	return ObjectRef{ID: ID(id), Kind: kind}
}

// RelationLink is the pair of URIs the API attaches to a named
// relationship: Self describes the relationship itself, Related fetches
// the objects on the far side.
type RelationLink struct {
	Self    string `json:"self"`
	Related string `json:"related"`
}

// LinkInfo is the links block of an object. There is always at least a
// self link; anything else the API sends is kept in Others.
type LinkInfo struct {
	Self   string
	Others map[string]string
}

// MarshalJSON flattens Others next to the self link.
func (l LinkInfo) MarshalJSON() ([]byte, error) {
	links := make(map[string]string, len(l.Others)+1)
	for key, val := range l.Others {
		links[key] = val
	}

	links["self"] = l.Self

	return json.Marshal(links)
}

// UnmarshalJSON splits the self link out of the flattened links object.
func (l *LinkInfo) UnmarshalJSON(data []byte) error {
	var links map[string]string

	err := json.Unmarshal(data, &links)
	if err != nil {
		return fmt.Errorf("decoding links: %w", err)
	}

	*l = LinkInfo{Self: links["self"]}

	delete(links, "self")

	if len(links) > 0 {
		l.Others = links
	}

	return nil
}

// RelationInfo is the relationships block of an object. Each key of the
// wire object is a kind name; Included collects the reference lists whose
// full objects were side-loaded into the response, Relations the link
// pairs usable for follow-up fetches.
type RelationInfo struct {
	Included  map[Kind][]ObjectRef
	Relations map[Kind]RelationLink
}

// relationEntry is one value of the flattened wire map. Data may be a
// single reference or an array of them; Links may be absent.
type relationEntry struct {
	Data  json.RawMessage `json:"data"`
	Links *RelationLink   `json:"links"`
}

// UnmarshalJSON partitions each flattened entry into included references
// and relation links. Keys must name a declared kind.
func (r *RelationInfo) UnmarshalJSON(data []byte) error {
	var entries map[string]relationEntry

	err := json.Unmarshal(data, &entries)
	if err != nil {
		return fmt.Errorf("decoding relationships: %w", err)
	}

	*r = RelationInfo{}

	for name, entry := range entries {
		kind, err := KindFromName(name)
		if err != nil {
			return PrependDecodePath(name, err)
		}

		if len(entry.Data) > 0 && string(entry.Data) != "null" {
			refs, err := decodeRefData(entry.Data)
			if err != nil {
				return PrependDecodePath(name+".data", err)
			}

			if r.Included == nil {
				r.Included = make(map[Kind][]ObjectRef)
			}

			r.Included[kind] = refs
		}

		if entry.Links != nil {
			if r.Relations == nil {
				r.Relations = make(map[Kind]RelationLink)
			}

			r.Relations[kind] = *entry.Links
		}
	}

	return nil
}

// decodeRefData accepts either a single reference object or an array.
func decodeRefData(data json.RawMessage) ([]ObjectRef, error) {
	if data[0] == '[' {
		var refs []ObjectRef

		err := json.Unmarshal(data, &refs)
		if err != nil {
			return nil, err
		}

		return refs, nil
	}

	var ref ObjectRef

	err := json.Unmarshal(data, &ref)
	if err != nil {
		return nil, err
	}

	return []ObjectRef{ref}, nil
}

// MarshalJSON rebuilds the flattened wire map. A reference list of
// exactly one entry is keyed by the kind's unique name with a single data
// object, matching how the API expects one-to-one relationships; longer
// lists use the plural name and an array.
func (r RelationInfo) MarshalJSON() ([]byte, error) {
	entries := make(map[string]map[string]any, len(r.Included)+len(r.Relations))

	for kind, refs := range r.Included {
		if len(refs) == 1 {
			entries[kind.UniqueName()] = map[string]any{"data": refs[0]}
		} else {
			entries[kind.Name()] = map[string]any{"data": refs}
		}
	}

	for kind, link := range r.Relations {
		name := kind.Name()
		if entry, ok := entries[name]; ok {
			entry["links"] = link
		} else {
			entries[name] = map[string]any{"links": link}
		}
	}

	return json.Marshal(entries)
}

// IncludedKinds lists the kinds with side-loaded references, sorted for
// deterministic iteration.
func (r *RelationInfo) IncludedKinds() []Kind {
	kinds := make([]Kind, 0, len(r.Included))
	for kind := range r.Included {
		kinds = append(kinds, kind)
	}

	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	return kinds
}
