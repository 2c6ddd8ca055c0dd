// Package nano defines the data model of the NaNoWriMo API: the closed
// catalog of object kinds, the typed objects with their attribute
// schemas, the relationship and include machinery, the response
// envelopes, and the wire codecs for the API's stringified numbers,
// coded enums and flattened field groups.
//
// The package is transport-free. Use nanoclient to talk to the API.
package nano
