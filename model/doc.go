// Package model defines stable boundary types for API layers.
//
// Protocol identity (canonical message bytes, digests, raw signatures) is
// unaffected by any projection. These structs are the only types intended for
// direct JSON serialization by consumers.
package model
