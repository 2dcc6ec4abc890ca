// Package toon implements encoding and decoding of TOON (Token-Oriented
// Object Notation), a line-oriented, indentation-based data format
// designed to be compact in LLM token counts while round-tripping the
// same value tree as JSON.
//
// Basic usage:
//
//	data := map[string]interface{}{
//		"name": "Alice",
//		"age":  30,
//	}
//	out, err := toon.MarshalToString(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out)
//	// age: 30
//	// name: Alice
//
//	var result map[string]interface{}
//	err = toon.UnmarshalFromString(out, &result)
package toon

import "github.com/bnomei/toon-go/internal/tval"

// Version is the current version of this library.
const Version = "1.0.0"

// Value is any TOON-encodable datum: nil, bool, int64, uint64, float64,
// string, *Array, or *Object.
type Value = tval.Value

// Array is an ordered list of Values.
type Array = tval.Array

// Object is an insertion-ordered string-keyed map of Values.
type Object = tval.Object

// NewObject returns an empty Object ready for use.
func NewObject() *Object { return tval.NewObject() }
