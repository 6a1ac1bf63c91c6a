// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// TriState is the value carried by a wire.
//
type TriState int8

// Wire values. Unknown is the zero value and the state of every wire
// when it is created.
//
const (
	Unknown TriState = iota
	Low
	High
)

// Bool returns High if b is true, Low otherwise.
//
func Bool(b bool) TriState {
	if b {
		return High
	}
	return Low
}

// IsHigh returns true if v is High. Unknown is not High.
//
func (v TriState) IsHigh() bool { return v == High }

// Not returns Low for High, and High for anything else.
//
func (v TriState) Not() TriState {
	if v == High {
		return Low
	}
	return High
}

// String returns "0", "1" or "X".
//
func (v TriState) String() string {
	switch v {
	case Low:
		return "0"
	case High:
		return "1"
	case Unknown:
		return "X"
	default:
		return "?"
	}
}
