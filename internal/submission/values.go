package submission

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
)

// Text is a form value that arrives as a JSON string but tolerates numbers,
// booleans and null. Numbers and booleans keep their literal spelling.
type Text string

var textType = reflect.TypeOf(Text(""))

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	case len(data) > 0 && (data[0] == '{' || data[0] == '['):
		return &json.UnmarshalTypeError{Value: "object", Type: textType}
	default:
		*t = Text(data)
		return nil
	}
}

// String returns the value trimmed of surrounding whitespace.
func (t Text) String() string { return strings.TrimSpace(string(t)) }

// Empty reports whether the value is blank.
func (t Text) Empty() bool { return t.String() == "" }

// Flag is a consent or switch value. Only a JSON boolean true counts as set;
// the string "true" is remembered as present but not accepted.
type Flag struct {
	set    bool
	isBool bool
	value  bool
}

// NewFlag returns a boolean flag, as if decoded from a JSON boolean.
func NewFlag(v bool) Flag { return Flag{set: true, isBool: true, value: v} }

func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*f = Flag{}
	switch string(data) {
	case "null":
	case "true":
		*f = NewFlag(true)
	case "false":
		*f = NewFlag(false)
	default:
		f.set = true
	}
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatBool(f.True())), nil
}

// True reports whether the flag is the boolean true.
func (f Flag) True() bool { return f.isBool && f.value }

// Present reports whether any non-null value was supplied.
func (f Flag) Present() bool { return f.set }
