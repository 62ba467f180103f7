package pathutil

import (
	"strconv"
	"strings"
)

// Root is the path of the document root.
const Root = "$"

// Child appends key to a JSON path. Empty keys and keys containing path
// punctuation, quotes or spaces use bracket notation with a quoted key.
func Child(parent, key string) string {
	if key == "" || strings.ContainsAny(key, ".[]' \"") {
		return parent + "[" + strconv.Quote(key) + "]"
	}
	return parent + "." + key
}

// Index appends an array index to a JSON path.
func Index(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}
