package ast

import (
	"fmt"

	goldast "github.com/yuin/goldmark/ast"
	"gopkg.in/guregu/null.v4"
)

func HasAttr(n goldast.Node, names ...string) bool {
	for _, name := range names {
		if _, ok := n.AttributeString(name); ok {
			return true
		}
	}

	return false
}

// GetAttr returns the attribute as a string. goldmark stores parsed
// attributes as []byte, but other extensions may set strings.
func GetAttr(n goldast.Node, name string) null.String {
	v, ok := n.AttributeString(name)
	if !ok || v == nil {
		return null.StringFromPtr(nil)
	}

	switch val := v.(type) {
	case []byte:
		return null.StringFrom(string(val))
	case string:
		return null.StringFrom(val)
	default:
		return null.StringFrom(fmt.Sprintf("%v", val))
	}
}

// SetAttr stores value as []byte, which is what goldmark's HTML renderer
// expects for attribute values.
func SetAttr(n goldast.Node, name string, value string) {
	n.SetAttributeString(name, []byte(value))
}
