package transformer

import (
	goldast "github.com/yuin/goldmark/ast"
)

// Replace swaps nodeToReplace for replacement in its parent. nodeToReplace
// is left detached.
func Replace(nodeToReplace goldast.Node, replacement goldast.Node) {
	parent := nodeToReplace.Parent()
	if parent == nil {
		return // Ignore, already removed.
	}

	if replacement.Parent() == nil {
		parent.ReplaceChild(parent, nodeToReplace, replacement)
	}
}

// Remove a node. Returns the node which followed it.
func Remove(nodeToRemove goldast.Node) goldast.Node {
	nextNode := nodeToRemove.NextSibling()

	// Handle node already removed
	if parent := nodeToRemove.Parent(); parent != nil {
		parent.RemoveChild(parent, nodeToRemove)
	}

	return nextNode
}

// InsertBefore places node ahead of target, within target's parent.
func InsertBefore(target goldast.Node, node goldast.Node) {
	if parent := target.Parent(); parent != nil {
		parent.InsertBefore(parent, target, node)
	}
}

func AppendChild(parent goldast.Node, child goldast.Node) {
	parent.AppendChild(parent, child)
}
