package ordbtree

import (
	"fmt"
	"io"
	"strings"
)

// nodeids hands out stable DOT node IDs for tree nodes.
type nodeids struct {
	idTable map[any]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[any]int),
		max:     1,
	}
}

func (ids *nodeids) alloc(node any) int {
	if id := ids.idTable[node]; id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// WriteDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Nodes are labelled with their cached size and the
// weights of their elements, leaves additionally with their start offset.
func (t *Tree[K, V]) WriteDot(w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable()
	var walk func(c child[K, V], pos int) int
	walk = func(c child[K, V], pos int) int {
		var ID int
		if node, isNode := c.asNode(); isNode {
			ID = ids.alloc(node)
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%d\\n%s\" %s];\n", ID, node.size,
				weightsLabel(node.keys), dotStyles(false))
			for i := range node.children.len() {
				cc := node.children.get(i)
				cID := walk(cc, pos)
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, cID)
				pos += cc.size()
				if i < node.len() {
					pos += node.keys[i].Weight()
				}
			}
			return ID
		}
		leaf, _ := c.asLeaf()
		ID = ids.alloc(leaf)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%d @%d\\n%s\" %s];\n", ID, leaf.size, pos,
			weightsLabel(leaf.keys), dotStyles(true))
		return ID
	}
	walk(t.root, 0)
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist.String())
	write(edgelist.String())
	write("}\n")
	if err != nil {
		tracer().Errorf("ordbtree DOT: %s", err.Error())
	}
	return err
}

func weightsLabel[K Weighted](keys []K) string {
	if len(keys) == 0 {
		return "∅"
	}
	ws := make([]string, len(keys))
	for i, k := range keys {
		ws[i] = fmt.Sprintf("%d", k.Weight())
	}
	return "[" + strings.Join(ws, " ") + "]"
}

func dotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=ellipse"
	}
	return s
}
