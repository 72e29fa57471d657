package ast

import (
	"reflect"
	"strings"
)

// The generic tree operations below discover a node's children through
// reflection over its exported fields, the same way ReleaseAST and the
// parser's nil checks already lean on reflect for interface-typed
// slots. A child slot is any exported field (or element of a slice
// field) whose type implements Node; plain structs such as WithClause
// or When that hold nodes without being nodes themselves are
// transparent, and their children are reported against the nearest
// enclosing node with a dotted key ("With.CTEs.Query").

var nodeType = reflect.TypeOf((*Node)(nil)).Elem()

// nodeAt extracts the Node held by an interface- or pointer-typed
// value, or nil when the slot is empty or not node-typed.
func nodeAt(v reflect.Value) Node {
	if v.Kind() != reflect.Interface && v.Kind() != reflect.Ptr {
		return nil
	}
	if !v.Type().Implements(nodeType) || v.IsNil() {
		return nil
	}
	n := v.Interface().(Node)
	if isNil(n) {
		return nil
	}
	return n
}

// eachChild reports every direct child of n, with the field key that
// holds it and its index within that field when it sits in a list (-1
// for scalar fields; children of a container that itself sits in a
// list inherit the container's index, keeping key/index pairs unique).
// Returning false from fn stops the enumeration.
func eachChild(n Node, fn func(child Node, key string, index int) bool) {
	v := reflect.ValueOf(n)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return
	}
	eachField(v.Elem(), "", -1, fn)
}

func eachField(sv reflect.Value, prefix string, index int, fn func(Node, string, int) bool) bool {
	t := sv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		key := f.Name
		if prefix != "" {
			key = prefix + "." + f.Name
		}
		if !visitValue(sv.Field(i), key, index, fn) {
			return false
		}
	}
	return true
}

func visitValue(v reflect.Value, key string, index int, fn func(Node, string, int) bool) bool {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return true
		}
		return visitValue(v.Elem(), key, index, fn)
	case reflect.Ptr:
		if v.IsNil() {
			return true
		}
		if n := nodeAt(v); n != nil {
			return fn(n, key, index)
		}
		if v.Elem().Kind() == reflect.Struct {
			return eachField(v.Elem(), key, index, fn)
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			if !visitValue(v.Index(i), key, i, fn) {
				return false
			}
		}
	}
	return true
}

// Walk traverses the tree rooted at root in pre-order, calling fn with
// each node, its parent, and the key of the parent field holding it
// (the root is reported with a nil parent and empty key). Returning
// false skips the node's children.
func Walk(root Node, fn func(n, parent Node, key string) bool) {
	walkFrom(root, nil, "", fn)
}

func walkFrom(n, parent Node, key string, fn func(Node, Node, string) bool) {
	if isNil(n) {
		return
	}
	if !fn(n, parent, key) {
		return
	}
	eachChild(n, func(c Node, k string, _ int) bool {
		walkFrom(c, n, k, fn)
		return true
	})
}

// Link establishes the parent/arg-key/arg-index references for every
// node in the tree. The parser links each statement before returning
// it; callers that build or splice subtrees by hand can re-link a tree
// at any time.
func Link(root Node) {
	if isNil(root) {
		return
	}
	root.setRef(nil, "", -1)
	linkChildren(root)
}

func linkChildren(n Node) {
	eachChild(n, func(c Node, key string, index int) bool {
		c.setRef(n, key, index)
		linkChildren(c)
		return true
	})
}

// Find returns the first node in the tree (pre-order, including root
// itself) whose concrete type is T.
func Find[T Node](root Node) (T, bool) {
	var out T
	found := false
	Walk(root, func(n, _ Node, _ string) bool {
		if found {
			return false
		}
		if t, ok := n.(T); ok {
			out = t
			found = true
			return false
		}
		return true
	})
	return out, found
}

// FindAll returns every node in the tree (pre-order, including root
// itself) whose concrete type is T.
func FindAll[T Node](root Node) []T {
	var out []T
	Walk(root, func(n, _ Node, _ string) bool {
		if t, ok := n.(T); ok {
			out = append(out, t)
		}
		return true
	})
	return out
}

// Arg returns the child held by parent's key field, at position index
// when the field is a list (-1 for a scalar field), or nil when the
// slot is empty or absent. It is the read-back counterpart of a node's
// ArgKey/ArgIndex.
func Arg(parent Node, key string, index int) Node {
	if isNil(parent) {
		return nil
	}
	var out Node
	eachChild(parent, func(c Node, k string, i int) bool {
		if k == key && i == index {
			out = c
			return false
		}
		return true
	})
	return out
}

// fieldByPath resolves a dotted arg key ("Where", "With.CTEs") to the
// field value that holds it, following transparent container pointers.
func fieldByPath(parent Node, key string) (reflect.Value, bool) {
	v := reflect.ValueOf(parent)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return reflect.Value{}, false
	}
	sv := v.Elem()
	parts := strings.Split(key, ".")
	for i, name := range parts {
		if sv.Kind() != reflect.Struct {
			return reflect.Value{}, false
		}
		fv := sv.FieldByName(name)
		if !fv.IsValid() {
			return reflect.Value{}, false
		}
		if i == len(parts)-1 {
			return fv, true
		}
		if fv.Kind() != reflect.Ptr || fv.IsNil() {
			return reflect.Value{}, false
		}
		sv = fv.Elem()
	}
	return reflect.Value{}, false
}

// Set places child in parent's key field, linking child there and
// clearing the links on any displaced node. A nil child empties the
// slot. It reports whether the field exists, holds a single node, and
// accepts the child's type; list fields take Append instead.
func Set(parent Node, key string, child Node) bool {
	if isNil(parent) {
		return false
	}
	fv, ok := fieldByPath(parent, key)
	if !ok || (fv.Kind() != reflect.Interface && fv.Kind() != reflect.Ptr) {
		return false
	}
	if !fv.Type().Implements(nodeType) {
		return false
	}
	if isNil(child) {
		if old := nodeAt(fv); old != nil {
			old.setRef(nil, "", -1)
		}
		fv.Set(reflect.Zero(fv.Type()))
		return true
	}
	cv := reflect.ValueOf(child)
	if !cv.Type().AssignableTo(fv.Type()) {
		return false
	}
	if old := nodeAt(fv); old != nil {
		old.setRef(nil, "", -1)
	}
	fv.Set(cv)
	child.setRef(parent, key, -1)
	return true
}

// Append extends the list at parent's key field with child, linking it
// at its new index. It reports whether the field exists, is a list of
// nodes, and accepts the child's type.
func Append(parent Node, key string, child Node) bool {
	if isNil(parent) || isNil(child) {
		return false
	}
	fv, ok := fieldByPath(parent, key)
	if !ok || fv.Kind() != reflect.Slice {
		return false
	}
	et := fv.Type().Elem()
	if !et.Implements(nodeType) {
		return false
	}
	cv := reflect.ValueOf(child)
	if !cv.Type().AssignableTo(et) {
		return false
	}
	fv.Set(reflect.Append(fv, cv))
	child.setRef(parent, key, fv.Len()-1)
	return true
}

// Transform applies fn to every node bottom-up and returns the
// (re-linked) result. fn may return its argument unchanged, a
// replacement node, or nil to remove the node from its parent: list
// slots splice closed, scalar slots empty out. Replacements are not
// descended into, so a single pass terminates even when fn keeps
// producing nodes of the kind it matches. With copyTree set the input
// tree is Copy'd first and left untouched.
func Transform(root Node, fn func(Node) Node, copyTree bool) Node {
	if isNil(root) {
		return nil
	}
	if copyTree {
		root = Copy(root)
	}
	out := transformNode(root, fn)
	if isNil(out) {
		return nil
	}
	Link(out)
	return out
}

func transformNode(n Node, fn func(Node) Node) Node {
	rewriteFields(reflect.ValueOf(n).Elem(), fn)
	return fn(n)
}

func rewriteFields(sv reflect.Value, fn func(Node) Node) {
	t := sv.Type()
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).PkgPath != "" {
			continue
		}
		rewriteValue(sv.Field(i), fn)
	}
}

func rewriteValue(fv reflect.Value, fn func(Node) Node) {
	switch fv.Kind() {
	case reflect.Interface, reflect.Ptr:
		if fv.IsNil() {
			return
		}
		if n := nodeAt(fv); n != nil {
			repl := transformNode(n, fn)
			if isNil(repl) {
				fv.Set(reflect.Zero(fv.Type()))
			} else if repl != n {
				rv := reflect.ValueOf(repl)
				if rv.Type().AssignableTo(fv.Type()) {
					fv.Set(rv)
				}
			}
			return
		}
		if fv.Kind() == reflect.Ptr && fv.Elem().Kind() == reflect.Struct {
			rewriteFields(fv.Elem(), fn)
		}
	case reflect.Slice:
		removed := false
		for i := 0; i < fv.Len(); i++ {
			ev := fv.Index(i)
			switch ev.Kind() {
			case reflect.Interface, reflect.Ptr:
				if ev.IsNil() {
					continue
				}
				if n := nodeAt(ev); n != nil {
					repl := transformNode(n, fn)
					if isNil(repl) {
						ev.Set(reflect.Zero(ev.Type()))
						removed = true
					} else if repl != n {
						rv := reflect.ValueOf(repl)
						if rv.Type().AssignableTo(ev.Type()) {
							ev.Set(rv)
						}
					}
				} else if ev.Kind() == reflect.Ptr && ev.Elem().Kind() == reflect.Struct {
					rewriteFields(ev.Elem(), fn)
				}
			case reflect.Slice:
				rewriteValue(ev, fn)
			}
		}
		if removed {
			ns := reflect.MakeSlice(fv.Type(), 0, fv.Len())
			for i := 0; i < fv.Len(); i++ {
				ev := fv.Index(i)
				if (ev.Kind() == reflect.Interface || ev.Kind() == reflect.Ptr) && ev.IsNil() {
					continue
				}
				ns = reflect.Append(ns, ev)
			}
			fv.Set(ns)
		}
	}
}

// Copy returns a structural deep clone of the tree rooted at n. The
// clone is freshly allocated (it never shares nodes with a pooled
// original), fully linked, and safe to edit or Repool independently.
func Copy(n Node) Node {
	if isNil(n) {
		return nil
	}
	c := copyValue(reflect.ValueOf(n)).Interface().(Node)
	Walk(c, func(cn, _ Node, _ string) bool {
		cn.detachComments()
		return true
	})
	Link(c)
	return c
}

func copyValue(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() || v.Elem().Kind() != reflect.Struct {
			return v
		}
		np := reflect.New(v.Type().Elem())
		np.Elem().Set(v.Elem())
		sv := np.Elem()
		t := sv.Type()
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).PkgPath != "" {
				continue
			}
			fv := sv.Field(i)
			switch fv.Kind() {
			case reflect.Ptr, reflect.Interface, reflect.Slice:
				fv.Set(copyValue(fv))
			}
		}
		return np
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		return copyValue(v.Elem())
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		ns := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			ev := v.Index(i)
			switch ev.Kind() {
			case reflect.Ptr, reflect.Interface, reflect.Slice:
				ns.Index(i).Set(copyValue(ev))
			default:
				ns.Index(i).Set(ev)
			}
		}
		return ns
	default:
		return v
	}
}
