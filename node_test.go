package willowgui

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewNode_AssignsUniqueIDs(t *testing.T) {
	a := NewContainer("a", Props{})
	b := NewContainer("b", Props{})
	if a.ID == 0 || a.ID == b.ID {
		t.Errorf("IDs = %d, %d; want unique non-zero", a.ID, b.ID)
	}
}

func TestNewNode_UnknownKind(t *testing.T) {
	for _, k := range []NodeKind{kindSliderThumb, kindListClip, NodeKind(99)} {
		if _, err := NewNode(k, "x", Props{}); !errors.Is(err, ErrUnknownKind) {
			t.Errorf("NewNode(%v) err = %v, want ErrUnknownKind", k, err)
		}
	}
}

func TestAddChild(t *testing.T) {
	parent := box("parent", 0, 0, 100, 100)
	a, b := box("a", 0, 0, 10, 10), box("b", 0, 0, 10, 10)
	parent.AddChild(a)
	parent.AddChild(b)

	if parent.NumChildren() != 2 || parent.ChildAt(0) != a || parent.ChildAt(1) != b {
		t.Errorf("children = %v, want a b", names(parent.Children()))
	}
	if a.Parent() != parent {
		t.Error("a.Parent() should be parent")
	}
}

func TestAddChildBefore(t *testing.T) {
	parent := box("parent", 0, 0, 100, 100)
	a, b, c := box("a", 0, 0, 10, 10), box("b", 0, 0, 10, 10), box("c", 0, 0, 10, 10)
	parent.AddChild(a)
	parent.AddChild(c)
	parent.AddChildBefore(b, c)
	if got := strings.Join(names(parent.Children()), " "); got != "a b c" {
		t.Errorf("children = %q, want \"a b c\"", got)
	}

	// Unknown sibling appends.
	d := box("d", 0, 0, 10, 10)
	parent.AddChildBefore(d, box("stranger", 0, 0, 1, 1))
	if parent.ChildAt(3) != d {
		t.Errorf("children = %v, want d last", names(parent.Children()))
	}
}

func TestAddChildBefore_ReorderWithinParent(t *testing.T) {
	parent := box("parent", 0, 0, 100, 100)
	a, b, c := box("a", 0, 0, 10, 10), box("b", 0, 0, 10, 10), box("c", 0, 0, 10, 10)
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	parent.AddChildBefore(c, a)
	if got := strings.Join(names(parent.Children()), " "); got != "c a b" {
		t.Errorf("children = %q, want \"c a b\"", got)
	}
}

func TestAddChildBefore_ReorderForward(t *testing.T) {
	tests := []struct {
		name    string
		move    string
		sibling string
		want    string
	}{
		{"first before last", "a", "c", "b a c"},
		{"first before second", "a", "b", "a b c"},
		{"second before last", "b", "c", "a b c"},
		{"first to end", "a", "", "b c a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := box("parent", 0, 0, 100, 100)
			byName := map[string]*Node{}
			for _, name := range []string{"a", "b", "c"} {
				byName[name] = box(name, 0, 0, 10, 10)
				parent.AddChild(byName[name])
			}
			parent.AddChildBefore(byName[tt.move], byName[tt.sibling])
			if got := strings.Join(names(parent.Children()), " "); got != tt.want {
				t.Errorf("children = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddChild_Reparents(t *testing.T) {
	p1 := box("p1", 0, 0, 100, 100)
	p2 := box("p2", 0, 0, 100, 100)
	child := box("child", 0, 0, 10, 10)
	p1.AddChild(child)
	p2.AddChild(child)

	if p1.NumChildren() != 0 {
		t.Errorf("p1 children = %d, want 0", p1.NumChildren())
	}
	if child.Parent() != p2 {
		t.Error("child should belong to p2")
	}
}

func TestAddChild_InheritsLayer(t *testing.T) {
	_, l := newTestSystem(t, 100, 100)
	root := box("root", 0, 0, 100, 100)
	l.AddRoot(root)

	child := box("child", 0, 0, 10, 10)
	grand := box("grand", 0, 0, 5, 5)
	child.AddChild(grand)
	root.AddChild(child)

	if child.Layer() != l || grand.Layer() != l {
		t.Error("attached subtree should inherit the layer")
	}
	if !grand.transformValid {
		t.Error("attached subtree should have a computed transform")
	}
}

func TestAddChild_Panics(t *testing.T) {
	tests := []struct {
		name  string
		setup func() (parent, child *Node)
		want  string
	}{
		{"nil child", func() (*Node, *Node) {
			return box("p", 0, 0, 1, 1), nil
		}, "nil child"},
		{"self", func() (*Node, *Node) {
			n := box("n", 0, 0, 1, 1)
			return n, n
		}, "cycle"},
		{"ancestor", func() (*Node, *Node) {
			root := box("root", 0, 0, 1, 1)
			child := box("child", 0, 0, 1, 1)
			root.AddChild(child)
			return child, root
		}, "cycle"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent, child := tt.setup()
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				if msg := fmt.Sprint(r); !strings.Contains(msg, tt.want) {
					t.Errorf("panic = %q, want mention of %q", msg, tt.want)
				}
			}()
			parent.AddChild(child)
		})
	}
}

func TestRemoveChild(t *testing.T) {
	_, l := newTestSystem(t, 100, 100)
	root := box("root", 0, 0, 100, 100)
	child := box("child", 0, 0, 10, 10)
	grand := box("grand", 0, 0, 5, 5)
	child.AddChild(grand)
	root.AddChild(child)
	l.AddRoot(root)

	root.RemoveChild(child)
	if root.NumChildren() != 0 {
		t.Errorf("children = %d, want 0", root.NumChildren())
	}
	if child.Parent() != nil || child.Layer() != nil || grand.Layer() != nil {
		t.Error("removed subtree should be detached")
	}
	if child.Visible() || grand.Visible() {
		t.Error("removed subtree should not be visible")
	}
	// The removed subtree keeps its own structure.
	if grand.Parent() != child {
		t.Error("grand should still belong to child")
	}
}

func TestRemoveChild_WrongParentPanics(t *testing.T) {
	parent := box("parent", 0, 0, 1, 1)
	other := box("other", 0, 0, 1, 1)
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	parent.RemoveChild(other)
}

func TestRemoveFromParent(t *testing.T) {
	_, l := newTestSystem(t, 100, 100)
	root := box("root", 0, 0, 100, 100)
	child := box("child", 0, 0, 10, 10)
	root.AddChild(child)
	l.AddRoot(root)

	child.RemoveFromParent()
	if root.NumChildren() != 0 {
		t.Error("child should be removed")
	}
	root.RemoveFromParent()
	if len(l.Roots()) != 0 {
		t.Error("root should be removed from its layer")
	}
	// No-op when detached.
	root.RemoveFromParent()
}

func TestChildAt_OutOfRange(t *testing.T) {
	n := box("n", 0, 0, 1, 1)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range index")
		}
	}()
	n.ChildAt(0)
}
