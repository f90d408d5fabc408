package tree_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlds/tree"
)

// sample wires the seven-node tree
//
//	      4
//	   10    2
//	  7  1  9  5
func sample() *tree.Node[int] {
	root := tree.NewNode(4)
	root.Left = tree.NewNode(10)
	root.Right = tree.NewNode(2)
	root.Left.Left = tree.NewNode(7)
	root.Left.Right = tree.NewNode(1)
	root.Right.Left = tree.NewNode(9)
	root.Right.Right = tree.NewNode(5)

	return root
}

func lines(ls ...string) string { return strings.Join(ls, "\n") + "\n" }

func TestPrint_Rotated(t *testing.T) {
	want := lines(
		"      / 5",
		"   / 2",
		"      \\ 9",
		"4",
		"      / 1",
		"   \\ 10",
		"      \\ 7",
	)
	assert.Equal(t, want, tree.Sprint(sample()))
}

func TestPrint_SmallAndNil(t *testing.T) {
	root := tree.NewNode(4)
	root.Left = tree.NewNode(2)
	root.Right = tree.NewNode(6)
	assert.Equal(t, "   / 6\n4\n   \\ 2\n", tree.Sprint(root))
	assert.Equal(t, "  / 6\n4\n  \\ 2\n", tree.Sprint(root, tree.WithIndent(2)))
	assert.Equal(t, "   / 6\n4\n   \\ 2\n", tree.Sprint(root, tree.WithIndent(-5)))

	assert.Equal(t, "", tree.Sprint[int](nil))
}

func TestTraversals(t *testing.T) {
	root := sample()
	assert.Equal(t, []int{7, 10, 1, 4, 9, 2, 5}, slices.Collect(tree.InOrder(root)))
	assert.Equal(t, []int{4, 10, 7, 1, 2, 9, 5}, slices.Collect(tree.PreOrder(root)))
	assert.Equal(t, []int{7, 1, 10, 9, 5, 2, 4}, slices.Collect(tree.PostOrder(root)))
	assert.Empty(t, slices.Collect(tree.InOrder[int](nil)))

	var firstTwo []int
	for v := range tree.PreOrder(root) {
		firstTwo = append(firstTwo, v)
		if len(firstTwo) == 2 {
			break
		}
	}
	assert.Equal(t, []int{4, 10}, firstTwo)
}

func TestHeightAndSize(t *testing.T) {
	root := sample()
	assert.Equal(t, 3, tree.Height(root))
	assert.Equal(t, 7, tree.Size(root))
	assert.Equal(t, 0, tree.Height[int](nil))
	assert.Equal(t, 0, tree.Size[int](nil))
}

func TestDeleteSubtree(t *testing.T) {
	root := sample()
	left := root.Left
	tree.DeleteSubtree(left)
	root.Left = nil

	require.Nil(t, left.Left)
	require.Nil(t, left.Right)
	assert.Equal(t, 4, tree.Size(root))
	assert.Equal(t, lines("      / 5", "   / 2", "      \\ 9", "4"), tree.Sprint(root))

	tree.DeleteSubtree(root)
	assert.Equal(t, 1, tree.Size(root))
	assert.NotPanics(t, func() { tree.DeleteSubtree[int](nil) })
}
