package recoplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func letterAssns() *Assns[string, int, byte] {
	a := NewAssns[string, int, byte]([]string{"A", "B", "C"}, []int{10, 20, 30, 40})
	a.Add(0, 0, 'a')
	a.Add(0, 1, 'b')
	a.Add(2, 2, 'c')
	a.Add(2, 3, 'd')
	a.Add(2, 0, 'e')
	return a
}

func TestFindMany(t *testing.T) {
	a := letterAssns()
	fm, err := NewFindMany(3, a)
	require.NoError(t, err)
	assert.Equal(t, 3, fm.Size())

	rights, data := fm.At(0)
	require.Len(t, rights, 2)
	assert.Equal(t, 10, *rights[0])
	assert.Equal(t, 20, *rights[1])
	assert.Equal(t, []byte{'a', 'b'}, data)

	rights, data = fm.At(1)
	assert.Empty(t, rights)
	assert.Empty(t, data)

	rights, data = fm.At(2)
	require.Len(t, rights, 3)
	assert.Equal(t, 30, *rights[0])
	assert.Equal(t, 40, *rights[1])
	assert.Equal(t, 10, *rights[2])
	assert.Equal(t, []byte{'c', 'd', 'e'}, data)

	rights, _ = fm.At(7)
	assert.Nil(t, rights)
}

func TestFindManyErrors(t *testing.T) {
	a := letterAssns()
	_, err := NewFindMany(2, a)
	assert.Error(t, err)

	a.Add(3, 0, 'x')
	_, err = NewFindMany(3, a)
	assert.Error(t, err)

	b := letterAssns()
	b.Add(1, 9, 'y')
	_, err = NewFindMany(3, b)
	assert.Error(t, err)
	assert.Error(t, b.Groups(func(*string, []*int, []byte) {}))
	_, err = b.Pairs()
	assert.Error(t, err)
}

func TestAssnsGroups(t *testing.T) {
	a := letterAssns()

	var (
		lefts []string
		sizes []int
		data  []byte
	)
	err := a.Groups(func(left *string, rights []*int, d []byte) {
		lefts = append(lefts, *left)
		sizes = append(sizes, len(rights))
		data = append(data, d...)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, lefts)
	assert.Equal(t, []int{2, 3}, sizes)
	assert.Equal(t, []byte("abcde"), data)
}

func TestAssnsPairs(t *testing.T) {
	a := letterAssns()
	ps, err := a.Pairs()
	require.NoError(t, err)
	require.Len(t, ps, a.Len())

	assert.Same(t, &a.Lefts[0], ps[0].Left)
	assert.Same(t, &a.Rights[1], ps[1].Right)
	assert.Same(t, &a.Lefts[2], ps[4].Left)
}

func TestAssnsSortByLeft(t *testing.T) {
	a := NewAssns[string, int, byte]([]string{"A", "B"}, []int{1, 2, 3})
	a.Add(1, 0, 'a')
	a.Add(0, 1, 'b')
	a.Add(1, 2, 'c')
	a.Add(0, 0, 'd')

	var before int
	require.NoError(t, a.Groups(func(*string, []*int, []byte) { before++ }))
	assert.Equal(t, 4, before)

	a.SortByLeft()
	var data []byte
	for _, e := range a.Entries {
		data = append(data, e.Data)
	}
	assert.Equal(t, []byte("bdac"), data)

	var after int
	require.NoError(t, a.Groups(func(*string, []*int, []byte) { after++ }))
	assert.Equal(t, 2, after)
}

func TestNilAssns(t *testing.T) {
	var a *Assns[string, int, byte]

	_, err := NewFindMany(0, a)
	assert.Error(t, err)
	assert.Error(t, a.Groups(func(*string, []*int, []byte) {}))
	_, err = a.Pairs()
	assert.Error(t, err)
}
