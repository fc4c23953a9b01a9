package recoplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decibelcooper/recoplot/record"
)

func TestParseInputTag(t *testing.T) {
	tests := []struct {
		in      string
		want    InputTag
		wantErr bool
	}{
		{in: "generator", want: InputTag{Label: "generator"}},
		{in: "linecluster:hits", want: InputTag{Label: "linecluster", Instance: "hits"}},
		{in: "pandora:vtx:Reco", want: InputTag{Label: "pandora", Instance: "vtx", Process: "Reco"}},
		{in: "pandora::Reco", want: InputTag{Label: "pandora", Process: "Reco"}},
		{in: "", wantErr: true},
		{in: ":hits", wantErr: true},
		{in: "a:b:c:d", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseInputTag(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestGetValid(t *testing.T) {
	ev := NewMemEvent()
	vtxTag := InputTag{Label: "vertexfit"}
	ev.Put(vtxTag, []record.Vertex{{ID: 3}})

	t.Run("found", func(t *testing.T) {
		vertices, err := GetValid[[]record.Vertex](ev, vtxTag)
		require.NoError(t, err)
		assert.Equal(t, []record.Vertex{{ID: 3}}, vertices)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := GetValid[[]record.Vertex](ev, InputTag{Label: "pmtrack"})
		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.Contains(t, err.Error(), "pmtrack")
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := GetValid[[]record.Cluster](ev, vtxTag)
		assert.ErrorIs(t, err, ErrWrongType)
		assert.Contains(t, err.Error(), "[]record.Vertex")
	})
}

func TestMemEventTags(t *testing.T) {
	ev := NewMemEvent()
	ev.Put(InputTag{Label: "b"}, 1)
	ev.Put(InputTag{Label: "a", Instance: "x"}, 2)
	ev.Put(InputTag{Label: "b"}, 3)

	assert.Equal(t, []InputTag{{Label: "a", Instance: "x"}, {Label: "b"}}, ev.Tags())
	prod, ok := ev.Product(InputTag{Label: "b"})
	assert.True(t, ok)
	assert.Equal(t, 3, prod)
}
