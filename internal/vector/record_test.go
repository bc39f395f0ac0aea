package vector

import (
	"encoding/json"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRoundTrip(t *testing.T) {
	for _, o := range sampleObjects() {
		rec := ToRecord(o)
		data, err := json.Marshal(rec)
		require.NoError(t, err)

		var decoded Record
		require.NoError(t, json.Unmarshal(data, &decoded))
		back, err := FromRecord(decoded)
		require.NoError(t, err, o.Kind())

		assert.Equal(t, o.ID(), back.ID())
		assert.Equal(t, o.Bounds(), back.Bounds(), o.Kind())
		assert.Equal(t, o.Rasterize(12, 12), back.Rasterize(12, 12), o.Kind())
		assert.Equal(t, rec, ToRecord(back), o.Kind())
	}
}

func TestLegacyRecordDefaults(t *testing.T) {
	var r Record
	require.NoError(t, json.Unmarshal([]byte(`{"type":"line","x0":0,"y0":0,"x1":3,"y1":3,"color":[1,2,3,255]}`), &r))
	o, err := FromRecord(r)
	require.NoError(t, err)
	l := o.(*Line)
	assert.Equal(t, 1, l.Thickness)
	assert.Equal(t, uint8(2), l.Color().G)

	var gr Record
	require.NoError(t, json.Unmarshal([]byte(`{"type":"group","objects":[{"type":"pixel","x":1,"y":2,"color":[0,0,0,255]}]}`), &gr))
	o, err = FromRecord(gr)
	require.NoError(t, err)
	g := o.(*Group)
	assert.Equal(t, "Group", g.Name)
	assert.Equal(t, 1, g.Len())
}

func TestFromRecordErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want error
	}{
		{"unknown type", `{"type":"spline"}`, ErrUnknownType},
		{"missing coordinate", `{"type":"pixel","x":1,"color":[0,0,0,255]}`, ErrMissingField},
		{"missing color", `{"type":"circle","cx":1,"cy":1,"radius":2}`, ErrMissingField},
		{"short color", `{"type":"pixel","x":1,"y":1,"color":[0,0,0]}`, ErrBadField},
		{"color range", `{"type":"pixel","x":1,"y":1,"color":[0,0,300,255]}`, ErrBadField},
		{"empty path", `{"type":"path","points":[],"color":[0,0,0,255]}`, ErrMissingField},
		{"short point", `{"type":"path","points":[[3],[1,2]],"color":[0,0,0,255]}`, ErrBadField},
		{"long point", `{"type":"path","points":[[1,2,9]],"color":[0,0,0,255]}`, ErrBadField},
		{"bad id", `{"type":"pixel","id":"nope","x":1,"y":1,"color":[0,0,0,255]}`, ErrBadField},
		{"nested unknown", `{"type":"group","objects":[{"type":"pixel","x":0,"y":0,"color":[0,0,0,255]},{"type":"blob"}]}`, ErrUnknownType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Record
			require.NoError(t, json.Unmarshal([]byte(tt.json), &r))
			o, err := FromRecord(r)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, o)
		})
	}
}

func TestSingleVertexPathRoundTrip(t *testing.T) {
	p := NewPath([]image.Point{{X: 4, Y: 2}}, Black)
	o, err := FromRecord(ToRecord(p))
	require.NoError(t, err)
	got, ok := o.(*Path)
	require.True(t, ok)
	assert.Equal(t, []image.Point{{X: 4, Y: 2}}, got.Points)
	assert.Equal(t, p.ID(), got.ID())
}
