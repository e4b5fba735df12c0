package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskUpdate_FieldPresence(t *testing.T) {
	var upd TaskUpdate
	err := json.Unmarshal([]byte(`{"title":"X","start_date":null,"position":3}`), &upd)
	require.NoError(t, err)

	title, ok := upd.Title.Get()
	assert.True(t, upd.Title.IsSet())
	assert.True(t, ok)
	assert.Equal(t, "X", title)

	assert.True(t, upd.StartDate.IsSet())
	assert.True(t, upd.StartDate.IsNull())

	pos, ok := upd.Position.Get()
	assert.True(t, ok)
	assert.Equal(t, 3, pos)

	assert.False(t, upd.EndDate.IsSet())
	assert.False(t, upd.Notes.IsSet())
	assert.False(t, upd.Location.IsSet())
}

func TestTaskUpdate_InvalidDate(t *testing.T) {
	var upd TaskUpdate
	err := json.Unmarshal([]byte(`{"assigned_date":"15/03/2024"}`), &upd)
	assert.Error(t, err)
}

func TestField_Marshal(t *testing.T) {
	b, err := json.Marshal(struct {
		A Field[string] `json:"a"`
		B Field[string] `json:"b"`
	}{A: Value("x"), B: Null[string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"x","b":null}`, string(b))
}

func TestDate_JSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-15"`), &d))
	assert.Equal(t, "2024-03-15", d.String())

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15"`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`20240315`), &d))
}

func TestLocationFromMap(t *testing.T) {
	tests := []struct {
		name      string
		in        map[string]any
		wantPlace bool
		want      map[string]any
	}{
		{
			name:      "full place",
			in:        map[string]any{"name": "Home", "address": "1 Main St", "lat": 1.5, "lon": -2.0},
			wantPlace: true,
			want:      map[string]any{"name": "Home", "address": "1 Main St", "lat": 1.5, "lon": -2.0},
		},
		{
			name:      "partial place is padded",
			in:        map[string]any{"name": "Gym"},
			wantPlace: true,
			want:      map[string]any{"name": "Gym", "address": nil, "lat": nil, "lon": nil},
		},
		{
			name: "unknown key stays raw",
			in:   map[string]any{"name": "Cafe", "placeId": "abc"},
			want: map[string]any{"name": "Cafe", "placeId": "abc"},
		},
		{
			name: "wrong type stays raw",
			in:   map[string]any{"lat": "north"},
			want: map[string]any{"lat": "north"},
		},
		{
			name: "empty stays raw",
			in:   map[string]any{},
			want: map[string]any{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := LocationFromMap(tt.in)
			assert.Equal(t, tt.wantPlace, loc.Place != nil)
			assert.Equal(t, tt.want, loc.Map())
		})
	}
}

func TestLocation_JSON(t *testing.T) {
	var loc Location
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Park","lat":10,"lon":20}`), &loc))
	require.NotNil(t, loc.Place)
	assert.Equal(t, 10.0, *loc.Place.Lat)

	b, err := json.Marshal(loc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Park","address":null,"lat":10,"lon":20}`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`"somewhere"`), &loc))
}
