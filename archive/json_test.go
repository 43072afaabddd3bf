package archive

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSONWireShape(t *testing.T) {
	a, err := Compress([]Capture{
		{Timestamp: "20230101120000", Hash: "AAA"},
		{Timestamp: "20230101180000", Hash: "BBB"},
		{Timestamp: "20230215000000", Hash: "AAA"},
	})
	require.NoError(t, err)

	data, err := json.Marshal(a)
	require.NoError(t, err)

	want := `{"captures":[[2023,[1,[1,["120000",0],["180000",1]]],[2,[15,["000000",0]]]]],"hashes":["AAA","BBB"]}`
	assert.JSONEq(t, want, string(data))
	assert.Equal(t, want, string(data), "wire form is canonical, not just equivalent")
}

func TestMarshalJSONEmptyArchive(t *testing.T) {
	data, err := json.Marshal(&Archive{})
	require.NoError(t, err)
	assert.Equal(t, `{"captures":[],"hashes":[]}`, string(data))
}

func TestJSONRoundTrip(t *testing.T) {
	a, err := Compress([]Capture{
		{Timestamp: "20221231235959", Hash: "x1"},
		{Timestamp: "20230101000000", Hash: "x2"},
		{Timestamp: "20230101000001", Hash: "x1"},
		{Timestamp: "20230630120000", Hash: "x3"},
	})
	require.NoError(t, err)

	data, err := json.Marshal(a)
	require.NoError(t, err)

	var back Archive
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, a.Captures, back.Captures)
	assert.Equal(t, a.Hashes, back.Hashes)
}

func TestUnmarshalJSONMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{{{`},
		{"year entry not array", `{"captures":[2023],"hashes":[]}`},
		{"empty year entry", `{"captures":[[]],"hashes":[]}`},
		{"year key not number", `{"captures":[["2023"]],"hashes":[]}`},
		{"month entry not array", `{"captures":[[2023,1]],"hashes":[]}`},
		{"empty day entry", `{"captures":[[2023,[1,[]]]],"hashes":[]}`},
		{"pair too short", `{"captures":[[2023,[1,[1,["120000"]]]]],"hashes":[]}`},
		{"pair suffix not string", `{"captures":[[2023,[1,[1,[120000,0]]]]],"hashes":[]}`},
		{"pair id not number", `{"captures":[[2023,[1,[1,["120000","0"]]]]],"hashes":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Archive
			assert.Error(t, json.Unmarshal([]byte(tt.data), &a))
		})
	}
}
