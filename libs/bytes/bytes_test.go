package bytes_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hxbytes "github.com/helix-ledger/helix/libs/bytes"
)

// This is a trivial test for protobuf compatibility.
func TestMarshal(t *testing.T) {
	bz := []byte("hello world")
	dataB := hxbytes.HexBytes(bz)
	bz2, err := dataB.Marshal()
	require.NoError(t, err)
	assert.Equal(t, bz, bz2)

	var dataB2 hxbytes.HexBytes
	err = (&dataB2).Unmarshal(bz)
	require.NoError(t, err)
	assert.Equal(t, dataB, dataB2)
}

// Test that the hex encoding works.
func TestJSONMarshal(t *testing.T) {
	type TestStruct struct {
		B1 []byte           `json:"B1"`
		B2 hxbytes.HexBytes `json:"B2"`
	}

	cases := []struct {
		input    []byte
		expected string
	}{
		{[]byte(``), `{"B1":"","B2":""}`},
		{[]byte(`a`), `{"B1":"YQ==","B2":"61"}`},
		{[]byte(`abc`), `{"B1":"YWJj","B2":"616263"}`},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("Case %d", i), func(t *testing.T) {
			ts := TestStruct{B1: tc.input, B2: tc.input}

			// Test that it marshals correctly to JSON.
			jsonBytes, err := json.Marshal(ts)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, string(jsonBytes))

			// Test that unmarshaling works correctly.
			ts2 := TestStruct{}
			err = json.Unmarshal(jsonBytes, &ts2)
			require.NoError(t, err)
			assert.Equal(t, ts.B1, ts2.B1)
			assert.Equal(t, ts.B2, ts2.B2)
		})
	}
}

func TestFromHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr bool
	}{
		{"Bare", "deadbeef", []byte{0xde, 0xad, 0xbe, 0xef}, false},
		{"Prefixed", "0xdeadbeef", []byte{0xde, 0xad, 0xbe, 0xef}, false},
		{"UpperPrefix", "0XDEADBEEF", []byte{0xde, 0xad, 0xbe, 0xef}, false},
		{"Empty", "", []byte{}, false},
		{"PrefixOnly", "0x", []byte{}, false},
		{"OddLength", "0x123", nil, true},
		{"NotHex", "0xzz", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bz, err := hxbytes.FromHex(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, hxbytes.HexBytes(tt.want), bz)
		})
	}
}

func TestStringAndFormat(t *testing.T) {
	bz := hxbytes.HexBytes{0xde, 0xad, 0xbe, 0xef}

	assert.Equal(t, "DEADBEEF", bz.String())
	assert.Equal(t, "DEADBEEF", fmt.Sprintf("%X", bz))
	assert.Equal(t, "DEADBEEF", fmt.Sprintf("%v", bz))
	assert.Equal(t, []byte(bz), bz.Bytes())
}
