package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_ExtractsDataObject(t *testing.T) {
	data, err := Decode([]byte(`{"data":{"name":"Pasta","price":12}}`))
	require.NoError(t, err)
	require.True(t, data.NonEmptyString("name"))
	price, ok := data.Integer("price")
	require.True(t, ok)
	require.Equal(t, 12, price)
}

func TestDecode_MissingOrNonObjectDataIsEmpty(t *testing.T) {
	for _, body := range []string{``, `   `, `{}`, `{"data":null}`, `{"data":[1,2]}`, `{"data":"x"}`} {
		data, err := Decode([]byte(body))
		require.NoError(t, err, body)
		assert.Empty(t, data, body)
	}
}

func TestDecode_MalformedJSON(t *testing.T) {
	_, err := Decode([]byte(`{"data":`))
	require.ErrorIs(t, err, ErrMalformedBody)
}

func TestData_Has(t *testing.T) {
	data := Data{"name": "", "price": float64(0), "gone": nil}
	assert.True(t, data.Has("name"))
	assert.True(t, data.Has("price"))
	assert.False(t, data.Has("gone"))
	assert.False(t, data.Has("missing"))
}

func TestAsInteger(t *testing.T) {
	cases := []struct {
		value any
		want  int
		ok    bool
	}{
		{float64(3), 3, true},
		{float64(12.0), 12, true},
		{float64(-5), -5, true},
		{float64(3000000000), 3000000000, true},
		{float64(1 << 53), 1 << 53, true},
		{float64(1<<53) * 2, 0, false},
		{float64(1.5), 0, false},
		{"3", 0, false},
		{true, 0, false},
		{nil, 0, false},
	}
	for _, tc := range cases {
		got, ok := AsInteger(tc.value)
		assert.Equal(t, tc.ok, ok, "%v", tc.value)
		assert.Equal(t, tc.want, got, "%v", tc.value)
	}
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(nil))
	assert.False(t, Truthy(""))
	assert.False(t, Truthy(float64(0)))
	assert.False(t, Truthy(false))
	assert.True(t, Truthy("abc"))
	assert.True(t, Truthy(float64(7)))
	assert.True(t, Truthy(map[string]any{}))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "abc", Describe("abc"))
	assert.Equal(t, "42", Describe(float64(42)))
	assert.Equal(t, "1.5", Describe(float64(1.5)))
	assert.Equal(t, "true", Describe(true))
}
