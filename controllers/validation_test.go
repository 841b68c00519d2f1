package controllers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawFields(t *testing.T, body string) map[string]json.RawMessage {
	t.Helper()
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &fields))
	return fields
}

func TestParseFoodInput(t *testing.T) {
	in, errs := parseFoodInput(rawFields(t, `{"name":"Arroz","category":"Cereal","calories":130,"protein":2.7}`))
	require.Empty(t, errs)
	assert.Equal(t, "Arroz", in.Name)
	assert.Equal(t, float64(130), in.Calories)
	require.NotNil(t, in.Category)
	assert.Equal(t, "Cereal", *in.Category)
	require.NotNil(t, in.Protein)
	assert.Equal(t, 2.7, *in.Protein)
	assert.Nil(t, in.Carbs)
	assert.Nil(t, in.Fat)
}

func TestParseFoodInputErrors(t *testing.T) {
	cases := []string{
		`{"calories":10}`,
		`{"name":"","calories":10}`,
		`{"name":"X"}`,
		`{"name":"X","calories":null}`,
		`{"name":"X","calories":"ten"}`,
		`{"name":"X","calories":10,"category":3}`,
		`{"name":"X","calories":10,"protein":"a"}`,
	}
	for _, body := range cases {
		_, errs := parseFoodInput(rawFields(t, body))
		assert.NotEmpty(t, errs, body)
	}
}

func TestParseMealFoodsCreateVersusUpdate(t *testing.T) {
	// create: key required
	_, errs := parseMealFoods(rawFields(t, `{}`), true)
	assert.NotEmpty(t, errs)

	// update: omitted key means no patch, not an error
	foods, errs := parseMealFoods(rawFields(t, `{}`), false)
	assert.Empty(t, errs)
	assert.Nil(t, foods)

	// present but empty is rejected in both modes
	for _, required := range []bool{true, false} {
		_, errs := parseMealFoods(rawFields(t, `{"foods":[]}`), required)
		assert.NotEmpty(t, errs)
	}

	// wrong type
	_, errs = parseMealFoods(rawFields(t, `{"foods":"abc"}`), true)
	assert.NotEmpty(t, errs)

	// well-formed
	foods, errs = parseMealFoods(rawFields(t, `{"foods":["a","b"]}`), false)
	require.Empty(t, errs)
	require.NotNil(t, foods)
	assert.Equal(t, []string{"a", "b"}, *foods)
}

func TestParseRegisterInput(t *testing.T) {
	in, errs := parseRegisterInput(rawFields(t, `{"name":"Ana","email":"ana@example.com","password":"123456"}`))
	require.Empty(t, errs)
	assert.Equal(t, "Ana", in.Name)

	cases := []string{
		`{"email":"ana@example.com","password":"123456"}`,
		`{"name":123,"email":"ana@example.com","password":"123456"}`,
		`{"name":"Ana","email":"not-an-email","password":"123456"}`,
		`{"name":"Ana","email":"ana@example.com","password":"123"}`,
	}
	for _, body := range cases {
		_, errs := parseRegisterInput(rawFields(t, body))
		assert.NotEmpty(t, errs, body)
	}
}
