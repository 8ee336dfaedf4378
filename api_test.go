package jsonclass_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/jsonclass"
)

type Product struct {
	SKU   string
	Price float64
	Codes []string
}

func TestMustRegister(t *testing.T) {
	class := jsonclass.MustRegister[Product]().MustBind(
		jsonclass.Scalar("SKU", jsonclass.WithKey("sku")),
		jsonclass.Scalar("Price"),
		jsonclass.ArrayOfScalar("Codes",
			jsonclass.WithDeserialize(mapLastName),
			jsonclass.WithSerialize(func(value interface{}) (interface{}, error) {
				return "#" + value.(string), nil
			})),
	)
	assert.True(t, class == jsonclass.MustRegister[Product]())
	assert.Nil(t, jsonclass.Validate())

	product, err := jsonclass.Decode[Product](map[string]interface{}{"sku": "a1", "price": "1.5", "codes": []interface{}{"x", nil}})
	require.Nil(t, err)
	assert.Equal(t, &Product{SKU: "a1", Price: 1.5, Codes: []string{"X", ""}}, product)

	output, err := jsonclass.Serialize(product)
	require.Nil(t, err)
	assert.Equal(t, map[string]interface{}{"sku": "a1", "price": 1.5, "codes": []interface{}{"#X", "#"}}, output)

	products, err := jsonclass.DecodeArray[Product]([]interface{}{map[string]interface{}{"sku": "b"}, nil})
	require.Nil(t, err)
	assert.Equal(t, []*Product{{SKU: "b"}, {}}, products)

	assert.Panics(t, func() {
		jsonclass.MustRegister[int]()
	})
	assert.Panics(t, func() {
		class.MustBind(jsonclass.Scalar("Missing"))
	})
}

func TestDecode_Errors(t *testing.T) {
	type unknown struct{ Name string }
	_, err := jsonclass.Decode[unknown](map[string]interface{}{})
	assert.Equal(t, "unregistered", errorKind(err))
	values, err := jsonclass.DecodeArray[unknown]([]interface{}{nil})
	assert.Nil(t, values)
	assert.Equal(t, "unregistered", errorKind(err))

	registry := jsonclass.NewRegistry()
	_, err = registry.Register(reflect.TypeOf(unknown{}), jsonclass.WithNew(func() interface{} { return unknown{} }))
	require.Nil(t, err)
	_, err = jsonclass.DecodeWith[unknown](registry, nil)
	assert.NotNil(t, err, "factory has to return pointer")
}
