package jsonclass_test

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/viant/jsonclass"
	"github.com/viant/jsonclass/transform"
)

type Address struct {
	Line1 string
	Line2 string
}

func NewAddress() *Address {
	return &Address{Line1: "line1", Line2: "line2"}
}

func (a *Address) Serialize() (map[string]interface{}, error) {
	return jsonclass.Serialize(a)
}

type AddressExtended struct {
	Address
	Line3 string
	Other map[string]interface{}
}

func NewAddressExtended() *AddressExtended {
	return &AddressExtended{Address: *NewAddress(), Line3: "line3"}
}

func (a *AddressExtended) Serialize() (map[string]interface{}, error) {
	return jsonclass.Serialize(a)
}

type Sex int

const (
	SexM Sex = iota
	SexF
)

type Person struct {
	FirstName     string
	LastName      string
	Age           int
	Date          *time.Time
	Date2         *time.Time
	Sex           Sex
	Numbers       []int
	Numbers2      []int
	Address       *AddressExtended
	PrevAddresses []*Address
	NextAddresses []*Address
}

func NewPerson() *Person {
	return &Person{
		Age:           -1,
		Numbers:       []int{},
		Address:       NewAddressExtended(),
		PrevAddresses: []*Address{},
	}
}

func (p *Person) Serialize() (map[string]interface{}, error) {
	return jsonclass.Serialize(p)
}

var yearTransform = transform.Year(time.March, 12)

func mapLastName(value interface{}) (interface{}, error) {
	text, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("expected string, but had %T", value)
	}
	return strings.ToUpper(text), nil
}

func marchDate(year int) *time.Time {
	ts := time.Date(year, time.March, 12, 0, 0, 0, 0, time.UTC)
	return &ts
}

// registerFixtures registers fixture classes the way an application does at startup
func registerFixtures(registry *jsonclass.Registry) error {
	address, err := registry.Register(reflect.TypeOf(Address{}), jsonclass.WithNew(func() interface{} { return NewAddress() }))
	if err != nil {
		return err
	}
	if err = address.Bind(
		jsonclass.Scalar("Line1"),
		jsonclass.Scalar("Line2"),
	); err != nil {
		return err
	}
	extended, err := registry.Register(reflect.TypeOf(AddressExtended{}),
		jsonclass.Extensible("Other"),
		jsonclass.WithNew(func() interface{} { return NewAddressExtended() }))
	if err != nil {
		return err
	}
	if err = extended.Bind(jsonclass.Scalar("Line3")); err != nil {
		return err
	}
	person, err := registry.Register(reflect.TypeOf(Person{}), jsonclass.WithNew(func() interface{} { return NewPerson() }))
	if err != nil {
		return err
	}
	return person.Bind(
		jsonclass.Scalar("FirstName"),
		jsonclass.Scalar("LastName", jsonclass.WithDeserialize(mapLastName)),
		jsonclass.Scalar("Age", jsonclass.WithKey("eta")),
		yearTransform.Bind("Date"),
		yearTransform.Bind("Date2", jsonclass.WithKey("date22")),
		jsonclass.Scalar("Sex"),
		jsonclass.ArrayOfScalar("Numbers"),
		jsonclass.ArrayOfScalar("Numbers2", jsonclass.WithKeepNullArray(true)),
		jsonclass.ComplexObject("Address", reflect.TypeOf(AddressExtended{}), jsonclass.WithKey("aa")),
		jsonclass.ArrayOfComplexObject("PrevAddresses", reflect.TypeOf(Address{})),
		jsonclass.ArrayOfComplexObject("NextAddresses", reflect.TypeOf(Address{}), jsonclass.WithKeepNull(true)),
	)
}

func init() {
	if err := registerFixtures(jsonclass.DefaultRegistry()); err != nil {
		panic(err)
	}
}
