package conv

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"sync"
	"time"
)

// DefaultDateLayout is the default layout used for time parsing when no layout is specified
const DefaultDateLayout = time.RFC3339

// Options contains configuration for the converter
type Options struct {
	// DateLayout specifies the layout for time parsing
	DateLayout string
	// StrictNumbers rejects fractional values for integer destinations
	StrictNumbers bool
}

// DefaultOptions returns default conversion options
func DefaultOptions() Options {
	return Options{
		DateLayout: DefaultDateLayout,
	}
}

// Converter converts JSON-like values into typed destinations
type Converter struct {
	options       Options
	customConvMap sync.Map // map[typeKey]ConversionFunc
}

// ConversionFunc defines a custom conversion function
type ConversionFunc func(src interface{}, dest interface{}, opts Options) error

type typeKey struct {
	srcType  reflect.Type
	destType reflect.Type
}

var timeType = reflect.TypeOf(time.Time{})

// NewConverter creates a new type converter with the provided options
func NewConverter(options Options) *Converter {
	return &Converter{options: options}
}

// RegisterConversion registers a custom conversion function between source and destination types
func (c *Converter) RegisterConversion(srcType, destType reflect.Type, fn ConversionFunc) {
	c.customConvMap.Store(typeKey{srcType, destType}, fn)
}

// Convert converts the source value to the destination pointer
func (c *Converter) Convert(src interface{}, dest interface{}) error {
	if dest == nil {
		return errors.New("destination cannot be nil")
	}
	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr {
		return errors.New("destination must be a pointer")
	}
	if destValue.IsNil() {
		return errors.New("destination pointer cannot be nil")
	}
	return c.ConvertValue(src, destValue.Elem())
}

// ConvertValue converts the source value into settable destination value,
// nil source leaves destination unchanged
func (c *Converter) ConvertValue(src interface{}, destValue reflect.Value) error {
	if src == nil {
		return nil
	}
	if !destValue.CanSet() {
		return fmt.Errorf("destination %v is not settable", destValue.Type())
	}
	return c.convert(destValue, reflect.ValueOf(src))
}

func (c *Converter) convert(destValue, srcValue reflect.Value) error {
	if srcValue.Kind() == reflect.Interface {
		if srcValue.IsNil() {
			return nil
		}
		srcValue = srcValue.Elem()
	}
	srcType := srcValue.Type()
	destType := destValue.Type()

	if v, ok := c.customConvMap.Load(typeKey{srcType, destType}); ok {
		return v.(ConversionFunc)(srcValue.Interface(), destValue.Addr().Interface(), c.options)
	}
	if srcType.AssignableTo(destType) {
		destValue.Set(srcValue)
		return nil
	}

	switch destType.Kind() {
	case reflect.String:
		return c.convertToString(destValue, srcValue)
	case reflect.Bool:
		return c.convertToBool(destValue, srcValue)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return c.convertToInt(destValue, srcValue)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return c.convertToUint(destValue, srcValue)
	case reflect.Float32, reflect.Float64:
		return c.convertToFloat(destValue, srcValue)
	case reflect.Ptr:
		return c.convertToPointer(destValue, srcValue)
	case reflect.Slice:
		return c.convertToSlice(destValue, srcValue)
	case reflect.Map:
		return c.convertToMap(destValue, srcValue)
	case reflect.Struct:
		if destType == timeType {
			return c.convertToTime(destValue, srcValue)
		}
	}
	if srcValue.Kind() == reflect.Ptr {
		if srcValue.IsNil() {
			return nil
		}
		return c.convert(destValue, srcValue.Elem())
	}
	if srcType.ConvertibleTo(destType) {
		destValue.Set(srcValue.Convert(destType))
		return nil
	}
	return fmt.Errorf("unsupported conversion: %v to %v", srcType, destType)
}

func (c *Converter) convertToPointer(destValue, srcValue reflect.Value) error {
	if srcValue.Kind() == reflect.Ptr {
		if srcValue.IsNil() {
			destValue.Set(reflect.Zero(destValue.Type()))
			return nil
		}
		srcValue = srcValue.Elem()
	}
	elem := reflect.New(destValue.Type().Elem())
	if err := c.convert(elem.Elem(), srcValue); err != nil {
		return err
	}
	destValue.Set(elem)
	return nil
}

func (c *Converter) convertToString(destValue, srcValue reflect.Value) error {
	var result string

	switch srcValue.Kind() {
	case reflect.String:
		result = srcValue.String()
	case reflect.Bool:
		result = strconv.FormatBool(srcValue.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = strconv.FormatInt(srcValue.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = strconv.FormatUint(srcValue.Uint(), 10)
	case reflect.Float32:
		result = strconv.FormatFloat(srcValue.Float(), 'f', -1, 32)
	case reflect.Float64:
		result = strconv.FormatFloat(srcValue.Float(), 'f', -1, 64)
	case reflect.Slice:
		if srcValue.Type().Elem().Kind() != reflect.Uint8 {
			return fmt.Errorf("cannot convert %v to string", srcValue.Type())
		}
		result = string(srcValue.Bytes())
	case reflect.Ptr:
		if srcValue.IsNil() {
			return nil
		}
		return c.convertToString(destValue, srcValue.Elem())
	default:
		return fmt.Errorf("cannot convert %v to string", srcValue.Type())
	}

	destValue.SetString(result)
	return nil
}

func (c *Converter) convertToBool(destValue, srcValue reflect.Value) error {
	var result bool

	switch srcValue.Kind() {
	case reflect.Bool:
		result = srcValue.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = srcValue.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = srcValue.Uint() != 0
	case reflect.Float32, reflect.Float64:
		result = srcValue.Float() != 0
	case reflect.String:
		var err error
		if result, err = strconv.ParseBool(srcValue.String()); err != nil {
			if f, fErr := strconv.ParseFloat(srcValue.String(), 64); fErr == nil {
				result = f != 0
				break
			}
			return err
		}
	default:
		return fmt.Errorf("cannot convert %v to bool", srcValue.Type())
	}

	destValue.SetBool(result)
	return nil
}

func (c *Converter) convertToInt(destValue, srcValue reflect.Value) error {
	var result int64

	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = srcValue.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := srcValue.Uint()
		if u > math.MaxInt64 {
			return fmt.Errorf("value %v overflows %v", u, destValue.Type())
		}
		result = int64(u)
	case reflect.Float32, reflect.Float64:
		var err error
		if result, err = c.floatToInt(srcValue.Float(), destValue.Type()); err != nil {
			return err
		}
	case reflect.Bool:
		if srcValue.Bool() {
			result = 1
		}
	case reflect.String:
		var err error
		if result, err = strconv.ParseInt(srcValue.String(), 0, 64); err != nil {
			f, floatErr := strconv.ParseFloat(srcValue.String(), 64)
			if floatErr != nil {
				return err
			}
			if result, err = c.floatToInt(f, destValue.Type()); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("cannot convert %v to int", srcValue.Type())
	}

	if destValue.OverflowInt(result) {
		return fmt.Errorf("value %v overflows %v", result, destValue.Type())
	}
	destValue.SetInt(result)
	return nil
}

// floatToInt rejects NaN, infinities and values outside int64 range before converting,
// fractions are truncated unless StrictNumbers is set
func (c *Converter) floatToInt(f float64, destType reflect.Type) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("value %v overflows %v", f, destType)
	}
	if c.options.StrictNumbers && f != math.Trunc(f) {
		return 0, fmt.Errorf("cannot convert fractional value %v to %v", f, destType)
	}
	return int64(f), nil
}

func (c *Converter) floatToUint(f float64, destType reflect.Type) (uint64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxUint64 {
		return 0, fmt.Errorf("value %v overflows %v", f, destType)
	}
	if f < 0 {
		return 0, fmt.Errorf("cannot convert negative value %v to %v", f, destType)
	}
	if c.options.StrictNumbers && f != math.Trunc(f) {
		return 0, fmt.Errorf("cannot convert fractional value %v to %v", f, destType)
	}
	return uint64(f), nil
}

func (c *Converter) convertToUint(destValue, srcValue reflect.Value) error {
	var result uint64

	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := srcValue.Int()
		if v < 0 {
			return fmt.Errorf("cannot convert negative value %d to unsigned int", v)
		}
		result = uint64(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = srcValue.Uint()
	case reflect.Float32, reflect.Float64:
		var err error
		if result, err = c.floatToUint(srcValue.Float(), destValue.Type()); err != nil {
			return err
		}
	case reflect.Bool:
		if srcValue.Bool() {
			result = 1
		}
	case reflect.String:
		var err error
		if result, err = strconv.ParseUint(srcValue.String(), 0, 64); err != nil {
			f, floatErr := strconv.ParseFloat(srcValue.String(), 64)
			if floatErr != nil {
				return err
			}
			if result, err = c.floatToUint(f, destValue.Type()); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("cannot convert %v to uint", srcValue.Type())
	}

	if destValue.OverflowUint(result) {
		return fmt.Errorf("value %v overflows %v", result, destValue.Type())
	}
	destValue.SetUint(result)
	return nil
}

func (c *Converter) convertToFloat(destValue, srcValue reflect.Value) error {
	var result float64

	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = float64(srcValue.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = float64(srcValue.Uint())
	case reflect.Float32, reflect.Float64:
		result = srcValue.Float()
	case reflect.Bool:
		if srcValue.Bool() {
			result = 1
		}
	case reflect.String:
		var err error
		if result, err = strconv.ParseFloat(srcValue.String(), 64); err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot convert %v to float", srcValue.Type())
	}

	destValue.SetFloat(result)
	return nil
}

func (c *Converter) convertToTime(destValue, srcValue reflect.Value) error {
	var t time.Time
	var err error

	switch srcValue.Kind() {
	case reflect.String:
		if t, err = c.parseTime(srcValue.String()); err != nil {
			return err
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		t = unixTime(srcValue.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		t = unixTime(int64(srcValue.Uint()))
	case reflect.Float32, reflect.Float64:
		seconds := int64(srcValue.Float())
		nanos := int64((srcValue.Float() - float64(seconds)) * 1e9)
		t = time.Unix(seconds, nanos)
	case reflect.Ptr:
		if srcValue.IsNil() {
			return nil
		}
		return c.convert(destValue, srcValue.Elem())
	default:
		return fmt.Errorf("cannot convert %v to time.Time", srcValue.Type())
	}

	destValue.Set(reflect.ValueOf(t))
	return nil
}

func (c *Converter) parseTime(value string) (time.Time, error) {
	layout := c.options.DateLayout
	if layout == "" {
		layout = DefaultDateLayout
	}
	t, err := time.Parse(layout, value)
	if err == nil {
		return t, nil
	}
	for _, candidate := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err = time.Parse(candidate, value); err == nil {
			return t, nil
		}
	}
	return t, fmt.Errorf("cannot parse time string '%s': %w", value, err)
}

func unixTime(value int64) time.Time {
	if value > 1e10 { // nanoseconds
		return time.Unix(0, value)
	}
	return time.Unix(value, 0)
}

func (c *Converter) convertToSlice(destValue, srcValue reflect.Value) error {
	destType := destValue.Type()
	if destType.Elem().Kind() == reflect.Uint8 && srcValue.Kind() == reflect.String {
		destValue.SetBytes([]byte(srcValue.String()))
		return nil
	}
	if srcValue.Kind() != reflect.Slice && srcValue.Kind() != reflect.Array {
		return fmt.Errorf("cannot convert %v to %v", srcValue.Type(), destType)
	}
	if srcValue.Kind() == reflect.Slice && srcValue.IsNil() {
		destValue.Set(reflect.Zero(destType))
		return nil
	}
	length := srcValue.Len()
	sliceValue := reflect.MakeSlice(destType, length, length)
	for i := 0; i < length; i++ {
		if err := c.convert(sliceValue.Index(i), srcValue.Index(i)); err != nil {
			return fmt.Errorf("error converting slice element %d: %w", i, err)
		}
	}
	destValue.Set(sliceValue)
	return nil
}

func (c *Converter) convertToMap(destValue, srcValue reflect.Value) error {
	destType := destValue.Type()
	if srcValue.Kind() != reflect.Map {
		return fmt.Errorf("cannot convert %v to map", srcValue.Type())
	}
	if srcValue.IsNil() {
		destValue.Set(reflect.Zero(destType))
		return nil
	}
	mapValue := reflect.MakeMapWithSize(destType, srcValue.Len())
	iter := srcValue.MapRange()
	for iter.Next() {
		key := reflect.New(destType.Key()).Elem()
		if err := c.convert(key, iter.Key()); err != nil {
			return fmt.Errorf("error converting map key: %w", err)
		}
		value := reflect.New(destType.Elem()).Elem()
		if err := c.convert(value, iter.Value()); err != nil {
			return fmt.Errorf("error converting map value %v: %w", iter.Key().Interface(), err)
		}
		mapValue.SetMapIndex(key, value)
	}
	destValue.Set(mapValue)
	return nil
}
