package jsonclass

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/viant/jsonclass/conv"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Registry holds class metadata, classes are registered during program initialization and
// read by every conversion afterwards
type Registry struct {
	options    Options
	logger     *zap.Logger
	converter  *conv.Converter
	mux        sync.RWMutex
	classes    map[reflect.Type]*Class
	transforms map[string]*Transform
	metadata   sync.Map // map[reflect.Type]*Metadata
}

// NewRegistry creates a registry
func NewRegistry(opts ...Option) *Registry {
	options := newOptions(opts)
	convOptions := conv.DefaultOptions()
	convOptions.DateLayout = options.TimeLayout
	convOptions.StrictNumbers = options.StrictNumbers
	converter := conv.NewConverter(convOptions)
	for _, item := range options.conversions {
		converter.RegisterConversion(item.src, item.dest, item.fn)
	}
	return &Registry{
		options:    options,
		logger:     options.Logger,
		converter:  converter,
		classes:    make(map[reflect.Type]*Class),
		transforms: make(map[string]*Transform),
	}
}

// RegisterConversion registers custom scalar conversion used when coercing src values into dest fields
func (r *Registry) RegisterConversion(src, dest reflect.Type, fn conv.ConversionFunc) {
	r.converter.RegisterConversion(src, dest, fn)
}

// Options returns registry options
func (r *Registry) Options() Options {
	return r.options
}

// Register creates class metadata for supplied struct type, or returns already registered one
func (r *Registry) Register(t reflect.Type, opts ...ClassOption) (*Class, error) {
	rType := ensureStruct(t)
	if rType == nil {
		return nil, fmt.Errorf("jsonclass: unable to register %v, expected struct type", typeName(t))
	}
	if class := r.Lookup(rType); class != nil {
		return class, nil
	}
	class := &Class{rType: rType, strict: true, registry: r}
	for _, opt := range opts {
		opt(class)
	}
	var tagged []*Binding
	var err error
	if class.useTags {
		if tagged, err = r.bindingsFromTags(class); err != nil {
			return nil, err
		}
	}
	if err = r.initExtra(class); err != nil {
		return nil, err
	}
	if class.presence == "" {
		class.presence = presenceField(rType)
	}
	r.mux.Lock()
	if existing, ok := r.classes[rType]; ok {
		r.mux.Unlock()
		return existing, nil
	}
	r.classes[rType] = class
	r.metadata.Clear()
	r.mux.Unlock()
	r.logger.Debug("registered class",
		zap.String("type", rType.String()),
		zap.Bool("strict", class.strict),
		zap.String("extraField", class.extraField))
	if len(tagged) > 0 {
		if err = r.AddBinding(rType, tagged...); err != nil {
			r.mux.Lock()
			delete(r.classes, rType)
			r.mux.Unlock()
			return nil, err
		}
	}
	return class, nil
}

func (r *Registry) initExtra(class *Class) error {
	if class.strict && class.extraField == "" {
		return nil
	}
	if class.extraField == "" {
		return fmt.Errorf("jsonclass: extensible %v requires an extra field of map[string]interface{} type", class.rType.String())
	}
	aPath, err := resolvePath(class.rType, class.extraField)
	if err != nil {
		return &BindingError{Type: class.rType, Field: class.extraField, Err: err}
	}
	if aPath.Type() != extraType {
		return &BindingError{Type: class.rType, Field: class.extraField, Err: fmt.Errorf("extra field has to be map[string]interface{}, but had %v", aPath.Type().String())}
	}
	return nil
}

// AddBinding appends bindings to the own binding list of a registered type
func (r *Registry) AddBinding(t reflect.Type, bindings ...*Binding) error {
	rType := ensureStruct(t)
	r.mux.Lock()
	defer r.mux.Unlock()
	class, ok := r.classes[rType]
	if !ok {
		return &UnregisteredTypeError{Type: t}
	}
	var properties []*property
	for _, binding := range bindings {
		prop, err := newProperty(rType, binding, &r.options)
		if err != nil {
			return err
		}
		if class.hasKey(prop.Key) || hasKey(properties, prop.Key) {
			return &DuplicateKeyError{Type: rType, Key: prop.Key}
		}
		properties = append(properties, prop)
	}
	for _, prop := range properties {
		class.bindings = append(class.bindings, prop.Binding)
		class.properties = append(class.properties, prop)
		r.logger.Debug("added binding",
			zap.String("type", rType.String()),
			zap.String("field", prop.Field),
			zap.String("key", prop.Key),
			zap.Stringer("kind", prop.Kind))
	}
	r.metadata.Clear()
	return nil
}

// Lookup returns registered class or nil
func (r *Registry) Lookup(t reflect.Type) *Class {
	rType := ensureStruct(t)
	if rType == nil {
		return nil
	}
	r.mux.RLock()
	defer r.mux.RUnlock()
	return r.classes[rType]
}

// MetadataOf returns effective class metadata, with bindings of embedded registered types first
func (r *Registry) MetadataOf(t reflect.Type) (*Metadata, error) {
	rType := ensureStruct(t)
	if rType == nil {
		return nil, &UnregisteredTypeError{Type: t}
	}
	if cached, ok := r.metadata.Load(rType); ok {
		return cached.(*Metadata), nil
	}
	meta, err := r.buildMetadata(rType)
	if err != nil {
		return nil, err
	}
	actual, _ := r.metadata.LoadOrStore(rType, meta)
	return actual.(*Metadata), nil
}

func (r *Registry) buildMetadata(rType reflect.Type) (*Metadata, error) {
	class := r.Lookup(rType)
	if class == nil {
		return nil, &UnregisteredTypeError{Type: rType}
	}
	ret := &Metadata{class: class, keys: map[string]bool{}}
	for i := 0; i < rType.NumField(); i++ {
		field := rType.Field(i)
		if !field.Anonymous || field.Type.Kind() != reflect.Struct || r.Lookup(field.Type) == nil {
			continue
		}
		ancestor, err := r.MetadataOf(field.Type)
		if err != nil {
			return nil, err
		}
		embedded := embeddedPath(rType, i)
		for _, prop := range ancestor.properties {
			if err = ret.add(prop.retarget(embedded)); err != nil {
				return nil, err
			}
		}
	}
	for _, prop := range class.properties {
		if err := ret.add(prop); err != nil {
			return nil, err
		}
	}
	for _, prop := range ret.properties {
		if prop.Kind.IsComplex() && r.Lookup(prop.ComplexType) == nil {
			return nil, fmt.Errorf("jsonclass: %v.%v complex type: %w", rType.String(), prop.Field, &UnregisteredTypeError{Type: prop.ComplexType})
		}
	}
	if class.extraField != "" {
		ret.extra, _ = resolvePath(rType, class.extraField)
	}
	if class.presence != "" {
		marker, err := newMarker(rType, class.presence, ret.properties)
		if err != nil {
			return nil, &BindingError{Type: rType, Field: class.presence, Err: err}
		}
		ret.marker = marker
	}
	return ret, nil
}

// Validate checks that every registered class resolves into effective metadata
func (r *Registry) Validate() error {
	r.mux.RLock()
	types := make([]reflect.Type, 0, len(r.classes))
	for rType := range r.classes {
		types = append(types, rType)
	}
	r.mux.RUnlock()
	var err error
	for _, rType := range types {
		if _, e := r.MetadataOf(rType); e != nil {
			err = multierr.Append(err, e)
		}
	}
	return err
}

// RegisterTransform registers named custom transform used by the transform tag key
func (r *Registry) RegisterTransform(name string, transform *Transform) error {
	if name == "" || transform == nil {
		return errors.New("jsonclass: transform name and transform are required")
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	if _, ok := r.transforms[name]; ok {
		return fmt.Errorf("jsonclass: transform %q was already registered", name)
	}
	r.transforms[name] = transform
	return nil
}

// LookupTransform returns named transform or nil.
func (r *Registry) LookupTransform(name string) *Transform {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return r.transforms[name]
}

func hasKey(properties []*property, key string) bool {
	for _, prop := range properties {
		if prop.Key == key {
			return true
		}
	}
	return false
}
