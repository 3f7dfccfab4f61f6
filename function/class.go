package function

import (
	"fmt"

	"github.com/akaoio/zen/values"
)

// Class is a class value: a name, an optional parent, and a method table in
// definition order. The parent is recorded by name at definition time and
// resolved to a Class reference lazily, at first instantiation, so classes
// may extend classes defined later in the file.
type Class struct {
	Name       string
	ParentName string // empty when the class has no parent
	Parent     *Class // nil until resolved
	Methods    map[string]*Function
	Order      []string // method names in definition order
}

// NewClass creates a class with an empty method table.
func NewClass(name, parentName string) *Class {
	return &Class{
		Name:       name,
		ParentName: parentName,
		Methods:    make(map[string]*Function),
		Order:      make([]string, 0),
	}
}

// AddMethod registers a method, preserving definition order. A duplicate
// name overwrites the earlier definition without moving it.
func (c *Class) AddMethod(fn *Function) {
	if _, exists := c.Methods[fn.Name]; !exists {
		c.Order = append(c.Order, fn.Name)
	}
	c.Methods[fn.Name] = fn
}

// FindMethod looks up a method by name, walking the parent chain. The
// returned Class is the one whose table supplied the method, which `super`
// dispatch needs.
func (c *Class) FindMethod(name string) (*Function, *Class, bool) {
	for cls := c; cls != nil; cls = cls.Parent {
		if fn, ok := cls.Methods[name]; ok {
			return fn, cls, true
		}
	}
	return nil, nil, false
}

func (c *Class) GetType() values.Type { return values.ClassType }
func (c *Class) ToString() string     { return fmt.Sprintf("class(%s)", c.Name) }
func (c *Class) Inspect() string      { return c.ToString() }

// Instance is a class instance: a class reference plus an own-properties
// object. Property reads consult the own properties first, then walk the
// class chain for methods.
type Instance struct {
	Class *Class
	Props *values.Object
}

// NewInstance allocates an instance with a fresh empty own-properties
// object.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Props: values.NewObject()}
}

func (i *Instance) GetType() values.Type { return values.InstanceType }

func (i *Instance) ToString() string {
	return fmt.Sprintf("%s%s", i.Class.Name, i.Props.ToString())
}

func (i *Instance) Inspect() string { return i.ToString() }

// BoundMethod pairs a method with its receiver. Accessing a method through
// an instance produces one; invoking it binds `this` to the receiver.
// Home is the class whose table supplied the method, which anchors `super`
// dispatch inside the method body.
type BoundMethod struct {
	Receiver *Instance
	Method   *Function
	Home     *Class
}

func (b *BoundMethod) GetType() values.Type { return values.FunctionType }

func (b *BoundMethod) ToString() string {
	return fmt.Sprintf("method(%s.%s)", b.Receiver.Class.Name, b.Method.Name)
}

func (b *BoundMethod) Inspect() string { return b.ToString() }
