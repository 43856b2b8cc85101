package core

import "github.com/flowlattice/paramcore/core/typedesc"

// PortBuilder assembles an InputPort or OutputPort with a fluent chain,
// mirroring the value-receiver With* builder pattern used elsewhere in this
// codebase.
type PortBuilder struct {
	declaredType    typedesc.Descriptor
	argName         string
	parent          Component
	initialValue    interface{}
	hasInitialValue bool
	logState        bool
}

// NewPortBuilder starts a builder with the Any type descriptor.
func NewPortBuilder() PortBuilder {
	return PortBuilder{declaredType: typedesc.Any()}
}

// WithType sets the port's declared type.
func (b PortBuilder) WithType(t typedesc.Descriptor) PortBuilder {
	b.declaredType = t
	return b
}

// WithArgName sets the constructor-argument name the port maps to.
func (b PortBuilder) WithArgName(argName string) PortBuilder {
	b.argName = argName
	return b
}

// WithParent sets the owning component.
func (b PortBuilder) WithParent(parent Component) PortBuilder {
	b.parent = parent
	return b
}

// WithInitialValue seeds the port with a value, type-checked at Build time.
func (b PortBuilder) WithInitialValue(v interface{}) PortBuilder {
	b.initialValue = v
	b.hasInitialValue = true
	return b
}

// WithStateLogging attaches a PortStateHook to the built port, so every
// value-set/received/connect/disconnect instrumentation point also renders
// a table dump of the port's state (subject to PrintToggle).
func (b PortBuilder) WithStateLogging() PortBuilder {
	b.logState = true
	return b
}

// BuildInput constructs the named InputPort.
func (b PortBuilder) BuildInput(name string) (*InputPort, error) {
	p, err := newPort(name, b.declaredType, b.argName, b.parent, b.initialValue, b.hasInitialValue)
	if err != nil {
		return nil, err
	}
	if b.logState {
		p.AcceptHook(PortStateHook{})
	}
	return newInputPort(p), nil
}

// BuildOutput constructs the named OutputPort.
func (b PortBuilder) BuildOutput(name string) (*OutputPort, error) {
	p, err := newPort(name, b.declaredType, b.argName, b.parent, b.initialValue, b.hasInitialValue)
	if err != nil {
		return nil, err
	}
	if b.logState {
		p.AcceptHook(PortStateHook{})
	}
	return newOutputPort(p), nil
}
