package schemas

import "strings"

// TypeKind distinguishes the three shapes a declared JVM type can take from
// the point of view of symbolic value synthesis.
type TypeKind int

const (
	KindReference TypeKind = iota // class or interface type
	KindPrimitive                 // int, long, boolean, ...
	KindVoid
)

// TypeRef is a lightweight reference to a declared type, as it appears in a
// method or field signature. For reference kinds Name holds the fully
// qualified binary name; for primitives it holds the keyword.
type TypeRef struct {
	Kind TypeKind `json:"kind"`
	Name string   `json:"name"`
}

// Reference builds a TypeRef for a class or interface type.
func Reference(name string) TypeRef { return TypeRef{Kind: KindReference, Name: name} }

// Primitive builds a TypeRef for a JVM primitive.
func Primitive(name string) TypeRef { return TypeRef{Kind: KindPrimitive, Name: name} }

// Void is the return type of methods that produce no value.
func Void() TypeRef { return TypeRef{Kind: KindVoid, Name: "void"} }

// IsReference reports whether the type is a class or interface type.
func (t TypeRef) IsReference() bool { return t.Kind == KindReference }

// Visibility mirrors the JVM access modifiers relevant to proxying.
type Visibility int

const (
	VisibilityPublic Visibility = iota
	VisibilityProtected
	VisibilityPackagePrivate
	VisibilityPrivate
)

// ClassId identifies a class of the analyzed program together with the
// classpath-derived metadata the mocking policy depends on. Instances are
// produced by the class-file ingestion layer and treated as immutable values.
type ClassId struct {
	// Name is the fully qualified binary name, e.g. "java.util.Random".
	Name string `json:"name"`
	// PackageName is the package portion of Name, e.g. "java.util".
	PackageName string     `json:"package_name"`
	Visibility  Visibility `json:"visibility"`
	// IsSynthetic marks compiler-generated artifacts such as desugared
	// lambda classes.
	IsSynthetic bool `json:"is_synthetic"`
	IsInner     bool `json:"is_inner"`
	IsLocal     bool `json:"is_local"`
	IsAnonymous bool `json:"is_anonymous"`
	// InaccessibleViaReflection marks classes no mocking runtime can proxy
	// (hidden classes, arrays, primitives boxed as pseudo-classes). The zero
	// value means the class is reachable through reflection.
	InaccessibleViaReflection bool `json:"inaccessible_via_reflection"`
}

// ClassNamed builds a minimal ClassId for a qualified name, deriving only the
// package. Used where a type is known by name alone (e.g. a field's declared
// type that is not itself loaded).
func ClassNamed(name string) ClassId {
	pkg := ""
	if i := strings.LastIndex(name, "."); i >= 0 {
		pkg = name[:i]
	}
	return ClassId{Name: name, PackageName: pkg}
}

// SimpleName returns the class name without its package.
func (c ClassId) SimpleName() string {
	if i := strings.LastIndex(c.Name, "."); i >= 0 {
		return c.Name[i+1:]
	}
	return c.Name
}

// IsPublic reports whether the class carries public visibility.
func (c ClassId) IsPublic() bool { return c.Visibility == VisibilityPublic }

// IsNested reports whether the class is an inner, local, or anonymous class.
func (c ClassId) IsNested() bool { return c.IsInner || c.IsLocal || c.IsAnonymous }

// MethodId identifies a method by its declaring class, name, and descriptor.
// The struct is comparable so it can key invocation records directly.
type MethodId struct {
	ClassName string `json:"class_name"`
	Name      string `json:"name"`
	// Descriptor disambiguates overloads; empty for methods that have none.
	Descriptor  string  `json:"descriptor,omitempty"`
	ReturnType  TypeRef `json:"return_type"`
	Constructor bool    `json:"constructor"`
}

// Signature renders a stable human-readable identity for logs and reports.
func (m MethodId) Signature() string {
	if m.Descriptor != "" {
		return m.ClassName + "." + m.Name + m.Descriptor
	}
	return m.ClassName + "." + m.Name
}

// FieldId identifies a field by its declaring class and name.
type FieldId struct {
	ClassName string `json:"class_name"`
	Name      string `json:"name"`
}

// String renders the qualified field name.
func (f FieldId) String() string { return f.ClassName + "#" + f.Name }
