package generator

import (
	"fmt"
	"slices"

	"github.com/erraggy/apidoc2ts/internal/naming"
	"github.com/erraggy/apidoc2ts/internal/pathutil"
	"github.com/erraggy/apidoc2ts/parser"
	"github.com/erraggy/apidoc2ts/tserrors"
)

// entry is one slot in the pending declarations buffer. decl stays nil
// until the entry's job has been built.
type entry struct {
	decl *Declaration
	hash uint64
	// definition is the definitions key this entry was generated from, or
	// "" for declarations derived from property names.
	definition string
}

// job is one queued build. A verify job rebuilds a name that is already
// queued and checks the result against the first declaration.
type job struct {
	name      string
	path      string
	build     func(name string) (*Declaration, error)
	enclosing []string
	verify    bool
}

// pass holds the state of one top-level generation call. It is never
// shared between calls.
type pass struct {
	g           *Generator
	rootName    string
	definitions *parser.Properties
	order       []string
	entries     map[string]*entry
	queue       []job
	// building lists the names enclosing the job being built, itself last.
	building []string
	log      parser.Logger
}

func newPass(g *Generator, root *parser.Schema, rootName string) *pass {
	return &pass{
		g:           g,
		rootName:    rootName,
		definitions: root.Definitions,
		entries:     make(map[string]*entry),
		log:         g.logger.With("root", rootName),
	}
}

// run declares the root schema and builds the queue first in, first out,
// so declarations are discovered breadth first.
func (p *pass) run(root *parser.Schema) error {
	err := p.declare(p.rootName, "$", "", func(name string) (*Declaration, error) {
		return p.declaration(name, root, "$")
	})
	if err != nil {
		return err
	}
	for len(p.queue) > 0 {
		j := p.queue[0]
		p.queue = p.queue[1:]
		if err := p.buildJob(j); err != nil {
			return err
		}
	}
	return nil
}

func (p *pass) buildJob(j job) error {
	p.building = append(slices.Clip(j.enclosing), j.name)
	defer func() { p.building = nil }()

	decl, err := j.build(j.name)
	if err != nil {
		return err
	}

	// Jobs run in queue order, so the first job for a name has always been
	// built before any verify job for it.
	e := p.entries[j.name]
	if j.verify {
		if hashDeclaration(decl) != e.hash || !decl.Equal(e.decl) {
			return &tserrors.CollisionError{
				Name:    j.name,
				Path:    j.path,
				Message: "a structurally different declaration is already queued under this name",
			}
		}
		p.log.Debug("reused identical declaration", "name", j.name, "path", j.path)
		return nil
	}
	e.decl = decl
	e.hash = hashDeclaration(decl)
	p.log.Debug("built declaration", "name", j.name, "kind", decl.Kind.String(), "path", j.path)
	return nil
}

// declarations returns the finished declarations in order of discovery.
func (p *pass) declarations() []Declaration {
	decls := make([]Declaration, 0, len(p.order))
	for _, name := range p.order {
		decls = append(decls, *p.entries[name].decl)
	}
	return decls
}

// declare queues a declaration under name; build runs later, after every
// declaration queued before it. A name that is already queued is accepted
// again only if the new declaration turns out structurally identical to the
// queued one. A name that encloses the declaration being built is never
// accepted.
func (p *pass) declare(name, path, definition string, build func(name string) (*Declaration, error)) error {
	if p.g.customTypes[name] {
		return &tserrors.CollisionError{
			Name:         name,
			Path:         path,
			IsCustomType: true,
			Message:      "name is reserved for an externally defined type",
		}
	}
	if slices.Contains(p.building, name) {
		return &tserrors.CollisionError{
			Name:    name,
			Path:    path,
			Message: "name is already used by a declaration that encloses this one",
		}
	}

	j := job{name: name, path: path, build: build, enclosing: slices.Clone(p.building)}
	if _, ok := p.entries[name]; ok {
		j.verify = true
		p.queue = append(p.queue, j)
		return nil
	}

	p.entries[name] = &entry{definition: definition}
	p.order = append(p.order, name)
	p.queue = append(p.queue, j)
	p.log.Debug("queued declaration", "name", name, "path", path)
	return nil
}

// declaration builds the declaration for a named schema: an interface for
// objects, an enum for enum nodes and a type alias for everything else.
func (p *pass) declaration(name string, s *parser.Schema, path string) (*Declaration, error) {
	switch s.Kind() {
	case parser.KindObject:
		return p.interfaceDeclaration(name, s, path)
	case parser.KindEnum:
		return enumDeclaration(name, s), nil
	default:
		target, err := p.typeOf(name, "", s, path)
		if err != nil {
			return nil, err
		}
		return &Declaration{Kind: DeclAlias, Name: name, Description: s.Description, Target: target}, nil
	}
}

func (p *pass) interfaceDeclaration(name string, s *parser.Schema, path string) (*Declaration, error) {
	decl := &Declaration{
		Kind:        DeclInterface,
		Name:        name,
		Description: s.Description,
		Properties:  make([]Property, 0, s.Properties.Len()),
	}
	for propName, prop := range s.Properties.All() {
		propPath := pathutil.Child(path+".properties", propName)
		t, err := p.typeOf(propName, "", prop, propPath)
		if err != nil {
			return nil, err
		}
		var description string
		if prop != nil {
			description = prop.Description
		}
		decl.Properties = append(decl.Properties, Property{
			Name:        propName,
			Type:        t,
			Optional:    !s.IsPropertyRequired(propName),
			Description: description,
		})
	}
	return decl, nil
}

func enumDeclaration(name string, s *parser.Schema) *Declaration {
	values := make([]parser.Literal, 0, len(s.Enum))
	seen := make(map[parser.Literal]bool, len(s.Enum))
	for _, v := range s.Enum {
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}

	memberNames := enumMemberNames(values)
	decl := &Declaration{
		Kind:        DeclEnum,
		Name:        name,
		Description: s.Description,
		Members:     make([]EnumMember, len(values)),
	}
	for i, v := range values {
		decl.Members[i] = EnumMember{Name: memberNames[i], Value: v}
	}
	return decl
}

// typeOf resolves the emitted type of a schema node, queueing nested
// declarations as it discovers them. source and suffix feed the name policy
// for nested objects and enums: the derived name is nameFunc(source)+suffix.
func (p *pass) typeOf(source, suffix string, s *parser.Schema, path string) (string, error) {
	var (
		t   string
		err error
	)

	switch s.Kind() {
	case parser.KindRef:
		t, err = p.resolveRef(s.Ref, path)

	case parser.KindEnum:
		t, err = p.nested(source, suffix, path, func(name string) (*Declaration, error) {
			return enumDeclaration(name, s), nil
		})

	case parser.KindObject:
		t, err = p.nested(source, suffix, path, func(name string) (*Declaration, error) {
			return p.interfaceDeclaration(name, s, path)
		})

	case parser.KindArray:
		if s.Items == nil {
			t = arrayOf(anyType)
			break
		}
		var elem string
		elem, err = p.typeOf(source, suffix+"Item", s.Items, path+".items")
		t = arrayOf(elem)

	case parser.KindPrimitive:
		if p.g.customTypes[s.Type] {
			t = s.Type
		} else {
			t = primitiveType(s.Type)
		}

	default:
		t = anyType
	}

	if err != nil {
		return "", err
	}
	if s != nil && s.Nullable {
		t = nullable(t)
	}
	return t, nil
}

// nested derives a name for an inline object or enum and queues its
// declaration under that name.
func (p *pass) nested(source, suffix, path string, build func(name string) (*Declaration, error)) (string, error) {
	name := p.g.nameFunc(source) + suffix
	if !naming.IsTypeName(name) {
		return "", &tserrors.NamingError{
			Path:    path,
			Source:  source,
			Message: fmt.Sprintf("derived name %q is not a valid declaration name", name),
		}
	}
	if err := p.declare(name, path, "", build); err != nil {
		return "", err
	}
	return name, nil
}

// resolveRef resolves a local definitions pointer, queueing the definition
// the first time it is reached. Reaching a definition that is already
// queued (self or mutual recursion) returns its name without rebuilding.
func (p *pass) resolveRef(ref, path string) (string, error) {
	name, ok := pathutil.DefinitionName(ref)
	if !ok {
		return "", &tserrors.RefResolutionError{
			Ref:     ref,
			Path:    path,
			Message: "only local #/definitions/<Name> references are supported",
		}
	}

	def, ok := p.definitions.Get(name)
	if !ok {
		return "", &tserrors.RefResolutionError{Ref: ref, Path: path, Message: "definition not found"}
	}
	if !naming.IsTypeName(name) {
		return "", &tserrors.NamingError{
			Path:    path,
			Source:  ref,
			Message: fmt.Sprintf("definition name %q is not a valid declaration name", name),
		}
	}

	if existing, ok := p.entries[name]; ok && existing.definition == name {
		return name, nil
	}

	defPath := pathutil.Child("$.definitions", name)
	err := p.declare(name, defPath, name, func(n string) (*Declaration, error) {
		return p.declaration(n, def, defPath)
	})
	if err != nil {
		return "", err
	}
	return name, nil
}
