package generator

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/erraggy/apidoc2ts/parser"
	"github.com/erraggy/apidoc2ts/tserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const simpleSchema = `{"type": "object", "properties": {"param": {"type": "number"}}}`

const optionalAndRequiredSchema = `{
  "type": "object",
  "properties": {
    "optionalParam": {"type": "number"},
    "requiredParam": {"type": "number", "required": true}
  }
}`

const customTypeSchema = `{"type": "object", "properties": {"param": {"type": "User"}}}`

const enumSchema = `{
  "type": "object",
  "properties": {
    "param": {"type": "string", "enum": ["a", "b", "c"]}
  }
}`

const twoCustomTypesSchema = `{
  "type": "object",
  "properties": {
    "param": {"type": "User"},
    "param2": {"$ref": "#/definitions/Admin"}
  },
  "definitions": {
    "Admin": {"type": "object", "properties": {"name": {"type": "string"}}}
  }
}`

func mustSchema(t *testing.T, src string) *parser.Schema {
	t.Helper()
	s, err := parser.ParseSchema([]byte(src))
	require.NoError(t, err)
	return s
}

func mustGenerator(t *testing.T, opts ...Option) *Generator {
	t.Helper()
	g, err := New(opts...)
	require.NoError(t, err)
	return g
}

func TestCreateInterface(t *testing.T) {
	gen := mustGenerator(t)
	withUser := mustGenerator(t, WithCustomTypes("User"))

	t.Run("empty schema", func(t *testing.T) {
		text, err := gen.CreateInterface(mustSchema(t, `{}`), "")
		require.NoError(t, err)
		assert.Equal(t, "", text)
	})

	t.Run("one number property", func(t *testing.T) {
		text, err := gen.CreateInterface(mustSchema(t, simpleSchema), "")
		require.NoError(t, err)
		assert.Contains(t, text, "param?: number;")
	})

	t.Run("given name", func(t *testing.T) {
		text, err := gen.CreateInterface(mustSchema(t, simpleSchema), "User")
		require.NoError(t, err)
		assert.Contains(t, text, "interface User")
	})

	t.Run("optional and required", func(t *testing.T) {
		text, err := gen.CreateInterface(mustSchema(t, optionalAndRequiredSchema), "")
		require.NoError(t, err)
		assert.Contains(t, text, "optionalParam?:")
		assert.Contains(t, text, "requiredParam:")
		assert.NotContains(t, text, "requiredParam?:")
	})

	t.Run("enums", func(t *testing.T) {
		text, err := gen.CreateInterface(mustSchema(t, enumSchema), "")
		require.NoError(t, err)
		assert.Contains(t, text, "export enum Param")
		assert.Contains(t, text, "param?: Param;")
	})

	t.Run("custom types", func(t *testing.T) {
		text, err := withUser.CreateInterface(mustSchema(t, customTypeSchema), "")
		require.NoError(t, err)
		assert.Contains(t, text, "param?: User")
		assert.NotContains(t, text, "interface User")
	})

	t.Run("name matches custom type", func(t *testing.T) {
		text, err := withUser.CreateInterface(mustSchema(t, customTypeSchema), "User")
		require.Error(t, err)
		assert.Empty(t, text)
		assert.True(t, errors.Is(err, tserrors.ErrCustomTypeCollision))
	})

	t.Run("existing definitions", func(t *testing.T) {
		text, err := withUser.CreateInterface(mustSchema(t, twoCustomTypesSchema), "")
		require.NoError(t, err)
		assert.Contains(t, text, "param?: User")
		assert.Contains(t, text, "param2?: Admin")
		assert.Contains(t, text, "export interface Admin {")
	})
}

func TestCreateInterfaceExactOutput(t *testing.T) {
	gen := mustGenerator(t)
	text, err := gen.CreateInterface(mustSchema(t, enumSchema), "Query")
	require.NoError(t, err)

	want := `export interface Query {
    param?: Param;
}

export enum Param {
    A = "a",
    B = "b",
    C = "c",
}
`
	assert.Equal(t, want, text)
}

func TestRootName(t *testing.T) {
	tests := []struct {
		name     string
		schema   string
		given    string
		opts     []Option
		wantName string
		wantErr  error
	}{
		{name: "given", schema: simpleSchema, given: "Account", wantName: "Account"},
		{name: "default", schema: simpleSchema, wantName: DefaultName},
		{
			name:     "from title",
			schema:   `{"title": "user profile", "type": "object", "properties": {"a": {"type": "string"}}}`,
			wantName: "UserProfile",
		},
		{name: "custom default", schema: simpleSchema, opts: []Option{WithDefaultName("Payload")}, wantName: "Payload"},
		{name: "no default", schema: simpleSchema, opts: []Option{WithDefaultName("")}, wantErr: tserrors.ErrNaming},
		{name: "invalid given", schema: simpleSchema, given: "my-type", wantErr: tserrors.ErrNaming},
		{name: "reserved word given", schema: simpleSchema, given: "class", wantErr: tserrors.ErrNaming},
		{name: "predefined type given", schema: simpleSchema, given: "string", wantErr: tserrors.ErrNaming},
		{
			name:    "reserved word title",
			schema:  `{"title": "interface", "type": "object", "properties": {"a": {"type": "string"}}}`,
			opts:    []Option{WithNameFunc(func(s string) string { return s })},
			wantErr: tserrors.ErrNaming,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := mustGenerator(t, tt.opts...)
			result, err := gen.Generate(mustSchema(t, tt.schema), tt.given)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, result.Name)
			assert.Equal(t, tt.wantName, result.Declarations[0].Name)
		})
	}
}

func TestTypeMapping(t *testing.T) {
	schema := mustSchema(t, `{
	  "type": "object",
	  "properties": {
	    "count": {"type": "integer"},
	    "label": {"type": "string"},
	    "flag": {"type": "boolean"},
	    "anything": {},
	    "tags": {"type": "array", "items": {"type": "string"}},
	    "loose": {"type": "array"},
	    "maybe": {"type": ["string", "null"]},
	    "grid": {"type": "array", "items": {"type": "array", "items": {"type": "number"}}},
	    "maybeList": {"type": "array", "items": {"type": ["integer", "null"]}}
	  }
	}`)
	text, err := mustGenerator(t).CreateInterface(schema, "Mapped")
	require.NoError(t, err)

	for _, line := range []string{
		"count?: number;",
		"label?: string;",
		"flag?: boolean;",
		"anything?: any;",
		"tags?: string[];",
		"loose?: any[];",
		"maybe?: string | null;",
		"grid?: number[][];",
		"maybeList?: (number | null)[];",
	} {
		assert.Contains(t, text, line)
	}
	assert.NotContains(t, text, "integer")
}

func TestNestedDeclarations(t *testing.T) {
	schema := mustSchema(t, `{
	  "type": "object",
	  "properties": {
	    "shipping_address": {
	      "type": "object",
	      "properties": {
	        "country": {"type": "string", "enum": ["us", "de"]},
	        "geo": {"type": "object", "properties": {"lat": {"type": "number", "required": true}}}
	      }
	    },
	    "items": {
	      "type": "array",
	      "items": {"type": "object", "properties": {"sku": {"type": "string"}}}
	    }
	  }
	}`)
	result, err := mustGenerator(t).Generate(schema, "Order")
	require.NoError(t, err)

	assert.Equal(t, []string{"Order", "ShippingAddress", "ItemsItem", "Country", "Geo"}, result.Names())
	assert.Contains(t, result.Text, "shipping_address?: ShippingAddress;")
	assert.Contains(t, result.Text, "country?: Country;")
	assert.Contains(t, result.Text, "geo?: Geo;")
	assert.Contains(t, result.Text, "lat: number;")
	assert.Contains(t, result.Text, "items?: ItemsItem[];")
	assert.Contains(t, result.Text, "    Us = \"us\",\n    De = \"de\",")
}

func TestBreadthFirstOrder(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		want   []string
	}{
		{
			name: "siblings before grandchildren",
			schema: `{"type": "object", "properties": {
			  "a": {"type": "object", "properties": {"x": {"type": "object", "properties": {"v": {"type": "string"}}}}},
			  "b": {"type": "object", "properties": {"w": {"type": "string"}}}
			}}`,
			want: []string{"Root", "A", "B", "X"},
		},
		{
			name: "definitions queue like properties",
			schema: `{"type": "object", "properties": {
			  "deep": {"type": "object", "properties": {"leaf": {"$ref": "#/definitions/Leaf"}}},
			  "mode": {"enum": ["on", "off"]}
			}, "definitions": {"Leaf": {"type": "object", "properties": {"kind": {"enum": ["x"]}}}}}`,
			want: []string{"Root", "Deep", "Mode", "Leaf", "Kind"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := mustGenerator(t).Generate(mustSchema(t, tt.schema), "Root")
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Names())
		})
	}
}

func TestEnumLiterals(t *testing.T) {
	schema := mustSchema(t, `{
	  "type": "object",
	  "properties": {
	    "level": {"enum": [1, 2.5, "two words", true, null, "1"]},
	    "dup": {"enum": ["a", "a", "b"]},
	    "shape": {"enum": [{"x": 1}, [1, 2]]}
	  }
	}`)
	text, err := mustGenerator(t).CreateInterface(schema, "Literals")
	require.NoError(t, err)

	assert.Contains(t, text, "    Value0 = 1,\n")
	assert.Contains(t, text, "    Value1 = 2.5,\n")
	assert.Contains(t, text, "    TwoWords = \"two words\",\n")
	assert.Contains(t, text, "    True = true,\n")
	assert.Contains(t, text, "    Null = null,\n")
	assert.Contains(t, text, "    Value5 = \"1\",\n")
	assert.Contains(t, text, "export enum Dup {\n    A = \"a\",\n    B = \"b\",\n}")
	assert.Contains(t, text, `Value0 = {"x":1},`)
	assert.Contains(t, text, `Value1 = [1,2],`)
}

func TestEnumOrderFollowsSource(t *testing.T) {
	schema := mustSchema(t, `{"type": "object", "properties": {"s": {"enum": ["zeta", "alpha", "mid"]}}}`)
	result, err := mustGenerator(t).Generate(schema, "Sorted")
	require.NoError(t, err)
	require.Len(t, result.Declarations, 2)

	var members []string
	for _, m := range result.Declarations[1].Members {
		members = append(members, m.Value.Raw)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, members)
}

func TestDefinitions(t *testing.T) {
	t.Run("emitted once", func(t *testing.T) {
		schema := mustSchema(t, `{
		  "type": "object",
		  "properties": {
		    "owner": {"$ref": "#/definitions/Person"},
		    "editor": {"$ref": "#/definitions/Person"},
		    "team": {"type": "array", "items": {"$ref": "#/definitions/Person"}}
		  },
		  "definitions": {
		    "Person": {"type": "object", "properties": {"name": {"type": "string"}}}
		  }
		}`)
		text, err := mustGenerator(t).CreateInterface(schema, "Doc")
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(text, "interface Person {"))
		assert.Contains(t, text, "team?: Person[];")
	})

	t.Run("unreferenced definitions are not emitted", func(t *testing.T) {
		schema := mustSchema(t, `{
		  "type": "object",
		  "properties": {"owner": {"$ref": "#/definitions/Person"}},
		  "definitions": {
		    "Person": {"type": "object", "properties": {"name": {"type": "string"}}},
		    "Unused": {"type": "object", "properties": {"gone": {"type": "string"}}},
		    "UnusedStatus": {"enum": ["a", "b"]}
		  }
		}`)
		result, err := mustGenerator(t).Generate(schema, "Doc")
		require.NoError(t, err)
		assert.Equal(t, []string{"Doc", "Person"}, result.Names())
		assert.NotContains(t, result.Text, "interface Unused")
		assert.NotContains(t, result.Text, "UnusedStatus")
	})

	t.Run("nested reference", func(t *testing.T) {
		schema := mustSchema(t, `{
		  "type": "object",
		  "properties": {
		    "outer": {
		      "type": "object",
		      "properties": {"inner": {"$ref": "#/$defs/Status"}}
		    }
		  },
		  "$defs": {"Status": {"enum": ["on", "off"]}}
		}`)
		text, err := mustGenerator(t).CreateInterface(schema, "Doc")
		require.NoError(t, err)
		assert.Contains(t, text, "inner?: Status;")
		assert.Contains(t, text, "export enum Status {")
	})

	t.Run("aliases", func(t *testing.T) {
		schema := mustSchema(t, `{
		  "type": "object",
		  "properties": {
		    "id": {"$ref": "#/definitions/Id"},
		    "ids": {"$ref": "#/definitions/IdList"},
		    "blob": {"$ref": "#/definitions/Blob"}
		  },
		  "definitions": {
		    "Id": {"type": "integer"},
		    "IdList": {"type": "array", "items": {"$ref": "#/definitions/Id"}},
		    "Blob": {}
		  }
		}`)
		text, err := mustGenerator(t).CreateInterface(schema, "Doc")
		require.NoError(t, err)
		assert.Contains(t, text, "export type Id = number;")
		assert.Contains(t, text, "export type IdList = Id[];")
		assert.Contains(t, text, "export type Blob = any;")
	})

	t.Run("recursive", func(t *testing.T) {
		schema := mustSchema(t, `{
		  "type": "object",
		  "properties": {"root": {"$ref": "#/definitions/Node"}},
		  "definitions": {
		    "Node": {
		      "type": "object",
		      "properties": {
		        "children": {"type": "array", "items": {"$ref": "#/definitions/Node"}},
		        "parent": {"$ref": "#/definitions/Node"}
		      }
		    }
		  }
		}`)
		text, err := mustGenerator(t).CreateInterface(schema, "Tree")
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(text, "interface Node {"))
		assert.Contains(t, text, "children?: Node[];")
		assert.Contains(t, text, "parent?: Node;")
	})
}

func TestReferenceErrors(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		wantErr error
	}{
		{name: "missing definition", ref: "#/definitions/Missing", wantErr: tserrors.ErrRefResolution},
		{name: "remote", ref: "other.json#/definitions/Thing", wantErr: tserrors.ErrRefResolution},
		{name: "deep pointer", ref: "#/properties/a", wantErr: tserrors.ErrRefResolution},
		{name: "invalid identifier", ref: "#/definitions/bad-name", wantErr: tserrors.ErrNaming},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := mustSchema(t, fmt.Sprintf(`{
			  "type": "object",
			  "properties": {"a": {"$ref": %q}},
			  "definitions": {"bad-name": {"type": "string"}}
			}`, tt.ref))
			text, err := mustGenerator(t).CreateInterface(schema, "Doc")
			require.Error(t, err)
			assert.Empty(t, text)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCollisions(t *testing.T) {
	t.Run("different structures", func(t *testing.T) {
		schema := mustSchema(t, `{
		  "type": "object",
		  "properties": {
		    "a": {"type": "object", "properties": {"meta": {"type": "object", "properties": {"x": {"type": "string"}}}}},
		    "b": {"type": "object", "properties": {"meta": {"type": "object", "properties": {"y": {"type": "number"}}}}}
		  }
		}`)
		_, err := mustGenerator(t).CreateInterface(schema, "Doc")
		require.Error(t, err)
		var collision *tserrors.CollisionError
		require.ErrorAs(t, err, &collision)
		assert.Equal(t, "Meta", collision.Name)
		assert.False(t, collision.IsCustomType)
	})

	t.Run("identical structures", func(t *testing.T) {
		schema := mustSchema(t, `{
		  "type": "object",
		  "properties": {
		    "a": {"type": "object", "properties": {"meta": {"type": "object", "properties": {"x": {"type": "string"}}}}},
		    "b": {"type": "object", "properties": {"meta": {"type": "object", "properties": {"x": {"type": "string"}}}}}
		  }
		}`)
		result, err := mustGenerator(t).Generate(schema, "Doc")
		require.NoError(t, err)
		assert.Equal(t, []string{"Doc", "A", "B", "Meta"}, result.Names())
	})

	t.Run("nested name equals root", func(t *testing.T) {
		schema := mustSchema(t, `{
		  "type": "object",
		  "properties": {"doc": {"type": "object", "properties": {"x": {"type": "string"}}}}
		}`)
		_, err := mustGenerator(t).CreateInterface(schema, "Doc")
		assert.ErrorIs(t, err, tserrors.ErrCollision)
	})

	t.Run("nested name equals custom type", func(t *testing.T) {
		schema := mustSchema(t, `{
		  "type": "object",
		  "properties": {"user": {"type": "object", "properties": {"x": {"type": "string"}}}}
		}`)
		_, err := mustGenerator(t, WithCustomTypes("User")).CreateInterface(schema, "Doc")
		assert.ErrorIs(t, err, tserrors.ErrCustomTypeCollision)
	})

	t.Run("definition equals custom type", func(t *testing.T) {
		_, err := mustGenerator(t, WithCustomTypes("Admin")).CreateInterface(mustSchema(t, twoCustomTypesSchema), "Doc")
		assert.ErrorIs(t, err, tserrors.ErrCustomTypeCollision)
	})

	t.Run("derived name is not an identifier", func(t *testing.T) {
		schema := mustSchema(t, `{
		  "type": "object",
		  "properties": {"1st": {"type": "object", "properties": {"x": {"type": "string"}}}}
		}`)
		_, err := mustGenerator(t).CreateInterface(schema, "Doc")
		assert.ErrorIs(t, err, tserrors.ErrNaming)
	})
}

func TestReservedWordNames(t *testing.T) {
	t.Run("nested name", func(t *testing.T) {
		schema := mustSchema(t, `{"type": "object", "properties": {"class": {"type": "object", "properties": {"x": {"type": "string"}}}}}`)
		gen := mustGenerator(t, WithNameFunc(func(s string) string { return s }))
		_, err := gen.CreateInterface(schema, "Doc")
		assert.ErrorIs(t, err, tserrors.ErrNaming)
	})

	t.Run("definition name", func(t *testing.T) {
		schema := mustSchema(t, `{
		  "type": "object",
		  "properties": {"kind": {"$ref": "#/definitions/number"}},
		  "definitions": {"number": {"type": "integer"}}
		}`)
		_, err := mustGenerator(t).CreateInterface(schema, "Doc")
		assert.ErrorIs(t, err, tserrors.ErrNaming)
	})

	t.Run("property keys stay unquoted", func(t *testing.T) {
		schema := mustSchema(t, `{"type": "object", "properties": {"class": {"type": "string"}, "default": {"type": "number"}}}`)
		text, err := mustGenerator(t).CreateInterface(schema, "Doc")
		require.NoError(t, err)
		assert.Contains(t, text, "    class?: string;\n    default?: number;\n")
	})
}

func TestIdempotent(t *testing.T) {
	gen := mustGenerator(t, WithCustomTypes("User"))
	schema := mustSchema(t, twoCustomTypesSchema)

	first, err := gen.CreateInterface(schema, "Doc")
	require.NoError(t, err)
	second, err := gen.CreateInterface(schema, "Doc")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRendering(t *testing.T) {
	schema := mustSchema(t, `{
	  "type": "object",
	  "description": "A user record.",
	  "properties": {
	    "content-type": {"type": "string", "description": "Line one.\nLine two."},
	    "$id": {"type": "string"},
	    "note": {"type": "string", "description": "closes */ early"}
	  }
	}`)

	t.Run("defaults", func(t *testing.T) {
		text, err := mustGenerator(t).CreateInterface(schema, "User")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(text, "/** A user record. */\nexport interface User {\n"))
		assert.Contains(t, text, "    /**\n     * Line one.\n     * Line two.\n     */\n    \"content-type\"?: string;\n")
		assert.Contains(t, text, "    $id?: string;\n")
		assert.Contains(t, text, `closes *\/ early`)
	})

	t.Run("options", func(t *testing.T) {
		gen := mustGenerator(t, WithIndent("  "), WithExport(false), WithComments(false))
		text, err := gen.CreateInterface(schema, "User")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(text, "interface User {\n  \"content-type\"?: string;\n"))
		assert.NotContains(t, text, "/**")
		assert.NotContains(t, text, "export")
	})
}

func TestNameFunc(t *testing.T) {
	schema := mustSchema(t, `{"type": "object", "properties": {"param": {"enum": ["a"]}}}`)
	gen := mustGenerator(t, WithNameFunc(func(source string) string { return "E" + source }))
	text, err := gen.CreateInterface(schema, "Doc")
	require.NoError(t, err)
	assert.Contains(t, text, "param?: Eparam;")

	gen = mustGenerator(t, WithNameFunc(CapitalizedNames))
	text, err = gen.CreateInterface(schema, "Doc")
	require.NoError(t, err)
	assert.Contains(t, text, "export enum Param {")
}

func TestOptionErrors(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{name: "invalid custom type", opt: WithCustomTypes("not valid")},
		{name: "nil name func", opt: WithNameFunc(nil)},
		{name: "invalid default name", opt: WithDefaultName("9lives")},
		{name: "reserved default name", opt: WithDefaultName("enum")},
		{name: "invalid indent", opt: WithIndent("--")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opt)
			require.Error(t, err)
			assert.ErrorIs(t, err, tserrors.ErrConfig)
		})
	}
}

func TestCustomTypes(t *testing.T) {
	gen := mustGenerator(t, WithCustomTypes("User", " Account ", "User"))
	assert.Equal(t, []string{"User", "Account"}, gen.CustomTypes())
	assert.True(t, gen.IsCustomType("Account"))
	assert.False(t, gen.IsCustomType("Admin"))
}

func TestConcurrentCalls(t *testing.T) {
	gen := mustGenerator(t, WithCustomTypes("User"))
	schema := mustSchema(t, twoCustomTypesSchema)
	want, err := gen.CreateInterface(schema, "Doc")
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 16)
	errs := make([]error, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = gen.CreateInterface(schema, "Doc")
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, want, results[i])
	}
}

func TestDeclarationEqual(t *testing.T) {
	a := &Declaration{Kind: DeclInterface, Name: "A", Description: "one", Properties: []Property{{Name: "x", Type: "string", Description: "d"}}}
	b := &Declaration{Kind: DeclInterface, Name: "A", Description: "two", Properties: []Property{{Name: "x", Type: "string"}}}
	c := &Declaration{Kind: DeclInterface, Name: "A", Properties: []Property{{Name: "x", Type: "number"}}}

	assert.True(t, a.Equal(b))
	assert.Equal(t, hashDeclaration(a), hashDeclaration(b))
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, hashDeclaration(a), hashDeclaration(c))
	assert.False(t, a.Equal(nil))
}
