package schema

import (
	"sync"

	"github.com/instancekit/jsonv"
	"github.com/instancekit/jsonv/pointer"
)

// FormatFunc validates a string-kind instance value against a named
// "format". It is only ever called with a string value.
type FormatFunc func(*jsonv.Value) bool

// keywordCompiler compiles one keyword (or keyword family) found on a
// schema object into zero or one instruction. Returning a nil
// instruction with a nil error means the keyword was absent or
// produced no runtime check.
type keywordCompiler func(c *Compiler, node *jsonv.Value) (instruction, error)

// keywordCompilers lists every draft-4 keyword family this module
// understands. Each entry lives in a keywords_*.go file, except
// compileFormat, which lives in format.go.
var keywordCompilers = []keywordCompiler{
	compileType,
	compileEnum,
	compileAllOf,
	compileAnyOf,
	compileOneOf,
	compileNot,
	compileRequired,
	compileObjectShape,
	compileArrayShape,
	compileNumericRange,
	compileMultipleOf,
	compileStringLength,
	compilePattern,
	compileDependencies,
	compileFormat,
}

// Compiler turns schema Values into Validators. A Compiler is safe for
// concurrent use: Compile may be called from multiple goroutines once
// its registries have been configured; concurrent calls are serialized.
type Compiler struct {
	compileMu sync.Mutex // serializes Compile/CompileExpanded

	mu    sync.Mutex
	cache map[*jsonv.Value]*sequence

	docs           *pointer.Cache
	defaultBaseURI string
	assertFormat   bool

	formatsMu sync.RWMutex
	formats   map[string]FormatFunc
}

// NewCompiler builds a Compiler with the built-in format registry
// installed and no document fetcher configured (use WithFetcher to
// enable remote $ref resolution).
func NewCompiler() *Compiler {
	c := &Compiler{
		cache:   map[*jsonv.Value]*sequence{},
		formats: map[string]FormatFunc{},
	}
	installBuiltinFormats(c)
	return c
}

// WithFetcher installs a document fetcher used to resolve $ref targets
// that live outside the document being compiled, and returns the
// receiver for chaining.
func (c *Compiler) WithFetcher(f pointer.Fetcher) *Compiler {
	c.docs = pointer.NewCache(f)
	return c
}

// WithDefaultBaseURI sets the base URI assumed for a root schema that
// carries no "id", and returns the receiver for chaining.
func (c *Compiler) WithDefaultBaseURI(uri string) *Compiler {
	c.defaultBaseURI = uri
	return c
}

// WithAssertFormat toggles whether a "format" mismatch produces a
// validation error (true) or is merely accepted without effect
// (false, the draft-4 default), and returns the receiver for chaining.
func (c *Compiler) WithAssertFormat(assert bool) *Compiler {
	c.assertFormat = assert
	return c
}

// RegisterFormat adds or replaces a named format validator.
func (c *Compiler) RegisterFormat(name string, fn FormatFunc) {
	c.formatsMu.Lock()
	defer c.formatsMu.Unlock()
	c.formats[name] = fn
}

func (c *Compiler) lookupFormat(name string) (FormatFunc, bool) {
	c.formatsMu.RLock()
	defer c.formatsMu.RUnlock()
	fn, ok := c.formats[name]
	return fn, ok
}

// Compile expands $ref references in root (resolving against baseURI,
// or the Compiler's default if baseURI is empty) and compiles the
// result into a Validator.
func (c *Compiler) Compile(root *jsonv.Value, baseURI string) (*Validator, error) {
	c.compileMu.Lock()
	defer c.compileMu.Unlock()
	if baseURI == "" {
		baseURI = c.defaultBaseURI
	}
	expanded, err := Expand(root, baseURI, c.docs)
	if err != nil {
		return nil, err
	}
	ins, err := c.compileNode(expanded)
	if err != nil {
		return nil, err
	}
	return &Validator{root: ins}, nil
}

// CompileExpanded compiles a schema that has already been through
// Expand, skipping reference resolution. Useful when a caller manages
// its own document graph.
func (c *Compiler) CompileExpanded(expanded *jsonv.Value) (*Validator, error) {
	c.compileMu.Lock()
	defer c.compileMu.Unlock()
	ins, err := c.compileNode(expanded)
	if err != nil {
		return nil, err
	}
	return &Validator{root: ins}, nil
}

// compileNode compiles a single schema object, consulting and
// populating the identity-keyed compile cache. The cache entry is
// inserted as an empty, mutable sequence before any keyword is
// compiled, so a cycle reached while compiling node's own children
// resolves to a closure over the same *sequence -- by the time that
// closure is ever invoked for real validation, compileNode will have
// finished populating it.
func (c *Compiler) compileNode(node *jsonv.Value) (instruction, error) {
	if node == nil || !node.IsObject() {
		return nil, ErrNotObjectSchema
	}

	c.mu.Lock()
	if seqPtr, ok := c.cache[node]; ok {
		c.mu.Unlock()
		return seqPtr.run, nil
	}
	seqPtr := &sequence{}
	c.cache[node] = seqPtr
	c.mu.Unlock()

	var built sequence
	for _, kw := range keywordCompilers {
		ins, err := kw(c, node)
		if err != nil {
			return nil, err
		}
		if ins != nil {
			built = append(built, ins)
		}
	}
	*seqPtr = built
	return seqPtr.run, nil
}
