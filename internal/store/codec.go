package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/idilsaglam/daily/internal/model"
)

//go:embed todos.schema.json
var schemaJSON []byte

const schemaURL = "todos.schema.json"

var listSchema = compileSchema()

func compileSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		panic(fmt.Sprintf("todo schema: %v", err))
	}
	return c.MustCompile(schemaURL)
}

// DecodeError reports slot content that is not a well-formed todo list.
type DecodeError struct {
	Path string // JSON pointer of the offending value, if known
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("decode todos at %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("decode todos: %s", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Encode renders todos in the slot format: a JSON array, never null.
func Encode(todos []model.Todo) ([]byte, error) {
	if todos == nil {
		todos = []model.Todo{}
	}
	b, err := json.MarshalIndent(todos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return append(b, '\n'), nil
}

// Decode parses slot content and checks it against the list schema.
// Anything that is not an array of {id, text, completed} fails with
// *DecodeError.
func Decode(b []byte) ([]model.Todo, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("json: %w", err)}
	}
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, &DecodeError{Err: errors.New("trailing data after list")}
	}

	if err := listSchema.Validate(doc); err != nil {
		return nil, schemaError(err)
	}

	var todos []model.Todo
	if err := json.Unmarshal(b, &todos); err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("json: %w", err)}
	}
	if todos == nil {
		todos = []model.Todo{}
	}
	return todos, nil
}

// schemaError reduces a schema failure to its first leaf cause.
func schemaError(err error) *DecodeError {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &DecodeError{Err: err}
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return &DecodeError{Path: ve.InstanceLocation, Err: errors.New(ve.Message)}
}
