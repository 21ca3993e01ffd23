package adapter

import (
	"context"
	"fmt"
	"reflect"

	"github.com/aws/aws-sdk-go-v2/service/rds"

	rdsapi "github.com/rdsctl/rdsctl/internal/rds"
)

// Result selectors with special meaning.
const (
	// SelectAll makes the whole response the payload.
	SelectAll = "*"
	// SelectNone produces a metadata envelope with no payload.
	SelectNone = "-"
)

// Kind is the value type of a bound parameter.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindStrings
	KindTags
	KindFilters
	KindParameters
	KindTime
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindStrings:
		return "strings"
	case KindTags:
		return "tags"
	case KindFilters:
		return "filters"
	case KindParameters:
		return "parameters"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// Param maps one bindable parameter onto a request field. Field is a dot
// separated path; intermediate option structs are allocated on demand.
type Param struct {
	Name     string
	Field    string
	Kind     Kind
	Required bool
	Usage    string
}

// Paging describes a marker based list operation.
type Paging struct {
	InputMarker  string
	OutputMarker string
	PageSize     string
	MinPageSize  int32
	MaxPageSize  int32
}

// Info is the per-operation configuration shared by every instantiation.
type Info struct {
	Name        string
	Description string
	Destructive bool

	// Target names the parameter identifying the affected resource.
	Target string

	Params []Param

	// Select is a field path into the response, SelectAll or SelectNone.
	Select string

	// PassThru names the parameter echoed as payload in pass-through mode.
	PassThru string

	Paging *Paging
}

// Describe returns the operation metadata.
func (i *Info) Describe() *Info {
	return i
}

// Param returns the parameter called name.
func (i *Info) Param(name string) (Param, bool) {
	for _, p := range i.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// paramForField returns the parameter bound to a request field.
func (i *Info) paramForField(field string) (Param, bool) {
	for _, p := range i.Params {
		if p.Field == field {
			return p, true
		}
	}
	return Param{}, false
}

// CallFunc is the shape of every RDS client method; method expressions
// such as rdsapi.API.CopyDBSnapshot satisfy it.
type CallFunc[In, Out any] func(rdsapi.API, context.Context, *In, ...func(*rds.Options)) (*Out, error)

// Operation binds an Info to one typed RDS call.
type Operation[In, Out any] struct {
	Info
	Call CallFunc[In, Out]
}

// Descriptor is the type-erased view of an Operation.
type Descriptor interface {
	Describe() *Info
	Validate() error
	run(ctx context.Context, r *Runner, inv *Invocation) Envelope
}

var _ Descriptor = (*Operation[struct{}, struct{}])(nil)

// Validate checks the field-mapping table against the request and
// response types.
func (op *Operation[In, Out]) Validate() error {
	if op.Name == "" {
		return fmt.Errorf("operation name cannot be empty")
	}
	if op.Call == nil {
		return fmt.Errorf("%s: call cannot be nil", op.Name)
	}

	inType := reflect.TypeOf((*In)(nil)).Elem()
	outType := reflect.TypeOf((*Out)(nil)).Elem()

	seen := make(map[string]bool, len(op.Params))
	for _, p := range op.Params {
		if p.Name == "" {
			return fmt.Errorf("%s: parameter with empty name", op.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("%s: duplicate parameter %s", op.Name, p.Name)
		}
		seen[p.Name] = true
		if _, err := fieldType(inType, p.Field); err != nil {
			return fmt.Errorf("%s: parameter %s: %w", op.Name, p.Name, err)
		}
	}

	if op.Target != "" && !seen[op.Target] {
		return fmt.Errorf("%s: target %s is not a parameter", op.Name, op.Target)
	}
	if op.PassThru != "" && !seen[op.PassThru] {
		return fmt.Errorf("%s: pass-through %s is not a parameter", op.Name, op.PassThru)
	}

	switch op.Select {
	case SelectAll, SelectNone:
	case "":
		return fmt.Errorf("%s: result selector cannot be empty", op.Name)
	default:
		if _, err := fieldType(outType, op.Select); err != nil {
			return fmt.Errorf("%s: select: %w", op.Name, err)
		}
	}

	if pg := op.Paging; pg != nil {
		if _, ok := op.paramForField(pg.InputMarker); !ok {
			return fmt.Errorf("%s: paging marker %s has no parameter", op.Name, pg.InputMarker)
		}
		if _, err := fieldType(outType, pg.OutputMarker); err != nil {
			return fmt.Errorf("%s: paging output marker: %w", op.Name, err)
		}
		if pg.PageSize != "" {
			if _, err := fieldType(inType, pg.PageSize); err != nil {
				return fmt.Errorf("%s: paging page size: %w", op.Name, err)
			}
		}
		if op.Select == SelectAll || op.Select == SelectNone {
			return fmt.Errorf("%s: paged operations must select an item field", op.Name)
		}
		if t, _ := fieldType(outType, op.Select); t.Kind() != reflect.Slice {
			return fmt.Errorf("%s: paged select %s is not a collection", op.Name, op.Select)
		}
	}

	return nil
}

// BuildRequest copies every bound parameter into a new request. Parameters
// the caller did not bind leave their fields untouched.
func BuildRequest[In, Out any](op *Operation[In, Out], inv *Invocation) (*In, error) {
	return buildRequest[In](&op.Info, inv)
}

func buildRequest[In any](info *Info, inv *Invocation) (*In, error) {
	req := new(In)
	root := reflect.ValueOf(req).Elem()

	for _, p := range info.Params {
		value, ok := inv.Lookup(p.Name)
		if !ok {
			if p.Required {
				return nil, missingParameter(info.Name, p.Name)
			}
			continue
		}
		if err := setField(root, p.Field, value); err != nil {
			return nil, invalidParameter(info.Name, p.Name, err)
		}
	}

	return req, nil
}
