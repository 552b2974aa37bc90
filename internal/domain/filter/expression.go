package filter

import (
	"fmt"

	"github.com/google/cel-go/cel"

	"pharmacy/internal/core/apperror"
)

// Variables available to medication expressions.
const (
	VarName         = "name"
	VarCompound     = "compound"
	VarLaboratory   = "laboratory"
	VarDescription  = "description"
	VarPrice        = "price"
	VarKind         = "kind"
	VarPrescription = "prescription"
)

// Expression is a compiled boolean CEL program, e.g.
//
//	kind == "chemotherapy" && price < 50.0
type Expression struct {
	source string
	prg    cel.Program
}

func newEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable(VarName, cel.StringType),
		cel.Variable(VarCompound, cel.StringType),
		cel.Variable(VarLaboratory, cel.StringType),
		cel.Variable(VarDescription, cel.StringType),
		cel.Variable(VarPrice, cel.DoubleType),
		cel.Variable(VarKind, cel.StringType),
		cel.Variable(VarPrescription, cel.BoolType),
	)
}

// Compile parses and type-checks src. Expressions that do not yield
// a bool are rejected with CodeInvalidInput.
func Compile(src string) (*Expression, error) {
	env, err := newEnv()
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("cel env: %w", err))
	}

	ast, iss := env.Compile(src)
	if iss.Err() != nil {
		return nil, apperror.NewInvalidInput("invalid filter expression").
			WithDetail("expression", src).
			WithCause(iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, apperror.NewInvalidInput("filter expression must evaluate to a boolean").
			WithDetail("expression", src).
			WithDetail("type", ast.OutputType().String())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("cel program: %w", err))
	}
	return &Expression{source: src, prg: prg}, nil
}

// Match evaluates the expression against vars.
func (e *Expression) Match(vars Vars) (bool, error) {
	out, _, err := e.prg.Eval(map[string]any(vars))
	if err != nil {
		return false, apperror.NewInvalidInput("filter expression failed").
			WithDetail("expression", e.source).
			WithCause(err)
	}
	matched, ok := out.Value().(bool)
	if !ok {
		return false, apperror.NewInvalidInput("filter expression must evaluate to a boolean").
			WithDetail("expression", e.source)
	}
	return matched, nil
}

// String returns the expression source.
func (e *Expression) String() string {
	return e.source
}
