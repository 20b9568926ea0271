package graphdump

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/transit-section/transit"
)

// ValidationError points at one broken field of one record.
type ValidationError struct {
	Table string // "stops", "gates", ...
	Index int
	Field string // dump field name, empty for a whole-record failure
	Rule  string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s[%d]: %s", e.Table, e.Index, e.Rule)
	}
	return fmt.Sprintf("%s[%d].%s: %s", e.Table, e.Index, e.Field, e.Rule)
}

// ValidationErrors lists every violation found in a graph.
type ValidationErrors []ValidationError

func (es ValidationErrors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Rules reported by struct-level checks.
const (
	RuleGateRole         = "entrance_or_exit"
	RuleTransferNoLine   = "transfer_without_line"
	RuleTransferNoShapes = "transfer_without_shapes"
	RuleLineRequired     = "line_required"
	RuleIsValid          = "is_valid"
	RuleWeight           = "weight"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func recordValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation(RuleWeight, func(fl validator.FieldLevel) bool {
			return transit.IsValidWeight(fl.Field().Float())
		})
		v.RegisterStructValidation(gateRoleRule, GateRecord{})
		v.RegisterStructValidation(edgeKindRule, EdgeRecord{})
		validate = v
	})
	return validate
}

func gateRoleRule(sl validator.StructLevel) {
	g := sl.Current().Interface().(GateRecord)
	if !g.Entrance && !g.Exit {
		sl.ReportError(g.Entrance, "entrance", "Entrance", RuleGateRole, "")
	}
}

func edgeKindRule(sl validator.StructLevel) {
	e := sl.Current().Interface().(EdgeRecord)
	if e.Transfer {
		if e.LineID.IsValid() {
			sl.ReportError(e.LineID, "line_id", "LineID", RuleTransferNoLine, "")
		}
		if len(e.ShapeIDs) != 0 {
			sl.ReportError(e.ShapeIDs, "shape_ids", "ShapeIDs", RuleTransferNoShapes, "")
		}
		return
	}
	if !e.LineID.IsValid() {
		sl.ReportError(e.LineID, "line_id", "LineID", RuleLineRequired, "")
	}
}

// Validate checks every record and returns ValidationErrors, or nil when the
// graph is clean. Shapes have no rules.
func (g *Graph) Validate() error {
	var errs ValidationErrors
	errs = appendTable(errs, "stops", g.Stops)
	errs = appendTable(errs, "gates", g.Gates)
	errs = appendTable(errs, "edges", g.Edges)
	errs = appendTable(errs, "transfers", g.Transfers)
	errs = appendTable(errs, "lines", g.Lines)
	errs = appendTable(errs, "networks", g.Networks)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func appendTable[T any](errs ValidationErrors, table string, records []T) ValidationErrors {
	v := recordValidator()
	for i := range records {
		err := v.Struct(records[i])
		if err == nil {
			continue
		}
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			errs = append(errs, ValidationError{Table: table, Index: i, Rule: err.Error()})
			continue
		}
		for _, fe := range fieldErrs {
			errs = append(errs, ValidationError{Table: table, Index: i, Field: fe.Field(), Rule: fe.Tag()})
		}
	}
	return errs
}

// Validate runs transit's IsValid over every table and reports the first
// invalid record of each. Shapes have no validity predicate.
func (e Entities) Validate() error {
	var errs ValidationErrors
	errs = appendFirstInvalid(errs, "stops", e.Stops)
	errs = appendFirstInvalid(errs, "gates", e.Gates)
	errs = appendFirstInvalid(errs, "edges", e.Edges)
	errs = appendFirstInvalid(errs, "transfers", e.Transfers)
	errs = appendFirstInvalid(errs, "lines", e.Lines)
	errs = appendFirstInvalid(errs, "networks", e.Networks)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func appendFirstInvalid[T transit.Validatable](errs ValidationErrors, table string, items []T) ValidationErrors {
	if i := transit.FirstInvalid(items); i >= 0 {
		errs = append(errs, ValidationError{Table: table, Index: i, Rule: RuleIsValid})
	}
	return errs
}
