// Package yamlschema loads goshape schemas from YAML definition files.
//
// A definition mirrors the notation: every node has a type, object nodes
// carry an ordered fields list, array nodes carry items. Refinements are
// written as rule strings resolved against the rules package:
//
//	type: object
//	fields:
//	  - name: answer
//	    type: string
//	    rules: [nonempty]
//	  - name: confidence
//	    type: number
//	    optional: true
//	    rules: ["min=0", "max=1"]
package yamlschema

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/dsl"
	"github.com/reoring/goshape/rules"
)

// Def is the YAML shape of a schema node.
type Def struct {
	Type     string   `yaml:"type"`
	Label    string   `yaml:"label,omitempty"`
	Optional bool     `yaml:"optional,omitempty"`
	Rules    []string `yaml:"rules,omitempty"`
	Fields   []Field  `yaml:"fields,omitempty"`
	Items    *Def     `yaml:"items,omitempty"`
}

// Field is one named member of an object definition. Declaration order in
// the YAML document becomes field order in the schema.
type Field struct {
	Name string `yaml:"name"`
	Def  `yaml:",inline"`
}

// Load parses a YAML document and builds the schema it describes.
func Load(data []byte) (goshape.Schema, error) {
	var def Def
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("yamlschema: parse definition: %w", err)
	}
	return Build(&def)
}

// Build converts a decoded definition tree into a schema.
func Build(def *Def) (goshape.Schema, error) {
	s, err := build(def, "")
	if err != nil {
		return nil, err
	}
	return s, nil
}

func build(def *Def, at string) (goshape.Schema, error) {
	where := at
	if where == "" {
		where = "root"
	}
	switch def.Type {
	case "string":
		s := dsl.String()
		label, check, err := foldRules(def, stringRule)
		if err != nil {
			return nil, fmt.Errorf("yamlschema: %s: %w", where, err)
		}
		if check != nil {
			s.Refine(label, check)
		}
		if def.Optional {
			s.Optional()
		}
		return s, nil
	case "number":
		s := dsl.Number()
		label, check, err := foldRules(def, numberRule)
		if err != nil {
			return nil, fmt.Errorf("yamlschema: %s: %w", where, err)
		}
		if check != nil {
			s.Refine(label, check)
		}
		if def.Optional {
			s.Optional()
		}
		return s, nil
	case "boolean":
		s := dsl.Bool()
		if len(def.Rules) > 0 {
			return nil, fmt.Errorf("yamlschema: %s: boolean takes no rules", where)
		}
		if def.Label != "" {
			s.Refine(def.Label, func(bool) bool { return true })
		}
		if def.Optional {
			s.Optional()
		}
		return s, nil
	case "array":
		if def.Items == nil {
			return nil, fmt.Errorf("yamlschema: %s: array requires items", where)
		}
		item, err := build(def.Items, where+" items")
		if err != nil {
			return nil, err
		}
		s := dsl.Array(item)
		label, check, err := foldRules(def, arrayRule)
		if err != nil {
			return nil, fmt.Errorf("yamlschema: %s: %w", where, err)
		}
		if check != nil {
			s.Refine(label, check)
		}
		if def.Optional {
			s.Optional()
		}
		return s, nil
	case "object":
		s := dsl.Object()
		seen := make(map[string]bool, len(def.Fields))
		for _, f := range def.Fields {
			if f.Name == "" {
				return nil, fmt.Errorf("yamlschema: %s: field without a name", where)
			}
			if seen[f.Name] {
				return nil, fmt.Errorf("yamlschema: %s: duplicate field %q", where, f.Name)
			}
			seen[f.Name] = true
			fd := f.Def
			child, err := build(&fd, where+" field "+f.Name)
			if err != nil {
				return nil, err
			}
			s.Field(f.Name, child)
		}
		if len(def.Rules) > 0 {
			return nil, fmt.Errorf("yamlschema: %s: object takes no rules", where)
		}
		if def.Label != "" {
			s.Refine(def.Label, func(map[string]any) bool { return true })
		}
		if def.Optional {
			s.Optional()
		}
		return s, nil
	case "":
		return nil, fmt.Errorf("yamlschema: %s: missing type", where)
	default:
		return nil, fmt.Errorf("yamlschema: %s: unknown type %q", where, def.Type)
	}
}

// foldRules resolves every rule string and merges the results into a single
// refinement. Labels join with ", " unless the definition carries an explicit
// label, which then replaces the composed display text.
func foldRules[T any](def *Def, resolve func(rule string) (string, func(T) bool, error)) (string, func(T) bool, error) {
	var labels []string
	var checks []func(T) bool
	for _, r := range def.Rules {
		label, check, err := resolve(r)
		if err != nil {
			return "", nil, err
		}
		labels = append(labels, label)
		checks = append(checks, check)
	}
	if len(checks) == 0 {
		if def.Label != "" {
			return def.Label, func(T) bool { return true }, nil
		}
		return "", nil, nil
	}
	label := strings.Join(labels, ", ")
	if def.Label != "" {
		label = def.Label
	}
	if len(checks) == 1 {
		return label, checks[0], nil
	}
	return label, func(v T) bool {
		for _, check := range checks {
			if !check(v) {
				return false
			}
		}
		return true
	}, nil
}

func stringRule(rule string) (string, func(string) bool, error) {
	name, arg, hasArg := splitRule(rule)
	switch name {
	case "nonempty":
		return pair(rules.NonEmpty())
	case "minlen":
		n, err := intArg(name, arg, hasArg)
		if err != nil {
			return fail[string](err)
		}
		return pair(rules.MinLen(n))
	case "maxlen":
		n, err := intArg(name, arg, hasArg)
		if err != nil {
			return fail[string](err)
		}
		return pair(rules.MaxLen(n))
	case "pattern":
		if !hasArg || arg == "" {
			return fail[string](fmt.Errorf("rule pattern requires an expression"))
		}
		re, err := regexp.Compile(arg)
		if err != nil {
			return fail[string](fmt.Errorf("rule pattern: %w", err))
		}
		return "matches /" + arg + "/", re.MatchString, nil
	case "oneof":
		if !hasArg || arg == "" {
			return fail[string](fmt.Errorf("rule oneof requires values"))
		}
		return pair(rules.OneOf(strings.Split(arg, "|")...))
	case "contains":
		if !hasArg || arg == "" {
			return fail[string](fmt.Errorf("rule contains requires a substring"))
		}
		return pair(rules.Contains(arg))
	default:
		return fail[string](fmt.Errorf("unknown string rule %q", rule))
	}
}

func numberRule(rule string) (string, func(float64) bool, error) {
	name, arg, hasArg := splitRule(rule)
	switch name {
	case "positive":
		return pair(rules.Positive())
	case "nonnegative":
		return pair(rules.NonNegative())
	case "integer":
		return pair(rules.Integer())
	case "min":
		f, err := floatArg(name, arg, hasArg)
		if err != nil {
			return fail[float64](err)
		}
		return pair(rules.Min(f))
	case "max":
		f, err := floatArg(name, arg, hasArg)
		if err != nil {
			return fail[float64](err)
		}
		return pair(rules.Max(f))
	default:
		return fail[float64](fmt.Errorf("unknown number rule %q", rule))
	}
}

func arrayRule(rule string) (string, func([]any) bool, error) {
	name, arg, hasArg := splitRule(rule)
	switch name {
	case "minitems":
		n, err := intArg(name, arg, hasArg)
		if err != nil {
			return fail[[]any](err)
		}
		return pair(rules.MinItems(n))
	case "maxitems":
		n, err := intArg(name, arg, hasArg)
		if err != nil {
			return fail[[]any](err)
		}
		return pair(rules.MaxItems(n))
	default:
		return fail[[]any](fmt.Errorf("unknown array rule %q", rule))
	}
}

func pair[T any](label string, check func(T) bool) (string, func(T) bool, error) {
	return label, check, nil
}

func fail[T any](err error) (string, func(T) bool, error) { return "", nil, err }

func splitRule(rule string) (name, arg string, hasArg bool) {
	if i := strings.IndexByte(rule, '='); i >= 0 {
		return strings.TrimSpace(rule[:i]), strings.TrimSpace(rule[i+1:]), true
	}
	return strings.TrimSpace(rule), "", false
}

func intArg(name, arg string, hasArg bool) (int, error) {
	if !hasArg {
		return 0, fmt.Errorf("rule %s requires a value", name)
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("rule %s: bad value %q", name, arg)
	}
	return n, nil
}

func floatArg(name, arg string, hasArg bool) (float64, error) {
	if !hasArg {
		return 0, fmt.Errorf("rule %s requires a value", name)
	}
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("rule %s: bad value %q", name, arg)
	}
	return f, nil
}
