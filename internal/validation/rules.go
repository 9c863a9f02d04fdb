// Package validation evaluates declarative per-column rule tables against
// statement rows and collects the broken constraints as violations.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"emo/payment-statement-parser/internal/models"
)

// Rule is one constraint on a single column value.
type Rule struct {
	Name    string
	Message string
	// SkipEmpty makes the rule pass for an empty value, leaving blank checks
	// to NotBlank.
	SkipEmpty bool
	Check     func(value string) bool
}

// Passes reports whether value satisfies the rule.
func (r Rule) Passes(value string) bool {
	if r.SkipEmpty && value == "" {
		return true
	}
	return r.Check(value)
}

// FieldRules binds an ordered list of rules to a named column.
type FieldRules struct {
	Name   string
	Column int
	Rules  []Rule
}

// RowRule is a constraint on the whole row. Its violation carries the
// row's String() as value.
type RowRule struct {
	Name    string
	Message string
	Check   func(row models.Row) bool
}

// RuleSet is the complete rule table for one row type.
type RuleSet struct {
	// ColumnCount is the exact number of fields a row must have; 0 disables
	// the check.
	ColumnCount int
	Fields      []FieldRules
	RowRules    []RowRule
}

// Extend stacks extra rules on top of the set. For a field present in both,
// the extra rules run first and the base rules after them; base and extra
// rules are never deduplicated. Fields only known to extra are appended.
func (s RuleSet) Extend(extra RuleSet) RuleSet {
	merged := RuleSet{
		ColumnCount: s.ColumnCount,
		Fields:      make([]FieldRules, 0, len(s.Fields)+len(extra.Fields)),
		RowRules:    append(append([]RowRule{}, s.RowRules...), extra.RowRules...),
	}
	if extra.ColumnCount != 0 {
		merged.ColumnCount = extra.ColumnCount
	}

	used := make(map[string]bool, len(extra.Fields))
	for _, base := range s.Fields {
		field := FieldRules{Name: base.Name, Column: base.Column}
		for _, add := range extra.Fields {
			if add.Name == base.Name {
				field.Rules = append(field.Rules, add.Rules...)
				used[add.Name] = true
			}
		}
		field.Rules = append(field.Rules, base.Rules...)
		merged.Fields = append(merged.Fields, field)
	}
	for _, add := range extra.Fields {
		if !used[add.Name] {
			merged.Fields = append(merged.Fields, add)
		}
	}

	return merged
}

func columnMessage(column int, text string) string {
	return fmt.Sprintf("[%d column] %s", column, text)
}

// NotBlank fails on an empty value.
func NotBlank(column int) Rule {
	return Rule{
		Name:    "not_blank",
		Message: columnMessage(column, "This value should not be blank."),
		Check:   func(value string) bool { return value != "" },
	}
}

// Blank fails on any non-empty value. note explains why the column is unused.
func Blank(column int, note string) Rule {
	return Rule{
		Name:    "blank",
		Message: columnMessage(column, fmt.Sprintf("This value should be blank, documentation says \"%s\".", note)),
		Check:   func(value string) bool { return value == "" },
	}
}

// Digits fails unless the value is one or more ASCII digits. An empty value
// fails as well.
func Digits(column int) Rule {
	return Rule{
		Name:    "digits",
		Message: columnMessage(column, "This value should be of type digit."),
		Check:   isDigits,
	}
}

// Regex fails when a non-empty value does not match pattern.
func Regex(column int, pattern, text string) Rule {
	re := regexp.MustCompile(pattern)
	return Rule{
		Name:      "regex",
		Message:   columnMessage(column, text),
		SkipEmpty: true,
		Check:     re.MatchString,
	}
}

// Choice fails unless the value is one of choices. An empty value fails
// unless "" is a choice.
func Choice(column int, choices ...string) Rule {
	allowed := make(map[string]struct{}, len(choices))
	for _, c := range choices {
		allowed[c] = struct{}{}
	}
	return Rule{
		Name: "choice",
		Message: columnMessage(column, fmt.Sprintf(
			"The value you selected is not a valid choice. Valid choices: \"%s\".",
			strings.Join(choices, "\", \""))),
		Check: func(value string) bool {
			_, ok := allowed[value]
			return ok
		},
	}
}

// NotImplemented is a row rule that always fails. It marks row types whose
// validation has not been written yet.
func NotImplemented(rowType string) RowRule {
	return RowRule{
		Name:    "not_implemented",
		Message: fmt.Sprintf("Validation for \"%s\" is not implemented. Add it when the need arises.", rowType),
		Check:   func(models.Row) bool { return false },
	}
}

// CountMessage is the violation message of the column count check.
func CountMessage(count int) string {
	return fmt.Sprintf("This collection should contain exactly %d elements.", count)
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}
