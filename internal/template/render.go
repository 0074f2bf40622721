// Package template fills {{placeholder}} slots in response templates.
package template

import (
	"regexp"

	"github.com/sadopc/clientflow/internal/model"
)

var placeholderRe = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Render substitutes every {{name}} occurrence with values[name].
// Placeholders without a value are left intact so the caller can see
// what is still missing.
func Render(text string, values map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(text, func(match string) string {
		name := placeholderRe.FindStringSubmatch(match)[1]
		if v, ok := values[name]; ok {
			return v
		}
		return match
	})
}

// RenderTemplate fills the subject and content of a template in one pass.
func RenderTemplate(t model.ResponseTemplate, values map[string]string) (subject, content string) {
	return Render(t.Subject, values), Render(t.Content, values)
}

// Placeholders lists the distinct placeholder names in order of first
// appearance across subject and content.
func Placeholders(t model.ResponseTemplate) []string {
	seen := map[string]bool{}
	var names []string
	for _, text := range []string{t.Subject, t.Content} {
		for _, m := range placeholderRe.FindAllStringSubmatch(text, -1) {
			if !seen[m[1]] {
				seen[m[1]] = true
				names = append(names, m[1])
			}
		}
	}
	return names
}

// Variables returns the declared descriptor for each placeholder found in
// the template text, falling back to a free-text descriptor for
// placeholders the template never declared.
func Variables(t model.ResponseTemplate) []model.TemplateVariable {
	declared := map[string]model.TemplateVariable{}
	for _, v := range t.Variables {
		declared[v.Name] = v
	}
	var out []model.TemplateVariable
	for _, name := range Placeholders(t) {
		if v, ok := declared[name]; ok {
			out = append(out, v)
			continue
		}
		out = append(out, model.TemplateVariable{Name: name, Kind: model.VariableText})
	}
	return out
}
