package template

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sadopc/clientflow/internal/model"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		values map[string]string
		want   string
	}{
		{
			name:   "single placeholder",
			text:   "Hi {{clientName}},",
			values: map[string]string{"clientName": "Sarah"},
			want:   "Hi Sarah,",
		},
		{
			name:   "repeated placeholder",
			text:   "{{name}} and {{name}}",
			values: map[string]string{"name": "x"},
			want:   "x and x",
		},
		{
			name:   "unresolved placeholder kept",
			text:   "Hi {{clientName}}, re {{issueDescription}}",
			values: map[string]string{"clientName": "Sarah"},
			want:   "Hi Sarah, re {{issueDescription}}",
		},
		{
			name: "no placeholders",
			text: "plain text",
			want: "plain text",
		},
		{
			name:   "malformed braces untouched",
			text:   "{{not closed and {single}",
			values: map[string]string{"single": "x"},
			want:   "{{not closed and {single}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.text, tt.values))
		})
	}
}

func TestRenderTemplate(t *testing.T) {
	tpl := model.ResponseTemplate{
		Subject: "Update for {{clientName}}",
		Content: "Hi {{clientName}}, we will reply within {{timeframe}}.",
	}
	subject, content := RenderTemplate(tpl, map[string]string{
		"clientName": "Acme",
		"timeframe":  "24 hours",
	})
	assert.Equal(t, "Update for Acme", subject)
	assert.Equal(t, "Hi Acme, we will reply within 24 hours.", content)
}

func TestPlaceholders(t *testing.T) {
	tpl := model.ResponseTemplate{
		Subject: "Re: {{issue}}",
		Content: "Hi {{clientName}}, about {{issue}}: eta {{timeframe}}.",
	}
	assert.Equal(t, []string{"issue", "clientName", "timeframe"}, Placeholders(tpl))
}

func TestVariablesMergesDeclaredDescriptors(t *testing.T) {
	tpl := model.ResponseTemplate{
		Content: "Hi {{clientName}}, eta {{timeframe}}.",
		Variables: []model.TemplateVariable{
			{Name: "timeframe", Kind: model.VariableSelect, Options: []string{"24 hours", "48 hours"}},
		},
	}
	vars := Variables(tpl)
	assert.Equal(t, []model.TemplateVariable{
		{Name: "clientName", Kind: model.VariableText},
		{Name: "timeframe", Kind: model.VariableSelect, Options: []string{"24 hours", "48 hours"}},
	}, vars)
}
