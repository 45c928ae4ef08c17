package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()
	ops := []string{"add", "gcd", "modpow"}
	tests := []struct {
		shell string
		want  []string
	}{
		{"bash", []string{"complete -F _bigmod_completions bigmod", "-ops)", "add gcd modpow all", "-completion)"}},
		{"zsh", []string{"#compdef bigmod", "'-ops[Operations to run]:operation:(add gcd modpow all)'", "'-a[First operand]:integer:'"}},
		{"fish", []string{"complete -c bigmod -f", "-o ops", "-xa 'add gcd modpow all'", "-o json -d 'Output results as JSON'"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell, ops); err != nil {
				t.Fatalf("GenerateCompletion(%s) returned error: %v", tt.shell, err)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("%s script lacks %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()
	err := GenerateCompletion(&bytes.Buffer{}, "powershell", nil)
	if err == nil || !strings.Contains(err.Error(), "unsupported shell") {
		t.Errorf("expected unsupported shell error, got %v", err)
	}
}

func TestFlagRegistryMatchesFlags(t *testing.T) {
	t.Parallel()
	seen := map[string]bool{}
	for _, f := range flagRegistry {
		if seen[f.Name] {
			t.Errorf("duplicate flag %q", f.Name)
		}
		seen[f.Name] = true
		if strings.HasPrefix(f.Name, "-") {
			t.Errorf("flag %q must not carry a dash", f.Name)
		}
	}
}
