package attributing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "URL completa com protocolo, www e caminho",
			raw:      "https://www.Example.com/path",
			expected: "example.com",
		},
		{
			name:     "protocolo http sem www",
			raw:      "http://foo.com",
			expected: "foo.com",
		},
		{
			name:     "www sem protocolo",
			raw:      "WWW.Foo.COM/bar/baz",
			expected: "foo.com",
		},
		{
			name:     "domínio já normalizado permanece igual",
			raw:      "example.com",
			expected: "example.com",
		},
		{
			name:     "maiúsculas viram minúsculas",
			raw:      "ACME.COM",
			expected: "acme.com",
		},
		{
			name:     "string vazia permanece vazia",
			raw:      "",
			expected: "",
		},
		{
			name:     "apenas caminho após a barra é removido",
			raw:      "shop.example.org/catalog?page=2",
			expected: "shop.example.org",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeDomain(tt.raw))
		})
	}
}

func TestNormalizeDomainIdempotente(t *testing.T) {
	inputs := []string{
		"https://www.Example.com/path",
		"http://acme.com",
		"www.loja.com.br/produtos",
		"example.com",
		"",
	}

	for _, raw := range inputs {
		once := NormalizeDomain(raw)
		twice := NormalizeDomain(once)
		assert.Equal(t, once, twice, "normalizar um domínio já normalizado deve devolvê-lo inalterado: %q", raw)
	}
}
