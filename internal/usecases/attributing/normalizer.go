package attributing

import "strings"

// NormalizeDomain converte o campo livre de site/domínio em um domínio
// comparável: remove o protocolo, o prefixo www., qualquer caminho após a
// primeira barra e converte para minúsculas. A função é idempotente e deve
// ser aplicada igualmente ao domínio do CRM e ao website da plataforma para
// que a comparação por igualdade faça sentido.
func NormalizeDomain(raw string) string {
	domain := strings.TrimSpace(raw)

	if strings.HasPrefix(strings.ToLower(domain), "http://") {
		domain = domain[len("http://"):]
	} else if strings.HasPrefix(strings.ToLower(domain), "https://") {
		domain = domain[len("https://"):]
	}

	if strings.HasPrefix(strings.ToLower(domain), "www.") {
		domain = domain[len("www."):]
	}

	if idx := strings.Index(domain, "/"); idx >= 0 {
		domain = domain[:idx]
	}

	return strings.ToLower(domain)
}
