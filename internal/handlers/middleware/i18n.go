package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/plazamap-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware gerencia a detecção de idioma nas requisições
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage detecta e configura o idioma da requisição
// Prioridade:
// 1. Query parameter ?lang=es (override explícito)
// 2. Accept-Language header (preferência do browser)
// 3. Idioma padrão (fallback)
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string

		// 1. Verificar query parameter
		if queryLang := c.Query("lang"); queryLang != "" {
			if m.i18nService.IsLanguageSupported(queryLang) {
				lang = queryLang
			}
		}

		// 2. Se não encontrou, verificar Accept-Language header
		if lang == "" {
			acceptLang := c.GetHeader("Accept-Language")
			lang = m.parseAcceptLanguage(acceptLang)
		}

		// 3. Se ainda não encontrou, usar idioma padrão
		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		// Armazenar idioma e serviço no contexto
		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)

		c.Next()
	}
}

// parseAcceptLanguage retorna o primeiro idioma suportado do header.
// Entradas vêm na forma "es,en;q=0.9". O peso é ignorado, vale a ordem.
func (m *I18nMiddleware) parseAcceptLanguage(header string) string {
	if header == "" {
		return ""
	}

	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "" {
			continue
		}
		if m.i18nService.IsLanguageSupported(tag) {
			return tag
		}
		// Tentar só o idioma base (ex: "es-CO" -> "es")
		if base := strings.SplitN(tag, "-", 2)[0]; m.i18nService.IsLanguageSupported(base) {
			return base
		}
	}
	return ""
}
