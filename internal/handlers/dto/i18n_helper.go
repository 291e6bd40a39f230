package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/usermanager-backend/internal/handlers/middleware"
	"github.com/rafabene/usermanager-backend/internal/infrastructure/i18n"
)

// T é um helper para traduzir mensagens no contexto do Gin
// Uso: dto.T(c, "validation.required", map[string]any{"Field": "email"})
func T(c *gin.Context, key string, params ...map[string]any) string {
	service := i18nService(c)
	if service == nil {
		return key
	}
	return service.T(GetLanguage(c), key, params...)
}

// TOr traduz a chave ou devolve fallback quando não há tradução
func TOr(c *gin.Context, key, fallback string, params ...map[string]any) string {
	service := i18nService(c)
	if service == nil || !service.Has(GetLanguage(c), key) {
		return fallback
	}
	return service.T(GetLanguage(c), key, params...)
}

func i18nService(c *gin.Context) *i18n.Service {
	value, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		return nil
	}
	service, _ := value.(*i18n.Service)
	return service
}

// GetLanguage retorna o idioma configurado no contexto da requisição
func GetLanguage(c *gin.Context) string {
	if lang, ok := c.Get(middleware.LanguageContextKey); ok {
		if langStr, ok := lang.(string); ok {
			return langStr
		}
	}
	return "en"
}
