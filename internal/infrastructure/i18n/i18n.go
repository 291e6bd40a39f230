package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// Service gerencia traduções e internacionalização
type Service struct {
	mu              sync.RWMutex
	translations    map[string]map[string]string // [language][key]message
	defaultLanguage string
	languages       []string // idioma padrão primeiro, demais em ordem alfabética
	matcher         language.Matcher
}

// NewEmbeddedService usa as traduções embutidas no binário
func NewEmbeddedService(defaultLang string) (*Service, error) {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded locales: %w", err)
	}
	return NewService(sub, defaultLang)
}

// NewServiceFromDir carrega as traduções de um diretório do disco
func NewServiceFromDir(localesDir, defaultLang string) (*Service, error) {
	if _, err := os.Stat(localesDir); err != nil {
		return nil, fmt.Errorf("failed to open locales dir %s: %w", localesDir, err)
	}
	return NewService(os.DirFS(localesDir), defaultLang)
}

// NewService carrega todos os arquivos *.json da raiz de fsys.
// O nome do arquivo (sem extensão) é o idioma: en.json, pt-BR.json...
func NewService(fsys fs.FS, defaultLang string) (*Service, error) {
	s := &Service{
		translations:    make(map[string]map[string]string),
		defaultLanguage: defaultLang,
	}

	files, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
		}

		s.translations[lang] = translations
	}

	if _, ok := s.translations[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	if err := s.buildMatcher(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Service) buildMatcher() error {
	others := make([]string, 0, len(s.translations)-1)
	for lang := range s.translations {
		if lang != s.defaultLanguage {
			others = append(others, lang)
		}
	}
	sort.Strings(others)
	s.languages = append([]string{s.defaultLanguage}, others...)

	tags := make([]language.Tag, 0, len(s.languages))
	for _, lang := range s.languages {
		tag, err := language.Parse(lang)
		if err != nil {
			return fmt.Errorf("invalid locale name %s: %w", lang, err)
		}
		tags = append(tags, tag)
	}
	s.matcher = language.NewMatcher(tags)
	return nil
}

// T traduz uma chave para o idioma especificado
// Suporta interpolação de parâmetros usando templates Go ({{.Field}}, {{.Param}}, etc.)
func (s *Service) T(lang, key string, params ...map[string]any) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	message := s.getTranslation(lang, key)
	if message == "" {
		message = s.getTranslation(s.defaultLanguage, key)
	}
	if message == "" {
		return key
	}

	if len(params) == 0 {
		return message
	}

	tmpl, err := template.New("msg").Parse(message)
	if err != nil {
		return message
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params[0]); err != nil {
		return message
	}

	return buf.String()
}

// Has indica se existe tradução para a chave no idioma ou no padrão
func (s *Service) Has(lang, key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getTranslation(lang, key) != "" || s.getTranslation(s.defaultLanguage, key) != ""
}

// Match escolhe o idioma suportado mais próximo das preferências informadas.
// Cada preferência pode ser um tag simples (pt-BR) ou um header
// Accept-Language completo. Sem correspondência, retorna o idioma padrão.
func (s *Service) Match(preferences ...string) string {
	if lang, ok := s.Lookup(preferences...); ok {
		return lang
	}
	return s.defaultLanguage
}

// Lookup é como Match, mas indica quando nenhuma preferência é suportada
func (s *Service) Lookup(preferences ...string) (string, bool) {
	tags := parsePreferences(preferences)
	if len(tags) == 0 {
		return "", false
	}

	_, index, confidence := s.matcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(s.languages) {
		return "", false
	}
	return s.languages[index], true
}

func parsePreferences(prefs []string) []language.Tag {
	var tags []language.Tag
	for _, p := range prefs {
		if p = strings.TrimSpace(p); p == "" {
			continue
		}
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	return tags
}

// getTranslation busca uma tradução sem lock (uso interno)
func (s *Service) getTranslation(lang, key string) string {
	if langMap, ok := s.translations[lang]; ok {
		if msg, ok := langMap[key]; ok {
			return msg
		}
	}
	return ""
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna lista de idiomas suportados
func (s *Service) GetSupportedLanguages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.languages...)
}

// IsLanguageSupported verifica se um idioma é suportado
func (s *Service) IsLanguageSupported(lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.translations[lang]
	return ok
}
