// Package i18n translates the panel and tray strings. The countdown output
// itself is user-formatted and never translated.
package i18n

import (
	"log"
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"
)

var lang string

var translations = map[string]map[string]string{
	"Clock Type": {
		"pt": "Tipo de Relógio",
		"es": "Tipo de Reloj",
		"ru": "Тип часов",
	},
	"Format": {
		"pt": "Formato",
		"es": "Formato",
		"ru": "Формат",
	},
	"Hide Zero Units": {
		"pt": "Ocultar Unidades Zeradas",
		"es": "Ocultar Unidades en Cero",
		"ru": "Скрывать нулевые единицы",
	},
	"Round Up": {
		"pt": "Arredondar para Cima",
		"es": "Redondear hacia Arriba",
		"ru": "Округлять вверх",
	},
	"Duration": {
		"pt": "Duração",
		"es": "Duración",
		"ru": "Длительность",
	},
	"Date": {
		"pt": "Data",
		"es": "Fecha",
		"ru": "Дата",
	},
	"Time": {
		"pt": "Hora",
		"es": "Hora",
		"ru": "Время",
	},
	"End Text": {
		"pt": "Texto Final",
		"es": "Texto Final",
		"ru": "Финальный текст",
	},
	"End Chime": {
		"pt": "Som Final",
		"es": "Sonido Final",
		"ru": "Финальный сигнал",
	},
	"Overlay Opacity": {
		"pt": "Opacidade da Sobreposição",
		"es": "Opacidad de la Superposición",
		"ru": "Непрозрачность оверлея",
	},
	"Text Source": {
		"pt": "Fonte de Texto",
		"es": "Fuente de Texto",
		"ru": "Текстовый источник",
	},
	"Restart Timer": {
		"pt": "Reiniciar Timer",
		"es": "Reiniciar Temporizador",
		"ru": "Перезапустить таймер",
	},
	"Help": {
		"pt": "Ajuda",
		"es": "Ayuda",
		"ru": "Справка",
	},
	"Preferences": {
		"pt": "Preferências",
		"es": "Preferencias",
		"ru": "Настройки",
	},
	"Show Countdown": {
		"pt": "Mostrar Contagem",
		"es": "Mostrar Cuenta Atrás",
		"ru": "Показать отсчёт",
	},
	"Hide Countdown": {
		"pt": "Ocultar Contagem",
		"es": "Ocultar Cuenta Atrás",
		"ru": "Скрыть отсчёт",
	},
	"Quit": {
		"pt": "Sair",
		"es": "Salir",
		"ru": "Выход",
	},
	"Save": {
		"pt": "Salvar",
		"es": "Guardar",
		"ru": "Сохранить",
	},
	"Close": {
		"pt": "Fechar",
		"es": "Cerrar",
		"ru": "Закрыть",
	},
	"Reload": {
		"pt": "Recarregar",
		"es": "Recargar",
		"ru": "Обновить",
	},
	"<None selected>": {
		"pt": "<Nenhuma selecionada>",
		"es": "<Ninguna seleccionada>",
		"ru": "<Не выбрано>",
	},
}

func init() {
	// Check for override environment variable
	if forcedLang := strings.TrimSpace(os.Getenv("LIVECOUNT_LANG")); forcedLang != "" {
		lang = forcedLang
		return
	}

	userLocales, err := locale.GetLocales()
	if err != nil || len(userLocales) == 0 {
		lang = "en"
		return
	}

	detected := userLocales[0]
	switch {
	case strings.HasPrefix(detected, "pt"):
		lang = "pt"
	case strings.HasPrefix(detected, "es"):
		lang = "es"
	case strings.HasPrefix(detected, "ru"):
		lang = "ru"
	default:
		lang = "en"
	}
	log.Printf("Language set to: %s", lang)
}

// T returns the translation for key in the active language, or key itself
// when no translation exists.
func T(key string) string {
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}
