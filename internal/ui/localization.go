package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyReciter         = "reciter"
	KeyChapter         = "chapter"
	KeyAya             = "aya"
	KeyAyaPlaceholder  = "aya_placeholder"
	KeyPlay            = "play"
	KeyStop            = "stop"
	KeyNext            = "next"
	KeyDownload        = "download"
	KeyAutoPlay        = "auto_play"
	KeyCredit          = "credit"
	KeyCatalogNotFound = "catalog_not_found"
	KeyCatalogInvalid  = "catalog_invalid"
	KeyStatusIdle      = "status_idle"
	KeyStatusLoading   = "status_loading"
	KeyStatusPlaying   = "status_playing"
	KeyStatusError     = "status_error"
	KeyDownloadFailed  = "download_failed"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unknown codes are ignored.
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// Format returns the localized format string for key applied to args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// IsRightToLeft reports whether the current language is written right to left
func (l *Localization) IsRightToLeft() bool {
	return l.currentLanguage == "ar" || l.currentLanguage == "ur"
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ar": "العربية",
		"ur": "اردو",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        IconBook + " Quran Pak Audio Player",
		KeyReciter:         "🎙 Select Reciter:",
		KeyChapter:         "📜 Select Surah:",
		KeyAya:             "🔢 Aya Number:",
		KeyAyaPlaceholder:  "Enter aya number",
		KeyPlay:            IconPlay + " Play",
		KeyStop:            IconStop + " Stop",
		KeyNext:            IconNext + " Next",
		KeyDownload:        IconDownload + " Download",
		KeyAutoPlay:        "Auto Play",
		KeyCredit:          "Created by Farhana Ahsan",
		KeyCatalogNotFound: IconError + " %s file not found!",
		KeyCatalogInvalid:  IconError + " %s could not be read: %v",
		KeyStatusIdle:      "Stopped",
		KeyStatusLoading:   "Loading…",
		KeyStatusPlaying:   "Playing",
		KeyStatusError:     "Playback failed: %v",
		KeyDownloadFailed:  "Could not open download: %v",
	}

	// Arabic texts
	l.texts["ar"] = map[string]string{
		KeyAppTitle:        IconBook + " مشغل القرآن الكريم الصوتي",
		KeyReciter:         "🎙 اختر القارئ:",
		KeyChapter:         "📜 اختر السورة:",
		KeyAya:             "🔢 رقم الآية:",
		KeyAyaPlaceholder:  "أدخل رقم الآية",
		KeyPlay:            IconPlay + " تشغيل",
		KeyStop:            IconStop + " إيقاف",
		KeyNext:            IconNext + " التالي",
		KeyDownload:        IconDownload + " تحميل",
		KeyAutoPlay:        "تشغيل تلقائي",
		KeyCredit:          "من إعداد فرحانة أحسن",
		KeyCatalogNotFound: IconError + " الملف %s غير موجود!",
		KeyCatalogInvalid:  IconError + " تعذرت قراءة %s: %v",
		KeyStatusIdle:      "متوقف",
		KeyStatusLoading:   "جارٍ التحميل…",
		KeyStatusPlaying:   "قيد التشغيل",
		KeyStatusError:     "فشل التشغيل: %v",
		KeyDownloadFailed:  "تعذر فتح التحميل: %v",
	}

	// Urdu texts
	l.texts["ur"] = map[string]string{
		KeyAppTitle:        IconBook + " قرآن پاک آڈیو پلیئر",
		KeyReciter:         "🎙 قاری منتخب کریں:",
		KeyChapter:         "📜 سورت منتخب کریں:",
		KeyAya:             "🔢 آیت نمبر:",
		KeyAyaPlaceholder:  "آیت نمبر درج کریں",
		KeyPlay:            IconPlay + " چلائیں",
		KeyStop:            IconStop + " روکیں",
		KeyNext:            IconNext + " اگلی",
		KeyDownload:        IconDownload + " ڈاؤن لوڈ",
		KeyAutoPlay:        "خودکار",
		KeyCredit:          "تیار کردہ: فرحانہ احسن",
		KeyCatalogNotFound: IconError + " فائل %s نہیں ملی!",
		KeyCatalogInvalid:  IconError + " %s پڑھی نہیں جا سکی: %v",
		KeyStatusIdle:      "رکا ہوا",
		KeyStatusLoading:   "لوڈ ہو رہا ہے…",
		KeyStatusPlaying:   "چل رہا ہے",
		KeyStatusError:     "پلے بیک ناکام: %v",
		KeyDownloadFailed:  "ڈاؤن لوڈ نہیں کھل سکا: %v",
	}
}
