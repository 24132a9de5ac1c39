package texttospeech

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Language is a custom model language identifier.
type Language string

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	LangArMs Language = "ar-MS"
	LangCsCz Language = "cs-CZ"
	LangDeDe Language = "de-DE"
	LangEnAu Language = "en-AU"
	LangEnGb Language = "en-GB"
	LangEnUs Language = "en-US"
	LangEsEs Language = "es-ES"
	LangEsLa Language = "es-LA"
	LangEsUs Language = "es-US"
	LangFrCa Language = "fr-CA"
	LangFrFr Language = "fr-FR"
	LangItIt Language = "it-IT"
	LangJaJp Language = "ja-JP"
	LangKoKr Language = "ko-KR"
	LangNlBe Language = "nl-BE"
	LangNlNl Language = "nl-NL"
	LangPtBr Language = "pt-BR"
	LangSvSe Language = "sv-SE"
	LangZhCn Language = "zh-CN"

	// DefaultLanguage is used when a custom model is created without one.
	DefaultLanguage = LangEnUs
)

var (
	// Languages lists every custom model language.
	Languages = []Language{
		LangArMs, LangCsCz, LangDeDe, LangEnAu, LangEnGb, LangEnUs,
		LangEsEs, LangEsLa, LangEsUs, LangFrCa, LangFrFr, LangItIt,
		LangJaJp, LangKoKr, LangNlBe, LangNlNl, LangPtBr, LangSvSe,
		LangZhCn,
	}
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Id returns the literal identifier the service expects.
func (l Language) Id() string {
	return string(l)
}
